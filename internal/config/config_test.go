// ABOUTME: Tests for API URL resolution
// ABOUTME: Verifies flag > environment > default priority

package config

import "testing"

func TestAPIURL_FlagWins(t *testing.T) {
	t.Setenv(EnvAPIURL, "http://env:8000/api/v1")

	got := APIURL("http://flag:8000/api/v1")
	if got != "http://flag:8000/api/v1" {
		t.Errorf("expected flag value, got %s", got)
	}
}

func TestAPIURL_EnvFallback(t *testing.T) {
	t.Setenv(EnvAPIURL, "http://env:8000/api/v1")

	got := APIURL("")
	if got != "http://env:8000/api/v1" {
		t.Errorf("expected env value, got %s", got)
	}
}

func TestAPIURL_Default(t *testing.T) {
	t.Setenv(EnvAPIURL, "")

	got := APIURL("")
	if got != DefaultAPIURL {
		t.Errorf("expected default, got %s", got)
	}
}
