// ABOUTME: Tests for the token file store
// ABOUTME: Verifies roundtrip, missing and corrupt file handling, and permissions

package tokenfile

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveAndLoad(t *testing.T) {
	f := New(t.TempDir())

	if err := f.Save("tok-123"); err != nil {
		t.Fatalf("save: %v", err)
	}

	token, err := f.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if token != "tok-123" {
		t.Errorf("expected tok-123, got %q", token)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	f := New(t.TempDir())

	token, err := f.Load()
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if token != "" {
		t.Errorf("expected empty token, got %q", token)
	}
}

func TestLoad_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "token.json"), []byte("not json"), 0600); err != nil {
		t.Fatal(err)
	}

	f := New(dir)
	token, err := f.Load()
	if err != nil {
		t.Fatalf("expected corrupt file to read as logged out, got %v", err)
	}
	if token != "" {
		t.Errorf("expected empty token, got %q", token)
	}
}

func TestSave_CreatesDirAndRestrictsPermissions(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "mediaforge")
	f := New(dir)

	if err := f.Save("tok-123"); err != nil {
		t.Fatalf("save: %v", err)
	}

	info, err := os.Stat(filepath.Join(dir, "token.json"))
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("expected mode 0600, got %o", perm)
	}
}

func TestClear(t *testing.T) {
	f := New(t.TempDir())

	if err := f.Save("tok-123"); err != nil {
		t.Fatal(err)
	}
	if err := f.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}

	token, _ := f.Load()
	if token != "" {
		t.Errorf("expected empty token after clear, got %q", token)
	}

	// Clearing again is not an error
	if err := f.Clear(); err != nil {
		t.Errorf("expected clearing absent token to succeed, got %v", err)
	}
}
