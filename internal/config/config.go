// ABOUTME: Resolves the backend API URL from flag, environment, or default
// ABOUTME: Loads a .env file when present so local setups need no exports

package config

import (
	"os"

	"github.com/joho/godotenv"
)

const (
	// DefaultAPIURL points at a local development backend
	DefaultAPIURL = "http://localhost:8000/api/v1"

	// EnvAPIURL overrides the backend URL without a flag
	EnvAPIURL = "MEDIAFORGE_API_URL"
)

// LoadEnv reads a .env file from the working directory if one exists.
// A missing file is the normal case outside development.
func LoadEnv() {
	_ = godotenv.Load()
}

// APIURL resolves the backend URL with flag > env > default priority
func APIURL(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if envURL := os.Getenv(EnvAPIURL); envURL != "" {
		return envURL
	}
	return DefaultAPIURL
}
