// ABOUTME: Persists the bearer token in the XDG config directory
// ABOUTME: The token is the only durable state; the profile is always re-fetched

package tokenfile

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// File stores the bearer token as a single JSON file on disk
type File struct {
	configDir string
}

type tokenData struct {
	Token string `json:"token"`
}

// New creates a token store rooted at the given config directory
func New(configDir string) *File {
	return &File{configDir: configDir}
}

// DefaultConfigDir returns the default config directory following XDG spec
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "mediaforge")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "mediaforge")
}

// path returns the location of the token JSON
func (f *File) path() string {
	return filepath.Join(f.configDir, "token.json")
}

// Load reads the persisted token. A missing or unreadable file means
// logged out, not an error.
func (f *File) Load() (string, error) {
	data, err := os.ReadFile(f.path())
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	var td tokenData
	if err := json.Unmarshal(data, &td); err != nil {
		// Corrupt file, treat as logged out
		return "", nil
	}
	return td.Token, nil
}

// Save writes the token to disk with owner-only permissions
func (f *File) Save(token string) error {
	if err := os.MkdirAll(f.configDir, 0700); err != nil {
		return err
	}

	data, err := json.MarshalIndent(tokenData{Token: token}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(f.path(), data, 0600)
}

// Clear removes the persisted token. Clearing an absent token is not an error.
func (f *File) Clear() error {
	err := os.Remove(f.path())
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
