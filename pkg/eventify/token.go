package eventify

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// tokenFileName is the CLI token file under the user's home directory.
const tokenFileName = ".eventify_token"

// LoadToken attempts to load a saved auth token.
// Order of precedence:
//  1. EVENTIFY_TOKEN environment variable
//  2. ~/.eventify_token file
func LoadToken() (string, error) {
	if token := strings.TrimSpace(os.Getenv("EVENTIFY_TOKEN")); token != "" {
		return token, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}

	data, err := os.ReadFile(filepath.Join(home, tokenFileName))
	if err != nil {
		return "", ErrNoToken
	}

	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", ErrNoToken
	}
	return token, nil
}

// SaveToken writes a token to ~/.eventify_token.
func SaveToken(token string) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("cannot determine home directory: %w", err)
	}
	return os.WriteFile(filepath.Join(home, tokenFileName), []byte(token), 0600)
}

// ClearToken removes the saved token file, if any.
func ClearToken() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("cannot determine home directory: %w", err)
	}

	err = os.Remove(filepath.Join(home, tokenFileName))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
