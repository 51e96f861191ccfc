// Package session tracks which username is logged in across process
// invocations. The session lives in its own file, independent of the
// task document.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

type record struct {
	Username string `json:"username"`
}

// Store persists the single-username session slot.
type Store struct {
	path string
}

// New creates a session store backed by the given file path.
func New(path string) *Store {
	return &Store{path: path}
}

// Save records the given username as the current session.
func (s *Store) Save(username string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}
	data, err := json.Marshal(record{Username: username})
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}
	return nil
}

// Load returns the saved username, or "" when no session exists.
func (s *Store) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read session: %w", err)
	}
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return "", fmt.Errorf("failed to parse session: %w", err)
	}
	return rec.Username, nil
}

// Clear removes the session. Clearing an absent session is a no-op.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
