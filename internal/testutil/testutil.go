// Package testutil provides shared helpers for taskpro tests: an
// isolated home directory and a recording fake dispatcher.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// TestEnv provides access to isolated test directories.
type TestEnv struct {
	Home    string // Mocked HOME directory
	DataDir string // ~/.taskpro equivalent
	t       *testing.T
}

// SetupTestEnv creates an isolated test environment with a mocked HOME.
// t.TempDir() handles cleanup and t.Setenv() restores the environment.
func SetupTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	tmpHome := t.TempDir()
	dataDir := filepath.Join(tmpHome, ".taskpro")
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		t.Fatalf("Failed to create data dir: %v", err)
	}

	t.Setenv("HOME", tmpHome)

	return &TestEnv{
		Home:    tmpHome,
		DataDir: dataDir,
		t:       t,
	}
}

// WriteFile creates a file under the data directory.
func (e *TestEnv) WriteFile(relPath, content string) string {
	e.t.Helper()

	path := filepath.Join(e.DataDir, relPath)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		e.t.Fatalf("Failed to create directory for %s: %v", relPath, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		e.t.Fatalf("Failed to write %s: %v", relPath, err)
	}
	return path
}

// Dispatch records one delivered notification.
type Dispatch struct {
	To      string
	Subject string
	Body    string
}

// FakeDispatcher records sends instead of delivering them. Setting Err
// makes every send fail.
type FakeDispatcher struct {
	Sent []Dispatch
	Err  error
}

// Send records the notification, or fails with the configured error.
func (f *FakeDispatcher) Send(to, subject, body string) error {
	if f.Err != nil {
		return f.Err
	}
	f.Sent = append(f.Sent, Dispatch{To: to, Subject: subject, Body: body})
	return nil
}
