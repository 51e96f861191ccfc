package config

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/jyang234/taskpro/internal/testutil"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Store.Backend != BackendJSON {
		t.Errorf("Default backend = %q, want json", cfg.Store.Backend)
	}
	if cfg.SMTP.Host != "smtp.gmail.com" || cfg.SMTP.Port != 587 {
		t.Errorf("Default SMTP = %s:%d", cfg.SMTP.Host, cfg.SMTP.Port)
	}
}

func TestLoadWithoutFiles(t *testing.T) {
	testutil.SetupTestEnv(t)
	t.Setenv("TASKPRO_EMAIL_USER", "")
	t.Setenv("TASKPRO_EMAIL_PASS", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load with no config files must succeed: %v", err)
	}
	if cfg.Store.Backend != BackendJSON {
		t.Errorf("Backend = %q, want json", cfg.Store.Backend)
	}
}

func TestLoadGlobalFile(t *testing.T) {
	env := testutil.SetupTestEnv(t)
	t.Setenv("TASKPRO_EMAIL_USER", "")
	t.Setenv("TASKPRO_EMAIL_PASS", "")

	env.WriteFile("config.yaml", `
store:
  backend: sqlite
smtp:
  host: mail.example.com
  port: 2525
  from: me@example.com
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Store.Backend != BackendSQLite {
		t.Errorf("Backend = %q, want sqlite", cfg.Store.Backend)
	}
	if cfg.SMTP.Host != "mail.example.com" || cfg.SMTP.Port != 2525 {
		t.Errorf("SMTP = %s:%d", cfg.SMTP.Host, cfg.SMTP.Port)
	}
	if cfg.SMTP.From != "me@example.com" {
		t.Errorf("From = %q", cfg.SMTP.From)
	}
}

func TestLoadCredentialsFromEnv(t *testing.T) {
	testutil.SetupTestEnv(t)
	t.Setenv("TASKPRO_EMAIL_USER", "bot@example.com")
	t.Setenv("TASKPRO_EMAIL_PASS", "app-password")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.SMTP.Username != "bot@example.com" || cfg.SMTP.Password != "app-password" {
		t.Errorf("Credentials not taken from env: %q / %q", cfg.SMTP.Username, cfg.SMTP.Password)
	}
	// With no from in the file the sender falls back to the username.
	if cfg.SMTP.From != "bot@example.com" {
		t.Errorf("From = %q, want the username fallback", cfg.SMTP.From)
	}
}

func TestDataPath(t *testing.T) {
	testutil.SetupTestEnv(t)

	cfg := DefaultConfig()
	if got := cfg.DataPath(); !strings.HasSuffix(got, filepath.Join(".taskpro", "tasks.json")) {
		t.Errorf("JSON data path = %q", got)
	}

	cfg.Store.Backend = BackendSQLite
	if got := cfg.DataPath(); !strings.HasSuffix(got, filepath.Join(".taskpro", "tasks.db")) {
		t.Errorf("SQLite data path = %q", got)
	}

	cfg.Store.Path = "/tmp/override.json"
	if got := cfg.DataPath(); got != "/tmp/override.json" {
		t.Errorf("Explicit path must win, got %q", got)
	}
}

func TestWriteDefaultRoundTrips(t *testing.T) {
	testutil.SetupTestEnv(t)
	t.Setenv("TASKPRO_EMAIL_USER", "")
	t.Setenv("TASKPRO_EMAIL_PASS", "")

	path := GlobalConfigPath()
	if err := WriteDefault(path); err != nil {
		t.Fatalf("WriteDefault failed: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load of the generated config failed: %v", err)
	}
	if cfg.Store.Backend != BackendJSON {
		t.Errorf("Backend = %q, want json", cfg.Store.Backend)
	}
	if cfg.SMTP.Port != 587 {
		t.Errorf("Port = %d, want 587", cfg.SMTP.Port)
	}
}
