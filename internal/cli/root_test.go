package cli

import (
	"strings"
	"testing"

	"github.com/jyang234/taskpro/internal/config"
	"github.com/jyang234/taskpro/internal/store"
	"github.com/jyang234/taskpro/internal/testutil"
)

func TestOpenStoreBackends(t *testing.T) {
	testutil.SetupTestEnv(t)

	cfg := config.DefaultConfig()
	st, err := openStore(cfg)
	if err != nil {
		t.Fatalf("openStore failed for default config: %v", err)
	}
	if _, ok := st.(*store.JSON); !ok {
		t.Errorf("Default backend must be the JSON store, got %T", st)
	}

	cfg.Store.Backend = ""
	if st, err = openStore(cfg); err != nil {
		t.Fatalf("openStore failed for empty backend: %v", err)
	}
	if _, ok := st.(*store.JSON); !ok {
		t.Errorf("Empty backend must fall back to the JSON store, got %T", st)
	}

	cfg.Store.Backend = config.BackendSQLite
	if st, err = openStore(cfg); err != nil {
		t.Fatalf("openStore failed for sqlite backend: %v", err)
	}
	if _, ok := st.(*store.SQLite); !ok {
		t.Errorf("Expected the SQLite store, got %T", st)
	}

	cfg.Store.Backend = "cassandra"
	if _, err = openStore(cfg); err == nil || !strings.Contains(err.Error(), "unknown store backend") {
		t.Errorf("Unknown backend must be rejected, got %v", err)
	}
}

func TestCommandNames(t *testing.T) {
	want := map[string]string{
		loginCmd.Name():           "login",
		logoutCmd.Name():          "logout",
		addTaskCmd.Name():         "add-task",
		updateTaskCmd.Name():      "update-task",
		completeTaskCmd.Name():    "complete-task",
		listTasksCmd.Name():       "list-tasks",
		deleteTaskCmd.Name():      "delete-task",
		sendRemindersCmd.Name():   "send-reminders",
		toggleRemindersCmd.Name(): "toggle-email-reminders",
		configCmd.Name():          "config",
		versionCmd.Name():         "version",
	}
	for got, expected := range want {
		if got != expected {
			t.Errorf("Command named %q, want %q", got, expected)
		}
	}
}
