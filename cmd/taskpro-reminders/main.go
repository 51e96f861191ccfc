// taskpro-reminders is the scheduled reminder job, meant to run from
// cron. It sweeps every user in the store, emails at most one reminder
// per user per day, and stamps last_reminder_date on success. It writes
// the store back only when something changed.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/jyang234/taskpro/internal/config"
	"github.com/jyang234/taskpro/internal/email"
	"github.com/jyang234/taskpro/internal/reminder"
	"github.com/jyang234/taskpro/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "taskpro-reminders: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	st, err := openStore(cfg)
	if err != nil {
		return err
	}

	doc, err := st.Load()
	if err != nil {
		return err
	}

	fmt.Printf("[%s] Starting scheduled reminders...\n", time.Now().Format("2006-01-02 15:04:05"))

	dispatcher := email.NewSMTP(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.From, cfg.SMTP.Username, cfg.SMTP.Password)
	evaluator := reminder.New(dispatcher)

	changed, results := evaluator.RunScheduled(doc)
	for _, res := range results {
		switch {
		case res.SkipReason != "":
			fmt.Printf("[%s] skipped: %s\n", res.Username, res.SkipReason)
		case res.Warning != nil:
			fmt.Printf("[%s] warning: %v\n", res.Username, res.Warning)
		case res.Dispatched:
			fmt.Printf("[%s] reminder sent for %d task(s)\n", res.Username, len(res.DueTasks))
		default:
			fmt.Printf("[%s] no due tasks\n", res.Username)
		}
	}

	if changed {
		if err := st.Save(doc); err != nil {
			return fmt.Errorf("failed to save store: %w", err)
		}
	}
	return nil
}

func openStore(cfg *config.Config) (store.Store, error) {
	switch cfg.Store.Backend {
	case config.BackendSQLite:
		return store.OpenSQLite(cfg.DataPath())
	case config.BackendJSON, "":
		return store.NewJSON(cfg.DataPath()), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}
