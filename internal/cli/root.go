package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jyang234/taskpro/internal/config"
	"github.com/jyang234/taskpro/internal/email"
	"github.com/jyang234/taskpro/internal/logging"
	"github.com/jyang234/taskpro/internal/reminder"
	"github.com/jyang234/taskpro/internal/service"
	"github.com/jyang234/taskpro/internal/session"
	"github.com/jyang234/taskpro/internal/store"
)

var (
	debug   bool
	rootCmd *cobra.Command
)

func init() {
	rootCmd = &cobra.Command{
		Use:   "taskpro",
		Short: "taskpro - personal task tracker with due-date reminders",
		Long: `taskpro is a single-user task tracker. Log in once, add tasks with
due dates, and get reminded on screen and by email when they are due
or overdue.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetDebug(debug)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable action logging")
}

// Execute runs the root command.
func Execute(version string) error {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(addTaskCmd)
	rootCmd.AddCommand(updateTaskCmd)
	rootCmd.AddCommand(completeTaskCmd)
	rootCmd.AddCommand(listTasksCmd)
	rootCmd.AddCommand(deleteTaskCmd)
	rootCmd.AddCommand(sendRemindersCmd)
	rootCmd.AddCommand(toggleRemindersCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

// newService wires config, store backend, session slot, and the reminder
// evaluator into a task service for one invocation.
func newService() (*service.Service, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	st, err := openStore(cfg)
	if err != nil {
		return nil, err
	}

	sessions := session.New(config.SessionPath())
	evaluator := reminder.New(newDispatcher(cfg))

	return service.New(st, sessions, evaluator)
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

func newDispatcher(cfg *config.Config) email.Dispatcher {
	return email.NewSMTP(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.From, cfg.SMTP.Username, cfg.SMTP.Password)
}

// printReminders surfaces a reminder evaluation to the terminal.
func printReminders(res reminder.Result) {
	if len(res.DueTasks) == 0 {
		return
	}
	fmt.Println("\nYou have tasks due or overdue:")
	for _, t := range res.DueTasks {
		fmt.Printf("  %s — Due: %s\n", t.Title, t.DueDate)
	}
	if res.Dispatched {
		fmt.Println("Email reminder sent.")
	}
	if res.Warning != nil {
		fmt.Printf("Warning: %v\n", res.Warning)
	}
}
