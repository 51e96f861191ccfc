package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jyang234/taskpro/internal/logging"
)

var sendRemindersCmd = &cobra.Command{
	Use:   "send-reminders",
	Short: "Check due tasks and send an email reminder now",
	Long: `Evaluates the current user's due and overdue tasks and attempts an
email reminder immediately. Unlike the scheduled taskpro-reminders job,
this path does not consult or update the once-a-day reminder stamp.`,
	RunE: runSendReminders,
}

var toggleRemindersCmd = &cobra.Command{
	Use:   "toggle-email-reminders",
	Short: "Enable or disable email reminders for the current user",
	RunE:  runToggleReminders,
}

func runSendReminders(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}

	return logging.Action("send-reminders", func() error {
		res, err := svc.SendDueReminders()
		if err != nil {
			return err
		}
		if len(res.DueTasks) == 0 {
			fmt.Println("No due tasks.")
			return nil
		}
		printReminders(res)
		return nil
	})
}

func runToggleReminders(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}

	return logging.Action("toggle-email-reminders", func() error {
		enabled, err := svc.ToggleEmailReminders()
		if err != nil {
			return err
		}
		if enabled {
			fmt.Println("Email reminders enabled.")
		} else {
			fmt.Println("Email reminders disabled.")
		}
		return nil
	})
}
