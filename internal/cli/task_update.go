package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jyang234/taskpro/internal/logging"
)

var updateTaskCmd = &cobra.Command{
	Use:   "update-task [task-id]",
	Short: "Update a task's title, description, or due date",
	Long: `Updates the given fields of a task you own. Fields not supplied are
left unchanged.`,
	Args: cobra.ExactArgs(1),
	RunE: runUpdateTask,
}

func init() {
	updateTaskCmd.Flags().String("title", "", "New title")
	updateTaskCmd.Flags().String("description", "", "New description")
	updateTaskCmd.Flags().String("due", "", "New due date (YYYY-MM-DD)")
}

func runUpdateTask(cmd *cobra.Command, args []string) error {
	id := args[0]
	title, _ := cmd.Flags().GetString("title")
	description, _ := cmd.Flags().GetString("description")
	due, _ := cmd.Flags().GetString("due")

	svc, err := newService()
	if err != nil {
		return err
	}

	return logging.Action("update-task", func() error {
		if err := svc.UpdateTask(id, title, description, due); err != nil {
			return err
		}
		fmt.Printf("Task %s updated.\n", id)
		return nil
	})
}
