package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jyang234/taskpro/internal/logging"
)

var completeTaskCmd = &cobra.Command{
	Use:   "complete-task [task-id]",
	Short: "Mark a task as completed",
	Args:  cobra.ExactArgs(1),
	RunE:  runCompleteTask,
}

func runCompleteTask(cmd *cobra.Command, args []string) error {
	id := args[0]

	svc, err := newService()
	if err != nil {
		return err
	}

	return logging.Action("complete-task", func() error {
		task, err := svc.CompleteTask(id)
		if err != nil {
			return err
		}
		fmt.Printf("Task %q marked as completed.\n", task.Title)
		return nil
	})
}
