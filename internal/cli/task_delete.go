package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jyang234/taskpro/internal/logging"
)

var deleteTaskCmd = &cobra.Command{
	Use:   "delete-task [task-id]",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runDeleteTask,
}

func runDeleteTask(cmd *cobra.Command, args []string) error {
	id := args[0]

	svc, err := newService()
	if err != nil {
		return err
	}

	return logging.Action("delete-task", func() error {
		task, err := svc.DeleteTask(id)
		if err != nil {
			return err
		}
		fmt.Printf("Deleted task %q\n", task.Title)
		return nil
	})
}
