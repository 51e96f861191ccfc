package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jyang234/taskpro/internal/logging"
)

var addTaskCmd = &cobra.Command{
	Use:   "add-task",
	Short: "Add a task with a due date",
	RunE:  runAddTask,
}

func init() {
	addTaskCmd.Flags().String("title", "", "Task title")
	addTaskCmd.Flags().String("description", "", "Task description")
	addTaskCmd.Flags().String("due", "", "Due date (YYYY-MM-DD)")
	addTaskCmd.MarkFlagRequired("title")
	addTaskCmd.MarkFlagRequired("due")
}

func runAddTask(cmd *cobra.Command, args []string) error {
	title, _ := cmd.Flags().GetString("title")
	description, _ := cmd.Flags().GetString("description")
	due, _ := cmd.Flags().GetString("due")

	svc, err := newService()
	if err != nil {
		return err
	}

	return logging.Action("add-task", func() error {
		id, err := svc.AddTask(title, description, due)
		if err != nil {
			return err
		}
		fmt.Printf("Task %q added.\n", title)
		fmt.Printf("Task ID: %s\n", id)
		return nil
	})
}
