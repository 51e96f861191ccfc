package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jyang234/taskpro/internal/logging"
	"github.com/jyang234/taskpro/internal/service"
)

var listTasksCmd = &cobra.Command{
	Use:   "list-tasks",
	Short: "List tasks",
	Long: `Lists the current user's tasks, or every task when nobody is logged
in. Due and overdue tasks are echoed as reminders.`,
	RunE: runListTasks,
}

func init() {
	listTasksCmd.Flags().String("filter", "all", "Filter by status: all, completed, or pending")
	listTasksCmd.Flags().Bool("verbose", false, "Show task descriptions")
	listTasksCmd.Flags().Bool("summary", false, "Show a task count summary")
}

func runListTasks(cmd *cobra.Command, args []string) error {
	filterArg, _ := cmd.Flags().GetString("filter")
	verbose, _ := cmd.Flags().GetBool("verbose")
	summary, _ := cmd.Flags().GetBool("summary")

	filter, err := service.ParseFilter(filterArg)
	if err != nil {
		return err
	}

	svc, err := newService()
	if err != nil {
		return err
	}

	return logging.Action("list-tasks", func() error {
		tasks, res, err := svc.ListTasks(filter)
		if err != nil {
			return err
		}

		if len(tasks) == 0 {
			fmt.Println("No tasks found.")
		}
		for _, t := range tasks {
			status := "[ ]"
			if t.Completed {
				status = "[x]"
			}
			fmt.Printf("%s %s - Due: %s  (%s)\n", status, t.Title, t.DueDate, t.ID)
			if verbose && t.Description != "" {
				fmt.Printf("      %s\n", t.Description)
			}
		}

		if summary {
			s := service.Summarize(tasks)
			fmt.Printf("\nSummary:\nTotal: %d | Completed: %d | Pending: %d\n", s.Total, s.Completed, s.Pending)
		}

		printReminders(res)
		return nil
	})
}
