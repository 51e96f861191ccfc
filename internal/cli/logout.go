package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jyang234/taskpro/internal/logging"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out the current user",
	RunE:  runLogout,
}

func runLogout(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}

	return logging.Action("logout", func() error {
		username, err := svc.Logout()
		if err != nil {
			return err
		}
		if username == "" {
			fmt.Println("No user is currently logged in.")
			return nil
		}
		fmt.Printf("Logged out %s\n", username)
		return nil
	})
}
