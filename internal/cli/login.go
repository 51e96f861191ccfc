package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jyang234/taskpro/internal/logging"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in, creating the account on first use",
	RunE:  runLogin,
}

func init() {
	loginCmd.Flags().String("username", "", "Username to log in as")
	loginCmd.Flags().String("email", "", "Email for reminders (optional)")
	loginCmd.MarkFlagRequired("username")
}

func runLogin(cmd *cobra.Command, args []string) error {
	username, _ := cmd.Flags().GetString("username")
	emailAddr, _ := cmd.Flags().GetString("email")

	svc, err := newService()
	if err != nil {
		return err
	}

	// Prompt for an email only when the account has none on file and
	// the flag did not supply one.
	if emailAddr == "" && svc.UserNeedsEmail(username) {
		emailAddr = promptEmail()
	}

	return logging.Action("login", func() error {
		res, err := svc.Login(username, emailAddr)
		if err != nil {
			return err
		}
		fmt.Printf("Logged in as %s\n", username)
		printReminders(res)
		return nil
	})
}

func promptEmail() string {
	fmt.Print("Enter your email (optional, for reminders): ")
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return ""
	}
	return strings.TrimSpace(line)
}
