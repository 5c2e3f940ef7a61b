package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/campusd-dev/campusd/internal/shell/api"
)

// NewWhoamiCmd creates the whoami command
func NewWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			shell, err := NewShell()
			if err != nil {
				return err
			}
			return runWhoami(shell)
		},
	}
}

func runWhoami(shell *Shell) error {
	snap := shell.Store.Snapshot()
	if !snap.Authenticated {
		fmt.Println("Not logged in. Run 'campusd login' first.")
		return nil
	}

	// Revalidate lazily: the stored token is trusted until the API
	// rejects it, at which point the session is downgraded.
	user, err := shell.API.CurrentUser(cmdContext(), snap.Token)
	if err != nil {
		var apiErr *api.Error
		if errors.As(err, &apiErr) && apiErr.Unauthorized() {
			shell.Store.Downgrade()
			shell.FlushStatus()
			return nil
		}

		// Transport failure: show the cached record rather than nothing
		shell.Log.Warn().Err(err).Msg("Failed to refresh session, showing cached user")
		user = snap.User
	}

	fmt.Printf("User:       %s\n", user.FullName)
	fmt.Printf("Email:      %s\n", user.Email)
	fmt.Printf("Role:       %s\n", user.Role)
	if user.EnrollmentID != "" {
		fmt.Printf("ID:         %s\n", user.EnrollmentID)
	}
	if user.Department != "" {
		fmt.Printf("Department: %s\n", user.Department)
	}
	return nil
}
