package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewLogoutCmd creates the logout command
func NewLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			shell, err := NewShell()
			if err != nil {
				return err
			}

			if !shell.Store.Snapshot().Authenticated {
				fmt.Println("Not logged in.")
				return nil
			}

			shell.Store.Logout()
			fmt.Println("✓ Logged out.")
			return nil
		},
	}
}
