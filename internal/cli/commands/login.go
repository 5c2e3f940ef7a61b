package commands

import (
	"errors"
	"fmt"
	"os"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/campusd-dev/campusd/internal/shell/routes"
	"github.com/campusd-dev/campusd/internal/shell/storage"
	"github.com/campusd-dev/campusd/internal/validate"
)

// NewLoginCmd creates the login command
func NewLoginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate with the campus API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogin(email, password)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address (or set CAMPUSD_EMAIL)")
	cmd.Flags().StringVar(&password, "password", "", "Password (or set CAMPUSD_PASSWORD, will prompt if not provided)")

	return cmd
}

func runLogin(email, password string) error {
	// Check for environment variables (useful for scripting)
	if email == "" {
		email = os.Getenv("CAMPUSD_EMAIL")
	}
	if password == "" {
		password = os.Getenv("CAMPUSD_PASSWORD")
	}

	if email == "" {
		return fmt.Errorf("email is required (use --email flag or CAMPUSD_EMAIL env var)")
	}

	// Prompt for password if not provided via flag or env var
	if password == "" {
		if term.IsTerminal(int(syscall.Stdin)) {
			fmt.Print("Password: ")
			bytePassword, err := term.ReadPassword(int(syscall.Stdin))
			if err != nil {
				return fmt.Errorf("failed to read password: %w", err)
			}
			password = string(bytePassword)
			fmt.Println()
		} else {
			return fmt.Errorf("password is required in non-interactive mode (use --password flag or CAMPUSD_PASSWORD env var)")
		}
	}

	shell, err := NewShell()
	if err != nil {
		return err
	}

	// Validation errors never reach the network
	if errs := shell.Forms.Check(validate.LoginForm{Email: email, Password: password}); len(errs) > 0 {
		fmt.Println("Please fix the following:")
		printFieldErrors(errs)
		return fmt.Errorf("invalid credentials format")
	}

	fmt.Printf("Logging in to %s...\n", shell.Config.APIBaseURL)

	user, err := shell.Store.Login(cmdContext(), email, password)
	if err != nil {
		shell.FlushStatus()
		return fmt.Errorf("login failed: %w", err)
	}

	shell.FlushStatus()
	fmt.Printf("  User: %s (%s)\n", user.FullName, user.Email)
	fmt.Printf("  Role: %s\n", user.Role)

	// Return to the path the guard captured before sending us to login,
	// then forget it (history-replace: back never returns to login).
	intended, err := shell.Storage.Get(storage.KeyIntended)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		shell.Log.Warn().Err(err).Msg("Failed to read intended destination")
	}
	if intended != "" {
		_ = shell.Storage.Delete(storage.KeyIntended)
	}

	destination := routes.LoginRedirect(intended, shell.Store.Snapshot().Role())
	fmt.Printf("→ %s\n", destination)

	return nil
}
