package commands

import (
	"fmt"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/campusd-dev/campusd/internal/shell/api"
	"github.com/campusd-dev/campusd/internal/validate"
)

// NewRegisterCmd creates the register command
func NewRegisterCmd() *cobra.Command {
	var fullName, email, enrollmentID, department, role, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new campus account",
		Long: `Create a new campus account.

Registration does not log you in: run 'campusd login' once your account
has been created.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRegister(fullName, email, enrollmentID, department, role, password)
		},
	}

	cmd.Flags().StringVar(&fullName, "name", "", "Full name")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&enrollmentID, "id", "", "Enrollment or staff ID")
	cmd.Flags().StringVar(&department, "department", "", "Department")
	cmd.Flags().StringVar(&role, "role", "STUDENT", "Role (STUDENT or FACULTY)")
	cmd.Flags().StringVar(&password, "password", "", "Password (will prompt if not provided)")

	return cmd
}

func runRegister(fullName, email, enrollmentID, department, role, password string) error {
	confirm := password

	// Prompt for the password twice when it was not passed as a flag
	if password == "" {
		if !term.IsTerminal(int(syscall.Stdin)) {
			return fmt.Errorf("password is required in non-interactive mode (use --password flag)")
		}

		fmt.Print("Password: ")
		bytePassword, err := term.ReadPassword(int(syscall.Stdin))
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		password = string(bytePassword)
		fmt.Println()

		fmt.Print("Confirm password: ")
		byteConfirm, err := term.ReadPassword(int(syscall.Stdin))
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		confirm = string(byteConfirm)
		fmt.Println()
	}

	shell, err := NewShell()
	if err != nil {
		return err
	}

	form := validate.RegisterForm{
		FullName:        fullName,
		Email:           email,
		EnrollmentID:    enrollmentID,
		Department:      department,
		Role:            role,
		Password:        password,
		ConfirmPassword: confirm,
	}
	if errs := shell.Forms.Check(form); len(errs) > 0 {
		fmt.Println("Please fix the following:")
		printFieldErrors(errs)
		return fmt.Errorf("invalid registration form")
	}

	fmt.Printf("Registering with %s...\n", shell.Config.APIBaseURL)

	_, err = shell.Store.Register(cmdContext(), api.RegisterRequest{
		FullName:     fullName,
		Email:        email,
		EnrollmentID: enrollmentID,
		Department:   department,
		Role:         role,
		Password:     password,
	})
	shell.FlushStatus()
	if err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	return nil
}
