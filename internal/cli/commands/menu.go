package commands

import (
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/campusd-dev/campusd/internal/shell/navigation"
)

// NewMenuCmd creates the menu command
func NewMenuCmd() *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Show your navigation menu and open an entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(list)
		},
	}

	cmd.Flags().BoolVar(&list, "list", false, "Print the menu without prompting")

	return cmd
}

func runMenu(list bool) error {
	shell, err := NewShell()
	if err != nil {
		return err
	}

	snap := shell.Store.Snapshot()
	if !snap.Authenticated {
		fmt.Println("Not logged in. Run 'campusd login' first.")
		return nil
	}

	entries := navigation.Resolve(snap.Role())
	if len(entries) == 0 {
		fmt.Printf("No menu entries for role %s.\n", snap.User.Role)
		return nil
	}

	if list {
		for _, entry := range entries {
			label := entry.Label
			if entry.Badge != "" {
				label = fmt.Sprintf("%s [%s]", label, entry.Badge)
			}
			fmt.Printf("  %-20s %s\n", label, entry.Path)
		}
		return nil
	}

	entry, err := promptMenuSelection(entries)
	if err != nil {
		return err
	}

	return visit(shell, entry.Path)
}

// promptMenuSelection shows an interactive prompt over the resolved menu
func promptMenuSelection(entries []navigation.Entry) (*navigation.Entry, error) {
	items := make([]string, len(entries))
	for i, entry := range entries {
		if entry.Badge != "" {
			items[i] = fmt.Sprintf("%s [%s]", entry.Label, entry.Badge)
		} else {
			items[i] = entry.Label
		}
	}

	prompt := promptui.Select{
		Label: "Navigate to",
		Items: items,
		Size:  len(items),
	}

	index, _, err := prompt.Run()
	if err != nil {
		return nil, fmt.Errorf("selection cancelled: %w", err)
	}

	return &entries[index], nil
}
