package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/campusd-dev/campusd/internal/shell/routes"
	"github.com/campusd-dev/campusd/internal/shell/storage"
)

// NewOpenCmd creates the open command
func NewOpenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open <path>",
		Short: "Open a route, subject to the access guard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shell, err := NewShell()
			if err != nil {
				return err
			}
			return visit(shell, args[0])
		},
	}
}

// visit runs a path through the route table and the guard, printing the
// outcome the way the web shell would render it.
func visit(shell *Shell, path string) error {
	route, ok := routes.Lookup(path)
	if !ok {
		fmt.Printf("Not found: %s\n", path)
		return nil
	}

	decision := routes.Evaluate(shell.Store.Snapshot(), route, path)

	switch decision.Action {
	case routes.ShowLoading:
		fmt.Println("Loading...")

	case routes.RedirectLogin:
		// Remember where the user was headed so the next login returns there
		if decision.Intended != "" && decision.Intended != routes.PathLogin {
			if err := shell.Storage.Set(storage.KeyIntended, decision.Intended); err != nil {
				shell.Log.Warn().Err(err).Msg("Failed to save intended destination")
			}
		}
		fmt.Printf("→ %s (login required)\n", decision.Target)

	case routes.RedirectUnauthorized:
		fmt.Printf("→ %s (your role may not view %s)\n", decision.Target, route.Path)

	case routes.Render:
		fmt.Printf("✓ %s\n", decision.Target)
	}

	return nil
}
