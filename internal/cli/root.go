package cli

import (
	"github.com/spf13/cobra"

	"github.com/dkarlsen/fitquest/internal/service"
)

// App holds references to the service interfaces used by CLI commands.
type App struct {
	Plan service.PlanService

	// IsInteractive reports whether stdin is an interactive terminal.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "fitquest" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "fitquest",
		Short: "Daily fitness mission planner",
	}

	root.AddCommand(
		newPlanCmd(app),
		newServeCmd(),
	)

	return root
}
