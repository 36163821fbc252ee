package cli

import (
	"github.com/alexanderramin/pathfinder/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Roadmaps service.RoadmapService
	Progress service.ProgressService
	Transfer service.TransferService

	// IsInteractive reports whether the terminal can host the checklist
	// view and pickers. Nil means non-interactive.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "pathfinder" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:          "pathfinder",
		Short:        "Work through security career roadmaps as checklists",
		SilenceUsage: true,
	}

	root.AddCommand(
		newRoadmapCmd(app),
		newProgressCmd(app),
	)

	return root
}
