// Package cli wires the cobra command tree for the greenlight binary.
package cli

import (
	"github.com/spf13/cobra"

	"greenlight/internal/service"
)

// App holds references to the service interfaces used by CLI commands.
type App struct {
	Assessments service.AssessmentService
}

// NewRootCmd creates the top-level "greenlight" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "greenlight",
		Short:         "Shoot feasibility and budget-risk assessor",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newAssessCmd(app),
		newHistoryCmd(app),
		newShowCmd(app),
		newDeleteCmd(app),
	)

	return root
}
