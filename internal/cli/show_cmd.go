package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"greenlight/internal/cli/formatter"
)

func newShowCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show ID",
		Short: "Re-render a saved assessment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := app.Assessments.GetByID(context.Background(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s  %s\n\n",
				formatter.Dim("Assessed "+rec.CreatedAt.Format("Jan 2, 2006 15:04")),
				formatter.Dim(rec.ID))
			fmt.Fprint(out, formatter.RenderAssessment(rec.Title, rec.Output))
			return nil
		},
	}

	return cmd
}

func newDeleteCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a saved assessment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Assessments.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
			return nil
		},
	}

	return cmd
}
