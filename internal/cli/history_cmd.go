package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"greenlight/internal/cli/formatter"
)

func newHistoryCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List saved assessments, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			summaries, err := app.Assessments.History(context.Background(), limit)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderHistory(summaries))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of assessments to list")

	return cmd
}
