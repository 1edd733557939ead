package cli

import (
	"github.com/spf13/cobra"

	"github.com/clinicio/clinicio/internal/api/response"
)

func newTotalsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "totals",
		Short: "Show clinic-wide totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Totals

			if err := client.Get(cmd.Context(), "/api/v1/analytics/totals", &result); err != nil {
				return err
			}

			newOutput(cmd).Print(result)
			return nil
		},
	}
}
