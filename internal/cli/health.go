package cli

import (
	"time"

	"github.com/spf13/cobra"
)

// HealthResult is the server's health report plus what the CLI observed
type HealthResult struct {
	Status  string        `json:"status"`
	Server  string        `json:"server"`
	Latency time.Duration `json:"latency_ns"`
}

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the clinic server is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result HealthResult

			start := time.Now()
			if err := client.Get(cmd.Context(), "/api/v1/health", &result); err != nil {
				return err
			}
			result.Server = cfg.ServerURL
			result.Latency = time.Since(start)

			newOutput(cmd).Print(result)
			return nil
		},
	}
}
