package cli

import (
	"github.com/spf13/cobra"

	"github.com/clinicio/clinicio/internal/api/response"
)

func newQueueCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "queue",
		Short: "Walk-in queue commands",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "join <patient-id>",
		Short: "Add a patient to the back of the queue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.QueueEntry

			if err := client.Post(cmd.Context(), "/api/v1/queue", map[string]string{"patient_id": args[0]}, &result); err != nil {
				return err
			}

			newOutput(cmd).Print(result)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "next",
		Short: "Call the patient at the front of the queue",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.QueueEntry

			if err := client.Post(cmd.Context(), "/api/v1/queue/next", nil, &result); err != nil {
				return err
			}

			newOutput(cmd).Print(result)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Show the queue",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Queue

			if err := client.Get(cmd.Context(), "/api/v1/queue", &result); err != nil {
				return err
			}

			newOutput(cmd).Print(result)
			return nil
		},
	})

	return cmd
}
