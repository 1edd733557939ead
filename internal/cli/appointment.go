package cli

import (
	"fmt"
	"net/url"
	"time"

	"github.com/spf13/cobra"

	"github.com/clinicio/clinicio/internal/api/response"
)

func newAppointmentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "appointment",
		Short: "Appointment commands",
	}

	cmd.AddCommand(newAppointmentScheduleCmd())
	cmd.AddCommand(newAppointmentListCmd())
	cmd.AddCommand(newAppointmentGetCmd())
	cmd.AddCommand(newAppointmentCancelCmd())

	return cmd
}

func newAppointmentScheduleCmd() *cobra.Command {
	var patientID, doctorID, at string

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Book an appointment",
		RunE: func(cmd *cobra.Command, args []string) error {
			startsAt, err := time.Parse(time.RFC3339, at)
			if err != nil {
				return fmt.Errorf("--at must be RFC3339, e.g. 2025-03-01T09:30:00Z: %w", err)
			}

			req := map[string]any{
				"patient_id": patientID,
				"starts_at":  startsAt,
			}
			if doctorID != "" {
				req["doctor_id"] = doctorID
			}
			var result response.Appointment

			if err := client.Post(cmd.Context(), "/api/v1/appointments", req, &result); err != nil {
				return err
			}

			newOutput(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&patientID, "patient", "", "Patient ID (required)")
	cmd.Flags().StringVar(&doctorID, "doctor", "", "Doctor ID (defaults to you)")
	cmd.Flags().StringVar(&at, "at", "", "Start time, RFC3339 (required)")
	_ = cmd.MarkFlagRequired("patient")
	_ = cmd.MarkFlagRequired("at")

	return cmd
}

func newAppointmentListCmd() *cobra.Command {
	var patientID, doctorID, status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List appointments",
		RunE: func(cmd *cobra.Command, args []string) error {
			q := url.Values{}
			if patientID != "" {
				q.Set("patient_id", patientID)
			}
			if doctorID != "" {
				q.Set("doctor_id", doctorID)
			}
			if status != "" {
				q.Set("status", status)
			}

			path := "/api/v1/appointments"
			if len(q) > 0 {
				path += "?" + q.Encode()
			}

			var result response.AppointmentList
			if err := client.Get(cmd.Context(), path, &result); err != nil {
				return err
			}

			newOutput(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&patientID, "patient", "", "Only this patient")
	cmd.Flags().StringVar(&doctorID, "doctor", "", "Only this doctor")
	cmd.Flags().StringVar(&status, "status", "", "Only this status: scheduled, cancelled")

	return cmd
}

func newAppointmentGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show an appointment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Appointment

			if err := client.Get(cmd.Context(), "/api/v1/appointments/"+url.PathEscape(args[0]), &result); err != nil {
				return err
			}

			newOutput(cmd).Print(result)
			return nil
		},
	}
}

func newAppointmentCancelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <id>",
		Short: "Cancel an appointment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Appointment

			if err := client.Post(cmd.Context(), "/api/v1/appointments/"+url.PathEscape(args[0])+"/cancel", nil, &result); err != nil {
				return err
			}

			newOutput(cmd).Print(result)
			return nil
		},
	}
}
