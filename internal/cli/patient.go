package cli

import (
	"net/url"

	"github.com/spf13/cobra"

	"github.com/clinicio/clinicio/internal/api/response"
)

func newPatientCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patient",
		Short: "Patient record commands",
	}

	cmd.AddCommand(newPatientAddCmd())
	cmd.AddCommand(newPatientListCmd())
	cmd.AddCommand(newPatientGetCmd())
	cmd.AddCommand(newPatientRemoveCmd())

	return cmd
}

func newPatientAddCmd() *cobra.Command {
	var name, phone, email, address string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a patient",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{
				"name":    name,
				"phone":   phone,
				"email":   email,
				"address": address,
			}
			var result response.Patient

			if err := client.Post(cmd.Context(), "/api/v1/patients", req, &result); err != nil {
				return err
			}

			newOutput(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Full name (required)")
	cmd.Flags().StringVar(&phone, "phone", "", "Phone number")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&address, "address", "", "Postal address")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newPatientListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List patients",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.PatientList

			if err := client.Get(cmd.Context(), "/api/v1/patients", &result); err != nil {
				return err
			}

			newOutput(cmd).Print(result)
			return nil
		},
	}
}

func newPatientGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a patient",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Patient

			if err := client.Get(cmd.Context(), "/api/v1/patients/"+url.PathEscape(args[0]), &result); err != nil {
				return err
			}

			newOutput(cmd).Print(result)
			return nil
		},
	}
}

func newPatientRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a patient",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete(cmd.Context(), "/api/v1/patients/"+url.PathEscape(args[0])); err != nil {
				return err
			}

			newOutput(cmd).PrintMessage("Patient removed")
			return nil
		},
	}
}
