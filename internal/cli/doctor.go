package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clinicio/clinicio/internal/api/response"
	"github.com/clinicio/clinicio/internal/credential"
)

func newDoctorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Doctor account commands",
	}

	cmd.AddCommand(newDoctorRegisterCmd())
	cmd.AddCommand(newDoctorLoginCmd())
	cmd.AddCommand(newDoctorLogoutCmd())
	cmd.AddCommand(newDoctorMeCmd())
	cmd.AddCommand(newDoctorPasswdCmd())
	cmd.AddCommand(newDoctorListCmd())

	return cmd
}

// passwordFlag reads a password flag. An unset flag is a missing value;
// a set but malformed one is left for the server to reject.
func passwordFlag(cmd *cobra.Command, name string) (string, error) {
	if !cmd.Flags().Changed(name) {
		return "", fmt.Errorf("--%s: %w", name, credential.ErrMissingValue)
	}
	return cmd.Flags().GetString(name)
}

func newDoctorRegisterCmd() *cobra.Command {
	var name, user, phone, email, address string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new doctor account",
		RunE: func(cmd *cobra.Command, args []string) error {
			pass, err := passwordFlag(cmd, "pass")
			if err != nil {
				return err
			}

			req := map[string]string{
				"username": user,
				"password": pass,
				"name":     name,
				"phone":    phone,
				"email":    email,
				"address":  address,
			}
			var result response.AuthResponse

			if err := client.Post(cmd.Context(), "/api/v1/doctors/register", req, &result); err != nil {
				return err
			}

			// Save token
			if err := cfg.SaveToken(result.SessionToken); err != nil {
				return fmt.Errorf("failed to save token: %w", err)
			}

			newOutput(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Full name (required)")
	cmd.Flags().StringVar(&user, "user", "", "Username (required)")
	cmd.Flags().String("pass", "", "Password, 6 to 12 letters or digits (required)")
	cmd.Flags().StringVar(&phone, "phone", "", "Phone number")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&address, "address", "", "Postal address")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func newDoctorLoginCmd() *cobra.Command {
	var user string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login with an existing account",
		RunE: func(cmd *cobra.Command, args []string) error {
			pass, err := passwordFlag(cmd, "pass")
			if err != nil {
				return err
			}

			req := map[string]string{
				"username": user,
				"password": pass,
			}
			var result response.AuthResponse

			if err := client.Post(cmd.Context(), "/api/v1/doctors/login", req, &result); err != nil {
				return err
			}

			// Save token
			if err := cfg.SaveToken(result.SessionToken); err != nil {
				return fmt.Errorf("failed to save token: %w", err)
			}

			newOutput(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "Username (required)")
	cmd.Flags().String("pass", "", "Password (required)")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func newDoctorLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Post(cmd.Context(), "/api/v1/doctors/logout", nil, nil); err != nil {
				return err
			}
			if err := cfg.ClearToken(); err != nil {
				return fmt.Errorf("failed to remove token: %w", err)
			}

			newOutput(cmd).PrintMessage("Logged out")
			return nil
		},
	}
}

func newDoctorMeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show the signed-in doctor",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Doctor

			if err := client.Get(cmd.Context(), "/api/v1/doctors/me", &result); err != nil {
				return err
			}

			newOutput(cmd).Print(result)
			return nil
		},
	}
}

func newDoctorPasswdCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "passwd",
		Short: "Change the signed-in doctor's password",
		RunE: func(cmd *cobra.Command, args []string) error {
			current, err := passwordFlag(cmd, "current")
			if err != nil {
				return err
			}
			next, err := passwordFlag(cmd, "new")
			if err != nil {
				return err
			}

			req := map[string]string{
				"current_password": current,
				"new_password":     next,
			}
			if err := client.Put(cmd.Context(), "/api/v1/doctors/me/password", req, nil); err != nil {
				return err
			}

			newOutput(cmd).PrintMessage("Password changed")
			return nil
		},
	}

	cmd.Flags().String("current", "", "Current password (required)")
	cmd.Flags().String("new", "", "New password (required)")

	return cmd
}

func newDoctorListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered doctors",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.DoctorList

			if err := client.Get(cmd.Context(), "/api/v1/doctors", &result); err != nil {
				return err
			}

			newOutput(cmd).Print(result)
			return nil
		},
	}
}
