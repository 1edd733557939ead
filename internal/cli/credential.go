package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clinicio/clinicio/internal/api/response"
	"github.com/clinicio/clinicio/internal/credential"
)

// ErrInvalidPassword is returned by "credential check" for a rejected password
var ErrInvalidPassword = errors.New("password does not meet the account rules")

func newCredentialCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "credential",
		Short: "Password rule commands",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "check <password>",
		Short: "Check a password against the account rules without contacting the server",
		Long: `Check a password against the account rules without contacting the server.

A password must be 6 to 12 characters long and contain only ASCII letters and
digits. The command exits non-zero when the password is rejected.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return fmt.Errorf("password argument: %w", credential.ErrMissingValue)
			}

			result := response.CredentialCheck{Valid: credential.IsValid(args[0])}
			newOutput(cmd).Print(result)

			if !result.Valid {
				return ErrInvalidPassword
			}
			return nil
		},
	})

	return cmd
}
