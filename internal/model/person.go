package model

import (
	"strings"
	"time"

	"github.com/clinicio/clinicio/internal/credential"
)

// Person holds the contact details shared by doctors and patients
type Person struct {
	Name    string
	Phone   string
	Email   string
	Address string
}

// Validate checks the fields every record requires
func (p Person) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrInvalidRecord
	}
	return nil
}

// Account is the login capability attached to a person record.
// The credential is replaced wholesale on password change, never mutated.
type Account struct {
	Username   string
	Credential credential.Credential
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// WithCredential returns a copy of the account holding c
func (a Account) WithCredential(c credential.Credential, now time.Time) Account {
	a.Credential = c
	a.UpdatedAt = now
	return a
}
