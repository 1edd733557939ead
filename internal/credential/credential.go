// Package credential owns the password rules for clinic accounts: what a
// valid plaintext looks like, how it becomes a stored digest, and how a
// later plaintext is checked against that digest.
//
// Plaintext and Digest are distinct types. A Credential only ever holds a
// Digest, so plaintext never reaches storage and a digest is never run
// through the plaintext rules.
package credential

import (
	"fmt"
	"strings"
)

const (
	// MinLength is the shortest accepted plaintext
	MinLength = 6
	// MaxLength is the longest accepted plaintext
	MaxLength = 12
)

// IsValid reports whether raw is 6 to 12 ASCII letters or digits.
func IsValid(raw string) bool {
	if len(raw) < MinLength || len(raw) > MaxLength {
		return false
	}
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		default:
			return false
		}
	}
	return true
}

// Plaintext is a user-entered password that passed IsValid.
type Plaintext struct {
	value string
}

// NewPlaintext validates raw
func NewPlaintext(raw string) (Plaintext, error) {
	if !IsValid(raw) {
		return Plaintext{}, fmt.Errorf("%w: must be %d-%d letters or digits", ErrInvalidFormat, MinLength, MaxLength)
	}
	return Plaintext{value: raw}, nil
}

// String never reveals the plaintext
func (p Plaintext) String() string {
	return "[plaintext]"
}

// Digest is the one-way encoding of a plaintext as it is persisted.
type Digest struct {
	value string
}

// ParseDigest wraps a persisted digest. The value is trusted and only
// checked for blankness.
func ParseDigest(s string) (Digest, error) {
	if strings.TrimSpace(s) == "" {
		return Digest{}, fmt.Errorf("%w: digest is blank", ErrInvalidFormat)
	}
	return Digest{value: s}, nil
}

// String returns the stored representation
func (d Digest) String() string {
	return d.value
}

// IsZero reports whether d was never set
func (d Digest) IsZero() bool {
	return d.value == ""
}

// Credential is an account secret in its stored form. The zero value is
// not a usable credential; build one with New or FromDigest.
type Credential struct {
	digest Digest
}

// New validates raw and stores its digest under h.
func New(raw string, h Hasher) (Credential, error) {
	p, err := NewPlaintext(raw)
	if err != nil {
		return Credential{}, err
	}
	d, err := h.Hash(p.value)
	if err != nil {
		return Credential{}, err
	}
	return Credential{digest: d}, nil
}

// FromDigest rebuilds a Credential from a persisted digest.
func FromDigest(s string) (Credential, error) {
	d, err := ParseDigest(s)
	if err != nil {
		return Credential{}, err
	}
	return Credential{digest: d}, nil
}

// Digest returns the stored digest
func (c Credential) Digest() Digest {
	return c.digest
}

// StoredRepresentation is the only string persistence ever sees
func (c Credential) StoredRepresentation() string {
	return c.digest.value
}

// IsZero reports whether c holds no digest
func (c Credential) IsZero() bool {
	return c.digest.IsZero()
}

// Equal compares stored representations byte for byte
func (c Credential) Equal(other Credential) bool {
	return c.digest.value == other.digest.value
}

// Matches checks raw against the stored digest
func (c Credential) Matches(raw string) (bool, error) {
	return Matches(raw, c.digest.value)
}

// String keeps digests out of logs and formatted output
func (c Credential) String() string {
	if c.IsZero() {
		return "[none]"
	}
	return "[redacted]"
}

// MarshalText persists the digest
func (c Credential) MarshalText() ([]byte, error) {
	if c.IsZero() {
		return nil, fmt.Errorf("%w: credential has no digest", ErrInvalidFormat)
	}
	return []byte(c.digest.value), nil
}

// UnmarshalText loads a persisted digest without re-validating it
func (c *Credential) UnmarshalText(text []byte) error {
	loaded, err := FromDigest(string(text))
	if err != nil {
		return err
	}
	*c = loaded
	return nil
}
