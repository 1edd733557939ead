package credential

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Scheme names a digest encoding
type Scheme string

const (
	// SchemeSHA256 is unsalted SHA-256 as 64 lowercase hex characters
	SchemeSHA256 Scheme = "sha256"
	// SchemeBcrypt is a salted bcrypt modular-crypt string
	SchemeBcrypt Scheme = "bcrypt"
)

// Hasher turns plaintext into digests and checks plaintext against them.
// Implementations must be safe for concurrent use.
type Hasher interface {
	Scheme() Scheme
	Hash(raw string) (Digest, error)
	Verify(raw string, d Digest) (bool, error)
}

// Config selects the preferred hashing scheme
type Config struct {
	Scheme     Scheme
	BcryptCost int
}

// DefaultConfig returns the SHA-256 configuration
func DefaultConfig() Config {
	return Config{
		Scheme:     SchemeSHA256,
		BcryptCost: bcrypt.DefaultCost,
	}
}

// NewHasher builds the Hasher described by cfg
func NewHasher(cfg Config) (Hasher, error) {
	switch cfg.Scheme {
	case "", SchemeSHA256:
		return SHA256Hasher{}, nil
	case SchemeBcrypt:
		return NewBcryptHasher(cfg.BcryptCost)
	default:
		return nil, fmt.Errorf("unsupported hash scheme %q", cfg.Scheme)
	}
}

// SHA256Hasher is deterministic: equal input always yields an equal digest.
type SHA256Hasher struct{}

var _ Hasher = SHA256Hasher{}

// Scheme implements Hasher
func (SHA256Hasher) Scheme() Scheme {
	return SchemeSHA256
}

// Hash implements Hasher
func (SHA256Hasher) Hash(raw string) (Digest, error) {
	return Hash(raw), nil
}

// Verify implements Hasher
func (SHA256Hasher) Verify(raw string, d Digest) (bool, error) {
	computed := Hash(raw)
	return subtle.ConstantTimeCompare([]byte(computed.value), []byte(d.value)) == 1, nil
}

// BcryptHasher salts every digest, so two hashes of one plaintext differ.
type BcryptHasher struct {
	cost int
}

var _ Hasher = (*BcryptHasher)(nil)

// NewBcryptHasher validates cost against bcrypt's bounds
func NewBcryptHasher(cost int) (*BcryptHasher, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("bcrypt cost must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}
	return &BcryptHasher{cost: cost}, nil
}

// Scheme implements Hasher
func (h *BcryptHasher) Scheme() Scheme {
	return SchemeBcrypt
}

// Cost returns the configured work factor
func (h *BcryptHasher) Cost() int {
	return h.cost
}

// Hash implements Hasher
func (h *BcryptHasher) Hash(raw string) (Digest, error) {
	out, err := bcrypt.GenerateFromPassword([]byte(raw), h.cost)
	if err != nil {
		return Digest{}, err
	}
	return Digest{value: string(out)}, nil
}

// Verify implements Hasher
func (h *BcryptHasher) Verify(raw string, d Digest) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(d.value), []byte(raw))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
}

// Hash is the deterministic SHA-256 digest of raw.
func Hash(raw string) Digest {
	sum := sha256.Sum256([]byte(raw))
	return Digest{value: hex.EncodeToString(sum[:])}
}

// Matches reports whether raw hashes to digest. A blank digest can never be
// a real stored hash and is rejected with ErrInvalidFormat. The scheme is
// read from the digest itself, so digests written under an older
// configuration keep verifying.
func Matches(raw, digest string) (bool, error) {
	d, err := ParseDigest(digest)
	if err != nil {
		return false, err
	}
	switch SchemeOf(d) {
	case SchemeBcrypt:
		return (&BcryptHasher{}).Verify(raw, d)
	default:
		return SHA256Hasher{}.Verify(raw, d)
	}
}

// SchemeOf infers the scheme that produced d
func SchemeOf(d Digest) Scheme {
	for _, prefix := range []string{"$2a$", "$2b$", "$2y$"} {
		if strings.HasPrefix(d.value, prefix) {
			return SchemeBcrypt
		}
	}
	return SchemeSHA256
}

// NeedsRehash reports whether d should be replaced by a fresh digest from
// preferred after the next successful login. Rehashing only moves upward:
// a bcrypt digest is never rewritten as unsalted SHA-256.
func NeedsRehash(preferred Hasher, d Digest) bool {
	if SchemeOf(d) == SchemeSHA256 {
		return preferred.Scheme() != SchemeSHA256
	}

	bh, ok := preferred.(*BcryptHasher)
	if !ok {
		return false
	}
	cost, err := bcrypt.Cost([]byte(d.value))
	if err != nil {
		return true
	}
	return cost < bh.cost
}
