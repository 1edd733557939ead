// Package random supplies unpredictable strings for session tokens.
package random

import (
	"crypto/rand"
)

// Random generates random strings and can be replaced in tests
type Random interface {
	// String returns length characters drawn uniformly from alphabet
	String(length int, alphabet string) string
}

// CryptoRandom implements Random using crypto/rand
type CryptoRandom struct{}

// New creates a new CryptoRandom
func New() *CryptoRandom {
	return &CryptoRandom{}
}

// String draws bytes from crypto/rand and rejects those that would bias the
// result toward the start of alphabet. Alphabets longer than 256 characters
// are truncated.
func (r *CryptoRandom) String(length int, alphabet string) string {
	if length <= 0 || len(alphabet) == 0 {
		return ""
	}
	n := len(alphabet)
	if n > 256 {
		n = 256
	}
	limit := 256 - 256%n

	result := make([]byte, 0, length)
	buf := make([]byte, length)
	for len(result) < length {
		// crypto/rand.Read never returns an error on supported platforms
		_, _ = rand.Read(buf)
		for _, b := range buf {
			if int(b) >= limit {
				continue
			}
			result = append(result, alphabet[int(b)%n])
			if len(result) == length {
				break
			}
		}
	}
	return string(result)
}
