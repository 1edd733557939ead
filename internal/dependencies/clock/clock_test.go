package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRealClockReturnsUTC(t *testing.T) {
	now := New().Now()

	assert.Equal(t, time.UTC, now.Location())
	assert.WithinDuration(t, time.Now(), now, time.Second)
	// Round(0) strips the monotonic reading so == matches after decoding
	assert.Equal(t, now.String(), now.Round(0).String())
}
