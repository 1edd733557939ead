package mocks

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMockRandomDrainsQueueThenFallsBack(t *testing.T) {
	r := NewMockRandom()
	r.QueueString("first", "second")

	assert.Equal(t, "first", r.String(8, "x"))
	assert.Equal(t, "second", r.String(8, "x"))
	assert.Equal(t, "mock-1", r.String(8, "x"))
	assert.Equal(t, "mock-2", r.String(8, "x"))

	r.Reset()
	assert.Equal(t, "mock-1", r.String(8, "x"))
}

func TestMockClockAdvance(t *testing.T) {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	c := NewMockClock(start)

	c.Advance(time.Hour)
	assert.Equal(t, start.Add(time.Hour), c.Now())

	c.Set(start)
	assert.Equal(t, start, c.Now())
}
