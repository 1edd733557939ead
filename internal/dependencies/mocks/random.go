package mocks

import (
	"fmt"
	"sync"

	"github.com/clinicio/clinicio/internal/dependencies/random"
)

// MockRandom returns queued strings in order. Once the queue is drained it
// falls back to "mock-1", "mock-2", ... so generated tokens stay distinct.
type MockRandom struct {
	mu       sync.Mutex
	queued   []string
	fallback int
}

// Ensure MockRandom implements Random
var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a new MockRandom
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// String returns the next queued result
func (r *MockRandom) String(length int, alphabet string) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.queued) > 0 {
		result := r.queued[0]
		r.queued = r.queued[1:]
		return result
	}
	r.fallback++
	return fmt.Sprintf("mock-%d", r.fallback)
}

// QueueString adds values to the String result queue
func (r *MockRandom) QueueString(values ...string) {
	r.mu.Lock()
	r.queued = append(r.queued, values...)
	r.mu.Unlock()
}

// Reset clears queued results and restarts the fallback sequence
func (r *MockRandom) Reset() {
	r.mu.Lock()
	r.queued = nil
	r.fallback = 0
	r.mu.Unlock()
}
