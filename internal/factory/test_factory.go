package factory

import (
	"time"

	"github.com/clinicio/clinicio/internal/credential"
	"github.com/clinicio/clinicio/internal/dependencies/mocks"
	"github.com/clinicio/clinicio/internal/services/auth"
	"github.com/clinicio/clinicio/internal/storage/memory"
	"github.com/clinicio/clinicio/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies.
// Session tokens come from MockRandom: queue values to pin them, otherwise
// they fall back to sess_mock-1, sess_mock-2, ...
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(store, mockClock, mockRandom, credential.SHA256Hasher{}, auth.DefaultConfig(), testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}
