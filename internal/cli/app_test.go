package cli

import (
	"bytes"
	"testing"
	"time"

	"timeledger/internal/api"
	"timeledger/internal/config"
	"timeledger/internal/ledger"
)

// testClock lets command tests move time forward explicitly
type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time {
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// setupTestApp builds an App over an in-memory engine with a fixed starting
// time, capturing all command output in the returned buffer.
func setupTestApp(t *testing.T) (*App, *testClock, *bytes.Buffer) {
	t.Helper()

	clock := &testClock{now: time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)}
	store := ledger.NewEmptyStore(clock)

	var out bytes.Buffer
	app := NewApp(api.New(store), config.NewConfig()).WithOutput(&out)
	return app, clock, &out
}
