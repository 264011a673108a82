package testutil

import (
	"testing"
	"time"
)

// Eventually retries fn until it returns nil or the timeout passes, and
// returns the last error. Useful for file watcher and network tests.
//
// Example:
//
//	err := testutil.Eventually(t, 2*time.Second, func() error {
//	    return checkOutput()
//	})
func Eventually(t *testing.T, timeout time.Duration, fn func() error) error {
	t.Helper()

	deadline := time.Now().Add(timeout)
	var lastErr error

	for time.Now().Before(deadline) {
		if err := fn(); err == nil {
			return nil
		} else {
			lastErr = err
			time.Sleep(20 * time.Millisecond)
		}
	}

	return lastErr
}

// SkipIfShort skips the test if running in short mode.
// Use this for tests that wait on timers, sockets or the file system.
//
// Example:
//
//	func TestWatch(t *testing.T) {
//	    testutil.SkipIfShort(t)
//	    // ...
//	}
func SkipIfShort(t *testing.T) {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping slow test in short mode")
	}
}

// Must asserts that err is nil, or fails the test immediately.
// Useful for test setup code.
//
// Example:
//
//	testutil.Must(t, os.WriteFile(path, data, 0644))
func Must(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
}
