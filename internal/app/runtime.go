package app

import (
	"os"
	"sync"
	"sync/atomic"
)

// TestModeEnv names the variable that switches binaries into test mode.
const TestModeEnv = "BIZTIME_TEST_MODE"

var (
	testMode     atomic.Bool
	testModeOnce sync.Once
)

func loadTestMode() {
	testMode.Store(os.Getenv(TestModeEnv) == "1")
}

// InTestMode reports whether binaries should exit before touching external
// services such as PostgreSQL or Redis.
func InTestMode() bool {
	testModeOnce.Do(loadTestMode)
	return testMode.Load()
}

// RefreshTestMode re-reads TestModeEnv after the environment changed.
func RefreshTestMode() {
	testModeOnce.Do(func() {})
	loadTestMode()
}
