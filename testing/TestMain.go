// Package testing puts BizTime binaries into test mode. Test packages that
// exercise a main package call Run from their TestMain.
package testing

import (
	"os"
	"sync"
	stdtesting "testing"

	"github.com/biztime/biztime/internal/app"
)

var once sync.Once

// Enable sets the test mode flag for the current process.
func Enable() {
	once.Do(func() {
		_ = os.Setenv(app.TestModeEnv, "1")
		app.RefreshTestMode()
	})
}

func init() {
	Enable()
}

// Run is a TestMain body that enables test mode before running m.
func Run(m *stdtesting.M) {
	Enable()
	os.Exit(m.Run())
}
