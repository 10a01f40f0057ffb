package repo_test

import (
	"os"
	"testing"

	"github.com/pkordes/packlist/backend/testutil"
)

// TestMain migrates the test database once for the whole package.
func TestMain(m *testing.M) {
	os.Exit(testutil.RunMigrated(m))
}
