// Package fstest is a conformance suite for core.FS providers.
//
// Providers call TestSuite from their own tests with a constructor that
// returns a fresh, empty filesystem:
//
//	func TestConformance(t *testing.T) {
//	    fstest.TestSuite(t, func() core.FS { return billy.NewMemory() })
//	}
//
// The suite checks the contracts the whole-file steps depend on: sizes
// reported by Stat match the bytes read back, Create truncates, missing
// files match core.ErrNotExist, and file handles report their name.
package fstest

import (
	"testing"

	"github.com/jmgilman/iostep/fs/core"
)

// TestSuite runs every conformance group, each against a fresh filesystem.
func TestSuite(t *testing.T, newFS func() core.FS) {
	t.Helper()

	t.Run("ReadFS", func(t *testing.T) {
		TestReadFS(t, newFS())
	})
	t.Run("WriteFS", func(t *testing.T) {
		TestWriteFS(t, newFS())
	})
	t.Run("StdlibFS", func(t *testing.T) {
		TestStdlibFS(t, newFS())
	})
}
