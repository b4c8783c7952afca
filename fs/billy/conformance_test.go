package billy_test

import (
	"testing"

	"github.com/jmgilman/iostep/fs/billy"
	"github.com/jmgilman/iostep/fs/core"
	"github.com/jmgilman/iostep/fs/fstest"
)

func TestMemoryConformance(t *testing.T) {
	fstest.TestSuite(t, func() core.FS {
		return billy.NewMemory()
	})
}

func TestLocalConformance(t *testing.T) {
	fstest.TestSuite(t, func() core.FS {
		return billy.NewLocal(t.TempDir())
	})
}
