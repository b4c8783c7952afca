package fstest

import (
	"io/fs"
	"testing"

	"github.com/jmgilman/iostep/fs/core"
)

// TestStdlibFS checks that the provider works when handed to io/fs helpers
// as a plain fs.FS.
func TestStdlibFS(t *testing.T, filesystem core.FS) {
	files := map[string]string{
		"hello.txt":     "Hello",
		"dir/world.txt": "World",
	}
	if err := filesystem.MkdirAll("dir", 0o755); err != nil {
		t.Fatalf("MkdirAll(dir): setup failed: %v", err)
	}
	for name, content := range files {
		if err := filesystem.WriteFile(name, []byte(content), 0o644); err != nil {
			t.Fatalf("WriteFile(%q): setup failed: %v", name, err)
		}
	}

	for name, content := range files {
		data, err := fs.ReadFile(filesystem, name)
		if err != nil {
			t.Errorf("fs.ReadFile(%q): got error %v, want nil", name, err)
			continue
		}
		if string(data) != content {
			t.Errorf("fs.ReadFile(%q): got %q, want %q", name, data, content)
		}
	}

	if _, err := fs.ReadFile(filesystem, "missing.txt"); err == nil {
		t.Errorf("fs.ReadFile(missing): got nil error")
	}
}
