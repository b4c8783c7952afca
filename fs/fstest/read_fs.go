package fstest

import (
	"errors"
	"io"
	"testing"

	"github.com/jmgilman/iostep/fs/core"
)

// TestReadFS checks Open, Stat, ReadFile and Exists. It writes its own
// fixture under "testdir".
func TestReadFS(t *testing.T, filesystem core.FS) {
	content := []byte("test file content")

	if err := filesystem.MkdirAll("testdir", 0o755); err != nil {
		t.Fatalf("MkdirAll(testdir): setup failed: %v", err)
	}
	if err := filesystem.WriteFile("testdir/testfile.txt", content, 0o644); err != nil {
		t.Fatalf("WriteFile(testdir/testfile.txt): setup failed: %v", err)
	}

	t.Run("OpenAndStat", func(t *testing.T) {
		f, err := filesystem.Open("testdir/testfile.txt")
		if err != nil {
			t.Fatalf("Open(%q): got error %v, want nil", "testdir/testfile.txt", err)
		}
		defer func() { _ = f.Close() }()

		info, err := f.Stat()
		if err != nil {
			t.Fatalf("File.Stat(): got error %v, want nil", err)
		}
		if info.Size() != int64(len(content)) {
			t.Errorf("File.Stat().Size(): got %d, want %d", info.Size(), len(content))
		}

		buf := make([]byte, info.Size())
		if _, err := io.ReadFull(f, buf); err != nil {
			t.Fatalf("ReadFull(): got error %v, want nil", err)
		}
		if string(buf) != string(content) {
			t.Errorf("ReadFull(): got %q, want %q", buf, content)
		}
	})

	t.Run("StatDir", func(t *testing.T) {
		info, err := filesystem.Stat("testdir")
		if err != nil {
			t.Fatalf("Stat(%q): got error %v, want nil", "testdir", err)
		}
		if !info.IsDir() {
			t.Errorf("Stat(%q).IsDir(): got false, want true", "testdir")
		}
	})

	t.Run("ReadFile", func(t *testing.T) {
		data, err := filesystem.ReadFile("testdir/testfile.txt")
		if err != nil {
			t.Fatalf("ReadFile(): got error %v, want nil", err)
		}
		if string(data) != string(content) {
			t.Errorf("ReadFile(): got %q, want %q", data, content)
		}
	})

	t.Run("OpenNotExist", func(t *testing.T) {
		_, err := filesystem.Open("does-not-exist.txt")
		if !errors.Is(err, core.ErrNotExist) {
			t.Errorf("Open(missing): got error %v, want core.ErrNotExist", err)
		}
		_, err = filesystem.Stat("does-not-exist.txt")
		if !errors.Is(err, core.ErrNotExist) {
			t.Errorf("Stat(missing): got error %v, want core.ErrNotExist", err)
		}
	})

	t.Run("Exists", func(t *testing.T) {
		for name, want := range map[string]bool{
			"testdir/testfile.txt": true,
			"testdir":              true,
			"does-not-exist.txt":   false,
		} {
			got, err := filesystem.Exists(name)
			if err != nil {
				t.Errorf("Exists(%q): got error %v, want nil", name, err)
				continue
			}
			if got != want {
				t.Errorf("Exists(%q): got %v, want %v", name, got, want)
			}
		}
	})
}
