package fstest

import (
	"bytes"
	"os"
	"testing"

	"github.com/jmgilman/iostep/fs/core"
)

// TestWriteFS checks Create, OpenFile, WriteFile and MkdirAll.
func TestWriteFS(t *testing.T, filesystem core.FS) {
	t.Run("CreateAndWrite", func(t *testing.T) {
		data := []byte("test data for Create")
		writeViaCreate(t, filesystem, "created.txt", data)
		assertContent(t, filesystem, "created.txt", data)
	})

	t.Run("CreateTruncates", func(t *testing.T) {
		writeViaCreate(t, filesystem, "truncate.txt", []byte("a much longer first version"))
		writeViaCreate(t, filesystem, "truncate.txt", []byte("short"))
		assertContent(t, filesystem, "truncate.txt", []byte("short"))
	})

	t.Run("CreateEmpty", func(t *testing.T) {
		writeViaCreate(t, filesystem, "empty.txt", nil)
		assertContent(t, filesystem, "empty.txt", []byte{})

		info, err := filesystem.Stat("empty.txt")
		if err != nil {
			t.Fatalf("Stat(%q): got error %v, want nil", "empty.txt", err)
		}
		if info.Size() != 0 {
			t.Errorf("Stat(%q).Size(): got %d, want 0", "empty.txt", info.Size())
		}
	})

	t.Run("FileName", func(t *testing.T) {
		f, err := filesystem.Create("named.txt")
		if err != nil {
			t.Fatalf("Create(%q): got error %v, want nil", "named.txt", err)
		}
		defer func() { _ = f.Close() }()
		if f.Name() != "named.txt" {
			t.Errorf("Name(): got %q, want %q", f.Name(), "named.txt")
		}
	})

	t.Run("OpenFileAppend", func(t *testing.T) {
		if err := filesystem.WriteFile("append.txt", []byte("Hello"), 0o644); err != nil {
			t.Fatalf("WriteFile(): setup failed: %v", err)
		}
		f, err := filesystem.OpenFile("append.txt", os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			t.Fatalf("OpenFile(O_APPEND): got error %v, want nil", err)
		}
		if _, err := f.Write([]byte(" World!")); err != nil {
			_ = f.Close()
			t.Fatalf("Write(): got error %v, want nil", err)
		}
		if err := f.Close(); err != nil {
			t.Fatalf("Close(): got error %v, want nil", err)
		}
		assertContent(t, filesystem, "append.txt", []byte("Hello World!"))
	})

	t.Run("MkdirAll", func(t *testing.T) {
		if err := filesystem.MkdirAll("a/b/c", 0o755); err != nil {
			t.Fatalf("MkdirAll(%q): got error %v, want nil", "a/b/c", err)
		}
		if err := filesystem.WriteFile("a/b/c/file.txt", []byte("nested"), 0o644); err != nil {
			t.Fatalf("WriteFile(nested): got error %v, want nil", err)
		}
		assertContent(t, filesystem, "a/b/c/file.txt", []byte("nested"))
	})
}

func writeViaCreate(t *testing.T, filesystem core.FS, name string, data []byte) {
	t.Helper()

	f, err := filesystem.Create(name)
	if err != nil {
		t.Fatalf("Create(%q): got error %v, want nil", name, err)
	}
	n, err := f.Write(data)
	if err != nil {
		_ = f.Close()
		t.Fatalf("Write(): got error %v, want nil", err)
	}
	if n != len(data) {
		_ = f.Close()
		t.Fatalf("Write(): wrote %d bytes, want %d", n, len(data))
	}
	if s, ok := f.(core.Syncer); ok {
		if err := s.Sync(); err != nil {
			_ = f.Close()
			t.Fatalf("Sync(): got error %v, want nil", err)
		}
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close(): got error %v, want nil", err)
	}
}

func assertContent(t *testing.T, filesystem core.FS, name string, want []byte) {
	t.Helper()

	got, err := filesystem.ReadFile(name)
	if err != nil {
		t.Errorf("ReadFile(%q): got error %v, want nil", name, err)
		return
	}
	if !bytes.Equal(got, want) {
		t.Errorf("ReadFile(%q): got %q, want %q", name, got, want)
	}
}
