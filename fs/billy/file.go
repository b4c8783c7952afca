package billy

import (
	"io/fs"

	"github.com/go-git/go-billy/v5"

	"github.com/jmgilman/iostep/fs/core"
)

// File wraps billy.File to implement core.File. The name is kept separately
// because billy backends disagree on what billy.File.Name returns.
type File struct {
	file billy.File
	fs   billy.Basic
	name string
}

func (f *File) Read(p []byte) (int, error) { return f.file.Read(p) }

func (f *File) Write(p []byte) (int, error) { return f.file.Write(p) }

func (f *File) Close() error { return f.file.Close() }

// Stat asks the filesystem, since billy.File has no Stat of its own.
func (f *File) Stat() (fs.FileInfo, error) {
	return f.fs.Stat(f.name)
}

// Name returns the name passed to Open or Create.
func (f *File) Name() string { return f.name }

// Sync flushes to disk when the backend supports it and is a no-op otherwise
// (memfs).
func (f *File) Sync() error {
	if s, ok := f.file.(interface{ Sync() error }); ok {
		return s.Sync()
	}
	return nil
}

var (
	_ core.File   = (*File)(nil)
	_ core.Syncer = (*File)(nil)
)
