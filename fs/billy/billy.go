package billy

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/jmgilman/iostep/fs/core"
)

// FS adapts a billy.Filesystem to core.FS.
type FS struct {
	bfs    billy.Filesystem
	fsType core.FSType
}

// NewLocal returns a disk-backed filesystem rooted at root. An empty root
// means the current working directory.
func NewLocal(root string) *FS {
	if root == "" {
		root = "."
	}
	return &FS{bfs: osfs.New(root), fsType: core.FSTypeLocal}
}

// NewMemory returns an empty in-memory filesystem.
func NewMemory() *FS {
	return &FS{bfs: memfs.New(), fsType: core.FSTypeMemory}
}

// Unwrap returns the underlying billy.Filesystem.
func (f *FS) Unwrap() billy.Filesystem {
	return f.bfs
}

// Root returns the directory the filesystem is rooted at.
func (f *FS) Root() string {
	return f.bfs.Root()
}

// Type returns FSTypeLocal or FSTypeMemory.
func (f *FS) Type() core.FSType {
	return f.fsType
}

// normalize converts paths to forward slashes; billy itself guards the root.
func normalize(name string) string {
	return filepath.ToSlash(filepath.Clean(name))
}

// Open opens the named file for reading.
func (f *FS) Open(name string) (fs.File, error) {
	name = normalize(name)
	bf, err := f.bfs.Open(name)
	if err != nil {
		return nil, err
	}
	return &File{file: bf, fs: f.bfs, name: name}, nil
}

// Stat returns metadata for the named file.
func (f *FS) Stat(name string) (fs.FileInfo, error) {
	return f.bfs.Stat(normalize(name))
}

// ReadFile reads the whole named file.
func (f *FS) ReadFile(name string) ([]byte, error) {
	bf, err := f.bfs.Open(normalize(name))
	if err != nil {
		return nil, err
	}
	defer func() { _ = bf.Close() }()
	return io.ReadAll(bf)
}

// Exists reports whether name exists.
func (f *FS) Exists(name string) (bool, error) {
	_, err := f.bfs.Stat(normalize(name))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// Create creates or truncates the named file.
func (f *FS) Create(name string) (core.File, error) {
	name = normalize(name)
	bf, err := f.bfs.Create(name)
	if err != nil {
		return nil, err
	}
	return &File{file: bf, fs: f.bfs, name: name}, nil
}

// OpenFile opens name with the given flags and permissions.
func (f *FS) OpenFile(name string, flag int, perm fs.FileMode) (core.File, error) {
	name = normalize(name)
	bf, err := f.bfs.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}
	return &File{file: bf, fs: f.bfs, name: name}, nil
}

// WriteFile writes data to name, creating or truncating it. Close errors are
// reported because they can hide a failed flush.
func (f *FS) WriteFile(name string, data []byte, perm fs.FileMode) (err error) {
	bf, err := f.bfs.OpenFile(normalize(name), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := bf.Close(); err == nil {
			err = cerr
		}
	}()
	_, err = bf.Write(data)
	return err
}

// MkdirAll creates path and any missing parents.
func (f *FS) MkdirAll(path string, perm fs.FileMode) error {
	return f.bfs.MkdirAll(normalize(path), perm)
}

var _ core.FS = (*FS)(nil)
