package core

import (
	"io"
	"io/fs"
)

// FSType identifies the storage behind an FS.
type FSType int

const (
	// FSTypeUnknown indicates the filesystem type is unknown.
	FSTypeUnknown FSType = iota
	// FSTypeLocal indicates a disk-backed filesystem.
	FSTypeLocal
	// FSTypeMemory indicates an in-memory filesystem.
	FSTypeMemory
)

// String returns "local", "memory" or "unknown".
func (t FSType) String() string {
	switch t {
	case FSTypeLocal:
		return "local"
	case FSTypeMemory:
		return "memory"
	default:
		return "unknown"
	}
}

// FS is a read-write filesystem. It embeds fs.FS so it also works with
// fs.ReadFile, fs.WalkDir and friends.
type FS interface {
	fs.FS
	ReadFS
	WriteFS

	// Type reports the storage behind the filesystem.
	Type() FSType
}

// ReadFS defines read-only operations.
type ReadFS interface {
	// Open opens the named file for reading. The caller must close it.
	Open(name string) (fs.File, error)

	// Stat returns metadata for the named file.
	Stat(name string) (fs.FileInfo, error)

	// ReadFile reads the whole named file.
	ReadFile(name string) ([]byte, error)

	// Exists reports whether name exists. A false result with a non-nil
	// error means existence could not be determined.
	Exists(name string) (bool, error)
}

// WriteFS defines write operations.
type WriteFS interface {
	// Create creates or truncates the named file for writing. The caller
	// must close it.
	Create(name string) (File, error)

	// OpenFile opens name with the given os.O_* flags and permissions.
	OpenFile(name string, flag int, perm fs.FileMode) (File, error)

	// WriteFile writes data to name, creating or truncating it.
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// MkdirAll creates path and any missing parents.
	MkdirAll(path string, perm fs.FileMode) error
}

// File is an open file handle that can also be written to.
type File interface {
	fs.File
	io.Writer

	// Name returns the name the file was opened with.
	Name() string
}

// Syncer is implemented by files that can flush to stable storage.
//
//	if s, ok := f.(core.Syncer); ok {
//	    err = s.Sync()
//	}
type Syncer interface {
	Sync() error
}
