// Package billy implements core.FS on top of go-billy.
//
// NewLocal roots a filesystem at a directory on disk; every path handed to it
// is resolved relative to that directory. NewMemory returns an empty
// in-memory filesystem, which is what the step tests run against:
//
//	fsys := billy.NewMemory()
//	_ = fsys.WriteFile("hello.txt", []byte("Hello"), 0o644)
//	data, err := fsys.ReadFile("hello.txt")
//
// Filesystems are safe for concurrent use; individual file handles are not.
package billy
