// Package core defines the filesystem contract the file steps are written
// against.
//
// The contract is deliberately small: ReadFS covers opening, stat-ing and
// reading files, WriteFS covers creating and truncating them. FS combines
// both and reports what kind of storage backs it. Concrete providers live in
// sibling packages (see fs/billy) so that steps can run against the local
// disk in production and an in-memory filesystem in tests:
//
//	func Greeting(fsys core.ReadFS) ([]byte, error) {
//	    return fsys.ReadFile("hello.txt")
//	}
//
// Optional file capabilities such as Syncer are discovered with type
// assertions.
package core
