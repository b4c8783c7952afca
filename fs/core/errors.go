package core

import "io/fs"

// Sentinel errors re-exported from io/fs so callers can match provider errors
// without importing io/fs.
var (
	ErrNotExist   = fs.ErrNotExist
	ErrExist      = fs.ErrExist
	ErrPermission = fs.ErrPermission
	ErrClosed     = fs.ErrClosed
)
