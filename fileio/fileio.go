// Package fileio reads and writes whole files through a core filesystem.
//
// Every call opens its own handle and closes it before returning, on success
// and on failure. Errors are mapped to errors.CodeNotFound,
// errors.CodePermissionDenied or errors.CodeIO, with the path attached under
// the "path" context key.
package fileio

import (
	"io"

	"github.com/jmgilman/iostep/decode"
	"github.com/jmgilman/iostep/errors"
	"github.com/jmgilman/iostep/fs/core"
)

// ReadWholeFile returns the full contents of path. The size is taken from
// Stat and read in one pass; a file that shrinks underneath is an IO error.
func ReadWholeFile(fsys core.ReadFS, path string) ([]byte, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, mapError(err, path, "failed to open file")
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return nil, mapError(err, path, "failed to stat file")
	}
	if info.IsDir() {
		return nil, errors.WithContext(errors.New(errors.CodeIO, "path is a directory"), "path", path)
	}

	buf := make([]byte, info.Size())
	if _, err := io.ReadFull(f, buf); err != nil {
		return nil, mapError(err, path, "failed to read file")
	}
	return buf, nil
}

// ReadWholeText is ReadWholeFile followed by decode.Text.
func ReadWholeText(fsys core.ReadFS, path string) (string, error) {
	data, err := ReadWholeFile(fsys, path)
	if err != nil {
		return "", err
	}
	text, err := decode.Text(data)
	if err != nil {
		return "", errors.WithContext(err, "path", path)
	}
	return text, nil
}

// WriteWholeFile creates or truncates path and writes all of data to it.
// The file is synced when the provider supports it. There is no atomic
// replace: a failure part way through can leave a truncated file.
func WriteWholeFile(fsys core.WriteFS, path string, data []byte) (err error) {
	f, err := fsys.Create(path)
	if err != nil {
		return mapError(err, path, "failed to create file")
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = mapError(cerr, path, "failed to close file")
		}
	}()

	n, err := f.Write(data)
	if err != nil {
		return mapError(err, path, "failed to write file")
	}
	if n < len(data) {
		return errors.WithContextMap(
			errors.Wrap(io.ErrShortWrite, errors.CodeIO, "failed to write file"),
			map[string]any{"path": path, "written": n, "expected": len(data)},
		)
	}

	if s, ok := f.(core.Syncer); ok {
		if err := s.Sync(); err != nil {
			return mapError(err, path, "failed to sync file")
		}
	}
	return nil
}

// WriteWholeText writes s as UTF-8.
func WriteWholeText(fsys core.WriteFS, path, s string) error {
	return WriteWholeFile(fsys, path, []byte(s))
}

func mapError(err error, path, message string) error {
	code := errors.CodeIO
	switch {
	case errors.Is(err, core.ErrNotExist):
		code = errors.CodeNotFound
	case errors.Is(err, core.ErrPermission):
		code = errors.CodePermissionDenied
	}
	return errors.WrapWithContext(err, code, message, map[string]any{"path": path})
}
