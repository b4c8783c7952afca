package decode

import (
	"unicode/utf8"

	"github.com/jmgilman/iostep/errors"
)

// Text interprets b as UTF-8. On invalid input it returns "" and an
// errors.CodeEncoding error carrying the byte offset of the first bad
// sequence.
func Text(b []byte) (string, error) {
	if utf8.Valid(b) {
		return string(b), nil
	}
	err := errors.New(errors.CodeEncoding, "bytes are not valid UTF-8")
	return "", errors.WithContext(err, "offset", invalidOffset(b))
}

func invalidOffset(b []byte) int {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return len(b)
}
