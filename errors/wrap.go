package errors

import (
	stderrors "errors"
	"fmt"
)

// New creates a PlatformError with the default classification for code.
//
//	err := errors.New(errors.CodeEncoding, "body is not valid UTF-8")
func New(code ErrorCode, message string) PlatformError {
	return &platformError{
		code:           code,
		classification: classify(code),
		message:        message,
	}
}

// Newf is New with a formatted message.
func Newf(code ErrorCode, format string, args ...any) PlatformError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps err with a code and message. The cause stays reachable through
// errors.Is and errors.As. If err already is a PlatformError its
// classification is kept, otherwise the default for code is used.
//
// Returns nil if err is nil.
//
//	if _, err := f.Write(data); err != nil {
//	    return errors.Wrap(err, errors.CodeIO, "failed to write file")
//	}
func Wrap(err error, code ErrorCode, message string) PlatformError {
	return WrapWithContext(err, code, message, nil)
}

// Wrapf is Wrap with a formatted message. Returns nil if err is nil.
func Wrapf(err error, code ErrorCode, format string, args ...any) PlatformError {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WrapWithContext wraps err and attaches a copy of ctx in one call.
// Returns nil if err is nil.
func WrapWithContext(err error, code ErrorCode, message string, ctx map[string]any) PlatformError {
	if err == nil {
		return nil
	}

	classification := classify(code)
	var platformErr PlatformError
	if stderrors.As(err, &platformErr) {
		classification = platformErr.Classification()
	}

	return &platformError{
		code:           code,
		classification: classification,
		message:        message,
		context:        copyContext(ctx),
		cause:          err,
	}
}
