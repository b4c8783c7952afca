package errors

import stderrors "errors"

// WithContext returns a copy of err with key set to value. Existing context is
// kept. A plain error is first converted to a PlatformError with CodeUnknown.
// Returns nil if err is nil.
//
//	err = errors.WithContext(err, "status_code", 404)
func WithContext(err error, key string, value any) PlatformError {
	return WithContextMap(err, map[string]any{key: value})
}

// WithContextMap merges ctx into a copy of err's context. Keys in ctx win.
// Returns nil if err is nil.
func WithContextMap(err error, ctx map[string]any) PlatformError {
	if err == nil {
		return nil
	}

	base := asPlatformError(err)
	merged := base.Context()
	if merged == nil {
		merged = make(map[string]any, len(ctx))
	}
	for k, v := range ctx {
		merged[k] = v
	}

	return &platformError{
		code:           base.Code(),
		classification: base.Classification(),
		message:        base.Message(),
		context:        merged,
		cause:          base.Unwrap(),
	}
}

// asPlatformError returns the outermost PlatformError in err's chain or wraps
// err as an unknown permanent error.
func asPlatformError(err error) PlatformError {
	var platformErr PlatformError
	if stderrors.As(err, &platformErr) {
		return platformErr
	}
	return &platformError{
		code:           CodeUnknown,
		classification: ClassificationPermanent,
		message:        err.Error(),
		cause:          err,
	}
}
