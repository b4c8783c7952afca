package errors

import stderrors "errors"

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// GetCode returns the code of the outermost PlatformError in err's chain, or
// CodeUnknown when there is none.
func GetCode(err error) ErrorCode {
	if err == nil {
		return CodeUnknown
	}
	var platformErr PlatformError
	if stderrors.As(err, &platformErr) {
		return platformErr.Code()
	}
	return CodeUnknown
}

// HasCode reports whether err carries code.
func HasCode(err error, code ErrorCode) bool {
	return err != nil && GetCode(err) == code
}

// GetClassification returns the classification of err. Nil and plain errors
// are permanent.
func GetClassification(err error) ErrorClassification {
	if err == nil {
		return ClassificationPermanent
	}
	var platformErr PlatformError
	if stderrors.As(err, &platformErr) {
		return platformErr.Classification()
	}
	return ClassificationPermanent
}

// IsRetryable reports whether err is classified as retryable.
func IsRetryable(err error) bool {
	return GetClassification(err).IsRetryable()
}

// GetContext returns the value stored under key in the outermost
// PlatformError's context.
func GetContext(err error, key string) (any, bool) {
	var platformErr PlatformError
	if !stderrors.As(err, &platformErr) {
		return nil, false
	}
	v, ok := platformErr.Context()[key]
	return v, ok
}
