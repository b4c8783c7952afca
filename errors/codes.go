package errors

// ErrorCode names a kind of step failure. Codes are strings so they read well
// in logs and serialize naturally to JSON.
type ErrorCode string

const (
	// Transport errors.

	// CodeTransport indicates the network call itself failed: connection
	// refused, DNS, TLS, timeout or a truncated body.
	CodeTransport ErrorCode = "TRANSPORT_ERROR"

	// CodeClientError indicates a 4xx response status.
	CodeClientError ErrorCode = "CLIENT_ERROR"

	// CodeServerError indicates a 5xx response status.
	CodeServerError ErrorCode = "SERVER_ERROR"

	// Decode errors.

	// CodeEncoding indicates bytes were not valid UTF-8.
	CodeEncoding ErrorCode = "ENCODING_ERROR"

	// CodeSchemaFailed indicates structured data did not match its schema.
	CodeSchemaFailed ErrorCode = "SCHEMA_VALIDATION_FAILED"

	// Filesystem errors.

	// CodeNotFound indicates a file does not exist.
	CodeNotFound ErrorCode = "NOT_FOUND"

	// CodePermissionDenied indicates the file could not be accessed.
	CodePermissionDenied ErrorCode = "PERMISSION_DENIED"

	// CodeIO indicates any other read, write, sync or close failure.
	CodeIO ErrorCode = "IO_ERROR"

	// Caller errors.

	// CodeInvalidInput indicates an argument was malformed (bad URL, empty path).
	CodeInvalidInput ErrorCode = "INVALID_INPUT"

	// CodeInvalidConfig indicates configuration could not be loaded or is invalid.
	CodeInvalidConfig ErrorCode = "INVALID_CONFIGURATION"

	// System errors.

	// CodeInternal indicates a bug or an impossible state.
	CodeInternal ErrorCode = "INTERNAL_ERROR"

	// CodeUnknown is reported for errors that carry no code.
	CodeUnknown ErrorCode = "UNKNOWN"
)

// ErrorClassification tells a caller whether trying again could help.
// Nothing in this module retries; the classification is informational.
type ErrorClassification string

const (
	// ClassificationRetryable marks failures that may succeed on another attempt.
	ClassificationRetryable ErrorClassification = "RETRYABLE"

	// ClassificationPermanent marks failures that will fail the same way again.
	ClassificationPermanent ErrorClassification = "PERMANENT"
)

// IsRetryable reports whether c is ClassificationRetryable.
func (c ErrorClassification) IsRetryable() bool {
	return c == ClassificationRetryable
}

var defaultClassifications = map[ErrorCode]ErrorClassification{
	CodeTransport:   ClassificationRetryable,
	CodeServerError: ClassificationRetryable,

	CodeClientError:      ClassificationPermanent,
	CodeEncoding:         ClassificationPermanent,
	CodeSchemaFailed:     ClassificationPermanent,
	CodeNotFound:         ClassificationPermanent,
	CodePermissionDenied: ClassificationPermanent,
	CodeIO:               ClassificationPermanent,
	CodeInvalidInput:     ClassificationPermanent,
	CodeInvalidConfig:    ClassificationPermanent,
	CodeInternal:         ClassificationPermanent,
	CodeUnknown:          ClassificationPermanent,
}

// classify returns the default classification for code. Unknown codes are
// permanent.
func classify(code ErrorCode) ErrorClassification {
	if c, ok := defaultClassifications[code]; ok {
		return c
	}
	return ClassificationPermanent
}
