// Package errors provides the structured error type returned by every I/O step.
//
// Each failure carries an ErrorCode naming what went wrong (TRANSPORT_ERROR,
// CLIENT_ERROR, NOT_FOUND, ...), a retryable/permanent classification, a
// human-readable message and an optional context map (status code, path, step
// name). Errors stay compatible with the standard library: errors.Is,
// errors.As and errors.Unwrap all see through the wrapped cause.
//
// Steps never abort the process. They return a PlatformError and the outermost
// caller decides whether to abort, log, or retry:
//
//	resp, err := client.Get(ctx, req)
//	if err != nil {
//	    return err // already CodeTransport
//	}
//	if err := status.Check(resp); err != nil {
//	    if errors.GetCode(err) == errors.CodeClientError {
//	        // 4xx, do not bother retrying
//	    }
//	    return err
//	}
//
// Context is attached immutably; every call returns a new error:
//
//	err := errors.New(errors.CodeIO, "short write")
//	err = errors.WithContext(err, "path", "hello-world.txt")
//
// ToJSON flattens an error to code, message, classification and context
// without exposing the wrapped chain.
package errors
