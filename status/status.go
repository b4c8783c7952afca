// Package status classifies HTTP status codes and halts a pipeline on 4xx and
// 5xx responses.
//
// Only the two error ranges are checked. 2xx continues, and so does anything
// outside 200-599 (1xx, 3xx, nonsense values), since nothing downstream
// distinguishes them.
package status

import (
	"fmt"
	"net/http"

	"github.com/jmgilman/iostep/errors"
	"github.com/jmgilman/iostep/transport"
)

// Class is the category of a status code.
type Class int

const (
	// Other is any code outside the ranges below.
	Other Class = iota
	// Success is 200-299.
	Success
	// ClientError is 400-499.
	ClientError
	// ServerError is 500-599.
	ServerError
)

func (c Class) String() string {
	switch c {
	case Success:
		return "success"
	case ClientError:
		return "client error"
	case ServerError:
		return "server error"
	default:
		return "other"
	}
}

// Halts reports whether a response of this class stops the pipeline.
func (c Class) Halts() bool {
	return c == ClientError || c == ServerError
}

// Classify returns the Class of code.
func Classify(code int) Class {
	switch {
	case code >= 200 && code <= 299:
		return Success
	case code >= 400 && code <= 499:
		return ClientError
	case code >= 500 && code <= 599:
		return ServerError
	default:
		return Other
	}
}

// contextKey is the error context key holding the offending status code.
const contextKey = "status_code"

// CheckCode returns nil when code lets the pipeline continue, and a
// CodeClientError or CodeServerError error otherwise.
func CheckCode(code int) error {
	var errCode errors.ErrorCode
	switch Classify(code) {
	case ClientError:
		errCode = errors.CodeClientError
	case ServerError:
		errCode = errors.CodeServerError
	default:
		return nil
	}

	err := errors.New(errCode, fmt.Sprintf("got %s: %d %s", Classify(code), code, http.StatusText(code)))
	return errors.WithContext(err, contextKey, code)
}

// Check validates resp's status code. A nil response is an internal error.
func Check(resp *transport.Response) error {
	if resp == nil {
		return errors.New(errors.CodeInternal, "cannot validate nil response")
	}
	return CheckCode(resp.StatusCode)
}

// StatusCode extracts the status code attached by Check.
func StatusCode(err error) (int, bool) {
	v, ok := errors.GetContext(err, contextKey)
	if !ok {
		return 0, false
	}
	code, ok := v.(int)
	return code, ok
}
