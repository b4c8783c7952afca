package transport

import "net/http"

// Response is what a Get produced. It is consumed once by the validation and
// decode steps and then discarded.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}
