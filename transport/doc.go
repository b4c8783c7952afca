// Package transport performs the single outbound HTTP call of a pipeline.
//
// A Request is built once and never changes. Client.Get sends it, reads the
// whole body, closes the connection body and returns a Response holding the
// status code and the raw bytes. Every failure along the way (bad URL,
// connection refused, DNS, TLS, timeout, truncated body) is reported as a
// single kind, errors.CodeTransport. The status code is not interpreted here;
// that is the job of package status.
//
//	client := transport.New(transport.WithUserAgent("iostep"))
//	req, err := transport.NewRequest("https://api.github.com/users/octocat")
//	if err != nil {
//	    return err
//	}
//	resp, err := client.Get(ctx, req)
//
// There are no retries. The default client has no timeout; pass a deadline
// through ctx or use WithTimeout.
package transport
