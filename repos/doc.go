// Package repos lists a GitHub user's repositories as decode.Records.
//
// Two interchangeable sources are provided. HTTPSource issues a plain GET
// through the transport, status and decode steps. SDKSource asks the same
// endpoint through go-github and maps its errors onto the same codes, so
// callers can switch between them without changing error handling:
//
//	src := repos.NewHTTPSource(client, repos.DefaultURLTemplate)
//	records, err := src.List(ctx, "donaldpipowitch")
//	if errors.HasCode(err, errors.CodeClientError) {
//	    // unknown user, rate limited, ...
//	}
package repos
