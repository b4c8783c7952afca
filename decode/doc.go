// Package decode turns raw response or file bytes into text or records.
//
// Text only checks that the bytes are valid UTF-8. Records goes further: the
// text must be a JSON array whose elements match the record schema
//
//	[...{
//	    name:         string
//	    description?: null | string
//	    fork:         bool
//	}]
//
// Unknown fields are ignored. Decoding is all or nothing: a single bad element
// fails the whole call with errors.CodeSchemaFailed and no records are
// returned. The schema is expressed in CUE and checked before any Go value is
// populated, so a missing required field is reported as missing rather than
// silently zero-valued.
package decode
