package storymeta

import (
	"errors"
	"fmt"
)

// ErrInvalidStoryID is returned by Decode when the upstream API reports that
// the requested story identifier does not exist.
var ErrInvalidStoryID = errors.New("invalid story id")

// APIError is any failure reported by the upstream API other than an invalid
// story id. Message holds the API's error text verbatim.
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	return "story api: " + e.Message
}

// MalformedError reports input that is not a well-formed story response:
// text that is not valid JSON, a document that carries neither a story nor an
// error member, or a field whose value does not satisfy its codec. The
// underlying cause is available through Unwrap.
type MalformedError struct {
	Err error
}

func (e *MalformedError) Error() string {
	return "malformed story response: " + e.Err.Error()
}

func (e *MalformedError) Unwrap() error { return e.Err }

// FieldError reports a wire value that does not satisfy the codec of the
// field it appeared under.
type FieldError struct {
	Field   string // wire name of the offending field
	Value   string // the value as it appeared in the document
	Message string // what the codec accepts
}

func (e *FieldError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("got %s, want %s", e.Value, e.Message)
	}
	return fmt.Sprintf("field %q: got %s, want %s", e.Field, e.Value, e.Message)
}
