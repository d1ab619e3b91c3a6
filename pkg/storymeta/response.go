package storymeta

import (
	"encoding/json"
	"errors"
	"fmt"
)

// invalidStoryIDMessage is the exact error text the upstream API uses for an
// unknown story identifier.
const invalidStoryIDMessage = "Invalid story id"

// envelope is the top-level response union. Exactly one of the two members
// is expected; keeping both raw lets us probe which key is present instead of
// trying one shape and falling back to the other.
type envelope struct {
	Story json.RawMessage `json:"story"`
	Error *string         `json:"error"`
}

// Decode parses a story API response document. It returns the decoded Story
// on success, ErrInvalidStoryID or an *APIError when the API reported a
// failure, and a *MalformedError when the document itself is unusable.
func Decode(input string) (*Story, error) {
	return DecodeBytes([]byte(input))
}

// DecodeBytes is Decode for a raw byte slice.
func DecodeBytes(data []byte) (*Story, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, &MalformedError{Err: err}
	}

	switch {
	case len(env.Story) != 0 && string(env.Story) != "null":
		var story Story
		if err := json.Unmarshal(env.Story, &story); err != nil {
			return nil, &MalformedError{Err: fmt.Errorf("story: %w", err)}
		}
		return &story, nil
	case env.Error != nil:
		// Only a successfully parsed union reaches this mapping; malformed
		// documents are never reinterpreted as API errors.
		if *env.Error == invalidStoryIDMessage {
			return nil, ErrInvalidStoryID
		}
		return nil, &APIError{Message: *env.Error}
	}
	return nil, &MalformedError{Err: errors.New(`document has neither a "story" nor an "error" member`)}
}

// Encode serializes a story back into the response document shape, wrapped
// under the story key. There is no encoder for the error variant; the API is
// the only producer of those.
func Encode(story *Story) (string, error) {
	data, err := EncodeBytes(story)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// EncodeBytes is Encode returning a raw byte slice.
func EncodeBytes(story *Story) ([]byte, error) {
	return json.Marshal(struct {
		Story *Story `json:"story"`
	}{Story: story})
}
