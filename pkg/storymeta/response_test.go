package storymeta

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeInvalidStoryID(t *testing.T) {
	story, err := Decode(`{"error": "Invalid story id"}`)
	assert.Nil(t, story)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidStoryID)
}

func TestDecodeAPIError(t *testing.T) {
	story, err := Decode(`{"error": "Some other error message"}`)
	assert.Nil(t, story)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Some other error message", apiErr.Message)
	assert.NotErrorIs(t, err, ErrInvalidStoryID)
}

func TestDecodeMalformed(t *testing.T) {
	inputs := map[string]string{
		"empty object":           `{}`,
		"truncated document":     `{"story"`,
		"not an object":          `[1, 2, 3]`,
		"story is null":          `{"story": null}`,
		"error is not text":      `{"error": 404}`,
		"story is not an object": `{"story": "yes"}`,
	}

	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			story, err := Decode(input)
			assert.Nil(t, story)

			var malformed *MalformedError
			require.ErrorAs(t, err, &malformed, "input: %s", input)

			// A malformed document is never reinterpreted as an API error.
			assert.NotErrorIs(t, err, ErrInvalidStoryID)
			var apiErr *APIError
			assert.False(t, errors.As(err, &apiErr))
		})
	}
}

func TestDecodeStoryWinsOverError(t *testing.T) {
	input := sampleResponse(t, sampleStoryDoc(1))
	// Splice an error member next to the story one; the story member is
	// probed first.
	withError := input[:len(input)-1] + `,"error": "Invalid story id"}`

	story, err := Decode(withError)
	require.NoError(t, err)
	assert.Equal(t, uint32(428991), story.ID)
}
