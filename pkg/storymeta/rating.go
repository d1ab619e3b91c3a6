package storymeta

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// StoryRating is the content rating assigned to a story.
//
// The upstream payload carries the rating twice: the authoritative numeric
// code under content_rating (0, 1 or 2) and a textual label under
// content_rating_text. Story keeps only the enum; the label is re-derived on
// encode so a decoded document re-encodes to the same pair.
type StoryRating uint8

const (
	// RatingEveryone marks a story suitable for everyone.
	RatingEveryone StoryRating = iota
	// RatingTeen marks a story suitable for teens.
	RatingTeen
	// RatingMature marks a story suitable for a mature audience.
	RatingMature
)

const (
	ratingWantNumeric = "an integer between 0 and 2"
	ratingWantText    = `one of "Everyone", "Teen" or "Mature"`
)

// String returns the canonical label of the rating.
func (r StoryRating) String() string {
	switch r {
	case RatingEveryone:
		return "Everyone"
	case RatingTeen:
		return "Teen"
	case RatingMature:
		return "Mature"
	}
	return fmt.Sprintf("StoryRating(%d)", uint8(r))
}

// ParseStoryRating maps a canonical rating label back to its enum value. The
// match is exact and case-sensitive.
func ParseStoryRating(label string) (StoryRating, error) {
	switch label {
	case "Everyone":
		return RatingEveryone, nil
	case "Teen":
		return RatingTeen, nil
	case "Mature":
		return RatingMature, nil
	}
	return 0, &FieldError{Value: strconv.Quote(label), Message: ratingWantText}
}

// decodeRating interprets a raw wire token as the numeric rating form.
func decodeRating(field string, data []byte) (StoryRating, error) {
	raw := strings.TrimSpace(string(data))
	n, err := strconv.ParseUint(raw, 10, 8)
	if err != nil || n > uint64(RatingMature) {
		return 0, &FieldError{Field: field, Value: raw, Message: ratingWantNumeric}
	}
	return StoryRating(n), nil
}

// decodeRatingText interprets a raw wire token as the textual rating form.
func decodeRatingText(field string, data []byte) (StoryRating, error) {
	var label string
	if err := json.Unmarshal(data, &label); err != nil {
		return 0, &FieldError{Field: field, Value: strings.TrimSpace(string(data)), Message: ratingWantText}
	}
	r, err := ParseStoryRating(label)
	if err != nil {
		return 0, &FieldError{Field: field, Value: strconv.Quote(label), Message: ratingWantText}
	}
	return r, nil
}

// UnmarshalJSON decodes the numeric rating form.
func (r *StoryRating) UnmarshalJSON(data []byte) error {
	rating, err := decodeRating("", data)
	if err != nil {
		return err
	}
	*r = rating
	return nil
}

// MarshalJSON encodes the rating in its numeric form.
func (r StoryRating) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Itoa(int(r))), nil
}

// ratingLabel carries a StoryRating in its textual wire form. It exists only
// for the content_rating_text shadow field.
type ratingLabel StoryRating

func (l ratingLabel) MarshalJSON() ([]byte, error) {
	return json.Marshal(StoryRating(l).String())
}
