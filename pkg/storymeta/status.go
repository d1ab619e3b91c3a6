package storymeta

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// StoryStatus is the completion status of a story.
type StoryStatus uint8

const (
	// StatusComplete marks a finished story.
	StatusComplete StoryStatus = iota
	// StatusIncomplete marks a story still being written.
	StatusIncomplete
	// StatusHiatus marks a story on hold. Its wire label is "On Hiatus",
	// not "Hiatus".
	StatusHiatus
	// StatusCancelled marks an abandoned story.
	StatusCancelled
)

const statusWant = `one of "Complete", "Incomplete", "On Hiatus" or "Cancelled"`

// String returns the canonical label of the status.
func (s StoryStatus) String() string {
	switch s {
	case StatusComplete:
		return "Complete"
	case StatusIncomplete:
		return "Incomplete"
	case StatusHiatus:
		return "On Hiatus"
	case StatusCancelled:
		return "Cancelled"
	}
	return fmt.Sprintf("StoryStatus(%d)", uint8(s))
}

// ParseStoryStatus maps a canonical status label back to its enum value. The
// match is exact and case-sensitive.
func ParseStoryStatus(label string) (StoryStatus, error) {
	switch label {
	case "Complete":
		return StatusComplete, nil
	case "Incomplete":
		return StatusIncomplete, nil
	case "On Hiatus":
		return StatusHiatus, nil
	case "Cancelled":
		return StatusCancelled, nil
	}
	return 0, &FieldError{Value: strconv.Quote(label), Message: statusWant}
}

// decodeStatus interprets a raw wire token as a status label.
func decodeStatus(field string, data []byte) (StoryStatus, error) {
	var label string
	if err := json.Unmarshal(data, &label); err != nil {
		return 0, &FieldError{Field: field, Value: strings.TrimSpace(string(data)), Message: statusWant}
	}
	s, err := ParseStoryStatus(label)
	if err != nil {
		return 0, &FieldError{Field: field, Value: strconv.Quote(label), Message: statusWant}
	}
	return s, nil
}

// UnmarshalJSON decodes an upstream status label.
func (s *StoryStatus) UnmarshalJSON(data []byte) error {
	status, err := decodeStatus("", data)
	if err != nil {
		return err
	}
	*s = status
	return nil
}

// MarshalJSON encodes the status as its canonical label.
func (s StoryStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}
