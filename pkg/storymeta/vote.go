package storymeta

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Vote is an optional vote count. The upstream API reports vote totals as a
// plain integer and uses any negative value (canonically -1) to mean that
// voting is disabled on the story. Valid is false when voting is disabled.
//
// Vote follows the database/sql Null* convention: check Valid before reading
// Count.
type Vote struct {
	Count uint32
	Valid bool
}

// VoteOf returns a Vote carrying n with voting enabled.
func VoteOf(n uint32) Vote {
	return Vote{Count: n, Valid: true}
}

const voteWant = "a negative integer or an integer between 0 and 4294967295"

// decodeVote interprets a raw wire token as a vote count. Any negative
// integer decodes as voting disabled; non-negative integers must fit in 32
// bits.
func decodeVote(field string, data []byte) (Vote, error) {
	raw := strings.TrimSpace(string(data))
	n, err := strconv.ParseInt(raw, 10, 64)
	if err == nil {
		switch {
		case n < 0:
			return Vote{}, nil
		case n <= math.MaxUint32:
			return Vote{Count: uint32(n), Valid: true}, nil
		}
		return Vote{}, &FieldError{Field: field, Value: raw, Message: voteWant}
	}
	// Integers outside the int64 range still carry a sign we can honor: any
	// negative means disabled, any positive overflows 32 bits.
	if errors.Is(err, strconv.ErrRange) && strings.HasPrefix(raw, "-") {
		return Vote{}, nil
	}
	return Vote{}, &FieldError{Field: field, Value: raw, Message: voteWant}
}

// UnmarshalJSON decodes an upstream vote value.
func (v *Vote) UnmarshalJSON(data []byte) error {
	vote, err := decodeVote("", data)
	if err != nil {
		return err
	}
	*v = vote
	return nil
}

// MarshalJSON encodes the vote as its count, or as the canonical -1 sentinel
// when voting is disabled. Non-canonical negative inputs never survive a
// round trip literally; -1 is always the output for a disabled vote.
func (v Vote) MarshalJSON() ([]byte, error) {
	if !v.Valid {
		return []byte("-1"), nil
	}
	return []byte(strconv.FormatUint(uint64(v.Count), 10)), nil
}
