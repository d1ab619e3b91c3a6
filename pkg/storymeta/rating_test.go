package storymeta

import "testing"

func TestDecodeRatingNumeric(t *testing.T) {
	tests := []struct {
		name    string
		wire    string
		want    StoryRating
		wantErr bool
	}{
		{name: "everyone", wire: "0", want: RatingEveryone},
		{name: "teen", wire: "1", want: RatingTeen},
		{name: "mature", wire: "2", want: RatingMature},
		{name: "out of range", wire: "3", wantErr: true},
		{name: "negative", wire: "-1", wantErr: true},
		{name: "fractional", wire: "1.5", wantErr: true},
		{name: "string", wire: `"0"`, wantErr: true},
		{name: "missing value", wire: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeRating("content_rating", []byte(tt.wire))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("decodeRating(%q) succeeded with %v, want error", tt.wire, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("decodeRating(%q) returned error: %v", tt.wire, err)
			}
			if got != tt.want {
				t.Errorf("decodeRating(%q) = %v, want %v", tt.wire, got, tt.want)
			}
		})
	}
}

func TestDecodeRatingText(t *testing.T) {
	tests := []struct {
		name    string
		wire    string
		want    StoryRating
		wantErr bool
	}{
		{name: "everyone", wire: `"Everyone"`, want: RatingEveryone},
		{name: "teen", wire: `"Teen"`, want: RatingTeen},
		{name: "mature", wire: `"Mature"`, want: RatingMature},
		{name: "wrong case", wire: `"everyone"`, wantErr: true},
		{name: "padded label", wire: `" Teen"`, wantErr: true},
		{name: "unknown label", wire: `"Adult"`, wantErr: true},
		{name: "numeric form in text field", wire: "0", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeRatingText("content_rating_text", []byte(tt.wire))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("decodeRatingText(%q) succeeded with %v, want error", tt.wire, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("decodeRatingText(%q) returned error: %v", tt.wire, err)
			}
			if got != tt.want {
				t.Errorf("decodeRatingText(%q) = %v, want %v", tt.wire, got, tt.want)
			}
		})
	}
}

func TestRatingRoundTrip(t *testing.T) {
	for _, r := range []StoryRating{RatingEveryone, RatingTeen, RatingMature} {
		numeric, err := r.MarshalJSON()
		if err != nil {
			t.Fatalf("MarshalJSON(%v) returned error: %v", r, err)
		}
		gotNumeric, err := decodeRating("content_rating", numeric)
		if err != nil {
			t.Fatalf("decodeRating(%s) returned error: %v", numeric, err)
		}
		if gotNumeric != r {
			t.Errorf("numeric round trip of %v gave %v", r, gotNumeric)
		}

		gotText, err := ParseStoryRating(r.String())
		if err != nil {
			t.Fatalf("ParseStoryRating(%q) returned error: %v", r.String(), err)
		}
		if gotText != r {
			t.Errorf("text round trip of %v gave %v", r, gotText)
		}
	}
}

func TestRatingString(t *testing.T) {
	tests := []struct {
		rating StoryRating
		want   string
	}{
		{RatingEveryone, "Everyone"},
		{RatingTeen, "Teen"},
		{RatingMature, "Mature"},
	}
	for _, tt := range tests {
		if got := tt.rating.String(); got != tt.want {
			t.Errorf("StoryRating(%d).String() = %q, want %q", tt.rating, got, tt.want)
		}
	}
}
