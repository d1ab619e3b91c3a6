package storymeta

import "encoding/json"

// Author identifies the writer of a story.
type Author struct {
	ID   uint32 `json:"id"`
	Name string `json:"name"`
}

// Chapter is a single chapter of a story. Chapters never reference their
// parent; they are plain values owned by the story's chapter list.
type Chapter struct {
	ID           uint32    `json:"id"`
	Title        string    `json:"title"`
	Words        uint64    `json:"words"`
	Views        uint32    `json:"views"`
	Link         string    `json:"link"`
	DateModified Timestamp `json:"date_modified"`
}

// Story is the complete metadata record for one story as reported by the
// upstream API. It is an immutable value: construct it by decoding a
// response, copy it freely.
//
// Image and FullImage are nil when the story has no cover image. Chapters is
// ordered exactly as the API returned it and is never nil after a decode,
// even for payloads that omit the chapter list.
type Story struct {
	ID               uint32
	Title            string
	URL              string
	ShortDescription string
	Description      string
	DateModified     Timestamp
	Image            *string
	FullImage        *string
	Views            uint32
	TotalViews       uint32
	Words            uint64
	ChapterCount     uint64
	Comments         uint32
	Author           Author
	Status           StoryStatus
	ContentRating    StoryRating
	Likes            Vote
	Dislikes         Vote
	Chapters         []Chapter
}

// storyWire mirrors the upstream document shape on the decode side. The
// polymorphic fields stay raw so each codec can inspect the token itself and
// name the offending field on failure.
type storyWire struct {
	ID                uint32          `json:"id"`
	Title             string          `json:"title"`
	URL               string          `json:"url"`
	ShortDescription  string          `json:"short_description"`
	Description       string          `json:"description"`
	DateModified      Timestamp       `json:"date_modified"`
	Image             *string         `json:"image"`
	FullImage         *string         `json:"full_image"`
	Views             uint32          `json:"views"`
	TotalViews        uint32          `json:"total_views"`
	Words             uint64          `json:"words"`
	ChapterCount      uint64          `json:"chapter_count"`
	Comments          uint32          `json:"comments"`
	Author            Author          `json:"author"`
	Status            json.RawMessage `json:"status"`
	ContentRatingText json.RawMessage `json:"content_rating_text"`
	ContentRating     json.RawMessage `json:"content_rating"`
	Likes             json.RawMessage `json:"likes"`
	Dislikes          json.RawMessage `json:"dislikes"`
	Chapters          []Chapter       `json:"chapters"`
}

// storyWireOut is the encode-side counterpart, with the typed codecs back in
// place. Field order here fixes the key order of encoded documents.
type storyWireOut struct {
	ID                uint32      `json:"id"`
	Title             string      `json:"title"`
	URL               string      `json:"url"`
	ShortDescription  string      `json:"short_description"`
	Description       string      `json:"description"`
	DateModified      Timestamp   `json:"date_modified"`
	Image             *string     `json:"image"`
	FullImage         *string     `json:"full_image"`
	Views             uint32      `json:"views"`
	TotalViews        uint32      `json:"total_views"`
	Words             uint64      `json:"words"`
	ChapterCount      uint64      `json:"chapter_count"`
	Comments          uint32      `json:"comments"`
	Author            Author      `json:"author"`
	Status            StoryStatus `json:"status"`
	ContentRatingText ratingLabel `json:"content_rating_text"`
	ContentRating     StoryRating `json:"content_rating"`
	Likes             Vote        `json:"likes"`
	Dislikes          Vote        `json:"dislikes"`
	Chapters          []Chapter   `json:"chapters"`
}

// UnmarshalJSON assembles a Story from its wire document, running each
// polymorphic field through its codec.
func (s *Story) UnmarshalJSON(data []byte) error {
	var w storyWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	status, err := decodeStatus("status", w.Status)
	if err != nil {
		return err
	}
	rating, err := decodeRating("content_rating", w.ContentRating)
	if err != nil {
		return err
	}
	// The textual rating mirrors the numeric field. It must still be a valid
	// label, but a label that disagrees with content_rating is ignored; the
	// numeric field is authoritative.
	if len(w.ContentRatingText) != 0 {
		if _, err := decodeRatingText("content_rating_text", w.ContentRatingText); err != nil {
			return err
		}
	}
	likes, err := decodeVote("likes", w.Likes)
	if err != nil {
		return err
	}
	dislikes, err := decodeVote("dislikes", w.Dislikes)
	if err != nil {
		return err
	}

	chapters := w.Chapters
	if chapters == nil {
		// Older payloads omit the chapter list entirely.
		chapters = []Chapter{}
	}

	*s = Story{
		ID:               w.ID,
		Title:            w.Title,
		URL:              w.URL,
		ShortDescription: w.ShortDescription,
		Description:      w.Description,
		DateModified:     w.DateModified,
		Image:            w.Image,
		FullImage:        w.FullImage,
		Views:            w.Views,
		TotalViews:       w.TotalViews,
		Words:            w.Words,
		ChapterCount:     w.ChapterCount,
		Comments:         w.Comments,
		Author:           w.Author,
		Status:           status,
		ContentRating:    rating,
		Likes:            likes,
		Dislikes:         dislikes,
		Chapters:         chapters,
	}
	return nil
}

// MarshalJSON serializes the story back to its wire document. The
// content_rating_text field is derived from ContentRating, and a nil chapter
// list encodes as an empty array.
func (s Story) MarshalJSON() ([]byte, error) {
	chapters := s.Chapters
	if chapters == nil {
		chapters = []Chapter{}
	}
	return json.Marshal(storyWireOut{
		ID:                s.ID,
		Title:             s.Title,
		URL:               s.URL,
		ShortDescription:  s.ShortDescription,
		Description:       s.Description,
		DateModified:      s.DateModified,
		Image:             s.Image,
		FullImage:         s.FullImage,
		Views:             s.Views,
		TotalViews:        s.TotalViews,
		Words:             s.Words,
		ChapterCount:      s.ChapterCount,
		Comments:          s.Comments,
		Author:            s.Author,
		Status:            s.Status,
		ContentRatingText: ratingLabel(s.ContentRating),
		ContentRating:     s.ContentRating,
		Likes:             s.Likes,
		Dislikes:          s.Dislikes,
		Chapters:          chapters,
	})
}
