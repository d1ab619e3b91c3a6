// Package storymeta decodes and re-encodes the JSON documents returned by the
// upstream story metadata API endpoint.
//
//	story, err := storymeta.Decode(response)
//
// The package is a pure codec: it performs no I/O, keeps no state and never
// logs. Callers fetch the response text themselves (transport, auth and
// retries are theirs) and hand it to Decode, which returns either a fully
// populated Story or a typed error describing what went wrong.
//
// A handful of wire fields are polymorphic or inconsistently typed across API
// versions, and each carries its own codec: vote counts use a negative
// sentinel for "voting disabled" (Vote), the content rating is carried both
// as a numeric code and as a textual label (StoryRating), and the completion
// status is a closed set of labels (StoryStatus). Decoding then re-encoding a
// document reproduces it up to key order.
package storymeta
