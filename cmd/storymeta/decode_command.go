package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/storymeta/pkg/storymeta"
)

func newDecodeCommand(logLevel *string) *cobra.Command {
	var emitJSON bool
	var pretty bool

	cmd := &cobra.Command{
		Use:   "decode [file]",
		Short: "Decode a story API response from a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(*logLevel)
			if err != nil {
				return err
			}

			input, source, err := readInput(args)
			if err != nil {
				log.Error().Str("source", source).Err(err).Msg("Failed to read input")
				return err
			}

			story, err := storymeta.DecodeBytes(input)
			if err != nil {
				logDecodeError(log, source, err)
				return err
			}

			event := log.Info().
				Str("source", source).
				Uint32("id", story.ID).
				Str("title", story.Title).
				Str("author", story.Author.Name).
				Str("status", story.Status.String()).
				Str("content_rating", story.ContentRating.String()).
				Int("chapters", len(story.Chapters)).
				Uint64("words", story.Words)
			if story.Likes.Valid {
				event = event.Uint32("likes", story.Likes.Count).Uint32("dislikes", story.Dislikes.Count)
			}
			event.Msg("Story decoded")

			if !emitJSON {
				return nil
			}

			out, err := storymeta.EncodeBytes(story)
			if err != nil {
				return err
			}
			if pretty {
				var buf bytes.Buffer
				if err := json.Indent(&buf, out, "", "  "); err != nil {
					return err
				}
				out = buf.Bytes()
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	cmd.Flags().BoolVar(&emitJSON, "json", false, "Re-emit the normalized document on stdout")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent the emitted document")

	return cmd
}

func readInput(args []string) ([]byte, string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		return data, "stdin", err
	}
	data, err := os.ReadFile(args[0])
	return data, args[0], err
}

func logDecodeError(log zerolog.Logger, source string, err error) {
	var apiErr *storymeta.APIError
	switch {
	case errors.Is(err, storymeta.ErrInvalidStoryID):
		log.Error().Str("source", source).Msg("API rejected the story id")
	case errors.As(err, &apiErr):
		log.Error().Str("source", source).Str("message", apiErr.Message).Msg("API reported an error")
	default:
		log.Error().Str("source", source).Err(err).Msg("Response is malformed")
	}
}
