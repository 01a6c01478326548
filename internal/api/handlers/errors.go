package handlers

import (
	"errors"
	"net/http"

	"jamesfarrell.me/asktube/internal/locator"
	"jamesfarrell.me/asktube/internal/youtube"
)

// statusForError translates a pipeline failure into the status and detail of
// the error response. Every failure class the pipeline produces has a row
// here; anything unrecognized is an internal error.
func statusForError(err error) (int, string) {
	var fetchErr *youtube.FetchError
	var upstreamErr *locator.UpstreamError
	switch {
	case errors.Is(err, youtube.ErrInvalidURL):
		return http.StatusBadRequest, "Invalid YouTube URL"
	case errors.Is(err, youtube.ErrTranscriptsDisabled):
		return http.StatusBadRequest, "The creator disabled subtitles for this video. The text-hack won't work here!"
	case errors.Is(err, youtube.ErrNoTranscriptFound):
		return http.StatusBadRequest, "No transcript found for this video."
	case errors.As(err, &fetchErr):
		return http.StatusBadRequest, "Transcript error: " + fetchErr.Err.Error()
	case errors.As(err, &upstreamErr):
		return http.StatusInternalServerError, "LLM provider error: " + upstreamErr.Detail
	default:
		return http.StatusInternalServerError, err.Error()
	}
}

// asFetchError forces an unrecognized transcript-fetch failure into the fetch
// error class, so faults from that step map to a 400 rather than a 500.
func asFetchError(err error) error {
	if errors.Is(err, youtube.ErrTranscriptsDisabled) || errors.Is(err, youtube.ErrNoTranscriptFound) {
		return err
	}
	var fetchErr *youtube.FetchError
	if errors.As(err, &fetchErr) {
		return err
	}
	return &youtube.FetchError{Err: err}
}
