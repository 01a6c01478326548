package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"jamesfarrell.me/asktube/internal/config"
	"jamesfarrell.me/asktube/internal/transcript"
	"jamesfarrell.me/asktube/internal/youtube"
)

// TranscriptFetcher pulls the caption segments for a video id.
type TranscriptFetcher interface {
	FetchTranscript(ctx context.Context, videoID string) ([]transcript.Segment, error)
}

// TopicLocator asks a model where in a formatted transcript a topic first
// comes up.
type TopicLocator interface {
	Locate(ctx context.Context, formatted, topic string) (string, error)
}

type AskRequest struct {
	VideoURL string `json:"video_url" validate:"required"`
	Topic    string `json:"topic" validate:"required"`
}

type AskResponse struct {
	Timestamp string `json:"timestamp"`
	VideoURL  string `json:"video_url"`
	Topic     string `json:"topic"`
}

var validate = validator.New()

type AskHandler struct {
	fetcher TranscriptFetcher
	locator TopicLocator
}

func NewAskHandler(fetcher TranscriptFetcher, locator TopicLocator) *AskHandler {
	return &AskHandler{fetcher: fetcher, locator: locator}
}

// Ask handles POST /ask: extract the video id, fetch and format the
// transcript, ask the model for the first moment the topic is discussed, and
// respond with the normalized timestamp.
func (h *AskHandler) Ask(w http.ResponseWriter, r *http.Request) {
	var req AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("Cannot parse JSON: %v", err))
		return
	}
	if err := validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, validationDetail(err))
		return
	}

	videoID, err := youtube.ExtractVideoID(req.VideoURL)
	if err != nil {
		h.fail(w, err)
		return
	}

	segments, err := h.fetcher.FetchTranscript(r.Context(), videoID)
	if err != nil {
		h.fail(w, asFetchError(err))
		return
	}

	raw, err := h.locator.Locate(r.Context(), transcript.Format(segments), req.Topic)
	if err != nil {
		h.fail(w, err)
		return
	}

	respondJSON(w, http.StatusOK, AskResponse{
		Timestamp: transcript.Normalize(raw),
		VideoURL:  req.VideoURL,
		Topic:     req.Topic,
	})
}

func (h *AskHandler) fail(w http.ResponseWriter, err error) {
	status, detail := statusForError(err)
	entry := config.Log.WithError(err)
	if status >= http.StatusInternalServerError {
		entry.Error("Ask request failed")
	} else {
		entry.Warn("Ask request failed")
	}
	respondError(w, status, detail)
}

// validationDetail flattens field-level validation failures into one detail
// string.
func validationDetail(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Sprintf("Validation failed: %v", err)
	}
	parts := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		parts = append(parts, fmt.Sprintf("Field '%s' failed on the '%s' tag", fe.Field(), fe.Tag()))
	}
	return "Validation failed: " + strings.Join(parts, "; ")
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// respondError writes the error wire shape: {"detail": "..."}.
func respondError(w http.ResponseWriter, status int, detail string) {
	respondJSON(w, status, map[string]string{"detail": detail})
}
