package youtube

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"html"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"jamesfarrell.me/asktube/internal/transcript"
)

// Named transcript-fetch failures the caller can match on.
var (
	// ErrTranscriptsDisabled means the video has no captions object at all:
	// the creator turned subtitles off.
	ErrTranscriptsDisabled = errors.New("transcripts disabled")

	// ErrNoTranscriptFound means captions exist but no track is usable.
	ErrNoTranscriptFound = errors.New("no transcript found")
)

// FetchError wraps any transcript retrieval failure that is not one of the
// named conditions above.
type FetchError struct {
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("transcript fetch: %v", e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

const (
	fetchTimeout      = 30 * time.Second
	maxTimedTextBytes = 512 * 1024
)

// Client fetches video transcripts from YouTube's Innertube API.
type Client struct {
	http      *http.Client
	playerURL string
}

func NewClient() *Client {
	return &Client{
		http:      &http.Client{Timeout: fetchTimeout},
		playerURL: innertubePlayerURL,
	}
}

// FetchTranscript returns the caption segments for a video, ordered by start
// time. It asks the player endpoint for the video's caption tracks, picks the
// best usable one and downloads its timedtext XML.
func (c *Client) FetchTranscript(ctx context.Context, videoID string) ([]transcript.Segment, error) {
	player, err := c.fetchPlayer(ctx, videoID)
	if err != nil {
		return nil, &FetchError{Err: err}
	}

	if player.Captions == nil {
		if s := player.PlayabilityStatus; s != nil && s.Status != "OK" && s.Reason != "" {
			return nil, &FetchError{Err: fmt.Errorf("video not playable: %s", s.Reason)}
		}
		return nil, ErrTranscriptsDisabled
	}

	track, ok := pickTrack(player.Captions.PlayerCaptionsTracklistRenderer.CaptionTracks)
	if !ok {
		return nil, ErrNoTranscriptFound
	}

	segments, err := c.fetchTimedText(ctx, track.BaseURL)
	if err != nil {
		return nil, &FetchError{Err: err}
	}
	return segments, nil
}

func (c *Client) fetchPlayer(ctx context.Context, videoID string) (*playerResponse, error) {
	body, err := json.Marshal(playerRequest{
		VideoID: videoID,
		Context: playerContext{
			Client: playerClient{
				ClientName:        "ANDROID",
				ClientVersion:     androidVersion,
				AndroidSdkVersion: 30,
				Hl:                "en",
				Gl:                "US",
			},
		},
		RacyCheckOk:    true,
		ContentCheckOk: true,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.playerURL+"?prettyPrint=false", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", androidUA)
	req.Header.Set("X-Youtube-Client-Name", "3")
	req.Header.Set("X-Youtube-Client-Version", androidVersion)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("player request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return nil, fmt.Errorf("player request: HTTP %d: %s", resp.StatusCode, snippet)
	}

	var player playerResponse
	if err := json.NewDecoder(resp.Body).Decode(&player); err != nil {
		return nil, fmt.Errorf("decode player response: %w", err)
	}
	return &player, nil
}

func (c *Client) fetchTimedText(ctx context.Context, baseURL string) ([]transcript.Segment, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", androidUA)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch timedtext: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch timedtext: HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxTimedTextBytes))
	if err != nil {
		return nil, err
	}

	var tt timedText
	if err := xml.Unmarshal(body, &tt); err != nil {
		return nil, fmt.Errorf("parse timedtext XML: %w", err)
	}

	segments := make([]transcript.Segment, 0, len(tt.Lines))
	for _, line := range tt.Lines {
		text := cleanText(line.Text)
		if text == "" {
			continue
		}
		segments = append(segments, transcript.Segment{Start: line.Start, Text: text})
	}
	return segments, nil
}

// needsPoToken reports whether a caption track URL is PoToken-gated; those
// tracks can only be fetched from a browser.
func needsPoToken(baseURL string) bool {
	return strings.Contains(baseURL, "&exp=xpe")
}

// pickTrack selects the caption track to download: a manual English track if
// there is one, then auto-generated English, then whatever comes first.
// PoToken-gated tracks are skipped entirely.
func pickTrack(tracks []captionTrack) (captionTrack, bool) {
	usable := make([]captionTrack, 0, len(tracks))
	for _, t := range tracks {
		if !needsPoToken(t.BaseURL) {
			usable = append(usable, t)
		}
	}
	if len(usable) == 0 {
		return captionTrack{}, false
	}
	for _, t := range usable {
		if strings.HasPrefix(t.LanguageCode, "en") && t.Kind != "asr" {
			return t, true
		}
	}
	for _, t := range usable {
		if strings.HasPrefix(t.LanguageCode, "en") {
			return t, true
		}
	}
	return usable[0], true
}

var tagRe = regexp.MustCompile(`<[^>]+>`)

// cleanText unescapes HTML entities in a caption line and strips any markup
// the track smuggles in.
func cleanText(s string) string {
	s = html.UnescapeString(s)
	return strings.TrimSpace(tagRe.ReplaceAllString(s, ""))
}
