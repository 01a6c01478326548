package locator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// UpstreamError is a non-success response from the chat-completion endpoint.
// It fails the request; there is no retry.
type UpstreamError struct {
	StatusCode int
	Detail     string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("chat completion: upstream status %d: %s", e.StatusCode, e.Detail)
}

const (
	// locateTimeout bounds the completion call so a slow provider cannot
	// hang a request.
	locateTimeout = 60 * time.Second

	// temperature keeps sampling near-deterministic: the same transcript and
	// topic should localize to the same moment.
	temperature = 0.1

	sentinel = "00:00:00"
)

// Locator finds where a topic is first discussed in a formatted transcript by
// asking a chat-completion model.
type Locator struct {
	client *openai.Client
	model  string
}

// New builds a Locator against an OpenAI-compatible endpoint. chatURL is the
// full completions URL, e.g. https://host/v1/chat/completions.
func New(token, chatURL, model string) *Locator {
	cfg := openai.DefaultConfig(token)
	cfg.BaseURL = strings.TrimSuffix(strings.TrimSuffix(chatURL, "/"), "/chat/completions")
	cfg.HTTPClient = &http.Client{Timeout: locateTimeout}
	return &Locator{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

// Locate returns the HH:MM:SS at which topic first comes up in the formatted
// transcript. Model output is repaired as needed and degrades to "00:00:00";
// only a failed completion call is an error.
func (l *Locator) Locate(ctx context.Context, formatted, topic string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, locateTimeout)
	defer cancel()

	resp, err := l.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: l.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: fmt.Sprintf(locatePrompt, topic, formatted)},
		},
		Temperature: temperature,
	})
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			return "", &UpstreamError{StatusCode: apiErr.HTTPStatusCode, Detail: apiErr.Message}
		}
		var reqErr *openai.RequestError
		if errors.As(err, &reqErr) {
			return "", &UpstreamError{StatusCode: reqErr.HTTPStatusCode, Detail: string(reqErr.Body)}
		}
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return sentinel, nil
	}
	return parseTimestamp(resp.Choices[0].Message.Content), nil
}

var (
	fenceLineRe = regexp.MustCompile("^```[a-zA-Z0-9]*$")
	clockRe     = regexp.MustCompile(`\d\d:\d\d:\d\d`)
)

// stripFences drops lines that are nothing but a markdown fence marker,
// keeping the fenced content.
func stripFences(s string) string {
	lines := strings.Split(s, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if fenceLineRe.MatchString(strings.TrimSpace(line)) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

// parseTimestamp turns raw model output into an HH:MM:SS string. Fenced JSON
// is unwrapped and parsed strictly; failing that, the text is scanned for the
// first clock-shaped substring. Unusable output yields the sentinel rather
// than an error.
func parseTimestamp(raw string) string {
	text := strings.TrimSpace(raw)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimSpace(stripFences(text))
	}

	var answer struct {
		Timestamp string `json:"timestamp"`
	}
	if err := json.Unmarshal([]byte(text), &answer); err == nil {
		if answer.Timestamp == "" {
			return sentinel
		}
		return answer.Timestamp
	}

	if m := clockRe.FindString(raw); m != "" {
		return m
	}
	return sentinel
}
