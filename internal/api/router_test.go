package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"jamesfarrell.me/asktube/internal/api/handlers"
	"jamesfarrell.me/asktube/internal/transcript"
)

type stubFetcher struct{}

func (stubFetcher) FetchTranscript(context.Context, string) ([]transcript.Segment, error) {
	return []transcript.Segment{{Start: 0, Text: "Hello"}}, nil
}

type stubLocator struct{}

func (stubLocator) Locate(context.Context, string, string) (string, error) {
	return "00:00:05", nil
}

func newTestRouter() http.Handler {
	return NewRouter(handlers.NewAskHandler(stubFetcher{}, stubLocator{}))
}

func TestHealthCheck(t *testing.T) {
	w := httptest.NewRecorder()
	newTestRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	if w.Code != http.StatusOK {
		t.Errorf("GET /health status = %d, want %d", w.Code, http.StatusOK)
	}
	if w.Body.String() != "OK" {
		t.Errorf("GET /health body = %q, want OK", w.Body.String())
	}
}

func TestAskRouted(t *testing.T) {
	body := strings.NewReader(`{"video_url":"https://youtu.be/dQw4w9WgXcQ","topic":"greetings"}`)
	req := httptest.NewRequest(http.MethodPost, "/ask", body)
	req.Header.Set("Origin", "http://app.example")
	w := httptest.NewRecorder()
	newTestRouter().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("POST /ask status = %d, want %d (body %s)", w.Code, http.StatusOK, w.Body)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}
	if !strings.Contains(w.Body.String(), `"timestamp":"00:00:05"`) {
		t.Errorf("POST /ask body = %s", w.Body)
	}
}

func TestAskPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/ask", nil)
	req.Header.Set("Origin", "http://app.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")
	w := httptest.NewRecorder()
	newTestRouter().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("preflight status = %d, want %d", w.Code, http.StatusOK)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}
}

func TestAskMethodNotAllowed(t *testing.T) {
	w := httptest.NewRecorder()
	newTestRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ask", nil))

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("GET /ask status = %d, want %d", w.Code, http.StatusMethodNotAllowed)
	}
}
