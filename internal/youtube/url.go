package youtube

import (
	"errors"
	"regexp"
)

// videoIDRe matches an 11-character video id straight after "v=" or a path
// separator. Covers both watch?v=ID and youtu.be/ID forms without full URL
// parsing; the leftmost match wins.
var videoIDRe = regexp.MustCompile(`(?:v=|/)([0-9A-Za-z_-]{11})`)

// ErrInvalidURL means no video id could be found in the URL.
var ErrInvalidURL = errors.New("no video id found in url")

// ExtractVideoID pulls the 11-character video id out of a YouTube URL.
func ExtractVideoID(url string) (string, error) {
	m := videoIDRe.FindStringSubmatch(url)
	if m == nil {
		return "", ErrInvalidURL
	}
	return m[1], nil
}
