package transcript

import (
	"fmt"
	"strings"
)

// Segment is a single caption line: the spoken text and its start offset,
// in seconds, from the beginning of the video.
type Segment struct {
	Start float64 `json:"start"`
	Text  string  `json:"text"`
}

// Format renders segments into the annotated block the language model reads,
// one line per segment: "[HH:MM:SS] text". Newlines inside the caption text
// become single spaces so every segment stays on one line. Segment order is
// preserved and nothing is dropped; an empty slice yields an empty string.
func Format(segments []Segment) string {
	var b strings.Builder
	for _, seg := range segments {
		text := strings.ReplaceAll(seg.Text, "\n", " ")
		fmt.Fprintf(&b, "[%s] %s\n", Clock(seg.Start), text)
	}
	return b.String()
}
