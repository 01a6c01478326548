package transcript

import (
	"fmt"
	"strings"
)

// Clock converts a start offset in seconds to an HH:MM:SS string.
// Fractional seconds are floored. Fields are zero-padded to two digits;
// hours keep growing past 99 rather than wrap.
func Clock(seconds float64) string {
	total := int(seconds)
	hours := total / 3600
	minutes := (total % 3600) / 60
	secs := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
}

// Normalize coerces a model-produced timestamp into HH:MM:SS form. A two-field
// "M:SS" answer gets a zero hour prepended and its fields re-padded, a
// three-field answer passes through unchanged (field ranges are not checked),
// and anything else becomes "00:00:00". It repairs, it never rejects.
func Normalize(raw string) string {
	raw = strings.TrimSpace(raw)
	parts := strings.Split(raw, ":")
	switch len(parts) {
	case 2:
		return "00:" + pad2(parts[0]) + ":" + pad2(parts[1])
	case 3:
		return raw
	default:
		return "00:00:00"
	}
}

func pad2(field string) string {
	if len(field) < 2 {
		return "0" + field
	}
	return field
}
