package transcript

import "testing"

func TestClock(t *testing.T) {
	tests := []struct {
		name    string
		seconds float64
		want    string
	}{
		{
			name:    "zero",
			seconds: 0,
			want:    "00:00:00",
		},
		{
			name:    "floors fractional seconds",
			seconds: 59.94,
			want:    "00:00:59",
		},
		{
			name:    "minutes roll over",
			seconds: 65,
			want:    "00:01:05",
		},
		{
			name:    "hours minutes and seconds",
			seconds: 3725,
			want:    "01:02:05",
		},
		{
			name:    "exact hour",
			seconds: 3600,
			want:    "01:00:00",
		},
		{
			name:    "hours overflow two digits",
			seconds: 360000,
			want:    "100:00:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clock(tt.seconds); got != tt.want {
				t.Errorf("Clock(%v) = %q, want %q", tt.seconds, got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "two fields gain a zero hour",
			raw:  "5:30",
			want: "00:05:30",
		},
		{
			name: "two padded fields",
			raw:  "05:30",
			want: "00:05:30",
		},
		{
			name: "three fields pass through",
			raw:  "1:05:30",
			want: "1:05:30",
		},
		{
			name: "surrounding whitespace trimmed",
			raw:  "  00:02:15\n",
			want: "00:02:15",
		},
		{
			name: "empty",
			raw:  "",
			want: "00:00:00",
		},
		{
			name: "single field",
			raw:  "garbage",
			want: "00:00:00",
		},
		{
			name: "too many fields",
			raw:  "1:2:3:4",
			want: "00:00:00",
		},
		{
			name: "out of range fields kept",
			raw:  "99:99:99",
			want: "99:99:99",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.raw); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
