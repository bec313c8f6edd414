package analyzer

import (
	"strings"
	"testing"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name    string
		seconds float64
		want    string
	}{
		{"sub-second", 0.5, "< 1 second"},
		{"seconds", 59.9, "59.9 seconds"},
		{"minutes boundary", 3599, "60.0 minutes"},
		{"minutes", 500, "8.3 minutes"},
		{"hours boundary", 86399, "24.0 hours"},
		{"days", 3 * 86400, "3.0 days"},
		{"weeks", 10 * 86400, "1.4 weeks"},
		{"weeks upper range", 200 * 86400, "28.6 weeks"},
		{"years", 2.5 * 31536000, "2.5 years"},
		{"thousand years", 1500 * 31536000, "1.5 thousand years"},
		{"million years", 2.5e6 * 31536000, "2.5 million years"},
		{"billion years", 3e9 * 31536000, "3.0 billion years"},
		{"trillion years", 4e12 * 31536000, "4.0 trillion years"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDuration(tt.seconds); got != tt.want {
				t.Errorf("FormatDuration(%v) = %q, want %q", tt.seconds, got, tt.want)
			}
		})
	}
}

func TestFormatDuration_UnitBoundaries(t *testing.T) {
	cases := []struct {
		seconds float64
		suffix  string
	}{
		{59.9, "seconds"},
		{3599, "minutes"},
		{86399, "hours"},
		{31536000 * 1001, "thousand years"},
	}

	for _, c := range cases {
		got := FormatDuration(c.seconds)
		if !strings.HasSuffix(got, c.suffix) {
			t.Errorf("FormatDuration(%v) = %q, want suffix %q", c.seconds, got, c.suffix)
		}
	}
}
