package lapcompare

import (
	"testing"
	"time"
)

func TestFormatLapTime(t *testing.T) {
	formatLapTimeTests := []struct {
		name     string
		lapTime  *time.Duration
		expected string
	}{
		{name: "no valid lap", lapTime: nil, expected: "N/A"},
		{name: "typical lap", lapTime: durationPtr(83456 * time.Millisecond), expected: "1:23.456"},
		{name: "seconds are zero padded", lapTime: durationPtr(64050 * time.Millisecond), expected: "1:04.050"},
		{name: "sub minute lap", lapTime: durationPtr(59900 * time.Millisecond), expected: "0:59.900"},
		{name: "long lap", lapTime: durationPtr(125*time.Second + 1*time.Millisecond), expected: "2:05.001"},
	}

	for _, test := range formatLapTimeTests {
		t.Run(test.name, func(t *testing.T) {
			if got := FormatLapTime(test.lapTime); got != test.expected {
				t.Errorf("expected %q, got: %q", test.expected, got)
			}
		})
	}
}

func TestFormatDelta(t *testing.T) {
	if got := FormatDelta(0.7); got != "+0.700s" {
		t.Errorf("expected +0.700s, got: %q", got)
	}

	if got := FormatDelta(-1.25); got != "-1.250s" {
		t.Errorf("expected -1.250s, got: %q", got)
	}
}
