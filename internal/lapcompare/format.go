package lapcompare

import (
	"fmt"
	"time"
)

// FormatLapTime renders a lap time as m:ss.mmm (e.g. "1:23.456"). A nil
// duration, meaning no valid timed lap, renders as "N/A".
func FormatLapTime(d *time.Duration) string {
	if d == nil {
		return "N/A"
	}

	total := d.Seconds()
	minutes := int(total) / 60
	seconds := total - float64(minutes)*60

	return fmt.Sprintf("%d:%06.3f", minutes, seconds)
}

// FormatDelta renders a lap time delta in seconds as a signed string with
// millisecond precision, e.g. "+0.700s".
func FormatDelta(seconds float64) string {
	return fmt.Sprintf("%+.3fs", seconds)
}
