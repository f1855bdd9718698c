package lapcompare

import "errors"

var (
	// ErrEmptyLapData is returned when a lap arrives with no telemetry
	// samples. Callers are expected to reject these before comparison; the
	// engine fails fast rather than producing an empty Comparison.
	ErrEmptyLapData = errors.New("lapcompare: lap has no telemetry samples")

	// ErrMissingLapTime indicates a lap without a valid lap time. It is a
	// soft condition: Compare never returns it, it only surfaces as a nil
	// LapTimeDeltaSeconds. It exists for callers that need a timed lap.
	ErrMissingLapTime = errors.New("lapcompare: lap has no valid lap time")
)
