// Package lapcompare aligns two drivers' lap telemetry onto a shared
// distance axis and derives comparison metrics from it. It performs no I/O;
// telemetry acquisition is the provider's job.
package lapcompare

import "time"

// TelemetrySample is a single spatially-located measurement within a lap.
// Channels which the upstream timing service may or may not supply are
// pointer fields; a nil value means the channel was absent for this lap.
type TelemetrySample struct {
	Distance    float64  `json:"Distance"`
	SessionTime *float64 `json:"SessionTime,omitempty"`
	Speed       float64  `json:"Speed"`
	Throttle    *float64 `json:"Throttle,omitempty"`
	Brake       *float64 `json:"Brake,omitempty"`
	Gear        *int     `json:"Gear,omitempty"`
	RPM         *float64 `json:"RPM,omitempty"`
}

// Telemetry is a lap's ordered sample sequence. Distance is non-decreasing;
// duplicate distances are permitted.
type Telemetry []TelemetrySample

func (t Telemetry) Distances() []float64 {
	out := make([]float64, len(t))

	for i, sample := range t {
		out[i] = sample.Distance
	}

	return out
}

func (t Telemetry) Speeds() []float64 {
	out := make([]float64, len(t))

	for i, sample := range t {
		out[i] = sample.Speed
	}

	return out
}

// HasSessionTime reports whether every sample in the sequence carries a
// session time. Delta-time curves need the full channel on both laps.
func (t Telemetry) HasSessionTime() bool {
	if len(t) == 0 {
		return false
	}

	for _, sample := range t {
		if sample.SessionTime == nil {
			return false
		}
	}

	return true
}

// SessionTimes returns the session time channel, or nil if any sample is
// missing one.
func (t Telemetry) SessionTimes() []float64 {
	if !t.HasSessionTime() {
		return nil
	}

	out := make([]float64, len(t))

	for i, sample := range t {
		out[i] = *sample.SessionTime
	}

	return out
}

func (t Telemetry) MinDistance() float64 {
	return t[0].Distance
}

func (t Telemetry) MaxDistance() float64 {
	return t[len(t)-1].Distance
}

// Lap is one driver's completed circuit: its telemetry trace plus metadata.
// LapTime is nil when the driver set no valid timed lap.
type Lap struct {
	DriverCode string         `json:"DriverCode"`
	DriverName string         `json:"DriverName,omitempty"`
	LapNumber  int            `json:"LapNumber,omitempty"`
	LapTime    *time.Duration `json:"LapTime,omitempty"`
	Samples    Telemetry      `json:"Samples"`
}
