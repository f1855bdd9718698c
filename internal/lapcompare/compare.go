package lapcompare

import (
	"fmt"
	"math"
)

// Comparison is the aligned view of two laps. SpeedA/SpeedB always have the
// same length as DistanceGrid. DeltaTime is nil unless both laps carry a
// full session time channel; LapTimeDeltaSeconds is nil unless both laps
// have a valid lap time.
type Comparison struct {
	DriverA string `json:"DriverA"`
	DriverB string `json:"DriverB"`

	DistanceGrid []float64 `json:"DistanceGrid"`
	SpeedA       []float64 `json:"SpeedA"`
	SpeedB       []float64 `json:"SpeedB"`

	// DeltaTime[i] is driver A's cumulative session time minus driver B's at
	// DistanceGrid[i]. Positive means A is behind at that point.
	DeltaTime []float64 `json:"DeltaTime,omitempty"`

	LapTimeDeltaSeconds *float64 `json:"LapTimeDeltaSeconds,omitempty"`

	// NoOverlap flags the degenerate grid fallback described on Align.
	NoOverlap bool `json:"NoOverlap,omitempty"`
}

// Compare aligns two laps onto a shared distance grid and derives the speed
// overlay, the delta-time curve and the scalar lap time delta. It is a pure
// function of its inputs: neither lap is mutated, optional channels that are
// missing simply leave the corresponding output absent.
func Compare(lapA, lapB *Lap, points int) (*Comparison, error) {
	if len(lapA.Samples) == 0 {
		return nil, fmt.Errorf("driver %s: %w", lapA.DriverCode, ErrEmptyLapData)
	}

	if len(lapB.Samples) == 0 {
		return nil, fmt.Errorf("driver %s: %w", lapB.DriverCode, ErrEmptyLapData)
	}

	grid := Align(lapA.Samples, lapB.Samples, points)

	dMin := math.Max(lapA.Samples.MinDistance(), lapB.Samples.MinDistance())
	dMax := math.Min(lapA.Samples.MaxDistance(), lapB.Samples.MaxDistance())

	comparison := &Comparison{
		DriverA:      lapA.DriverCode,
		DriverB:      lapB.DriverCode,
		DistanceGrid: grid,
		SpeedA:       Interpolate(grid, lapA.Samples.Distances(), lapA.Samples.Speeds()),
		SpeedB:       Interpolate(grid, lapB.Samples.Distances(), lapB.Samples.Speeds()),
		NoOverlap:    dMax <= dMin,
	}

	timesA := lapA.Samples.SessionTimes()
	timesB := lapB.Samples.SessionTimes()

	if timesA != nil && timesB != nil {
		alignedA := Interpolate(grid, lapA.Samples.Distances(), timesA)
		alignedB := Interpolate(grid, lapB.Samples.Distances(), timesB)

		delta := make([]float64, len(grid))

		for i := range delta {
			delta[i] = alignedA[i] - alignedB[i]
		}

		comparison.DeltaTime = delta
	}

	if lapA.LapTime != nil && lapB.LapTime != nil {
		seconds := lapA.LapTime.Seconds() - lapB.LapTime.Seconds()
		comparison.LapTimeDeltaSeconds = &seconds
	}

	return comparison, nil
}
