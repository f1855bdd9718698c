// Package provider acquires session telemetry from an upstream timing-data
// service. It owns transport, caching and fastest-lap selection; the
// comparison engine never sees any of it.
package provider

import (
	"errors"
	"fmt"
	"sort"

	"github.com/NourAymanZaghloul/f1telemetry/internal/lapcompare"
)

// ErrNoLapData is returned when a driver has no lap with telemetry samples
// in the session. Laps without a valid lap time are not an error: the best
// untimed lap is returned and the missing time propagates as unavailable.
var ErrNoLapData = errors.New("provider: no lap telemetry for driver")

// Event is one race weekend in a season schedule.
type Event struct {
	Round   int    `json:"Round"`
	Name    string `json:"Name"`
	Country string `json:"Country"`
	Date    string `json:"Date"`
}

// Session holds the loaded telemetry of one race session, keyed by driver
// code. It is immutable once built by the client.
type Session struct {
	ID          string
	Year        int
	EventName   string
	SessionName string
	Track       string

	Laps map[string][]*lapcompare.Lap
}

// Drivers returns the sorted codes of all drivers with at least one lap.
func (s *Session) Drivers() []string {
	var out []string

	for driver, laps := range s.Laps {
		if len(laps) > 0 {
			out = append(out, driver)
		}
	}

	sort.Strings(out)

	return out
}

// FastestLap picks the driver's lowest valid lap time among laps that carry
// telemetry. When no lap is timed, the first lap with telemetry is returned
// so the comparison can still run without a lap time delta.
func (s *Session) FastestLap(driver string) (*lapcompare.Lap, error) {
	var best *lapcompare.Lap
	var untimed *lapcompare.Lap

	for _, lap := range s.Laps[driver] {
		if len(lap.Samples) == 0 {
			continue
		}

		if lap.LapTime == nil {
			if untimed == nil {
				untimed = lap
			}

			continue
		}

		if best == nil || *lap.LapTime < *best.LapTime {
			best = lap
		}
	}

	if best != nil {
		return best, nil
	}

	if untimed != nil {
		return untimed, nil
	}

	return nil, fmt.Errorf("session %s %d (%s): driver %s: %w", s.EventName, s.Year, s.SessionName, driver, ErrNoLapData)
}
