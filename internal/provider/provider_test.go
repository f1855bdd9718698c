package provider

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/NourAymanZaghloul/f1telemetry/internal/lapcompare"
)

func timedLap(driver string, lapTime time.Duration, lapNumber int) *lapcompare.Lap {
	return &lapcompare.Lap{
		DriverCode: driver,
		LapNumber:  lapNumber,
		LapTime:    &lapTime,
		Samples: lapcompare.Telemetry{
			{Distance: 0, Speed: 200},
			{Distance: 100, Speed: 220},
		},
	}
}

func TestSessionFastestLap(t *testing.T) {
	session := &Session{
		Year:        2024,
		EventName:   "Italian Grand Prix",
		SessionName: "Qualifying",
		Laps: map[string][]*lapcompare.Lap{
			"VER": {
				timedLap("VER", 81*time.Second, 3),
				timedLap("VER", 79*time.Second+500*time.Millisecond, 14),
				timedLap("VER", 80*time.Second, 17),
			},
		},
	}

	lap, err := session.FastestLap("VER")

	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if lap.LapNumber != 14 {
		t.Errorf("expected lap 14 to be fastest, got lap %d", lap.LapNumber)
	}
}

func TestSessionFastestLapIgnoresEmptyTelemetry(t *testing.T) {
	fast := 70 * time.Second

	session := &Session{
		Laps: map[string][]*lapcompare.Lap{
			"HAM": {
				{DriverCode: "HAM", LapNumber: 2, LapTime: &fast},
				timedLap("HAM", 75*time.Second, 9),
			},
		},
	}

	lap, err := session.FastestLap("HAM")

	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if lap.LapNumber != 9 {
		t.Errorf("expected the fastest lap with telemetry, got lap %d", lap.LapNumber)
	}
}

func TestSessionFastestLapFallsBackToUntimed(t *testing.T) {
	session := &Session{
		Laps: map[string][]*lapcompare.Lap{
			"LEC": {
				{
					DriverCode: "LEC",
					LapNumber:  5,
					Samples:    lapcompare.Telemetry{{Distance: 0, Speed: 180}},
				},
			},
		},
	}

	lap, err := session.FastestLap("LEC")

	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if lap.LapTime != nil {
		t.Error("expected the untimed lap's time to stay absent")
	}
}

func TestSessionFastestLapNoData(t *testing.T) {
	session := &Session{
		Year:        2024,
		EventName:   "Monaco Grand Prix",
		SessionName: "Race",
		Laps:        map[string][]*lapcompare.Lap{},
	}

	_, err := session.FastestLap("SAI")

	if !errors.Is(err, ErrNoLapData) {
		t.Fatalf("expected ErrNoLapData, got: %v", err)
	}

	if !strings.Contains(err.Error(), "SAI") || !strings.Contains(err.Error(), "Monaco Grand Prix") {
		t.Errorf("expected driver and session context in the error, got: %s", err)
	}
}

func TestSessionDriversSorted(t *testing.T) {
	session := &Session{
		Laps: map[string][]*lapcompare.Lap{
			"VER": {timedLap("VER", 80*time.Second, 1)},
			"ALO": {timedLap("ALO", 81*time.Second, 1)},
			"HAM": {timedLap("HAM", 82*time.Second, 1)},
			"ZHO": {},
		},
	}

	drivers := session.Drivers()

	expected := []string{"ALO", "HAM", "VER"}

	if len(drivers) != len(expected) {
		t.Fatalf("expected %d drivers, got %d", len(expected), len(drivers))
	}

	for i := range expected {
		if drivers[i] != expected[i] {
			t.Errorf("position %d: expected %s, got: %s", i, expected[i], drivers[i])
		}
	}
}
