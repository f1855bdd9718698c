package f1telemetry

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/sirupsen/logrus"

	"github.com/NourAymanZaghloul/f1telemetry/internal/lapcompare"
	"github.com/NourAymanZaghloul/f1telemetry/internal/provider"
	"github.com/NourAymanZaghloul/f1telemetry/pkg/trackdata"
)

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

type jsonError struct {
	Error string `json:"Error"`
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, jsonError{Error: message})
}

// schedule serves the season's event list.
func (d *Dashboard) schedule(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))

	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "year must be a number")
		return
	}

	events, err := d.loader.Schedule(r.Context(), year)

	if err != nil {
		logrus.WithError(err).Errorf("Could not fetch schedule for %d", year)
		writeJSONError(w, http.StatusBadGateway, err.Error())
		return
	}

	if len(events) == 0 {
		writeJSONError(w, http.StatusNotFound, "no events found for this season")
		return
	}

	writeJSON(w, http.StatusOK, events)
}

type loadSessionRequest struct {
	Year    int    `json:"Year"`
	Event   string `json:"Event"`
	Session string `json:"Session"`
}

type loadSessionResponse struct {
	SessionID string             `json:"SessionID"`
	Drivers   []string           `json:"Drivers"`
	Track     string             `json:"Track"`
	Circuit   *trackdata.Circuit `json:"Circuit,omitempty"`
}

// loadSession downloads a session through the provider and registers it for
// later comparison requests. Slow: the upstream can take minutes on a cold
// cache, so the request context governs cancellation.
func (d *Dashboard) loadSession(w http.ResponseWriter, r *http.Request) {
	var request loadSessionRequest

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if request.Year == 0 || request.Event == "" || request.Session == "" {
		writeJSONError(w, http.StatusBadRequest, "year, event and session are required")
		return
	}

	session, err := d.loader.LoadSession(r.Context(), request.Year, request.Event, request.Session)

	if err != nil {
		logrus.WithError(err).Errorf("Could not load session %s %d (%s)", request.Event, request.Year, request.Session)
		writeJSONError(w, http.StatusBadGateway, err.Error())
		return
	}

	response := loadSessionResponse{
		SessionID: d.registry.Add(session),
		Drivers:   session.Drivers(),
		Track:     session.Track,
	}

	if circuit, ok := d.circuits.Lookup(session.Track); ok {
		response.Circuit = &circuit

		d.checkLapDistances(session, circuit)
	}

	writeJSON(w, http.StatusOK, response)
}

// checkLapDistances flags telemetry whose distance axis runs well past the
// circuit's official lap length, which usually means a mislabelled track or
// a unit problem upstream.
func (d *Dashboard) checkLapDistances(session *provider.Session, circuit trackdata.Circuit) {
	if circuit.LengthMeters <= 0 {
		return
	}

	limit := circuit.LengthMeters * 1.05

	for driver, laps := range session.Laps {
		for _, lap := range laps {
			if lap.Samples.MaxDistance() > limit {
				logrus.Warnf("Driver %s lap %d runs to %.0fm on a %.0fm circuit (%s)",
					driver, lap.LapNumber, lap.Samples.MaxDistance(), circuit.LengthMeters, circuit.Name)
			}
		}
	}
}

func (d *Dashboard) drivers(w http.ResponseWriter, r *http.Request) {
	session, ok := d.registry.Get(chi.URLParam(r, "id"))

	if !ok {
		writeJSONError(w, http.StatusNotFound, "unknown session")
		return
	}

	writeJSON(w, http.StatusOK, session.Drivers())
}

type comparisonResponse struct {
	SessionID string             `json:"SessionID"`
	Circuit   *trackdata.Circuit `json:"Circuit,omitempty"`

	Comparison *lapcompare.Comparison `json:"Comparison"`

	// LapA and LapB carry the raw telemetry sequences for the plots that do
	// not use the aligned grid (throttle, brake, gear).
	LapA *lapcompare.Lap `json:"LapA"`
	LapB *lapcompare.Lap `json:"LapB"`

	LapTimeA     string `json:"LapTimeA"`
	LapTimeB     string `json:"LapTimeB"`
	LapTimeDelta string `json:"LapTimeDelta"`
}

// comparison aligns the two drivers' fastest laps and serves the derived
// overlay, delta curve and KPI strings.
func (d *Dashboard) comparison(w http.ResponseWriter, r *http.Request) {
	session, ok := d.registry.Get(chi.URLParam(r, "id"))

	if !ok {
		writeJSONError(w, http.StatusNotFound, "unknown session")
		return
	}

	driverA := r.URL.Query().Get("driverA")
	driverB := r.URL.Query().Get("driverB")

	if driverA == "" || driverB == "" || driverA == driverB {
		writeJSONError(w, http.StatusBadRequest, "two distinct drivers are required")
		return
	}

	lapA, err := session.FastestLap(driverA)

	if err != nil {
		d.writeLapError(w, err)
		return
	}

	lapB, err := session.FastestLap(driverB)

	if err != nil {
		d.writeLapError(w, err)
		return
	}

	comparison, err := lapcompare.Compare(lapA, lapB, d.config.GridPoints)

	if err != nil {
		logrus.WithError(err).Errorf("Could not compare %s and %s", driverA, driverB)
		writeJSONError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	if comparison.NoOverlap {
		logrus.Warnf("Laps for %s and %s share no distance range; comparison axis is degenerate", driverA, driverB)
	}

	response := comparisonResponse{
		SessionID:    session.ID,
		Comparison:   comparison,
		LapA:         lapA,
		LapB:         lapB,
		LapTimeA:     lapcompare.FormatLapTime(lapA.LapTime),
		LapTimeB:     lapcompare.FormatLapTime(lapB.LapTime),
		LapTimeDelta: "N/A",
	}

	if comparison.LapTimeDeltaSeconds != nil {
		response.LapTimeDelta = lapcompare.FormatDelta(*comparison.LapTimeDeltaSeconds)
	}

	if circuit, ok := d.circuits.Lookup(session.Track); ok {
		response.Circuit = &circuit
	}

	writeJSON(w, http.StatusOK, response)
}

func (d *Dashboard) writeLapError(w http.ResponseWriter, err error) {
	if errors.Is(err, provider.ErrNoLapData) {
		writeJSONError(w, http.StatusNotFound, err.Error())
		return
	}

	writeJSONError(w, http.StatusInternalServerError, err.Error())
}
