package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/NourAymanZaghloul/f1telemetry/internal/lapcompare"
)

// Client fetches schedules and session telemetry from the upstream timing
// service. Responses are cached as raw bytes before decoding, so a cache hit
// never touches the network. Timeouts and cancellation belong to the caller
// via ctx; the client applies no retry policy of its own.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      Cache
}

func NewClient(baseURL string, timeout time.Duration, cache Cache) *Client {
	if cache == nil {
		cache = NopCache{}
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		cache:      cache,
	}
}

// Schedule lists the season's race weekends. Pre-season testing events are
// filtered out, since the upstream publishes no telemetry for them.
func (c *Client) Schedule(ctx context.Context, year int) ([]Event, error) {
	data, err := c.fetch(ctx, "/v1/schedule/"+strconv.Itoa(year), nil)

	if err != nil {
		return nil, fmt.Errorf("could not fetch %d schedule: %w", year, err)
	}

	var events []Event

	if err := json.Unmarshal(data, &events); err != nil {
		return nil, fmt.Errorf("could not decode %d schedule: %w", year, err)
	}

	out := make([]Event, 0, len(events))

	for _, event := range events {
		if strings.Contains(event.Name, "Testing") {
			continue
		}

		out = append(out, event)
	}

	return out, nil
}

// LoadSession resolves a session's metadata, then downloads each driver's
// lap telemetry concurrently. Brake values are normalized to the canonical
// 0-100 scale here, at ingestion, using the unit the upstream schema
// declares (falling back to inference when it declares none).
func (c *Client) LoadSession(ctx context.Context, year int, eventName, sessionName string) (*Session, error) {
	query := url.Values{}
	query.Set("year", strconv.Itoa(year))
	query.Set("event", eventName)
	query.Set("session", sessionName)

	data, err := c.fetch(ctx, "/v1/session", query)

	if err != nil {
		return nil, fmt.Errorf("could not load session %s %d (%s): %w", eventName, year, sessionName, err)
	}

	var meta wireSessionMeta

	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("could not decode session %s %d (%s): %w", eventName, year, sessionName, err)
	}

	session := &Session{
		ID:          uuid.New().String(),
		Year:        year,
		EventName:   eventName,
		SessionName: sessionName,
		Track:       meta.Track,
		Laps:        make(map[string][]*lapcompare.Lap),
	}

	brakeUnit := lapcompare.BrakeUnit(meta.BrakeUnit)

	g, ctx := errgroup.WithContext(ctx)

	var mutex sync.Mutex

	for _, driver := range meta.Drivers {
		driver := driver

		g.Go(func() error {
			laps, err := c.driverLaps(ctx, meta.SessionKey, driver, brakeUnit)

			if err != nil {
				return err
			}

			if len(laps) == 0 {
				logrus.Debugf("Driver %s has no laps with telemetry in session: %s", driver, meta.SessionKey)
				return nil
			}

			mutex.Lock()
			session.Laps[driver] = laps
			mutex.Unlock()

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("could not load session %s %d (%s): %w", eventName, year, sessionName, err)
	}

	logrus.Infof("Loaded session %s %d (%s): %d drivers", eventName, year, sessionName, len(session.Laps))

	return session, nil
}

func (c *Client) driverLaps(ctx context.Context, sessionKey, driver string, brakeUnit lapcompare.BrakeUnit) ([]*lapcompare.Lap, error) {
	query := url.Values{}
	query.Set("session_key", sessionKey)
	query.Set("driver", driver)

	data, err := c.fetch(ctx, "/v1/laps", query)

	if err != nil {
		return nil, fmt.Errorf("driver %s: %w", driver, err)
	}

	var wireLaps []wireLap

	if err := json.Unmarshal(data, &wireLaps); err != nil {
		return nil, fmt.Errorf("driver %s: could not decode laps: %w", driver, err)
	}

	var laps []*lapcompare.Lap

	for _, wl := range wireLaps {
		lap := wl.toLap(driver, brakeUnit)

		if len(lap.Samples) == 0 {
			continue
		}

		laps = append(laps, lap)
	}

	return laps, nil
}

func (c *Client) fetch(ctx context.Context, path string, query url.Values) ([]byte, error) {
	cacheKey := path

	if len(query) > 0 {
		cacheKey += "?" + query.Encode()
	}

	if data, ok := c.cache.Get(cacheKey); ok {
		logrus.Debugf("Cache hit for: %s", cacheKey)
		return data, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+cacheKey, nil)

	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected upstream status: %s", resp.Status)
	}

	data, err := ioutil.ReadAll(resp.Body)

	if err != nil {
		return nil, err
	}

	if err := c.cache.Put(cacheKey, data); err != nil {
		logrus.WithError(err).Warnf("Could not cache response for: %s", cacheKey)
	}

	return data, nil
}

type wireSessionMeta struct {
	SessionKey string   `json:"session_key"`
	Track      string   `json:"track"`
	BrakeUnit  string   `json:"brake_unit"`
	Drivers    []string `json:"drivers"`
}

type wireLap struct {
	DriverName string       `json:"driver_name"`
	LapNumber  int          `json:"lap_number"`
	LapTimeMs  int64        `json:"lap_time_ms"`
	Samples    []wireSample `json:"samples"`
}

type wireSample struct {
	Distance    float64  `json:"distance"`
	SessionTime *float64 `json:"session_time"`
	Speed       float64  `json:"speed"`
	Throttle    *float64 `json:"throttle"`
	Brake       *float64 `json:"brake"`
	Gear        *int     `json:"gear"`
	RPM         *float64 `json:"rpm"`
}

func (w wireLap) toLap(driver string, brakeUnit lapcompare.BrakeUnit) *lapcompare.Lap {
	samples := make(lapcompare.Telemetry, len(w.Samples))

	for i, s := range w.Samples {
		samples[i] = lapcompare.TelemetrySample{
			Distance:    s.Distance,
			SessionTime: s.SessionTime,
			Speed:       s.Speed,
			Throttle:    s.Throttle,
			Brake:       s.Brake,
			Gear:        s.Gear,
			RPM:         s.RPM,
		}
	}

	lap := &lapcompare.Lap{
		DriverCode: driver,
		DriverName: w.DriverName,
		LapNumber:  w.LapNumber,
		Samples:    lapcompare.NormalizeBrake(samples, brakeUnit),
	}

	// a zero lap time means the lap was not validly timed
	if w.LapTimeMs > 0 {
		lapTime := time.Duration(w.LapTimeMs) * time.Millisecond
		lap.LapTime = &lapTime
	}

	return lap
}
