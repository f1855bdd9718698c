package f1telemetry

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/sirupsen/logrus"

	"github.com/NourAymanZaghloul/f1telemetry/internal/provider"
	"github.com/NourAymanZaghloul/f1telemetry/pkg/trackdata"
)

// SessionLoader is the acquisition collaborator behind the dashboard API.
// *provider.Client implements it; tests substitute their own.
type SessionLoader interface {
	Schedule(ctx context.Context, year int) ([]provider.Event, error)
	LoadSession(ctx context.Context, year int, eventName, sessionName string) (*provider.Session, error)
}

// Dashboard is the telemetry comparison backend: it loads sessions through
// the provider and serves aligned lap comparisons as JSON. Chart rendering
// belongs to the front end.
type Dashboard struct {
	server *http.Server

	config   *Config
	loader   SessionLoader
	registry *SessionRegistry
	circuits trackdata.Catalog
}

func NewDashboard(config *Config, loader SessionLoader, circuits trackdata.Catalog) *Dashboard {
	return &Dashboard{
		config:   config,
		loader:   loader,
		registry: NewSessionRegistry(),
		circuits: circuits,
	}
}

func (d *Dashboard) Listen() error {
	logrus.Infof("Telemetry dashboard listening on port: %d", d.config.HTTPPort)

	d.server = &http.Server{
		Handler: d.Router(),
		Addr:    fmt.Sprintf(":%d", d.config.HTTPPort),
	}

	err := d.server.ListenAndServe()

	if err == http.ErrServerClosed {
		return nil
	}

	return err
}

func (d *Dashboard) Router() http.Handler {
	router := chi.NewRouter()

	router.Get("/api/schedule/{year}", d.schedule)
	router.Post("/api/sessions", d.loadSession)
	router.Get("/api/sessions/{id}/drivers", d.drivers)
	router.Get("/api/sessions/{id}/comparison", d.comparison)

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		logrus.Debugf("Could not find HTTP response for URL: %s", r.URL.String())

		writeJSONError(w, http.StatusNotFound, "not found")
	})

	return router
}

func (d *Dashboard) Close() error {
	logrus.Debugf("Closing dashboard HTTP listener")

	if d.server == nil {
		return nil
	}

	return d.server.Close()
}
