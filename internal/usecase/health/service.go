package health

import (
	"context"
	"errors"

	"github.com/venturebridge/venturebridge/internal/db"
)

const (
	maxCollectionsListed = 10
	maxErrorLen          = 80
)

// store is the consumer interface for store diagnostics (ISP).
type store interface {
	Ping(ctx context.Context) error
	Name() string
	Collections(ctx context.Context) ([]string, error)
}

// Report is the liveness summary.
type Report struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// Diagnostics mirrors the connectivity probe of the legacy deployment: a
// fixed shape whose fields fill in as far as the probe gets.
type Diagnostics struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name,omitempty"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections,omitempty"`
	Error            string   `json:"error,omitempty"`
}

// Service answers health probes against the configured store.
type Service struct {
	store      store
	configured bool
}

// New creates a health service. configured reports whether a database URL was
// supplied at startup; without one the service runs degraded by design of the
// deployment, not by failure.
func New(s store, configured bool) *Service {
	return &Service{store: s, configured: configured}
}

// Check returns the liveness summary. The process is always "ok"; only the
// database marker varies.
func (s *Service) Check(ctx context.Context) Report {
	r := Report{Status: "ok"}
	switch err := s.store.Ping(ctx); {
	case err == nil:
		r.Database = "connected"
	case errors.Is(err, db.ErrNotConfigured):
		r.Database = "not configured"
	default:
		r.Database = "unavailable"
	}
	return r
}

// Diagnose probes the store step by step and reports how far it got.
func (s *Service) Diagnose(ctx context.Context) Diagnostics {
	d := Diagnostics{
		Backend:     "running",
		Database:    "unknown",
		DatabaseURL: "not set",
	}
	if s.configured {
		d.DatabaseURL = "set"
	}

	if err := s.store.Ping(ctx); err != nil {
		d.Database = "error"
		d.ConnectionStatus = "failed"
		d.Error = truncate(err.Error(), maxErrorLen)
		return d
	}

	d.Database = "connected"
	d.ConnectionStatus = "ok"
	d.DatabaseName = s.store.Name()

	cols, err := s.store.Collections(ctx)
	if err != nil {
		d.Error = truncate(err.Error(), maxErrorLen)
		return d
	}
	if len(cols) > maxCollectionsListed {
		cols = cols[:maxCollectionsListed]
	}
	d.Collections = cols
	return d
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
