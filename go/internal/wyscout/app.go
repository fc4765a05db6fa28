package wyscout

import (
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/bacauscout/scout/go/internal/models"
)

// MetricsSource looks up metric sheets by player id
type MetricsSource interface {
	Lookup(id string) (*models.WyscoutProfile, bool)
}

// Config locates the exported files served next to the metrics
type Config struct {
	// DataDir holds the JSON exports served under /wyscout-data
	DataDir string
	// ClipsDir holds one folder per player with clips, frames and a report
	ClipsDir string
}

// App serves the Wyscout exports. A nil metrics source means no export was
// loaded.
type App struct {
	metrics MetricsSource
	cfg     Config
}

// NewApp creates a new wyscout App
func NewApp(metrics MetricsSource, cfg Config) *App {
	return &App{
		metrics: metrics,
		cfg:     cfg,
	}
}

// Profile returns the metric sheet of a player
func (a *App) Profile(id string) (*models.WyscoutProfile, error) {
	if a.metrics == nil {
		return nil, ErrDataUnavailable
	}

	p, ok := a.metrics.Lookup(strings.TrimSpace(id))
	if !ok {
		log.Debug().Str("id", id).Msg("No wyscout profile")
		return nil, ErrProfileNotFound
	}
	return p, nil
}
