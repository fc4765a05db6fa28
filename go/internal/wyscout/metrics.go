package wyscout

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/bacauscout/scout/go/internal/models"
)

// MetricsStore holds the Wyscout metric sheets keyed by Transfermarkt id.
// It is read once at startup and never modified.
type MetricsStore struct {
	profiles map[string]*models.WyscoutProfile
}

type rawProfile struct {
	Metrics         map[string]json.RawMessage `json:"metrics"`
	Position        string                     `json:"position"`
	WyscoutPosition string                     `json:"wyscoutPosition"`
}

// LoadMetrics reads the metrics export at path. A missing file yields
// ErrDataUnavailable.
func LoadMetrics(path string) (*MetricsStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDataUnavailable, path)
		}
		return nil, fmt.Errorf("failed to read wyscout metrics %s: %w", path, err)
	}

	store, err := NewMetricsFromJSON(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load wyscout metrics %s: %w", path, err)
	}

	log.Info().
		Str("path", path).
		Int("profiles", store.Len()).
		Msg("Loaded wyscout metrics")
	return store, nil
}

// NewMetricsFromJSON builds a MetricsStore from a JSON object of profiles
// keyed by player id. Numeric metric values keep their textual form.
func NewMetricsFromJSON(data []byte) (*MetricsStore, error) {
	var raw map[string]rawProfile
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("wyscout metrics is not a JSON object: %w", err)
	}

	s := &MetricsStore{profiles: make(map[string]*models.WyscoutProfile, len(raw))}
	for id, r := range raw {
		s.profiles[id] = &models.WyscoutProfile{
			Metrics:         metricValues(r.Metrics),
			Position:        r.Position,
			WyscoutPosition: r.WyscoutPosition,
		}
	}
	return s, nil
}

// Lookup returns the profile stored under id
func (s *MetricsStore) Lookup(id string) (*models.WyscoutProfile, bool) {
	p, ok := s.profiles[id]
	return p, ok
}

func (s *MetricsStore) Len() int {
	return len(s.profiles)
}

func metricValues(raw map[string]json.RawMessage) map[string]string {
	out := make(map[string]string, len(raw))
	for key, v := range raw {
		v = bytes.TrimSpace(v)
		if len(v) == 0 || bytes.Equal(v, []byte("null")) {
			continue
		}
		if v[0] == '"' {
			var s string
			if err := json.Unmarshal(v, &s); err == nil {
				out[key] = s
			}
			continue
		}
		out[key] = string(v)
	}
	return out
}
