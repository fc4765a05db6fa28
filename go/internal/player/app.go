package player

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/bacauscout/scout/go/internal/models"
)

// Catalog defines what the app layer needs from the player corpus
type Catalog interface {
	Search(query string, f Filters) []models.Player
	Suggest(query string, limit int) []models.PlayerSuggestion
	FindDetail(idOrName string) (*models.PlayerDetail, error)
}

// App handles player lookups over the loaded corpus
type App struct {
	catalog Catalog
}

// NewApp creates a new player App
func NewApp(catalog Catalog) *App {
	return &App{
		catalog: catalog,
	}
}

// Search runs a filtered name or profile-URL search
func (a *App) Search(query string, f Filters) []models.Player {
	start := time.Now()
	results := a.catalog.Search(query, f)

	log.Debug().
		Str("query", query).
		Int("results", len(results)).
		Dur("took", time.Since(start)).
		Msg("Player search")
	return results
}

// Suggest returns autocomplete entries for query
func (a *App) Suggest(query string) []models.PlayerSuggestion {
	return a.catalog.Suggest(query, DefaultSuggestLimit)
}

// GetPlayer returns the full profile for an id or a player name
func (a *App) GetPlayer(idOrName string) (*models.PlayerDetail, error) {
	if strings.TrimSpace(idOrName) == "" {
		return nil, ErrMissingPlayerID
	}

	start := time.Now()
	detail, err := a.catalog.FindDetail(idOrName)

	log.Debug().
		Str("id", idOrName).
		Bool("found", err == nil).
		Dur("took", time.Since(start)).
		Msg("Player lookup")
	if err != nil {
		return nil, fmt.Errorf("failed to get player %q: %w", idOrName, err)
	}
	return detail, nil
}
