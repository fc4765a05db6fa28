package player

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bacauscout/scout/go/internal/models"
	"github.com/bacauscout/scout/go/internal/respond"
)

// PlayerApp defines what the service layer needs from the player application
type PlayerApp interface {
	Search(query string, f Filters) []models.Player
	Suggest(query string) []models.PlayerSuggestion
	GetPlayer(idOrName string) (*models.PlayerDetail, error)
}

// Service exposes the player catalog over HTTP
type Service struct {
	app PlayerApp
}

// NewService creates a new player HTTP service
func NewService(app PlayerApp) *Service {
	return &Service{
		app: app,
	}
}

// Routes mounts the player endpoints on r
func (s *Service) Routes(r chi.Router) {
	r.Get("/search", s.Search)
	r.Get("/players/search", s.Suggest)
	r.Get("/player/{id}", s.GetPlayer)
}

// Search handles GET /api/search
func (s *Service) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	respond.JSON(w, http.StatusOK, s.app.Search(q.Get("q"), ParseFilters(q)))
}

// Suggest handles GET /api/players/search
func (s *Service) Suggest(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, s.app.Suggest(r.URL.Query().Get("q")))
}

// GetPlayer handles GET /api/player/{id}
func (s *Service) GetPlayer(w http.ResponseWriter, r *http.Request) {
	detail, err := s.app.GetPlayer(respond.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, ErrMissingPlayerID) {
			respond.Error(w, http.StatusBadRequest, "Player ID is required", nil)
			return
		}
		if errors.Is(err, ErrPlayerNotFound) {
			respond.Error(w, http.StatusNotFound, "Player not found", nil)
			return
		}
		respond.Error(w, http.StatusInternalServerError, "Failed to load player", err)
		return
	}
	respond.JSON(w, http.StatusOK, detail)
}
