package teams

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bacauscout/scout/go/internal/models"
	"github.com/bacauscout/scout/go/internal/respond"
)

// TeamsApp defines what the service layer needs from the teams application
type TeamsApp interface {
	Aggregate(club string) (*models.TeamSummary, error)
	SearchClubs(q string) []string
}

// Service exposes club aggregates over HTTP
type Service struct {
	app TeamsApp
}

// NewService creates a new teams HTTP service
func NewService(app TeamsApp) *Service {
	return &Service{
		app: app,
	}
}

// Routes mounts the team endpoints on r
func (s *Service) Routes(r chi.Router) {
	r.Get("/teams/search", s.SearchClubs)
	r.Get("/teams/{club}", s.GetTeam)
}

// SearchClubs handles GET /api/teams/search
func (s *Service) SearchClubs(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, s.app.SearchClubs(r.URL.Query().Get("q")))
}

// GetTeam handles GET /api/teams/{club}
func (s *Service) GetTeam(w http.ResponseWriter, r *http.Request) {
	summary, err := s.app.Aggregate(respond.URLParam(r, "club"))
	if err != nil {
		if errors.Is(err, ErrTeamNotFound) {
			respond.Error(w, http.StatusNotFound, "Team not found", nil)
			return
		}
		respond.Error(w, http.StatusInternalServerError, "Failed to aggregate team", err)
		return
	}
	respond.JSON(w, http.StatusOK, summary)
}
