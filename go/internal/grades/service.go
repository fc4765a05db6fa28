package grades

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bacauscout/scout/go/internal/models"
	"github.com/bacauscout/scout/go/internal/respond"
)

// GradesApp defines what the service layer needs from the grades application
type GradesApp interface {
	ListGrades(ctx context.Context) ([]models.Grade, error)
	GetGrade(ctx context.Context, playerID string) (*models.Grade, error)
	SaveGrade(ctx context.Context, playerID string, req SaveGradeRequest) (*models.Grade, error)
	DeleteGrade(ctx context.Context, playerID string) error
}

// Service exposes scouting reports over HTTP
type Service struct {
	app GradesApp
}

// NewService creates a new grades HTTP service
func NewService(app GradesApp) *Service {
	return &Service{
		app: app,
	}
}

// Routes mounts the grade endpoints on r
func (s *Service) Routes(r chi.Router) {
	r.Get("/grades", s.ListGrades)
	r.Get("/grades/{playerId}", s.GetGrade)
	r.Post("/grades/{playerId}", s.SaveGrade)
	r.Put("/grades/{playerId}", s.SaveGrade)
	r.Delete("/grades/{playerId}", s.DeleteGrade)
}

// ListGrades handles GET /api/grades
func (s *Service) ListGrades(w http.ResponseWriter, r *http.Request) {
	grades, err := s.app.ListGrades(r.Context())
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, "Failed to fetch grades", err)
		return
	}
	respond.JSON(w, http.StatusOK, grades)
}

// GetGrade handles GET /api/grades/{playerId}; an ungraded player yields null
func (s *Service) GetGrade(w http.ResponseWriter, r *http.Request) {
	g, err := s.app.GetGrade(r.Context(), chi.URLParam(r, "playerId"))
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, "Failed to fetch grade", err)
		return
	}
	respond.JSON(w, http.StatusOK, g)
}

type saveResponse struct {
	Success bool          `json:"success"`
	Grade   *models.Grade `json:"grade"`
}

// SaveGrade handles POST /api/grades/{playerId}
func (s *Service) SaveGrade(w http.ResponseWriter, r *http.Request) {
	var req SaveGradeRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	g, err := s.app.SaveGrade(r.Context(), chi.URLParam(r, "playerId"), req)
	if err != nil {
		if errors.Is(err, ErrInvalidGrade) {
			respond.Error(w, http.StatusBadRequest, err.Error(), nil)
			return
		}
		respond.Error(w, http.StatusInternalServerError, "Failed to save grade", err)
		return
	}
	respond.JSON(w, http.StatusOK, saveResponse{Success: true, Grade: g})
}

// DeleteGrade handles DELETE /api/grades/{playerId}
func (s *Service) DeleteGrade(w http.ResponseWriter, r *http.Request) {
	err := s.app.DeleteGrade(r.Context(), chi.URLParam(r, "playerId"))
	if err != nil {
		if errors.Is(err, ErrGradeNotFound) {
			respond.Error(w, http.StatusNotFound, "Grade not found", nil)
			return
		}
		respond.Error(w, http.StatusInternalServerError, "Failed to delete grade", err)
		return
	}
	respond.JSON(w, http.StatusOK, map[string]bool{"success": true})
}
