package users

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bacauscout/scout/go/internal/models"
	"github.com/bacauscout/scout/go/internal/respond"
)

// RoleHeader carries the caller's role, set by the session proxy in front of
// the API
const RoleHeader = "X-Scout-Role"

// UsersApp defines what the service layer needs from the users application
type UsersApp interface {
	CreateInvite(ctx context.Context, req CreateInviteRequest) (*CreateInviteResponse, error)
	ListInvites(ctx context.Context) ([]models.Invite, error)
	ValidateInvite(ctx context.Context, token string) (*InviteValidation, error)
	Register(ctx context.Context, req RegisterRequest) (*models.Scout, error)
}

// Service exposes invite and registration endpoints
type Service struct {
	app UsersApp
}

// NewService creates a new users HTTP service
func NewService(app UsersApp) *Service {
	return &Service{
		app: app,
	}
}

func (s *Service) Routes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(RequireAdmin)
		r.Get("/admin/invites", s.ListInvites)
		r.Post("/admin/invites", s.CreateInvite)
	})
	r.Get("/auth/validate-invite", s.ValidateInvite)
	r.Post("/auth/register", s.Register)
}

// RequireAdmin rejects requests whose role header is not admin
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if models.ScoutRole(r.Header.Get(RoleHeader)) != models.ScoutRoleAdmin {
			respond.Error(w, http.StatusForbidden, "Unauthorized", nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Service) ListInvites(w http.ResponseWriter, r *http.Request) {
	invites, err := s.app.ListInvites(r.Context())
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, "Failed to fetch invites", err)
		return
	}
	respond.JSON(w, http.StatusOK, invites)
}

func (s *Service) CreateInvite(w http.ResponseWriter, r *http.Request) {
	var req CreateInviteRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	resp, err := s.app.CreateInvite(r.Context(), req)
	if err != nil {
		s.writeError(w, err, "Failed to create invite")
		return
	}
	respond.JSON(w, http.StatusOK, resp)
}

func (s *Service) ValidateInvite(w http.ResponseWriter, r *http.Request) {
	v, err := s.app.ValidateInvite(r.Context(), r.URL.Query().Get("token"))
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, "Failed to validate invite", err)
		return
	}
	respond.JSON(w, http.StatusOK, v)
}

func (s *Service) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if _, err := s.app.Register(r.Context(), req); err != nil {
		s.writeError(w, err, "Registration failed")
		return
	}
	respond.JSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (s *Service) writeError(w http.ResponseWriter, err error, fallback string) {
	if IsClientError(err) {
		respond.Error(w, http.StatusBadRequest, err.Error(), nil)
		return
	}
	respond.Error(w, http.StatusInternalServerError, fallback, err)
}
