package wyscout

import (
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"

	"github.com/bacauscout/scout/go/internal/models"
	"github.com/bacauscout/scout/go/internal/respond"
)

const (
	dataCacheControl  = "public, max-age=3600"
	mediaCacheControl = "public, max-age=86400"
)

// WyscoutApp defines what the service layer needs from the wyscout application
type WyscoutApp interface {
	Profile(id string) (*models.WyscoutProfile, error)
	DataFile(rel string) ([]byte, error)
	Reports() ([]models.ClipReport, error)
	ClipFile(player, file string) (*MediaFile, error)
	FrameFile(player, file string) (*MediaFile, error)
}

// Service exposes the Wyscout exports over HTTP
type Service struct {
	app WyscoutApp
}

// NewService creates a new wyscout HTTP service
func NewService(app WyscoutApp) *Service {
	return &Service{
		app: app,
	}
}

type reportsResponse struct {
	Reports []models.ClipReport `json:"reports"`
}

// Routes mounts the wyscout endpoints on r
func (s *Service) Routes(r chi.Router) {
	r.Get("/players/{id}/wyscout", s.GetProfile)
	r.Get("/wyscout-data/*", s.GetDataFile)
	r.Get("/scouting-reports", s.ListReports)
	r.Get("/scouting-reports/clip", s.GetClip)
	r.Get("/scouting-reports/frame", s.GetFrame)
}

// GetProfile handles GET /api/players/{id}/wyscout
func (s *Service) GetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := s.app.Profile(respond.URLParam(r, "id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrDataUnavailable):
			respond.Error(w, http.StatusServiceUnavailable, "Wyscout data not available", nil)
		case errors.Is(err, ErrProfileNotFound):
			respond.Error(w, http.StatusNotFound, "Player not found in Wyscout data", nil)
		default:
			respond.Error(w, http.StatusInternalServerError, "Failed to load Wyscout data", err)
		}
		return
	}
	respond.JSON(w, http.StatusOK, profile)
}

// GetDataFile handles GET /api/wyscout-data/*
func (s *Service) GetDataFile(w http.ResponseWriter, r *http.Request) {
	data, err := s.app.DataFile(respond.URLParam(r, "*"))
	if err != nil {
		respond.Error(w, http.StatusNotFound, "Not found", nil)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", dataCacheControl)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// ListReports handles GET /api/scouting-reports
func (s *Service) ListReports(w http.ResponseWriter, r *http.Request) {
	reports, err := s.app.Reports()
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, "Failed to read reports", err)
		return
	}
	respond.JSON(w, http.StatusOK, reportsResponse{Reports: reports})
}

// GetClip handles GET /api/scouting-reports/clip
func (s *Service) GetClip(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	media, err := s.app.ClipFile(q.Get("player"), q.Get("file"))
	if err != nil {
		s.mediaError(w, err, "File not found")
		return
	}
	w.Header().Set("Content-Disposition", fmt.Sprintf(`inline; filename="%s"`, media.Name))
	serveMedia(w, r, media)
}

// GetFrame handles GET /api/scouting-reports/frame
func (s *Service) GetFrame(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	media, err := s.app.FrameFile(q.Get("player"), q.Get("file"))
	if err != nil {
		s.mediaError(w, err, "Frame not found")
		return
	}
	serveMedia(w, r, media)
}

func (s *Service) mediaError(w http.ResponseWriter, err error, notFound string) {
	if errors.Is(err, ErrMissingParams) {
		respond.Error(w, http.StatusBadRequest, "Missing player or file param", nil)
		return
	}
	respond.Error(w, http.StatusNotFound, notFound, nil)
}

// serveMedia streams the file with range support
func serveMedia(w http.ResponseWriter, r *http.Request, media *MediaFile) {
	f, err := os.Open(media.Path)
	if err != nil {
		respond.Error(w, http.StatusNotFound, "File not found", err)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, "Failed to read file", err)
		return
	}

	w.Header().Set("Content-Type", media.ContentType)
	w.Header().Set("Cache-Control", mediaCacheControl)
	http.ServeContent(w, r, media.Name, info.ModTime(), f)
}
