package attachments

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/bacauscout/scout/go/internal/models"
	"github.com/bacauscout/scout/go/internal/respond"
)

type AttachmentsApp interface {
	MaxSize() int64
	Upload(ctx context.Context, req UploadRequest) (*models.Attachment, error)
	List(ctx context.Context, reportID uuid.UUID) ([]models.Attachment, error)
	Delete(ctx context.Context, reportID, id uuid.UUID) error
}

type Service struct {
	app AttachmentsApp
}

func NewService(app AttachmentsApp) *Service {
	return &Service{
		app: app,
	}
}

func (s *Service) Routes(r chi.Router) {
	r.Post("/upload", s.Upload)
	r.Get("/attachments/{reportId}", s.List)
	r.Delete("/attachments/{reportId}", s.Delete)
}

// multipart overhead allowed on top of the file itself
const formOverhead = 1 << 20

// Upload handles POST /api/upload (multipart: file, reportId, label)
func (s *Service) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.app.MaxSize()+formOverhead)
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respond.Error(w, http.StatusBadRequest, "File too large", nil)
			return
		}
		respond.Error(w, http.StatusBadRequest, "File and reportId are required", nil)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "File and reportId are required", nil)
		return
	}
	defer file.Close()

	att, err := s.app.Upload(r.Context(), UploadRequest{
		ReportID:    r.FormValue("reportId"),
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Label:       r.FormValue("label"),
		Body:        file,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidUpload):
			respond.Error(w, http.StatusBadRequest, validationMessage(err), nil)
		case errors.Is(err, ErrReportNotFound):
			respond.Error(w, http.StatusNotFound, "Report not found", nil)
		default:
			respond.Error(w, http.StatusInternalServerError, "Failed to upload file to storage", err)
		}
		return
	}
	respond.JSON(w, http.StatusCreated, att)
}

// List handles GET /api/attachments/{reportId}
func (s *Service) List(w http.ResponseWriter, r *http.Request) {
	reportID, err := uuid.Parse(chi.URLParam(r, "reportId"))
	if err != nil {
		respond.JSON(w, http.StatusOK, []models.Attachment{})
		return
	}

	list, err := s.app.List(r.Context(), reportID)
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, "Internal server error", err)
		return
	}
	respond.JSON(w, http.StatusOK, list)
}

// Delete handles DELETE /api/attachments/{reportId}?id=
func (s *Service) Delete(w http.ResponseWriter, r *http.Request) {
	rawID := r.URL.Query().Get("id")
	if rawID == "" {
		respond.Error(w, http.StatusBadRequest, "Attachment id is required", nil)
		return
	}

	reportID, err1 := uuid.Parse(chi.URLParam(r, "reportId"))
	id, err2 := uuid.Parse(rawID)
	if err1 != nil || err2 != nil {
		respond.Error(w, http.StatusNotFound, "Attachment not found", nil)
		return
	}

	if err := s.app.Delete(r.Context(), reportID, id); err != nil {
		if errors.Is(err, ErrAttachmentNotFound) {
			respond.Error(w, http.StatusNotFound, "Attachment not found", nil)
			return
		}
		respond.Error(w, http.StatusInternalServerError, "Internal server error", err)
		return
	}
	respond.JSON(w, http.StatusOK, map[string]bool{"success": true})
}

// validationMessage strips the sentinel prefix from a validation error
func validationMessage(err error) string {
	return strings.TrimPrefix(err.Error(), ErrInvalidUpload.Error()+": ")
}
