package attachments

import (
	"context"
	"fmt"
	"io"
	"path"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/bacauscout/scout/go/internal/feed"
	"github.com/bacauscout/scout/go/internal/models"
)

type AttachmentsRepository interface {
	CreateAttachment(ctx context.Context, a *models.Attachment) (*models.Attachment, error)
	ListAttachments(ctx context.Context, reportID uuid.UUID) ([]models.Attachment, error)
	DeleteAttachment(ctx context.Context, reportID, id uuid.UUID) (*models.Attachment, error)
}

// ReportChecker confirms a scouting report exists before files are linked to it
type ReportChecker interface {
	ReportExists(ctx context.Context, id uuid.UUID) (bool, error)
}

// ObjectStore is the blob storage attachments are written to
type ObjectStore interface {
	Upload(ctx context.Context, bucket, key, contentType string, body io.Reader) error
	PublicURL(bucket, key string) string
	ObjectKey(bucket, publicURL string) (string, bool)
	Remove(ctx context.Context, bucket string, keys ...string) error
}

type App struct {
	repo      AttachmentsRepository
	reports   ReportChecker
	store     ObjectStore
	publisher feed.Publisher
	clock     clockwork.Clock
	cfg       Config
}

func NewApp(repo AttachmentsRepository, reports ReportChecker, store ObjectStore, publisher feed.Publisher, clock clockwork.Clock, cfg Config) *App {
	if publisher == nil {
		publisher = feed.Noop{}
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &App{
		repo:      repo,
		reports:   reports,
		store:     store,
		publisher: publisher,
		clock:     clock,
		cfg:       cfg.withDefaults(),
	}
}

// MaxSize is the largest accepted upload in bytes
func (a *App) MaxSize() int64 {
	return a.cfg.MaxSize
}

// Upload validates req, stores the file and records its metadata
func (a *App) Upload(ctx context.Context, req UploadRequest) (*models.Attachment, error) {
	if req.Body == nil || req.FileName == "" || strings.TrimSpace(req.ReportID) == "" {
		return nil, fmt.Errorf("%w: File and reportId are required", ErrInvalidUpload)
	}

	ext := strings.ToLower(strings.TrimPrefix(path.Ext(req.FileName), "."))
	if !slices.Contains(allowedExtensions, ext) {
		return nil, fmt.Errorf("%w: File type .%s not allowed. Accepted: %s",
			ErrInvalidUpload, ext, strings.Join(allowedExtensions, ", "))
	}
	if !allowedTypes[req.ContentType] {
		return nil, fmt.Errorf("%w: MIME type %s not allowed", ErrInvalidUpload, req.ContentType)
	}
	if req.Size > a.cfg.MaxSize {
		return nil, fmt.Errorf("%w: File too large. Max size: %dMB", ErrInvalidUpload, a.cfg.MaxSize>>20)
	}

	reportID, err := uuid.Parse(strings.TrimSpace(req.ReportID))
	if err != nil {
		return nil, ErrReportNotFound
	}
	exists, err := a.reports.ReportExists(ctx, reportID)
	if err != nil {
		return nil, fmt.Errorf("failed to check report: %w", err)
	}
	if !exists {
		return nil, ErrReportNotFound
	}

	now := a.clock.Now().UTC()
	key := fmt.Sprintf("%s/%d-%s", reportID, now.UnixMilli(), sanitizeFileName(req.FileName))
	if err := a.store.Upload(ctx, a.cfg.Bucket, key, req.ContentType, req.Body); err != nil {
		return nil, fmt.Errorf("failed to upload file to storage: %w", err)
	}

	att := &models.Attachment{
		ID:        uuid.New(),
		ReportID:  reportID,
		FileName:  req.FileName,
		FileType:  req.ContentType,
		FileSize:  req.Size,
		URL:       a.store.PublicURL(a.cfg.Bucket, key),
		CreatedAt: now,
	}
	if label := strings.TrimSpace(req.Label); label != "" {
		att.Label = &label
	}

	saved, err := a.repo.CreateAttachment(ctx, att)
	if err != nil {
		if rmErr := a.store.Remove(ctx, a.cfg.Bucket, key); rmErr != nil {
			log.Warn().Err(rmErr).Str("key", key).Msg("Failed to remove object after attachment insert failed")
		}
		return nil, err
	}

	a.publish(ctx, feed.NewEvent(feed.EventAttachmentAdded, "", now, saved))
	log.Info().
		Str("report_id", reportID.String()).
		Str("key", key).
		Int64("size", req.Size).
		Msg("Attachment uploaded")
	return saved, nil
}

// List returns the attachments of a report, newest first
func (a *App) List(ctx context.Context, reportID uuid.UUID) ([]models.Attachment, error) {
	return a.repo.ListAttachments(ctx, reportID)
}

// Delete removes the attachment row and its stored object. A failed object
// removal is logged and does not keep the row.
func (a *App) Delete(ctx context.Context, reportID, id uuid.UUID) error {
	att, err := a.repo.DeleteAttachment(ctx, reportID, id)
	if err != nil {
		return err
	}

	if key, ok := a.store.ObjectKey(a.cfg.Bucket, att.URL); ok {
		if err := a.store.Remove(ctx, a.cfg.Bucket, key); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("Storage cleanup failed, attachment row already removed")
		}
	}

	a.publish(ctx, feed.NewEvent(feed.EventAttachmentRemoved, "", a.clock.Now(), att))
	return nil
}

func (a *App) publish(ctx context.Context, ev feed.Event) {
	if err := a.publisher.Publish(ctx, ev); err != nil {
		log.Warn().Err(err).Str("event_type", string(ev.Type)).Msg("failed to publish event")
	}
}
