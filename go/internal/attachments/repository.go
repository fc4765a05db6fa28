package attachments

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/bacauscout/scout/go/internal/attachments/db"
	"github.com/bacauscout/scout/go/internal/models"
	"github.com/bacauscout/scout/go/internal/sqlutil"
)

type Repository struct {
	sqlDB   *sql.DB
	queries *db.Queries
}

func NewRepository(sqlDB *sql.DB) *Repository {
	return &Repository{
		sqlDB:   sqlDB,
		queries: db.New(sqlDB),
	}
}

func (r *Repository) CreateAttachment(ctx context.Context, a *models.Attachment) (*models.Attachment, error) {
	row, err := r.queries.CreateAttachment(ctx, db.CreateAttachmentParams{
		ID:        a.ID,
		ReportID:  a.ReportID,
		FileName:  a.FileName,
		FileType:  a.FileType,
		FileSize:  a.FileSize,
		Url:       a.URL,
		Label:     sqlutil.ToSqlString(a.Label),
		CreatedAt: a.CreatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create attachment: %w", err)
	}
	return dbAttachmentToModel(row), nil
}

func (r *Repository) ListAttachments(ctx context.Context, reportID uuid.UUID) ([]models.Attachment, error) {
	rows, err := r.queries.ListAttachmentsByReport(ctx, reportID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attachments: %w", err)
	}

	out := make([]models.Attachment, 0, len(rows))
	for _, row := range rows {
		out = append(out, *dbAttachmentToModel(row))
	}
	return out, nil
}

// DeleteAttachment removes attachment id if it belongs to reportID and
// returns the deleted row
func (r *Repository) DeleteAttachment(ctx context.Context, reportID, id uuid.UUID) (*models.Attachment, error) {
	var deleted db.Attachment
	err := sqlutil.Run(ctx, r.sqlDB, r.queries.WithTx, func(q *db.Queries) error {
		row, err := q.GetAttachment(ctx, id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrAttachmentNotFound
			}
			return err
		}
		if row.ReportID != reportID {
			return ErrAttachmentNotFound
		}
		if _, err := q.DeleteAttachment(ctx, id); err != nil {
			return err
		}
		deleted = row
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrAttachmentNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to delete attachment: %w", err)
	}
	return dbAttachmentToModel(deleted), nil
}

func dbAttachmentToModel(row db.Attachment) *models.Attachment {
	return &models.Attachment{
		ID:        row.ID,
		ReportID:  row.ReportID,
		FileName:  row.FileName,
		FileType:  row.FileType,
		FileSize:  row.FileSize,
		URL:       row.Url,
		Label:     sqlutil.FromSqlStringPtr(row.Label),
		CreatedAt: row.CreatedAt,
	}
}
