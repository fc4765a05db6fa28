package db

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

const createAttachment = `-- name: CreateAttachment :one
INSERT INTO attachments (id, report_id, file_name, file_type, file_size, url, label, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id, report_id, file_name, file_type, file_size, url, label, created_at
`

type CreateAttachmentParams struct {
	ID        uuid.UUID
	ReportID  uuid.UUID
	FileName  string
	FileType  string
	FileSize  int64
	Url       string
	Label     sql.NullString
	CreatedAt time.Time
}

func (q *Queries) CreateAttachment(ctx context.Context, arg CreateAttachmentParams) (Attachment, error) {
	row := q.db.QueryRowContext(ctx, createAttachment,
		arg.ID,
		arg.ReportID,
		arg.FileName,
		arg.FileType,
		arg.FileSize,
		arg.Url,
		arg.Label,
		arg.CreatedAt,
	)
	var i Attachment
	err := row.Scan(
		&i.ID,
		&i.ReportID,
		&i.FileName,
		&i.FileType,
		&i.FileSize,
		&i.Url,
		&i.Label,
		&i.CreatedAt,
	)
	return i, err
}

const getAttachment = `-- name: GetAttachment :one
SELECT id, report_id, file_name, file_type, file_size, url, label, created_at
FROM attachments
WHERE id = $1
`

func (q *Queries) GetAttachment(ctx context.Context, id uuid.UUID) (Attachment, error) {
	row := q.db.QueryRowContext(ctx, getAttachment, id)
	var i Attachment
	err := row.Scan(
		&i.ID,
		&i.ReportID,
		&i.FileName,
		&i.FileType,
		&i.FileSize,
		&i.Url,
		&i.Label,
		&i.CreatedAt,
	)
	return i, err
}

const listAttachmentsByReport = `-- name: ListAttachmentsByReport :many
SELECT id, report_id, file_name, file_type, file_size, url, label, created_at
FROM attachments
WHERE report_id = $1
ORDER BY created_at DESC
`

func (q *Queries) ListAttachmentsByReport(ctx context.Context, reportID uuid.UUID) ([]Attachment, error) {
	rows, err := q.db.QueryContext(ctx, listAttachmentsByReport, reportID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Attachment
	for rows.Next() {
		var i Attachment
		if err := rows.Scan(
			&i.ID,
			&i.ReportID,
			&i.FileName,
			&i.FileType,
			&i.FileSize,
			&i.Url,
			&i.Label,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const deleteAttachment = `-- name: DeleteAttachment :execrows
DELETE FROM attachments
WHERE id = $1
`

func (q *Queries) DeleteAttachment(ctx context.Context, id uuid.UUID) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteAttachment, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
