package db

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const createInvite = `-- name: CreateInvite :one
INSERT INTO invites (id, email, role, token, used, expires_at, created_at)
VALUES ($1, $2, $3, $4, FALSE, $5, $6)
RETURNING id, email, role, token, used, expires_at, created_at
`

type CreateInviteParams struct {
	ID        uuid.UUID
	Email     string
	Role      string
	Token     string
	ExpiresAt time.Time
	CreatedAt time.Time
}

func (q *Queries) CreateInvite(ctx context.Context, arg CreateInviteParams) (Invite, error) {
	row := q.db.QueryRow(ctx, createInvite,
		arg.ID,
		arg.Email,
		arg.Role,
		arg.Token,
		arg.ExpiresAt,
		arg.CreatedAt,
	)
	var i Invite
	err := row.Scan(
		&i.ID,
		&i.Email,
		&i.Role,
		&i.Token,
		&i.Used,
		&i.ExpiresAt,
		&i.CreatedAt,
	)
	return i, err
}

const getInviteByEmail = `-- name: GetInviteByEmail :one
SELECT id, email, role, token, used, expires_at, created_at
FROM invites
WHERE email = $1
`

func (q *Queries) GetInviteByEmail(ctx context.Context, email string) (Invite, error) {
	row := q.db.QueryRow(ctx, getInviteByEmail, email)
	var i Invite
	err := row.Scan(
		&i.ID,
		&i.Email,
		&i.Role,
		&i.Token,
		&i.Used,
		&i.ExpiresAt,
		&i.CreatedAt,
	)
	return i, err
}

const getInviteByToken = `-- name: GetInviteByToken :one
SELECT id, email, role, token, used, expires_at, created_at
FROM invites
WHERE token = $1
`

func (q *Queries) GetInviteByToken(ctx context.Context, token string) (Invite, error) {
	row := q.db.QueryRow(ctx, getInviteByToken, token)
	var i Invite
	err := row.Scan(
		&i.ID,
		&i.Email,
		&i.Role,
		&i.Token,
		&i.Used,
		&i.ExpiresAt,
		&i.CreatedAt,
	)
	return i, err
}

const listInvites = `-- name: ListInvites :many
SELECT id, email, role, token, used, expires_at, created_at
FROM invites
ORDER BY created_at DESC
`

func (q *Queries) ListInvites(ctx context.Context) ([]Invite, error) {
	rows, err := q.db.Query(ctx, listInvites)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Invite
	for rows.Next() {
		var i Invite
		if err := rows.Scan(
			&i.ID,
			&i.Email,
			&i.Role,
			&i.Token,
			&i.Used,
			&i.ExpiresAt,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const deleteInvite = `-- name: DeleteInvite :exec
DELETE FROM invites
WHERE id = $1
`

func (q *Queries) DeleteInvite(ctx context.Context, id uuid.UUID) error {
	_, err := q.db.Exec(ctx, deleteInvite, id)
	return err
}

const markInviteUsed = `-- name: MarkInviteUsed :execrows
UPDATE invites
SET used = TRUE
WHERE id = $1 AND used = FALSE
`

func (q *Queries) MarkInviteUsed(ctx context.Context, id uuid.UUID) (int64, error) {
	result, err := q.db.Exec(ctx, markInviteUsed, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
