package db

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const createScout = `-- name: CreateScout :one
INSERT INTO scouts (id, email, password, name, role, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, email, password, name, role, created_at
`

type CreateScoutParams struct {
	ID        uuid.UUID
	Email     string
	Password  string
	Name      string
	Role      string
	CreatedAt time.Time
}

func (q *Queries) CreateScout(ctx context.Context, arg CreateScoutParams) (Scout, error) {
	row := q.db.QueryRow(ctx, createScout,
		arg.ID,
		arg.Email,
		arg.Password,
		arg.Name,
		arg.Role,
		arg.CreatedAt,
	)
	var i Scout
	err := row.Scan(
		&i.ID,
		&i.Email,
		&i.Password,
		&i.Name,
		&i.Role,
		&i.CreatedAt,
	)
	return i, err
}

const getScoutByEmail = `-- name: GetScoutByEmail :one
SELECT id, email, password, name, role, created_at
FROM scouts
WHERE email = $1
`

func (q *Queries) GetScoutByEmail(ctx context.Context, email string) (Scout, error) {
	row := q.db.QueryRow(ctx, getScoutByEmail, email)
	var i Scout
	err := row.Scan(
		&i.ID,
		&i.Email,
		&i.Password,
		&i.Name,
		&i.Role,
		&i.CreatedAt,
	)
	return i, err
}
