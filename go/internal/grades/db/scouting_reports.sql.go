package db

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/sqlc-dev/pqtype"
)

const scoutingReportColumns = `id, player_id, player_name, position, club, status, scouting_level,
       ability, potential, report, attributes, potentials, scouting_tags,
       verdict, role, conclusion, notes, transfer_fee, salary, scout_name, scout_id,
       created_at, updated_at`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanScoutingReport(row rowScanner) (ScoutingReport, error) {
	var i ScoutingReport
	err := row.Scan(
		&i.ID,
		&i.PlayerID,
		&i.PlayerName,
		&i.Position,
		&i.Club,
		&i.Status,
		&i.ScoutingLevel,
		&i.Ability,
		&i.Potential,
		&i.Report,
		&i.Attributes,
		&i.Potentials,
		&i.ScoutingTags,
		&i.Verdict,
		&i.Role,
		&i.Conclusion,
		&i.Notes,
		&i.TransferFee,
		&i.Salary,
		&i.ScoutName,
		&i.ScoutID,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getScoutingReport = `-- name: GetScoutingReport :one
SELECT ` + scoutingReportColumns + `
FROM scouting_reports
WHERE player_id = $1
`

func (q *Queries) GetScoutingReport(ctx context.Context, playerID string) (ScoutingReport, error) {
	row := q.db.QueryRowContext(ctx, getScoutingReport, playerID)
	return scanScoutingReport(row)
}

const scoutingReportExists = `-- name: ScoutingReportExists :one
SELECT EXISTS(SELECT 1 FROM scouting_reports WHERE id = $1)
`

func (q *Queries) ScoutingReportExists(ctx context.Context, id uuid.UUID) (bool, error) {
	row := q.db.QueryRowContext(ctx, scoutingReportExists, id)
	var exists bool
	err := row.Scan(&exists)
	return exists, err
}

const listScoutingReports = `-- name: ListScoutingReports :many
SELECT ` + scoutingReportColumns + `
FROM scouting_reports
ORDER BY updated_at DESC
`

func (q *Queries) ListScoutingReports(ctx context.Context) ([]ScoutingReport, error) {
	rows, err := q.db.QueryContext(ctx, listScoutingReports)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []ScoutingReport
	for rows.Next() {
		i, err := scanScoutingReport(rows)
		if err != nil {
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

const upsertScoutingReport = `-- name: UpsertScoutingReport :one
INSERT INTO scouting_reports (
    id, player_id, player_name, position, club, status, scouting_level,
    ability, potential, report, attributes, potentials, scouting_tags,
    verdict, role, conclusion, notes, transfer_fee, salary, scout_name, scout_id,
    created_at, updated_at
) VALUES (
    $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
    $14, $15, $16, $17, $18, $19, $20, $21, $22, $22
)
ON CONFLICT (player_id) DO UPDATE SET
    player_name    = EXCLUDED.player_name,
    position       = EXCLUDED.position,
    club           = EXCLUDED.club,
    status         = EXCLUDED.status,
    scouting_level = EXCLUDED.scouting_level,
    ability        = EXCLUDED.ability,
    potential      = EXCLUDED.potential,
    report         = EXCLUDED.report,
    attributes     = EXCLUDED.attributes,
    potentials     = EXCLUDED.potentials,
    scouting_tags  = EXCLUDED.scouting_tags,
    verdict        = EXCLUDED.verdict,
    role           = EXCLUDED.role,
    conclusion     = EXCLUDED.conclusion,
    notes          = EXCLUDED.notes,
    transfer_fee   = EXCLUDED.transfer_fee,
    salary         = EXCLUDED.salary,
    scout_name     = EXCLUDED.scout_name,
    scout_id       = EXCLUDED.scout_id,
    updated_at     = EXCLUDED.updated_at
RETURNING ` + scoutingReportColumns + `
`

type UpsertScoutingReportParams struct {
	ID            uuid.UUID
	PlayerID      string
	PlayerName    sql.NullString
	Position      sql.NullString
	Club          sql.NullString
	Status        sql.NullString
	ScoutingLevel sql.NullString
	Ability       sql.NullInt16
	Potential     sql.NullInt16
	Report        sql.NullInt16
	Attributes    pqtype.NullRawMessage
	Potentials    pqtype.NullRawMessage
	ScoutingTags  []string
	Verdict       sql.NullString
	Role          sql.NullString
	Conclusion    sql.NullString
	Notes         sql.NullString
	TransferFee   sql.NullString
	Salary        sql.NullString
	ScoutName     sql.NullString
	ScoutID       uuid.NullUUID
	UpdatedAt     time.Time
}

func (q *Queries) UpsertScoutingReport(ctx context.Context, arg UpsertScoutingReportParams) (ScoutingReport, error) {
	row := q.db.QueryRowContext(ctx, upsertScoutingReport,
		arg.ID,
		arg.PlayerID,
		arg.PlayerName,
		arg.Position,
		arg.Club,
		arg.Status,
		arg.ScoutingLevel,
		arg.Ability,
		arg.Potential,
		arg.Report,
		arg.Attributes,
		arg.Potentials,
		pq.Array(arg.ScoutingTags),
		arg.Verdict,
		arg.Role,
		arg.Conclusion,
		arg.Notes,
		arg.TransferFee,
		arg.Salary,
		arg.ScoutName,
		arg.ScoutID,
		arg.UpdatedAt,
	)
	return scanScoutingReport(row)
}

const deleteScoutingReport = `-- name: DeleteScoutingReport :execrows
DELETE FROM scouting_reports
WHERE player_id = $1
`

func (q *Queries) DeleteScoutingReport(ctx context.Context, playerID string) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteScoutingReport, playerID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
