package db

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/sqlc-dev/pqtype"
)

type ScoutingReport struct {
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
	ScoutingTags  pq.StringArray
	Verdict       sql.NullString
	Role          sql.NullString
	Conclusion    sql.NullString
	Notes         sql.NullString
	TransferFee   sql.NullString
	Salary        sql.NullString
	ScoutName     sql.NullString
	ScoutID       uuid.NullUUID
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
