package db

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type Attachment struct {
	ID        uuid.UUID
	ReportID  uuid.UUID
	FileName  string
	FileType  string
	FileSize  int64
	Url       string
	Label     sql.NullString
	CreatedAt time.Time
}
