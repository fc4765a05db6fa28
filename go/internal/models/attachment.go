package models

import (
	"time"

	"github.com/google/uuid"
)

// Attachment is a file or clip linked to a scouting report
type Attachment struct {
	ID        uuid.UUID `json:"id"`
	ReportID  uuid.UUID `json:"reportId"`
	FileName  string    `json:"fileName"`
	FileType  string    `json:"fileType"`
	FileSize  int64     `json:"fileSize"`
	URL       string    `json:"url"`
	Label     *string   `json:"label"`
	CreatedAt time.Time `json:"createdAt"`
}
