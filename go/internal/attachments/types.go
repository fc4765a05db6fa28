package attachments

import (
	"errors"
	"io"
	"regexp"
)

var (
	ErrInvalidUpload      = errors.New("invalid upload")
	ErrReportNotFound     = errors.New("report not found")
	ErrAttachmentNotFound = errors.New("attachment not found")
)

const (
	DefaultBucket  = "attachments"
	DefaultMaxSize = 50 << 20
)

var allowedExtensions = []string{"pdf", "mp4", "mov", "jpg", "jpeg", "png", "webp"}

var allowedTypes = map[string]bool{
	"application/pdf": true,
	"video/mp4":       true,
	"video/quicktime": true,
	"image/jpeg":      true,
	"image/jpg":       true,
	"image/png":       true,
	"image/webp":      true,
}

var unsafeNameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// UploadRequest describes one file sent to the upload endpoint
type UploadRequest struct {
	ReportID    string
	FileName    string
	ContentType string
	Size        int64
	Label       string
	Body        io.Reader
}

// Config controls where and how large attachments may be stored
type Config struct {
	Bucket  string
	MaxSize int64
}

func (c Config) withDefaults() Config {
	if c.Bucket == "" {
		c.Bucket = DefaultBucket
	}
	if c.MaxSize <= 0 {
		c.MaxSize = DefaultMaxSize
	}
	return c
}

// sanitizeFileName replaces every character outside [a-zA-Z0-9._-] with '_'
func sanitizeFileName(name string) string {
	return unsafeNameChars.ReplaceAllString(name, "_")
}
