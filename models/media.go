package models

import (
	"path/filepath"
	"strings"
	"time"
)

// Media is a stored photo file together with its measured properties.
// A media row may exist without a submission (a bare attachment) when the
// intake fails between storing the file and creating the submission.
type Media struct {
	ID int64 `json:"id"`

	// SubmissionID links the media to its submission. Nil for bare attachments.
	SubmissionID *int64 `json:"submission_id,omitempty"`

	// FilePath is the obfuscated path relative to the photo directory.
	FilePath string `json:"file_path"`

	MimeType string `json:"mime_type"`
	Size     int64  `json:"size"`

	// Width and Height are the measured pixel dimensions. Zero when the
	// file could not be decoded as an image.
	Width  int `json:"width"`
	Height int `json:"height"`

	Name  string `json:"name"`
	Title string `json:"title"`

	CreatedAt time.Time `json:"created_at"`
}

// BaseName returns the stored filename without directory and extension.
func (m Media) BaseName() string {
	base := filepath.Base(m.FilePath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// TableName returns the name of the database table
// associated with the Media model.
func (m Media) TableName() string {
	return "media"
}
