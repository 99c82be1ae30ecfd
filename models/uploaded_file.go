package models

import (
	"errors"
	"io"
)

// ErrNoFileContent is returned by UploadedFile.Open when the file has no
// content source attached.
var ErrNoFileContent = errors.New("uploaded file has no content")

// UploadedFile is a handle over one file part of a submission request.
// Content is opened lazily so that large files are never read unless a
// pipeline stage needs them.
type UploadedFile struct {
	// Filename is the name chosen by the uploader. It is never exposed
	// publicly and only stored as provenance.
	Filename string

	// Size is the declared size in bytes.
	Size int64

	// ContentType is the declared MIME type of the part.
	ContentType string

	open func() (io.ReadCloser, error)
}

// NewUploadedFile constructs an UploadedFile whose content is provided by open.
func NewUploadedFile(filename string, size int64, contentType string, open func() (io.ReadCloser, error)) UploadedFile {
	return UploadedFile{
		Filename:    filename,
		Size:        size,
		ContentType: contentType,
		open:        open,
	}
}

// Open returns a fresh reader over the file content.
func (f UploadedFile) Open() (io.ReadCloser, error) {
	if f.open == nil {
		return nil, ErrNoFileContent
	}
	return f.open()
}

// Empty reports whether the part carries no file at all, which is what
// browsers send for an untouched file input.
func (f UploadedFile) Empty() bool {
	return f.open == nil || (f.Filename == "" && f.Size == 0)
}
