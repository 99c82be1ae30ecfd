package service

import (
	"github.com/MKhiriev/go-photo-gate/models"
)

// UploadRequest carries one submission attempt through the pipeline. The
// file fingerprint is memoized here, so it lives exactly as long as the
// request.
type UploadRequest struct {
	Submitter models.Submitter
	Form      models.SubmissionForm

	fingerprint string
	hashed      bool
}

func NewUploadRequest(submitter models.Submitter, form models.SubmissionForm) *UploadRequest {
	return &UploadRequest{Submitter: submitter, Form: form}
}

// SessionKey is the reason channel key of the request.
func (r *UploadRequest) SessionKey() string {
	return r.Form.SessionKey
}

// Provenance describes the original upload. It is complete only after the
// fingerprint has been computed.
func (r *UploadRequest) Provenance() models.Provenance {
	file, _ := r.Form.FirstFile()
	return models.Provenance{
		OriginalFilename: file.Filename,
		OriginalSize:     file.Size,
		FileHash:         r.fingerprint,
	}
}
