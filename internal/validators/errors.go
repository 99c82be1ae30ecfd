package validators

import (
	"errors"

	"github.com/MKhiriev/go-photo-gate/models"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrNoFileUploaded     = errors.New("no file uploaded")
	ErrTooManyFiles       = errors.New("too many files uploaded")
	ErrCopyrightUnchecked = errors.New("copyright acknowledgement is required")
	ErrLicenseUnchecked   = errors.New("license agreement is required")
)

var reasonsByError = map[error]models.RejectionReason{
	ErrNoFileUploaded:     models.ReasonNoFileUploaded,
	ErrTooManyFiles:       models.ReasonTooManyFiles,
	ErrCopyrightUnchecked: models.ReasonCheckboxUncheckedCopyright,
	ErrLicenseUnchecked:   models.ReasonCheckboxUncheckedLicense,
}

// ReasonOf maps a validation error to its rejection reason. Nil and errors
// without a reason map to ReasonNone.
func ReasonOf(err error) models.RejectionReason {
	for sentinel, reason := range reasonsByError {
		if errors.Is(err, sentinel) {
			return reason
		}
	}
	return models.ReasonNone
}
