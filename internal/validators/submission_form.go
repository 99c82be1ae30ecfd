package validators

import (
	"context"

	"github.com/MKhiriev/go-photo-gate/models"
)

// Field name constants used to restrict validation of a submission form to
// a subset of its fields.
const (
	// FieldFiles checks that exactly one non-empty file was posted.
	FieldFiles = "files"

	// FieldCopyright checks the copyright acknowledgement checkbox.
	FieldCopyright = "photo_copyright"

	// FieldLicense checks the license agreement checkbox.
	FieldLicense = "photo_license"
)

// submissionFormFields is the default field order and therefore the
// reporting priority.
var submissionFormFields = []string{FieldFiles, FieldCopyright, FieldLicense}

// SubmissionFormValidator checks the posted upload form before any bytes are
// fingerprinted or stored.
type SubmissionFormValidator struct {
}

func NewSubmissionFormValidator() *SubmissionFormValidator {
	return &SubmissionFormValidator{}
}

func (v *SubmissionFormValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SubmissionForm:
		return v.validateForm(ctx, value, fields...)
	case *models.SubmissionForm:
		return v.validateForm(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

// ValidateForm returns the highest-priority rejection reason of form, or
// ReasonNone when the form is acceptable.
func (v *SubmissionFormValidator) ValidateForm(ctx context.Context, form models.SubmissionForm) models.RejectionReason {
	return ReasonOf(v.validateForm(ctx, form))
}

func (v *SubmissionFormValidator) validateForm(_ context.Context, form models.SubmissionForm, fields ...string) error {
	if len(fields) == 0 {
		fields = submissionFormFields
	}

	for _, f := range fields {
		switch f {
		case FieldFiles:
			first, ok := form.FirstFile()
			if !ok || first.Empty() {
				return ErrNoFileUploaded
			}
			if len(form.Files) > 1 {
				return ErrTooManyFiles
			}
		case FieldCopyright:
			if !form.CopyrightAcknowledged {
				return ErrCopyrightUnchecked
			}
		case FieldLicense:
			if !form.LicenseAccepted {
				return ErrLicenseUnchecked
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
