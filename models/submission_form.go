package models

// SubmissionForm is the set of fields posted by the upload form.
type SubmissionForm struct {
	// Files are all file parts posted under the files field.
	Files []UploadedFile

	// CopyrightAcknowledged is the "I have the copyright" checkbox.
	CopyrightAcknowledged bool

	// LicenseAccepted is the "I release this photo under CC0" checkbox.
	LicenseAccepted bool

	// Description is the optional free text description.
	Description string

	// SessionKey identifies the browser session that receives the
	// rejection reason after the redirect.
	SessionKey string
}

// FirstFile returns the first posted file, if any.
func (f SubmissionForm) FirstFile() (UploadedFile, bool) {
	if len(f.Files) == 0 {
		return UploadedFile{}, false
	}
	return f.Files[0], true
}
