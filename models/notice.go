package models

// Response values carried by the redirect after a submission attempt.
const (
	ResponseSent = "fu-sent"
	ResponseSpam = "fu-spam"
)

// Notice is the user-facing message composed after the redirect.
type Notice struct {
	Response string          `json:"response"`
	Reason   RejectionReason `json:"reason,omitempty"`
	Message  string          `json:"message"`
}

// Eligibility describes whether the upload form may be shown.
type Eligibility struct {
	CanUpload            bool        `json:"can_upload"`
	LoginRequired        bool        `json:"login_required"`
	LimitReached         bool        `json:"limit_reached"`
	Message              string      `json:"message,omitempty"`
	MaxDescriptionLength int         `json:"max_description_length"`
	MinPhotoDimension    int         `json:"min_photo_dimension"`
	Guidelines           []Guideline `json:"guidelines,omitempty"`
}

// Guideline is one statement of the submission checklist.
type Guideline struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}
