package service

import (
	"fmt"

	"github.com/MKhiriev/go-photo-gate/models"
)

const (
	MessageSubmitted     = "Your photo was successfully submitted"
	MessageGeneric       = "Your submission was flagged as unacceptable."
	MessageDisabled      = "Photo uploading is currently disabled."
	MessageLoginRequired = "Please log in or create an account so you can upload a photo."
	MessageLimitReached  = "Thanks for your submissions! Please wait until a photo is approved by moderators before submitting again."
)

// RejectionMessage returns the user-facing text for reason. Unknown reasons
// and ReasonNone get the generic message.
func RejectionMessage(reason models.RejectionReason, minDimension int) string {
	switch reason {
	case models.ReasonCheckboxUncheckedCopyright:
		return "You must acknowledge your copyright of the photo."
	case models.ReasonCheckboxUncheckedLicense:
		return "You must agree to the license."
	case models.ReasonConcurrentSubmissionLimit:
		return "You already have a submission awaiting moderation."
	case models.ReasonDuplicateFile:
		return "Your submission appears to be a duplicate of something uploaded before."
	case models.ReasonInsufficientDimension:
		return fmt.Sprintf("Your photo must have a width and height of at least %d pixels each.", minDimension)
	case models.ReasonNoFileUploaded:
		return "You must select a photo to upload."
	case models.ReasonTooManyFiles:
		return "You can only upload one photo at a time."
	default:
		return MessageGeneric
	}
}

// Guidelines is the submission checklist shown next to the form. Only the
// copyright and license statements are enforced by the server.
var Guidelines = []models.Guideline{
	{Key: "photo_copyright", Label: "I have the copyright or other legal right to upload this image."},
	{Key: "photo_license", Label: "I am making this photo available under the CC0 license (https://creativecommons.org/share-your-work/public-domain/cc0/). People will be able to use this image for any purpose, including resale, marketing, branding, etc without cost or attribution."},
	{Key: "photo_photograph", Label: "Photo is an actual photograph and not a screenshot or digital art."},
	{Key: "photo_high_quality", Label: "Photo is high quality (well composed and lit, not blurry, etc)."},
	{Key: "photo_no_overlays", Label: "Photo does not contain overlays (watermarks, copyright notices, text, graphics, borders)."},
	{Key: "photo_not_overprocessed", Label: "Photo is not overprocessed (excessive photo editing or use of filters)."},
	{Key: "photo_no_collage", Label: "Photo is not a collage or composite of multiple photographs."},
	{Key: "photo_no_extreme_content", Label: "Photo does not depict violence, gore, hate, or sexual content."},
	{Key: "photo_not_all_text", Label: "Photo must not consist mostly of text."},
	{Key: "photo_not_others_art", Label: "Photo must not consist solely of the artwork of others (such as paintings, drawings, graffiti)."},
	{Key: "photo_no_faces", Label: "Photo must not contain any human faces."},
	{Key: "photo_privacy", Label: "Photo must not potentially violate anyone's privacy (such as revealing home address, license plate, etc)."},
	{Key: "photo_no_variations", Label: "Photo must not be a minor variation of something you submitted to this site before."},
}
