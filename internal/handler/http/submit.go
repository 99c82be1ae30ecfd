// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/MKhiriev/go-photo-gate/internal/logger"
	"github.com/MKhiriev/go-photo-gate/internal/utils"
	"github.com/MKhiriev/go-photo-gate/internal/validators"
	"github.com/MKhiriev/go-photo-gate/models"
)

// descriptionField is the form field holding the optional description.
const descriptionField = "post_content"

// responseParam is the query parameter the redirect target reads.
const responseParam = "response"

// submit runs the upload pipeline for one posted form and always answers
// with 303 See Other. The redirect carries only fu-sent or fu-spam; the
// specific rejection reason, if any, waits in the reason channel for the
// notice endpoint.
func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	if err := r.ParseMultipartForm(h.maxMultipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			err = fmt.Errorf("%w: limit %d bytes", ErrUploadTooLarge, tooLarge.Limit)
		}
		log.Warn().Err(fmt.Errorf("%w: %w", ErrParsingForm, err)).Str("func", "*Handler.submit").Send()
		h.redirect(w, r, models.ResponseSpam)
		return
	}
	defer func() {
		if err := r.MultipartForm.RemoveAll(); err != nil {
			log.Warn().Err(err).Msg("error removing temporary multipart files")
		}
	}()

	submitter, _ := utils.GetSubmitterFromContext(ctx)
	form := submissionFormFromRequest(r)
	form.SessionKey, _ = utils.GetSessionKeyFromContext(ctx)

	outcome, err := h.services.SubmissionService.Submit(ctx, submitter, form)
	if err != nil {
		log.Err(err).Str("func", "*Handler.submit").Msg("submission failed")
		h.redirect(w, r, models.ResponseSpam)
		return
	}

	if !outcome.Accepted {
		log.Info().Str("reason", outcome.Reason.String()).Msg("submission rejected")
		h.redirect(w, r, models.ResponseSpam)
		return
	}

	event := log.Info()
	if outcome.Success != nil {
		event = event.Int64("post_id", outcome.Success.PostID)
	}
	event.Msg("submission accepted")
	h.redirect(w, r, models.ResponseSent)
}

// redirect sends the browser back to the configured page with the
// response parameter set, keeping any query the page already has.
func (h *Handler) redirect(w http.ResponseWriter, r *http.Request, response string) {
	target, err := url.Parse(h.redirectURL)
	if err != nil || h.redirectURL == "" {
		target = &url.URL{Path: "/"}
	}

	query := target.Query()
	query.Set(responseParam, response)
	target.RawQuery = query.Encode()

	http.Redirect(w, r, target.String(), http.StatusSeeOther)
}

// submissionFormFromRequest maps a parsed multipart request onto the form
// model. File content is not read here.
func submissionFormFromRequest(r *http.Request) models.SubmissionForm {
	form := models.SubmissionForm{
		CopyrightAcknowledged: checked(r.PostFormValue(validators.FieldCopyright)),
		LicenseAccepted:       checked(r.PostFormValue(validators.FieldLicense)),
		Description:           r.PostFormValue(descriptionField),
	}

	if r.MultipartForm == nil {
		return form
	}

	for _, header := range r.MultipartForm.File[validators.FieldFiles] {
		form.Files = append(form.Files, uploadedFile(header))
	}

	return form
}

func uploadedFile(header *multipart.FileHeader) models.UploadedFile {
	return models.NewUploadedFile(header.Filename, header.Size, header.Header.Get("Content-Type"),
		func() (io.ReadCloser, error) {
			f, err := header.Open()
			if err != nil {
				return nil, err
			}
			return f, nil
		})
}

// checked reports whether a checkbox value counts as ticked. Unticked boxes
// are not posted at all; "0" is treated as unticked as well.
func checked(value string) bool {
	return value != "" && value != "0"
}
