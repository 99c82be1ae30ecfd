// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-photo-gate/internal/logger"
	"github.com/MKhiriev/go-photo-gate/internal/store"
	"github.com/MKhiriev/go-photo-gate/models"
)

const (
	displayNameLength = 10
	mediaNameSuffix   = "-photo"
	maxNameAttempts   = 100
)

// Finalizer renames a validated submission and its primary media after the
// obfuscated stored filename and records the upload provenance. Both names
// get a numeric suffix when the derived name is already in use.
type Finalizer struct {
	submissions store.SubmissionRepository
	media       store.MediaRepository
}

func NewFinalizer(submissions store.SubmissionRepository, media store.MediaRepository) *Finalizer {
	return &Finalizer{submissions: submissions, media: media}
}

// OnUploadSuccess implements [UploadSubscriber].
func (f *Finalizer) OnUploadSuccess(ctx context.Context, success models.UploadSuccess) error {
	if success.PostID == 0 || len(success.MediaIDs) == 0 {
		return nil
	}

	primary, err := f.media.GetMedia(ctx, success.MediaIDs[0])
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFinalizing, err)
	}

	name, err := claimUniqueName(ctx, DisplayName(primary.BaseName()), f.submissions.SubmissionNameExists, store.ErrSubmissionNameTaken,
		func(candidate string) error {
			return f.submissions.Finalize(ctx, models.Finalization{
				SubmissionID:   success.PostID,
				PrimaryMediaID: primary.ID,
				Name:           candidate,
				Title:          candidate,
				Provenance:     success.Provenance,
			})
		})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFinalizing, err)
	}

	mediaName, err := claimUniqueName(ctx, name+mediaNameSuffix, f.media.MediaNameExists, store.ErrMediaNameTaken,
		func(candidate string) error {
			return f.media.RenameMedia(ctx, primary.ID, candidate, candidate)
		})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFinalizing, err)
	}

	logger.FromContext(ctx).Debug().
		Int64("post_id", success.PostID).
		Str("name", name).
		Str("media_name", mediaName).
		Msg("submission finalized")
	return nil
}

// claimUniqueName tries base, base-2, base-3, ... and returns the first
// candidate that exists reports free and claim accepts. A claim failing
// with taken means another writer won the race for that candidate.
func claimUniqueName(ctx context.Context, base string, exists func(context.Context, string) (bool, error), taken error,
	claim func(candidate string) error) (string, error) {
	for attempt := 1; attempt <= maxNameAttempts; attempt++ {
		candidate := base
		if attempt > 1 {
			candidate = base + "-" + strconv.Itoa(attempt)
		}

		inUse, err := exists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if inUse {
			continue
		}

		err = claim(candidate)
		if errors.Is(err, taken) {
			continue
		}
		if err != nil {
			return "", err
		}
		return candidate, nil
	}
	return "", ErrNoUniqueName
}

// DisplayName derives a URL-safe name from the first characters of an
// obfuscated filename with dashes and dots removed.
func DisplayName(filename string) string {
	stripped := []rune(strings.NewReplacer("-", "", ".", "").Replace(filename))
	if len(stripped) > displayNameLength {
		stripped = stripped[:displayNameLength]
	}

	var b strings.Builder
	for _, r := range strings.ToLower(string(stripped)) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
