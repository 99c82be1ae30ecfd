// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package intake

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-photo-gate/internal/logger"
	"github.com/MKhiriev/go-photo-gate/internal/store"
	"github.com/MKhiriev/go-photo-gate/internal/utils"
	"github.com/MKhiriev/go-photo-gate/models"
)

// LocalIntake stores uploads on the local photo directory and records them
// in the submission and media repositories.
type LocalIntake struct {
	files       store.PhotoFileStorage
	submissions store.SubmissionRepository
	media       store.MediaRepository
	names       *utils.UUIDGenerator

	maxDescriptionLength int

	logger *logger.Logger
}

func NewLocalIntake(files store.PhotoFileStorage, submissions store.SubmissionRepository, media store.MediaRepository,
	maxDescriptionLength int, logger *logger.Logger) *LocalIntake {
	return &LocalIntake{
		files:                files,
		submissions:          submissions,
		media:                media,
		names:                utils.NewUUIDGenerator(),
		maxDescriptionLength: maxDescriptionLength,
		logger:               logger,
	}
}

// Available reports whether the photo directory accepts new files.
func (l *LocalIntake) Available(ctx context.Context) bool {
	return l.files.Writable(ctx)
}

// Store saves the first file of form under an obfuscated name and creates a
// pending submission owned by submitter. Every artifact committed before a
// failure is reported in the result.
func (l *LocalIntake) Store(ctx context.Context, submitter models.Submitter, form models.SubmissionForm, provenance models.Provenance) models.IntakeResult {
	log := logger.FromContext(ctx)

	file, ok := form.FirstFile()
	if !ok || file.Empty() {
		return failed(ErrNoFile)
	}

	stored, err := l.storeFile(ctx, file)
	if err != nil {
		log.Err(err).Str("func", "*LocalIntake.Store").Msg("error storing uploaded file")
		return failed(err)
	}

	media, err := l.media.CreateMedia(ctx, stored)
	if err != nil {
		log.Err(err).Str("func", "*LocalIntake.Store").Msg("error creating media row")
		if rmErr := l.files.Remove(ctx, stored.FilePath); rmErr != nil {
			log.Err(rmErr).Str("func", "*LocalIntake.Store").Str("path", stored.FilePath).Msg("error removing orphaned file")
		}
		return failed(fmt.Errorf("%w: %w", ErrCreatingMedia, err))
	}

	mediaIDs := []int64{media.ID}

	post, err := l.submissions.CreateSubmission(ctx, models.Submission{
		SubmitterID: submitter.ID,
		Status:      models.StatusPending,
		Description: truncateRunes(strings.TrimSpace(form.Description), l.maxDescriptionLength),
		Provenance:  provenance,
	})
	if err != nil {
		log.Err(err).Str("func", "*LocalIntake.Store").Int64("media_id", media.ID).Msg("error creating submission")
		result := failed(fmt.Errorf("%w: %w", ErrCreatingPost, err))
		result.MediaIDs = mediaIDs
		return result
	}

	if err = l.media.AttachMedia(ctx, media.ID, post.ID); err != nil {
		log.Err(err).Str("func", "*LocalIntake.Store").Int64("post_id", post.ID).Msg("error attaching media")
		result := failed(fmt.Errorf("%w: %w", ErrAttachingMedia, err))
		result.PostID = post.ID
		result.MediaIDs = mediaIDs
		return result
	}

	log.Debug().Int64("post_id", post.ID).Int64("media_id", media.ID).Msg("upload stored")

	return models.IntakeResult{
		Success:  true,
		PostID:   post.ID,
		MediaIDs: mediaIDs,
	}
}

func (l *LocalIntake) storeFile(ctx context.Context, file models.UploadedFile) (models.Media, error) {
	src, err := file.Open()
	if err != nil {
		return models.Media{}, fmt.Errorf("%w: %w", ErrStoringFile, err)
	}
	defer src.Close()

	name := l.names.Generate() + strings.ToLower(filepath.Ext(file.Filename))

	path, size, err := l.files.Save(ctx, name, src)
	if err != nil {
		return models.Media{}, fmt.Errorf("%w: %w", ErrStoringFile, err)
	}

	width, height := l.measure(ctx, path)

	return models.Media{
		FilePath: path,
		MimeType: file.ContentType,
		Size:     size,
		Width:    width,
		Height:   height,
	}, nil
}

// measure returns zero dimensions when the stored file is not a decodable image.
func (l *LocalIntake) measure(ctx context.Context, path string) (int, int) {
	rc, err := l.files.Open(ctx, path)
	if err != nil {
		logger.FromContext(ctx).Err(fmt.Errorf("%w: %w", ErrMeasuringFile, err)).Str("func", "*LocalIntake.measure").Send()
		return 0, 0
	}
	defer rc.Close()

	cfg, _, err := image.DecodeConfig(rc)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("path", path).Msg("stored file is not a decodable image")
		return 0, 0
	}

	return cfg.Width, cfg.Height
}

func failed(err error) models.IntakeResult {
	return models.IntakeResult{Errors: []string{err.Error()}}
}

func truncateRunes(s string, limit int) string {
	if limit <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
