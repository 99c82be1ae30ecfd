package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-photo-gate/internal/store"
	"github.com/MKhiriev/go-photo-gate/internal/utils"
	"github.com/MKhiriev/go-photo-gate/models"
)

// HashRegistry fingerprints uploaded files and looks fingerprints up among
// the existing pending and accepted submissions.
type HashRegistry struct {
	submissions store.SubmissionRepository
}

func NewHashRegistry(submissions store.SubmissionRepository) *HashRegistry {
	return &HashRegistry{submissions: submissions}
}

// Fingerprint returns the BLAKE2b-256 hex digest of the first file of req.
// The digest is computed once per request; later calls return the memoized
// value without reading the file again.
func (h *HashRegistry) Fingerprint(req *UploadRequest) (string, error) {
	if req.hashed {
		return req.fingerprint, nil
	}

	file, ok := req.Form.FirstFile()
	if !ok || file.Empty() {
		return "", ErrNoFileToFingerprint
	}

	rc, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrFingerprinting, err)
	}
	defer rc.Close()

	sum, err := utils.HashReader(rc)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrFingerprinting, err)
	}

	req.fingerprint = sum
	req.hashed = true
	return sum, nil
}

// Exists reports whether a pending or accepted submission carries hash.
func (h *HashRegistry) Exists(ctx context.Context, hash string) (bool, error) {
	exists, err := h.submissions.ExistsByHash(ctx, hash, models.DedupStatuses)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrLookingUpHash, err)
	}
	return exists, nil
}
