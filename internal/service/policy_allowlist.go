package service

import (
	"context"

	"github.com/MKhiriev/go-photo-gate/models"
)

// SubmitterAllowlist is an [UploadPolicy] that admits only the listed
// submitters.
type SubmitterAllowlist struct {
	ids map[int64]struct{}
}

func NewSubmitterAllowlist(ids []int64) *SubmitterAllowlist {
	set := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return &SubmitterAllowlist{ids: set}
}

func (a *SubmitterAllowlist) AllowsUpload(_ context.Context, submitter models.Submitter) bool {
	_, ok := a.ids[submitter.ID]
	return ok
}

// uploadPolicies builds the configured vetoes. An empty allowlist means
// everyone passes, so no policy is registered for it.
func uploadPolicies(allowed []int64) []UploadPolicy {
	var policies []UploadPolicy
	if len(allowed) > 0 {
		policies = append(policies, NewSubmitterAllowlist(allowed))
	}
	return policies
}
