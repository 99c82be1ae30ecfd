package service

import (
	"context"

	"github.com/MKhiriev/go-photo-gate/internal/adapter"
	"github.com/MKhiriev/go-photo-gate/internal/logger"
	"github.com/MKhiriev/go-photo-gate/models"
)

// EligibilityGate decides whether a submitter may upload at all. It never
// fails: any unavailable dependency makes the submitter ineligible.
type EligibilityGate struct {
	killswitch bool
	intake     Intake
	classifier adapter.ClassifierAdapter
	policies   []UploadPolicy
}

func NewEligibilityGate(killswitch bool, intake Intake, classifier adapter.ClassifierAdapter, policies ...UploadPolicy) *EligibilityGate {
	return &EligibilityGate{
		killswitch: killswitch,
		intake:     intake,
		classifier: classifier,
		policies:   policies,
	}
}

// Accepting reports whether the service takes uploads from anyone at all:
// the killswitch is off and both intake and classifier are reachable.
func (g *EligibilityGate) Accepting(ctx context.Context) bool {
	return !g.killswitch && g.intake.Available(ctx) && g.classifier.Available(ctx)
}

// CanUpload checks, in order, the killswitch, the blocked flag, intake
// availability, classifier availability and finally every registered
// policy. The first failing check wins.
func (g *EligibilityGate) CanUpload(ctx context.Context, submitter models.Submitter) bool {
	log := logger.FromContext(ctx)

	if g.killswitch {
		log.Debug().Msg("uploads disabled by killswitch")
		return false
	}

	if submitter.Blocked {
		log.Debug().Int64("submitter_id", submitter.ID).Msg("submitter is blocked")
		return false
	}

	if !g.intake.Available(ctx) {
		log.Warn().Msg("intake is unavailable")
		return false
	}

	if !g.classifier.Available(ctx) {
		log.Warn().Msg("classifier is unavailable")
		return false
	}

	for _, p := range g.policies {
		if !p.AllowsUpload(ctx, submitter) {
			log.Debug().Int64("submitter_id", submitter.ID).Msg("upload vetoed by policy")
			return false
		}
	}

	return true
}
