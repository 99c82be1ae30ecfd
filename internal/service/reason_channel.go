package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-photo-gate/internal/logger"
	"github.com/MKhiriev/go-photo-gate/internal/store"
	"github.com/MKhiriev/go-photo-gate/models"
)

// ReasonChannel hands a rejection reason from the submitting request to the
// request that renders the result page. A reason is readable once; a newer
// reason replaces an unread older one.
type ReasonChannel struct {
	reasons store.ReasonStore
	ttl     time.Duration
	now     func() time.Time
}

func NewReasonChannel(reasons store.ReasonStore, ttl time.Duration) *ReasonChannel {
	return &ReasonChannel{reasons: reasons, ttl: ttl, now: time.Now}
}

// ReasonSessionKey binds a browser session to a submitter so that a reason
// written for one submitter is never read by another.
func ReasonSessionKey(submitterID int64, sessionID string) string {
	if sessionID == "" {
		return ""
	}
	return strconv.FormatInt(submitterID, 10) + ":" + sessionID
}

// SetReason stores reason for sessionKey. ReasonNone is never stored.
func (c *ReasonChannel) SetReason(ctx context.Context, sessionKey string, reason models.RejectionReason) error {
	if !reason.Valid() {
		return nil
	}
	if sessionKey == "" {
		return ErrNoSessionKey
	}

	if err := c.reasons.PutReason(ctx, sessionKey, reason, c.now().Add(c.ttl)); err != nil {
		return fmt.Errorf("%w: %w", ErrStoringReason, err)
	}
	return nil
}

// TakeReason returns and clears the pending reason of sessionKey. A missing,
// expired or unreadable reason yields false.
func (c *ReasonChannel) TakeReason(ctx context.Context, sessionKey string) (models.RejectionReason, bool) {
	if sessionKey == "" {
		return models.ReasonNone, false
	}

	reason, err := c.reasons.TakeReason(ctx, sessionKey, c.now())
	if errors.Is(err, store.ErrReasonNotFound) {
		return models.ReasonNone, false
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*ReasonChannel.TakeReason").Msg("error reading rejection reason")
		return models.ReasonNone, false
	}

	return reason, true
}

// PurgeExpired removes expired reasons and reports how many were removed.
func (c *ReasonChannel) PurgeExpired(ctx context.Context) (int64, error) {
	return c.reasons.PurgeExpired(ctx, c.now())
}
