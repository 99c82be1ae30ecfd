package service

import (
	"context"

	"github.com/MKhiriev/go-photo-gate/models"
)

type noticeService struct {
	reasons      *ReasonChannel
	minDimension int
}

func NewNoticeService(reasons *ReasonChannel, minDimension int) NoticeService {
	return &noticeService{reasons: reasons, minDimension: minDimension}
}

// Notice returns the success message for fu-sent and the rejection message
// for fu-spam. The pending reason is consumed in both cases so that a stale
// reason never shows up on a later rejection.
func (n *noticeService) Notice(ctx context.Context, sessionKey, response string) models.Notice {
	reason, _ := n.reasons.TakeReason(ctx, sessionKey)

	switch response {
	case models.ResponseSent:
		return models.Notice{Response: response, Message: MessageSubmitted}
	case models.ResponseSpam:
		return models.Notice{Response: response, Reason: reason, Message: RejectionMessage(reason, n.minDimension)}
	default:
		return models.Notice{Response: response}
	}
}
