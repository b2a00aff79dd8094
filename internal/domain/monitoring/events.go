package monitoring

import (
	"time"

	"github.com/AnamulHaqueN/employee-monitoring-saas/internal/domain/shared"
	"github.com/google/uuid"
)

// Monitoring domain event types
const (
	EventTypeScreenshotCaptured = "ScreenshotCaptured"
	EventTypeScreenshotDeleted  = "ScreenshotDeleted"
)

// ScreenshotCapturedEvent is published when an upload is recorded
type ScreenshotCapturedEvent struct {
	shared.BaseDomainEvent
	UserID      uuid.UUID `json:"user_id"`
	StorageKey  string    `json:"storage_key"`
	CaptureTime time.Time `json:"capture_time"`
}

// NewScreenshotCapturedEvent creates a new ScreenshotCapturedEvent
func NewScreenshotCapturedEvent(shot *Screenshot) *ScreenshotCapturedEvent {
	return &ScreenshotCapturedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeScreenshotCaptured, shot.ID, shot.CompanyID),
		UserID:          shot.UserID,
		StorageKey:      shot.StorageKey,
		CaptureTime:     shot.CaptureTime,
	}
}

// ScreenshotDeletedEvent is published when a screenshot record is removed
type ScreenshotDeletedEvent struct {
	shared.BaseDomainEvent
	UserID     uuid.UUID `json:"user_id"`
	StorageKey string    `json:"storage_key"`
}

// NewScreenshotDeletedEvent creates a new ScreenshotDeletedEvent
func NewScreenshotDeletedEvent(shot *Screenshot) *ScreenshotDeletedEvent {
	return &ScreenshotDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeScreenshotDeleted, shot.ID, shot.CompanyID),
		UserID:          shot.UserID,
		StorageKey:      shot.StorageKey,
	}
}
