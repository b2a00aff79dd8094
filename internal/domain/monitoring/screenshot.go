package monitoring

import (
	"fmt"
	"strings"
	"time"

	"github.com/AnamulHaqueN/employee-monitoring-saas/internal/domain/shared"
	"github.com/google/uuid"
)

// BucketMinutes is the width of an intra-hour capture bucket
const BucketMinutes = 5

// TimeSlot is the derived placement of a capture within the reporting
// grid: the calendar date, the hour of day and the five-minute bucket
// the capture time falls into. Derivation always happens in UTC so a
// capture maps to the same slot no matter where the server runs.
type TimeSlot struct {
	Date         string // YYYY-MM-DD
	Hour         int    // 0-23
	MinuteBucket int    // 0, 5, 10, ... 55
}

// NewTimeSlot derives the reporting slot for a capture time
func NewTimeSlot(t time.Time) TimeSlot {
	utc := t.UTC()
	return TimeSlot{
		Date:         utc.Format("2006-01-02"),
		Hour:         utc.Hour(),
		MinuteBucket: (utc.Minute() / BucketMinutes) * BucketMinutes,
	}
}

// Label returns the bucket label used in grouped reports, e.g. "14:05"
func (s TimeSlot) Label() string {
	return fmt.Sprintf("%02d:%02d", s.Hour, s.MinuteBucket)
}

// Screenshot represents a single captured desktop image. The binary
// lives in object storage; this aggregate records where it was stored
// and which reporting slot it belongs to.
type Screenshot struct {
	shared.CompanyAggregateRoot
	UserID       uuid.UUID
	StorageKey   string // Object key within the screenshots bucket
	URL          string // Public or presigned URL returned by storage
	ContentType  string
	SizeBytes    int64
	CaptureTime  time.Time
	Date         string // Derived, YYYY-MM-DD in UTC
	Hour         int    // Derived, 0-23
	MinuteBucket int    // Derived, multiple of BucketMinutes
}

// NewScreenshot records an uploaded capture. The caller supplies the
// storage key and URL after the upload has already succeeded; a
// screenshot row must never point at an object that does not exist.
func NewScreenshot(companyID, userID uuid.UUID, storageKey, url, contentType string, sizeBytes int64, captureTime time.Time) (*Screenshot, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER", "User ID cannot be empty")
	}
	if strings.TrimSpace(storageKey) == "" {
		return nil, shared.NewDomainError("INVALID_STORAGE_KEY", "Storage key cannot be empty")
	}
	if strings.TrimSpace(url) == "" {
		return nil, shared.NewDomainError("INVALID_URL", "Storage URL cannot be empty")
	}
	if sizeBytes <= 0 {
		return nil, shared.NewDomainError("INVALID_SIZE", "Screenshot size must be positive")
	}
	if captureTime.IsZero() {
		return nil, shared.NewDomainError("INVALID_CAPTURE_TIME", "Capture time cannot be zero")
	}

	slot := NewTimeSlot(captureTime)

	shot := &Screenshot{
		CompanyAggregateRoot: shared.NewCompanyAggregateRoot(companyID),
		UserID:               userID,
		StorageKey:           storageKey,
		URL:                  url,
		ContentType:          contentType,
		SizeBytes:            sizeBytes,
		CaptureTime:          captureTime.UTC(),
		Date:                 slot.Date,
		Hour:                 slot.Hour,
		MinuteBucket:         slot.MinuteBucket,
	}

	shot.AddDomainEvent(NewScreenshotCapturedEvent(shot))

	return shot, nil
}

// Slot returns the reporting slot this screenshot was filed under
func (s *Screenshot) Slot() TimeSlot {
	return TimeSlot{Date: s.Date, Hour: s.Hour, MinuteBucket: s.MinuteBucket}
}

// BelongsToUser reports whether the screenshot was captured by the given user
func (s *Screenshot) BelongsToUser(userID uuid.UUID) bool {
	return s.UserID == userID
}
