package monitoring

import (
	"io"
	"time"

	"github.com/google/uuid"
)

// UploadScreenshotInput contains the input for a screenshot upload
type UploadScreenshotInput struct {
	CompanyID   uuid.UUID
	UserID      uuid.UUID
	ContentType string
	SizeBytes   int64
	CaptureTime time.Time
	Body        io.Reader
}

// ScreenshotInfo is the application-facing view of a stored screenshot
type ScreenshotInfo struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	URL          string    `json:"url"`
	ContentType  string    `json:"content_type"`
	SizeBytes    int64     `json:"size_bytes"`
	CaptureTime  time.Time `json:"capture_time"`
	Date         string    `json:"date"`
	Hour         int       `json:"hour"`
	MinuteBucket int       `json:"minute_bucket"`
}

// DayReportResult groups a user's screenshots for one day by hour and
// five-minute bucket. Hour keys are 0-23; bucket keys are the numeric
// minute values 0,5,...,55.
type DayReportResult struct {
	UserID     uuid.UUID                        `json:"user_id"`
	Date       string                           `json:"date"`
	Hours      map[int]map[int][]ScreenshotInfo `json:"hours"`
	Statistics DayStatisticsResult              `json:"statistics"`
}

// DayStatisticsResult summarizes one user-day of activity
type DayStatisticsResult struct {
	TotalScreenshots int        `json:"total_screenshots"`
	HoursActive      int        `json:"hours_active"`
	FirstScreenshot  *time.Time `json:"first_screenshot,omitempty"`
	LastScreenshot   *time.Time `json:"last_screenshot,omitempty"`
}

// HourCountResult is one bar of the per-hour histogram
type HourCountResult struct {
	Hour  int `json:"hour"`
	Count int `json:"count"`
}

// GetReportInput identifies the user-day being queried
type GetReportInput struct {
	CompanyID   uuid.UUID
	RequesterID uuid.UUID
	OwnerView   bool
	UserID      uuid.UUID
	Date        string
}

// DeleteScreenshotInput identifies the screenshot being removed
type DeleteScreenshotInput struct {
	CompanyID    uuid.UUID
	ScreenshotID uuid.UUID
}

// DownloadURLInput identifies the screenshot a caller wants a signed
// link for
type DownloadURLInput struct {
	CompanyID    uuid.UUID
	RequesterID  uuid.UUID
	OwnerView    bool
	ScreenshotID uuid.UUID
}

// DownloadURLResult carries a presigned link and its expiry
type DownloadURLResult struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}
