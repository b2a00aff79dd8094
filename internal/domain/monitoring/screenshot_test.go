package monitoring

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeSlot(t *testing.T) {
	t.Run("derives date, hour and bucket in UTC", func(t *testing.T) {
		capture := time.Date(2026, 3, 14, 9, 27, 45, 0, time.UTC)

		slot := NewTimeSlot(capture)

		assert.Equal(t, "2026-03-14", slot.Date)
		assert.Equal(t, 9, slot.Hour)
		assert.Equal(t, 25, slot.MinuteBucket)
	})

	t.Run("floors minute to bucket boundary", func(t *testing.T) {
		cases := []struct {
			minute int
			bucket int
		}{
			{0, 0},
			{4, 0},
			{5, 5},
			{9, 5},
			{10, 10},
			{59, 55},
		}
		for _, tc := range cases {
			slot := NewTimeSlot(time.Date(2026, 1, 1, 12, tc.minute, 0, 0, time.UTC))
			assert.Equal(t, tc.bucket, slot.MinuteBucket, "minute %d", tc.minute)
		}
	})

	t.Run("converts non-UTC times before deriving", func(t *testing.T) {
		// 23:30 at UTC-5 is 04:30 the next day in UTC
		loc := time.FixedZone("EST", -5*3600)
		capture := time.Date(2026, 3, 14, 23, 30, 0, 0, loc)

		slot := NewTimeSlot(capture)

		assert.Equal(t, "2026-03-15", slot.Date)
		assert.Equal(t, 4, slot.Hour)
		assert.Equal(t, 30, slot.MinuteBucket)
	})

	t.Run("label is zero padded", func(t *testing.T) {
		slot := NewTimeSlot(time.Date(2026, 1, 1, 8, 7, 0, 0, time.UTC))
		assert.Equal(t, "08:05", slot.Label())
	})
}

func TestNewScreenshot(t *testing.T) {
	companyID := uuid.New()
	userID := uuid.New()
	capture := time.Date(2026, 3, 14, 9, 27, 0, 0, time.UTC)

	t.Run("records upload with derived slot", func(t *testing.T) {
		shot, err := NewScreenshot(companyID, userID, "screenshots/abc.png", "https://cdn.example.com/abc.png", "image/png", 2048, capture)

		require.NoError(t, err)
		assert.Equal(t, companyID, shot.CompanyID)
		assert.Equal(t, userID, shot.UserID)
		assert.Equal(t, "2026-03-14", shot.Date)
		assert.Equal(t, 9, shot.Hour)
		assert.Equal(t, 25, shot.MinuteBucket)
		assert.Equal(t, capture, shot.CaptureTime)

		events := shot.GetDomainEvents()
		assert.Len(t, events, 1)
		_, ok := events[0].(*ScreenshotCapturedEvent)
		assert.True(t, ok)
	})

	t.Run("fails with empty storage key", func(t *testing.T) {
		_, err := NewScreenshot(companyID, userID, "", "https://cdn.example.com/abc.png", "image/png", 2048, capture)
		assert.Error(t, err)
	})

	t.Run("fails with zero size", func(t *testing.T) {
		_, err := NewScreenshot(companyID, userID, "screenshots/abc.png", "https://cdn.example.com/abc.png", "image/png", 0, capture)
		assert.Error(t, err)
	})

	t.Run("fails with zero capture time", func(t *testing.T) {
		_, err := NewScreenshot(companyID, userID, "screenshots/abc.png", "https://cdn.example.com/abc.png", "image/png", 2048, time.Time{})
		assert.Error(t, err)
	})

	t.Run("fails with nil user", func(t *testing.T) {
		_, err := NewScreenshot(companyID, uuid.Nil, "screenshots/abc.png", "https://cdn.example.com/abc.png", "image/png", 2048, capture)
		assert.Error(t, err)
	})
}

func TestScreenshotBelongsToUser(t *testing.T) {
	userID := uuid.New()
	shot, err := NewScreenshot(uuid.New(), userID, "screenshots/abc.png", "https://cdn.example.com/abc.png", "image/png", 2048, time.Now())
	require.NoError(t, err)

	assert.True(t, shot.BelongsToUser(userID))
	assert.False(t, shot.BelongsToUser(uuid.New()))
}
