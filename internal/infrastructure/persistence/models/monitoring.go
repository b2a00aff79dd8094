package models

import (
	"time"

	"github.com/AnamulHaqueN/employee-monitoring-saas/internal/domain/monitoring"
	"github.com/google/uuid"
)

// ScreenshotModel is the persistence model for the Screenshot aggregate.
// Date, Hour and MinuteBucket are derived from the capture time at write
// time and indexed so day reports never scan on timestamps.
type ScreenshotModel struct {
	CompanyAggregateModel
	UserID       uuid.UUID `gorm:"type:uuid;not null;index:idx_screenshots_user_date,priority:1"`
	StorageKey   string    `gorm:"type:varchar(500);not null;uniqueIndex"`
	URL          string    `gorm:"type:varchar(1000);not null"`
	ContentType  string    `gorm:"type:varchar(100);not null"`
	SizeBytes    int64     `gorm:"not null"`
	CaptureTime  time.Time `gorm:"not null;index"`
	Date         string    `gorm:"type:varchar(10);not null;index:idx_screenshots_user_date,priority:2"`
	Hour         int       `gorm:"not null"`
	MinuteBucket int       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (ScreenshotModel) TableName() string {
	return "screenshots"
}

// ToDomain converts the persistence model to a domain Screenshot
func (m *ScreenshotModel) ToDomain() *monitoring.Screenshot {
	shot := &monitoring.Screenshot{
		UserID:       m.UserID,
		StorageKey:   m.StorageKey,
		URL:          m.URL,
		ContentType:  m.ContentType,
		SizeBytes:    m.SizeBytes,
		CaptureTime:  m.CaptureTime,
		Date:         m.Date,
		Hour:         m.Hour,
		MinuteBucket: m.MinuteBucket,
	}
	m.PopulateCompanyAggregateRoot(&shot.CompanyAggregateRoot)
	return shot
}

// FromDomain populates the persistence model from a domain Screenshot
func (m *ScreenshotModel) FromDomain(s *monitoring.Screenshot) {
	m.FromDomainCompanyAggregateRoot(s.CompanyAggregateRoot)
	m.UserID = s.UserID
	m.StorageKey = s.StorageKey
	m.URL = s.URL
	m.ContentType = s.ContentType
	m.SizeBytes = s.SizeBytes
	m.CaptureTime = s.CaptureTime
	m.Date = s.Date
	m.Hour = s.Hour
	m.MinuteBucket = s.MinuteBucket
}

// ScreenshotModelFromDomain creates a new persistence model from a domain Screenshot
func ScreenshotModelFromDomain(s *monitoring.Screenshot) *ScreenshotModel {
	m := &ScreenshotModel{}
	m.FromDomain(s)
	return m
}
