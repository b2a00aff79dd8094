package monitoring

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ScreenshotRepository defines the interface for screenshot persistence
type ScreenshotRepository interface {
	// Create records a new screenshot
	Create(ctx context.Context, shot *Screenshot) error

	// Delete removes a screenshot record
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByID finds a screenshot by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Screenshot, error)

	// FindByIDForCompany finds a screenshot by ID scoped to a company
	FindByIDForCompany(ctx context.Context, companyID, id uuid.UUID) (*Screenshot, error)

	// FindByUserAndDate returns one employee's screenshots for a calendar
	// date, ordered by capture time ascending
	FindByUserAndDate(ctx context.Context, companyID, userID uuid.UUID, date string) ([]*Screenshot, error)

	// DeleteOlderThan removes records captured before the cutoff for a
	// company and returns how many rows were removed. Used by retention.
	DeleteOlderThan(ctx context.Context, companyID uuid.UUID, cutoff time.Time) (int64, error)
}
