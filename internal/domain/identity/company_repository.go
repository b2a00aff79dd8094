package identity

import (
	"context"

	"github.com/google/uuid"
)

// CompanyRepository defines the interface for company persistence
type CompanyRepository interface {
	// FindByID finds a company by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Company, error)

	// FindByEmail finds a company by its contact email
	FindByEmail(ctx context.Context, email string) (*Company, error)

	// Save creates or updates a company
	Save(ctx context.Context, company *Company) error

	// Delete deletes a company
	Delete(ctx context.Context, id uuid.UUID) error

	// FindAll returns every registered company. Used by background jobs
	// such as the retention sweeper.
	FindAll(ctx context.Context) ([]*Company, error)

	// ExistsByEmail checks if a company with the given email exists
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// CountByPlan counts companies subscribed to a plan
	CountByPlan(ctx context.Context, planID uuid.UUID) (int64, error)
}
