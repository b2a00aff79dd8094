package identity

import (
	"context"

	"github.com/google/uuid"
)

// PlanRepository defines the interface for plan persistence
type PlanRepository interface {
	// FindByID finds a plan by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Plan, error)

	// FindByCode finds a plan by its unique code
	FindByCode(ctx context.Context, code PlanCode) (*Plan, error)

	// FindAllActive returns all plans open for subscription
	FindAllActive(ctx context.Context) ([]*Plan, error)

	// Save creates or updates a plan
	Save(ctx context.Context, plan *Plan) error
}
