package identity

import (
	"strings"

	"github.com/AnamulHaqueN/employee-monitoring-saas/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// PlanCode identifies a subscription tier
type PlanCode string

const (
	PlanCodeBasic      PlanCode = "basic"
	PlanCodePro        PlanCode = "pro"
	PlanCodeEnterprise PlanCode = "enterprise"
)

// Plan represents a subscription tier that companies sign up for.
// Pricing is per employee per month; MaxEmployees caps how many
// employee accounts a company on this plan may create.
type Plan struct {
	shared.BaseAggregateRoot
	Code             PlanCode        `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name             string          `gorm:"type:varchar(100);not null"`
	PricePerEmployee decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	MaxEmployees     int             `gorm:"not null"`
	RetentionDays    int             `gorm:"not null;default:90"`
	IsActive         bool            `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Plan) TableName() string {
	return "plans"
}

// NewPlan creates a new subscription plan
func NewPlan(code PlanCode, name string, pricePerEmployee decimal.Decimal, maxEmployees, retentionDays int) (*Plan, error) {
	if err := validatePlanCode(code); err != nil {
		return nil, err
	}
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_PLAN_NAME", "Plan name cannot be empty")
	}
	if pricePerEmployee.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PLAN_PRICE", "Price per employee cannot be negative")
	}
	if maxEmployees <= 0 {
		return nil, shared.NewDomainError("INVALID_PLAN_LIMIT", "Max employees must be positive")
	}
	if retentionDays <= 0 {
		return nil, shared.NewDomainError("INVALID_PLAN_RETENTION", "Retention days must be positive")
	}

	return &Plan{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Code:              code,
		Name:              strings.TrimSpace(name),
		PricePerEmployee:  pricePerEmployee,
		MaxEmployees:      maxEmployees,
		RetentionDays:     retentionDays,
		IsActive:          true,
	}, nil
}

// MonthlyCost returns the monthly subscription cost for the given headcount
func (p *Plan) MonthlyCost(employeeCount int) decimal.Decimal {
	if employeeCount <= 0 {
		return decimal.Zero
	}
	return p.PricePerEmployee.Mul(decimal.NewFromInt(int64(employeeCount)))
}

// CanAccommodate reports whether the plan allows the given employee count
func (p *Plan) CanAccommodate(employeeCount int) bool {
	return employeeCount <= p.MaxEmployees
}

// Deactivate retires the plan so new companies cannot subscribe to it
func (p *Plan) Deactivate() error {
	if !p.IsActive {
		return shared.NewDomainError("ALREADY_INACTIVE", "Plan is already inactive")
	}

	p.IsActive = false
	p.Touch()
	p.IncrementVersion()

	return nil
}

func validatePlanCode(code PlanCode) error {
	switch code {
	case PlanCodeBasic, PlanCodePro, PlanCodeEnterprise:
		return nil
	default:
		return shared.NewDomainError("INVALID_PLAN_CODE", "Unknown plan code")
	}
}
