package identity

import (
	"strings"
	"time"

	"github.com/AnamulHaqueN/employee-monitoring-saas/internal/domain/shared"
	"github.com/google/uuid"
)

// CompanyStatus represents the status of a company account
type CompanyStatus string

const (
	CompanyStatusActive    CompanyStatus = "active"
	CompanyStatusSuspended CompanyStatus = "suspended" // Suspended due to payment/violation issues
)

// Company represents a customer organization. All employees, owners and
// captured screenshots belong to exactly one company.
type Company struct {
	shared.BaseAggregateRoot
	Name     string        `gorm:"type:varchar(200);not null"`
	Email    string        `gorm:"type:varchar(200);not null;uniqueIndex"`
	Status   CompanyStatus `gorm:"type:varchar(20);not null;default:'active'"`
	PlanID   uuid.UUID     `gorm:"type:uuid;not null;index"`
	Timezone string        `gorm:"type:varchar(64);not null;default:'UTC'"`
}

// TableName returns the table name for GORM
func (Company) TableName() string {
	return "companies"
}

// NewCompany creates a new company subscribed to the given plan
func NewCompany(name, email string, planID uuid.UUID) (*Company, error) {
	if err := validateCompanyName(name); err != nil {
		return nil, err
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if planID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PLAN", "Plan ID cannot be empty")
	}

	company := &Company{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              strings.TrimSpace(name),
		Email:             strings.ToLower(strings.TrimSpace(email)),
		Status:            CompanyStatusActive,
		PlanID:            planID,
		Timezone:          "UTC",
	}

	company.AddDomainEvent(NewCompanyRegisteredEvent(company))

	return company, nil
}

// Rename changes the company name
func (c *Company) Rename(name string) error {
	if err := validateCompanyName(name); err != nil {
		return err
	}

	c.Name = strings.TrimSpace(name)
	c.Touch()
	c.IncrementVersion()

	return nil
}

// ChangePlan moves the company to a different plan
func (c *Company) ChangePlan(planID uuid.UUID) error {
	if planID == uuid.Nil {
		return shared.NewDomainError("INVALID_PLAN", "Plan ID cannot be empty")
	}
	if c.PlanID == planID {
		return shared.NewDomainError("SAME_PLAN", "Company is already on this plan")
	}

	oldPlanID := c.PlanID
	c.PlanID = planID
	c.Touch()
	c.IncrementVersion()

	c.AddDomainEvent(NewCompanyPlanChangedEvent(c, oldPlanID))

	return nil
}

// SetTimezone sets the company's reporting timezone
func (c *Company) SetTimezone(tz string) error {
	if _, err := time.LoadLocation(tz); err != nil {
		return shared.NewDomainError("INVALID_TIMEZONE", "Unknown timezone identifier")
	}

	c.Timezone = tz
	c.Touch()
	c.IncrementVersion()

	return nil
}

// Suspend suspends the company account
func (c *Company) Suspend() error {
	if c.Status == CompanyStatusSuspended {
		return shared.NewDomainError("ALREADY_SUSPENDED", "Company is already suspended")
	}

	c.Status = CompanyStatusSuspended
	c.Touch()
	c.IncrementVersion()

	return nil
}

// Activate reactivates a suspended company
func (c *Company) Activate() error {
	if c.Status == CompanyStatusActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "Company is already active")
	}

	c.Status = CompanyStatusActive
	c.Touch()
	c.IncrementVersion()

	return nil
}

// IsActive returns true if the company account is active
func (c *Company) IsActive() bool {
	return c.Status == CompanyStatusActive
}

func validateCompanyName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_COMPANY_NAME", "Company name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_COMPANY_NAME", "Company name cannot exceed 200 characters")
	}
	return nil
}
