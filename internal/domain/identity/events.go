package identity

import (
	"github.com/AnamulHaqueN/employee-monitoring-saas/internal/domain/shared"
	"github.com/google/uuid"
)

// Identity domain event types
const (
	EventTypeCompanyRegistered   = "CompanyRegistered"
	EventTypeCompanyPlanChanged  = "CompanyPlanChanged"
	EventTypeUserCreated         = "UserCreated"
	EventTypeUserPasswordChanged = "UserPasswordChanged"
	EventTypeUserStatusChanged   = "UserStatusChanged"
)

// CompanyRegisteredEvent is published when a company signs up
type CompanyRegisteredEvent struct {
	shared.BaseDomainEvent
	Name   string    `json:"name"`
	Email  string    `json:"email"`
	PlanID uuid.UUID `json:"plan_id"`
}

// NewCompanyRegisteredEvent creates a new CompanyRegisteredEvent
func NewCompanyRegisteredEvent(company *Company) *CompanyRegisteredEvent {
	return &CompanyRegisteredEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCompanyRegistered, company.ID, company.ID),
		Name:            company.Name,
		Email:           company.Email,
		PlanID:          company.PlanID,
	}
}

// CompanyPlanChangedEvent is published when a company switches plans
type CompanyPlanChangedEvent struct {
	shared.BaseDomainEvent
	OldPlanID uuid.UUID `json:"old_plan_id"`
	NewPlanID uuid.UUID `json:"new_plan_id"`
}

// NewCompanyPlanChangedEvent creates a new CompanyPlanChangedEvent
func NewCompanyPlanChangedEvent(company *Company, oldPlanID uuid.UUID) *CompanyPlanChangedEvent {
	return &CompanyPlanChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCompanyPlanChanged, company.ID, company.ID),
		OldPlanID:       oldPlanID,
		NewPlanID:       company.PlanID,
	}
}

// UserCreatedEvent is published when an owner or employee account is created
type UserCreatedEvent struct {
	shared.BaseDomainEvent
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Role  UserRole `json:"role"`
}

// NewUserCreatedEvent creates a new UserCreatedEvent
func NewUserCreatedEvent(user *User) *UserCreatedEvent {
	return &UserCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeUserCreated, user.ID, user.CompanyID),
		Name:            user.Name,
		Email:           user.Email,
		Role:            user.Role,
	}
}

// UserPasswordChangedEvent is published when a user's password changes
type UserPasswordChangedEvent struct {
	shared.BaseDomainEvent
}

// NewUserPasswordChangedEvent creates a new UserPasswordChangedEvent
func NewUserPasswordChangedEvent(user *User) *UserPasswordChangedEvent {
	return &UserPasswordChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeUserPasswordChanged, user.ID, user.CompanyID),
	}
}

// UserStatusChangedEvent is published when a user's status changes
type UserStatusChangedEvent struct {
	shared.BaseDomainEvent
	OldStatus UserStatus `json:"old_status"`
	NewStatus UserStatus `json:"new_status"`
}

// NewUserStatusChangedEvent creates a new UserStatusChangedEvent
func NewUserStatusChangedEvent(user *User, oldStatus, newStatus UserStatus) *UserStatusChangedEvent {
	return &UserStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeUserStatusChanged, user.ID, user.CompanyID),
		OldStatus:       oldStatus,
		NewStatus:       newStatus,
	}
}
