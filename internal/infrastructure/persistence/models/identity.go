package models

import (
	"time"

	"github.com/AnamulHaqueN/employee-monitoring-saas/internal/domain/identity"
	"github.com/AnamulHaqueN/employee-monitoring-saas/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CompanyModel is the persistence model for the Company aggregate.
type CompanyModel struct {
	AggregateModel
	Name     string                 `gorm:"type:varchar(200);not null"`
	Email    string                 `gorm:"type:varchar(200);not null;uniqueIndex"`
	Status   identity.CompanyStatus `gorm:"type:varchar(20);not null;default:'active'"`
	PlanID   uuid.UUID              `gorm:"type:uuid;not null;index"`
	Timezone string                 `gorm:"type:varchar(64);not null;default:'UTC'"`
}

// TableName returns the table name for GORM
func (CompanyModel) TableName() string {
	return "companies"
}

// ToDomain converts the persistence model to a domain Company
func (m *CompanyModel) ToDomain() *identity.Company {
	company := &identity.Company{
		BaseAggregateRoot: shared.BaseAggregateRoot{
			BaseEntity: m.BaseModel.ToDomain(),
			Version:    m.Version,
		},
		Name:     m.Name,
		Email:    m.Email,
		Status:   m.Status,
		PlanID:   m.PlanID,
		Timezone: m.Timezone,
	}
	return company
}

// FromDomain populates the persistence model from a domain Company
func (m *CompanyModel) FromDomain(c *identity.Company) {
	m.FromDomainAggregateRoot(c.BaseAggregateRoot)
	m.Name = c.Name
	m.Email = c.Email
	m.Status = c.Status
	m.PlanID = c.PlanID
	m.Timezone = c.Timezone
}

// CompanyModelFromDomain creates a new persistence model from a domain Company
func CompanyModelFromDomain(c *identity.Company) *CompanyModel {
	m := &CompanyModel{}
	m.FromDomain(c)
	return m
}

// PlanModel is the persistence model for the Plan aggregate.
type PlanModel struct {
	AggregateModel
	Code             identity.PlanCode `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name             string            `gorm:"type:varchar(100);not null"`
	PricePerEmployee decimal.Decimal   `gorm:"type:decimal(10,2);not null"`
	MaxEmployees     int               `gorm:"not null"`
	RetentionDays    int               `gorm:"not null;default:90"`
	IsActive         bool              `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (PlanModel) TableName() string {
	return "plans"
}

// ToDomain converts the persistence model to a domain Plan
func (m *PlanModel) ToDomain() *identity.Plan {
	return &identity.Plan{
		BaseAggregateRoot: shared.BaseAggregateRoot{
			BaseEntity: m.BaseModel.ToDomain(),
			Version:    m.Version,
		},
		Code:             m.Code,
		Name:             m.Name,
		PricePerEmployee: m.PricePerEmployee,
		MaxEmployees:     m.MaxEmployees,
		RetentionDays:    m.RetentionDays,
		IsActive:         m.IsActive,
	}
}

// FromDomain populates the persistence model from a domain Plan
func (m *PlanModel) FromDomain(p *identity.Plan) {
	m.FromDomainAggregateRoot(p.BaseAggregateRoot)
	m.Code = p.Code
	m.Name = p.Name
	m.PricePerEmployee = p.PricePerEmployee
	m.MaxEmployees = p.MaxEmployees
	m.RetentionDays = p.RetentionDays
	m.IsActive = p.IsActive
}

// PlanModelFromDomain creates a new persistence model from a domain Plan
func PlanModelFromDomain(p *identity.Plan) *PlanModel {
	m := &PlanModel{}
	m.FromDomain(p)
	return m
}

// UserModel is the persistence model for the User aggregate.
type UserModel struct {
	CompanyAggregateModel
	Name           string              `gorm:"type:varchar(100);not null"`
	Email          string              `gorm:"type:varchar(200);not null;uniqueIndex"`
	PasswordHash   string              `gorm:"type:varchar(255);not null"`
	Role           identity.UserRole   `gorm:"type:varchar(20);not null"`
	Status         identity.UserStatus `gorm:"type:varchar(20);not null;default:'active'"`
	Position       string              `gorm:"type:varchar(100)"`
	LastLoginAt    *time.Time          `gorm:"index"`
	LastLoginIP    string              `gorm:"type:varchar(45)"`
	FailedAttempts int                 `gorm:"not null;default:0"`
	LockedUntil    *time.Time
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the persistence model to a domain User
func (m *UserModel) ToDomain() *identity.User {
	user := &identity.User{
		Name:           m.Name,
		Email:          m.Email,
		PasswordHash:   m.PasswordHash,
		Role:           m.Role,
		Status:         m.Status,
		Position:       m.Position,
		LastLoginAt:    m.LastLoginAt,
		LastLoginIP:    m.LastLoginIP,
		FailedAttempts: m.FailedAttempts,
		LockedUntil:    m.LockedUntil,
	}
	m.PopulateCompanyAggregateRoot(&user.CompanyAggregateRoot)
	return user
}

// FromDomain populates the persistence model from a domain User
func (m *UserModel) FromDomain(u *identity.User) {
	m.FromDomainCompanyAggregateRoot(u.CompanyAggregateRoot)
	m.Name = u.Name
	m.Email = u.Email
	m.PasswordHash = u.PasswordHash
	m.Role = u.Role
	m.Status = u.Status
	m.Position = u.Position
	m.LastLoginAt = u.LastLoginAt
	m.LastLoginIP = u.LastLoginIP
	m.FailedAttempts = u.FailedAttempts
	m.LockedUntil = u.LockedUntil
}

// UserModelFromDomain creates a new persistence model from a domain User
func UserModelFromDomain(u *identity.User) *UserModel {
	m := &UserModel{}
	m.FromDomain(u)
	return m
}
