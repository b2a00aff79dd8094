package identity

import (
	"context"

	"github.com/google/uuid"
)

// UserRepository is the persistence port for owner and employee
// accounts. Lookups that take a companyID are tenant-scoped; FindByEmail
// and ExistsByEmail search across companies because emails are unique
// system-wide.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id uuid.UUID) error

	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByIDForCompany(ctx context.Context, companyID, id uuid.UUID) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)

	// FindAllForCompany returns the company's users matching the filter
	// along with the unpaginated total.
	FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter UserFilter) ([]*User, int64, error)

	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// CountEmployees counts employee accounts for a company, active or
	// not. Plan seat limits count every seat, not just active ones.
	CountEmployees(ctx context.Context, companyID uuid.UUID) (int64, error)
}

// UserFilter narrows and pages FindAllForCompany. Build it with
// NewUserFilter and the With* chain.
type UserFilter struct {
	Keyword string // matches name or email
	Role    *UserRole
	Status  *UserStatus

	Page     int
	PageSize int

	SortBy    string
	SortOrder string // "asc" or "desc"
}

func NewUserFilter() UserFilter {
	return UserFilter{
		Page:      1,
		PageSize:  20,
		SortBy:    "created_at",
		SortOrder: "desc",
	}
}

func (f UserFilter) WithKeyword(keyword string) UserFilter {
	f.Keyword = keyword
	return f
}

func (f UserFilter) WithRole(role UserRole) UserFilter {
	f.Role = &role
	return f
}

func (f UserFilter) WithStatus(status UserStatus) UserFilter {
	f.Status = &status
	return f
}

func (f UserFilter) WithPagination(page, pageSize int) UserFilter {
	f.Page = page
	f.PageSize = pageSize
	return f
}

// Offset returns the row offset implied by Page and Limit.
func (f UserFilter) Offset() int {
	if f.Page <= 0 {
		return 0
	}
	return (f.Page - 1) * f.Limit()
}

// Limit clamps PageSize into [1, 100] with 20 as the fallback.
func (f UserFilter) Limit() int {
	if f.PageSize <= 0 {
		return 20
	}
	if f.PageSize > 100 {
		return 100
	}
	return f.PageSize
}
