package identity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RegisterCompanyInput contains the input for company signup
type RegisterCompanyInput struct {
	CompanyName string
	Email       string
	OwnerName   string
	Password    string
	PlanCode    string
	IP          string
}

// RegisterCompanyResult contains the result of a successful signup
type RegisterCompanyResult struct {
	Company CompanyInfo
	User    UserInfo
	Tokens  TokenInfo
}

// LoginInput contains the input for user login
type LoginInput struct {
	Email    string
	Password string
	IP       string // Client IP for login tracking
}

// LoginResult contains the result of a successful login
type LoginResult struct {
	Tokens TokenInfo
	User   UserInfo
}

// TokenInfo carries an issued token pair
type TokenInfo struct {
	AccessToken           string
	RefreshToken          string
	AccessTokenExpiresAt  time.Time
	RefreshTokenExpiresAt time.Time
	TokenType             string
}

// UserInfo contains basic user information returned after login
type UserInfo struct {
	ID          uuid.UUID
	CompanyID   uuid.UUID
	Name        string
	Email       string
	Role        string
	Position    string
	Status      string
	LastLoginAt *time.Time
	CreatedAt   time.Time
}

// CompanyInfo contains basic company information
type CompanyInfo struct {
	ID       uuid.UUID
	Name     string
	Email    string
	Status   string
	PlanID   uuid.UUID
	Timezone string
}

// PlanInfo describes a subscription plan
type PlanInfo struct {
	ID               uuid.UUID       `json:"id"`
	Code             string          `json:"code"`
	Name             string          `json:"name"`
	PricePerEmployee decimal.Decimal `json:"price_per_employee"`
	MaxEmployees     int             `json:"max_employees"`
	RetentionDays    int             `json:"retention_days"`
}

// RefreshTokenInput contains the input for token refresh
type RefreshTokenInput struct {
	RefreshToken string
}

// LogoutInput contains the input for user logout
type LogoutInput struct {
	UserID      uuid.UUID
	TokenJTI    string
	ExpiresAt   time.Time
	AllSessions bool // Revoke every session, not just this token
}

// ChangePasswordInput contains the input for password change
type ChangePasswordInput struct {
	UserID      uuid.UUID
	OldPassword string
	NewPassword string
}

// GetCurrentUserInput contains the input for fetching the caller's profile
type GetCurrentUserInput struct {
	UserID    uuid.UUID
	CompanyID uuid.UUID
}

// CurrentUserResult contains the caller's profile
type CurrentUserResult struct {
	User    UserInfo
	Company CompanyInfo
}

// CreateEmployeeInput contains input for creating an employee account
type CreateEmployeeInput struct {
	CompanyID uuid.UUID
	Name      string
	Email     string
	Password  string
	Position  string
}

// UpdateEmployeeInput contains input for updating an employee account
type UpdateEmployeeInput struct {
	CompanyID uuid.UUID
	ID        uuid.UUID
	Name      *string
	Email     *string
	Position  *string
	Active    *bool
}

// ListEmployeesInput contains filter options for listing employees
type ListEmployeesInput struct {
	CompanyID uuid.UUID
	Keyword   string
	Status    string
	Page      int
	PageSize  int
}

// EmployeeListResult represents a paginated employee list
type EmployeeListResult struct {
	Employees  []UserInfo `json:"employees"`
	Total      int64      `json:"total"`
	Page       int        `json:"page"`
	PageSize   int        `json:"page_size"`
	TotalPages int        `json:"total_pages"`
}
