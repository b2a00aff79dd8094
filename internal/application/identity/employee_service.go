package identity

import (
	"context"

	"github.com/AnamulHaqueN/employee-monitoring-saas/internal/domain/identity"
	"github.com/AnamulHaqueN/employee-monitoring-saas/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// EmployeeService handles employee account management for company owners
type EmployeeService struct {
	userRepo    identity.UserRepository
	companyRepo identity.CompanyRepository
	planRepo    identity.PlanRepository
	logger      *zap.Logger
}

// NewEmployeeService creates a new employee service
func NewEmployeeService(
	userRepo identity.UserRepository,
	companyRepo identity.CompanyRepository,
	planRepo identity.PlanRepository,
	logger *zap.Logger,
) *EmployeeService {
	return &EmployeeService{
		userRepo:    userRepo,
		companyRepo: companyRepo,
		planRepo:    planRepo,
		logger:      logger,
	}
}

// Create adds a new employee account, enforcing the plan's headcount limit
func (s *EmployeeService) Create(ctx context.Context, input CreateEmployeeInput) (*UserInfo, error) {
	s.logger.Info("Creating employee",
		zap.String("company_id", input.CompanyID.String()),
		zap.String("email", input.Email))

	company, err := s.companyRepo.FindByID(ctx, input.CompanyID)
	if err != nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Company not found")
	}

	plan, err := s.planRepo.FindByID(ctx, company.PlanID)
	if err != nil {
		s.logger.Error("Failed to load company plan", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load subscription plan")
	}

	count, err := s.userRepo.CountEmployees(ctx, input.CompanyID)
	if err != nil {
		s.logger.Error("Failed to count employees", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to check employee count")
	}
	if !plan.CanAccommodate(int(count) + 1) {
		s.logger.Warn("Employee limit reached",
			zap.String("company_id", input.CompanyID.String()),
			zap.Int("limit", plan.MaxEmployees))
		return nil, shared.ErrLimitExceeded
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		s.logger.Error("Failed to check email existence", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to check email availability")
	}
	if exists {
		return nil, shared.NewDomainError("EMAIL_EXISTS", "An account with this email already exists")
	}

	employee, err := identity.NewEmployee(input.CompanyID, input.Name, input.Email, input.Password)
	if err != nil {
		return nil, err
	}
	if input.Position != "" {
		if err := employee.SetPosition(input.Position); err != nil {
			return nil, err
		}
	}

	if err := s.userRepo.Create(ctx, employee); err != nil {
		s.logger.Error("Failed to save employee", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create employee")
	}

	s.logger.Info("Employee created",
		zap.String("employee_id", employee.ID.String()),
		zap.String("company_id", input.CompanyID.String()))

	info := userToInfo(employee)
	return &info, nil
}

// Get returns a single employee scoped to the company
func (s *EmployeeService) Get(ctx context.Context, companyID, id uuid.UUID) (*UserInfo, error) {
	user, err := s.userRepo.FindByIDForCompany(ctx, companyID, id)
	if err != nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Employee not found")
	}
	if !user.IsEmployee() {
		return nil, shared.NewDomainError("NOT_FOUND", "Employee not found")
	}

	info := userToInfo(user)
	return &info, nil
}

// Update modifies an employee's profile or active status
func (s *EmployeeService) Update(ctx context.Context, input UpdateEmployeeInput) (*UserInfo, error) {
	user, err := s.userRepo.FindByIDForCompany(ctx, input.CompanyID, input.ID)
	if err != nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Employee not found")
	}
	if !user.IsEmployee() {
		return nil, shared.NewDomainError("NOT_FOUND", "Employee not found")
	}

	if input.Name != nil {
		if err := user.SetName(*input.Name); err != nil {
			return nil, err
		}
	}
	if input.Email != nil && *input.Email != user.Email {
		exists, err := s.userRepo.ExistsByEmail(ctx, *input.Email)
		if err != nil {
			s.logger.Error("Failed to check email existence", zap.Error(err))
			return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to check email availability")
		}
		if exists {
			return nil, shared.NewDomainError("EMAIL_EXISTS", "An account with this email already exists")
		}
		if err := user.SetEmail(*input.Email); err != nil {
			return nil, err
		}
	}
	if input.Position != nil {
		if err := user.SetPosition(*input.Position); err != nil {
			return nil, err
		}
	}
	if input.Active != nil {
		if *input.Active && !user.IsActive() {
			if err := user.Activate(); err != nil {
				return nil, err
			}
		}
		if !*input.Active && user.IsActive() {
			if err := user.Deactivate(); err != nil {
				return nil, err
			}
		}
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		s.logger.Error("Failed to update employee", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update employee")
	}

	info := userToInfo(user)
	return &info, nil
}

// Delete removes an employee account. Their screenshot history is kept;
// rows reference the user by ID only.
func (s *EmployeeService) Delete(ctx context.Context, companyID, id uuid.UUID) error {
	user, err := s.userRepo.FindByIDForCompany(ctx, companyID, id)
	if err != nil {
		return shared.NewDomainError("NOT_FOUND", "Employee not found")
	}
	if !user.IsEmployee() {
		return shared.NewDomainError("FORBIDDEN", "Owner accounts cannot be deleted")
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		s.logger.Error("Failed to delete employee", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to delete employee")
	}

	s.logger.Info("Employee deleted",
		zap.String("employee_id", id.String()),
		zap.String("company_id", companyID.String()))

	return nil
}

// List returns the company's employees with pagination and search
func (s *EmployeeService) List(ctx context.Context, input ListEmployeesInput) (*EmployeeListResult, error) {
	filter := identity.NewUserFilter().
		WithRole(identity.RoleEmployee).
		WithKeyword(input.Keyword).
		WithPagination(input.Page, input.PageSize)
	if input.Status != "" {
		filter = filter.WithStatus(identity.UserStatus(input.Status))
	}

	users, total, err := s.userRepo.FindAllForCompany(ctx, input.CompanyID, filter)
	if err != nil {
		s.logger.Error("Failed to list employees", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list employees")
	}

	employees := make([]UserInfo, 0, len(users))
	for _, u := range users {
		employees = append(employees, userToInfo(u))
	}

	page := filter.Page
	pageSize := filter.Limit()
	totalPages := int(total) / pageSize
	if int(total)%pageSize > 0 {
		totalPages++
	}

	return &EmployeeListResult{
		Employees:  employees,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}
