package identity

import (
	"context"
	"errors"
	"testing"

	"github.com/AnamulHaqueN/employee-monitoring-saas/internal/domain/identity"
	"github.com/AnamulHaqueN/employee-monitoring-saas/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// Helper function to create a test employee
func createTestEmployee(companyID uuid.UUID) *identity.User {
	user, _ := identity.NewEmployee(companyID, "Jane Doe", "jane@acme.test", "Password123")
	return user
}

func createEmployeeService(userRepo *MockUserRepository, companyRepo *MockCompanyRepository, planRepo *MockPlanRepository) *EmployeeService {
	return NewEmployeeService(userRepo, companyRepo, planRepo, zap.NewNop())
}

func TestEmployeeService_Create_Success(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)
	companyRepo := new(MockCompanyRepository)
	planRepo := new(MockPlanRepository)

	plan := createTestPlan()
	company := createTestCompany(plan.ID)

	companyRepo.On("FindByID", ctx, company.ID).Return(company, nil)
	planRepo.On("FindByID", ctx, plan.ID).Return(plan, nil)
	userRepo.On("CountEmployees", ctx, company.ID).Return(int64(3), nil)
	userRepo.On("ExistsByEmail", ctx, "jane@acme.test").Return(false, nil)
	userRepo.On("Create", ctx, mock.AnythingOfType("*identity.User")).Return(nil)

	service := createEmployeeService(userRepo, companyRepo, planRepo)

	result, err := service.Create(ctx, CreateEmployeeInput{
		CompanyID: company.ID,
		Name:      "Jane Doe",
		Email:     "jane@acme.test",
		Password:  "Password123",
		Position:  "Designer",
	})

	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", result.Name)
	assert.Equal(t, "employee", result.Role)
	assert.Equal(t, "Designer", result.Position)
	assert.Equal(t, company.ID, result.CompanyID)

	userRepo.AssertExpectations(t)
	planRepo.AssertExpectations(t)
}

func TestEmployeeService_Create_PlanLimitReached(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)
	companyRepo := new(MockCompanyRepository)
	planRepo := new(MockPlanRepository)

	plan := createTestPlan() // allows 10 employees
	company := createTestCompany(plan.ID)

	companyRepo.On("FindByID", ctx, company.ID).Return(company, nil)
	planRepo.On("FindByID", ctx, plan.ID).Return(plan, nil)
	userRepo.On("CountEmployees", ctx, company.ID).Return(int64(10), nil)

	service := createEmployeeService(userRepo, companyRepo, planRepo)

	result, err := service.Create(ctx, CreateEmployeeInput{
		CompanyID: company.ID,
		Name:      "One Too Many",
		Email:     "extra@acme.test",
		Password:  "Password123",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	var domainErr *shared.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "LIMIT_EXCEEDED", domainErr.Code)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestEmployeeService_Create_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)
	companyRepo := new(MockCompanyRepository)
	planRepo := new(MockPlanRepository)

	plan := createTestPlan()
	company := createTestCompany(plan.ID)

	companyRepo.On("FindByID", ctx, company.ID).Return(company, nil)
	planRepo.On("FindByID", ctx, plan.ID).Return(plan, nil)
	userRepo.On("CountEmployees", ctx, company.ID).Return(int64(0), nil)
	userRepo.On("ExistsByEmail", ctx, "jane@acme.test").Return(true, nil)

	service := createEmployeeService(userRepo, companyRepo, planRepo)

	result, err := service.Create(ctx, CreateEmployeeInput{
		CompanyID: company.ID,
		Name:      "Jane Doe",
		Email:     "jane@acme.test",
		Password:  "Password123",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	var domainErr *shared.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "EMAIL_EXISTS", domainErr.Code)
}

func TestEmployeeService_Get_OwnerNotVisible(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)
	companyRepo := new(MockCompanyRepository)
	planRepo := new(MockPlanRepository)

	plan := createTestPlan()
	company := createTestCompany(plan.ID)
	owner := createTestOwner(company.ID)

	userRepo.On("FindByIDForCompany", ctx, company.ID, owner.ID).Return(owner, nil)

	service := createEmployeeService(userRepo, companyRepo, planRepo)

	result, err := service.Get(ctx, company.ID, owner.ID)

	require.Error(t, err)
	assert.Nil(t, result)
	var domainErr *shared.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
}

func TestEmployeeService_Update(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)
	companyRepo := new(MockCompanyRepository)
	planRepo := new(MockPlanRepository)

	plan := createTestPlan()
	company := createTestCompany(plan.ID)
	employee := createTestEmployee(company.ID)

	userRepo.On("FindByIDForCompany", ctx, company.ID, employee.ID).Return(employee, nil)
	userRepo.On("Update", ctx, employee).Return(nil)

	service := createEmployeeService(userRepo, companyRepo, planRepo)

	t.Run("rename and deactivate", func(t *testing.T) {
		name := "Jane Smith"
		active := false
		result, err := service.Update(ctx, UpdateEmployeeInput{
			CompanyID: company.ID,
			ID:        employee.ID,
			Name:      &name,
			Active:    &active,
		})

		require.NoError(t, err)
		assert.Equal(t, "Jane Smith", result.Name)
		assert.Equal(t, "deactivated", result.Status)
	})

	t.Run("reactivate", func(t *testing.T) {
		active := true
		result, err := service.Update(ctx, UpdateEmployeeInput{
			CompanyID: company.ID,
			ID:        employee.ID,
			Active:    &active,
		})

		require.NoError(t, err)
		assert.Equal(t, "active", result.Status)
	})

	t.Run("email change checks uniqueness", func(t *testing.T) {
		email := "taken@acme.test"
		userRepo.On("ExistsByEmail", ctx, email).Return(true, nil)

		result, err := service.Update(ctx, UpdateEmployeeInput{
			CompanyID: company.ID,
			ID:        employee.ID,
			Email:     &email,
		})

		require.Error(t, err)
		assert.Nil(t, result)
		var domainErr *shared.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, "EMAIL_EXISTS", domainErr.Code)
	})
}

func TestEmployeeService_Delete(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)
	companyRepo := new(MockCompanyRepository)
	planRepo := new(MockPlanRepository)

	plan := createTestPlan()
	company := createTestCompany(plan.ID)

	service := createEmployeeService(userRepo, companyRepo, planRepo)

	t.Run("removes employee", func(t *testing.T) {
		employee := createTestEmployee(company.ID)
		userRepo.On("FindByIDForCompany", ctx, company.ID, employee.ID).Return(employee, nil)
		userRepo.On("Delete", ctx, employee.ID).Return(nil)

		err := service.Delete(ctx, company.ID, employee.ID)
		require.NoError(t, err)
	})

	t.Run("refuses owner account", func(t *testing.T) {
		owner := createTestOwner(company.ID)
		userRepo.On("FindByIDForCompany", ctx, company.ID, owner.ID).Return(owner, nil)

		err := service.Delete(ctx, company.ID, owner.ID)
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, "FORBIDDEN", domainErr.Code)
	})
}

func TestEmployeeService_List(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)
	companyRepo := new(MockCompanyRepository)
	planRepo := new(MockPlanRepository)

	plan := createTestPlan()
	company := createTestCompany(plan.ID)
	first := createTestEmployee(company.ID)
	second, _ := identity.NewEmployee(company.ID, "John Roe", "john@acme.test", "Password123")

	userRepo.On("FindAllForCompany", ctx, company.ID, mock.AnythingOfType("identity.UserFilter")).
		Return([]*identity.User{first, second}, int64(2), nil)

	service := createEmployeeService(userRepo, companyRepo, planRepo)

	result, err := service.List(ctx, ListEmployeesInput{
		CompanyID: company.ID,
		Page:      1,
		PageSize:  20,
	})

	require.NoError(t, err)
	assert.Len(t, result.Employees, 2)
	assert.Equal(t, int64(2), result.Total)
	assert.Equal(t, 1, result.Page)
	assert.Equal(t, 1, result.TotalPages)
}
