package identity

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/AnamulHaqueN/employee-monitoring-saas/internal/domain/identity"
	"github.com/AnamulHaqueN/employee-monitoring-saas/internal/domain/shared"
	"github.com/AnamulHaqueN/employee-monitoring-saas/internal/infrastructure/auth"
	"github.com/AnamulHaqueN/employee-monitoring-saas/internal/infrastructure/config"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockUserRepository is a mock implementation of identity.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByIDForCompany(ctx context.Context, companyID, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, companyID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindAllForCompany(ctx context.Context, companyID uuid.UUID, filter identity.UserFilter) ([]*identity.User, int64, error) {
	args := m.Called(ctx, companyID, filter)
	return args.Get(0).([]*identity.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) CountEmployees(ctx context.Context, companyID uuid.UUID) (int64, error) {
	args := m.Called(ctx, companyID)
	return args.Get(0).(int64), args.Error(1)
}

// MockCompanyRepository is a mock implementation of identity.CompanyRepository
type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Company), args.Error(1)
}

func (m *MockCompanyRepository) FindByEmail(ctx context.Context, email string) (*identity.Company, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Company), args.Error(1)
}

func (m *MockCompanyRepository) Save(ctx context.Context, company *identity.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

func (m *MockCompanyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCompanyRepository) FindAll(ctx context.Context) ([]*identity.Company, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*identity.Company), args.Error(1)
}

func (m *MockCompanyRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockCompanyRepository) CountByPlan(ctx context.Context, planID uuid.UUID) (int64, error) {
	args := m.Called(ctx, planID)
	return args.Get(0).(int64), args.Error(1)
}

// MockPlanRepository is a mock implementation of identity.PlanRepository
type MockPlanRepository struct {
	mock.Mock
}

func (m *MockPlanRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.Plan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Plan), args.Error(1)
}

func (m *MockPlanRepository) FindByCode(ctx context.Context, code identity.PlanCode) (*identity.Plan, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Plan), args.Error(1)
}

func (m *MockPlanRepository) FindAllActive(ctx context.Context) ([]*identity.Plan, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*identity.Plan), args.Error(1)
}

func (m *MockPlanRepository) Save(ctx context.Context, plan *identity.Plan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

// Helper function to create a test plan
func createTestPlan() *identity.Plan {
	plan, _ := identity.NewPlan(identity.PlanCodeBasic, "Basic", decimal.NewFromFloat(4.99), 10, 30)
	return plan
}

// Helper function to create a test company on the given plan
func createTestCompany(planID uuid.UUID) *identity.Company {
	company, _ := identity.NewCompany("Acme Inc", "owner@acme.test", planID)
	return company
}

// Helper function to create a test owner account
func createTestOwner(companyID uuid.UUID) *identity.User {
	user, _ := identity.NewOwner(companyID, "Test Owner", "owner@acme.test", "Password123")
	return user
}

// Helper function to create auth service with an in-memory blacklist
func createAuthService(userRepo *MockUserRepository, companyRepo *MockCompanyRepository, planRepo *MockPlanRepository) *AuthService {
	jwtCfg := config.JWTConfig{
		Secret:                 "test-secret-key-32-characters-long",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 7 * 24 * time.Hour,
		Issuer:                 "test-issuer",
		MaxRefreshCount:        10,
	}
	jwtService := auth.NewJWTService(jwtCfg)
	blacklist := auth.NewInMemoryTokenBlacklist()
	logger := zap.NewNop()

	return NewAuthService(
		userRepo,
		companyRepo,
		planRepo,
		jwtService,
		blacklist,
		DefaultAuthServiceConfig(),
		logger,
	)
}

func TestAuthService_RegisterCompany_Success(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)
	companyRepo := new(MockCompanyRepository)
	planRepo := new(MockPlanRepository)

	plan := createTestPlan()

	planRepo.On("FindByCode", ctx, identity.PlanCodeBasic).Return(plan, nil)
	companyRepo.On("ExistsByEmail", ctx, "owner@acme.test").Return(false, nil)
	userRepo.On("ExistsByEmail", ctx, "owner@acme.test").Return(false, nil)
	companyRepo.On("Save", ctx, mock.AnythingOfType("*identity.Company")).Return(nil)
	userRepo.On("Create", ctx, mock.AnythingOfType("*identity.User")).Return(nil)
	userRepo.On("Update", ctx, mock.AnythingOfType("*identity.User")).Return(nil)

	authService := createAuthService(userRepo, companyRepo, planRepo)

	result, err := authService.RegisterCompany(ctx, RegisterCompanyInput{
		CompanyName: "Acme Inc",
		Email:       "owner@acme.test",
		OwnerName:   "Test Owner",
		Password:    "Password123",
		PlanCode:    "basic",
		IP:          "127.0.0.1",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, result.Tokens.AccessToken)
	assert.NotEmpty(t, result.Tokens.RefreshToken)
	assert.Equal(t, "Acme Inc", result.Company.Name)
	assert.Equal(t, "owner", result.User.Role)
	assert.Equal(t, result.Company.ID, result.User.CompanyID)

	userRepo.AssertExpectations(t)
	companyRepo.AssertExpectations(t)
	planRepo.AssertExpectations(t)
}

func TestAuthService_RegisterCompany_UnknownPlan(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)
	companyRepo := new(MockCompanyRepository)
	planRepo := new(MockPlanRepository)

	planRepo.On("FindByCode", ctx, identity.PlanCode("gold")).Return(nil, errors.New("not found"))

	authService := createAuthService(userRepo, companyRepo, planRepo)

	result, err := authService.RegisterCompany(ctx, RegisterCompanyInput{
		CompanyName: "Acme Inc",
		Email:       "owner@acme.test",
		OwnerName:   "Test Owner",
		Password:    "Password123",
		PlanCode:    "gold",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	var domainErr *shared.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "INVALID_PLAN", domainErr.Code)
	companyRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestAuthService_RegisterCompany_EmailTaken(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)
	companyRepo := new(MockCompanyRepository)
	planRepo := new(MockPlanRepository)

	plan := createTestPlan()

	planRepo.On("FindByCode", ctx, identity.PlanCodeBasic).Return(plan, nil)
	companyRepo.On("ExistsByEmail", ctx, "owner@acme.test").Return(true, nil)

	authService := createAuthService(userRepo, companyRepo, planRepo)

	result, err := authService.RegisterCompany(ctx, RegisterCompanyInput{
		CompanyName: "Acme Inc",
		Email:       "owner@acme.test",
		OwnerName:   "Test Owner",
		Password:    "Password123",
		PlanCode:    "basic",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	var domainErr *shared.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "EMAIL_EXISTS", domainErr.Code)
}

func TestAuthService_Login_Success(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)
	companyRepo := new(MockCompanyRepository)
	planRepo := new(MockPlanRepository)

	plan := createTestPlan()
	company := createTestCompany(plan.ID)
	user := createTestOwner(company.ID)

	userRepo.On("FindByEmail", ctx, "owner@acme.test").Return(user, nil)
	companyRepo.On("FindByID", ctx, company.ID).Return(company, nil)
	userRepo.On("Update", ctx, user).Return(nil)

	authService := createAuthService(userRepo, companyRepo, planRepo)

	result, err := authService.Login(ctx, LoginInput{
		Email:    "owner@acme.test",
		Password: "Password123",
		IP:       "127.0.0.1",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, result.Tokens.AccessToken)
	assert.NotEmpty(t, result.Tokens.RefreshToken)
	assert.Equal(t, "owner@acme.test", result.User.Email)
	assert.Equal(t, company.ID, result.User.CompanyID)
	assert.Equal(t, "Bearer", result.Tokens.TokenType)

	userRepo.AssertExpectations(t)
	companyRepo.AssertExpectations(t)
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)
	companyRepo := new(MockCompanyRepository)
	planRepo := new(MockPlanRepository)

	plan := createTestPlan()
	company := createTestCompany(plan.ID)
	user := createTestOwner(company.ID)

	userRepo.On("FindByEmail", ctx, "owner@acme.test").Return(user, nil)
	companyRepo.On("FindByID", ctx, company.ID).Return(company, nil)
	userRepo.On("Update", ctx, user).Return(nil)

	authService := createAuthService(userRepo, companyRepo, planRepo)

	result, err := authService.Login(ctx, LoginInput{
		Email:    "owner@acme.test",
		Password: "wrongpassword",
		IP:       "127.0.0.1",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	var domainErr *shared.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "INVALID_CREDENTIALS", domainErr.Code)
	assert.Equal(t, 1, user.FailedAttempts)
}

func TestAuthService_Login_UserNotFound(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)
	companyRepo := new(MockCompanyRepository)
	planRepo := new(MockPlanRepository)

	userRepo.On("FindByEmail", ctx, "nobody@acme.test").Return(nil, errors.New("user not found"))

	authService := createAuthService(userRepo, companyRepo, planRepo)

	result, err := authService.Login(ctx, LoginInput{
		Email:    "nobody@acme.test",
		Password: "Password123",
		IP:       "127.0.0.1",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	var domainErr *shared.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "INVALID_CREDENTIALS", domainErr.Code)
}

func TestAuthService_Login_LockedAccount(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)
	companyRepo := new(MockCompanyRepository)
	planRepo := new(MockPlanRepository)

	plan := createTestPlan()
	company := createTestCompany(plan.ID)
	user := createTestOwner(company.ID)
	require.NoError(t, user.Lock(1*time.Hour))

	userRepo.On("FindByEmail", ctx, "owner@acme.test").Return(user, nil)

	authService := createAuthService(userRepo, companyRepo, planRepo)

	result, err := authService.Login(ctx, LoginInput{
		Email:    "owner@acme.test",
		Password: "Password123",
		IP:       "127.0.0.1",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	var domainErr *shared.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "ACCOUNT_LOCKED", domainErr.Code)
}

func TestAuthService_Login_SuspendedCompany(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)
	companyRepo := new(MockCompanyRepository)
	planRepo := new(MockPlanRepository)

	plan := createTestPlan()
	company := createTestCompany(plan.ID)
	require.NoError(t, company.Suspend())
	user := createTestOwner(company.ID)

	userRepo.On("FindByEmail", ctx, "owner@acme.test").Return(user, nil)
	companyRepo.On("FindByID", ctx, company.ID).Return(company, nil)

	authService := createAuthService(userRepo, companyRepo, planRepo)

	result, err := authService.Login(ctx, LoginInput{
		Email:    "owner@acme.test",
		Password: "Password123",
		IP:       "127.0.0.1",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	var domainErr *shared.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "COMPANY_SUSPENDED", domainErr.Code)
}

func TestAuthService_RefreshToken_Success(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)
	companyRepo := new(MockCompanyRepository)
	planRepo := new(MockPlanRepository)

	plan := createTestPlan()
	company := createTestCompany(plan.ID)
	user := createTestOwner(company.ID)

	userRepo.On("FindByEmail", ctx, "owner@acme.test").Return(user, nil)
	companyRepo.On("FindByID", ctx, company.ID).Return(company, nil)
	userRepo.On("Update", ctx, user).Return(nil)

	authService := createAuthService(userRepo, companyRepo, planRepo)

	loginResult, err := authService.Login(ctx, LoginInput{
		Email:    "owner@acme.test",
		Password: "Password123",
		IP:       "127.0.0.1",
	})
	require.NoError(t, err)

	userRepo.On("FindByID", ctx, user.ID).Return(user, nil)

	refreshResult, err := authService.RefreshToken(ctx, RefreshTokenInput{
		RefreshToken: loginResult.Tokens.RefreshToken,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, refreshResult.AccessToken)
	assert.NotEmpty(t, refreshResult.RefreshToken)
	assert.NotEqual(t, loginResult.Tokens.RefreshToken, refreshResult.RefreshToken)
}

func TestAuthService_RefreshToken_Garbage(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)
	companyRepo := new(MockCompanyRepository)
	planRepo := new(MockPlanRepository)

	authService := createAuthService(userRepo, companyRepo, planRepo)

	result, err := authService.RefreshToken(ctx, RefreshTokenInput{
		RefreshToken: "not-a-token",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	var domainErr *shared.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "TOKEN_INVALID", domainErr.Code)
}

func TestAuthService_ChangePassword(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)
	companyRepo := new(MockCompanyRepository)
	planRepo := new(MockPlanRepository)

	plan := createTestPlan()
	company := createTestCompany(plan.ID)
	user := createTestOwner(company.ID)

	userRepo.On("FindByID", ctx, user.ID).Return(user, nil)
	userRepo.On("Update", ctx, user).Return(nil)

	authService := createAuthService(userRepo, companyRepo, planRepo)

	t.Run("success", func(t *testing.T) {
		err := authService.ChangePassword(ctx, ChangePasswordInput{
			UserID:      user.ID,
			OldPassword: "Password123",
			NewPassword: "NewPassword456",
		})
		require.NoError(t, err)
		assert.True(t, user.VerifyPassword("NewPassword456"))
	})

	t.Run("wrong old password", func(t *testing.T) {
		err := authService.ChangePassword(ctx, ChangePasswordInput{
			UserID:      user.ID,
			OldPassword: "Password123",
			NewPassword: "Another789pass",
		})
		require.Error(t, err)
	})
}

func TestAuthService_Logout_RevokesRefresh(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)
	companyRepo := new(MockCompanyRepository)
	planRepo := new(MockPlanRepository)

	plan := createTestPlan()
	company := createTestCompany(plan.ID)
	user := createTestOwner(company.ID)

	userRepo.On("FindByEmail", ctx, "owner@acme.test").Return(user, nil)
	companyRepo.On("FindByID", ctx, company.ID).Return(company, nil)
	userRepo.On("Update", ctx, user).Return(nil)

	authService := createAuthService(userRepo, companyRepo, planRepo)

	loginResult, err := authService.Login(ctx, LoginInput{
		Email:    "owner@acme.test",
		Password: "Password123",
		IP:       "127.0.0.1",
	})
	require.NoError(t, err)

	err = authService.Logout(ctx, LogoutInput{
		UserID:      user.ID,
		AllSessions: true,
	})
	require.NoError(t, err)

	// A refresh token issued before logout must no longer be accepted
	result, err := authService.RefreshToken(ctx, RefreshTokenInput{
		RefreshToken: loginResult.Tokens.RefreshToken,
	})
	require.Error(t, err)
	assert.Nil(t, result)
	var domainErr *shared.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "TOKEN_INVALID", domainErr.Code)
}
