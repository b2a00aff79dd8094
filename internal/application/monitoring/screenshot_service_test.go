package monitoring_test

import (
	. "github.com/AnamulHaqueN/employee-monitoring-saas/internal/application/monitoring"

	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/AnamulHaqueN/employee-monitoring-saas/internal/domain/identity"
	"github.com/AnamulHaqueN/employee-monitoring-saas/internal/domain/monitoring"
	"github.com/AnamulHaqueN/employee-monitoring-saas/internal/domain/shared"
	"github.com/AnamulHaqueN/employee-monitoring-saas/internal/infrastructure/storage"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockScreenshotRepository is a mock implementation of monitoring.ScreenshotRepository
type MockScreenshotRepository struct {
	mock.Mock
}

func (m *MockScreenshotRepository) Create(ctx context.Context, shot *monitoring.Screenshot) error {
	args := m.Called(ctx, shot)
	return args.Error(0)
}

func (m *MockScreenshotRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockScreenshotRepository) FindByID(ctx context.Context, id uuid.UUID) (*monitoring.Screenshot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*monitoring.Screenshot), args.Error(1)
}

func (m *MockScreenshotRepository) FindByIDForCompany(ctx context.Context, companyID, id uuid.UUID) (*monitoring.Screenshot, error) {
	args := m.Called(ctx, companyID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*monitoring.Screenshot), args.Error(1)
}

func (m *MockScreenshotRepository) FindByUserAndDate(ctx context.Context, companyID, userID uuid.UUID, date string) ([]*monitoring.Screenshot, error) {
	args := m.Called(ctx, companyID, userID, date)
	return args.Get(0).([]*monitoring.Screenshot), args.Error(1)
}

func (m *MockScreenshotRepository) DeleteOlderThan(ctx context.Context, companyID uuid.UUID, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, companyID, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

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

type serviceFixture struct {
	shotRepo    *MockScreenshotRepository
	userRepo    *MockUserRepository
	companyRepo *MockCompanyRepository
	planRepo    *MockPlanRepository
	store       *storage.MemoryObjectStorage
	service     *ScreenshotService
}

func newServiceFixture() *serviceFixture {
	f := &serviceFixture{
		shotRepo:    new(MockScreenshotRepository),
		userRepo:    new(MockUserRepository),
		companyRepo: new(MockCompanyRepository),
		planRepo:    new(MockPlanRepository),
		store:       storage.NewMemoryObjectStorage(),
	}
	f.service = NewScreenshotService(
		f.shotRepo,
		f.userRepo,
		f.companyRepo,
		f.planRepo,
		f.store,
		DefaultScreenshotServiceConfig(),
		zap.NewNop(),
	)
	return f
}

func newTestEmployee(companyID uuid.UUID) *identity.User {
	user, _ := identity.NewEmployee(companyID, "Jane Doe", "jane@acme.test", "Password123")
	return user
}

func newStoredShot(t *testing.T, companyID, userID uuid.UUID, capture time.Time) *monitoring.Screenshot {
	t.Helper()
	shot, err := monitoring.NewScreenshot(companyID, userID,
		"screenshots/"+companyID.String()+"/"+userID.String()+"/"+uuid.NewString()+".png",
		"https://storage.test/shot.png", "image/png", 2048, capture)
	require.NoError(t, err)
	return shot
}

func TestScreenshotService_Upload_Success(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()
	f := newServiceFixture()
	employee := newTestEmployee(companyID)

	f.userRepo.On("FindByIDForCompany", ctx, companyID, employee.ID).Return(employee, nil)
	f.shotRepo.On("Create", ctx, mock.AnythingOfType("*monitoring.Screenshot")).Return(nil)

	capture := time.Date(2026, 3, 14, 9, 27, 30, 0, time.UTC)
	payload := []byte("fake png bytes")

	result, err := f.service.Upload(ctx, UploadScreenshotInput{
		CompanyID:   companyID,
		UserID:      employee.ID,
		ContentType: "image/png",
		SizeBytes:   int64(len(payload)),
		CaptureTime: capture,
		Body:        bytes.NewReader(payload),
	})

	require.NoError(t, err)
	assert.Equal(t, employee.ID, result.UserID)
	assert.Equal(t, "2026-03-14", result.Date)
	assert.Equal(t, 9, result.Hour)
	assert.Equal(t, 25, result.MinuteBucket)
	assert.NotEmpty(t, result.URL)
	assert.Equal(t, 1, f.store.Len())

	f.shotRepo.AssertExpectations(t)
}

func TestScreenshotService_Upload_StorageFailure(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()
	f := newServiceFixture()
	employee := newTestEmployee(companyID)
	f.store.FailPuts = true

	f.userRepo.On("FindByIDForCompany", ctx, companyID, employee.ID).Return(employee, nil)

	payload := []byte("fake png bytes")
	result, err := f.service.Upload(ctx, UploadScreenshotInput{
		CompanyID:   companyID,
		UserID:      employee.ID,
		ContentType: "image/png",
		SizeBytes:   int64(len(payload)),
		CaptureTime: time.Now().UTC(),
		Body:        bytes.NewReader(payload),
	})

	require.Error(t, err)
	assert.Nil(t, result)
	var domainErr *shared.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "UPSTREAM_STORAGE", domainErr.Code)
	// No row may be written when the object never landed
	f.shotRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestScreenshotService_Upload_PersistFailureRemovesObject(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()
	f := newServiceFixture()
	employee := newTestEmployee(companyID)

	f.userRepo.On("FindByIDForCompany", ctx, companyID, employee.ID).Return(employee, nil)
	f.shotRepo.On("Create", ctx, mock.AnythingOfType("*monitoring.Screenshot")).Return(errors.New("db down"))

	payload := []byte("fake png bytes")
	result, err := f.service.Upload(ctx, UploadScreenshotInput{
		CompanyID:   companyID,
		UserID:      employee.ID,
		ContentType: "image/png",
		SizeBytes:   int64(len(payload)),
		CaptureTime: time.Now().UTC(),
		Body:        bytes.NewReader(payload),
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Equal(t, 0, f.store.Len())
}

func TestScreenshotService_Upload_Rejections(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()

	t.Run("owner account", func(t *testing.T) {
		f := newServiceFixture()
		owner, _ := identity.NewOwner(companyID, "Boss", "boss@acme.test", "Password123")
		f.userRepo.On("FindByIDForCompany", ctx, companyID, owner.ID).Return(owner, nil)

		_, err := f.service.Upload(ctx, UploadScreenshotInput{
			CompanyID:   companyID,
			UserID:      owner.ID,
			ContentType: "image/png",
			SizeBytes:   10,
			CaptureTime: time.Now().UTC(),
			Body:        bytes.NewReader([]byte("x")),
		})

		var domainErr *shared.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, "FORBIDDEN", domainErr.Code)
	})

	t.Run("deactivated employee", func(t *testing.T) {
		f := newServiceFixture()
		employee := newTestEmployee(companyID)
		require.NoError(t, employee.Deactivate())
		f.userRepo.On("FindByIDForCompany", ctx, companyID, employee.ID).Return(employee, nil)

		_, err := f.service.Upload(ctx, UploadScreenshotInput{
			CompanyID:   companyID,
			UserID:      employee.ID,
			ContentType: "image/png",
			SizeBytes:   10,
			CaptureTime: time.Now().UTC(),
			Body:        bytes.NewReader([]byte("x")),
		})

		var domainErr *shared.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, "ACCOUNT_DEACTIVATED", domainErr.Code)
	})

	t.Run("oversized payload", func(t *testing.T) {
		f := newServiceFixture()
		employee := newTestEmployee(companyID)
		f.userRepo.On("FindByIDForCompany", ctx, companyID, employee.ID).Return(employee, nil)

		_, err := f.service.Upload(ctx, UploadScreenshotInput{
			CompanyID:   companyID,
			UserID:      employee.ID,
			ContentType: "image/png",
			SizeBytes:   11 << 20,
			CaptureTime: time.Now().UTC(),
			Body:        bytes.NewReader([]byte("x")),
		})

		var domainErr *shared.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, "INVALID_INPUT", domainErr.Code)
	})

	t.Run("unsupported content type", func(t *testing.T) {
		f := newServiceFixture()
		employee := newTestEmployee(companyID)
		f.userRepo.On("FindByIDForCompany", ctx, companyID, employee.ID).Return(employee, nil)

		_, err := f.service.Upload(ctx, UploadScreenshotInput{
			CompanyID:   companyID,
			UserID:      employee.ID,
			ContentType: "application/pdf",
			SizeBytes:   10,
			CaptureTime: time.Now().UTC(),
			Body:        bytes.NewReader([]byte("x")),
		})

		var domainErr *shared.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, "INVALID_INPUT", domainErr.Code)
	})
}

func TestScreenshotService_GetDayReport(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()
	f := newServiceFixture()
	employee := newTestEmployee(companyID)

	shots := []*monitoring.Screenshot{
		newStoredShot(t, companyID, employee.ID, time.Date(2026, 3, 14, 9, 2, 0, 0, time.UTC)),
		newStoredShot(t, companyID, employee.ID, time.Date(2026, 3, 14, 9, 4, 0, 0, time.UTC)),
		newStoredShot(t, companyID, employee.ID, time.Date(2026, 3, 14, 14, 31, 0, 0, time.UTC)),
	}

	f.shotRepo.On("FindByUserAndDate", ctx, companyID, employee.ID, "2026-03-14").Return(shots, nil)

	result, err := f.service.GetDayReport(ctx, GetReportInput{
		CompanyID:   companyID,
		RequesterID: employee.ID,
		UserID:      employee.ID,
		Date:        "2026-03-14",
	})

	require.NoError(t, err)
	assert.Equal(t, 3, result.Statistics.TotalScreenshots)
	assert.Equal(t, 2, result.Statistics.HoursActive)
	require.Contains(t, result.Hours, 9)
	require.Contains(t, result.Hours, 14)
	assert.Len(t, result.Hours[9][0], 2)
	assert.Len(t, result.Hours[14][30], 1)
}

func TestScreenshotService_GetDayReport_Authorization(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()

	t.Run("employee cannot view a colleague", func(t *testing.T) {
		f := newServiceFixture()
		_, err := f.service.GetDayReport(ctx, GetReportInput{
			CompanyID:   companyID,
			RequesterID: uuid.New(),
			UserID:      uuid.New(),
			Date:        "2026-03-14",
		})

		var domainErr *shared.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, "FORBIDDEN", domainErr.Code)
	})

	t.Run("owner cannot reach outside the company", func(t *testing.T) {
		f := newServiceFixture()
		outsider := uuid.New()
		f.userRepo.On("FindByIDForCompany", ctx, companyID, outsider).Return(nil, errors.New("not found"))

		_, err := f.service.GetDayReport(ctx, GetReportInput{
			CompanyID:   companyID,
			RequesterID: uuid.New(),
			OwnerView:   true,
			UserID:      outsider,
			Date:        "2026-03-14",
		})

		var domainErr *shared.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, "NOT_FOUND", domainErr.Code)
	})

	t.Run("malformed date", func(t *testing.T) {
		f := newServiceFixture()
		userID := uuid.New()
		_, err := f.service.GetDayReport(ctx, GetReportInput{
			CompanyID:   companyID,
			RequesterID: userID,
			UserID:      userID,
			Date:        "14-03-2026",
		})

		var domainErr *shared.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, "INVALID_INPUT", domainErr.Code)
	})
}

func TestScreenshotService_GetHourHistogram(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()
	f := newServiceFixture()
	employee := newTestEmployee(companyID)

	shots := []*monitoring.Screenshot{
		newStoredShot(t, companyID, employee.ID, time.Date(2026, 3, 14, 9, 2, 0, 0, time.UTC)),
		newStoredShot(t, companyID, employee.ID, time.Date(2026, 3, 14, 9, 40, 0, 0, time.UTC)),
		newStoredShot(t, companyID, employee.ID, time.Date(2026, 3, 14, 16, 5, 0, 0, time.UTC)),
	}

	f.shotRepo.On("FindByUserAndDate", ctx, companyID, employee.ID, "2026-03-14").Return(shots, nil)

	result, err := f.service.GetHourHistogram(ctx, GetReportInput{
		CompanyID:   companyID,
		RequesterID: employee.ID,
		UserID:      employee.ID,
		Date:        "2026-03-14",
	})

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, HourCountResult{Hour: 9, Count: 2}, result[0])
	assert.Equal(t, HourCountResult{Hour: 16, Count: 1}, result[1])
}

func TestScreenshotService_Delete(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()
	f := newServiceFixture()
	employee := newTestEmployee(companyID)

	shot := newStoredShot(t, companyID, employee.ID, time.Now().UTC())

	f.shotRepo.On("FindByIDForCompany", ctx, companyID, shot.ID).Return(shot, nil)
	f.shotRepo.On("Delete", ctx, shot.ID).Return(nil)

	err := f.service.Delete(ctx, DeleteScreenshotInput{
		CompanyID:    companyID,
		ScreenshotID: shot.ID,
	})

	require.NoError(t, err)
	f.shotRepo.AssertExpectations(t)
}

func TestScreenshotService_GetDownloadURL(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()

	t.Run("employee gets a signed link for their own capture", func(t *testing.T) {
		f := newServiceFixture()
		employee := newTestEmployee(companyID)
		shot := newStoredShot(t, companyID, employee.ID, time.Now().UTC())
		f.shotRepo.On("FindByIDForCompany", ctx, companyID, shot.ID).Return(shot, nil)

		result, err := f.service.GetDownloadURL(ctx, DownloadURLInput{
			CompanyID:    companyID,
			RequesterID:  employee.ID,
			ScreenshotID: shot.ID,
		})

		require.NoError(t, err)
		assert.Contains(t, result.URL, shot.StorageKey)
		assert.True(t, result.ExpiresAt.After(time.Now()))
	})

	t.Run("owner can fetch any employee's capture", func(t *testing.T) {
		f := newServiceFixture()
		employee := newTestEmployee(companyID)
		shot := newStoredShot(t, companyID, employee.ID, time.Now().UTC())
		f.shotRepo.On("FindByIDForCompany", ctx, companyID, shot.ID).Return(shot, nil)

		result, err := f.service.GetDownloadURL(ctx, DownloadURLInput{
			CompanyID:    companyID,
			RequesterID:  uuid.New(),
			OwnerView:    true,
			ScreenshotID: shot.ID,
		})

		require.NoError(t, err)
		assert.NotEmpty(t, result.URL)
	})

	t.Run("employee cannot fetch someone else's capture", func(t *testing.T) {
		f := newServiceFixture()
		shot := newStoredShot(t, companyID, uuid.New(), time.Now().UTC())
		f.shotRepo.On("FindByIDForCompany", ctx, companyID, shot.ID).Return(shot, nil)

		_, err := f.service.GetDownloadURL(ctx, DownloadURLInput{
			CompanyID:    companyID,
			RequesterID:  uuid.New(),
			ScreenshotID: shot.ID,
		})

		var domainErr *shared.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, "FORBIDDEN", domainErr.Code)
	})

	t.Run("unknown screenshot", func(t *testing.T) {
		f := newServiceFixture()
		id := uuid.New()
		f.shotRepo.On("FindByIDForCompany", ctx, companyID, id).Return(nil, shared.ErrNotFound)

		_, err := f.service.GetDownloadURL(ctx, DownloadURLInput{
			CompanyID:    companyID,
			RequesterID:  uuid.New(),
			OwnerView:    true,
			ScreenshotID: id,
		})

		var domainErr *shared.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, "NOT_FOUND", domainErr.Code)
	})
}

func TestScreenshotService_SweepExpired(t *testing.T) {
	ctx := context.Background()
	f := newServiceFixture()

	plan, err := identity.NewPlan(identity.PlanCodeBasic, "Basic", decimal.NewFromFloat(4.99), 10, 30)
	require.NoError(t, err)
	company, err := identity.NewCompany("Acme Inc", "owner@acme.test", plan.ID)
	require.NoError(t, err)

	f.companyRepo.On("FindAll", ctx).Return([]*identity.Company{company}, nil)
	f.planRepo.On("FindByID", ctx, plan.ID).Return(plan, nil)
	f.shotRepo.On("DeleteOlderThan", ctx, company.ID, mock.AnythingOfType("time.Time")).Return(int64(12), nil)

	removed, err := f.service.SweepExpired(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(12), removed)
	f.shotRepo.AssertExpectations(t)
}
