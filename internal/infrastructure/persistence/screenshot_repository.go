package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/AnamulHaqueN/employee-monitoring-saas/internal/domain/monitoring"
	"github.com/AnamulHaqueN/employee-monitoring-saas/internal/domain/shared"
	"github.com/AnamulHaqueN/employee-monitoring-saas/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormScreenshotRepository implements ScreenshotRepository using GORM
type GormScreenshotRepository struct {
	db *gorm.DB
}

// NewGormScreenshotRepository creates a new GormScreenshotRepository
func NewGormScreenshotRepository(db *gorm.DB) *GormScreenshotRepository {
	return &GormScreenshotRepository{db: db}
}

// Create records a new screenshot
func (r *GormScreenshotRepository) Create(ctx context.Context, shot *monitoring.Screenshot) error {
	model := models.ScreenshotModelFromDomain(shot)
	return r.db.WithContext(ctx).Create(model).Error
}

// Delete removes a screenshot record
func (r *GormScreenshotRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.ScreenshotModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds a screenshot by ID
func (r *GormScreenshotRepository) FindByID(ctx context.Context, id uuid.UUID) (*monitoring.Screenshot, error) {
	var model models.ScreenshotModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDForCompany finds a screenshot by ID scoped to a company
func (r *GormScreenshotRepository) FindByIDForCompany(ctx context.Context, companyID, id uuid.UUID) (*monitoring.Screenshot, error) {
	var model models.ScreenshotModel
	if err := r.db.WithContext(ctx).
		Where("company_id = ? AND id = ?", companyID, id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByUserAndDate returns one employee's screenshots for a calendar
// date, ordered by capture time ascending
func (r *GormScreenshotRepository) FindByUserAndDate(ctx context.Context, companyID, userID uuid.UUID, date string) ([]*monitoring.Screenshot, error) {
	var shotModels []models.ScreenshotModel
	if err := r.db.WithContext(ctx).
		Where("company_id = ? AND user_id = ? AND date = ?", companyID, userID, date).
		Order("capture_time ASC").
		Find(&shotModels).Error; err != nil {
		return nil, err
	}
	return toDomainShots(shotModels), nil
}

// DeleteOlderThan removes records captured before the cutoff for a company
func (r *GormScreenshotRepository) DeleteOlderThan(ctx context.Context, companyID uuid.UUID, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("company_id = ? AND capture_time < ?", companyID, cutoff).
		Delete(&models.ScreenshotModel{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func toDomainShots(shotModels []models.ScreenshotModel) []*monitoring.Screenshot {
	shots := make([]*monitoring.Screenshot, len(shotModels))
	for i := range shotModels {
		shots[i] = shotModels[i].ToDomain()
	}
	return shots
}

var _ monitoring.ScreenshotRepository = (*GormScreenshotRepository)(nil)
