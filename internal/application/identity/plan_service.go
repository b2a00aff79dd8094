package identity

import (
	"context"

	"github.com/AnamulHaqueN/employee-monitoring-saas/internal/domain/identity"
	"github.com/AnamulHaqueN/employee-monitoring-saas/internal/domain/shared"
	"go.uber.org/zap"
)

// PlanService exposes the subscription plan catalog
type PlanService struct {
	planRepo identity.PlanRepository
	logger   *zap.Logger
}

// NewPlanService creates a new plan service
func NewPlanService(planRepo identity.PlanRepository, logger *zap.Logger) *PlanService {
	return &PlanService{
		planRepo: planRepo,
		logger:   logger,
	}
}

// ListActive returns all plans open for subscription
func (s *PlanService) ListActive(ctx context.Context) ([]PlanInfo, error) {
	plans, err := s.planRepo.FindAllActive(ctx)
	if err != nil {
		s.logger.Error("Failed to list plans", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list plans")
	}

	infos := make([]PlanInfo, 0, len(plans))
	for _, p := range plans {
		infos = append(infos, planToInfo(p))
	}
	return infos, nil
}

// GetByCode resolves a single plan by its code
func (s *PlanService) GetByCode(ctx context.Context, code string) (*PlanInfo, error) {
	plan, err := s.planRepo.FindByCode(ctx, identity.PlanCode(code))
	if err != nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Plan not found")
	}

	info := planToInfo(plan)
	return &info, nil
}

func planToInfo(plan *identity.Plan) PlanInfo {
	return PlanInfo{
		ID:               plan.ID,
		Code:             string(plan.Code),
		Name:             plan.Name,
		PricePerEmployee: plan.PricePerEmployee,
		MaxEmployees:     plan.MaxEmployees,
		RetentionDays:    plan.RetentionDays,
	}
}
