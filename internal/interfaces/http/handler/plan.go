package handler

import (
	"github.com/AnamulHaqueN/employee-monitoring-saas/internal/application/identity"
	"github.com/gin-gonic/gin"
)

// PlanHandler handles subscription plan HTTP requests
type PlanHandler struct {
	BaseHandler
	planService *identity.PlanService
}

// NewPlanHandler creates a new plan handler
func NewPlanHandler(planService *identity.PlanService) *PlanHandler {
	return &PlanHandler{
		planService: planService,
	}
}

// List godoc
// @Summary      List plans
// @Description  List active subscription plans, cheapest first
// @Tags         plans
// @Produce      json
// @Success      200 {object} dto.Response{data=[]identity.PlanInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /plans [get]
func (h *PlanHandler) List(c *gin.Context) {
	plans, err := h.planService.ListActive(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, plans)
}
