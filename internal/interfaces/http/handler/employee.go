package handler

import (
	"github.com/AnamulHaqueN/employee-monitoring-saas/internal/application/identity"
	"github.com/AnamulHaqueN/employee-monitoring-saas/internal/interfaces/http/dto"
	"github.com/AnamulHaqueN/employee-monitoring-saas/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateEmployeeRequest represents the request body for employee creation
type CreateEmployeeRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=128"`
	Position string `json:"position" binding:"omitempty,max=100"`
}

// UpdateEmployeeRequest represents the request body for employee updates.
// Only the fields present in the request are applied.
type UpdateEmployeeRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=2,max=100"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Position *string `json:"position" binding:"omitempty,max=100"`
	Active   *bool   `json:"active"`
}

// EmployeeHandler handles employee management HTTP requests
type EmployeeHandler struct {
	BaseHandler
	employeeService *identity.EmployeeService
}

// NewEmployeeHandler creates a new employee handler
func NewEmployeeHandler(employeeService *identity.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{
		employeeService: employeeService,
	}
}

// Create godoc
// @Summary      Create employee
// @Description  Add an employee to the company, subject to the plan's headcount limit
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        request body CreateEmployeeRequest true "Employee details"
// @Success      201 {object} dto.Response{data=AuthUserResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /employees [post]
func (h *EmployeeHandler) Create(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	result, err := h.employeeService.Create(c.Request.Context(), identity.CreateEmployeeInput{
		CompanyID: companyID,
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		Position:  req.Position,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, userInfoToResponse(*result))
}

// Get godoc
// @Summary      Get employee
// @Description  Fetch a single employee by ID
// @Tags         employees
// @Produce      json
// @Param        id path string true "Employee ID"
// @Success      200 {object} dto.Response{data=AuthUserResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /employees/{id} [get]
func (h *EmployeeHandler) Get(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid employee ID")
		return
	}
	employeeID := uuid.MustParse(uri.ID)

	result, err := h.employeeService.Get(c.Request.Context(), companyID, employeeID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, userInfoToResponse(*result))
}

// Update godoc
// @Summary      Update employee
// @Description  Update an employee's profile, or activate/deactivate the account
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        id path string true "Employee ID"
// @Param        request body UpdateEmployeeRequest true "Fields to update"
// @Success      200 {object} dto.Response{data=AuthUserResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /employees/{id} [put]
func (h *EmployeeHandler) Update(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid employee ID")
		return
	}
	employeeID := uuid.MustParse(uri.ID)

	var req UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	result, err := h.employeeService.Update(c.Request.Context(), identity.UpdateEmployeeInput{
		CompanyID: companyID,
		ID:        employeeID,
		Name:      req.Name,
		Email:     req.Email,
		Position:  req.Position,
		Active:    req.Active,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, userInfoToResponse(*result))
}

// Delete godoc
// @Summary      Delete employee
// @Description  Remove an employee account from the company
// @Tags         employees
// @Produce      json
// @Param        id path string true "Employee ID"
// @Success      204
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /employees/{id} [delete]
func (h *EmployeeHandler) Delete(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid employee ID")
		return
	}
	employeeID := uuid.MustParse(uri.ID)

	if err := h.employeeService.Delete(c.Request.Context(), companyID, employeeID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// List godoc
// @Summary      List employees
// @Description  List the company's employees with search, status filter and pagination
// @Tags         employees
// @Produce      json
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Param        search query string false "Name or email keyword"
// @Param        status query string false "Status filter" Enums(active, locked, deactivated)
// @Success      200 {object} dto.Response{data=[]AuthUserResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /employees [get]
func (h *EmployeeHandler) List(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	req := dto.DefaultListRequest()
	if err := c.ShouldBindQuery(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}
	if req.Page == 0 {
		req.Page = 1
	}
	if req.PageSize == 0 {
		req.PageSize = 20
	}

	result, err := h.employeeService.List(c.Request.Context(), identity.ListEmployeesInput{
		CompanyID: companyID,
		Keyword:   req.Search,
		Status:    req.Status,
		Page:      req.Page,
		PageSize:  req.PageSize,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	employees := make([]AuthUserResponse, len(result.Employees))
	for i, emp := range result.Employees {
		employees[i] = userInfoToResponse(emp)
	}

	h.SuccessWithMeta(c, employees, result.Total, result.Page, result.PageSize)
}
