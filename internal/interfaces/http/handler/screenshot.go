package handler

import (
	"time"

	"github.com/AnamulHaqueN/employee-monitoring-saas/internal/application/monitoring"
	"github.com/AnamulHaqueN/employee-monitoring-saas/internal/interfaces/http/dto"
	"github.com/AnamulHaqueN/employee-monitoring-saas/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ReportQuery identifies the user-day being queried. Owners may pass any
// user_id in their company; employees can only query themselves.
type ReportQuery struct {
	UserID string `form:"user_id" binding:"omitempty,uuid"`
	Date   string `form:"date" binding:"required,dateonly"`
}

// ScreenshotHandler handles screenshot capture and reporting HTTP requests
type ScreenshotHandler struct {
	BaseHandler
	screenshotService *monitoring.ScreenshotService
}

// NewScreenshotHandler creates a new screenshot handler
func NewScreenshotHandler(screenshotService *monitoring.ScreenshotService) *ScreenshotHandler {
	return &ScreenshotHandler{
		screenshotService: screenshotService,
	}
}

// Upload godoc
// @Summary      Upload screenshot
// @Description  Upload a captured screenshot as multipart form data
// @Tags         screenshots
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData file true "Screenshot image (PNG, JPEG or WebP)"
// @Param        captured_at formData string true "Capture time, RFC 3339"
// @Success      201 {object} dto.Response{data=monitoring.ScreenshotInfo}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      502 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /screenshots [post]
func (h *ScreenshotHandler) Upload(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.BadRequest(c, "Screenshot file is required")
		return
	}

	capturedAtStr := c.PostForm("captured_at")
	if capturedAtStr == "" {
		h.BadRequest(c, "captured_at is required")
		return
	}
	capturedAt, err := time.Parse(time.RFC3339, capturedAtStr)
	if err != nil {
		h.BadRequest(c, "captured_at must be an RFC 3339 timestamp")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.InternalError(c, "Failed to read uploaded file")
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")

	result, err := h.screenshotService.Upload(c.Request.Context(), monitoring.UploadScreenshotInput{
		CompanyID:   companyID,
		UserID:      userID,
		ContentType: contentType,
		SizeBytes:   fileHeader.Size,
		CaptureTime: capturedAt,
		Body:        file,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// DayReport godoc
// @Summary      Day report
// @Description  Get a user's screenshots for one day, grouped by hour and five-minute bucket
// @Tags         reports
// @Produce      json
// @Param        user_id query string false "Target user ID (owner only; defaults to the requester)"
// @Param        date query string true "Day in YYYY-MM-DD"
// @Success      200 {object} dto.Response{data=monitoring.DayReportResult}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /reports/screenshots [get]
func (h *ScreenshotHandler) DayReport(c *gin.Context) {
	input, ok := h.bindReportInput(c)
	if !ok {
		return
	}

	result, err := h.screenshotService.GetDayReport(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// HourHistogram godoc
// @Summary      Hourly histogram
// @Description  Get per-hour screenshot counts for one user-day
// @Tags         reports
// @Produce      json
// @Param        user_id query string false "Target user ID (owner only; defaults to the requester)"
// @Param        date query string true "Day in YYYY-MM-DD"
// @Success      200 {object} dto.Response{data=[]monitoring.HourCountResult}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /reports/hours [get]
func (h *ScreenshotHandler) HourHistogram(c *gin.Context) {
	input, ok := h.bindReportInput(c)
	if !ok {
		return
	}

	result, err := h.screenshotService.GetHourHistogram(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Statistics godoc
// @Summary      Day statistics
// @Description  Get summary statistics for one user-day
// @Tags         reports
// @Produce      json
// @Param        user_id query string false "Target user ID (owner only; defaults to the requester)"
// @Param        date query string true "Day in YYYY-MM-DD"
// @Success      200 {object} dto.Response{data=monitoring.DayStatisticsResult}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /reports/statistics [get]
func (h *ScreenshotHandler) Statistics(c *gin.Context) {
	input, ok := h.bindReportInput(c)
	if !ok {
		return
	}

	result, err := h.screenshotService.GetStatistics(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Download godoc
// @Summary      Presigned download link
// @Description  Get a short-lived signed URL for one screenshot object
// @Tags         screenshots
// @Produce      json
// @Param        id path string true "Screenshot ID"
// @Success      200 {object} dto.Response{data=monitoring.DownloadURLResult}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /screenshots/{id}/download [get]
func (h *ScreenshotHandler) Download(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	requesterID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid screenshot ID")
		return
	}

	result, err := h.screenshotService.GetDownloadURL(c.Request.Context(), monitoring.DownloadURLInput{
		CompanyID:    companyID,
		RequesterID:  requesterID,
		OwnerView:    middleware.GetJWTRole(c) == "owner",
		ScreenshotID: uuid.MustParse(uri.ID),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Delete godoc
// @Summary      Delete screenshot
// @Description  Remove a screenshot and its stored object
// @Tags         screenshots
// @Produce      json
// @Param        id path string true "Screenshot ID"
// @Success      204
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /screenshots/{id} [delete]
func (h *ScreenshotHandler) Delete(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid screenshot ID")
		return
	}

	err = h.screenshotService.Delete(c.Request.Context(), monitoring.DeleteScreenshotInput{
		CompanyID:    companyID,
		ScreenshotID: uuid.MustParse(uri.ID),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// bindReportInput resolves the report target from the query and JWT claims
func (h *ScreenshotHandler) bindReportInput(c *gin.Context) (monitoring.GetReportInput, bool) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return monitoring.GetReportInput{}, false
	}
	requesterID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return monitoring.GetReportInput{}, false
	}

	var query ReportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		middleware.HandleValidationError(c, err)
		return monitoring.GetReportInput{}, false
	}

	targetID := requesterID
	if query.UserID != "" {
		targetID = uuid.MustParse(query.UserID)
	}

	ownerView := middleware.GetJWTRole(c) == "owner"

	return monitoring.GetReportInput{
		CompanyID:   companyID,
		RequesterID: requesterID,
		OwnerView:   ownerView,
		UserID:      targetID,
		Date:        query.Date,
	}, true
}
