package monitoring

import (
	"context"
	"fmt"
	"time"

	"github.com/AnamulHaqueN/employee-monitoring-saas/internal/domain/identity"
	"github.com/AnamulHaqueN/employee-monitoring-saas/internal/domain/monitoring"
	"github.com/AnamulHaqueN/employee-monitoring-saas/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ScreenshotServiceConfig tunes upload acceptance
type ScreenshotServiceConfig struct {
	MaxUploadBytes int64
	AllowedTypes   []string
}

// DefaultScreenshotServiceConfig returns the default upload limits
func DefaultScreenshotServiceConfig() ScreenshotServiceConfig {
	return ScreenshotServiceConfig{
		MaxUploadBytes: 10 << 20,
		AllowedTypes:   []string{"image/png", "image/jpeg", "image/webp"},
	}
}

// ScreenshotService handles screenshot ingestion, retrieval and retention
type ScreenshotService struct {
	shotRepo    monitoring.ScreenshotRepository
	userRepo    identity.UserRepository
	companyRepo identity.CompanyRepository
	planRepo    identity.PlanRepository
	storage     ObjectStorage
	config      ScreenshotServiceConfig
	logger      *zap.Logger
}

// NewScreenshotService creates a new screenshot service
func NewScreenshotService(
	shotRepo monitoring.ScreenshotRepository,
	userRepo identity.UserRepository,
	companyRepo identity.CompanyRepository,
	planRepo identity.PlanRepository,
	storage ObjectStorage,
	config ScreenshotServiceConfig,
	logger *zap.Logger,
) *ScreenshotService {
	return &ScreenshotService{
		shotRepo:    shotRepo,
		userRepo:    userRepo,
		companyRepo: companyRepo,
		planRepo:    planRepo,
		storage:     storage,
		config:      config,
		logger:      logger,
	}
}

// Upload stores a screenshot object and records it. The object is written
// to storage first; the database row is only created once the upload has
// succeeded, so a recorded screenshot always has a backing object.
func (s *ScreenshotService) Upload(ctx context.Context, input UploadScreenshotInput) (*ScreenshotInfo, error) {
	user, err := s.userRepo.FindByIDForCompany(ctx, input.CompanyID, input.UserID)
	if err != nil {
		return nil, shared.NewDomainError("NOT_FOUND", "User not found")
	}
	if !user.IsEmployee() {
		return nil, shared.NewDomainError("FORBIDDEN", "Only employee accounts upload screenshots")
	}
	if !user.IsActive() {
		return nil, shared.NewDomainError("ACCOUNT_DEACTIVATED", "Account is not active")
	}

	if input.SizeBytes <= 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Screenshot payload is empty")
	}
	if s.config.MaxUploadBytes > 0 && input.SizeBytes > s.config.MaxUploadBytes {
		return nil, shared.NewDomainError("INVALID_INPUT",
			fmt.Sprintf("Screenshot exceeds the maximum size of %d bytes", s.config.MaxUploadBytes))
	}
	if !s.contentTypeAllowed(input.ContentType) {
		return nil, shared.NewDomainError("INVALID_INPUT", "Unsupported screenshot content type")
	}
	if input.CaptureTime.IsZero() {
		return nil, shared.ErrInvalidInput
	}

	storageKey := fmt.Sprintf("screenshots/%s/%s/%s%s",
		input.CompanyID, input.UserID, uuid.New(), extensionFor(input.ContentType))

	url, err := s.storage.PutObject(ctx, storageKey, input.ContentType, input.Body, input.SizeBytes)
	if err != nil {
		s.logger.Error("Screenshot upload to storage failed",
			zap.String("storage_key", storageKey),
			zap.Error(err))
		return nil, shared.ErrUpstreamStorage
	}

	shot, err := monitoring.NewScreenshot(input.CompanyID, input.UserID, storageKey, url,
		input.ContentType, input.SizeBytes, input.CaptureTime)
	if err != nil {
		// The object is already in storage; remove it so no orphan is left
		s.removeObject(ctx, storageKey)
		return nil, err
	}

	if err := s.shotRepo.Create(ctx, shot); err != nil {
		s.logger.Error("Failed to record screenshot", zap.Error(err))
		s.removeObject(ctx, storageKey)
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to record screenshot")
	}

	s.logger.Info("Screenshot stored",
		zap.String("company_id", input.CompanyID.String()),
		zap.String("user_id", input.UserID.String()),
		zap.String("storage_key", storageKey),
		zap.Int64("size_bytes", input.SizeBytes))

	info := shotToInfo(shot)
	return &info, nil
}

// GetDayReport returns one employee's screenshots for a calendar date,
// grouped by hour and five-minute bucket. Employees can only query their
// own captures; owners can query anyone in their company.
func (s *ScreenshotService) GetDayReport(ctx context.Context, input GetReportInput) (*DayReportResult, error) {
	if err := s.authorizeView(ctx, input); err != nil {
		return nil, err
	}

	shots, err := s.findForDay(ctx, input)
	if err != nil {
		return nil, err
	}

	report := monitoring.BuildDayReport(input.UserID, input.Date, shots)

	hours := make(map[int]map[int][]ScreenshotInfo, len(report.Hours))
	for hour, buckets := range report.Hours {
		hours[hour] = make(map[int][]ScreenshotInfo, len(buckets))
		for bucket, grouped := range buckets {
			infos := make([]ScreenshotInfo, 0, len(grouped))
			for _, shot := range grouped {
				infos = append(infos, shotToInfo(shot))
			}
			hours[hour][bucket] = infos
		}
	}

	return &DayReportResult{
		UserID: input.UserID,
		Date:   input.Date,
		Hours:  hours,
		Statistics: DayStatisticsResult{
			TotalScreenshots: report.Statistics.TotalScreenshots,
			HoursActive:      report.Statistics.HoursActive,
			FirstScreenshot:  report.Statistics.FirstScreenshot,
			LastScreenshot:   report.Statistics.LastScreenshot,
		},
	}, nil
}

// GetHourHistogram returns per-hour capture counts for one user-day
func (s *ScreenshotService) GetHourHistogram(ctx context.Context, input GetReportInput) ([]HourCountResult, error) {
	if err := s.authorizeView(ctx, input); err != nil {
		return nil, err
	}

	shots, err := s.findForDay(ctx, input)
	if err != nil {
		return nil, err
	}

	counts := monitoring.BuildHourHistogram(shots)
	results := make([]HourCountResult, 0, len(counts))
	for _, c := range counts {
		results = append(results, HourCountResult{Hour: c.Hour, Count: c.Count})
	}
	return results, nil
}

// GetStatistics returns the summary line for one user-day
func (s *ScreenshotService) GetStatistics(ctx context.Context, input GetReportInput) (*DayStatisticsResult, error) {
	if err := s.authorizeView(ctx, input); err != nil {
		return nil, err
	}

	shots, err := s.findForDay(ctx, input)
	if err != nil {
		return nil, err
	}

	stats := monitoring.BuildDayStatistics(shots)
	return &DayStatisticsResult{
		TotalScreenshots: stats.TotalScreenshots,
		HoursActive:      stats.HoursActive,
		FirstScreenshot:  stats.FirstScreenshot,
		LastScreenshot:   stats.LastScreenshot,
	}, nil
}

// GetDownloadURL returns a short-lived presigned link for one stored
// screenshot. The stable URL on the record may not be directly
// reachable when the bucket is private; this is the sanctioned path.
// Employees can only fetch links for their own captures.
func (s *ScreenshotService) GetDownloadURL(ctx context.Context, input DownloadURLInput) (*DownloadURLResult, error) {
	shot, err := s.shotRepo.FindByIDForCompany(ctx, input.CompanyID, input.ScreenshotID)
	if err != nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Screenshot not found")
	}
	if !input.OwnerView && shot.UserID != input.RequesterID {
		return nil, shared.NewDomainError("FORBIDDEN", "Employees can only view their own screenshots")
	}

	// Zero duration defers to the storage layer's configured expiry
	url, expiresAt, err := s.storage.GenerateDownloadURL(ctx, shot.StorageKey, 0)
	if err != nil {
		s.logger.Error("Failed to presign screenshot download",
			zap.String("storage_key", shot.StorageKey),
			zap.Error(err))
		return nil, shared.ErrUpstreamStorage
	}

	return &DownloadURLResult{URL: url, ExpiresAt: expiresAt}, nil
}

// Delete removes a screenshot record and its stored object
func (s *ScreenshotService) Delete(ctx context.Context, input DeleteScreenshotInput) error {
	shot, err := s.shotRepo.FindByIDForCompany(ctx, input.CompanyID, input.ScreenshotID)
	if err != nil {
		return shared.NewDomainError("NOT_FOUND", "Screenshot not found")
	}

	if err := s.shotRepo.Delete(ctx, shot.ID); err != nil {
		s.logger.Error("Failed to delete screenshot record",
			zap.String("id", shot.ID.String()),
			zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to delete screenshot")
	}

	// Row removal is the source of truth; a failed object delete only
	// leaves an unreferenced object behind
	s.removeObject(ctx, shot.StorageKey)

	s.logger.Info("Screenshot deleted",
		zap.String("company_id", input.CompanyID.String()),
		zap.String("id", shot.ID.String()))
	return nil
}

// SweepExpired removes screenshot rows older than each company's plan
// retention window. It returns the total number of rows removed.
func (s *ScreenshotService) SweepExpired(ctx context.Context) (int64, error) {
	companies, err := s.companyRepo.FindAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("listing companies: %w", err)
	}

	var total int64
	for _, company := range companies {
		plan, err := s.planRepo.FindByID(ctx, company.PlanID)
		if err != nil {
			s.logger.Warn("Skipping retention sweep, plan lookup failed",
				zap.String("company_id", company.ID.String()),
				zap.Error(err))
			continue
		}
		if plan.RetentionDays <= 0 {
			continue
		}

		cutoff := time.Now().UTC().AddDate(0, 0, -plan.RetentionDays)
		removed, err := s.shotRepo.DeleteOlderThan(ctx, company.ID, cutoff)
		if err != nil {
			s.logger.Error("Retention sweep failed for company",
				zap.String("company_id", company.ID.String()),
				zap.Error(err))
			continue
		}
		if removed > 0 {
			s.logger.Info("Retention sweep removed screenshots",
				zap.String("company_id", company.ID.String()),
				zap.Int64("removed", removed),
				zap.Time("cutoff", cutoff))
		}
		total += removed
	}
	return total, nil
}

func (s *ScreenshotService) authorizeView(ctx context.Context, input GetReportInput) error {
	if !input.OwnerView {
		if input.RequesterID != input.UserID {
			return shared.NewDomainError("FORBIDDEN", "Employees can only view their own screenshots")
		}
		return nil
	}

	// Owners can only look inside their own company
	if _, err := s.userRepo.FindByIDForCompany(ctx, input.CompanyID, input.UserID); err != nil {
		return shared.NewDomainError("NOT_FOUND", "User not found")
	}
	return nil
}

func (s *ScreenshotService) findForDay(ctx context.Context, input GetReportInput) ([]*monitoring.Screenshot, error) {
	if _, err := time.Parse("2006-01-02", input.Date); err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Date must be formatted as YYYY-MM-DD")
	}

	shots, err := s.shotRepo.FindByUserAndDate(ctx, input.CompanyID, input.UserID, input.Date)
	if err != nil {
		s.logger.Error("Failed to load screenshots",
			zap.String("user_id", input.UserID.String()),
			zap.String("date", input.Date),
			zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load screenshots")
	}
	return shots, nil
}

func (s *ScreenshotService) contentTypeAllowed(contentType string) bool {
	for _, allowed := range s.config.AllowedTypes {
		if contentType == allowed {
			return true
		}
	}
	return false
}

func (s *ScreenshotService) removeObject(ctx context.Context, storageKey string) {
	if err := s.storage.DeleteObject(ctx, storageKey); err != nil {
		s.logger.Warn("Failed to remove stored object",
			zap.String("storage_key", storageKey),
			zap.Error(err))
	}
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	default:
		return ""
	}
}

func shotToInfo(shot *monitoring.Screenshot) ScreenshotInfo {
	return ScreenshotInfo{
		ID:           shot.ID,
		UserID:       shot.UserID,
		URL:          shot.URL,
		ContentType:  shot.ContentType,
		SizeBytes:    shot.SizeBytes,
		CaptureTime:  shot.CaptureTime,
		Date:         shot.Date,
		Hour:         shot.Hour,
		MinuteBucket: shot.MinuteBucket,
	}
}
