package service

import (
	"context"

	"github.com/jengzang/geolife-backend-go/internal/analytics"
	"github.com/jengzang/geolife-backend-go/internal/models"
	"github.com/jengzang/geolife-backend-go/internal/repository"
	"github.com/jengzang/geolife-backend-go/internal/spatial"
	"github.com/jengzang/geolife-backend-go/internal/stats"
)

// ReportService exposes the analytics reports: SQL-side aggregations come
// from the report repository, point-fold reports from the analytics engine
type ReportService struct {
	reportRepo *repository.ReportRepository
	engine     *analytics.Engine
}

// NewReportService creates a new report service
func NewReportService(reportRepo *repository.ReportRepository, engine *analytics.Engine) *ReportService {
	return &ReportService{
		reportRepo: reportRepo,
		engine:     engine,
	}
}

// RowCounts reports how many users, activities and track points are stored
func (s *ReportService) RowCounts() (*models.RowCounts, error) {
	return s.reportRepo.RowCounts()
}

// ActivityCountSummary summarizes the per-user activity count
// distribution over users that have at least one activity. The mean is
// the average-activities-per-user figure.
func (s *ReportService) ActivityCountSummary() (*stats.Summary, error) {
	counts, err := s.reportRepo.ActivityCountsPerUser()
	if err != nil {
		return nil, err
	}

	values := make([]float64, len(counts))
	for i, c := range counts {
		values[i] = float64(c.ActivityCount)
	}
	summary := stats.Summarize(values)
	return &summary, nil
}

// TopUsersByActivityCount returns the n most active users
func (s *ReportService) TopUsersByActivityCount(n int) ([]models.UserActivityCount, error) {
	counts, err := s.reportRepo.ActivityCountsPerUser()
	if err != nil {
		return nil, err
	}
	if n > 0 && len(counts) > n {
		counts = counts[:n]
	}
	return counts, nil
}

// UsersByMode lists the users with at least one activity of the given mode
func (s *ReportService) UsersByMode(mode string) ([]string, error) {
	return s.reportRepo.UsersByMode(mode)
}

// ActivityCountPerMode counts labeled activities per transportation mode
func (s *ReportService) ActivityCountPerMode() ([]models.ModeCount, error) {
	return s.reportRepo.ActivityCountPerMode()
}

// BusiestYear reports the year with the most activities and recorded hours
func (s *ReportService) BusiestYear() (*models.BusiestYearReport, error) {
	return s.reportRepo.BusiestYear()
}

// UserModeDistance accumulates haversine distance for one user, mode and year
func (s *ReportService) UserModeDistance(ctx context.Context, userID, mode string, year int) (*models.UserDistance, error) {
	return s.engine.UserModeDistance(ctx, userID, mode, year)
}

// TopAltitudeGain ranks users by total meters climbed
func (s *ReportService) TopAltitudeGain(ctx context.Context, n int) ([]models.UserAltitudeGain, error) {
	return s.engine.TopAltitudeGain(ctx, n)
}

// InvalidActivityCounts counts activities with a 5-minute temporal gap per user
func (s *ReportService) InvalidActivityCounts(ctx context.Context) ([]models.UserInvalidActivities, error) {
	return s.engine.InvalidActivityCounts(ctx)
}

// UsersInForbiddenCity lists users with any point inside the Forbidden City box
func (s *ReportService) UsersInForbiddenCity(ctx context.Context) ([]string, error) {
	return s.engine.UsersInsideGeofence(ctx, spatial.ForbiddenCity)
}

// ModalModes reports each user's most used transportation mode
func (s *ReportService) ModalModes() ([]models.UserMode, error) {
	return s.engine.ModalModes()
}
