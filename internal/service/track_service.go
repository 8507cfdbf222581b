package service

import (
	"github.com/jengzang/geolife-backend-go/internal/models"
	"github.com/jengzang/geolife-backend-go/internal/repository"
)

// TrackService handles read access to the ingested model
type TrackService struct {
	store *repository.SQLStore
}

// NewTrackService creates a new track service
func NewTrackService(store *repository.SQLStore) *TrackService {
	return &TrackService{store: store}
}

// GetUsers retrieves users with filtering and pagination
func (s *TrackService) GetUsers(filter models.UserFilter) ([]models.User, int64, error) {
	if filter.PageSize < 1 {
		filter.PageSize = 100
	}
	if filter.PageSize > 1000 {
		filter.PageSize = 1000
	}
	return s.store.GetUsers(filter)
}

// GetActivities retrieves activities with filtering and pagination
func (s *TrackService) GetActivities(filter models.ActivityFilter) ([]models.Activity, error) {
	if filter.PageSize < 1 {
		filter.PageSize = 100
	}
	if filter.PageSize > 1000 {
		filter.PageSize = 1000
	}
	return s.store.IterActivities(filter)
}

// GetActivityTrackPoints retrieves one activity's points in time order
func (s *TrackService) GetActivityTrackPoints(activityID int64) ([]models.TrackPoint, error) {
	return s.store.IterTrackPoints([]int64{activityID}, true)
}
