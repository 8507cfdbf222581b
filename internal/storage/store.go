// Package storage defines the persistence boundary the ingestion and
// analytics code program against. The sqlite implementation lives in
// internal/repository; tests substitute in-memory fakes.
package storage

import "github.com/jengzang/geolife-backend-go/internal/models"

// Store is the abstract persistence collaborator.
//
// Writes are batch-oriented with no partial-failure contract: a batch
// either succeeds as a whole or the error aborts the run. Reads return
// sequences ordered as requested; callers re-issue a read to restart it.
type Store interface {
	// PutUser persists one user record.
	PutUser(user models.User) error

	// PutActivities persists a batch of sealed activities.
	PutActivities(activities []models.Activity) error

	// PutTrackPoints persists a batch of track points.
	PutTrackPoints(points []models.TrackPoint) error

	// IterActivities returns activities matching the filter,
	// ordered by id.
	IterActivities(filter models.ActivityFilter) ([]models.Activity, error)

	// IterTrackPoints returns the points of the given activities,
	// ordered chronologically when orderByTime is set.
	IterTrackPoints(activityIDs []int64, orderByTime bool) ([]models.TrackPoint, error)
}
