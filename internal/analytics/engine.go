package analytics

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/jengzang/geolife-backend-go/internal/models"
	"github.com/jengzang/geolife-backend-go/internal/spatial"
	"github.com/jengzang/geolife-backend-go/internal/stats"
	"github.com/jengzang/geolife-backend-go/internal/storage"
)

// DefaultWorkers bounds the per-activity fetch pool
const DefaultWorkers = 8

// Engine runs the point-fold reports over the persisted model.
//
// The per-activity point fetch is fanned out over a bounded worker pool;
// workers only fetch and fold their own activity. Merging partial results
// into shared per-user accumulators happens on the calling goroutine after
// the pool has drained. That ordering is an invariant, not a tuning knob:
// no worker ever touches an accumulator map.
type Engine struct {
	store   storage.Store
	workers int
}

// NewEngine creates an analytics engine over a store
func NewEngine(store storage.Store, workers int) *Engine {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	return &Engine{store: store, workers: workers}
}

// fetchFold applies fold to every activity's chronologically sorted points
// using the bounded pool. Each worker writes only its own slot of the
// result slice, so results are race-free and ready to merge once Wait
// returns.
func fetchFold[T any](ctx context.Context, store storage.Store, activities []models.Activity, workers int, fold func(models.Activity, []models.TrackPoint) T) ([]T, error) {
	results := make([]T, len(activities))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, activity := range activities {
		i, activity := i, activity
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			points, err := store.IterTrackPoints([]int64{activity.ID}, true)
			if err != nil {
				return fmt.Errorf("failed to fetch points for activity %d: %w", activity.ID, err)
			}
			results[i] = fold(activity, points)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// UserModeDistance accumulates haversine distance over all of one user's
// activities with the given mode whose start falls inside the given year.
// Each activity's points are fetched and folded separately, so distance
// between points of two different activities is never counted.
func (e *Engine) UserModeDistance(ctx context.Context, userID, mode string, year int) (*models.UserDistance, error) {
	filter := models.ActivityFilter{
		UserID:             userID,
		TransportationMode: mode,
		StartAfter:         fmt.Sprintf("%04d-01-01 00:00:00", year),
		StartBefore:        fmt.Sprintf("%04d-01-01 00:00:00", year+1),
	}
	activities, err := e.store.IterActivities(filter)
	if err != nil {
		return nil, err
	}

	distances, err := fetchFold(ctx, e.store, activities, e.workers, func(_ models.Activity, points []models.TrackPoint) float64 {
		return TotalDistanceKm(points)
	})
	if err != nil {
		return nil, err
	}

	return &models.UserDistance{
		UserID:             userID,
		TransportationMode: mode,
		Year:               year,
		DistanceKm:         stats.Sum(distances),
	}, nil
}

// TopAltitudeGain returns the n users who climbed the most meters, summed
// over all their activities, highest first.
func (e *Engine) TopAltitudeGain(ctx context.Context, n int) ([]models.UserAltitudeGain, error) {
	activities, err := e.store.IterActivities(models.ActivityFilter{})
	if err != nil {
		return nil, err
	}

	gains, err := fetchFold(ctx, e.store, activities, e.workers, func(_ models.Activity, points []models.TrackPoint) float64 {
		return AltitudeGainMeters(points)
	})
	if err != nil {
		return nil, err
	}

	perUser := make(map[string]float64)
	for i, activity := range activities {
		if gains[i] > 0 {
			perUser[activity.UserID] += gains[i]
		}
	}

	ranked := make([]models.UserAltitudeGain, 0, len(perUser))
	for userID, gain := range perUser {
		ranked = append(ranked, models.UserAltitudeGain{UserID: userID, GainMeters: gain})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].GainMeters != ranked[j].GainMeters {
			return ranked[i].GainMeters > ranked[j].GainMeters
		}
		return ranked[i].UserID < ranked[j].UserID
	})

	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked, nil
}

// InvalidActivityCounts counts, per user, the activities containing at
// least one temporal gap of GapThreshold or more. An activity counts once
// no matter how many gaps it holds. Users come back in id order.
func (e *Engine) InvalidActivityCounts(ctx context.Context) ([]models.UserInvalidActivities, error) {
	activities, err := e.store.IterActivities(models.ActivityFilter{})
	if err != nil {
		return nil, err
	}

	invalid, err := fetchFold(ctx, e.store, activities, e.workers, func(_ models.Activity, points []models.TrackPoint) bool {
		return HasInvalidGap(points)
	})
	if err != nil {
		return nil, err
	}

	perUser := make(map[string]int)
	for i, activity := range activities {
		if invalid[i] {
			perUser[activity.UserID]++
		}
	}

	report := make([]models.UserInvalidActivities, 0, len(perUser))
	for userID, count := range perUser {
		report = append(report, models.UserInvalidActivities{UserID: userID, InvalidCount: count})
	}
	sort.Slice(report, func(i, j int) bool { return report[i].UserID < report[j].UserID })
	return report, nil
}

// UsersInsideGeofence lists each user with at least one point inside the
// fence. A user appears once however many of their points match.
func (e *Engine) UsersInsideGeofence(ctx context.Context, fence spatial.Geofence) ([]string, error) {
	activities, err := e.store.IterActivities(models.ActivityFilter{})
	if err != nil {
		return nil, err
	}

	hits, err := fetchFold(ctx, e.store, activities, e.workers, func(_ models.Activity, points []models.TrackPoint) bool {
		return AnyInside(points, fence)
	})
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var users []string
	for i, activity := range activities {
		if hits[i] && !seen[activity.UserID] {
			seen[activity.UserID] = true
			users = append(users, activity.UserID)
		}
	}
	sort.Strings(users)
	return users, nil
}

// ModalModes picks each user's most used transportation mode among their
// labeled activities. Ties resolve to the lexicographically smallest mode
// so the report is deterministic. Users come back in id order.
func (e *Engine) ModalModes() ([]models.UserMode, error) {
	activities, err := e.store.IterActivities(models.ActivityFilter{LabeledOnly: true})
	if err != nil {
		return nil, err
	}

	counts := make(map[string]map[string]int)
	for _, activity := range activities {
		if activity.TransportationMode == nil {
			continue
		}
		if counts[activity.UserID] == nil {
			counts[activity.UserID] = make(map[string]int)
		}
		counts[activity.UserID][*activity.TransportationMode]++
	}

	report := make([]models.UserMode, 0, len(counts))
	for userID, modes := range counts {
		best := models.UserMode{UserID: userID}
		for mode, count := range modes {
			if count > best.Count || (count == best.Count && mode < best.Mode) {
				best.Mode = mode
				best.Count = count
			}
		}
		report = append(report, best)
	}
	sort.Slice(report, func(i, j int) bool { return report[i].UserID < report[j].UserID })
	return report, nil
}
