package ingest

import (
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/jengzang/geolife-backend-go/internal/geolife"
	"github.com/jengzang/geolife-backend-go/internal/models"
	"github.com/jengzang/geolife-backend-go/internal/storage"
)

const (
	// DefaultBatchSize is the track point flush threshold. Writes are
	// batched so peak memory stays independent of dataset size.
	DefaultBatchSize = 1000

	// DefaultMaxFileLines caps how many data lines a trajectory file may
	// hold. Files above the cap are treated as oversized input and
	// skipped whole, before any parsing.
	DefaultMaxFileLines = 2500
)

// Options tunes one ingestion run. Zero values fall back to the defaults.
type Options struct {
	BatchSize    int
	MaxFileLines int
}

// RunSummary reports what one ingestion run produced
type RunSummary struct {
	RunID        string `json:"runId"`
	Users        int    `json:"users"`
	Activities   int    `json:"activities"`
	TrackPoints  int    `json:"trackPoints"`
	SkippedFiles int    `json:"skippedFiles"` // over the line cap
	FailedFiles  int    `json:"failedFiles"`  // aborted on a parse error
}

// Ingestor drives a full ingestion run: per user it builds the label
// index, segments every trajectory file and hands the resulting model to
// the store in batches. Runs are drop-and-recreate; the caller resets the
// schema before starting one.
type Ingestor struct {
	source geolife.SourceReader
	store  storage.Store
	opts   Options

	activityIDs *Sequence
	pointIDs    *Sequence
	pointBuf    []models.TrackPoint
	summary     RunSummary
}

// NewIngestor creates an ingestor over a raw source and a store
func NewIngestor(source geolife.SourceReader, store storage.Store, opts Options) *Ingestor {
	if opts.BatchSize <= 0 {
		opts.BatchSize = DefaultBatchSize
	}
	if opts.MaxFileLines <= 0 {
		opts.MaxFileLines = DefaultMaxFileLines
	}
	return &Ingestor{source: source, store: store, opts: opts}
}

// Run ingests the whole dataset. Storage errors abort the run; a parse
// error aborts only the enclosing file.
func (ing *Ingestor) Run() (*RunSummary, error) {
	ing.activityIDs = NewSequence()
	ing.pointIDs = NewSequence()
	ing.pointBuf = ing.pointBuf[:0]
	ing.summary = RunSummary{RunID: uuid.NewString()}

	users, err := ing.source.Users()
	if err != nil {
		return nil, err
	}

	for _, userID := range users {
		if err := ing.ingestUser(userID); err != nil {
			return nil, err
		}
	}

	if err := ing.flushPoints(); err != nil {
		return nil, err
	}

	log.Printf("Ingestion run %s finished: %d users, %d activities, %d track points (%d files skipped, %d failed)",
		ing.summary.RunID, ing.summary.Users, ing.summary.Activities, ing.summary.TrackPoints,
		ing.summary.SkippedFiles, ing.summary.FailedFiles)

	summary := ing.summary
	return &summary, nil
}

func (ing *Ingestor) ingestUser(userID string) error {
	labels, err := ing.readLabels(userID)
	if err != nil {
		return err
	}

	user := models.User{ID: userID, HasLabels: len(labels) > 0}
	if err := ing.store.PutUser(user); err != nil {
		return fmt.Errorf("failed to store user %s: %w", userID, err)
	}
	ing.summary.Users++

	files, err := ing.source.TrajectoryFiles(userID)
	if err != nil {
		return err
	}

	for _, name := range files {
		if err := ing.ingestFile(userID, name, labels); err != nil {
			return err
		}
	}

	return nil
}

func (ing *Ingestor) readLabels(userID string) (geolife.LabelIndex, error) {
	r, err := ing.source.OpenLabels(userID)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return geolife.LabelIndex{}, nil
	}
	defer r.Close()

	return geolife.BuildLabelIndex(r)
}

func (ing *Ingestor) ingestFile(userID, name string, labels geolife.LabelIndex) error {
	lines, err := ing.source.ReadTrajectory(userID, name)
	if err != nil {
		return err
	}

	if len(lines) <= geolife.HeaderLines {
		return nil
	}
	dataLines := lines[geolife.HeaderLines:]

	// Oversized files are a deliberate silent skip, not an error.
	if len(dataLines) > ing.opts.MaxFileLines {
		ing.summary.SkippedFiles++
		return nil
	}

	segmenter := geolife.NewSegmenter(labels)
	for _, line := range dataLines {
		point, err := geolife.ParseTrackPointLine(line)
		if err != nil {
			var parseErr *geolife.ParseError
			if errors.As(err, &parseErr) {
				log.Printf("Skipping trajectory file %s of user %s: %v", name, userID, err)
				ing.summary.FailedFiles++
				return nil
			}
			return err
		}
		segmenter.Feed(point)
	}

	return ing.storeSegments(userID, segmenter.Finish())
}

func (ing *Ingestor) storeSegments(userID string, segments []geolife.Segment) error {
	if len(segments) == 0 {
		return nil
	}

	activities := make([]models.Activity, 0, len(segments))
	for _, seg := range segments {
		activity := models.Activity{
			ID:     ing.activityIDs.Next(),
			UserID: userID,
		}
		start, end := seg.Start, seg.End
		activity.StartDateTime = &start
		activity.EndDateTime = &end
		if seg.Mode != "" {
			mode := seg.Mode
			activity.TransportationMode = &mode
		}
		activity.TrackPointIDs = make([]int64, len(seg.Points))
		for j := range seg.Points {
			activity.TrackPointIDs[j] = ing.pointIDs.Next()
		}
		activities = append(activities, activity)
	}

	// Activities go in before their points so a point batch never
	// references an unknown activity.
	if err := ing.store.PutActivities(activities); err != nil {
		return fmt.Errorf("failed to store activities for user %s: %w", userID, err)
	}
	ing.summary.Activities += len(activities)

	for i, seg := range segments {
		for j, p := range seg.Points {
			ing.pointBuf = append(ing.pointBuf, models.TrackPoint{
				ID:         activities[i].TrackPointIDs[j],
				ActivityID: activities[i].ID,
				Latitude:   p.Lat,
				Longitude:  p.Lon,
				Altitude:   p.Altitude,
				DateDays:   p.DateDays,
				DateTime:   p.DateTime,
			})
			ing.summary.TrackPoints++

			if len(ing.pointBuf) >= ing.opts.BatchSize {
				if err := ing.flushPoints(); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

func (ing *Ingestor) flushPoints() error {
	if len(ing.pointBuf) == 0 {
		return nil
	}
	if err := ing.store.PutTrackPoints(ing.pointBuf); err != nil {
		return fmt.Errorf("failed to store track point batch: %w", err)
	}
	ing.pointBuf = ing.pointBuf[:0]
	return nil
}
