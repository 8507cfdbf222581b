package service

import (
	"database/sql"
	"errors"
	"sync"

	"github.com/jengzang/geolife-backend-go/internal/database"
	"github.com/jengzang/geolife-backend-go/internal/geolife"
	"github.com/jengzang/geolife-backend-go/internal/ingest"
	"github.com/jengzang/geolife-backend-go/internal/storage"
)

// ErrRunInProgress is returned when an ingestion run is already executing
var ErrRunInProgress = errors.New("an ingestion run is already in progress")

// IngestService triggers full ingestion runs. A run drops and recreates
// the schema, so only one run may execute at a time.
type IngestService struct {
	db     *sql.DB
	store  storage.Store
	source geolife.SourceReader
	opts   ingest.Options

	mu sync.Mutex
}

// NewIngestService creates a new ingest service
func NewIngestService(db *sql.DB, store storage.Store, source geolife.SourceReader, opts ingest.Options) *IngestService {
	return &IngestService{
		db:     db,
		store:  store,
		source: source,
		opts:   opts,
	}
}

// Run executes one full drop-and-recreate ingestion run
func (s *IngestService) Run() (*ingest.RunSummary, error) {
	if !s.mu.TryLock() {
		return nil, ErrRunInProgress
	}
	defer s.mu.Unlock()

	if err := database.ResetSchema(s.db); err != nil {
		return nil, err
	}

	ingestor := ingest.NewIngestor(s.source, s.store, s.opts)
	return ingestor.Run()
}
