package main

import (
	"flag"
	"log"

	"github.com/jengzang/geolife-backend-go/internal/config"
	"github.com/jengzang/geolife-backend-go/internal/database"
	"github.com/jengzang/geolife-backend-go/internal/geolife"
	"github.com/jengzang/geolife-backend-go/internal/ingest"
	"github.com/jengzang/geolife-backend-go/internal/repository"
)

func main() {
	cfg := config.Load()

	dataDir := flag.String("data", cfg.DataDir, "Geolife dataset root (one folder per user)")
	dbPath := flag.String("db", cfg.DBPath, "sqlite database path")
	flag.Parse()

	if err := database.Init(database.Config{Path: *dbPath}); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer database.Close()

	db := database.GetDB()

	// 全量导入：先清空再重建
	if err := database.ResetSchema(db); err != nil {
		log.Fatal("Failed to reset schema:", err)
	}

	ingestor := ingest.NewIngestor(
		geolife.NewDirReader(*dataDir),
		repository.NewSQLStore(db),
		ingest.Options{
			BatchSize:    cfg.BatchSize,
			MaxFileLines: cfg.MaxFileLines,
		},
	)

	summary, err := ingestor.Run()
	if err != nil {
		log.Fatal("Ingestion failed:", err)
	}

	log.Printf("Run %s complete: %d users, %d activities, %d track points",
		summary.RunID, summary.Users, summary.Activities, summary.TrackPoints)
}
