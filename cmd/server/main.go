package main

import (
	"log"

	"github.com/jengzang/geolife-backend-go/internal/analytics"
	"github.com/jengzang/geolife-backend-go/internal/api"
	"github.com/jengzang/geolife-backend-go/internal/config"
	"github.com/jengzang/geolife-backend-go/internal/database"
	"github.com/jengzang/geolife-backend-go/internal/geolife"
	"github.com/jengzang/geolife-backend-go/internal/handler"
	"github.com/jengzang/geolife-backend-go/internal/ingest"
	"github.com/jengzang/geolife-backend-go/internal/repository"
	"github.com/jengzang/geolife-backend-go/internal/service"
)

func main() {
	// 加载配置
	cfg := config.Load()

	// 初始化数据库
	if err := database.Init(database.Config{Path: cfg.DBPath}); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer database.Close()

	db := database.GetDB()
	if err := database.EnsureSchema(db); err != nil {
		log.Fatal("Failed to prepare schema:", err)
	}

	// 组装依赖
	store := repository.NewSQLStore(db)
	reportRepo := repository.NewReportRepository(db)
	engine := analytics.NewEngine(store, cfg.Workers)
	source := geolife.NewDirReader(cfg.DataDir)

	trackService := service.NewTrackService(store)
	reportService := service.NewReportService(reportRepo, engine)
	ingestService := service.NewIngestService(db, store, source, ingest.Options{
		BatchSize:    cfg.BatchSize,
		MaxFileLines: cfg.MaxFileLines,
	})

	handlers := api.Handlers{
		Track:  handler.NewTrackHandler(trackService),
		Report: handler.NewReportHandler(reportService),
		Ingest: handler.NewIngestHandler(ingestService),
	}

	// 初始化路由
	router := api.SetupRouter(cfg, handlers)

	// 启动服务器
	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
