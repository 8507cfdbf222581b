package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/geolife-backend-go/internal/config"
	"github.com/jengzang/geolife-backend-go/internal/handler"
	"github.com/jengzang/geolife-backend-go/internal/middleware"
)

// Handlers bundles the handlers the router wires up
type Handlers struct {
	Track  *handler.TrackHandler
	Report *handler.ReportHandler
	Ingest *handler.IngestHandler
}

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config, h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	// CORS 中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Geolife Backend API is running",
		})
	})

	// API 路由组
	api := r.Group("/api/v1")
	api.Use(middleware.RateLimit(cfg.RateLimit, cfg.RateLimitWindow))
	{
		// 用户与轨迹接口
		api.GET("/users", h.Track.GetUsers)
		api.GET("/activities", h.Track.GetActivities)
		api.GET("/activities/:id/trackpoints", h.Track.GetActivityTrackPoints)

		// 分析报表接口
		reports := api.Group("/reports")
		{
			reports.GET("/counts", h.Report.GetRowCounts)
			reports.GET("/average-activities", h.Report.GetAverageActivities)
			reports.GET("/top-users", h.Report.GetTopUsers)
			reports.GET("/users-by-mode", h.Report.GetUsersByMode)
			reports.GET("/mode-counts", h.Report.GetModeCounts)
			reports.GET("/busiest-year", h.Report.GetBusiestYear)
			reports.GET("/distance", h.Report.GetUserModeDistance)
			reports.GET("/altitude-gain", h.Report.GetTopAltitudeGain)
			reports.GET("/invalid-activities", h.Report.GetInvalidActivities)
			reports.GET("/forbidden-city", h.Report.GetForbiddenCityUsers)
			reports.GET("/modal-modes", h.Report.GetModalModes)
		}

		// 重新导入接口，全量覆盖，需要鉴权
		api.POST("/ingest", middleware.Auth(cfg.JWTSecret), h.Ingest.Run)
	}

	return r
}
