package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/geolife-backend-go/internal/service"
	"github.com/jengzang/geolife-backend-go/pkg/response"
)

// IngestHandler handles HTTP requests that trigger ingestion runs
type IngestHandler struct {
	ingestService *service.IngestService
}

// NewIngestHandler creates a new ingest handler
func NewIngestHandler(ingestService *service.IngestService) *IngestHandler {
	return &IngestHandler{ingestService: ingestService}
}

// Run handles POST /api/v1/ingest. The run drops and recreates all data,
// so the route sits behind JWT auth.
func (h *IngestHandler) Run(c *gin.Context) {
	summary, err := h.ingestService.Run()
	if errors.Is(err, service.ErrRunInProgress) {
		response.Conflict(c, err.Error())
		return
	}
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, summary)
}
