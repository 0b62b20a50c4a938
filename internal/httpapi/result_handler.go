package httpapi

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"result_ingestor/internal/domain"
)

// ResultService is the part of the orchestrator exposed over HTTP.
type ResultService interface {
	RetrieveResults(ctx context.Context, compType string) domain.ResultResponse
	RetrieveCompletedResults(ctx context.Context) ([]domain.ResultEventMapping, error)
	Ingest(ctx context.Context, compType string) (*domain.IngestStats, error)
	ResetResult(ctx context.Context, apiEventID string) error
	IngestState(ctx context.Context, compType string) (*domain.IngestState, error)
}

type ResultHandler struct {
	Service ResultService
	Logger  *slog.Logger
}

func (h *ResultHandler) Register(r *gin.Engine) {
	group := r.Group("/result")
	group.GET("/retrieveResults", h.retrieveResults)
	group.GET("/retrieveCompletedResults", h.retrieveCompletedResults)
	group.POST("/ingest", h.ingest)
	group.POST("/reset", h.reset)
	group.GET("/ingestState", h.ingestState)
}

// retrieveResults always answers 200 once the request is valid; provider and
// mapping failures travel in the body's status code.
func (h *ResultHandler) retrieveResults(c *gin.Context) {
	compType := strings.TrimSpace(c.Query("compType"))
	if compType == "" {
		Error(c, http.StatusBadRequest, "compType required")
		return
	}

	c.JSON(http.StatusOK, h.Service.RetrieveResults(c.Request.Context(), compType))
}

func (h *ResultHandler) retrieveCompletedResults(c *gin.Context) {
	results, err := h.Service.RetrieveCompletedResults(c.Request.Context())
	if err != nil {
		h.Logger.Error("retrieve completed results failed", "error", err)
		Error(c, http.StatusInternalServerError, "result store unavailable")
		return
	}

	c.JSON(http.StatusOK, results)
}

func (h *ResultHandler) ingest(c *gin.Context) {
	compType := strings.TrimSpace(c.Query("compType"))
	if compType == "" {
		Error(c, http.StatusBadRequest, "compType required")
		return
	}

	stats, err := h.Service.Ingest(c.Request.Context(), compType)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrProviderUnavailable):
			Error(c, http.StatusBadGateway, domain.MsgProviderUnavailable)
		case errors.Is(err, domain.ErrMappingFailed):
			Error(c, http.StatusUnprocessableEntity, domain.MsgDateParse)
		default:
			Error(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *ResultHandler) reset(c *gin.Context) {
	apiEventID := strings.TrimSpace(c.Query("apiEventId"))
	if apiEventID == "" {
		Error(c, http.StatusBadRequest, "apiEventId required")
		return
	}

	err := h.Service.ResetResult(c.Request.Context(), apiEventID)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"reset": true})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusOK, gin.H{"reset": false})
	default:
		h.Logger.Error("reset result failed", "api_event_id", apiEventID, "error", err)
		Error(c, http.StatusInternalServerError, "result store unavailable")
	}
}

func (h *ResultHandler) ingestState(c *gin.Context) {
	compType := strings.TrimSpace(c.Query("compType"))
	if compType == "" {
		Error(c, http.StatusBadRequest, "compType required")
		return
	}

	state, err := h.Service.IngestState(c.Request.Context(), compType)
	if err != nil {
		h.Logger.Error("get ingest state failed", "comp_type", compType, "error", err)
		Error(c, http.StatusInternalServerError, "result store unavailable")
		return
	}

	c.JSON(http.StatusOK, state)
}
