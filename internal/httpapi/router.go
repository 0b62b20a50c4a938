// Package httpapi exposes result retrieval, ingestion and health endpoints
// over gin.
package httpapi

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"result_ingestor/internal/metrics"
)

type RouterConfig struct {
	Service ResultService
	DB      Pinger
	Metrics *metrics.Manager
	Logger  *slog.Logger
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(requestMetrics(cfg.Metrics))

	health := &HealthHandler{DB: cfg.DB}
	health.Register(engine)

	results := &ResultHandler{
		Service: cfg.Service,
		Logger:  cfg.Logger.With("component", "http"),
	}
	results.Register(engine)

	if cfg.Metrics != nil {
		engine.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	return engine
}

func requestMetrics(m *metrics.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		m.RecordHTTPRequest(endpoint, c.Request.Method, c.Writer.Status(), time.Since(start))
	}
}
