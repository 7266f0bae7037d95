// Package status exposes a small HTTP surface for health checks and the
// last sweep's outcome.
package status

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/naval41/discord-application/internal/pipeline"
	"go.uber.org/zap"
)

type Server struct {
	engine *gin.Engine
	stats  *pipeline.StatsHolder
	port   int
}

func NewServer(stats *pipeline.StatsHolder, port int, isDev bool) *Server {
	if !isDev {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		engine: gin.New(),
		stats:  stats,
		port:   port,
	}
	s.engine.Use(gin.Recovery())

	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	s.engine.GET("/status", func(c *gin.Context) {
		last := s.stats.Last()
		if last == nil {
			c.JSON(http.StatusOK, gin.H{"last_sweep": nil})
			return
		}
		c.JSON(http.StatusOK, gin.H{"last_sweep": last})
	})

	return s
}

// Run blocks serving HTTP; callers start it in a goroutine.
func (s *Server) Run(logger *zap.SugaredLogger) {
	addr := fmt.Sprintf(":%d", s.port)
	logger.Infow("status server listening", "addr", addr)
	if err := s.engine.Run(addr); err != nil {
		logger.Errorw("status server stopped", "err", err)
	}
}
