package server

import (
	"net/http"

	"github.com/gagnaveita/portvakt/internal/version"
	"github.com/gin-gonic/gin"
)

// Root serves the service banner.
func (s *Server) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Portvakt kennitala usage API",
		"version": version.Version,
	})
}

// Health reports liveness. It deliberately touches no external service.
func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": s.clock.Now(),
	})
}
