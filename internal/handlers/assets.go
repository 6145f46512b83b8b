package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetAssets returns public asset info for frontend usage.
func (s *Server) GetAssets(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"fixed_logo":    s.Cfg.FixedLogo,
		"pool_size":     s.Selector.Pool().Len(),
		"live_displays": s.Hub.Count(),
	})
}
