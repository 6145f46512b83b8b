package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"logogrid/internal/grid"
	"logogrid/internal/logos"
)

type gridPayload struct {
	FixedLogo string      `json:"fixed_logo"`
	Selection []string    `json:"selection"`
	Cells     []grid.Cell `json:"cells"`
}

func (s *Server) gridPayload(sel logos.Selection) gridPayload {
	cells := s.render(sel)
	selection := sel.Logos
	if selection == nil {
		selection = []string{}
	}
	return gridPayload{
		FixedLogo: s.Cfg.FixedLogo,
		Selection: selection,
		Cells:     cells[:],
	}
}

func (s *Server) GetGrid(c *gin.Context) {
	c.JSON(http.StatusOK, s.gridPayload(currentSelection(c)))
}

func (s *Server) PostShuffle(c *gin.Context) {
	c.JSON(http.StatusOK, s.gridPayload(s.shuffleAction(c)))
}
