package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"logogrid/internal/grid"
)

type pageData struct {
	Cells  [grid.CellCount]grid.Cell
	Marker string
	Year   int
}

func (s *Server) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", pageData{
		Cells:  s.render(currentSelection(c)),
		Marker: grid.Marker,
		Year:   time.Now().Year(),
	})
}

// Shuffle is the form fallback for the reshuffle button.
func (s *Server) Shuffle(c *gin.Context) {
	s.shuffleAction(c)
	c.Redirect(http.StatusSeeOther, "/")
}
