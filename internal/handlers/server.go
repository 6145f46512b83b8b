package handlers

import (
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"logogrid"
	"logogrid/internal/config"
	"logogrid/internal/grid"
	"logogrid/internal/logos"
	"logogrid/internal/session"
)

type Server struct {
	Cfg      config.Config
	Log      *zap.Logger
	Selector *logos.Selector
	Hub      *Hub
	secret   []byte
	ttl      time.Duration
}

func NewServer(cfg config.Config, selector *logos.Selector, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		Cfg:      cfg,
		Log:      log,
		Selector: selector,
		Hub:      NewHub(),
		secret:   []byte(cfg.SessionSecret),
		ttl:      time.Duration(cfg.SessionTTLHours) * time.Hour,
	}
}

// Router wires every route onto a fresh gin engine.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.RequestLogger())
	r.SetHTMLTemplate(template.Must(template.ParseFS(logogrid.EmbeddedPages, "web/index.html")))

	r.GET("/static/style.css", serveEmbedded("web/style.css", "text/css; charset=utf-8"))
	if s.Cfg.ImgDir != "" {
		r.Static("/img", s.Cfg.ImgDir)
	}

	display := r.Group("/", s.DisplaySession())
	display.GET("/", s.Index)
	display.POST("/shuffle", s.Shuffle)
	display.GET("/ws", func(c *gin.Context) {
		s.HandleWS(c.Writer, c.Request, currentSelection(c))
	})

	api := r.Group("/api")
	{
		api.GET("/assets", s.GetAssets)
		api.GET("/grid", s.DisplaySession(), s.GetGrid)
		api.POST("/shuffle", s.DisplaySession(), s.PostShuffle)
	}

	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	return r
}

func serveEmbedded(path, contentType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, err := logogrid.EmbeddedPages.ReadFile(path)
		if err != nil {
			c.Status(http.StatusNotFound)
			return
		}
		c.Data(http.StatusOK, contentType, data)
	}
}

// reshuffle deals a new selection and replaces the session cookie.
func (s *Server) reshuffle(c *gin.Context) logos.Selection {
	sel := s.Selector.Deal()
	sid, _ := c.Get(ctxSessionID)
	sessionID, _ := sid.(string)
	if sessionID == "" {
		sessionID = newSessionID()
	}
	s.issue(c, sessionID, sel)
	c.Set(ctxSelection, sel)
	c.Set(ctxDealt, true)
	s.Log.Debug("reshuffled", zap.String("session", sessionID), zap.Int("size", len(sel.Logos)))
	return sel
}

// shuffleAction runs the reshuffle for one user action. A request that
// already dealt while opening its session keeps that deal.
func (s *Server) shuffleAction(c *gin.Context) logos.Selection {
	if c.GetBool(ctxDealt) {
		return currentSelection(c)
	}
	return s.reshuffle(c)
}

func (s *Server) issue(c *gin.Context, sessionID string, sel logos.Selection) {
	token, err := session.GenerateToken(s.secret, sessionID, sel.Indices, s.Selector.Pool().Len(), s.ttl)
	if err != nil {
		s.Log.Error("sign session token", zap.Error(err))
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(session.CookieName, token, int(s.ttl.Seconds()), "/", "", false, true)
}

func (s *Server) render(sel logos.Selection) [grid.CellCount]grid.Cell {
	return grid.Render(s.Cfg.FixedLogo, sel.Logos)
}
