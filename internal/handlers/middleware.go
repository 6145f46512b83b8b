package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"logogrid/internal/logos"
	"logogrid/internal/session"
)

const (
	ctxSelection = "selection"
	ctxSessionID = "sid"
	ctxDealt     = "dealt"
)

// DisplaySession restores the active selection from the session cookie.
// A missing, forged or stale token starts a new session with a fresh deal.
func (s *Server) DisplaySession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie(session.CookieName)
		claims, err := session.ParseToken(s.secret, token)
		if err == nil && claims.PoolSize == s.Selector.Pool().Len() && s.Selector.Valid(claims.Selection) {
			c.Set(ctxSessionID, claims.SessionID)
			c.Set(ctxSelection, s.Selector.Resolve(claims.Selection))
			c.Next()
			return
		}
		if token != "" {
			s.Log.Debug("discarding session token", zap.Error(err))
		}
		c.Set(ctxSessionID, newSessionID())
		s.reshuffle(c)
		c.Next()
	}
}

func currentSelection(c *gin.Context) logos.Selection {
	val, _ := c.Get(ctxSelection)
	sel, _ := val.(logos.Selection)
	return sel
}

func (s *Server) RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.Log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
