package handler

import (
	"net/http"
	"time"

	"gigdesk/backend/internal/config"
	"gigdesk/backend/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const sessionKey = "session"

// SessionMiddleware attaches the browser's session, opening a new one (and setting the cookie)
// when the cookie is missing or its session has been evicted.
func (h *Handler) SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := c.Cookie(config.SessionCookieName)
		s, created := h.Sessions.Resume(id)
		if created {
			http.SetCookie(c.Writer, &http.Cookie{
				Name:     config.SessionCookieName,
				Value:    s.ID,
				Path:     "/",
				MaxAge:   int(config.SessionCookieMaxAge / time.Second),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}
		c.Set(sessionKey, s)
		c.Next()
	}
}

func currentSession(c *gin.Context) *session.Session {
	return c.MustGet(sessionKey).(*session.Session)
}

// RequestLogger logs one line per request.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		ev := log.Info()
		if c.Writer.Status() >= http.StatusInternalServerError {
			ev = log.Error()
		}
		if v, ok := c.Get(sessionKey); ok {
			ev = ev.Str("session", v.(*session.Session).ID)
		}
		ev.Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}
