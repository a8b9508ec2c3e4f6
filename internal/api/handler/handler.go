package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"gigdesk/backend/internal/localization"
	"gigdesk/backend/internal/models"
	"gigdesk/backend/internal/notify"
	"gigdesk/backend/internal/session"
	"gigdesk/backend/internal/web"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

var errInvalidID = errors.New("invalid id")

// Handler тримає менеджер сесій та канал доставки toast-повідомлень
type Handler struct {
	Sessions    *session.Manager
	Notifier    notify.Notifier
	Localizer   *localization.Localizer
	DefaultLang string
	Log         zerolog.Logger

	now func() time.Time
}

func NewHandler(sessions *session.Manager, notifier notify.Notifier, loc *localization.Localizer, defaultLang string, log zerolog.Logger) *Handler {
	return &Handler{
		Sessions:    sessions,
		Notifier:    notifier,
		Localizer:   loc,
		DefaultLang: defaultLang,
		Log:         log.With().Str("component", "http").Logger(),
		now:         time.Now,
	}
}

// Router builds the gin engine with every page, form action and API route.
func (h *Handler) Router() (*gin.Engine, error) {
	tmpl, err := web.Templates()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(h.Log))
	r.SetHTMLTemplate(tmpl)
	r.StaticFS("/static", http.FS(web.Static()))
	r.GET("/healthz", h.Health)

	s := r.Group("/", h.SessionMiddleware())

	// Сторінки
	s.GET("/", h.HomePage)
	s.GET("/gigs", h.GigsPage)
	s.GET("/gigs/create", h.CreateGigPage)
	s.GET("/gigs/view/:id", h.GigPage)
	s.GET("/gigs/edit/:id", h.EditGigPage)
	s.GET("/earnings", h.EarningsPage)
	s.GET("/messages", h.MessagesPage)
	s.GET("/profile", h.ProfilePage)
	s.GET("/settings", h.SettingsPage)

	// Форми (POST -> redirect)
	s.POST("/gigs/:id/toggle", h.ToggleGig)
	s.POST("/gigs/:id/delete", h.DeleteGig)
	s.POST("/gigs/create/tags", h.AddTag)
	s.POST("/gigs/create/tags/remove", h.RemoveTag)
	s.POST("/gigs/create/images", h.AddImage)
	s.POST("/gigs/create/images/remove", h.RemoveImage)
	s.POST("/gigs/create/publish", h.PublishGig)
	s.POST("/messages/select/:id", h.SelectConversation)
	s.POST("/messages/send", h.SendMessage)
	s.POST("/profile/skills", h.AddSkill)
	s.POST("/profile/skills/remove", h.RemoveSkill)
	s.POST("/profile/save", h.SaveProfile)
	s.POST("/settings/notifications", h.SetNotification)
	s.POST("/settings/theme", h.SetTheme)
	s.POST("/settings/save", h.SaveSettings)
	s.POST("/settings/delete-account", h.DeleteAccount)
	s.POST("/sidebar/toggle", h.ToggleSidebar)

	api := s.Group("/api")
	api.GET("/conversations", h.ListConversations)
	api.POST("/conversations/:id/select", h.SelectConversationJSON)
	api.GET("/thread", h.GetThread)
	api.POST("/thread", h.PostThread)
	api.GET("/gigs", h.ListGigs)
	api.POST("/gigs/:id/toggle", h.ToggleGigJSON)
	api.DELETE("/gigs/:id", h.DeleteGigJSON)
	api.GET("/earnings", h.GetEarnings)

	s.GET("/ws/toasts", h.ServeToasts)

	return r, nil
}

// Health reports liveness, the number of live sessions and the loaded toast languages.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "sessions": h.Sessions.Len(), "languages": h.Localizer.Languages()})
}

func (h *Handler) lang(c *gin.Context) string {
	return h.Localizer.Negotiate(c.GetHeader("Accept-Language"), h.DefaultLang)
}

// emit localizes n for the caller, queues it for the next rendered page when flash is set,
// and pushes it to every open tab of the session.
func (h *Handler) emit(c *gin.Context, s *session.Session, n models.Notification, flash bool) models.Notification {
	n = h.Localizer.Localize(h.lang(c), n)
	if flash {
		s.With(func(v *session.Views) { v.Flash(n) })
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()
	if err := h.Notifier.Publish(ctx, s.ID, n); err != nil {
		// toast все одно покажеться з flash-черги
		h.Log.Warn().Err(err).Str("session", s.ID).Str("key", n.Key).Msg("toast publish failed")
	}
	return n
}

func paramID(c *gin.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 0 {
		return 0, errInvalidID
	}
	return id, nil
}

func redirect(c *gin.Context, to string) {
	c.Redirect(http.StatusSeeOther, to)
}
