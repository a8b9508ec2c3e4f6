package handler

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"gigdesk/backend/internal/dashboard"
	"gigdesk/backend/internal/models"
	"gigdesk/backend/internal/session"

	"github.com/gin-gonic/gin"
)

// back picks where a form action returns to: an explicit "back" field, then the Referer
// when it points at this host, then fallback.
func back(c *gin.Context, fallback string) string {
	if to := c.PostForm("back"); isLocalPath(to) {
		return to
	}
	if ref, err := url.Parse(c.GetHeader("Referer")); err == nil && ref.Host == c.Request.Host && isLocalPath(ref.Path) {
		if ref.RawQuery != "" {
			return ref.Path + "?" + ref.RawQuery
		}
		return ref.Path
	}
	return fallback
}

// isLocalPath accepts only same-origin absolute paths. Browsers read "/\host" like "//host".
func isLocalPath(p string) bool {
	if !strings.HasPrefix(p, "/") || strings.HasPrefix(p, "//") || strings.Contains(p, `\`) {
		return false
	}
	u, err := url.Parse(p)
	return err == nil && u.Scheme == "" && u.Host == ""
}

// gigAction runs a toggle or delete and flashes its toast. Unknown ids are a silent no-op.
func (h *Handler) gigAction(c *gin.Context, act func(b *dashboard.GigBoard, id int) (models.Notification, bool)) {
	id, err := paramID(c)
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	s := currentSession(c)
	var (
		n  models.Notification
		ok bool
	)
	s.With(func(v *session.Views) { n, ok = act(v.Gigs(), id) })
	if ok {
		h.emit(c, s, n, true)
	}
	redirect(c, back(c, "/gigs"))
}

func (h *Handler) ToggleGig(c *gin.Context) {
	h.gigAction(c, (*dashboard.GigBoard).ToggleStatus)
}

func (h *Handler) DeleteGig(c *gin.Context) {
	h.gigAction(c, (*dashboard.GigBoard).Delete)
}

func (h *Handler) AddTag(c *gin.Context) {
	tag := c.PostForm("tag")
	currentSession(c).With(func(v *session.Views) { v.GigDraft().AddTag(tag) })
	redirect(c, "/gigs/create")
}

func (h *Handler) RemoveTag(c *gin.Context) {
	tag := c.PostForm("tag")
	currentSession(c).With(func(v *session.Views) { v.GigDraft().RemoveTag(tag) })
	redirect(c, "/gigs/create")
}

func (h *Handler) AddImage(c *gin.Context) {
	currentSession(c).With(func(v *session.Views) { v.GigDraft().AddImage() })
	redirect(c, "/gigs/create")
}

func (h *Handler) RemoveImage(c *gin.Context) {
	idx, err := strconv.Atoi(c.PostForm("index"))
	if err != nil {
		c.String(http.StatusBadRequest, "invalid image index")
		return
	}
	currentSession(c).With(func(v *session.Views) { v.GigDraft().RemoveImage(idx) })
	redirect(c, "/gigs/create")
}

func (h *Handler) PublishGig(c *gin.Context) {
	s := currentSession(c)
	var n models.Notification
	s.With(func(v *session.Views) { n = v.GigDraft().Publish() })
	h.emit(c, s, n, true)
	redirect(c, "/gigs")
}

func (h *Handler) SelectConversation(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	var selErr error
	currentSession(c).With(func(v *session.Views) { selErr = v.Inbox().Select(id) })
	if errors.Is(selErr, dashboard.ErrConversationNotFound) {
		c.String(http.StatusNotFound, selErr.Error())
		return
	}
	redirect(c, back(c, "/messages"))
}

func (h *Handler) SendMessage(c *gin.Context) {
	text := c.PostForm("text")
	now := h.now()
	currentSession(c).With(func(v *session.Views) { v.Inbox().Compose(text, now) })
	redirect(c, "/messages")
}

func (h *Handler) AddSkill(c *gin.Context) {
	skill := c.PostForm("skill")
	currentSession(c).With(func(v *session.Views) { v.Profile().AddSkill(skill) })
	redirect(c, "/profile?tab=skills")
}

func (h *Handler) RemoveSkill(c *gin.Context) {
	skill := c.PostForm("skill")
	currentSession(c).With(func(v *session.Views) { v.Profile().RemoveSkill(skill) })
	redirect(c, "/profile?tab=skills")
}

func (h *Handler) SaveProfile(c *gin.Context) {
	s := currentSession(c)
	var n models.Notification
	s.With(func(v *session.Views) { n = v.Profile().Save() })
	h.emit(c, s, n, true)
	redirect(c, back(c, "/profile"))
}

func (h *Handler) SetNotification(c *gin.Context) {
	key := c.PostForm("key")
	on, err := strconv.ParseBool(c.PostForm("enabled"))
	if err != nil {
		c.String(http.StatusBadRequest, "invalid enabled flag")
		return
	}

	var setErr error
	currentSession(c).With(func(v *session.Views) { setErr = v.Settings().SetNotification(key, on) })
	if setErr != nil {
		c.String(http.StatusBadRequest, setErr.Error())
		return
	}
	redirect(c, "/settings")
}

func (h *Handler) SetTheme(c *gin.Context) {
	theme := c.PostForm("theme")
	var setErr error
	currentSession(c).With(func(v *session.Views) { setErr = v.Settings().SetTheme(theme) })
	if setErr != nil {
		c.String(http.StatusBadRequest, setErr.Error())
		return
	}
	redirect(c, "/settings")
}

func (h *Handler) SaveSettings(c *gin.Context) {
	s := currentSession(c)
	var n models.Notification
	s.With(func(v *session.Views) { n = v.Settings().Save() })
	h.emit(c, s, n, true)
	redirect(c, "/settings")
}

// DeleteAccount only tells the user to contact support.
func (h *Handler) DeleteAccount(c *gin.Context) {
	s := currentSession(c)
	var n models.Notification
	s.With(func(v *session.Views) { n = v.Settings().RequestAccountDeletion() })
	h.emit(c, s, n, true)
	redirect(c, "/settings")
}

func (h *Handler) ToggleSidebar(c *gin.Context) {
	currentSession(c).With(func(v *session.Views) { v.Sidebar().Toggle() })
	redirect(c, back(c, "/"))
}
