package handler

import (
	"errors"
	"net/http"

	"gigdesk/backend/internal/dashboard"
	"gigdesk/backend/internal/models"
	"gigdesk/backend/internal/session"

	"github.com/gin-gonic/gin"
)

// gigJSON adds the derived click rate to a gig.
type gigJSON struct {
	models.Gig
	ClickRate float64 `json:"clickRate"`
}

func toGigJSON(g models.Gig) gigJSON {
	return gigJSON{Gig: g, ClickRate: g.ClickRate()}
}

// ListConversations returns the filtered inbox. A q parameter, when present, replaces the query.
func (h *Handler) ListConversations(c *gin.Context) {
	q, hasQuery := c.GetQuery("q")
	var (
		list     []models.Conversation
		query    string
		selected int
	)
	currentSession(c).With(func(v *session.Views) {
		in := v.Inbox()
		if hasQuery {
			in.SetQuery(q)
		}
		list, query, selected = in.Visible(), in.Query(), in.SelectedID()
	})
	c.JSON(http.StatusOK, gin.H{"query": query, "conversations": list, "selectedId": selected})
}

func (h *Handler) SelectConversationJSON(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var selErr error
	currentSession(c).With(func(v *session.Views) { selErr = v.Inbox().Select(id) })
	if errors.Is(selErr, dashboard.ErrConversationNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": selErr.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"selectedId": id})
}

func (h *Handler) GetThread(c *gin.Context) {
	var (
		conv     models.Conversation
		found    bool
		messages []models.Message
	)
	currentSession(c).With(func(v *session.Views) {
		conv, found = v.Inbox().Selected()
		messages = v.Inbox().Thread()
	})
	resp := gin.H{"messages": messages}
	if found {
		resp["conversation"] = conv
	}
	c.JSON(http.StatusOK, resp)
}

type composeRequest struct {
	Text string `json:"text"`
}

// PostThread sends a message. Whitespace-only text is accepted and ignored.
func (h *Handler) PostThread(c *gin.Context) {
	var req composeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	var (
		msg  models.Message
		sent bool
	)
	now := h.now()
	currentSession(c).With(func(v *session.Views) { msg, sent = v.Inbox().Compose(req.Text, now) })
	if !sent {
		c.JSON(http.StatusOK, gin.H{"sent": false})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"sent": true, "message": msg})
}

func (h *Handler) ListGigs(c *gin.Context) {
	var gigs []models.Gig
	currentSession(c).With(func(v *session.Views) { gigs = v.Gigs().List() })

	out := make([]gigJSON, len(gigs))
	for i, g := range gigs {
		out[i] = toGigJSON(g)
	}
	c.JSON(http.StatusOK, gin.H{"gigs": out})
}

func (h *Handler) ToggleGigJSON(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s := currentSession(c)
	var (
		n  models.Notification
		ok bool
		g  models.Gig
	)
	s.With(func(v *session.Views) {
		n, ok = v.Gigs().ToggleStatus(id)
		g, _ = v.Gigs().Get(id)
	})
	if !ok {
		c.JSON(http.StatusOK, gin.H{"changed": false})
		return
	}
	n = h.emit(c, s, n, false)
	c.JSON(http.StatusOK, gin.H{"changed": true, "gig": toGigJSON(g), "notification": n})
}

func (h *Handler) DeleteGigJSON(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s := currentSession(c)
	var (
		n  models.Notification
		ok bool
	)
	s.With(func(v *session.Views) { n, ok = v.Gigs().Delete(id) })
	if !ok {
		c.JSON(http.StatusOK, gin.H{"changed": false})
		return
	}
	n = h.emit(c, s, n, false)
	c.JSON(http.StatusOK, gin.H{"changed": true, "notification": n})
}

func (h *Handler) GetEarnings(c *gin.Context) {
	var (
		points []models.EarningPoint
		total  int
		cards  []models.SummaryCard
	)
	currentSession(c).With(func(v *session.Views) {
		points, total, cards = v.Earnings().Points(), v.Earnings().Total(), v.Cards()
	})
	c.JSON(http.StatusOK, gin.H{"points": points, "total": total, "cards": cards})
}
