package handler

import (
	"net/http"
	"slices"

	"gigdesk/backend/internal/config"
	"gigdesk/backend/internal/dashboard"
	"gigdesk/backend/internal/localization"
	"gigdesk/backend/internal/models"
	"gigdesk/backend/internal/session"

	"github.com/gin-gonic/gin"
)

// Chart canvas in SVG units; the layout template sizes the viewBox around it.
const (
	chartWidth  = 700
	chartHeight = 280
	chartTicks  = 4
)

type navLink struct {
	Title  string
	Href   string
	Active bool
}

// page is the data every template receives; Content carries the view-specific part.
type page struct {
	Title     string
	Path      string
	Lang      string
	Theme     string
	Nav       []navLink
	Collapsed bool
	Profile   models.Profile
	Toasts    []models.Notification
	ToastTTL  int64
	Content   any

	loc *localization.Localizer
}

func (p page) T(key string) string {
	return p.loc.GetString(p.Lang, key)
}

func (p page) Tf(key string, args ...any) string {
	return p.loc.Format(p.Lang, key, args...)
}

func navLinks(path string) []navLink {
	out := make([]navLink, len(dashboard.NavItems))
	for i, item := range dashboard.NavItems {
		out[i] = navLink{Title: item.Title, Href: item.Href, Active: dashboard.IsActive(item.Href, path)}
	}
	return out
}

// render builds the shared chrome and the view content under the session lock.
func (h *Handler) render(c *gin.Context, name, title string, content func(v *session.Views) any) {
	s := currentSession(c)
	p := page{
		Title:    title,
		Path:     c.Request.URL.Path,
		Lang:     h.lang(c),
		Nav:      navLinks(c.Request.URL.Path),
		ToastTTL: config.ToastTTL.Milliseconds(),
		loc:      h.Localizer,
	}
	s.With(func(v *session.Views) {
		p.Content = content(v)
		p.Collapsed = v.Sidebar().Collapsed()
		p.Profile = v.Profile().Profile()
		p.Theme = v.Settings().Settings().Theme
		p.Toasts = v.DrainFlash()
	})
	c.HTML(http.StatusOK, name, p)
}

type homeView struct {
	Cards []models.SummaryCard
	Chart dashboard.ChartGeometry
	Gigs  []models.Gig
}

func (h *Handler) HomePage(c *gin.Context) {
	h.render(c, "home.html", "Dashboard", func(v *session.Views) any {
		return homeView{
			Cards: v.Cards(),
			Chart: v.Earnings().Plot(chartWidth, chartHeight, chartTicks),
			Gigs:  v.Gigs().List(),
		}
	})
}

type gigsView struct {
	Gigs []models.Gig
}

func (h *Handler) GigsPage(c *gin.Context) {
	h.render(c, "gigs.html", "My Gigs", func(v *session.Views) any {
		return gigsView{Gigs: v.Gigs().List()}
	})
}

type gigView struct {
	Gig     models.Gig
	Editing bool
}

func (h *Handler) GigPage(c *gin.Context) {
	h.gigPage(c, false)
}

func (h *Handler) EditGigPage(c *gin.Context) {
	h.gigPage(c, true)
}

func (h *Handler) gigPage(c *gin.Context, editing bool) {
	id, err := paramID(c)
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	var found bool
	currentSession(c).With(func(v *session.Views) {
		_, found = v.Gigs().Get(id)
	})
	if !found {
		c.String(http.StatusNotFound, dashboard.ErrGigNotFound.Error())
		return
	}

	h.render(c, "gig.html", "Gig", func(v *session.Views) any {
		g, _ := v.Gigs().Get(id)
		return gigView{Gig: g, Editing: editing}
	})
}

type createGigView struct {
	Tags        []string
	Images      []int
	ImageCount  int
	MaxImages   int
	CanAddImage bool
	MinPrice    int
}

func (h *Handler) CreateGigPage(c *gin.Context) {
	h.render(c, "create_gig.html", "Create New Gig", func(v *session.Views) any {
		d := v.GigDraft()
		images := make([]int, d.ImageCount())
		for i := range images {
			images[i] = i
		}
		return createGigView{
			Tags:        d.Tags(),
			Images:      images,
			ImageCount:  d.ImageCount(),
			MaxImages:   config.MaxGigImages,
			CanAddImage: d.CanAddImage(),
			MinPrice:    config.MinGigPrice,
		}
	})
}

type earningsView struct {
	Cards  []models.SummaryCard
	Chart  dashboard.ChartGeometry
	Points []models.EarningPoint
	Total  int
}

func (h *Handler) EarningsPage(c *gin.Context) {
	h.render(c, "earnings.html", "Earnings", func(v *session.Views) any {
		e := v.Earnings()
		return earningsView{
			Cards:  v.Cards(),
			Chart:  e.Plot(chartWidth, chartHeight, chartTicks),
			Points: e.Points(),
			Total:  e.Total(),
		}
	})
}

type messagesView struct {
	Query         string
	Conversations []models.Conversation
	SelectedID    int
	Selected      *models.Conversation
	Thread        []models.Message
	Draft         string
}

// MessagesPage renders the inbox. A q parameter, when present, replaces the filter query.
func (h *Handler) MessagesPage(c *gin.Context) {
	q, hasQuery := c.GetQuery("q")
	h.render(c, "messages.html", "Messages", func(v *session.Views) any {
		in := v.Inbox()
		if hasQuery {
			in.SetQuery(q)
		}
		mv := messagesView{
			Query:         in.Query(),
			Conversations: in.Visible(),
			SelectedID:    in.SelectedID(),
			Thread:        in.Thread(),
			Draft:         in.Draft(),
		}
		if sel, ok := in.Selected(); ok {
			mv.Selected = &sel
		}
		return mv
	})
}

type profileView struct {
	Profile models.Profile
	Tab     string
}

var profileTabs = []string{"personal", "skills", "portfolio"}

func (h *Handler) ProfilePage(c *gin.Context) {
	tab := c.DefaultQuery("tab", "personal")
	if !slices.Contains(profileTabs, tab) {
		tab = "personal"
	}
	h.render(c, "profile.html", "Edit Profile", func(v *session.Views) any {
		return profileView{Profile: v.Profile().Profile(), Tab: tab}
	})
}

type channelRow struct {
	Key   string
	Label string
	On    bool
}

type settingsView struct {
	Settings models.Settings
	Channels []channelRow
	Themes   []string
}

func (h *Handler) SettingsPage(c *gin.Context) {
	lang := h.lang(c)
	h.render(c, "settings.html", "Settings", func(v *session.Views) any {
		panel := v.Settings()
		rows := make([]channelRow, 0, len(config.NotificationChannels))
		for _, key := range config.NotificationChannels {
			rows = append(rows, channelRow{
				Key:   key,
				Label: h.Localizer.GetString(lang, "settings.channel."+key),
				On:    panel.Enabled(key),
			})
		}
		themes := make([]string, 0, len(config.SupportedThemes))
		for t := range config.SupportedThemes {
			themes = append(themes, t)
		}
		slices.Sort(themes)
		return settingsView{Settings: panel.Settings(), Channels: rows, Themes: themes}
	})
}
