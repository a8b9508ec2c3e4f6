package dashboard

import (
	"strings"

	"gigdesk/backend/internal/models"
)

// NavItems is the sidebar navigation in display order.
var NavItems = []models.NavItem{
	{Title: "Dashboard", Href: "/"},
	{Title: "My Gigs", Href: "/gigs"},
	{Title: "Earnings", Href: "/earnings"},
	{Title: "Messages", Href: "/messages"},
	{Title: "Edit Profile", Href: "/profile"},
	{Title: "Settings", Href: "/settings"},
}

// IsActive matches "/" exactly and every other entry by path prefix.
func IsActive(href, path string) bool {
	if href == "/" {
		return path == "/"
	}
	return strings.HasPrefix(path, href)
}

// Sidebar keeps the collapsed flag of the navigation.
type Sidebar struct {
	collapsed bool
}

func (s *Sidebar) Toggle() {
	s.collapsed = !s.collapsed
}

func (s *Sidebar) Collapsed() bool {
	return s.collapsed
}
