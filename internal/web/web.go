// Package web embeds the HTML templates and static assets of the dashboard.
package web

import (
	"embed"
	"html/template"
	"io/fs"

	"gigdesk/backend/internal/analysis"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Funcs are the helpers available to every template.
var Funcs = template.FuncMap{
	"dollars": analysis.Dollars,
	"percent": analysis.Percent,
	"add":     func(a, b int) int { return a + b },
	"below":   func(y, by float64) float64 { return y + by },
}

// Templates parses every page template into one set; pages are addressed by file name.
func Templates() (*template.Template, error) {
	return template.New("gigdesk").Funcs(Funcs).ParseFS(templateFS, "templates/*.html")
}

// Static is the asset tree served under /static.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// the embed pattern guarantees the directory exists
		panic(err)
	}
	return sub
}
