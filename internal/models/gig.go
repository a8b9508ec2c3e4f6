package models

import "gigdesk/backend/internal/analysis"

// GigStatus is either active or paused.
type GigStatus string

const (
	GigActive GigStatus = "active"
	GigPaused GigStatus = "paused"
)

// Toggle returns the opposite status.
func (s GigStatus) Toggle() GigStatus {
	if s == GigActive {
		return GigPaused
	}
	return GigActive
}

// Valid reports whether s is a known gig status.
func (s GigStatus) Valid() bool {
	return s == GigActive || s == GigPaused
}

// Gig is a published service listing owned by the freelancer.
type Gig struct {
	ID              int       `yaml:"id" json:"id"`
	Title           string    `yaml:"title" json:"title"`
	Status          GigStatus `yaml:"status" json:"status"`
	OrderCount      int       `yaml:"orderCount" json:"orderCount"`
	PriceLabel      string    `yaml:"priceLabel" json:"priceLabel"`
	Rating          float64   `yaml:"rating" json:"rating"`
	ViewCount       int       `yaml:"viewCount" json:"viewCount"`
	ImpressionCount int       `yaml:"impressionCount" json:"impressionCount"`
}

// ClickRate is views per impression; 0 when the gig has no impressions yet.
func (g Gig) ClickRate() float64 {
	return analysis.ClickRate(g.ViewCount, g.ImpressionCount)
}

// ClickRateLabel is ClickRate rendered as a percentage, e.g. "20.4%".
func (g Gig) ClickRateLabel() string {
	return analysis.Percent(g.ClickRate())
}

// IsActive is a template helper.
func (g Gig) IsActive() bool {
	return g.Status == GigActive
}
