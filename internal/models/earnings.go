package models

// EarningPoint is one month of the earnings chart.
type EarningPoint struct {
	Month  string `yaml:"month" json:"month"`
	Amount int    `yaml:"amount" json:"amount"`
}

// Trend is the direction arrow of a summary card.
type Trend string

const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
)

// SummaryCard is a static headline figure on the dashboard and earnings pages.
type SummaryCard struct {
	Title  string `yaml:"title" json:"title"`
	Value  string `yaml:"value" json:"value"`
	Change string `yaml:"change" json:"change"`
	Trend  Trend  `yaml:"trend" json:"trend"`
}
