package dashboard

import (
	"slices"
	"strconv"
	"strings"

	"gigdesk/backend/internal/analysis"
	"gigdesk/backend/internal/models"
)

// EarningsChart is the monthly earnings line chart. It only formats, it never aggregates beyond Total.
type EarningsChart struct {
	points []models.EarningPoint
}

// PlotPoint is a data point projected into chart coordinates.
type PlotPoint struct {
	X, Y   float64
	Month  string
	Amount int
	Label  string
}

// Tick is a horizontal grid line with its axis label.
type Tick struct {
	Y     float64
	Value int
	Label string
}

// ChartGeometry is everything the template needs to draw the SVG.
type ChartGeometry struct {
	Width, Height float64
	Points        []PlotPoint
	Ticks         []Tick
	Polyline      string
}

func NewEarningsChart(points []models.EarningPoint) *EarningsChart {
	return &EarningsChart{points: slices.Clone(points)}
}

func (c *EarningsChart) Points() []models.EarningPoint {
	return slices.Clone(c.points)
}

func (c *EarningsChart) Total() int {
	return analysis.Sum(c.amounts())
}

// AxisLabel formats a y-axis value, e.g. "$2400".
func (c *EarningsChart) AxisLabel(v int) string {
	return analysis.Dollars(v)
}

// Plot projects the series onto a width x height canvas with tickCount+1 grid lines.
// The y-axis starts at 0 and ends at the maximum rounded up to a whole tick step.
func (c *EarningsChart) Plot(width, height float64, tickCount int) ChartGeometry {
	if tickCount < 1 {
		tickCount = 1
	}
	g := ChartGeometry{Width: width, Height: height}

	_, hi := analysis.Bounds(c.amounts())
	step := niceStep(hi, tickCount)
	top := step * tickCount

	for i := 0; i <= tickCount; i++ {
		v := step * i
		g.Ticks = append(g.Ticks, Tick{
			Y:     height - float64(v)/float64(top)*height,
			Value: v,
			Label: c.AxisLabel(v),
		})
	}

	n := len(c.points)
	coords := make([]string, 0, n)
	for i, p := range c.points {
		x := width / 2
		if n > 1 {
			x = float64(i) * width / float64(n-1)
		}
		y := height - float64(p.Amount)/float64(top)*height
		g.Points = append(g.Points, PlotPoint{X: x, Y: y, Month: p.Month, Amount: p.Amount, Label: c.AxisLabel(p.Amount)})
		coords = append(coords, formatCoord(x)+","+formatCoord(y))
	}
	g.Polyline = strings.Join(coords, " ")
	return g
}

func (c *EarningsChart) amounts() []int {
	out := make([]int, len(c.points))
	for i, p := range c.points {
		out[i] = p.Amount
	}
	return out
}

// niceStep picks a round tick step (multiple of 1, 2 or 5 times a power of ten) so that
// tickCount steps cover hi. It never returns less than 1.
func niceStep(hi, tickCount int) int {
	if hi <= 0 {
		return 1
	}
	raw := (hi + tickCount - 1) / tickCount
	magnitude := 1
	for magnitude*10 <= raw {
		magnitude *= 10
	}
	for _, m := range []int{1, 2, 5, 10} {
		if m*magnitude >= raw {
			return m * magnitude
		}
	}
	return 10 * magnitude
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
