package report

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/sebasfavaron/ml-scraper/pkg/collection"
)

const (
	sparklineWidth  = 200
	sparklineHeight = 50
)

// Sparkline renders the price series as a small inline SVG polyline with a
// dot on the most recent observation. Fewer than two points draws nothing.
func Sparkline(prices []float64) template.HTML {
	if len(prices) < 2 {
		return ""
	}

	minP := collection.LowestFloat(prices)
	maxP := collection.HighestFloat(prices)
	priceRange := maxP - minP
	if priceRange == 0 {
		priceRange = 1
	}

	y := func(p float64) float64 {
		return float64(sparklineHeight) - ((p-minP)/priceRange)*float64(sparklineHeight-10) - 5
	}

	points := make([]string, len(prices))
	for i, p := range prices {
		x := float64(i) / float64(len(prices)-1) * float64(sparklineWidth)
		points[i] = fmt.Sprintf("%.1f,%.1f", x, y(p))
	}

	path := "M" + strings.Join(points, " L")

	svg := fmt.Sprintf(
		`<svg width="%d" height="%d" class="sparkline"><path d="%s" fill="none" stroke="#3483fa" stroke-width="2"/><circle cx="%d" cy="%.1f" r="3" fill="#00a650"/></svg>`,
		sparklineWidth,
		sparklineHeight,
		path,
		sparklineWidth,
		y(prices[len(prices)-1]),
	)

	return template.HTML(svg)
}
