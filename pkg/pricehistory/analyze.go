package pricehistory

import (
	"github.com/sebasfavaron/ml-scraper/pkg/collection"
)

// Status classifies how honest a discount looks against the product's history
type Status string

const (
	StatusExcellent  Status = "excellent"
	StatusGood       Status = "good"
	StatusSuspicious Status = "suspicious"
	StatusNormal     Status = "normal"
	StatusUnknown    Status = "unknown"
)

const (
	// lowPriceMargin widens the all-time-low check to within 5% of the minimum
	lowPriceMargin = 1.05

	msgNoHistory  = "Sin historial"
	msgNoPrices   = "Sin datos de precio"
	msgExcellent  = "🔥 Precio mínimo histórico"
	msgGood       = "✅ Buen precio vs. promedio"
	msgSuspicious = "⚠️ Precio inflado antes del descuento"
	msgNormal     = "📊 Precio dentro del rango normal"
)

// Thresholds carries the two heuristic constants that have no derivation;
// they are configurable but should not be retuned without data
type Thresholds struct {
	// GoodPrice marks a price meaningfully below average (current < avg * GoodPrice)
	GoodPrice float64 `yaml:"good_price"`
	// SuspiciousInflation flags a recent price bump (recentAvg > olderAvg * SuspiciousInflation)
	SuspiciousInflation float64 `yaml:"suspicious_inflation"`
}

// DefaultThresholds returns the values the heuristic was written with
func DefaultThresholds() Thresholds {
	return Thresholds{
		GoodPrice:           0.85,
		SuspiciousInflation: 1.10,
	}
}

// Analysis is the verdict for one offer; immutable once computed
type Analysis struct {
	Status   Status    `json:"status"`
	Message  string    `json:"message"`
	MinPrice float64   `json:"min_price,omitempty"`
	MaxPrice float64   `json:"max_price,omitempty"`
	AvgPrice float64   `json:"avg_price,omitempty"`
	Prices   []float64 `json:"prices,omitempty"`
}

// Unknown returns the analysis attached to offers whose history could not be fetched
func Unknown(message string) *Analysis {
	return &Analysis{
		Status:  StatusUnknown,
		Message: collection.CollateString(message, msgNoHistory),
	}
}

// Analyze is a pure function of (snapshots, currentPrice): it classifies the
// offer into one of the authenticity tiers. Branches are evaluated in strict
// order; an offer near its all-time low that also shows a recent inflation
// bump still classifies excellent, the stronger signal.
func Analyze(snapshots []Snapshot, currentPrice float64, th Thresholds) *Analysis {
	if len(snapshots) == 0 {
		return Unknown(msgNoHistory)
	}

	var prices []float64
	for i := range snapshots {
		if snapshots[i].Price > 0 {
			prices = append(prices, snapshots[i].Price)
		}
	}
	if len(prices) == 0 {
		return Unknown(msgNoPrices)
	}

	minPrice := collection.LowestFloat(prices)
	maxPrice := collection.HighestFloat(prices)
	avgPrice := collection.MeanFloat(prices)

	recent := prices
	var older []float64
	if len(prices) > RecentWindow {
		recent = prices[len(prices)-RecentWindow:]
		older = prices[:len(prices)-RecentWindow]
	}

	recentAvg := collection.MeanFloat(recent)
	olderAvg := recentAvg
	if len(older) > 0 {
		olderAvg = collection.MeanFloat(older)
	}

	var (
		status  Status
		message string
	)
	switch {
	case currentPrice <= minPrice*lowPriceMargin:
		status = StatusExcellent
		message = msgExcellent
	case currentPrice < avgPrice*th.GoodPrice:
		status = StatusGood
		message = msgGood
	case olderAvg > 0 && recentAvg > olderAvg*th.SuspiciousInflation:
		status = StatusSuspicious
		message = msgSuspicious
	default:
		status = StatusNormal
		message = msgNormal
	}

	return &Analysis{
		Status:   status,
		Message:  message,
		MinPrice: minPrice,
		MaxPrice: maxPrice,
		AvgPrice: avgPrice,
		Prices:   prices,
	}
}
