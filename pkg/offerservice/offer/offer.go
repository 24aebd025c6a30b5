package offer

import (
	"regexp"

	"github.com/sebasfavaron/ml-scraper/pkg/pricehistory"
)

var productIDPattern = regexp.MustCompile(`MLA\d+`)

// Offer is the common currency of listings loaded from the scrape sources
type Offer struct {
	Name            string                 `json:"name" csv:"name"`
	Link            string                 `json:"link" csv:"link"`
	Image           string                 `json:"image" csv:"image"`
	Price           float64                `json:"price" csv:"price"`
	OriginalPrice   float64                `json:"original_price,omitempty" csv:"original_price"`
	DiscountPercent float64                `json:"discount_percent" csv:"discount_percent"`
	ProductID       string                 `json:"product_id,omitempty" csv:"product_id"`
	Analysis        *pricehistory.Analysis `json:"price_analysis,omitempty" csv:"-"`
}

// ExtractProductID pulls the marketplace product ID out of a URL, "" if absent.
// The same ID keys the listing on the marketplace and on the tracking site.
func ExtractProductID(url string) string {
	return productIDPattern.FindString(url)
}
