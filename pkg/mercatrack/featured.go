package mercatrack

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/sebasfavaron/ml-scraper/pkg/collection"
	"github.com/sebasfavaron/ml-scraper/pkg/mercado"
	"github.com/sebasfavaron/ml-scraper/pkg/offerservice/offer"
)

// The promos page has no usable DOM boundaries between product blocks, so
// each product is scraped out of a fixed character window around its
// tracking anchor. Known fragility: a markup change upstream shifts these
// windows; the batch-level recover keeps that from killing a run.
const (
	windowBefore = 100
	windowAfter  = 2000
)

var (
	anchorPattern = regexp.MustCompile(`/MLA/trackings/(MLA\d+)`)
	// locale format: dot grouping, comma decimals ($ 1.234.567,89)
	pricePattern = regexp.MustCompile(`\$\s?\d{1,3}(?:\.\d{3})*(?:,\d+)?`)
	// a discount token sits right after a markup boundary, which keeps a
	// "-20%" inside a product name from matching
	discountPattern = regexp.MustCompile(`["'>(]\s*-(\d{1,3}(?:,\d+)?)\s*%`)
	textPattern     = regexp.MustCompile(`>([^<>]{11,})<`)
	imagePattern    = regexp.MustCompile(`https?://http2\.mlstatic\.com/D_[A-Za-z0-9_.-]+`)
)

// timeAgoWord marks relative timestamps ("hace 3 días") that look like names
const timeAgoWord = "hace"

// FeaturedSource implements offer.Source over the tracker's promotions page
// with windowed regex extraction. Best effort by nature: nothing here is
// allowed to fail the run.
type FeaturedSource struct {
	Name string
	URL  string

	client *Client
}

// NewFeaturedSource configures the heuristic promos source
func NewFeaturedSource(client *Client, name, url string) FeaturedSource {
	return FeaturedSource{
		Name:   name,
		URL:    url,
		client: client,
	}
}

// GetName identifies the source
func (f FeaturedSource) GetName() string {
	return f.Name
}

// Get fetches the promos page and scrapes offers out of it; implements Source
func (f FeaturedSource) Get(productionFlag bool) ([]offer.Offer, error) {
	html, err := f.client.FetchPage(f.URL)
	if err != nil {
		return nil, err
	}
	return ParseFeatured(html), nil
}

// ParseFeatured extracts one offer per unique tracking anchor, in order of
// first appearance. An offer is synthesized even when name extraction fails,
// since the tracking reference is identity enough. Any panic drops the whole
// batch and the run continues without it.
func ParseFeatured(html string) (offers []offer.Offer) {
	defer func() {
		if r := recover(); r != nil {
			log.WithField("Panic", r).Warningln("Featured scrape aborted, returning empty batch")
			offers = nil
		}
	}()

	matches := anchorPattern.FindAllStringSubmatchIndex(html, -1)
	seen := make(map[string]struct{})

	for _, m := range matches {
		id := html[m[2]:m[3]]
		if _, exist := seen[id]; exist {
			continue
		}
		seen[id] = struct{}{}

		start := m[0] - windowBefore
		if start < 0 {
			start = 0
		}
		end := m[0] + windowAfter
		if end > len(html) {
			end = len(html)
		}

		offers = append(offers, scrapeWindow(id, html[start:end]))
	}

	return offers
}

func scrapeWindow(id, scope string) offer.Offer {
	o := offer.Offer{
		Name:      collection.CollateString(findName(scope), "Producto "+id),
		Link:      "https://www.mercadolibre.com.ar/p/" + id,
		ProductID: id,
	}

	prices := pricePattern.FindAllString(scope, -1)
	switch {
	case len(prices) >= 2:
		o.OriginalPrice = parseLocalePrice(prices[0])
		o.Price = parseLocalePrice(prices[1])
	case len(prices) == 1:
		o.Price = parseLocalePrice(prices[0])
	}

	if d := discountPattern.FindStringSubmatch(scope); d != nil {
		o.DiscountPercent = parseLocaleNumber(d[1])
	} else if o.OriginalPrice > 0 && o.Price > 0 && o.OriginalPrice > o.Price {
		o.DiscountPercent = round2((1 - o.Price/o.OriginalPrice) * 100)
	}

	o.Image = imagePattern.FindString(scope)
	if o.Image == "" {
		o.Image = mercado.ImageURL(id)
	}

	return o
}

// findName returns the first inter-tag text long enough to be a title that
// is neither a price nor a relative timestamp, "" if none qualifies
func findName(scope string) string {
	for _, m := range textPattern.FindAllStringSubmatch(scope, -1) {
		segment := m[1]
		if strings.Contains(segment, "$") || strings.Contains(strings.ToLower(segment), timeAgoWord) {
			continue
		}
		name := collection.Sanitize(segment)
		if len(name) > 10 {
			return name
		}
	}
	return ""
}

// parseLocalePrice turns "$ 1.234.567,89" into 1234567.89; bad input is 0
func parseLocalePrice(s string) float64 {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "$"))
	return parseLocaleNumber(s)
}

func parseLocaleNumber(s string) float64 {
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
