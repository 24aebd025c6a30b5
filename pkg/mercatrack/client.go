package mercatrack

import (
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	log "github.com/sirupsen/logrus"

	"github.com/sebasfavaron/ml-scraper/pkg/cache"
	"github.com/sebasfavaron/ml-scraper/pkg/pricehistory"
)

const (
	// DefaultBaseURL is the per-product tracking page prefix
	DefaultBaseURL = "https://mercadotrack.com/MLA/trackings"

	userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	// history pages get a tighter budget than listing pages; a slow tracker
	// should not stall the whole featured section
	historyTimeout = 15 * time.Second
)

// Client fetches tracking pages, optionally through a TTL cache so repeated
// runs don't re-hit the tracker for the same products
type Client struct {
	baseURL string
	http    *resty.Client
	cache   cache.Cache
}

// NewClient returns a tracking client; pageCache may be nil to skip caching
func NewClient(baseURL string, pageCache cache.Cache) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		cache:   pageCache,
		http: resty.New().
			SetTimeout(historyTimeout).
			SetHeader("User-Agent", userAgent),
	}
}

// TrackingURL returns the page a human would open for a product's history
func (c *Client) TrackingURL(productID string) string {
	return c.baseURL + "/" + productID
}

// History fetches and extracts the price history for one product, sorted
// chronologically and capped to the retained window. A product without
// tracked history returns (nil, nil); a transport failure or bad status is
// an error the caller degrades to an unknown analysis.
func (c *Client) History(productID string) ([]pricehistory.Snapshot, error) {
	html, err := c.page(productID)
	if err != nil {
		return nil, err
	}

	snapshots, err := ExtractSnapshots(html)
	if err != nil || snapshots == nil {
		return nil, err
	}

	return pricehistory.SortAndCap(snapshots), nil
}

func (c *Client) page(productID string) (string, error) {
	if c.cache != nil {
		if body, err := c.cache.Load(productID); err == nil {
			log.WithField("Product", productID).Debugln("Tracking page served from cache")
			return string(body), nil
		}
	}

	resp, err := c.http.R().Get(c.TrackingURL(productID))
	if err != nil {
		return "", fmt.Errorf("Fetch tracking page %s - %w", productID, err)
	}
	if resp.StatusCode() != 200 {
		return "", fmt.Errorf("Fetch tracking page %s - status %d", productID, resp.StatusCode())
	}

	body := resp.String()
	if c.cache != nil {
		err = c.cache.Store(map[string][]byte{productID: []byte(body)})
		if err != nil {
			log.WithField("Error", err).Warningln("Failed to cache tracking page")
		}
	}

	return body, nil
}

// FetchPage gets an arbitrary page off the tracker (the featured promos listing)
func (c *Client) FetchPage(url string) (string, error) {
	resp, err := c.http.R().Get(url)
	if err != nil {
		return "", fmt.Errorf("Fetch %s - %w", url, err)
	}
	if resp.StatusCode() != 200 {
		return "", fmt.Errorf("Fetch %s - status %d", url, resp.StatusCode())
	}
	return resp.String(), nil
}
