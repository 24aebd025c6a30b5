package mercado

import (
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	// DefaultBaseURL is the marketplace's daily offers listing
	DefaultBaseURL = "https://www.mercadolibre.com.ar/ofertas"

	userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	pageTimeout = 30 * time.Second
)

// Client fetches paginated listing pages
type Client struct {
	baseURL string
	http    *resty.Client
}

// NewClient returns a listing client; an empty baseURL falls back to the default
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		http: resty.New().
			SetTimeout(pageTimeout).
			SetHeader("User-Agent", userAgent),
	}
}

// FetchPage gets one page of the listing for the given source params
func (c *Client) FetchPage(params map[string]string, page int) (string, error) {
	resp, err := c.http.R().
		SetQueryParams(params).
		SetQueryParam("page", strconv.Itoa(page)).
		Get(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("Fetch page %d - %w", page, err)
	}
	if resp.StatusCode() != 200 {
		return "", fmt.Errorf("Fetch page %d - status %d", page, resp.StatusCode())
	}

	return resp.String(), nil
}
