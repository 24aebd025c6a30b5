package report

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/sebasfavaron/ml-scraper/pkg/mercatrack"
	"github.com/sebasfavaron/ml-scraper/pkg/offerservice/offer"
	"github.com/sebasfavaron/ml-scraper/pkg/pricehistory"
	"github.com/sebasfavaron/ml-scraper/pkg/sftp"
)

// badge colors keyed by verdict; unknown statuses render grey
var statusColors = map[pricehistory.Status]template.CSS{
	pricehistory.StatusExcellent:  "#00a650",
	pricehistory.StatusGood:       "#3483fa",
	pricehistory.StatusSuspicious: "#ff7733",
	pricehistory.StatusNormal:     "#666",
	pricehistory.StatusUnknown:    "#999",
}

// Report holds everything the static page needs. Offers arrive already
// ranked; Featured is the analyzed subset shown in the hero section.
type Report struct {
	Offers      []offer.Offer
	Featured    []offer.Offer
	TrackerBase string
	GeneratedAt time.Time
}

// New assembles a report for the given ranked offers
func New(offers, featured []offer.Offer, trackerBase string) *Report {
	if trackerBase == "" {
		trackerBase = mercatrack.DefaultBaseURL
	}
	return &Report{
		Offers:      offers,
		Featured:    featured,
		TrackerBase: trackerBase,
		GeneratedAt: time.Now(),
	}
}

// HTML renders the full page
func (r *Report) HTML() ([]byte, error) {
	funcs := template.FuncMap{
		"formatPrice": formatPrice,
		"sparkline":   Sparkline,
		"statusColor": func(s pricehistory.Status) template.CSS {
			if c, ok := statusColors[s]; ok {
				return c
			}
			return statusColors[pricehistory.StatusUnknown]
		},
		"trackerLink": func(productID string) string {
			return r.TrackerBase + "/" + productID
		},
	}

	tmpl, err := template.New("report").Funcs(funcs).Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("Parse report template - %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, r); err != nil {
		return nil, fmt.Errorf("Render report - %w", err)
	}

	return buf.Bytes(), nil
}

// WriteFile renders the page and writes it to disk
func (r *Report) WriteFile(path string) error {
	page, err := r.HTML()
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, page, 0644); err != nil {
		return fmt.Errorf("Write report %s - %w", path, err)
	}

	log.WithFields(log.Fields{
		"Path":   path,
		"Offers": len(r.Offers),
		"Bytes":  len(page),
	}).Infoln("Wrote report")

	return nil
}

// Publish renders the page and uploads it over SFTP
func (r *Report) Publish(session *sftp.SFTP, remotePath string) error {
	page, err := r.HTML()
	if err != nil {
		return err
	}

	if err := session.Upload(remotePath, page); err != nil {
		return fmt.Errorf("Publish report - %w", err)
	}

	log.WithField("Path", remotePath).Infoln("Published report")

	return nil
}

// formatPrice renders a price with dot-grouped thousands ($1.234.567);
// fractions are dropped, matching how the marketplace displays prices
func formatPrice(v float64) string {
	s := strconv.FormatInt(int64(v), 10)

	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}

	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, c)
	}

	if neg {
		return "$-" + string(out)
	}
	return "$" + string(out)
}
