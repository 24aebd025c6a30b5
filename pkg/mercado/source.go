package mercado

import (
	log "github.com/sirupsen/logrus"

	"github.com/sebasfavaron/ml-scraper/pkg/offerservice/offer"
)

// Source implements offer.Source over the embedded-state listing pages.
// One Source is one promotion container ("Ofertas del Día", "Ofertas
// Relámpago", ...) identified by its query params.
type Source struct {
	Name   string
	Params map[string]string
	Pages  int

	client *Client
}

// NewSource configures a paginated listing source
func NewSource(client *Client, name string, params map[string]string, pages int) Source {
	if pages < 1 {
		pages = 1
	}
	return Source{
		Name:   name,
		Params: params,
		Pages:  pages,
		client: client,
	}
}

// GetName identifies the source
func (s Source) GetName() string {
	return s.Name
}

// Get fetches and normalizes all configured pages sequentially. A page that
// fails to fetch or extract is logged and skipped; the source carries on
// with the rest.
func (s Source) Get(productionFlag bool) (offers []offer.Offer, err error) {
	pages := s.Pages
	if !productionFlag {
		pages = 1
	}

	for page := 1; page <= pages; page++ {
		html, err := s.client.FetchPage(s.Params, page)
		if err != nil {
			log.WithFields(
				log.Fields{
					"Source": s.Name,
					"Page":   page,
					"Error":  err,
				},
			).Warningln("Skipping page")
			continue
		}

		state, err := ExtractState(html)
		if err != nil {
			log.WithFields(
				log.Fields{
					"Source": s.Name,
					"Page":   page,
					"Error":  err,
				},
			).Warningln("Skipping page")
			continue
		}

		batch := ParseItems(state)
		log.WithFields(
			log.Fields{
				"Source": s.Name,
				"Page":   page,
				"Offers": len(batch),
			},
		).Infoln("Parsed page")

		offers = append(offers, batch...)
	}

	return offers, nil
}
