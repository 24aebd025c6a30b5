package offer

import (
	"fmt"
	"os"
	"sort"

	"github.com/gocarina/gocsv"
	log "github.com/sirupsen/logrus"
)

// OfferMap stores a unique, ordered set of scraped offers.
// Links are the identity key; the first occurrence wins and later duplicates
// are counted but dropped. Links are compared verbatim - two links that differ
// only in query parameters are two offers.
type OfferMap struct {
	offers      []Offer
	seen        map[string]struct{}
	nOffers     uint64
	nDuplicates uint64
	nDropped    uint64
}

// NewOfferMap returns an empty aggregation
func NewOfferMap() *OfferMap {
	return &OfferMap{
		seen: make(map[string]struct{}),
	}
}

// Add merges one batch into the map, preserving first occurrence per link.
// Offers without a link never made it through normalization and are dropped
// silently; they are expected noise in scraped data.
func (m *OfferMap) Add(batch []Offer) (added int) {
	for i := range batch {
		if batch[i].Link == "" {
			m.nDropped++
			continue
		}
		if _, exist := m.seen[batch[i].Link]; exist {
			m.nDuplicates++
			continue
		}
		m.seen[batch[i].Link] = struct{}{}
		m.offers = append(m.offers, batch[i])
		m.nOffers++
	}
	return int(m.nOffers)
}

// Ranked returns the offers sorted by discount descending. The sort is
// stable, so equal discounts keep their fetch order.
func (m *OfferMap) Ranked() []Offer {
	ranked := make([]Offer, len(m.offers))
	copy(ranked, m.offers)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DiscountPercent > ranked[j].DiscountPercent
	})
	return ranked
}

// Len returns the number of unique offers collected so far
func (m *OfferMap) Len() int {
	return len(m.offers)
}

// Stats returns number of unique offers, duplicates, and dropped partials
func (m *OfferMap) Stats() (nOffers, nDuplicates, nDropped uint64) {
	return m.nOffers, m.nDuplicates, m.nDropped
}

// DumpToCSV writes the ranked offers into a csv file for debugging runs
func (m *OfferMap) DumpToCSV(filename string) (err error) {
	ranked := m.Ranked()
	if len(ranked) == 0 {
		return fmt.Errorf("No offers to dump")
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	err = gocsv.MarshalFile(&ranked, f)
	if err != nil {
		return fmt.Errorf("Marshal offers to CSV - %w", err)
	}

	log.WithFields(
		log.Fields{
			"File":   filename,
			"Offers": len(ranked),
		},
	).Infoln("Dumped offers")

	return nil
}
