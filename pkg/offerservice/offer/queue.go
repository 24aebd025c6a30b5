package offer

import (
	"fmt"
	"sync"
	"sync/atomic"

	log "github.com/sirupsen/logrus"
)

const (
	// MaxConcurrentSources defines how many sources are fetched simultaneously
	MaxConcurrentSources = 4
)

// Queue allows to process multiple offer sources at once.
// Fetches run concurrently but results are merged serially in queue order,
// so dedup first-occurrence and the final ranking stay deterministic.
type Queue struct {
	queue          []Source
	productionFlag bool
}

// NewQueueFromSources takes a slice of the source interface, returns pointer to Queue
func NewQueueFromSources(s []Source, productionFlag bool) (q *Queue) {
	q = &Queue{
		productionFlag: productionFlag,
	}
	q.queue = append(q.queue, s...)
	return q
}

// AppendOne source to queue so it can be processed later
func (q *Queue) AppendOne(s Source) {
	q.queue = append(q.queue, s)
}

// AppendMany sources to queue so they can be processed later
func (q *Queue) AppendMany(s []Source) {
	q.queue = append(q.queue, s...)
}

// GetOffers processes the queue of sources and returns a deduplicated offer map.
// A failing source only loses its own batch; the queue errors out only when
// every source came back empty-handed.
func (q *Queue) GetOffers() (m *OfferMap, err error) {
	nsources := len(q.queue)
	if nsources < 1 {
		return m, fmt.Errorf("Empty queue")
	}

	var (
		wg      sync.WaitGroup
		errs    uint64
		results = make([][]Offer, nsources)
		input   = make(chan int, nsources)
	)

	workers := MaxConcurrentSources
	if nsources < workers {
		workers = nsources
	}

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for idx := range input {
				offers, err := q.queue[idx].Get(q.productionFlag)
				if err != nil {
					log.WithFields(
						log.Fields{
							"Source": q.queue[idx].GetName(),
							"Error":  err,
						},
					).Warningln("Failed to fetch source from queue")
					atomic.AddUint64(&errs, 1)
					continue
				}
				results[idx] = offers
			}
		}()
	}

	for idx := range q.queue {
		input <- idx
	}
	close(input)
	log.WithField("Sources", nsources).Infoln("Queue prepared")

	wg.Wait()

	m = NewOfferMap()
	for idx := range results {
		m.Add(results[idx])
	}

	if m.Len() == 0 {
		return m, fmt.Errorf("No offers loaded from the queue (%d source errors)", errs)
	}

	nOffers, nDuplicates, nDropped := m.Stats()
	log.WithFields(
		log.Fields{
			"Offers":     nOffers,
			"Duplicates": nDuplicates,
			"Dropped":    nDropped,
		},
	).Infoln("Queue merged")

	return m, nil
}
