package offerservice

import (
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/sebasfavaron/ml-scraper/pkg/cache"
	"github.com/sebasfavaron/ml-scraper/pkg/mercado"
	"github.com/sebasfavaron/ml-scraper/pkg/mercatrack"
	cfg "github.com/sebasfavaron/ml-scraper/pkg/offerservice/config"
	"github.com/sebasfavaron/ml-scraper/pkg/offerservice/offer"
	"github.com/sebasfavaron/ml-scraper/pkg/pricehistory"
	"github.com/sebasfavaron/ml-scraper/pkg/report"
	"github.com/sebasfavaron/ml-scraper/pkg/sftp"
)

const (
	// MaxConcurrentLookups bounds the history fan-out against the tracker
	MaxConcurrentLookups = 4
)

// OfferService is the central process that scrapes the listings, verifies
// the top discounts against the price tracker, and renders the report
type OfferService struct {
	mux            *sync.Mutex
	errs           PipelineErrors
	productionFlag bool
	cfg            *cfg.File

	market  *mercado.Client
	tracker *mercatrack.Client
}

// New initializes and returns an OfferService pointer
func New(config *cfg.File, productionFlag bool) (p *OfferService, err error) {
	p = &OfferService{
		productionFlag: productionFlag,
		mux:            new(sync.Mutex),
		cfg:            config,
	}

	p.errs = NewPE(p.mux)

	if _, err = config.GetSources(); err != nil {
		return p, err
	}

	return p, nil
}

// Run executes the whole pipeline. Partial failures (a dead source, a
// product without history) degrade the output; only producing no report at
// all is an error.
func (p *OfferService) Run() error {
	defer track(time.Now(), "OfferService")

	log.WithFields(
		log.Fields{
			"Started at":      time.Now().UTC(),
			"Production Flag": p.productionFlag,
		},
	).Println("OfferService Started")

	sources, err := p.cfg.GetSources()
	p.errs.Log(err, "Load sources from config")

	var pageCache cache.Cache
	if path, ttl := p.cfg.GetCacheTTL(); path != "" {
		pageCache, err = cache.NewBadgerCache(path, ttl)
		if err != nil {
			p.errs.Log(err, "Open page cache")
			pageCache = nil
		} else {
			defer pageCache.Close()
		}
	}

	p.market = mercado.NewClient(p.cfg.Marketplace.BaseURL)
	p.tracker = mercatrack.NewClient(p.cfg.Tracker.BaseURL, pageCache)

	q := p.buildQueue(sources)

	m, err := q.GetOffers()
	if err != nil {
		p.errs.Log(err, "Load offers")
		return fmt.Errorf("Load offers - %w", err)
	}

	ranked := m.Ranked()
	featured := p.analyzeTop(ranked)

	rep := report.New(ranked, featured, p.cfg.Tracker.BaseURL)
	err = rep.WriteFile(p.cfg.Report.OutputPath)
	if err != nil {
		p.errs.Log(err, "Write report")
		return fmt.Errorf("Write report - %w", err)
	}

	if p.cfg.Report.CSVPath != "" {
		err = m.DumpToCSV(p.cfg.Report.CSVPath)
		p.errs.Log(err, "Create offer CSV dump")
	}

	if p.cfg.UploadConfigured() {
		p.errs.Log(p.publish(rep), "Publish report")
	}

	if len(p.errs.Errors) > 0 {
		log.WithFields(
			log.Fields{
				"Errors":               p.errs,
				"Max Memory Allocated": p.errs.GetMaxMemory(),
			},
		).Errorln("Finished with errors")
	} else {
		log.WithFields(
			log.Fields{
				"Max Memory Allocated": p.errs.GetMaxMemory(),
			},
		).Infoln("Finished without errors")
	}

	return nil
}

func (p *OfferService) buildQueue(sources []cfg.SourceConfig) *offer.Queue {
	var list []offer.Source
	for _, s := range sources {
		list = append(list, mercado.NewSource(p.market, s.Name, s.Params, s.Pages))
	}

	q := offer.NewQueueFromSources(list, p.productionFlag)

	if p.cfg.Tracker.PromosURL != "" {
		q.AppendOne(mercatrack.NewFeaturedSource(p.tracker, "destacadas", p.cfg.Tracker.PromosURL))
	}

	return q
}

// analyzeTop attaches a history verdict to the best N discounts. Lookups run
// with a bounded fan-out; any offer whose history cannot be fetched keeps an
// unknown verdict instead of failing the batch.
func (p *OfferService) analyzeTop(ranked []offer.Offer) []offer.Offer {
	n := p.cfg.Report.TopN
	if n > len(ranked) {
		n = len(ranked)
	}
	if n == 0 {
		return nil
	}

	featured := make([]offer.Offer, n)
	copy(featured, ranked[:n])

	var wg sync.WaitGroup
	input := make(chan int, n)

	workers := MaxConcurrentLookups
	if n < workers {
		workers = n
	}

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for idx := range input {
				featured[idx].Analysis = p.analyze(&featured[idx])
			}
		}()
	}

	for idx := range featured {
		input <- idx
	}
	close(input)

	wg.Wait()

	return featured
}

func (p *OfferService) analyze(o *offer.Offer) *pricehistory.Analysis {
	id := o.ProductID
	if id == "" {
		id = offer.ExtractProductID(o.Link)
	}
	if id == "" {
		log.WithField("Offer", o.Name).Debugln("No product ID, skipping history")
		return pricehistory.Unknown("ID no encontrado")
	}
	o.ProductID = id

	snapshots, err := p.tracker.History(id)
	if err != nil {
		log.WithFields(
			log.Fields{
				"Product": id,
				"Error":   err,
			},
		).Warningln("Failed to fetch price history")
		return pricehistory.Unknown("")
	}

	return pricehistory.Analyze(snapshots, o.Price, p.cfg.Analysis)
}

func (p *OfferService) publish(rep *report.Report) error {
	host, port, user, password, remotePath, err := p.cfg.GetSFTP()
	if err != nil {
		return err
	}

	sess, err := sftp.NewSession(host, user, password, port)
	if err != nil {
		return fmt.Errorf("Open upload session - %w", err)
	}
	defer sess.Close()

	return rep.Publish(sess, remotePath)
}
