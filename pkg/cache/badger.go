package cache

import (
	"time"

	badger "github.com/dgraph-io/badger"
	log "github.com/sirupsen/logrus"

	"github.com/sebasfavaron/ml-scraper/pkg/zip"
)

// BadgerCache keeps fetched tracking pages around between runs so we
// don't hammer the tracker for products we already looked up today
type BadgerCache struct {
	db  *badger.DB
	ttl time.Duration
}

// NewBadgerCache returns a Cache, takes path to cache file on disk (creates file if necessary)
func NewBadgerCache(file string, ttl time.Duration) (c Cache, err error) {
	l := log.New()
	l.SetFormatter(&log.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})
	l.SetLevel(log.WarnLevel)
	db, err := badger.Open(badger.DefaultOptions(file).WithLogger(l))
	if err != nil {
		return c, err
	}
	return BadgerCache{
		db:  db,
		ttl: ttl,
	}, nil
}

// Load returns the unzipped payload for key; a missing or expired key is an error
func (b BadgerCache) Load(key string) (payload []byte, err error) {
	var zipped []byte
	err = b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}

		zipped, err = item.ValueCopy(nil)
		if err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	payload, err = zip.Unzip(zipped)
	if err != nil {
		return nil, err
	}

	return payload, err
}

// Store zips and writes every entry in updates with the cache TTL
func (b BadgerCache) Store(updates map[string][]byte) (err error) {
	var payload []byte
	txn := b.db.NewTransaction(true)
	for k, v := range updates {
		payload, err = zip.Zip(v)
		if err != nil {
			return err
		}
		e := badger.NewEntry([]byte(k), payload).WithTTL(b.ttl)
		if err := txn.SetEntry(e); err == badger.ErrTxnTooBig {
			_ = txn.Commit()
			txn = b.db.NewTransaction(true)
			_ = txn.SetEntry(e)
		}
	}
	err = txn.Commit()
	if err != nil {
		return err
	}

	return nil
}

func (b BadgerCache) Close() {
	b.db.Close()
}
