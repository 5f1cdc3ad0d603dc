package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/sirupsen/logrus"

	"goldminer/internal/domain"
)

// BadgerArchive implements the Archive interface using BadgerDB.
type BadgerArchive struct {
	db  *badger.DB
	log logrus.FieldLogger
}

// NewBadgerArchive opens the archive database at the given path.
func NewBadgerArchive(dbPath string, logger logrus.FieldLogger) (*BadgerArchive, error) {
	opts := badger.DefaultOptions(dbPath)
	opts.Logger = &badgerLogger{logger.WithField("component", "badgerdb")}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger db at %s: %w", dbPath, err)
	}

	return &BadgerArchive{
		db:  db,
		log: logger.WithField("component", "archive"),
	}, nil
}

// Close closes the archive database.
func (a *BadgerArchive) Close() error {
	if err := a.db.Close(); err != nil {
		a.log.WithError(err).Error("Error closing batch archive")
		return err
	}
	return nil
}

// batchKey identifies a batch by channel and packing date.
// Format: batch:{channel}:{YYYY-MM-DD}
func batchKey(channel string, packingDate time.Time) []byte {
	return []byte(fmt.Sprintf("batch:%s:%s", channel, packingDate.Format("2006-01-02")))
}

// channelPrefix is the key prefix for scanning all batches of a channel.
func channelPrefix(channel string) []byte {
	return []byte(fmt.Sprintf("batch:%s:", channel))
}

// SaveBatch stores or overwrites the batch for its channel and date.
func (a *BadgerArchive) SaveBatch(ctx context.Context, batch domain.GoldBatch) error {
	log := a.log.WithFields(logrus.Fields{
		"channel": batch.Origin,
		"date":    batch.PackingDate.Format("2006-01-02"),
	})

	data, err := json.Marshal(batch)
	if err != nil {
		return fmt.Errorf("failed to marshal batch: %w", err)
	}

	err = a.db.Update(func(txn *badger.Txn) error {
		return txn.Set(batchKey(batch.Origin, batch.PackingDate), data)
	})
	if err != nil {
		log.WithError(err).Error("Failed to archive batch")
		return fmt.Errorf("failed to archive batch for #%s: %w", batch.Origin, err)
	}

	log.WithField("nuggets", len(batch.Nuggets)).Info("Batch archived")
	return nil
}

// GetBatch retrieves one archived batch.
func (a *BadgerArchive) GetBatch(ctx context.Context, channel string, packingDate time.Time) (domain.GoldBatch, error) {
	var batch domain.GoldBatch

	err := a.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(batchKey(channel, packingDate))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &batch)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return domain.GoldBatch{}, ErrBatchNotFound
	}
	if err != nil {
		return domain.GoldBatch{}, fmt.Errorf("failed to get batch for #%s: %w", channel, err)
	}
	return batch, nil
}

// ListBatches returns every archived batch for a channel, newest first.
func (a *BadgerArchive) ListBatches(ctx context.Context, channel string) ([]domain.GoldBatch, error) {
	var batches []domain.GoldBatch

	err := a.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := channelPrefix(channel)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			err := item.Value(func(val []byte) error {
				var batch domain.GoldBatch
				if err := json.Unmarshal(val, &batch); err != nil {
					return fmt.Errorf("failed to unmarshal batch at key %s: %w", string(item.Key()), err)
				}
				batches = append(batches, batch)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list batches for #%s: %w", channel, err)
	}

	sort.Slice(batches, func(i, j int) bool {
		return batches[i].PackingDate.After(batches[j].PackingDate)
	})
	return batches, nil
}

// badgerLogger adapts logrus.FieldLogger to Badger's logger interface.
type badgerLogger struct {
	logger logrus.FieldLogger
}

func (l *badgerLogger) Errorf(f string, v ...interface{}) {
	l.logger.Errorf(f, v...)
}
func (l *badgerLogger) Warningf(f string, v ...interface{}) {
	l.logger.Warningf(f, v...)
}
func (l *badgerLogger) Infof(f string, v ...interface{}) {
	l.logger.Infof(f, v...)
}
func (l *badgerLogger) Debugf(f string, v ...interface{}) {
	l.logger.Debugf(f, v...)
}
