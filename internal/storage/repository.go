package storage

import (
	"context"
	"errors"
	"time"

	"goldminer/internal/domain"
)

// ErrBatchNotFound is returned when no batch exists for a channel and date.
var ErrBatchNotFound = errors.New("gold batch not found")

// Archive stores packed gold batches for later inspection. Rendered
// digests are never stored, only the batches they are computed from.
type Archive interface {
	// SaveBatch stores a batch, keyed by origin channel and packing date.
	// Re-running an exploration for the same window overwrites the entry.
	SaveBatch(ctx context.Context, batch domain.GoldBatch) error

	// GetBatch retrieves the batch packed for a channel on a given date.
	GetBatch(ctx context.Context, channel string, packingDate time.Time) (domain.GoldBatch, error)

	// ListBatches returns all batches archived for a channel, newest first.
	ListBatches(ctx context.Context, channel string) ([]domain.GoldBatch, error)

	// Close gracefully shuts down the archive.
	Close() error
}
