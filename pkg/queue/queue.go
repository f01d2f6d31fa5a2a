// Package queue hands computed fees from many producers to a single
// persistence consumer.
package queue

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/chainsafe/swap-fee-watcher/internal/metrics"
	"github.com/chainsafe/swap-fee-watcher/pkg/config"
	"github.com/chainsafe/swap-fee-watcher/pkg/fee"
)

// Writer persists a fee record
type Writer interface {
	InsertFee(ctx context.Context, f *fee.TransactionFee) error
}

// Queue is an unbounded FIFO of fee records. Producers never block; the
// backlog grows without limit when the consumer falls behind.
type Queue struct {
	writer       Writer
	pollInterval time.Duration
	logger       *zap.Logger

	mu        sync.Mutex
	items     []*fee.TransactionFee
	producers int
	opened    bool
}

// New creates a queue writing to w
func New(w Writer, cfg config.QueueConfig, logger *zap.Logger) *Queue {
	interval := cfg.PollInterval
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}
	return &Queue{
		writer:       w,
		pollInterval: interval,
		logger:       logger,
	}
}

// Producer hands out a new producer handle. The consumer exits once every
// handle has been closed.
func (q *Queue) Producer() *Producer {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.producers++
	q.opened = true
	return &Producer{q: q}
}

// Len returns the number of records waiting to be written
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

func (q *Queue) push(f *fee.TransactionFee) {
	q.mu.Lock()
	q.items = append(q.items, f)
	n := len(q.items)
	q.mu.Unlock()
	metrics.QueueBacklog.Set(float64(n))
}

// take removes every pending item. done reports that no producer remains.
func (q *Queue) take() (batch []*fee.TransactionFee, done bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	batch, q.items = q.items, nil
	metrics.QueueBacklog.Set(0)
	return batch, q.opened && q.producers == 0
}

func (q *Queue) release() {
	q.mu.Lock()
	q.producers--
	q.mu.Unlock()
}

// Run consumes the queue until every producer is closed or ctx is done,
// then writes what is left and returns.
func (q *Queue) Run(ctx context.Context) {
	q.logger.Info("Persistence queue started", zap.Duration("poll_interval", q.pollInterval))
	defer q.logger.Info("Persistence queue stopped")

	// writes already taken from the queue outlive cancellation
	writeCtx := context.WithoutCancel(ctx)
	for {
		batch, done := q.take()
		for _, f := range batch {
			q.write(writeCtx, f)
		}
		if done {
			return
		}
		if len(batch) > 0 {
			continue
		}

		select {
		case <-ctx.Done():
			batch, _ = q.take()
			for _, f := range batch {
				q.write(writeCtx, f)
			}
			return
		case <-time.After(q.pollInterval):
		}
	}
}

func (q *Queue) write(ctx context.Context, f *fee.TransactionFee) {
	if err := q.writer.InsertFee(ctx, f); err != nil {
		metrics.PersistenceFailuresTotal.Inc()
		q.logger.Error("Failed to persist fee, dropping",
			zap.String("tx_hash", f.TxHash),
			zap.Error(err))
		return
	}
	metrics.PersistenceWritesTotal.Inc()
}

// Producer submits records to a Queue
type Producer struct {
	q    *Queue
	once sync.Once
}

// Submit enqueues f without blocking
func (p *Producer) Submit(f *fee.TransactionFee) {
	p.q.push(f)
}

// Close releases the handle. Submitting after Close is a programming error
// but still enqueues.
func (p *Producer) Close() {
	p.once.Do(p.q.release)
}
