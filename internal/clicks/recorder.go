// Package clicks records click-count increments asynchronously so redirects
// never wait on the store. Increments flow through a bounded queue consumed
// by a dedicated worker; when the queue is full new increments are dropped
// and counted, which keeps load visible instead of spawning unbounded work.
package clicks

import (
	"context"
	"sync/atomic"

	"github.com/serroba/shortlink/internal/shortener"
	"go.uber.org/zap"
)

// Counter is the subset of the repository the recorder needs.
type Counter interface {
	IncrementClickCount(ctx context.Context, code shortener.Code) (int64, error)
}

// Recorder consumes queued click increments with a single worker.
type Recorder struct {
	counter Counter
	queue   chan shortener.Code
	dropped atomic.Int64
	logger  *zap.Logger
	cancel  context.CancelFunc
	done    chan struct{}
}

// NewRecorder creates a recorder with the given queue capacity.
func NewRecorder(counter Counter, queueSize int, logger *zap.Logger) *Recorder {
	return &Recorder{
		counter: counter,
		queue:   make(chan shortener.Code, queueSize),
		logger:  logger,
		done:    make(chan struct{}),
	}
}

// Record enqueues an increment for the code. It never blocks: when the
// queue is full the increment is dropped, since click counts are a
// best-effort analytic.
func (r *Recorder) Record(code shortener.Code) {
	select {
	case r.queue <- code:
	default:
		dropped := r.dropped.Add(1)
		r.logger.Warn("click queue full, dropping increment",
			zap.String("code", string(code)),
			zap.Int64("totalDropped", dropped),
		)
	}
}

// Dropped returns the number of increments dropped due to backpressure.
func (r *Recorder) Dropped() int64 {
	return r.dropped.Load()
}

// Start begins consuming queued increments.
func (r *Recorder) Start(ctx context.Context) error {
	ctx, r.cancel = context.WithCancel(ctx)

	go r.consumeLoop(ctx)

	return nil
}

func (r *Recorder) consumeLoop(ctx context.Context) {
	defer close(r.done)

	for {
		select {
		case <-ctx.Done():
			return
		case code := <-r.queue:
			r.increment(ctx, code)
		}
	}
}

func (r *Recorder) increment(ctx context.Context, code shortener.Code) {
	count, err := r.counter.IncrementClickCount(ctx, code)
	if err != nil {
		// Never retried: a lost increment is acceptable, a stuck queue is not.
		r.logger.Error("failed to increment click count",
			zap.String("code", string(code)),
			zap.Error(err),
		)

		return
	}

	r.logger.Debug("recorded click",
		zap.String("code", string(code)),
		zap.Int64("clickCount", count),
	)
}

// Shutdown stops the worker and waits for the in-flight increment to finish.
func (r *Recorder) Shutdown() error {
	if r.cancel == nil {
		return nil
	}

	r.cancel()
	<-r.done

	return nil
}
