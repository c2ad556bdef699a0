package queue

import (
	"context"
	"hash/fnv"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/freelaverse/web-gateway/internal/api/metrics"
	"github.com/freelaverse/web-gateway/internal/core/domain"
	"github.com/freelaverse/web-gateway/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 64
)

// Dispatcher routes payment updates to a fixed set of workers using
// consistent hashing on the user email, so updates for one user are applied
// in arrival order even though no ordering is required across users.
type Dispatcher struct {
	workers []chan domain.PaymentUpdate
	sink    ports.PaymentSink
	log     zerolog.Logger

	mu   sync.Mutex
	done <-chan struct{}
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, sink ports.PaymentSink, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.PaymentUpdate, numWorkers),
		sink:    sink,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.PaymentUpdate, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	d.mu.Lock()
	d.done = ctx.Done()
	d.mu.Unlock()
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Apply enqueues an update on the worker responsible for its email,
// satisfying ports.PaymentSink so the hub client can feed the dispatcher
// directly. Once the workers are stopped the update is dropped instead of
// blocking the hub read loop on a full buffer.
func (d *Dispatcher) Apply(update domain.PaymentUpdate) {
	d.mu.Lock()
	done := d.done
	d.mu.Unlock()

	select {
	case d.workers[d.shardIndex(update.Email)] <- update:
	case <-done:
		d.log.Warn().
			Str("email", update.Email).
			Str("status", update.Status).
			Msg("dispatcher stopped, payment update dropped")
	}
}

// shardIndex maps an email deterministically to a worker index.
func (d *Dispatcher) shardIndex(email string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(strings.ToLower(email)))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.PaymentUpdate) {
	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-ch:
			if !ok {
				return
			}
			d.sink.Apply(update)
			metrics.PaymentUpdatesAppliedTotal.WithLabelValues(update.Status).Inc()
			d.log.Info().
				Str("email", update.Email).
				Str("status", update.Status).
				Int("worker_id", id).
				Msg("payment update applied")
		}
	}
}
