package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/retours-express/returns-platform/internal/api/metrics"
	"github.com/retours-express/returns-platform/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes carrier events to a fixed set of workers using
// consistent hashing on the return id, guaranteeing per-return event
// ordering.
type Dispatcher struct {
	workers []chan ports.ReturnEventInput
	service ports.EventService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.EventService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.ReturnEventInput, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.ReturnEventInput, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends an event to the worker responsible for its return id.
// The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(event ports.ReturnEventInput) {
	idx := d.shardIndex(event.ReturnID)
	d.workers[idx] <- event
	metrics.EventsQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
}

// EnqueueBatch enqueues multiple events preserving per-return ordering.
func (d *Dispatcher) EnqueueBatch(events []ports.ReturnEventInput) {
	for _, e := range events {
		d.Enqueue(e)
	}
}

// shardIndex maps a return id deterministically to a worker index.
func (d *Dispatcher) shardIndex(returnID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(returnID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.ReturnEventInput) {
	workerID := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			metrics.EventsQueueDepth.WithLabelValues(workerID).Set(float64(len(ch)))
			if err := d.service.Process(ctx, event); err != nil {
				metrics.EventsErrorsTotal.WithLabelValues("process_failed").Inc()
				d.log.Error().Err(err).
					Str("return_id", event.ReturnID).
					Int("worker_id", id).
					Msg("event processing failed")
				continue
			}
			metrics.EventsProcessedTotal.WithLabelValues(event.Status, event.Source).Inc()
		}
	}
}
