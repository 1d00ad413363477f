package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/wellnesshub/employee-api/internal/api/metrics"
	"github.com/wellnesshub/employee-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 128
)

// Dispatcher fans user lifecycle events out to a fixed set of workers using
// consistent hashing on the email, so events for one user keep their order.
// Consumption is fire-and-forget: workers record metrics and a log line.
type Dispatcher struct {
	workers []chan ports.UserEvent
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.UserEvent, numWorkers),
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.UserEvent, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Publish sends an event to the worker responsible for its email. The call
// is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Publish(event ports.UserEvent) {
	idx := d.shardIndex(event.Email)
	d.workers[idx] <- event
	metrics.UserEventQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
}

// shardIndex maps an email deterministically to a worker index.
func (d *Dispatcher) shardIndex(email string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(email))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.UserEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			metrics.UserEventsTotal.WithLabelValues(event.Action).Inc()
			metrics.UserEventQueueDepth.WithLabelValues(strconv.Itoa(id)).Set(float64(len(ch)))
			d.log.Info().
				Str("email", event.Email).
				Str("action", event.Action).
				Int("worker_id", id).
				Msg("user lifecycle event")
		}
	}
}
