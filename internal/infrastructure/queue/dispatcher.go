package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/getready/ats-system/internal/api/metrics"
	"github.com/getready/ats-system/internal/core/domain"
	"github.com/getready/ats-system/internal/core/ports"
)

const (
	defaultWorkers   = 4
	defaultQueueSize = 256
)

// Dispatcher routes activity events to a fixed set of workers using
// consistent hashing on the application ID, so one application's trail is
// always written in the order its events were recorded.
type Dispatcher struct {
	workers []chan domain.ActivityEvent
	service ports.AuditService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers, each
// buffering up to queueSize events. Non-positive arguments fall back to the
// defaults.
func NewDispatcher(numWorkers, queueSize int, service ports.AuditService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}
	d := &Dispatcher{
		workers: make([]chan domain.ActivityEvent, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.ActivityEvent, queueSize)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Record hands an event to the worker responsible for its application.
// Satisfies the recorder the application service writes its trail through.
// Never blocks: when the shard's queue is full the event is dropped and
// counted, so a stalled audit writer cannot back up request handling.
func (d *Dispatcher) Record(event domain.ActivityEvent) {
	i := d.shardIndex(event.ApplicationID)
	worker := strconv.Itoa(i)
	select {
	case d.workers[i] <- event:
		metrics.AuditQueueDepth.WithLabelValues(worker).Set(float64(len(d.workers[i])))
	default:
		metrics.AuditEventsDroppedTotal.WithLabelValues(worker).Inc()
		d.log.Warn().
			Str("application_id", event.ApplicationID).
			Str("kind", event.Kind).
			Int("worker_id", i).
			Msg("audit queue full, event dropped")
	}
}

// shardIndex maps an application ID deterministically to a worker index.
func (d *Dispatcher) shardIndex(applicationID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(applicationID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.ActivityEvent) {
	worker := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			metrics.AuditQueueDepth.WithLabelValues(worker).Set(float64(len(ch)))
			if err := d.service.Process(ctx, event); err != nil {
				d.log.Error().Err(err).
					Str("application_id", event.ApplicationID).
					Str("kind", event.Kind).
					Int("worker_id", id).
					Msg("activity event processing failed")
			}
		}
	}
}
