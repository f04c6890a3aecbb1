package mirror

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/agusnoopy3000/huertohogar-api/internal/entities"
)

type event struct {
	kind   EventType
	order  OrderSnapshot
	status StatusChange
}

func (e event) orderID() string {
	if e.kind == EventOrderCreated {
		return e.order.ID
	}
	return e.status.OrderID
}

// Dispatcher hands events to a Sink from a single background worker.
// Enqueueing never blocks: when the queue is full the event is dropped.
// Delivery is at most once, failed events are logged and forgotten.
type Dispatcher struct {
	logger  *slog.Logger
	sink    Sink
	timeout time.Duration

	mu     sync.RWMutex
	closed bool
	queue  chan event

	started atomic.Bool
	done    chan struct{}
	dropped atomic.Int64
}

func NewDispatcher(logger *slog.Logger, sink Sink, queueSize int, publishTimeout time.Duration) *Dispatcher {
	return &Dispatcher{
		logger:  logger.With(slog.String("component", "mirror")),
		sink:    sink,
		timeout: publishTimeout,
		queue:   make(chan event, queueSize),
		done:    make(chan struct{}),
	}
}

func (d *Dispatcher) MirrorOrder(o entities.Order) {
	d.enqueue(event{kind: EventOrderCreated, order: Snapshot(o)})
}

func (d *Dispatcher) MirrorStatus(orderID string, status entities.OrderStatus) {
	d.enqueue(event{kind: EventStatusChanged, status: StatusChange{
		OrderID:   orderID,
		Status:    status.String(),
		ChangedAt: time.Now().UTC(),
	}})
}

// Dropped returns how many events were discarded without being published.
func (d *Dispatcher) Dropped() int64 {
	return d.dropped.Load()
}

func (d *Dispatcher) enqueue(e event) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.drop(e, "dispatcher closed")
		return
	}

	select {
	case d.queue <- e:
		queueLength.Inc()
	default:
		d.drop(e, "queue full")
	}
}

func (d *Dispatcher) drop(e event, reason string) {
	d.dropped.Add(1)
	eventsDropped.WithLabelValues(string(e.kind)).Inc()
	d.logger.Warn("mirror event dropped",
		slog.String("event", string(e.kind)),
		slog.String("order_id", e.orderID()),
		slog.String("reason", reason),
	)
}

// Start launches the worker and returns immediately.
func (d *Dispatcher) Start(ctx context.Context) error {
	if !d.started.CompareAndSwap(false, true) {
		return nil
	}
	// очередь дочитывается и после отмены ctx, до Close
	base := context.WithoutCancel(ctx)
	go d.run(base)
	return nil
}

func (d *Dispatcher) run(ctx context.Context) {
	defer close(d.done)
	for e := range d.queue {
		queueLength.Dec()
		d.publish(ctx, e)
	}
}

func (d *Dispatcher) publish(ctx context.Context, e event) {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	var err error
	switch e.kind {
	case EventOrderCreated:
		err = d.sink.PublishOrder(ctx, e.order)
	case EventStatusChanged:
		err = d.sink.PublishStatus(ctx, e.status)
	}

	if err != nil {
		eventsFailed.WithLabelValues(string(e.kind)).Inc()
		d.logger.Error("failed to publish mirror event",
			slog.String("event", string(e.kind)),
			slog.String("order_id", e.orderID()),
			slog.Any("error", err),
		)
		return
	}
	eventsPublished.WithLabelValues(string(e.kind)).Inc()
}

// Close stops accepting events, waits for the queued ones to be published
// and closes the sink.
func (d *Dispatcher) Close() error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	if d.started.Load() {
		<-d.done
	}
	return d.sink.Close()
}
