package notify

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/luisitotec2025/transportesManoloBack/pkg/mailer"
)

// historyLimit bounds the in-memory completion log. Older records are
// discarded once the limit is reached.
const historyLimit = 200

// Record is the completion log entry for one dispatch attempt. Failures are
// observable here and in logs only; they never reach the triggering request.
type Record struct {
	VehicleID    int64
	CustomerName string
	Started      time.Time
	Duration     time.Duration
	Delivered    bool
	Stage        mailer.Stage
	Kind         mailer.Kind
	Err          string
}

// Dispatcher delivers notifications through a bounded worker pool.
// Delivery is best-effort and at-most-once: each job gets exactly one Send
// bounded by the configured timeout, failures are recorded and logged but
// never retried, and no ordering is guaranteed between jobs.
type Dispatcher struct {
	mailer  mailer.Mailer
	from    string
	to      string
	timeout time.Duration
	workers int
	log     *slog.Logger

	queue   chan Notification
	wg      sync.WaitGroup
	mu      sync.Mutex
	stopped bool

	hmu     sync.Mutex
	history []Record

	dropped atomic.Uint64
}

// NewDispatcher creates a Dispatcher sending to the fixed operator address.
func NewDispatcher(m mailer.Mailer, from, to string, timeout time.Duration, workers, queueSize int, log *slog.Logger) *Dispatcher {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 1 {
		queueSize = 1
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if log == nil {
		log = slog.Default()
	}
	return &Dispatcher{
		mailer:  m,
		from:    from,
		to:      to,
		timeout: timeout,
		workers: workers,
		log:     log,
		queue:   make(chan Notification, queueSize),
	}
}

// Start launches the worker goroutines.
func (d *Dispatcher) Start() {
	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.worker()
	}
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()
	for n := range d.queue {
		d.deliver(n)
	}
}

// Enqueue submits a notification for delivery. Returns false when the
// queue is full or the dispatcher is stopped; the job is then dropped and
// counted, matching the best-effort contract.
func (d *Dispatcher) Enqueue(n Notification) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		d.dropped.Add(1)
		d.log.Warn("notification dropped: dispatcher stopped", "vehicle_id", n.VehicleID)
		return false
	}
	select {
	case d.queue <- n:
		return true
	default:
		d.dropped.Add(1)
		d.log.Warn("notification dropped: queue full", "vehicle_id", n.VehicleID)
		return false
	}
}

// Stop closes the queue, drains already-accepted jobs, and waits for the
// workers to finish or ctx to expire.
func (d *Dispatcher) Stop(ctx context.Context) error {
	d.mu.Lock()
	if !d.stopped {
		d.stopped = true
		close(d.queue)
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// deliver performs one attempt. Panics in the transport are recovered so a
// bad dispatch can never take the process down.
func (d *Dispatcher) deliver(n Notification) {
	defer func() {
		if r := recover(); r != nil {
			d.log.Error("dispatch panic recovered", "panic", r, "vehicle_id", n.VehicleID)
		}
	}()

	start := time.Now()
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	err := d.mailer.Send(ctx, mailer.Message{
		From:    d.from,
		To:      d.to,
		Subject: n.Subject,
		HTML:    n.HTML,
	})

	rec := Record{
		VehicleID:    n.VehicleID,
		CustomerName: n.CustomerName,
		Started:      start,
		Duration:     time.Since(start),
		Delivered:    err == nil,
	}
	if err != nil {
		rec.Stage, rec.Kind = mailer.Classify(err)
		rec.Err = err.Error()
		d.log.Warn("notification dispatch failed",
			"vehicle_id", n.VehicleID,
			"stage", string(rec.Stage),
			"kind", string(rec.Kind),
			"error", err,
			"duration", rec.Duration)
	} else {
		d.log.Info("notification delivered",
			"vehicle_id", n.VehicleID,
			"duration", rec.Duration)
	}

	d.hmu.Lock()
	d.history = append(d.history, rec)
	if len(d.history) > historyLimit {
		d.history = d.history[len(d.history)-historyLimit:]
	}
	d.hmu.Unlock()
}

// History returns a snapshot of completed dispatch attempts.
func (d *Dispatcher) History() []Record {
	d.hmu.Lock()
	defer d.hmu.Unlock()
	out := make([]Record, len(d.history))
	copy(out, d.history)
	return out
}

// Dropped returns how many notifications were rejected at enqueue.
func (d *Dispatcher) Dropped() uint64 {
	return d.dropped.Load()
}
