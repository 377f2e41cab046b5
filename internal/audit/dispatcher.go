package audit

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	ActionAppointmentCreated  = "appointment_created"
	ActionAppointmentCanceled = "appointment_canceled"
	ActionAppointmentConflict = "appointment_conflict"

	EntityAppointment = "appointment"
)

type Event struct {
	Action   string
	Entity   string
	EntityID *uuid.UUID
	BarberID *uuid.UUID
	Metadata any
}

// Dispatcher writes audit events in the background. A full queue drops the
// event: auditing never fails a request.
type Dispatcher struct {
	logger *Logger
	log    *slog.Logger
	queue  chan Event

	closeOnce sync.Once
	done      chan struct{}
}

func NewDispatcher(logger *Logger, log *slog.Logger) *Dispatcher {
	if log == nil {
		log = slog.Default()
	}

	d := &Dispatcher{
		logger: logger,
		log:    log,
		queue:  make(chan Event, 100),
		done:   make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := d.logger.Log(
			ctx,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.BarberID,
			ev.Metadata,
		); err != nil {
			d.log.Warn("audit write failed", slog.String("action", ev.Action), slog.Any("err", err))
		}
		cancel()
	}
}

// Dispatch queues ev. A nil Dispatcher discards it.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}

	defer func() {
		// Dispatch after Close must not panic the request goroutine.
		if recover() != nil {
			d.log.Warn("audit dispatcher closed, dropping event", slog.String("action", ev.Action))
		}
	}()

	select {
	case d.queue <- ev:
	default:
		d.log.Warn("audit queue full, dropping event", slog.String("action", ev.Action))
	}
}

// Close stops accepting events and waits until the queue is drained or ctx
// expires.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.closeOnce.Do(func() { close(d.queue) })

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
