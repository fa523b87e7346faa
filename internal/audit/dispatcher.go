package audit

import (
	"sync"

	"go.uber.org/zap"
)

type Event struct {
	ActorID  *uint
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

// Sink persists one audit event.
type Sink interface {
	Log(ev Event) error
}

type Dispatcher struct {
	sink  Sink
	queue chan Event
	log   *zap.Logger

	done      chan struct{}
	closeOnce sync.Once
}

func NewDispatcher(sink Sink, log *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		sink:  sink,
		queue: make(chan Event, 100),
		log:   log,
		done:  make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)
	for ev := range d.queue {
		if err := d.sink.Log(ev); err != nil {
			d.log.Warn("audit write failed",
				zap.String("action", ev.Action),
				zap.Error(err),
			)
		}
	}
}

// Dispatch never blocks the request: a full queue drops the event.
// A nil dispatcher discards everything.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}
	select {
	case d.queue <- ev:
	default:
		d.log.Warn("audit queue full, dropping event", zap.String("action", ev.Action))
	}
}

// Close stops accepting events and waits until the queued ones are
// written.
func (d *Dispatcher) Close() {
	if d == nil {
		return
	}
	d.closeOnce.Do(func() { close(d.queue) })
	<-d.done
}
