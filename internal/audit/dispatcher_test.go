package audit

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type memorySink struct {
	mu     sync.Mutex
	events []Event
	fail   bool
	delay  time.Duration
}

func (s *memorySink) Log(ev Event) error {
	time.Sleep(s.delay)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return errors.New("sink down")
	}
	s.events = append(s.events, ev)
	return nil
}

func (s *memorySink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events)
}

func TestDispatcherDeliversEvents(t *testing.T) {
	sink := &memorySink{}
	d := NewDispatcher(sink, zap.NewNop())
	defer d.Close()

	d.Dispatch(Event{Action: "booking_created", Entity: "booking"})
	d.Dispatch(Event{Action: "booking_deleted", Entity: "booking"})

	assert.Eventually(t, func() bool { return sink.count() == 2 }, time.Second, 5*time.Millisecond)
}

func TestDispatcherSurvivesSinkErrors(t *testing.T) {
	sink := &memorySink{fail: true}
	d := NewDispatcher(sink, zap.NewNop())
	defer d.Close()

	d.Dispatch(Event{Action: "x"})

	sink.mu.Lock()
	sink.fail = false
	sink.mu.Unlock()

	d.Dispatch(Event{Action: "y"})
	assert.Eventually(t, func() bool { return sink.count() >= 1 }, time.Second, 5*time.Millisecond)
}

func TestCloseDrainsQueue(t *testing.T) {
	sink := &memorySink{delay: 5 * time.Millisecond}
	d := NewDispatcher(sink, zap.NewNop())

	for i := 0; i < 10; i++ {
		d.Dispatch(Event{Action: "booking_created"})
	}
	d.Close()

	assert.Equal(t, 10, sink.count())
	assert.NotPanics(t, d.Close)
}

func TestNilDispatcher(t *testing.T) {
	var d *Dispatcher
	assert.NotPanics(t, func() {
		d.Dispatch(Event{Action: "x"})
		d.Close()
	})
}
