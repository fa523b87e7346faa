package lock

import (
	"context"
	"sync"

	"github.com/BruksfildServices01/counsel-scheduler/internal/httperr"
)

// LocalLocker serializes keys inside one process. Used when redis is not
// configured; the database row locks still hold across processes.
type LocalLocker struct {
	mu   sync.Mutex
	held map[string]chan struct{}
}

func NewLocalLocker() *LocalLocker {
	return &LocalLocker{held: make(map[string]chan struct{})}
}

func (l *LocalLocker) Acquire(ctx context.Context, key string) (func(), error) {
	for {
		l.mu.Lock()
		ch, busy := l.held[key]
		if !busy {
			ch = make(chan struct{})
			l.held[key] = ch
			l.mu.Unlock()

			var once sync.Once
			return func() {
				once.Do(func() {
					l.mu.Lock()
					delete(l.held, key)
					l.mu.Unlock()
					close(ch)
				})
			}, nil
		}
		l.mu.Unlock()

		select {
		case <-ch:
		case <-ctx.Done():
			return nil, httperr.ErrOperationFailed(ctx.Err())
		}
	}
}
