package lock

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalLockerSerializesKey(t *testing.T) {
	l := NewLocalLocker()
	ctx := context.Background()

	release, err := l.Acquire(ctx, "booking:1:2:2030-01-01")
	require.NoError(t, err)

	acquired := make(chan struct{})
	go func() {
		r, err := l.Acquire(ctx, "booking:1:2:2030-01-01")
		if err == nil {
			r()
		}
		close(acquired)
	}()

	select {
	case <-acquired:
		t.Fatal("second acquire should wait for release")
	case <-time.After(50 * time.Millisecond):
	}

	release()
	release()

	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("second acquire never completed")
	}
}

func TestLocalLockerIndependentKeys(t *testing.T) {
	l := NewLocalLocker()
	ctx := context.Background()

	r1, err := l.Acquire(ctx, "a")
	require.NoError(t, err)
	defer r1()

	r2, err := l.Acquire(ctx, "b")
	require.NoError(t, err)
	r2()
}

func TestLocalLockerHonoursContext(t *testing.T) {
	l := NewLocalLocker()

	release, err := l.Acquire(context.Background(), "a")
	require.NoError(t, err)
	defer release()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = l.Acquire(ctx, "a")
	assert.Error(t, err)
}
