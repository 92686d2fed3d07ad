package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gettupp/backoffice/knowledge/domain"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.now = f.now.Add(d)
}

func countingLoader(calls *int32) Loader {
	return func(ctx context.Context) ([]*domain.Node, error) {
		n := atomic.AddInt32(calls, 1)
		return []*domain.Node{{ID: "node", Version: int(n)}}, nil
	}
}

func TestCache_TTL(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: time.Date(2024, 6, 1, 22, 0, 0, 0, time.UTC)}
	c := New(5*time.Minute, WithClock(clock.Now))

	var calls int32
	load := countingLoader(&calls)

	nodes, err := c.Get(ctx, load)
	require.NoError(t, err)
	assert.Equal(t, 1, nodes[0].Version)

	clock.Advance(4*time.Minute + 59*time.Second)

	nodes, err = c.Get(ctx, load)
	require.NoError(t, err)
	assert.Equal(t, 1, nodes[0].Version)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))

	clock.Advance(time.Second)

	nodes, err = c.Get(ctx, load)
	require.NoError(t, err)
	assert.Equal(t, 2, nodes[0].Version)
}

func TestCache_Clear(t *testing.T) {
	ctx := context.Background()
	c := New(time.Hour)

	var calls int32
	load := countingLoader(&calls)

	_, err := c.Get(ctx, load)
	require.NoError(t, err)

	c.Clear()

	nodes, err := c.Get(ctx, load)
	require.NoError(t, err)
	assert.Equal(t, 2, nodes[0].Version)
}

func TestCache_ClearDuringLoad(t *testing.T) {
	ctx := context.Background()
	c := New(time.Hour)

	started := make(chan struct{})
	release := make(chan struct{})

	var calls int32

	load := func(ctx context.Context) ([]*domain.Node, error) {
		n := atomic.AddInt32(&calls, 1)
		if n == 1 {
			close(started)
			<-release
		}

		return []*domain.Node{{ID: "node", Version: int(n)}}, nil
	}

	done := make(chan []*domain.Node)

	go func() {
		nodes, err := c.Get(ctx, load)
		assert.NoError(t, err)
		done <- nodes
	}()

	<-started
	c.Clear()

	nodes, err := c.Get(ctx, load)
	require.NoError(t, err)
	assert.Equal(t, 2, nodes[0].Version)

	close(release)

	stale := <-done
	assert.Equal(t, 1, stale[0].Version)

	nodes, err = c.Get(ctx, load)
	require.NoError(t, err)
	assert.Equal(t, 2, nodes[0].Version)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestCache_LoadError(t *testing.T) {
	ctx := context.Background()
	c := New(time.Minute)
	loadErr := errors.New("firestore unavailable")

	_, err := c.Get(ctx, func(ctx context.Context) ([]*domain.Node, error) {
		return nil, loadErr
	})
	assert.ErrorIs(t, err, loadErr)

	var calls int32

	nodes, err := c.Get(ctx, countingLoader(&calls))
	require.NoError(t, err)
	assert.Len(t, nodes, 1)
}

func TestCache_ConcurrentGet(t *testing.T) {
	ctx := context.Background()
	c := New(time.Minute)

	var calls int32

	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			nodes, err := c.Get(ctx, countingLoader(&calls))
			assert.NoError(t, err)
			assert.Len(t, nodes, 1)
		}()
	}

	wg.Wait()

	_, err := c.Get(ctx, countingLoader(&calls))
	require.NoError(t, err)
	assert.LessOrEqual(t, atomic.LoadInt32(&calls), int32(20))
}
