package cache

import (
	"context"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/gettupp/backoffice/knowledge/domain"
)

const DefaultTTL = 5 * time.Minute

// Loader reads the full knowledge base from storage.
type Loader func(ctx context.Context) ([]*domain.Node, error)

// Cache keeps the knowledge base in memory for a fixed TTL. Concurrent misses
// share a single load.
type Cache struct {
	mu       sync.RWMutex
	nodes    []*domain.Node
	loadedAt time.Time
	loaded   bool
	// generation moves on every Clear; loads started before it are not stored.
	generation uint64

	ttl   time.Duration
	now   func() time.Time
	group singleflight.Group
}

type Option func(*Cache)

// WithClock replaces the wall clock used for expiry.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		c.now = now
	}
}

func New(ttl time.Duration, opts ...Option) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	c := &Cache{
		ttl: ttl,
		now: time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Get returns the cached nodes, loading them when the cache is empty or expired.
// Callers must not modify the returned nodes.
func (c *Cache) Get(ctx context.Context, load Loader) ([]*domain.Node, error) {
	if nodes, ok := c.fresh(); ok {
		return nodes, nil
	}

	c.mu.RLock()
	generation := c.generation
	c.mu.RUnlock()

	v, err, _ := c.group.Do(strconv.FormatUint(generation, 10), func() (interface{}, error) {
		if nodes, ok := c.fresh(); ok {
			return nodes, nil
		}

		nodes, err := load(ctx)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		if c.generation == generation {
			c.nodes = nodes
			c.loadedAt = c.now()
			c.loaded = true
		}
		c.mu.Unlock()

		return nodes, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]*domain.Node), nil
}

// Clear drops the cached nodes; the next Get reloads them. A load already in
// flight still answers its callers but is not kept.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.nodes = nil
	c.loaded = false
	c.generation++
}

func (c *Cache) fresh() ([]*domain.Node, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.loaded || c.now().Sub(c.loadedAt) >= c.ttl {
		return nil, false
	}

	return c.nodes, true
}
