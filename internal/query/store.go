package query

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// DefaultTTL is how long a fetched value counts as fresh.
const DefaultTTL = 5 * time.Minute

// Producer performs the actual network read for a key.
type Producer func(ctx context.Context) (any, error)

type entry struct {
	value     any
	fetchedAt time.Time
	stale     bool
}

// Store is the read/write coordination point between views and the
// API clients. Reads are deduplicated per key, cached for a staleness
// window, and served stale while a background refresh runs. Writes go
// through Mutate, which invalidates the affected keys only when the
// mutation succeeds.
//
// Safe for concurrent use.
type Store struct {
	mu      sync.Mutex
	entries map[Key]*entry
	subs    map[Key][]chan struct{}

	group singleflight.Group
	ttl   time.Duration
	now   func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithTTL overrides the staleness window.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) { s.ttl = ttl }
}

// WithClock overrides the time source. Tests use this to cross the
// staleness window without sleeping.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore creates an empty Store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		entries: make(map[Key]*entry),
		subs:    make(map[Key][]chan struct{}),
		ttl:     DefaultTTL,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Fetch returns the value for key. A fresh cached value is returned
// without touching the network. A stale one is returned immediately
// while a background refresh runs. With nothing cached, the producer
// is called; concurrent callers for the same key share one call, and
// a failed call is retried exactly once before the error is returned.
func (s *Store) Fetch(ctx context.Context, key Key, producer Producer) (any, error) {
	s.mu.Lock()
	e, ok := s.entries[key]
	if ok {
		if !e.stale && s.now().Sub(e.fetchedAt) < s.ttl {
			v := e.value
			s.mu.Unlock()
			return v, nil
		}
		// Serve stale, refresh behind the caller's back.
		v := e.value
		s.mu.Unlock()
		go s.refresh(key, producer)
		return v, nil
	}
	s.mu.Unlock()

	v, err, _ := s.group.Do(string(key), func() (any, error) {
		return s.produce(ctx, key, producer)
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

// produce runs the producer with one retry and stores the result.
func (s *Store) produce(ctx context.Context, key Key, producer Producer) (any, error) {
	v, err := producer(ctx)
	if err != nil && ctx.Err() == nil {
		v, err = producer(ctx)
	}
	if err != nil {
		return nil, err
	}
	s.store(key, v)
	return v, nil
}

// refresh re-runs the producer for a key that was served stale. A
// failed refresh leaves the stale value in place.
func (s *Store) refresh(key Key, producer Producer) {
	_, _, _ = s.group.Do(string(key), func() (any, error) {
		v, err := producer(context.Background())
		if err != nil {
			return nil, err
		}
		s.store(key, v)
		s.notify(key)
		return v, nil
	})
}

func (s *Store) store(key Key, v any) {
	s.mu.Lock()
	s.entries[key] = &entry{value: v, fetchedAt: s.now()}
	s.mu.Unlock()
}

// Mutate runs fn and, only if it succeeds, marks the given keys stale
// so the next Fetch refetches. A failed mutation leaves every cache
// entry untouched. Mutations are never retried here.
func (s *Store) Mutate(ctx context.Context, fn func(ctx context.Context) error, keys ...Key) error {
	if err := fn(ctx); err != nil {
		return err
	}
	s.Invalidate(keys...)
	return nil
}

// Invalidate marks keys stale and wakes their subscribers. The cached
// values stay readable until the refetch lands.
func (s *Store) Invalidate(keys ...Key) {
	s.mu.Lock()
	for _, key := range keys {
		if e, ok := s.entries[key]; ok {
			e.stale = true
		}
	}
	s.mu.Unlock()
	for _, key := range keys {
		s.notify(key)
	}
}

// Subscribe returns a channel that receives a tick whenever key is
// invalidated or a background refresh for it completes. The channel
// is buffered; a slow reader misses ticks rather than blocking the
// store.
func (s *Store) Subscribe(key Key) <-chan struct{} {
	ch := make(chan struct{}, 1)
	s.mu.Lock()
	s.subs[key] = append(s.subs[key], ch)
	s.mu.Unlock()
	return ch
}

func (s *Store) notify(key Key) {
	s.mu.Lock()
	subs := s.subs[key]
	s.mu.Unlock()
	for _, ch := range subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// Fetch is the typed wrapper around Store.Fetch. The zero T comes
// back alongside any error.
func Fetch[T any](ctx context.Context, s *Store, key Key, producer func(ctx context.Context) (T, error)) (T, error) {
	v, err := s.Fetch(ctx, key, func(ctx context.Context) (any, error) {
		return producer(ctx)
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}
