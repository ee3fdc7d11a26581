package query_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slatehq/slate/internal/query"
)

func TestFetchDeduplicatesConcurrentReads(t *testing.T) {
	store := query.NewStore()
	key := query.NewKey("projects", nil)

	var calls atomic.Int32
	release := make(chan struct{})
	producer := func(ctx context.Context) (any, error) {
		calls.Add(1)
		<-release
		return []string{"a", "b"}, nil
	}

	const readers = 8
	var wg sync.WaitGroup
	results := make([]any, readers)
	for i := 0; i < readers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := store.Fetch(context.Background(), key, producer)
			require.NoError(t, err)
			results[i] = v
		}(i)
	}

	// Let every reader reach the store before the producer returns.
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for _, v := range results {
		assert.Equal(t, []string{"a", "b"}, v)
	}
}

func TestFetchServesCachedValueWithinTTL(t *testing.T) {
	store := query.NewStore()
	key := query.NewKey("projects", nil)

	var calls int
	producer := func(ctx context.Context) (any, error) {
		calls++
		return "v1", nil
	}

	for i := 0; i < 3; i++ {
		v, err := store.Fetch(context.Background(), key, producer)
		require.NoError(t, err)
		assert.Equal(t, "v1", v)
	}
	assert.Equal(t, 1, calls)
}

func TestFetchServesStaleThenRefreshes(t *testing.T) {
	now := time.Now()
	var mu sync.Mutex
	clock := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return now
	}
	store := query.NewStore(query.WithClock(clock), query.WithTTL(time.Minute))
	key := query.NewKey("projects", nil)

	var calls atomic.Int32
	producer := func(ctx context.Context) (any, error) {
		n := calls.Add(1)
		if n == 1 {
			return "v1", nil
		}
		return "v2", nil
	}

	v, err := store.Fetch(context.Background(), key, producer)
	require.NoError(t, err)
	assert.Equal(t, "v1", v)

	mu.Lock()
	now = now.Add(2 * time.Minute)
	mu.Unlock()

	sub := store.Subscribe(key)

	// The expired entry is returned as-is; the refresh runs behind it.
	v, err = store.Fetch(context.Background(), key, producer)
	require.NoError(t, err)
	assert.Equal(t, "v1", v)

	select {
	case <-sub:
	case <-time.After(2 * time.Second):
		t.Fatal("refresh never completed")
	}

	v, err = store.Fetch(context.Background(), key, producer)
	require.NoError(t, err)
	assert.Equal(t, "v2", v)
	assert.Equal(t, int32(2), calls.Load())
}

func TestFetchRetriesFailedProducerOnce(t *testing.T) {
	store := query.NewStore()
	key := query.NewKey("projects", nil)

	var calls int
	producer := func(ctx context.Context) (any, error) {
		calls++
		return nil, errors.New("backend hiccup")
	}

	_, err := store.Fetch(context.Background(), key, producer)
	require.Error(t, err)
	assert.Equal(t, 2, calls)
}

func TestFetchRecoversOnRetry(t *testing.T) {
	store := query.NewStore()
	key := query.NewKey("projects", nil)

	var calls int
	producer := func(ctx context.Context) (any, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("backend hiccup")
		}
		return "ok", nil
	}

	v, err := store.Fetch(context.Background(), key, producer)
	require.NoError(t, err)
	assert.Equal(t, "ok", v)
	assert.Equal(t, 2, calls)
}

func TestFetchDoesNotRetryCancelledContext(t *testing.T) {
	store := query.NewStore()
	key := query.NewKey("projects", nil)

	ctx, cancel := context.WithCancel(context.Background())

	var calls int
	producer := func(ctx context.Context) (any, error) {
		calls++
		cancel()
		return nil, context.Canceled
	}

	_, err := store.Fetch(ctx, key, producer)
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestMutateInvalidatesOnSuccessOnly(t *testing.T) {
	store := query.NewStore()
	key := query.NewKey("tasks", map[string]string{"project": "3"})

	var fetches int
	producer := func(ctx context.Context) (any, error) {
		fetches++
		return fetches, nil
	}

	_, err := store.Fetch(context.Background(), key, producer)
	require.NoError(t, err)

	// Failed mutation: the cached value stays fresh.
	err = store.Mutate(context.Background(), func(ctx context.Context) error {
		return errors.New("rejected")
	}, key)
	require.Error(t, err)

	v, err := store.Fetch(context.Background(), key, producer)
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	assert.Equal(t, 1, fetches)

	// Successful mutation: the next read refetches.
	err = store.Mutate(context.Background(), func(ctx context.Context) error {
		return nil
	}, key)
	require.NoError(t, err)

	_, err = store.Fetch(context.Background(), key, producer)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		v, err := store.Fetch(context.Background(), key, producer)
		return err == nil && v.(int) > 1
	}, 2*time.Second, 10*time.Millisecond)
}

func TestInvalidateWakesSubscribers(t *testing.T) {
	store := query.NewStore()
	key := query.NewKey("invoices", nil)

	sub := store.Subscribe(key)
	store.Invalidate(key)

	select {
	case <-sub:
	case <-time.After(time.Second):
		t.Fatal("no tick after invalidation")
	}
}

func TestInvalidateOnlyTouchesNamedKeys(t *testing.T) {
	store := query.NewStore()
	tasks := query.NewKey("tasks", nil)
	invoices := query.NewKey("invoices", nil)

	var taskFetches, invoiceFetches int
	_, err := store.Fetch(context.Background(), tasks, func(ctx context.Context) (any, error) {
		taskFetches++
		return "t", nil
	})
	require.NoError(t, err)
	_, err = store.Fetch(context.Background(), invoices, func(ctx context.Context) (any, error) {
		invoiceFetches++
		return "i", nil
	})
	require.NoError(t, err)

	store.Invalidate(tasks)

	_, err = store.Fetch(context.Background(), invoices, func(ctx context.Context) (any, error) {
		invoiceFetches++
		return "i", nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, invoiceFetches)
}

func TestTypedFetchReturnsZeroOnError(t *testing.T) {
	store := query.NewStore()
	key := query.NewKey("projects", nil)

	v, err := query.Fetch(context.Background(), store, key, func(ctx context.Context) ([]string, error) {
		return nil, errors.New("down")
	})
	require.Error(t, err)
	assert.Nil(t, v)
}
