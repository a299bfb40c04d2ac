package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStore_GetOrLoad_UsesSingleFlight(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return "value", nil
	}

	const workers = 32
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)
	errCh := make(chan error, workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err := store.GetOrLoad(context.Background(), "same-key", loader)
			if err != nil {
				errCh <- err
				return
			}
			if got, _ := v.(string); got != "value" {
				errCh <- errUnexpectedValue
			}
		}()
	}

	close(start)
	wg.Wait()
	close(errCh)
	for err := range errCh {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_GetOrLoad_UsesCachedValueAfterFirstLoad(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		return "cached", nil
	}

	if _, err := store.GetOrLoad(context.Background(), "k", loader); err != nil {
		t.Fatalf("first GetOrLoad error: %v", err)
	}
	if _, err := store.GetOrLoad(context.Background(), "k", loader); err != nil {
		t.Fatalf("second GetOrLoad error: %v", err)
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

var errUnexpectedValue = errors.New("unexpected loaded value")

func TestBoundedStore_EvictsWhenFull(t *testing.T) {
	t.Parallel()

	store := NewBoundedStore(time.Minute, 2)
	ctx := context.Background()

	store.Set(ctx, "player-details:1", "a")
	time.Sleep(2 * time.Millisecond)
	store.Set(ctx, "player-details:2", "b")
	store.Set(ctx, "player-details:3", "c")

	if got := store.Len(); got != 2 {
		t.Fatalf("expected 2 entries, got %d", got)
	}
	if _, ok := store.Get(ctx, "player-details:1"); ok {
		t.Fatalf("expected oldest entry to be evicted")
	}
	if v, ok := store.Get(ctx, "player-details:3"); !ok || v != "c" {
		t.Fatalf("expected newest entry to be kept, got %v", v)
	}

	store.Set(ctx, "player-details:3", "c2")
	if got := store.Len(); got != 2 {
		t.Fatalf("overwriting a key must not evict, got %d entries", got)
	}
}

func TestStore_DeletePrefix(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	ctx := context.Background()
	store.Set(ctx, "market:list:club-demo", 1)
	store.Set(ctx, "market:id:mkt-1", 2)
	store.Set(ctx, "market-player:list:mkt-1", 3)

	store.DeletePrefix(ctx, "market:")

	if store.Len() != 1 {
		t.Fatalf("expected only roster entry to remain, got %d entries", store.Len())
	}
	if _, ok := store.Get(ctx, "market-player:list:mkt-1"); !ok {
		t.Fatalf("expected roster entry to survive prefix delete")
	}
}
