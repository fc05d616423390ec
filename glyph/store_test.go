package glyph

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingLoader returns a LoadFunc that records how many loads actually
// ran, optionally stalling each one to widen race windows.
func countingLoader(reg Registry, delay time.Duration, calls *int32) LoadFunc {
	return func(char string) (Template, error) {
		atomic.AddInt32(calls, 1)
		if delay > 0 {
			time.Sleep(delay)
		}
		if tpl, ok := reg[char]; ok {
			return tpl, nil
		}
		return Fallback(), nil
	}
}

func TestNewStore_SeedsBasicSet(t *testing.T) {
	store := NewStore(Builtin(), nil)

	require.Equal(t, len(Basic()), store.Len())
	for _, char := range Basic() {
		assert.True(t, store.Contains(char), "basic character %q not resident", char)
	}
}

func TestGet_LazyLoadThenCacheHit(t *testing.T) {
	var calls int32
	store := NewStore(Builtin(), countingLoader(Builtin(), 0, &calls))
	seedCalls := atomic.LoadInt32(&calls)

	first := store.Get("か")
	second := store.Get("か")

	assert.Equal(t, first, second)
	assert.Equal(t, seedCalls+1, atomic.LoadInt32(&calls), "second Get should hit the cache")
	assert.True(t, store.Contains("か"))
}

func TestGet_UnregisteredCharacterFallsBack(t *testing.T) {
	store := NewStore(Builtin(), nil)

	tpl := store.Get("km") // romaji, never registered

	assert.Equal(t, Fallback(), tpl)
	assert.GreaterOrEqual(t, tpl.StrokeCount, 0)
	assert.True(t, store.Contains("km"), "fallback results are cached too")
}

func TestGet_LoaderErrorFallsBack(t *testing.T) {
	var calls int32
	load := func(char string) (Template, error) {
		atomic.AddInt32(&calls, 1)
		if char == "ぱ" {
			return Template{}, assert.AnError
		}
		return registryLoader(Builtin())(char)
	}
	store := NewStore(Builtin(), load)

	tpl := store.Get("ぱ")
	require.Equal(t, Fallback(), tpl)

	before := atomic.LoadInt32(&calls)
	store.Get("ぱ")
	assert.Equal(t, before, atomic.LoadInt32(&calls), "failed load result should be cached")
}

func TestGet_ConcurrentRequestsShareOneLoad(t *testing.T) {
	var calls int32
	store := NewStore(Builtin(), countingLoader(Builtin(), 50*time.Millisecond, &calls))
	seedCalls := atomic.LoadInt32(&calls)

	var wg sync.WaitGroup
	results := make([]Template, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = store.Get("ま")
		}(i)
	}
	wg.Wait()

	require.Equal(t, seedCalls+1, atomic.LoadInt32(&calls), "concurrent gets must share one load")
	for _, tpl := range results {
		assert.Equal(t, results[0], tpl)
	}
}

func TestCleanup_EvictsOldestFirst(t *testing.T) {
	store := NewStore(Builtin(), nil)
	store.Get("か")
	store.Get("き")
	store.Get("く")
	require.Equal(t, len(Basic())+3, store.Len())

	evicted := store.Cleanup(len(Basic()) + 1)

	assert.Equal(t, 2, evicted)
	assert.False(t, store.Contains("か"), "oldest entry should go first")
	assert.False(t, store.Contains("き"))
	assert.True(t, store.Contains("く"))
}

func TestCleanup_NeverEvictsBasicSet(t *testing.T) {
	store := NewStore(Builtin(), nil)
	store.Get("な")
	store.Get("に")

	evicted := store.Cleanup(0)

	assert.Equal(t, 2, evicted)
	assert.Equal(t, len(Basic()), store.Len(), "basic set must survive even a zero limit")
	for _, char := range Basic() {
		assert.True(t, store.Contains(char))
	}
}

func TestCleanup_NoopUnderLimit(t *testing.T) {
	store := NewStore(Builtin(), nil)
	store.Get("ほ")

	assert.Equal(t, 0, store.Cleanup(100))
	assert.True(t, store.Contains("ほ"))
}

func TestReloadAfterEviction(t *testing.T) {
	var calls int32
	store := NewStore(Builtin(), countingLoader(Builtin(), 0, &calls))

	store.Get("め")
	store.Cleanup(len(Basic()))
	require.False(t, store.Contains("め"))

	tpl := store.Get("め")
	assert.Equal(t, Builtin()["め"], tpl)
	assert.True(t, store.Contains("め"))
}

func TestWarm_PreloadsLesson(t *testing.T) {
	store := NewStore(Builtin(), nil)
	lesson := []string{"か", "き", "く", "け", "こ"}

	err := store.Warm(context.Background(), lesson, 2)

	require.NoError(t, err)
	for _, char := range lesson {
		assert.True(t, store.Contains(char), "%q not resident after Warm", char)
	}
	assert.Equal(t, len(Basic())+len(lesson), store.Len())
}

func TestWarm_CancelledContext(t *testing.T) {
	store := NewStore(Builtin(), nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := store.Warm(ctx, []string{"ら", "り", "る"}, 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
