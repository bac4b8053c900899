package requestcache

import (
	"context"
	"errors"
	"regexp"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

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
	f.now = f.now.Add(d)
	f.mu.Unlock()
}

func newClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)}
}

func TestGet_ConcurrentCallersShareOneCall(t *testing.T) {
	c := New(time.Minute)

	var calls int32
	release := make(chan struct{})
	fn := func(context.Context) (string, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return "v", nil
	}

	const callers = 10
	var wg sync.WaitGroup
	results := make([]string, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := Get(context.Background(), c, "k", fn, Options{})
			assert.NoError(t, err)
			results[i] = v
		}(i)
	}

	require.Eventually(t, func() bool { return c.Stats().Pending == 1 }, time.Second, time.Millisecond)
	// aguarda todos os chamadores chegarem antes de liberar
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	for _, r := range results {
		assert.Equal(t, "v", r)
	}
}

func TestGet_ServesFreshResultWithinTTL(t *testing.T) {
	clock := newClock()
	c := New(time.Minute, WithClock(clock.Now))

	var calls int
	fn := func(context.Context) (string, error) {
		calls++
		return "v", nil
	}

	first, err := Get(context.Background(), c, "k", fn, Options{TTL: time.Second})
	require.NoError(t, err)

	clock.Advance(500 * time.Millisecond)
	second, err := Get(context.Background(), c, "k", fn, Options{TTL: time.Second})
	require.NoError(t, err)

	assert.Equal(t, "v", first)
	assert.Equal(t, "v", second)
	assert.Equal(t, 1, calls)

	clock.Advance(time.Second)
	_, err = Get(context.Background(), c, "k", fn, Options{TTL: time.Second})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestGet_FailureIsNotCached(t *testing.T) {
	c := New(time.Minute)
	boom := errors.New("boom")

	var calls int
	_, err := Get(context.Background(), c, "k", func(context.Context) (int, error) {
		calls++
		return 0, boom
	}, Options{})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 0, c.Stats().Total)

	v, err := Get(context.Background(), c, "k", func(context.Context) (int, error) {
		calls++
		return 42, nil
	}, Options{})
	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.Equal(t, 2, calls)
}

func TestGet_ForceBypassesCache(t *testing.T) {
	c := New(time.Minute)

	var calls int
	fn := func(context.Context) (int, error) {
		calls++
		return calls, nil
	}

	_, err := Get(context.Background(), c, "k", fn, Options{})
	require.NoError(t, err)

	v, err := Get(context.Background(), c, "k", fn, Options{Force: true})
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	v, err = Get(context.Background(), c, "k", fn, Options{})
	require.NoError(t, err)
	assert.Equal(t, 2, v, "resultado forçado substitui a entrada anterior")
}

func TestGet_WaiterContextCancellation(t *testing.T) {
	c := New(time.Minute)
	release := make(chan struct{})
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Get(ctx, c, "k", func(context.Context) (int, error) {
		<-release
		return 1, nil
	}, Options{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGet_PanicBecomesError(t *testing.T) {
	c := New(time.Minute)

	_, err := Get(context.Background(), c, "k", func(context.Context) (int, error) {
		panic("falha inesperada")
	}, Options{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "falha inesperada")
	assert.Equal(t, 0, c.Stats().Total)
}

func TestInvalidatePattern(t *testing.T) {
	c := New(time.Minute)
	ok := func(context.Context) (int, error) { return 1, nil }

	for _, key := range []string{"campaigns-1", "campaigns-2", "adsets-9", "meta-account-status"} {
		_, err := Get(context.Background(), c, key, ok, Options{})
		require.NoError(t, err)
	}

	tests := []struct {
		name     string
		pattern  string
		removed  int
		expected int
	}{
		{name: "padrão sem correspondência não altera nada", pattern: `^rules-`, removed: 0, expected: 4},
		{name: "remove somente campanhas", pattern: `^campaigns-`, removed: 2, expected: 2},
		{name: "repetir é idempotente", pattern: `^campaigns-`, removed: 0, expected: 2},
		{name: "remove o restante", pattern: `^(adsets-|meta-)`, removed: 2, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.removed, c.InvalidatePattern(regexp.MustCompile(tt.pattern)))
			assert.Equal(t, tt.expected, c.Stats().Total)
		})
	}
}

func TestInvalidate_PendingEntryIsNotReinserted(t *testing.T) {
	c := New(time.Minute)
	release := make(chan struct{})

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = Get(context.Background(), c, "k", func(context.Context) (int, error) {
			<-release
			return 1, nil
		}, Options{})
	}()

	require.Eventually(t, func() bool { return c.Stats().Pending == 1 }, time.Second, time.Millisecond)
	c.Invalidate("k")
	close(release)
	<-done

	assert.Equal(t, 0, c.Stats().Total)
}

func TestCleanup_RemovesOnlyExpiredResolvedEntries(t *testing.T) {
	clock := newClock()
	c := New(5*time.Minute, WithClock(clock.Now))
	ok := func(context.Context) (int, error) { return 1, nil }

	_, err := Get(context.Background(), c, "old", ok, Options{})
	require.NoError(t, err)

	clock.Advance(4 * time.Minute)
	_, err = Get(context.Background(), c, "new", ok, Options{})
	require.NoError(t, err)

	clock.Advance(2 * time.Minute)
	assert.Equal(t, 1, c.Cleanup())
	assert.Equal(t, Stats{Total: 1, Cached: 1}, c.Stats())

	c.Clear()
	assert.Equal(t, Stats{}, c.Stats())
}

func TestGet_TypeMismatch(t *testing.T) {
	c := New(time.Minute)

	_, err := Get(context.Background(), c, "k", func(context.Context) (int, error) { return 1, nil }, Options{})
	require.NoError(t, err)

	_, err = Get(context.Background(), c, "k", func(context.Context) (string, error) { return "x", nil }, Options{})
	assert.Error(t, err)
}
