package lock

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

// exclusive runs n goroutines that each hold key while bumping a shared
// counter, and returns the highest number of simultaneous holders seen.
func exclusive(t *testing.T, l Locker, key string, n int) int32 {
	t.Helper()

	var (
		inside  int32
		maxSeen int32
		wg      sync.WaitGroup
	)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			unlock, err := l.Lock(context.Background(), key)
			if !assert.NoError(t, err) {
				return
			}
			defer unlock()

			cur := atomic.AddInt32(&inside, 1)
			for {
				prev := atomic.LoadInt32(&maxSeen)
				if cur <= prev || atomic.CompareAndSwapInt32(&maxSeen, prev, cur) {
					break
				}
			}
			time.Sleep(2 * time.Millisecond)
			atomic.AddInt32(&inside, -1)
		}()
	}

	wg.Wait()
	return maxSeen
}

func TestLocal_Exclusive(t *testing.T) {
	l := NewLocal()

	assert.Equal(t, int32(1), exclusive(t, l, BarberKey("a"), 20))
	assert.Zero(t, l.held())
}

func TestLocal_KeysAreIndependent(t *testing.T) {
	l := NewLocal()

	unlockA, err := l.Lock(context.Background(), "a")
	require.NoError(t, err)
	defer unlockA()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	unlockB, err := l.Lock(ctx, "b")
	require.NoError(t, err)
	unlockB()
}

func TestLocal_ContextCanceled(t *testing.T) {
	l := NewLocal()

	unlock, err := l.Lock(context.Background(), "a")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = l.Lock(ctx, "a")
	require.Error(t, err)
	assert.True(t, errors.Is(err, httperr.ErrLockUnavailable))
	assert.True(t, errors.Is(err, context.DeadlineExceeded))

	unlock()
	unlock()
	assert.Zero(t, l.held())
}

func newRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRedis_Exclusive(t *testing.T) {
	_, client := newRedis(t)
	l := NewRedis(client, time.Second, nil)
	l.retryWait = time.Millisecond

	assert.Equal(t, int32(1), exclusive(t, l, BarberKey("a"), 10))
}

func TestRedis_ReleaseOnlyByOwner(t *testing.T) {
	mr, client := newRedis(t)
	l := NewRedis(client, 50*time.Millisecond, nil)
	key := BarberKey("a")

	unlockFirst, err := l.Lock(context.Background(), key)
	require.NoError(t, err)

	// The first lease expires and a second holder takes the key.
	mr.FastForward(100 * time.Millisecond)

	unlockSecond, err := l.Lock(context.Background(), key)
	require.NoError(t, err)

	unlockFirst()
	assert.True(t, mr.Exists(key), "stale holder released someone else's lock")

	unlockSecond()
	assert.False(t, mr.Exists(key))
}

func TestRedis_WaitHonoursContext(t *testing.T) {
	_, client := newRedis(t)
	l := NewRedis(client, time.Minute, nil)
	key := BarberKey("a")

	unlock, err := l.Lock(context.Background(), key)
	require.NoError(t, err)
	defer unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err = l.Lock(ctx, key)
	assert.ErrorIs(t, err, httperr.ErrLockUnavailable)
}

func TestRedis_BackendDown(t *testing.T) {
	mr, client := newRedis(t)
	mr.Close()

	l := NewRedis(client, time.Second, nil)
	_, err := l.Lock(context.Background(), BarberKey("a"))
	assert.ErrorIs(t, err, httperr.ErrLockUnavailable)
}
