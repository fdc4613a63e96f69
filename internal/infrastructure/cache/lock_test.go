package cache

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalLocker(t *testing.T) {
	locker := NewLocalLocker()
	ctx := context.Background()

	t.Run("serializes holders of the same key", func(t *testing.T) {
		var (
			mu      sync.Mutex
			active  int
			maxSeen int
			wg      sync.WaitGroup
		)
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				release, err := locker.Obtain(ctx, "item-code", time.Second)
				if !assert.NoError(t, err) {
					return
				}
				mu.Lock()
				active++
				maxSeen = max(maxSeen, active)
				mu.Unlock()
				time.Sleep(time.Millisecond)
				mu.Lock()
				active--
				mu.Unlock()
				_ = release(ctx)
			}()
		}
		wg.Wait()
		assert.Equal(t, 1, maxSeen)
	})

	t.Run("different keys do not block", func(t *testing.T) {
		releaseA, err := locker.Obtain(ctx, "a", time.Second)
		require.NoError(t, err)
		defer releaseA(ctx)

		releaseB, err := locker.Obtain(ctx, "b", time.Second)
		require.NoError(t, err)
		assert.NoError(t, releaseB(ctx))
	})

	t.Run("gives up when the context ends", func(t *testing.T) {
		release, err := locker.Obtain(ctx, "busy", time.Second)
		require.NoError(t, err)

		short, cancel := context.WithTimeout(ctx, 10*time.Millisecond)
		defer cancel()
		_, err = locker.Obtain(short, "busy", time.Second)
		assert.ErrorIs(t, err, ErrLockNotObtained)

		assert.NoError(t, release(ctx))
		assert.NoError(t, release(ctx), "double release is harmless")

		again, err := locker.Obtain(ctx, "busy", time.Second)
		require.NoError(t, err)
		assert.NoError(t, again(ctx))
	})
}
