package cache

import (
	"testing"

	"github.com/erp/mfgdesk/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestFactory_Create(t *testing.T) {
	t.Run("disabled redis uses in-process backends", func(t *testing.T) {
		b, err := NewFactory(config.RedisConfig{}).Create()
		require.NoError(t, err)
		defer b.Close()

		assert.False(t, b.Distributed())
		assert.Nil(t, b.Client())
		assert.IsType(t, &InMemoryBucketCache{}, b.Buckets)
		assert.IsType(t, &LocalLocker{}, b.Locker)
		assert.IsType(t, &InMemoryIdempotencyStore{}, b.Idempotency)
	})

	unreachable := config.RedisConfig{Enabled: true, Host: "127.0.0.1", Port: 1}

	t.Run("falls back with a warning", func(t *testing.T) {
		core, logs := observer.New(zapcore.WarnLevel)
		b, err := NewFactory(unreachable, WithLogger(zap.New(core))).Create()
		require.NoError(t, err)
		defer b.Close()

		assert.False(t, b.Distributed())
		assert.Equal(t, 1, logs.Len())
	})

	t.Run("fails without fallback", func(t *testing.T) {
		_, err := NewFactory(unreachable, WithInMemoryFallback(false)).Create()
		assert.ErrorContains(t, err, "redis required")
	})
}
