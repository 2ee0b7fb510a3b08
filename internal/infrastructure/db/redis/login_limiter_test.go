package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupRedis(t *testing.T) *LoginLimiter {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container-backed test in -short mode")
	}

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("warning: failed to terminate redis container: %v", err)
		}
	})

	addr, err := container.Endpoint(ctx, "")
	require.NoError(t, err)

	client, err := Connect(ctx, Config{Addr: addr})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return NewLoginLimiter(client, 3, time.Minute)
}

func TestLoginLimiter(t *testing.T) {
	limiter := setupRedis(t)
	ctx := context.Background()

	t.Run("unknown user is not blocked", func(t *testing.T) {
		blocked, err := limiter.Blocked(ctx, "fresh")
		require.NoError(t, err)
		assert.False(t, blocked)
	})

	t.Run("blocks after max attempts", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			require.NoError(t, limiter.RecordFailure(ctx, "alice"))
		}
		blocked, err := limiter.Blocked(ctx, "alice")
		require.NoError(t, err)
		assert.False(t, blocked)

		require.NoError(t, limiter.RecordFailure(ctx, "alice"))
		blocked, err = limiter.Blocked(ctx, "alice")
		require.NoError(t, err)
		assert.True(t, blocked)

		ttl, err := limiter.client.TTL(ctx, limiter.key("alice")).Result()
		require.NoError(t, err)
		assert.Greater(t, ttl, time.Duration(0))
	})

	t.Run("reset clears the counter", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			require.NoError(t, limiter.RecordFailure(ctx, "bob"))
		}
		require.NoError(t, limiter.Reset(ctx, "bob"))

		blocked, err := limiter.Blocked(ctx, "bob")
		require.NoError(t, err)
		assert.False(t, blocked)
	})
}
