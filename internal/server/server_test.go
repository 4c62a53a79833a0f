package server

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/stockroom/pkg/logger"
	"github.com/shashiranjanraj/stockroom/pkg/middleware"
)

func testEnv(t *testing.T) {
	t.Helper()
	logger.Setup(io.Discard, "test")
	t.Setenv("APP_PORT", "0")
	t.Setenv("GRPC_PORT", "0")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DATABASE_DSN", "file:server_test?mode=memory&cache=shared")
	t.Setenv("LOG_MONGO_URI", "")
	t.Setenv("REDIS_ADDR", "")
}

func TestRunStopsOnCancel(t *testing.T) {
	testEnv(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Run(ctx) }()

	time.Sleep(200 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestBuildLimiterPrefersRedis(t *testing.T) {
	testEnv(t)
	mr := miniredis.RunT(t)
	t.Setenv("REDIS_ADDR", mr.Addr())
	t.Setenv("RATE_LIMIT_PER_MINUTE", "10")

	l, closeFn := buildLimiter(context.Background())
	defer closeFn()
	require.NotNil(t, l)
	assert.IsType(t, &middleware.RedisLimiter{}, l)
}

func TestBuildLimiterFallsBackToMemory(t *testing.T) {
	testEnv(t)
	t.Setenv("REDIS_ADDR", "127.0.0.1:1")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "10")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	l, closeFn := buildLimiter(ctx)
	defer closeFn()
	assert.IsType(t, &middleware.MemoryLimiter{}, l)
}

func TestBuildLimiterDisabled(t *testing.T) {
	testEnv(t)
	t.Setenv("RATE_LIMIT_PER_MINUTE", "0")

	l, _ := buildLimiter(context.Background())
	assert.Nil(t, l)
}
