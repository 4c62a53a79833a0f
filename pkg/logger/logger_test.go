package logger

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithCtxFallsBackToBase(t *testing.T) {
	assert.Same(t, L, WithCtx(context.Background()))

	scoped := L.With("request_id", "abc")
	ctx := InjectLogger(context.Background(), scoped)
	assert.Same(t, scoped, WithCtx(ctx))
}

func TestSetupProductionWritesJSON(t *testing.T) {
	prev := L
	t.Cleanup(func() { L = prev; slog.SetDefault(prev) })

	var buf bytes.Buffer
	log := Setup(&buf, "production")
	log.Debug("hidden")
	log.Info("product created", "product_id", 7)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"product created"`)
	assert.Contains(t, out, `"product_id":7`)
}

func TestMultiHandlerFansOut(t *testing.T) {
	var a, b bytes.Buffer
	log := slog.New(NewMultiHandler(
		slog.NewTextHandler(&a, nil),
		slog.NewTextHandler(&b, &slog.HandlerOptions{Level: slog.LevelError}),
	))
	log.With("k", "v").Info("hello")

	assert.Contains(t, a.String(), "hello")
	assert.Contains(t, a.String(), "k=v")
	assert.Empty(t, b.String())
}

func TestMongoHandlerBuildsDocuments(t *testing.T) {
	h := &MongoHandler{
		service:   "stockroom",
		level:     slog.LevelInfo,
		queue:     make(chan LogDocument, 4),
		closeOnce: &sync.Once{},
	}
	log := slog.New(h).With("request_id", "rid-1").WithGroup("product")

	assert.False(t, h.Enabled(context.Background(), slog.LevelDebug))
	log.Info("updated", "id", 3)

	require.Len(t, h.queue, 1)
	doc := <-h.queue
	assert.Equal(t, "updated", doc.Msg)
	assert.Equal(t, "stockroom", doc.Service)
	assert.Equal(t, "rid-1", doc.RequestID)
	assert.EqualValues(t, 3, doc.Attrs["product.id"])
}

func TestMongoHandlerDropsWhenFull(t *testing.T) {
	h := &MongoHandler{level: slog.LevelInfo, queue: make(chan LogDocument, 1), closeOnce: &sync.Once{}}
	log := slog.New(h)
	log.Info("one")
	log.Info("two")
	assert.Len(t, h.queue, 1)
}
