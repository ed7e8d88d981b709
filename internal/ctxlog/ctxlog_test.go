package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromContext_ReturnsEmbeddedLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf, nil))

	ctx := WithLogger(context.Background(), logger)
	FromContext(ctx).Info("hello", "tile", "corner")

	require.Same(t, logger, FromContext(ctx))
	assert.Contains(t, buf.String(), "tile=corner")
}

func TestFromContext_FallsBackToDefault(t *testing.T) {
	assert.Same(t, slog.Default(), FromContext(context.Background()))
}

func TestDiscard(t *testing.T) {
	ctx := Discard(context.Background())
	logger := FromContext(ctx)

	require.NotNil(t, logger)
	assert.NotSame(t, slog.Default(), logger)
}
