package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromContext(t *testing.T) {
	t.Parallel()

	t.Run("returns embedded logger", func(t *testing.T) {
		t.Parallel()
		logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
		ctx := WithLogger(context.Background(), logger)
		assert.Same(t, logger, FromContext(ctx))
	})

	t.Run("falls back to default", func(t *testing.T) {
		t.Parallel()
		assert.Same(t, slog.Default(), FromContext(context.Background()))
	})
}
