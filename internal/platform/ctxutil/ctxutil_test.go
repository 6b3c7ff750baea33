// Copyright (c) 2026 Featherworks. All rights reserved.

package ctxutil_test

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/featherworks/aviary/internal/platform/ctxutil"
)

/*
TestRequestID_RoundTrip verifies storage and retrieval of the correlation ID.
*/
func TestRequestID_RoundTrip(t *testing.T) {
	ctx := context.Background()

	assert.Empty(t, ctxutil.GetRequestID(ctx))

	ctx = ctxutil.WithRequestID(ctx, "req-123")
	assert.Equal(t, "req-123", ctxutil.GetRequestID(ctx))
}

/*
TestLogger_Fallback verifies that a missing logger falls back to the default.
*/
func TestLogger_Fallback(t *testing.T) {
	ctx := context.Background()

	logger := ctxutil.GetLogger(ctx)
	require.NotNil(t, logger)
	assert.Equal(t, slog.Default(), logger)
}

/*
TestLogger_RoundTrip verifies that an injected logger is returned unchanged.
*/
func TestLogger_RoundTrip(t *testing.T) {
	custom := slog.New(slog.NewTextHandler(os.Stdout, nil))

	ctx := ctxutil.WithLogger(context.Background(), custom)
	assert.Same(t, custom, ctxutil.GetLogger(ctx))
}

/*
TestCartSession_RoundTrip verifies storage and retrieval of the cart session ID.
*/
func TestCartSession_RoundTrip(t *testing.T) {
	ctx := context.Background()

	assert.Empty(t, ctxutil.GetCartSession(ctx))

	ctx = ctxutil.WithCartSession(ctx, "sess-42")
	assert.Equal(t, "sess-42", ctxutil.GetCartSession(ctx))
}
