// Copyright (c) 2026 Featherworks. All rights reserved.

// Package ctxutil provides helpers for interacting with values stored in [context.Context].
package ctxutil

import (
	"context"
	"log/slog"

	"github.com/featherworks/aviary/internal/platform/ctxkey"
)

// # Request Tracing

// WithRequestID returns a new context with the provided request ID attached.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxkey.KeyRequestID, id)
}

// GetRequestID retrieves the request ID from the context.
// Returns an empty string if not found.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxkey.KeyRequestID).(string)
	return id
}

// # Structured Logging

// WithLogger returns a new context with the provided logger attached.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxkey.KeyLogger, logger)
}

// GetLogger retrieves the logger from the context.
// If no logger is found, it returns the global default logger.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(ctxkey.KeyLogger).(*slog.Logger)
	if !ok {
		return slog.Default()
	}
	return logger
}

// # Cart Session

// WithCartSession returns a new context with the cart session ID attached.
func WithCartSession(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, ctxkey.KeyCartSession, sessionID)
}

// GetCartSession retrieves the cart session ID from the context.
// Returns an empty string if the request carries no cart session.
func GetCartSession(ctx context.Context) string {
	id, _ := ctx.Value(ctxkey.KeyCartSession).(string)
	return id
}
