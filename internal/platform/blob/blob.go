// Copyright (c) 2026 Featherworks. All rights reserved.

// Package blob provides object storage for uploaded images.
//
// # Architecture
//
// The admin editor uploads artwork and record images before the record
// itself is saved; the resulting public URL is what gets attached to the
// record. Two drivers exist: an S3-compatible backend for production and
// an in-memory store for tests and credential-less development.
package blob

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"time"
)

// Store accepts image bytes under a caller-chosen key and returns a
// publicly resolvable URL for the stored object.
type Store interface {
	// Put stores the object and returns its public URL.
	Put(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
}

// unsafeChars matches everything that is stripped from an original filename.
var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9.]`)

// Key builds a collision-resistant object key from an uploaded filename:
// a millisecond timestamp prefix plus the sanitized original name.
func Key(originalName string) string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), unsafeChars.ReplaceAllString(originalName, ""))
}
