// Copyright (c) 2026 Featherworks. All rights reserved.

package blob

import (
	"context"
	"fmt"
	"io"
	"sync"
)

// MemoryStore is an in-process [Store] used in tests and when no S3
// bucket is configured. Objects vanish on restart.
type MemoryStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	baseURL string
}

// NewMemory creates an empty in-memory blob store. baseURL is what the
// returned public URLs are rooted at (e.g. "memory://images").
func NewMemory(baseURL string) *MemoryStore {
	return &MemoryStore{
		objects: make(map[string][]byte),
		baseURL: baseURL,
	}
}

// Put stores the object bytes and returns a synthetic public URL.
func (store *MemoryStore) Put(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return "", fmt.Errorf("blob: read body: %w", err)
	}

	store.mu.Lock()
	defer store.mu.Unlock()

	if _, exists := store.objects[key]; exists {
		return "", fmt.Errorf("blob: object %q already exists", key)
	}
	store.objects[key] = data

	return store.baseURL + "/" + key, nil
}

// Get returns the stored bytes, for test assertions.
func (store *MemoryStore) Get(key string) ([]byte, bool) {
	store.mu.Lock()
	defer store.mu.Unlock()
	data, ok := store.objects[key]
	return data, ok
}

// Len reports the number of stored objects.
func (store *MemoryStore) Len() int {
	store.mu.Lock()
	defer store.mu.Unlock()
	return len(store.objects)
}
