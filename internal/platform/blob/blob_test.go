// Copyright (c) 2026 Featherworks. All rights reserved.

package blob_test

import (
	"context"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/featherworks/aviary/internal/platform/blob"
)

/*
TestKey_SanitizesFilename verifies the collision-resistant key format:
a millisecond timestamp prefix plus the sanitized original name.
*/
func TestKey_SanitizesFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantTail string
	}{
		{"plain", "eagle.png", "eagle.png"},
		{"spaces_and_symbols", "my bird photo (1).png", "mybirdphoto1.png"},
		{"unicode", "pájaro.jpg", "pjaro.jpg"},
	}

	keyFormat := regexp.MustCompile(`^\d+-`)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := blob.Key(tt.input)
			assert.Regexp(t, keyFormat, key)
			assert.True(t, strings.HasSuffix(key, tt.wantTail), "key %q should end with %q", key, tt.wantTail)
		})
	}
}

/*
TestMemoryStore_PutAndGet verifies storage, URL construction, and the
create-only semantics of the in-memory driver.
*/
func TestMemoryStore_PutAndGet(t *testing.T) {
	store := blob.NewMemory("memory://images")

	url, err := store.Put(context.Background(), "123-eagle.png", strings.NewReader("png-bytes"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "memory://images/123-eagle.png", url)

	data, ok := store.Get("123-eagle.png")
	require.True(t, ok)
	assert.Equal(t, []byte("png-bytes"), data)

	// Duplicate keys are rejected.
	_, err = store.Put(context.Background(), "123-eagle.png", strings.NewReader("other"), "image/png")
	assert.Error(t, err)
	assert.Equal(t, 1, store.Len())
}
