// Copyright (c) 2026 Featherworks. All rights reserved.

package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromRequest_Clamping(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "", DefaultPage, DefaultLimit},
		{"explicit", "page=3&limit=50", 3, 50},
		{"negative page", "page=-1", DefaultPage, DefaultLimit},
		{"zero limit", "limit=0", DefaultPage, DefaultLimit},
		{"excessive limit", "limit=9999", DefaultPage, DefaultLimit},
		{"garbage", "page=abc&limit=xyz", DefaultPage, DefaultLimit},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/?"+tc.query, nil)
			p := FromRequest(r)
			assert.Equal(t, tc.wantPage, p.Page)
			assert.Equal(t, tc.wantLimit, p.Limit)
		})
	}
}

func TestSlice(t *testing.T) {
	list := []int{1, 2, 3, 4, 5}

	assert.Equal(t, []int{1, 2}, Slice(list, Params{Page: 1, Limit: 2}))
	assert.Equal(t, []int{3, 4}, Slice(list, Params{Page: 2, Limit: 2}))
	assert.Equal(t, []int{5}, Slice(list, Params{Page: 3, Limit: 2}))
	assert.Empty(t, Slice(list, Params{Page: 4, Limit: 2}), "past the end yields an empty page")
	assert.Equal(t, list, Slice(list, Params{Page: 1, Limit: 100}))
	assert.Empty(t, Slice([]int{}, Params{Page: 1, Limit: 10}))
}
