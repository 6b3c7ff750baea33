// Copyright (c) 2026 Featherworks. All rights reserved.

package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Bald Eagle", "bald-eagle"},
		{"Great Horned Owl", "great-horned-owl"},
		{"Anna's Hummingbird", "anna-s-hummingbird"},
		{"Quetzal (Resplendent)", "quetzal-resplendent"},
		{"Céleste Bleue", "celeste-bleue"},
		{"  padded  ", "padded"},
		{"", ""},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, From(tc.input), tc.input)
	}
}
