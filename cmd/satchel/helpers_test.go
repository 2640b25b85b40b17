package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"shorter than max", "hello", 10, "hello"},
		{"exactly max", "hello", 5, "hello"},
		{"over max", "hello world", 8, "hello w…"},
		{"multi-byte runes survive the cut", "日本語のメモです", 4, "日本語…"},
		{"empty", "", 4, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, truncate(tt.in, tt.max))
		})
	}
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "0195f3a2", shortID("0195f3a2-7c1d-7e55-b0a1-111111111111"))
	assert.Equal(t, "abc", shortID("abc"))
}

func TestJoinTags(t *testing.T) {
	assert.Equal(t, "-", joinTags(nil))
	assert.Equal(t, "a,b", joinTags([]string{"a", "b"}))
}
