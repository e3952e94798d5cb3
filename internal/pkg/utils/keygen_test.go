package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewID(t *testing.T) {
	id, err := NewID()
	assert.NoError(t, err)
	assert.Len(t, id, 10)
	for _, ch := range id {
		assert.True(t, strings.ContainsRune(base62Chars, ch), "unexpected character %q", ch)
	}
}

func TestNewID_Uniqueness(t *testing.T) {
	seen := make(map[string]struct{}, 10000)
	for i := 0; i < 10000; i++ {
		id, err := NewID()
		assert.NoError(t, err)
		_, dup := seen[id]
		assert.False(t, dup, "duplicate id %q", id)
		seen[id] = struct{}{}
	}
}
