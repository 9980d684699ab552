package adapter

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	hashPattern    = regexp.MustCompile(`^0x[0-9a-f]{64}$`)
	addressPattern = regexp.MustCompile(`^0x[0-9a-f]{40}$`)
)

func TestKeccakIDGenerator_NewHash(t *testing.T) {
	gen := NewIDGenerator()

	seen := make(map[string]struct{})
	for range 100 {
		hash := gen.NewHash()
		assert.Regexp(t, hashPattern, hash)
		_, dup := seen[hash]
		assert.False(t, dup, "duplicate hash %s", hash)
		seen[hash] = struct{}{}
	}
}

func TestKeccakIDGenerator_NewAddress(t *testing.T) {
	gen := NewIDGenerator()

	first := gen.NewAddress()
	second := gen.NewAddress()
	assert.Regexp(t, addressPattern, first)
	assert.Regexp(t, addressPattern, second)
	assert.NotEqual(t, first, second)
}
