package rematch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRangeString(t *testing.T) {
	assert.Equal(t, "5", NewRange(5, 5).String())
	assert.Equal(t, "0..6", NewRange(0, 6).String())
}

func TestRangeLen(t *testing.T) {
	assert.Equal(t, 0, NewRange(3, 3).Len())
	assert.Equal(t, 4, NewRange(2, 6).Len())
}
