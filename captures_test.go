package rematch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapturesStoreAndLookup(t *testing.T) {
	caps := newCaptures(2)

	_, ok := caps.lookup(1)
	assert.False(t, ok)

	caps.store(2, "inner")
	text, ok := caps.lookup(2)
	assert.True(t, ok)
	assert.Equal(t, "inner", text)

	// group 1 is still unset even though group 2 committed first
	_, ok = caps.lookup(1)
	assert.False(t, ok)

	caps.store(1, "outer")
	assert.Equal(t, []string{"outer", "inner"}, caps.strings())
}

func TestCapturesLookupOutOfRange(t *testing.T) {
	caps := newCaptures(1)
	caps.store(1, "a")

	_, ok := caps.lookup(0)
	assert.False(t, ok)
	_, ok = caps.lookup(2)
	assert.False(t, ok)
}

func TestCapturesCheckpointRestore(t *testing.T) {
	caps := newCaptures(2)
	caps.store(1, "kept")

	saved := caps.checkpoint()
	caps.store(1, "clobbered")
	caps.store(2, "speculative")
	caps.restore(saved)

	text, ok := caps.lookup(1)
	assert.True(t, ok)
	assert.Equal(t, "kept", text)

	_, ok = caps.lookup(2)
	assert.False(t, ok)
}

func TestCapturesEmptyStringIsACapture(t *testing.T) {
	caps := newCaptures(1)
	caps.store(1, "")

	text, ok := caps.lookup(1)
	assert.True(t, ok)
	assert.Equal(t, "", text)
}
