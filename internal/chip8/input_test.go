package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestKeyState(t *testing.T) {
	var keys KeyState

	keys.Press(0x3)
	assert.True(t, keys.Held(0x3))
	assert.False(t, keys.Released(0x3))

	keys.Set(0x3, false)
	assert.False(t, keys.Held(0x3))
	assert.True(t, keys.Released(0x3))

	keys.Latch()
	assert.False(t, keys.Released(0x3))

	// releasing a key that was not held is not an edge
	keys.Release(0x4)
	assert.False(t, keys.Released(0x4))

	keys.Set(0x1F, true)
	snapshot := keys.Snapshot()
	assert.True(t, snapshot[0xF])
	assert.True(t, keys.Held(0xF))
}

func TestNoKeys(t *testing.T) {
	var keys NoKeys
	assert.False(t, keys.Held(0))
	assert.False(t, keys.Released(0))
	assert.Equal(t, [KeyCount]bool{}, keys.Snapshot())
}
