package chip8

import (
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDisplayDrawCollision(t *testing.T) {
	d := NewDisplay()

	assert.False(t, d.Draw(0, 0, []byte{0xF0}, false))
	assert.True(t, d.Pixel(0, 0))
	assert.True(t, d.Pixel(3, 0))
	assert.False(t, d.Pixel(4, 0))

	// overlapping only unlit pixels is not a collision
	assert.False(t, d.Draw(4, 0, []byte{0xF0}, false))

	// drawing the same sprite again erases it and reports a collision
	assert.True(t, d.Draw(0, 0, []byte{0xF0}, false))
	assert.False(t, d.Pixel(0, 0))
	assert.True(t, d.Pixel(4, 0))
}

func TestDisplayDrawClipsAtEdges(t *testing.T) {
	d := NewDisplay()
	sprite := []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF}

	assert.False(t, d.Draw(60, 30, sprite, false))

	frame := d.Frame()
	lit := 0
	for y := range DisplayHeight {
		for x := range DisplayWidth {
			if frame[y][x] {
				lit++
				assert.True(t, x >= 60 && y >= 30)
			}
		}
	}
	assert.Equal(t, 4*2, lit)
}

func TestDisplayDrawWraps(t *testing.T) {
	d := NewDisplay()

	d.Draw(62, 31, []byte{0xF0, 0xF0}, true)

	assert.True(t, d.Pixel(62, 31))
	assert.True(t, d.Pixel(63, 31))
	assert.True(t, d.Pixel(0, 31))
	assert.True(t, d.Pixel(1, 31))
	assert.True(t, d.Pixel(62, 0))
	assert.True(t, d.Pixel(1, 0))
}

func TestDisplayDrawStartCoordinatesWrap(t *testing.T) {
	d := NewDisplay()

	d.Draw(64+2, 32+3, []byte{0x80}, false)
	assert.True(t, d.Pixel(2, 3))
}

func TestDisplayClear(t *testing.T) {
	d := NewDisplay()
	d.Draw(10, 10, []byte{0xFF}, false)
	d.ClearDirty()

	d.Clear()
	assert.True(t, d.Dirty())
	assert.Equal(t, Frame{}, d.Frame())
}

func TestFrameString(t *testing.T) {
	d := NewDisplay()
	d.Draw(0, 0, []byte{0xA0}, false)

	lines := strings.Split(d.Frame().String(), "\n")
	assert.Equal(t, DisplayHeight+1, len(lines))
	assert.Equal(t, "# #", strings.TrimRight(lines[0], " "))
	assert.Equal(t, DisplayWidth, len(lines[1]))
}
