package chip8

import "strings"

// Frame is a read-only copy of the display, indexed [y][x].
type Frame [DisplayHeight][DisplayWidth]bool

// String renders the frame as text, one line per row, '#' for lit pixels.
func (f Frame) String() string {
	var b strings.Builder
	b.Grow(DisplayHeight * (DisplayWidth + 1))
	for y := range DisplayHeight {
		for x := range DisplayWidth {
			if f[y][x] {
				b.WriteByte('#')
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Display is the 64x32 monochrome frame buffer.
type Display struct {
	pixels Frame
	dirty  bool
}

func NewDisplay() *Display {
	return &Display{dirty: true}
}

// Clear turns every pixel off.
func (d *Display) Clear() {
	d.pixels = Frame{}
	d.dirty = true
}

// Draw XORs the sprite rows onto the display with its top left corner at
// (x mod 64, y mod 32). Pixels past the right or bottom edge are clipped,
// unless wrap is set in which case they continue on the opposite edge.
// It returns true if any lit pixel was turned off.
func (d *Display) Draw(x, y uint8, sprite []byte, wrap bool) bool {
	x0 := int(x) % DisplayWidth
	y0 := int(y) % DisplayHeight
	collision := false

	for row, data := range sprite {
		py := y0 + row
		if py >= DisplayHeight {
			if !wrap {
				break
			}
			py %= DisplayHeight
		}

		for col := range 8 {
			px := x0 + col
			if px >= DisplayWidth {
				if !wrap {
					break
				}
				px %= DisplayWidth
			}

			if data&(0x80>>col) == 0 {
				continue
			}
			if d.pixels[py][px] {
				collision = true
			}
			d.pixels[py][px] = !d.pixels[py][px]
		}
	}

	d.dirty = true
	return collision
}

// Pixel reports whether the pixel at (x, y) is lit. Coordinates outside the
// display report false.
func (d *Display) Pixel(x, y int) bool {
	if x < 0 || y < 0 || x >= DisplayWidth || y >= DisplayHeight {
		return false
	}
	return d.pixels[y][x]
}

// Frame returns a snapshot of the display.
func (d *Display) Frame() Frame {
	return d.pixels
}

// Dirty reports whether the display changed since the last ClearDirty.
func (d *Display) Dirty() bool {
	return d.dirty
}

func (d *Display) ClearDirty() {
	d.dirty = false
}
