package chip8

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestNewMemoryLoadsFont(t *testing.T) {
	m := NewMemory()

	assert.Equal(t, font[:], m[FontStart:FontStart+len(font)])
	assert.Equal(t, byte(0), m[FontStart-1])
	assert.Equal(t, byte(0), m[FontStart+len(font)])
}

func TestMemoryBounds(t *testing.T) {
	m := NewMemory()

	assert.NoError(t, m.WriteMemoryByte(0xFFF, 0xAB))
	b, err := m.ReadMemoryByte(0xFFF)
	assert.NoError(t, err)
	assert.Equal(t, byte(0xAB), b)

	tests := []struct {
		name string
		fn   func() error
	}{
		{"read past end", func() error { _, err := m.ReadMemoryByte(0x1000); return err }},
		{"write past end", func() error { return m.WriteMemoryByte(0x1000, 1) }},
		{"word straddling end", func() error { _, err := m.ReadWord(0xFFF); return err }},
		{"region past end", func() error { _, err := m.Region(0xFFE, 3); return err }},
		{"region far past end", func() error { _, err := m.Region(0xFFFF, 1); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.fn()
			var addrErr *AddressError
			assert.True(t, errors.As(err, &addrErr))
		})
	}
}

func TestMemoryReadWordBigEndian(t *testing.T) {
	m := NewMemory()
	assert.NoError(t, m.LoadROM([]byte{0x12, 0x34}))

	w, err := m.ReadWord(ProgramStart)
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x1234), w)
}

func TestMemoryLoadROM(t *testing.T) {
	m := NewMemory()

	assert.NoError(t, m.LoadROM(make([]byte, MaxProgramSize)))

	err := m.LoadROM(make([]byte, MaxProgramSize+1))
	var tooLarge *RomTooLargeError
	assert.True(t, errors.As(err, &tooLarge))
	assert.Equal(t, MaxProgramSize+1, tooLarge.Size)
	assert.Equal(t, MaxProgramSize, tooLarge.Max)
}
