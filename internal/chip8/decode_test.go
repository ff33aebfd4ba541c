package chip8

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDecodeFields(t *testing.T) {
	op, err := Decode(0xD123)
	assert.NoError(t, err)

	assert.Equal(t, OpDraw, op.Kind)
	assert.Equal(t, uint8(0xD), op.Family())
	assert.Equal(t, uint8(0x1), op.X)
	assert.Equal(t, uint8(0x2), op.Y)
	assert.Equal(t, uint8(0x3), op.N)
	assert.Equal(t, uint8(0x23), op.NN)
	assert.Equal(t, uint16(0x123), op.NNN)
}

func TestDecodeKinds(t *testing.T) {
	tests := []struct {
		word uint16
		kind Kind
	}{
		{0x00E0, OpClear},
		{0x00EE, OpReturn},
		{0x1234, OpJump},
		{0x2456, OpCall},
		{0x3A12, OpSkipEqual},
		{0x4B34, OpSkipNotEqual},
		{0x5120, OpSkipRegEqual},
		{0x6C0A, OpSetImm},
		{0x7DFF, OpAddImm},
		{0x8120, OpMove},
		{0x8121, OpOr},
		{0x8122, OpAnd},
		{0x8123, OpXor},
		{0x8124, OpAdd},
		{0x8125, OpSub},
		{0x8126, OpShiftRight},
		{0x8127, OpSubReverse},
		{0x812E, OpShiftLeft},
		{0x9120, OpSkipRegNotEqual},
		{0xA2F0, OpSetIndex},
		{0xB300, OpJumpOffset},
		{0xC30F, OpRandom},
		{0xD015, OpDraw},
		{0xE49E, OpSkipKey},
		{0xE5A1, OpSkipNotKey},
		{0xF607, OpGetDelay},
		{0xF70A, OpWaitKey},
		{0xF815, OpSetDelay},
		{0xF918, OpSetSound},
		{0xFA1E, OpAddIndex},
		{0xFB29, OpFont},
		{0xFC33, OpBCD},
		{0xFD55, OpStore},
		{0xFE65, OpLoad},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			op, err := Decode(tt.word)
			assert.NoError(t, err)
			assert.Equal(t, tt.kind, op.Kind)
			assert.Equal(t, tt.word, op.Word)
		})
	}
}

func TestDecodeIllegal(t *testing.T) {
	words := []uint16{
		0x0000, // machine code call
		0x0123,
		0x00E1,
		0x8128,
		0x812F,
		0xE19F,
		0xF000,
		0xF0FF,
	}

	for _, word := range words {
		op, err := Decode(word)

		var illegal *IllegalOpcodeError
		assert.True(t, errors.As(err, &illegal))
		assert.Equal(t, word, illegal.Word)
		assert.Equal(t, OpInvalid, op.Kind)
	}
}

func TestDecodeFamiliesWithoutSubforms(t *testing.T) {
	// the low nibble of 5XYN and 9XYN is not checked
	for _, word := range []uint16{0x5121, 0x912F} {
		_, err := Decode(word)
		assert.NoError(t, err)
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "draw", OpDraw.String())
	assert.Equal(t, "Kind(99)", Kind(99).String())
}
