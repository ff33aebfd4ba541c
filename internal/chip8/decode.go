package chip8

import "fmt"

// Kind identifies a decoded operation.
type Kind int

const (
	OpInvalid       Kind = iota
	OpClear              // 00E0
	OpReturn             // 00EE
	OpJump               // 1NNN
	OpCall               // 2NNN
	OpSkipEqual          // 3XNN
	OpSkipNotEqual       // 4XNN
	OpSkipRegEqual       // 5XY0
	OpSetImm             // 6XNN
	OpAddImm             // 7XNN
	OpMove               // 8XY0
	OpOr                 // 8XY1
	OpAnd                // 8XY2
	OpXor                // 8XY3
	OpAdd                // 8XY4
	OpSub                // 8XY5
	OpShiftRight         // 8XY6
	OpSubReverse         // 8XY7
	OpShiftLeft          // 8XYE
	OpSkipRegNotEqual    // 9XY0
	OpSetIndex           // ANNN
	OpJumpOffset         // BNNN
	OpRandom             // CXNN
	OpDraw               // DXYN
	OpSkipKey            // EX9E
	OpSkipNotKey         // EXA1
	OpGetDelay           // FX07
	OpWaitKey            // FX0A
	OpSetDelay           // FX15
	OpSetSound           // FX18
	OpAddIndex           // FX1E
	OpFont               // FX29
	OpBCD                // FX33
	OpStore              // FX55
	OpLoad               // FX65
)

var kindNames = [...]string{
	OpInvalid:         "invalid",
	OpClear:           "clear",
	OpReturn:          "return",
	OpJump:            "jump",
	OpCall:            "call",
	OpSkipEqual:       "skip-equal",
	OpSkipNotEqual:    "skip-not-equal",
	OpSkipRegEqual:    "skip-reg-equal",
	OpSetImm:          "set-imm",
	OpAddImm:          "add-imm",
	OpMove:            "move",
	OpOr:              "or",
	OpAnd:             "and",
	OpXor:             "xor",
	OpAdd:             "add",
	OpSub:             "sub",
	OpShiftRight:      "shift-right",
	OpSubReverse:      "sub-reverse",
	OpShiftLeft:       "shift-left",
	OpSkipRegNotEqual: "skip-reg-not-equal",
	OpSetIndex:        "set-index",
	OpJumpOffset:      "jump-offset",
	OpRandom:          "random",
	OpDraw:            "draw",
	OpSkipKey:         "skip-key",
	OpSkipNotKey:      "skip-not-key",
	OpGetDelay:        "get-delay",
	OpWaitKey:         "wait-key",
	OpSetDelay:        "set-delay",
	OpSetSound:        "set-sound",
	OpAddIndex:        "add-index",
	OpFont:            "font",
	OpBCD:             "bcd",
	OpStore:           "store",
	OpLoad:            "load",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Operation is a decoded instruction word with its operand fields.
type Operation struct {
	Word uint16
	Kind Kind

	X   uint8  // bits 8-11
	Y   uint8  // bits 4-7
	N   uint8  // bits 0-3
	NN  uint8  // bits 0-7
	NNN uint16 // bits 0-11
}

// Family returns the top nibble of the instruction word.
func (op Operation) Family() uint8 {
	return uint8(op.Word >> 12)
}

// Decode splits an instruction word into its operand fields and classifies
// it. Families 0x0, 0x8, 0xE and 0xF are dispatched a second time on the low
// byte or low nibble; words that match no form return an *IllegalOpcodeError.
func Decode(word uint16) (Operation, error) {
	op := Operation{
		Word: word,
		X:    uint8((word & 0x0F00) >> 8),
		Y:    uint8((word & 0x00F0) >> 4),
		N:    uint8(word & 0x000F),
		NN:   uint8(word & 0x00FF),
		NNN:  word & 0x0FFF,
	}

	switch op.Family() {
	case 0x0:
		switch word {
		case 0x00E0:
			op.Kind = OpClear
		case 0x00EE:
			op.Kind = OpReturn
		}
	case 0x1:
		op.Kind = OpJump
	case 0x2:
		op.Kind = OpCall
	case 0x3:
		op.Kind = OpSkipEqual
	case 0x4:
		op.Kind = OpSkipNotEqual
	case 0x5:
		op.Kind = OpSkipRegEqual
	case 0x6:
		op.Kind = OpSetImm
	case 0x7:
		op.Kind = OpAddImm
	case 0x8:
		op.Kind = decodeALU(op.N)
	case 0x9:
		op.Kind = OpSkipRegNotEqual
	case 0xA:
		op.Kind = OpSetIndex
	case 0xB:
		op.Kind = OpJumpOffset
	case 0xC:
		op.Kind = OpRandom
	case 0xD:
		op.Kind = OpDraw
	case 0xE:
		switch op.NN {
		case 0x9E:
			op.Kind = OpSkipKey
		case 0xA1:
			op.Kind = OpSkipNotKey
		}
	case 0xF:
		op.Kind = decodeMisc(op.NN)
	}

	if op.Kind == OpInvalid {
		return op, &IllegalOpcodeError{Word: word}
	}
	return op, nil
}

func decodeALU(n uint8) Kind {
	switch n {
	case 0x0:
		return OpMove
	case 0x1:
		return OpOr
	case 0x2:
		return OpAnd
	case 0x3:
		return OpXor
	case 0x4:
		return OpAdd
	case 0x5:
		return OpSub
	case 0x6:
		return OpShiftRight
	case 0x7:
		return OpSubReverse
	case 0xE:
		return OpShiftLeft
	}
	return OpInvalid
}

func decodeMisc(nn uint8) Kind {
	switch nn {
	case 0x07:
		return OpGetDelay
	case 0x0A:
		return OpWaitKey
	case 0x15:
		return OpSetDelay
	case 0x18:
		return OpSetSound
	case 0x1E:
		return OpAddIndex
	case 0x29:
		return OpFont
	case 0x33:
		return OpBCD
	case 0x55:
		return OpStore
	case 0x65:
		return OpLoad
	}
	return OpInvalid
}
