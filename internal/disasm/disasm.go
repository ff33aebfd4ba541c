// Package disasm renders CHIP-8 instruction words as assembly text using the
// retrogolib CHIP-8 opcode table.
package disasm

import (
	"fmt"
	"io"

	chip8cpu "github.com/retroenv/retrogolib/arch/cpu/chip8"
	"meszarosd.hu/chip8vm/internal/chip8"
)

// lookup returns the opcode table entry matching the word.
func lookup(word uint16) (chip8cpu.Opcode, bool) {
	for _, op := range chip8cpu.Opcodes[int(word>>12)] {
		if op.Info.Mask&word == op.Info.Value {
			return op, op.Instruction != nil
		}
	}
	return chip8cpu.Opcode{}, false
}

// Instruction returns the assembly form of the word, for example
// "drw V0, V1, $5". It returns false for words the interpreter does not
// execute or the opcode table does not name.
func Instruction(word uint16) (string, bool) {
	op, err := chip8.Decode(word)
	if err != nil {
		return "", false
	}
	entry, ok := lookup(word)
	if !ok {
		return "", false
	}

	name := entry.Instruction.Name
	if params := operands(op); params != "" {
		return name + " " + params, true
	}
	return name, true
}

// Data returns the listing form of a word that is not an instruction.
func Data(word uint16) string {
	return fmt.Sprintf("dw $%04X", word)
}

// operands formats the parameters by operation, the table only provides the
// instruction name.
func operands(op chip8.Operation) string {
	switch op.Kind {
	case chip8.OpJump, chip8.OpCall:
		return fmt.Sprintf("$%03X", op.NNN)
	case chip8.OpJumpOffset:
		return fmt.Sprintf("V0, $%03X", op.NNN)
	case chip8.OpSkipEqual, chip8.OpSkipNotEqual, chip8.OpSetImm, chip8.OpAddImm, chip8.OpRandom:
		return fmt.Sprintf("V%X, $%02X", op.X, op.NN)
	case chip8.OpSkipRegEqual, chip8.OpSkipRegNotEqual, chip8.OpMove, chip8.OpOr, chip8.OpAnd,
		chip8.OpXor, chip8.OpAdd, chip8.OpSub, chip8.OpSubReverse:
		return fmt.Sprintf("V%X, V%X", op.X, op.Y)
	case chip8.OpShiftRight, chip8.OpShiftLeft, chip8.OpSkipKey, chip8.OpSkipNotKey:
		return fmt.Sprintf("V%X", op.X)
	case chip8.OpSetIndex:
		return fmt.Sprintf("I, $%03X", op.NNN)
	case chip8.OpDraw:
		return fmt.Sprintf("V%X, V%X, $%X", op.X, op.Y, op.N)
	case chip8.OpGetDelay:
		return fmt.Sprintf("V%X, DT", op.X)
	case chip8.OpWaitKey:
		return fmt.Sprintf("V%X, K", op.X)
	case chip8.OpSetDelay:
		return fmt.Sprintf("DT, V%X", op.X)
	case chip8.OpSetSound:
		return fmt.Sprintf("ST, V%X", op.X)
	case chip8.OpAddIndex:
		return fmt.Sprintf("I, V%X", op.X)
	case chip8.OpFont:
		return fmt.Sprintf("F, V%X", op.X)
	case chip8.OpBCD:
		return fmt.Sprintf("B, V%X", op.X)
	case chip8.OpStore:
		return fmt.Sprintf("[I], V%X", op.X)
	case chip8.OpLoad:
		return fmt.Sprintf("V%X, [I]", op.X)
	}
	return ""
}

// Listing writes the program one word per line with its load address.
// A trailing odd byte is listed as a word with a zero low byte.
func Listing(w io.Writer, rom []byte) error {
	for offset := 0; offset < len(rom); offset += chip8.InstructionSize {
		word := uint16(rom[offset]) << 8
		if offset+1 < len(rom) {
			word |= uint16(rom[offset+1])
		}

		text, ok := Instruction(word)
		if !ok {
			text = Data(word)
		}
		if _, err := fmt.Fprintf(w, "%04X  %04X  %s\n", chip8.ProgramStart+offset, word, text); err != nil {
			return fmt.Errorf("writing listing: %w", err)
		}
	}
	return nil
}
