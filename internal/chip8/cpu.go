package chip8

import "fmt"

// CPU holds the registers, the call stack and the timers.
type CPU struct {
	V          [RegisterCount]uint8
	I          uint16
	PC         uint16
	Stack      [StackSize]uint16
	SP         uint8
	DelayTimer uint8
	SoundTimer uint8

	// number of live stack frames, saturating at StackSize
	depth int
}

func (c *CPU) String() string {
	return fmt.Sprintf("PC: 0x%03X I: 0x%03X SP: %d DT: %d ST: %d V: % X",
		c.PC, c.I, c.SP, c.DelayTimer, c.SoundTimer, c.V[:])
}

func (c *CPU) reset() {
	*c = CPU{PC: ProgramStart}
}

// push stores a return address. The stack pointer wraps modulo StackSize, so
// a 17th nested call overwrites the oldest frame unless strict is set.
func (c *CPU) push(addr uint16, strict bool) error {
	if strict && c.depth >= StackSize {
		return &StackError{Overflow: true, Address: c.PC - InstructionSize}
	}
	c.Stack[c.SP] = addr
	c.SP = (c.SP + 1) % StackSize
	if c.depth < StackSize {
		c.depth++
	}
	return nil
}

func (c *CPU) pop(strict bool) (uint16, error) {
	if strict && c.depth == 0 {
		return 0, &StackError{Address: c.PC - InstructionSize}
	}
	c.SP = (c.SP + StackSize - 1) % StackSize
	if c.depth > 0 {
		c.depth--
	}
	return c.Stack[c.SP], nil
}
