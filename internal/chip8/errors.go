package chip8

import (
	"errors"
	"fmt"
)

var (
	// ErrHalted is returned when stepping a VM that stopped on a fault.
	ErrHalted = errors.New("vm halted")
	// ErrNotAwaitingKey is returned by SupplyKey when no key wait is pending.
	ErrNotAwaitingKey = errors.New("vm is not waiting for a key")
)

// IllegalOpcodeError reports an instruction word that does not decode to any
// known operation. Address is the location it was fetched from, when known.
type IllegalOpcodeError struct {
	Word    uint16
	Address uint16
}

func (e *IllegalOpcodeError) Error() string {
	return fmt.Sprintf("illegal opcode 0x%04X at 0x%03X", e.Word, e.Address)
}

// AddressError reports a memory access outside of [0, MemorySize).
type AddressError struct {
	Address int
}

func (e *AddressError) Error() string {
	return fmt.Sprintf("memory address 0x%X out of range", e.Address)
}

// RomTooLargeError reports a program image that does not fit into memory
// above ProgramStart.
type RomTooLargeError struct {
	Size int
	Max  int
}

func (e *RomTooLargeError) Error() string {
	return fmt.Sprintf("program image of %d bytes exceeds the %d bytes available", e.Size, e.Max)
}

// StackError reports a call stack overflow or underflow. It is only raised
// when Quirks.StrictStack is set.
type StackError struct {
	Overflow bool
	Address  uint16
}

func (e *StackError) Error() string {
	if e.Overflow {
		return fmt.Sprintf("call stack overflow at 0x%03X", e.Address)
	}
	return fmt.Sprintf("call stack underflow at 0x%03X", e.Address)
}
