// Package chip8 implements the CHIP-8 virtual machine core: memory, registers,
// the display buffer, the instruction decoder and the execution engine.
//
// Memory map (4KB total):
//
//	0x000-0x04F: unused interpreter area
//	0x050-0x09F: built-in hexadecimal font (16 glyphs, 5 bytes each)
//	0x200-0xFFF: program image and work RAM
//
// The package performs no I/O and no logging. Input, rendering and audio are
// supplied by the caller through Keypad, Frame and VM.SoundActive, and every
// fault is returned as an error.
package chip8
