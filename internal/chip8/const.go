package chip8

const (
	MemorySize    = 4096
	RegisterCount = 16
	StackSize     = 16
	KeyCount      = 16

	DisplayWidth  = 64
	DisplayHeight = 32

	// FontStart is the address of the glyph for digit 0.
	FontStart = 0x50
	// FontGlyphSize is the number of bytes (rows) of one font glyph.
	FontGlyphSize = 5

	// ProgramStart is where program images are loaded and execution begins.
	ProgramStart = 0x200
	// MaxProgramSize is the largest program image that fits above ProgramStart.
	MaxProgramSize = MemorySize - ProgramStart

	// InstructionSize is the size of every instruction word in bytes.
	InstructionSize = 2

	// TimerFrequency is the rate in Hz at which the delay and sound timers count down.
	TimerFrequency = 60

	flagRegister = 0xF
)
