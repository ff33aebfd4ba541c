package chip8

// Memory is the flat 4KB address space of the machine.
type Memory [MemorySize]byte

// NewMemory returns memory with the font loaded.
func NewMemory() *Memory {
	m := &Memory{}
	m.CreateFont()
	return m
}

// CreateFont copies the built-in font to FontStart.
func (m *Memory) CreateFont() {
	copy(m[FontStart:], font[:])
}

func (m *Memory) ReadMemoryByte(addr uint16) (byte, error) {
	if int(addr) >= MemorySize {
		return 0, &AddressError{Address: int(addr)}
	}
	return m[addr], nil
}

func (m *Memory) WriteMemoryByte(addr uint16, b byte) error {
	if int(addr) >= MemorySize {
		return &AddressError{Address: int(addr)}
	}
	m[addr] = b
	return nil
}

// ReadWord reads a big-endian 16-bit word, high byte at addr.
func (m *Memory) ReadWord(addr uint16) (uint16, error) {
	if int(addr)+1 >= MemorySize {
		return 0, &AddressError{Address: int(addr) + 1}
	}
	return uint16(m[addr])<<8 | uint16(m[addr+1]), nil
}

// Region returns the n bytes starting at addr. The slice aliases memory.
func (m *Memory) Region(addr uint16, n int) ([]byte, error) {
	end := int(addr) + n
	if end > MemorySize {
		return nil, &AddressError{Address: end - 1}
	}
	return m[addr:end], nil
}

// LoadROM copies a program image to ProgramStart.
func (m *Memory) LoadROM(rom []byte) error {
	if len(rom) > MaxProgramSize {
		return &RomTooLargeError{Size: len(rom), Max: MaxProgramSize}
	}
	copy(m[ProgramStart:], rom)
	return nil
}
