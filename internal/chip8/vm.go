package chip8

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// Status is the state of the VM after a step.
type Status int

const (
	// Running means the instruction completed and the next one can be executed.
	Running Status = iota
	// AwaitingKey means FX0A found no qualifying key. Step again to poll, or
	// call SupplyKey to complete the instruction.
	AwaitingKey
	// Halted means the VM stopped on a fault and must be Reset.
	Halted
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case AwaitingKey:
		return "awaiting key"
	case Halted:
		return "halted"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Config holds the options for a new VM.
type Config struct {
	Quirks Quirks
	// Seed for the random number instruction. Zero seeds from the clock.
	Seed int64
}

func DefaultConfig() Config {
	return Config{
		Quirks: DefaultQuirks(),
	}
}

// VM is the complete machine state. It is not safe for concurrent use; the
// driving loop owns it and calls Step, TickTimers and Display in turn.
type VM struct {
	CPU     CPU
	Memory  *Memory
	Display *Display

	quirks Quirks
	rng    *rand.Rand
	rom    []byte

	status  Status
	fault   error
	waitReg uint8
}

// New returns a VM with the font loaded and the program counter at
// ProgramStart.
func New(cfg Config) *VM {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	vm := &VM{
		Memory:  NewMemory(),
		Display: NewDisplay(),
		quirks:  cfg.Quirks,
		rng:     rand.New(rand.NewSource(seed)),
	}
	vm.CPU.reset()
	return vm
}

// LoadROM copies the program image to ProgramStart. The image is kept so
// that Reset can reload it.
func (vm *VM) LoadROM(rom []byte) error {
	if err := vm.Memory.LoadROM(rom); err != nil {
		return err
	}
	vm.rom = append(vm.rom[:0], rom...)
	return nil
}

// Reset restores the power-on state and reloads the last program image.
func (vm *VM) Reset() {
	vm.CPU.reset()
	*vm.Memory = Memory{}
	vm.Memory.CreateFont()
	copy(vm.Memory[ProgramStart:], vm.rom)
	vm.Display.Clear()
	vm.status = Running
	vm.fault = nil
	vm.waitReg = 0
}

func (vm *VM) Quirks() Quirks {
	return vm.quirks
}

func (vm *VM) Status() Status {
	return vm.status
}

// Fault returns the error that halted the VM, or nil.
func (vm *VM) Fault() error {
	return vm.fault
}

// Next decodes the instruction at the program counter without executing it.
func (vm *VM) Next() (Operation, error) {
	word, err := vm.Memory.ReadWord(vm.CPU.PC)
	if err != nil {
		return Operation{}, err
	}
	op, err := Decode(word)
	if err != nil {
		var illegal *IllegalOpcodeError
		if errors.As(err, &illegal) {
			illegal.Address = vm.CPU.PC
		}
	}
	return op, err
}

// Step fetches, decodes and executes one instruction. The program counter is
// advanced past the instruction before it executes. A fault halts the VM and
// is returned; stepping a halted VM returns an error wrapping ErrHalted.
func (vm *VM) Step(keys Keypad) (Status, error) {
	if vm.status == Halted {
		return Halted, fmt.Errorf("%w: %w", ErrHalted, vm.fault)
	}

	op, err := vm.Next()
	if err != nil {
		return vm.halt(err)
	}
	vm.CPU.PC += InstructionSize

	if err := vm.Execute(op, keys); err != nil {
		return vm.halt(err)
	}
	return vm.status, nil
}

// SupplyKey completes a pending FX0A with the given key.
func (vm *VM) SupplyKey(key uint8) error {
	if vm.status != AwaitingKey {
		return ErrNotAwaitingKey
	}
	vm.CPU.V[vm.waitReg] = key & 0xF
	vm.CPU.PC += InstructionSize
	vm.status = Running
	return nil
}

func (vm *VM) halt(err error) (Status, error) {
	vm.status = Halted
	vm.fault = err
	return Halted, err
}
