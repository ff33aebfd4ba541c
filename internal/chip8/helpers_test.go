package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

// newTestVM returns a VM with a fixed seed and the given instruction words
// loaded at ProgramStart.
func newTestVM(t *testing.T, quirks Quirks, words ...uint16) *VM {
	t.Helper()

	vm := New(Config{Quirks: quirks, Seed: 1})
	rom := make([]byte, 0, len(words)*2)
	for _, w := range words {
		rom = append(rom, byte(w>>8), byte(w))
	}
	assert.NoError(t, vm.LoadROM(rom))
	return vm
}

// run executes n instructions and fails the test on any fault.
func run(t *testing.T, vm *VM, n int) {
	t.Helper()

	for range n {
		_, err := vm.Step(nil)
		assert.NoError(t, err)
	}
}
