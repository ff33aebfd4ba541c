package chip8

import "fmt"

// Execute applies a decoded operation. The program counter must already
// point past the instruction; jumps, calls, returns and skips overwrite or
// advance it again. A nil keypad behaves as if no key is pressed. A halted
// VM stays halted and returns an error wrapping ErrHalted.
func (vm *VM) Execute(op Operation, keys Keypad) error {
	if vm.status == Halted {
		return fmt.Errorf("%w: %w", ErrHalted, vm.fault)
	}
	if keys == nil {
		keys = NoKeys{}
	}
	vm.status = Running

	switch op.Family() {
	case 0x0:
		return vm.executeSystem(op)
	case 0x1:
		vm.CPU.PC = op.NNN
	case 0x2:
		if err := vm.CPU.push(vm.CPU.PC, vm.quirks.StrictStack); err != nil {
			return err
		}
		vm.CPU.PC = op.NNN
	case 0x3:
		vm.skipIf(vm.CPU.V[op.X] == op.NN)
	case 0x4:
		vm.skipIf(vm.CPU.V[op.X] != op.NN)
	case 0x5:
		vm.skipIf(vm.CPU.V[op.X] == vm.CPU.V[op.Y])
	case 0x6:
		vm.CPU.V[op.X] = op.NN
	case 0x7:
		vm.CPU.V[op.X] += op.NN
	case 0x8:
		return vm.executeALU(op)
	case 0x9:
		vm.skipIf(vm.CPU.V[op.X] != vm.CPU.V[op.Y])
	case 0xA:
		vm.CPU.I = op.NNN
	case 0xB:
		vm.CPU.PC = op.NNN + uint16(vm.CPU.V[0])
	case 0xC:
		vm.CPU.V[op.X] = uint8(vm.rng.Intn(256)) & op.NN
	case 0xD:
		return vm.draw(op)
	case 0xE:
		return vm.executeKey(op, keys)
	case 0xF:
		return vm.executeMisc(op, keys)
	}
	return nil
}

func (vm *VM) executeSystem(op Operation) error {
	switch op.Kind {
	case OpClear:
		vm.Display.Clear()
	case OpReturn:
		addr, err := vm.CPU.pop(vm.quirks.StrictStack)
		if err != nil {
			return err
		}
		vm.CPU.PC = addr
	default:
		return vm.illegal(op)
	}
	return nil
}

func (vm *VM) executeALU(op Operation) error {
	v := &vm.CPU.V
	x, y := op.X, op.Y

	switch op.Kind {
	case OpMove:
		v[x] = v[y]
	case OpOr:
		v[x] |= v[y]
		vm.resetFlagAfterLogic()
	case OpAnd:
		v[x] &= v[y]
		vm.resetFlagAfterLogic()
	case OpXor:
		v[x] ^= v[y]
		vm.resetFlagAfterLogic()
	case OpAdd:
		sum := uint16(v[x]) + uint16(v[y])
		v[x] = uint8(sum)
		v[flagRegister] = boolToFlag(sum > 0xFF)
	case OpSub:
		noBorrow := v[x] >= v[y]
		v[x] -= v[y]
		v[flagRegister] = boolToFlag(noBorrow)
	case OpSubReverse:
		noBorrow := v[y] >= v[x]
		v[x] = v[y] - v[x]
		v[flagRegister] = boolToFlag(noBorrow)
	case OpShiftRight:
		if vm.quirks.ShiftUsesVY {
			v[x] = v[y]
		}
		bit := v[x] & 0x01
		v[x] >>= 1
		v[flagRegister] = bit
	case OpShiftLeft:
		if vm.quirks.ShiftUsesVY {
			v[x] = v[y]
		}
		bit := v[x] >> 7
		v[x] <<= 1
		v[flagRegister] = bit
	default:
		return vm.illegal(op)
	}
	return nil
}

func (vm *VM) draw(op Operation) error {
	sprite, err := vm.Memory.Region(vm.CPU.I, int(op.N))
	if err != nil {
		return err
	}
	collision := vm.Display.Draw(vm.CPU.V[op.X], vm.CPU.V[op.Y], sprite, vm.quirks.WrapSprites)
	vm.CPU.V[flagRegister] = boolToFlag(collision)
	return nil
}

func (vm *VM) executeKey(op Operation, keys Keypad) error {
	key := vm.CPU.V[op.X] & 0xF

	switch op.Kind {
	case OpSkipKey:
		vm.skipIf(keys.Held(key))
	case OpSkipNotKey:
		vm.skipIf(!keys.Held(key))
	default:
		return vm.illegal(op)
	}
	return nil
}

func (vm *VM) executeMisc(op Operation, keys Keypad) error {
	c := &vm.CPU

	switch op.Kind {
	case OpGetDelay:
		c.V[op.X] = c.DelayTimer
	case OpWaitKey:
		key, ok := vm.waitingKey(keys)
		if !ok {
			c.PC -= InstructionSize
			vm.waitReg = op.X
			vm.status = AwaitingKey
			return nil
		}
		c.V[op.X] = key
	case OpSetDelay:
		c.DelayTimer = c.V[op.X]
	case OpSetSound:
		c.SoundTimer = c.V[op.X]
	case OpAddIndex:
		c.I += uint16(c.V[op.X])
	case OpFont:
		c.I = FontAddress(c.V[op.X])
	case OpBCD:
		digits, err := vm.Memory.Region(c.I, 3)
		if err != nil {
			return err
		}
		value := c.V[op.X]
		digits[0] = value / 100
		digits[1] = value / 10 % 10
		digits[2] = value % 10
	case OpStore:
		count := vm.registerCount(op.X)
		dst, err := vm.Memory.Region(c.I, count)
		if err != nil {
			return err
		}
		copy(dst, c.V[:count])
		vm.advanceIndex(count)
	case OpLoad:
		count := vm.registerCount(op.X)
		src, err := vm.Memory.Region(c.I, count)
		if err != nil {
			return err
		}
		copy(c.V[:count], src)
		vm.advanceIndex(count)
	default:
		return vm.illegal(op)
	}
	return nil
}

// waitingKey returns the lowest key that satisfies FX0A.
func (vm *VM) waitingKey(keys Keypad) (uint8, bool) {
	if vm.quirks.KeyWaitOnRelease {
		for key := range uint8(KeyCount) {
			if keys.Released(key) {
				return key, true
			}
		}
		return 0, false
	}

	for key, held := range keys.Snapshot() {
		if held {
			return uint8(key), true
		}
	}
	return 0, false
}

// registerCount returns how many registers FX55 and FX65 transfer.
func (vm *VM) registerCount(x uint8) int {
	if vm.quirks.ExclusiveRegisterRange {
		return int(x)
	}
	return int(x) + 1
}

func (vm *VM) advanceIndex(count int) {
	if vm.quirks.IncrementIndex {
		vm.CPU.I += uint16(count)
	}
}

func (vm *VM) resetFlagAfterLogic() {
	if vm.quirks.LogicResetsVF {
		vm.CPU.V[flagRegister] = 0
	}
}

func (vm *VM) skipIf(cond bool) {
	if cond {
		vm.CPU.PC += InstructionSize
	}
}

func (vm *VM) illegal(op Operation) error {
	return &IllegalOpcodeError{Word: op.Word, Address: vm.CPU.PC - InstructionSize}
}

func boolToFlag(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
