package main

import (
	"fmt"
	"time"

	"github.com/retroenv/retrogolib/log"
	"meszarosd.hu/chip8vm/internal/chip8"
	"meszarosd.hu/chip8vm/internal/disasm"
)

// Speaker is the audio collaborator. Tone is called once per frame with
// whether the sound timer is running.
type Speaker interface {
	Tone(on bool)
}

type multiSpeaker []Speaker

func (m multiSpeaker) Tone(on bool) {
	for _, s := range m {
		s.Tone(on)
	}
}

// RunnerConfig contains the options of the driving loop.
type RunnerConfig struct {
	// CyclesPerFrame is the number of instructions executed per frame.
	CyclesPerFrame int
	// IgnoreFaults keeps the last frame on screen after a fault instead of
	// returning the error.
	IgnoreFaults bool
	// Trace logs every instruction at debug level.
	Trace bool
	// Speaker receives the sound state, may be nil.
	Speaker Speaker
	// Now returns the current time for the timer clock, defaults to time.Now.
	Now func() time.Time
}

// Runner is the driving loop. It owns the VM and interleaves instruction
// execution, timer ticks, sound and input once per frame.
type Runner struct {
	vm     *chip8.VM
	keys   *chip8.KeyState
	clock  *chip8.TimerClock
	logger *log.Logger
	cfg    RunnerConfig

	paused bool
	frames uint64
}

func NewRunner(vm *chip8.VM, logger *log.Logger, cfg RunnerConfig) *Runner {
	if cfg.CyclesPerFrame < 1 {
		cfg.CyclesPerFrame = 1
	}
	if cfg.Speaker == nil {
		cfg.Speaker = multiSpeaker{}
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return &Runner{
		vm:     vm,
		keys:   &chip8.KeyState{},
		clock:  chip8.NewTimerClock(cfg.Now(), chip8.TimerFrequency),
		logger: logger,
		cfg:    cfg,
	}
}

func (r *Runner) VM() *chip8.VM {
	return r.vm
}

// Keys returns the key state that the frontend updates before each frame.
func (r *Runner) Keys() *chip8.KeyState {
	return r.keys
}

func (r *Runner) Frames() uint64 {
	return r.frames
}

func (r *Runner) Paused() bool {
	return r.paused
}

func (r *Runner) TogglePause() {
	r.paused = !r.paused
	r.logger.Info("Pause toggled", log.String("state", r.stateName()))
}

// Reset restarts the loaded program.
func (r *Runner) Reset() {
	r.vm.Reset()
	r.clock.Reset(r.cfg.Now())
	r.cfg.Speaker.Tone(false)
	r.logger.Info("Program restarted")
}

// Frame runs one frame: up to CyclesPerFrame instructions, then a timer
// tick if one is due, then the sound update. A pending key wait ends the
// frame early and is polled again on the next frame.
func (r *Runner) Frame() error {
	r.frames++
	defer r.keys.Latch()

	if r.vm.Status() == chip8.Halted {
		r.cfg.Speaker.Tone(false)
		return nil
	}

	if !r.paused {
		for range r.cfg.CyclesPerFrame {
			status, err := r.step()
			if err != nil {
				return r.fault(err)
			}
			if status == chip8.AwaitingKey {
				break
			}
		}
	}

	ticks := r.clock.Ticks(r.cfg.Now())
	if !r.paused {
		for range ticks {
			r.vm.TickTimers()
		}
	}
	r.cfg.Speaker.Tone(r.vm.SoundActive() && !r.paused)
	return nil
}

// Step executes a single instruction while paused.
func (r *Runner) Step() error {
	if !r.paused || r.vm.Status() == chip8.Halted {
		return nil
	}
	if _, err := r.step(); err != nil {
		return r.fault(err)
	}
	r.logger.Info("Stepped", log.String("cpu", r.vm.CPU.String()))
	return nil
}

func (r *Runner) step() (chip8.Status, error) {
	if r.cfg.Trace {
		pc := r.vm.CPU.PC
		if op, err := r.vm.Next(); err == nil {
			text, ok := disasm.Instruction(op.Word)
			if !ok {
				text = op.Kind.String()
			}
			r.logger.Debug("exec",
				log.Hex("pc", pc),
				log.Hex("opcode", op.Word),
				log.String("instr", text))
		}
	}
	return r.vm.Step(r.keys)
}

func (r *Runner) fault(err error) error {
	r.cfg.Speaker.Tone(false)
	r.logger.Error("Program halted",
		log.Err(err),
		log.Hex("pc", r.vm.CPU.PC),
		log.Int("frame", int(r.frames)))

	if r.cfg.IgnoreFaults {
		return nil
	}
	return fmt.Errorf("executing program: %w", err)
}

func (r *Runner) stateName() string {
	if r.paused {
		return "paused"
	}
	return r.vm.Status().String()
}
