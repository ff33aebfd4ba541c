package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pkg/term"
	"meszarosd.hu/chip8vm/internal/chip8"
)

const (
	keyCtrlC  = 0x03
	keyCtrlR  = 0x12
	keyEscape = 0x1b

	// terminals deliver no key release events, a key press is held for
	// this many frames unless repeated
	keyHoldFrames = 6

	ansiHome       = "\x1b[H"
	ansiClear      = "\x1b[2J"
	ansiHideCursor = "\x1b[?25l"
	ansiShowCursor = "\x1b[?25h"
)

// same layout as the window frontend
var terminalKeys = map[byte]uint8{
	'1': 0x1, '2': 0x2, '3': 0x3, '4': 0xC,
	'q': 0x4, 'w': 0x5, 'e': 0x6, 'r': 0xD,
	'a': 0x7, 's': 0x8, 'd': 0x9, 'f': 0xE,
	'z': 0xA, 'x': 0x0, 'c': 0xB, 'v': 0xF,
}

// terminalFrontend renders the display with half block characters, two
// display rows per text line.
type terminalFrontend struct {
	runner *Runner
	out    io.Writer
	hold   [chip8.KeyCount]int
}

func newTerminalFrontend(runner *Runner, out io.Writer) *terminalFrontend {
	return &terminalFrontend{
		runner: runner,
		out:    out,
	}
}

// handleInput processes a byte read from the terminal and returns whether
// the user asked to quit.
func (f *terminalFrontend) handleInput(b byte) bool {
	switch b {
	case keyCtrlC, keyEscape:
		return true
	case keyCtrlR:
		f.runner.Reset()
		return false
	}

	if b >= 'A' && b <= 'Z' {
		b += 'a' - 'A'
	}
	if key, ok := terminalKeys[b]; ok {
		f.hold[key] = keyHoldFrames
	}
	return false
}

// frame applies the held keys, runs one frame and redraws the display if
// it changed.
func (f *terminalFrontend) frame() error {
	keys := f.runner.Keys()
	for key := range f.hold {
		keys.Set(uint8(key), f.hold[key] > 0)
		if f.hold[key] > 0 {
			f.hold[key]--
		}
	}

	if err := f.runner.Frame(); err != nil {
		return err
	}

	display := f.runner.VM().Display
	if !display.Dirty() {
		return nil
	}
	display.ClearDirty()
	_, err := io.WriteString(f.out, ansiHome+renderFrame(display.Frame()))
	return err
}

// renderFrame returns the frame as lines of half block characters
// separated by CR LF, as the terminal is in raw mode.
func renderFrame(frame chip8.Frame) string {
	var sb strings.Builder
	for y := 0; y < chip8.DisplayHeight; y += 2 {
		for x := range chip8.DisplayWidth {
			top := frame[y][x]
			bottom := y+1 < chip8.DisplayHeight && frame[y+1][x]
			switch {
			case top && bottom:
				sb.WriteRune('█')
			case top:
				sb.WriteRune('▀')
			case bottom:
				sb.WriteRune('▄')
			default:
				sb.WriteByte(' ')
			}
		}
		sb.WriteString("\r\n")
	}
	return sb.String()
}

// readInput forwards the bytes read from r to input until reading fails or
// done is closed. The input channel is closed on return.
func readInput(r io.Reader, input chan<- byte, done <-chan struct{}) {
	defer close(input)
	buf := make([]byte, 16)
	for {
		n, err := r.Read(buf)
		for _, b := range buf[:n] {
			select {
			case input <- b:
			case <-done:
				return
			}
		}
		if err != nil {
			return
		}
	}
}

// RunTerminal runs the program in the controlling terminal until the user
// quits with Escape or Ctrl-C, the context is cancelled or the program
// faults.
func RunTerminal(ctx context.Context, runner *Runner) (rerr error) {
	t, err := term.Open("/dev/tty", term.RawMode)
	if err != nil {
		return fmt.Errorf("opening terminal: %w", err)
	}
	input := make(chan byte, 16)
	done := make(chan struct{})
	defer func() {
		close(done)
		_, _ = io.WriteString(t, ansiShowCursor)
		if err := t.Restore(); err != nil && rerr == nil {
			rerr = fmt.Errorf("restoring terminal: %w", err)
		}
		_ = t.Close()
	}()

	if _, err := io.WriteString(t, ansiClear+ansiHideCursor); err != nil {
		return fmt.Errorf("writing to terminal: %w", err)
	}

	go readInput(t, input, done)

	frontend := newTerminalFrontend(runner, t)
	ticker := time.NewTicker(time.Second / chip8.TimerFrequency)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case b, ok := <-input:
			if !ok || frontend.handleInput(b) {
				return nil
			}

		case <-ticker.C:
			if err := frontend.frame(); err != nil {
				return err
			}
		}
	}
}
