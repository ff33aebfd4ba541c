package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/retroenv/retrogolib/assert"
	"meszarosd.hu/chip8vm/internal/chip8"
)

func TestRenderFrame(t *testing.T) {
	var frame chip8.Frame
	frame[0][0] = true
	frame[1][0] = true
	frame[0][1] = true
	frame[1][2] = true

	out := renderFrame(frame)
	lines := strings.Split(out, "\r\n")
	// 16 text lines and the empty string after the final CR LF
	assert.Len(t, lines, chip8.DisplayHeight/2+1)
	assert.Equal(t, "", lines[len(lines)-1])
	assert.True(t, strings.HasPrefix(lines[0], "█▀▄ "))
	assert.Equal(t, chip8.DisplayWidth, len([]rune(lines[0])))
	assert.Equal(t, strings.Repeat(" ", chip8.DisplayWidth), lines[1])
}

func TestTerminalKeyHold(t *testing.T) {
	runner, _, _ := newTestRunner(t, RunnerConfig{CyclesPerFrame: 1},
		0x1200, // JP $200
	)
	var out bytes.Buffer
	frontend := newTerminalFrontend(runner, &out)

	assert.False(t, frontend.handleInput('W'))
	for range keyHoldFrames {
		assert.NoError(t, frontend.frame())
		assert.True(t, runner.Keys().Held(0x5))
	}

	assert.NoError(t, frontend.frame())
	assert.False(t, runner.Keys().Held(0x5))
}

func TestTerminalControlKeys(t *testing.T) {
	runner, _, _ := newTestRunner(t, RunnerConfig{CyclesPerFrame: 1},
		0x6001, // LD V0, $01
		0x1202, // JP $202
	)
	var out bytes.Buffer
	frontend := newTerminalFrontend(runner, &out)

	assert.NoError(t, frontend.frame())
	assert.Equal(t, uint8(1), runner.VM().CPU.V[0])

	assert.False(t, frontend.handleInput(keyCtrlR))
	assert.Equal(t, uint8(0), runner.VM().CPU.V[0])
	assert.Equal(t, uint16(chip8.ProgramStart), runner.VM().CPU.PC)

	assert.True(t, frontend.handleInput(keyEscape))
	assert.True(t, frontend.handleInput(keyCtrlC))
}

func TestTerminalRedrawsOnChange(t *testing.T) {
	runner, _, _ := newTestRunner(t, RunnerConfig{CyclesPerFrame: 1},
		0x00E0, // CLS
		0x1202, // JP $202
	)
	var out bytes.Buffer
	frontend := newTerminalFrontend(runner, &out)

	assert.NoError(t, frontend.frame())
	assert.True(t, strings.HasPrefix(out.String(), ansiHome))
	written := out.Len()

	assert.NoError(t, frontend.frame())
	assert.Equal(t, written, out.Len())
}

func TestReadInput(t *testing.T) {
	input := make(chan byte, 16)
	readInput(strings.NewReader("1q"), input, make(chan struct{}))

	var got []byte
	for b := range input {
		got = append(got, b)
	}
	assert.Equal(t, "1q", string(got))
}

func TestReadInputStopsWhenDone(t *testing.T) {
	input := make(chan byte)
	done := make(chan struct{})
	finished := make(chan struct{})
	go func() {
		readInput(strings.NewReader(strings.Repeat("x", 64)), input, done)
		close(finished)
	}()

	assert.Equal(t, byte('x'), <-input)
	// nobody receives anymore, the pending send has to give up
	close(done)

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("input reader still blocked after done was closed")
	}
	_, ok := <-input
	assert.False(t, ok)
}
