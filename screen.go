package main

import (
	"context"
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"meszarosd.hu/chip8vm/internal/chip8"
)

const (
	screenW = chip8.DisplayWidth
	screenH = chip8.DisplayHeight
)

// COSMAC VIP hex keypad on the left side of a QWERTY keyboard:
//
//	1 2 3 C      1 2 3 4
//	4 5 6 D  ->  Q W E R
//	7 8 9 E      A S D F
//	A 0 B F      Z X C V
var windowKeys = [chip8.KeyCount]ebiten.Key{
	0x0: ebiten.KeyX,
	0x1: ebiten.Key1,
	0x2: ebiten.Key2,
	0x3: ebiten.Key3,
	0x4: ebiten.KeyQ,
	0x5: ebiten.KeyW,
	0x6: ebiten.KeyE,
	0x7: ebiten.KeyA,
	0x8: ebiten.KeyS,
	0x9: ebiten.KeyD,
	0xA: ebiten.KeyZ,
	0xB: ebiten.KeyC,
	0xC: ebiten.Key4,
	0xD: ebiten.KeyR,
	0xE: ebiten.KeyF,
	0xF: ebiten.KeyV,
}

var (
	pixelOn  = [4]byte{0xFF, 0xFF, 0xFF, 0xFF}
	pixelOff = [4]byte{0x00, 0x00, 0x00, 0xFF}
)

// Screen runs a Runner inside an ebiten window. Escape quits, F5 restarts
// the program, P pauses and N executes a single instruction while paused.
type Screen struct {
	ctx         context.Context
	runner      *Runner
	scale       int
	frameBuffer []byte
	img         *ebiten.Image
}

func NewScreen(ctx context.Context, runner *Runner, scale int) *Screen {
	return &Screen{
		ctx:         ctx,
		runner:      runner,
		scale:       scale,
		frameBuffer: make([]byte, screenW*screenH*4),
		img:         ebiten.NewImage(screenW, screenH),
	}
}

func (s *Screen) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) || s.ctx.Err() != nil {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		s.runner.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		s.runner.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		if err := s.runner.Step(); err != nil {
			return err
		}
	}

	keys := s.runner.Keys()
	for code, key := range windowKeys {
		keys.Set(uint8(code), ebiten.IsKeyPressed(key))
	}

	return s.runner.Frame()
}

func (s *Screen) Draw(screen *ebiten.Image) {
	display := s.runner.VM().Display
	if display.Dirty() {
		fillFrameBuffer(s.frameBuffer, display.Frame())
		s.img.WritePixels(s.frameBuffer)
		display.ClearDirty()
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(s.scale), float64(s.scale))
	screen.DrawImage(s.img, op)
}

func (s *Screen) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenW * s.scale, screenH * s.scale
}

// fillFrameBuffer converts a frame to RGBA pixels.
func fillFrameBuffer(buf []byte, frame chip8.Frame) {
	for y := range screenH {
		for x := range screenW {
			idx := (y*screenW + x) * 4
			if frame[y][x] {
				copy(buf[idx:idx+4], pixelOn[:])
			} else {
				copy(buf[idx:idx+4], pixelOff[:])
			}
		}
	}
}

// RunDisplay opens the window and blocks until it is closed or the program
// faults.
func RunDisplay(ctx context.Context, runner *Runner, title string, scale int) error {
	ebiten.SetWindowSize(screenW*scale, screenH*scale)
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(chip8.TimerFrequency)

	err := ebiten.RunGame(NewScreen(ctx, runner, scale))
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
