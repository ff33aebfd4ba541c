package main

import (
	"encoding/binary"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const (
	sampleRate = 48000
	frequency  = 440
	volume     = 0.3
)

// toneStream is an endless sine wave as interleaved stereo float32 samples,
// the format NewPlayerF32 expects.
type toneStream struct {
	sample int
}

func (s *toneStream) Read(buf []byte) (int, error) {
	const (
		frameSize = 8 // two channels of 4 bytes
		period    = sampleRate / frequency
	)

	frames := len(buf) / frameSize
	for i := range frames {
		phase := float64(s.sample) / period
		bits := math.Float32bits(float32(volume * math.Sin(2*math.Pi*phase)))
		binary.LittleEndian.PutUint32(buf[i*frameSize:], bits)
		binary.LittleEndian.PutUint32(buf[i*frameSize+4:], bits)
		s.sample = (s.sample + 1) % period
	}
	return frames * frameSize, nil
}

// beeper plays the tone through the ebiten audio device.
type beeper struct {
	player *audio.Player
}

func newBeeper() (*beeper, error) {
	ctx := audio.NewContext(sampleRate)
	player, err := ctx.NewPlayerF32(&toneStream{})
	if err != nil {
		return nil, err
	}
	return &beeper{player: player}, nil
}

func (b *beeper) Tone(on bool) {
	switch {
	case on && !b.player.IsPlaying():
		b.player.Play()
	case !on && b.player.IsPlaying():
		b.player.Pause()
	}
}
