package main

import (
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const (
	wavSampleRate = 44100
	wavBitDepth   = 16
	wavAmplitude  = 8000
	wavPeriod     = wavSampleRate / frequency

	// samples recorded per Tone call, one call per 60Hz frame
	wavSamplesPerFrame = wavSampleRate / 60
)

// wavRecorder is a Speaker that records a square wave tone to a WAV file.
// Audio is buffered in memory in its entirety and written to disk on Close.
type wavRecorder struct {
	filename string
	samples  []int
	phase    int
}

func newWavRecorder(filename string) *wavRecorder {
	return &wavRecorder{
		filename: filename,
	}
}

func (w *wavRecorder) Tone(on bool) {
	for range wavSamplesPerFrame {
		v := 0
		if on {
			v = wavAmplitude
			if w.phase >= wavPeriod/2 {
				v = -wavAmplitude
			}
		}
		w.samples = append(w.samples, v)
		w.phase = (w.phase + 1) % wavPeriod
	}
}

// Close encodes the recorded samples as a mono 16-bit PCM file.
func (w *wavRecorder) Close() (rerr error) {
	f, err := os.Create(w.filename)
	if err != nil {
		return fmt.Errorf("creating file '%s': %w", w.filename, err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = fmt.Errorf("closing file '%s': %w", w.filename, err)
		}
	}()

	enc := wav.NewEncoder(f, wavSampleRate, wavBitDepth, 1, 1)
	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  wavSampleRate,
		},
		Data:           w.samples,
		SourceBitDepth: wavBitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("encoding wav: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encoding wav: %w", err)
	}
	return nil
}
