package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/retroenv/retrogolib/assert"
)

func TestWavRecorder(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "tone.wav")
	rec := newWavRecorder(filename)

	for _, on := range []bool{true, true, true, false, false} {
		rec.Tone(on)
	}
	assert.NoError(t, rec.Close())

	f, err := os.Open(filename)
	assert.NoError(t, err)
	defer func() {
		_ = f.Close()
	}()

	dec := wav.NewDecoder(f)
	assert.True(t, dec.IsValidFile())

	buf, err := dec.FullPCMBuffer()
	assert.NoError(t, err)
	assert.Equal(t, uint32(wavSampleRate), dec.SampleRate)
	assert.Equal(t, uint16(1), dec.NumChans)
	assert.Equal(t, uint16(wavBitDepth), dec.BitDepth)
	assert.Len(t, buf.Data, 5*wavSamplesPerFrame)

	assert.Equal(t, wavAmplitude, buf.Data[0])
	assert.Equal(t, -wavAmplitude, buf.Data[wavPeriod/2])
	assert.Equal(t, wavAmplitude, buf.Data[wavPeriod])
	for _, v := range buf.Data[3*wavSamplesPerFrame:] {
		assert.Equal(t, 0, v)
	}
}

func TestWavRecorderCreateError(t *testing.T) {
	rec := newWavRecorder(filepath.Join(t.TempDir(), "missing", "tone.wav"))
	rec.Tone(true)
	assert.ErrorContains(t, rec.Close(), "creating file")
}
