// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides mock audio sources for tests outside the
// audio package itself.
package audiotest

import (
	"io"
	"math"
)

// MockSource generates deterministic audio. It satisfies the
// audio.Source interface without importing it.
type MockSource struct {
	sampleRate int
	channels   int
	total      int // frames to generate
	generated  int
	waveform   func(frame, channel int) float32
}

// NewMockSource creates a source of total frames whose samples come
// from waveform.
func NewMockSource(sampleRate, channels, total int, waveform func(frame, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate: sampleRate,
		channels:   channels,
		total:      total,
		waveform:   waveform,
	}
}

// NewSineSource creates a source generating a sine wave on every
// channel.
func NewSineSource(sampleRate, channels, total int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, total, func(frame, channel int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewConstantSource creates a source holding a constant value.
func NewConstantSource(sampleRate, channels, total int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, total, func(frame, channel int) float32 {
		return value
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) Close() error    { return nil }

// Reset rewinds the source so it can be read again.
func (m *MockSource) Reset() {
	m.generated = 0
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.generated >= m.total {
		return 0, io.EOF
	}

	frames := len(dst) / m.channels
	if remaining := m.total - m.generated; frames > remaining {
		frames = remaining
	}

	for f := 0; f < frames; f++ {
		for c := 0; c < m.channels; c++ {
			dst[f*m.channels+c] = m.waveform(m.generated+f, c)
		}
	}

	m.generated += frames
	if m.generated >= m.total {
		return frames * m.channels, io.EOF
	}

	return frames * m.channels, nil
}
