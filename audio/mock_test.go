package audio

import (
	"io"
	"math"
)

// mockSource generates deterministic audio for tests.
type mockSource struct {
	sampleRate int
	channels   int
	total      int // frames to generate
	generated  int // frames generated so far
	waveform   func(frame, channel int) float32
}

func newMockSource(sampleRate, channels, total int, waveform func(frame, channel int) float32) *mockSource {
	return &mockSource{
		sampleRate: sampleRate,
		channels:   channels,
		total:      total,
		waveform:   waveform,
	}
}

func newSilentSource(sampleRate, channels, total int) *mockSource {
	return newMockSource(sampleRate, channels, total, func(frame, channel int) float32 {
		return 0
	})
}

func newSineSource(sampleRate, channels, total int, frequency float64) *mockSource {
	return newMockSource(sampleRate, channels, total, func(frame, channel int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

func newConstantSource(sampleRate, channels, total int, value float32) *mockSource {
	return newMockSource(sampleRate, channels, total, func(frame, channel int) float32 {
		return value
	})
}

func (m *mockSource) SampleRate() int { return m.sampleRate }
func (m *mockSource) Channels() int   { return m.channels }
func (m *mockSource) Close() error    { return nil }

func (m *mockSource) ReadSamples(dst []float32) (int, error) {
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
