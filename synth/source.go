// SPDX-License-Identifier: EPL-2.0

package synth

import "io"

// VoiceSource adapts a Voice to the audio.Source interface, producing
// a finite mono clip. It lets synthesized tones run through the same
// pipeline stages (resampling, gain, WAV export) as decoded files.
type VoiceSource struct {
	voice      *Voice
	amp        float64
	sampleRate int
	remaining  int
}

// NewVoiceSource wraps voice as a source of totalSamples mono samples
// at the given rate and amplitude.
func NewVoiceSource(voice *Voice, amp float64, sampleRate, totalSamples int) *VoiceSource {
	return &VoiceSource{
		voice:      voice,
		amp:        amp,
		sampleRate: sampleRate,
		remaining:  totalSamples,
	}
}

func (s *VoiceSource) SampleRate() int { return s.sampleRate }
func (s *VoiceSource) Channels() int   { return 1 }
func (s *VoiceSource) Close() error    { return nil }

func (s *VoiceSource) ReadSamples(dst []float32) (int, error) {
	if s.remaining <= 0 {
		return 0, io.EOF
	}

	n := len(dst)
	if n > s.remaining {
		n = s.remaining
	}

	s.voice.Fill(dst[:n], s.amp, s.sampleRate)
	s.remaining -= n

	if s.remaining == 0 {
		return n, io.EOF
	}
	return n, nil
}
