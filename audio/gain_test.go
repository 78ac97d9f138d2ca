// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"math"
	"testing"
)

func TestGain_Scaling(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		factor float64
		input  float32
		want   float32
	}{
		{name: "unity", factor: 1.0, input: 0.5, want: 0.5},
		{name: "half", factor: 0.5, input: 0.5, want: 0.25},
		{name: "mute", factor: 0, input: 0.9, want: 0},
		{name: "boost", factor: 2.0, input: 0.25, want: 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := newConstantSource(8000, 1, 10, tt.input)
			gain, err := NewGain(src, tt.factor)
			if err != nil {
				t.Fatalf("NewGain() error = %v", err)
			}

			samples := readAll(t, gain, 16)
			if len(samples) != 10 {
				t.Fatalf("got %d samples, want 10", len(samples))
			}

			for i, s := range samples {
				if math.Abs(float64(s-tt.want)) > 1e-6 {
					t.Fatalf("samples[%d] = %v, want %v", i, s, tt.want)
				}
			}
		})
	}
}

func TestGain_NegativeFactor(t *testing.T) {
	t.Parallel()

	src := newSilentSource(8000, 1, 10)
	_, err := NewGain(src, -0.1)
	if err != ErrGainOutOfRange {
		t.Errorf("NewGain(-0.1) error = %v, want ErrGainOutOfRange", err)
	}
}

func TestGain_Metadata(t *testing.T) {
	t.Parallel()

	src := newSilentSource(22050, 2, 10)
	gain, err := NewGain(src, 0.5)
	if err != nil {
		t.Fatalf("NewGain() error = %v", err)
	}

	if gain.SampleRate() != 22050 {
		t.Errorf("Gain.SampleRate() = %d, want 22050", gain.SampleRate())
	}

	if gain.Channels() != 2 {
		t.Errorf("Gain.Channels() = %d, want 2", gain.Channels())
	}
}
