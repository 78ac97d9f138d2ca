// SPDX-License-Identifier: EPL-2.0

package synth

import "math"

// Voice is the synthesis state: the set of frequencies currently
// sounding and a running phase counter of samples emitted since the
// stream started. The counter is the sole phase reference — it only
// ever advances by the exact number of samples produced, so the
// waveform stays continuous across buffers no matter how the buffer
// requests are scheduled.
//
// A Voice is not safe for concurrent use; it belongs to whichever
// goroutine fills the output buffers.
type Voice struct {
	freqs []float64
	phase uint64
}

// NewVoice creates a voice sounding the given frequencies (Hz). The
// slice is taken over by the voice; callers must not modify it after.
func NewVoice(freqs []float64) *Voice {
	return &Voice{freqs: freqs}
}

// SetFrequencies replaces the whole frequency set between buffers.
// The phase counter is untouched, so sustained frequencies shared by
// the old and new set stay phase-continuous.
func (v *Voice) SetFrequencies(freqs []float64) {
	v.freqs = freqs
}

// Frequencies returns the active frequency set.
func (v *Voice) Frequencies() []float64 { return v.freqs }

// Phase returns the number of samples emitted since the last Reset.
func (v *Voice) Phase() uint64 { return v.phase }

// Reset rewinds the phase counter to zero. Call on stream start only;
// resetting mid-stream produces an audible discontinuity.
func (v *Voice) Reset() {
	v.phase = 0
}

// Fill writes len(dst) mono samples: the sum of sine waves at each
// active frequency, scaled by amp. Sample i is evaluated at time
// (phase+i)/sampleRate. The phase counter then advances by exactly
// len(dst). The sum is not normalized; with k tones at amplitude a
// the output peaks at k*a, and amp must be pre-scaled accordingly.
func (v *Voice) Fill(dst []float32, amp float64, sampleRate int) {
	if len(v.freqs) == 0 {
		for i := range dst {
			dst[i] = 0
		}
		v.phase += uint64(len(dst))
		return
	}

	rate := float64(sampleRate)
	for i := range dst {
		t := float64(v.phase+uint64(i)) / rate
		sum := 0.0
		for _, f := range v.freqs {
			sum += math.Sin(2 * math.Pi * f * t)
		}
		dst[i] = float32(amp * sum)
	}

	v.phase += uint64(len(dst))
}
