// SPDX-License-Identifier: EPL-2.0

package tonelab

import (
	"fmt"
	"io"

	"github.com/chrigorion/tonelab/chords"
	"github.com/chrigorion/tonelab/envelope"
	"github.com/chrigorion/tonelab/formats/wav"
	"github.com/chrigorion/tonelab/synth"
	"github.com/chrigorion/tonelab/utils"
)

// edgeFade is the ramp applied to both ends of a rendered clip, as a
// fraction of the sample rate. 10ms is enough to remove the onset and
// cutoff clicks of a hard-truncated sine.
const edgeFade = 0.01

// RenderChord synthesizes a chord code into a mono float32 clip of
// the given duration, with a short fade at both ends. amp is the
// amplitude per tone; the tones are summed without normalization, so
// for a triad keep amp below 1/3 to stay clear of clipping.
func RenderChord(code string, seconds float64, sampleRate int, amp float64) ([]float32, error) {
	freqs, ok := chords.Lookup(code)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownChord, code)
	}

	total := int(seconds * float64(sampleRate))
	clip := make([]float32, total)
	synth.NewVoice(freqs).Fill(clip, amp, sampleRate)

	fade := int(edgeFade * float64(sampleRate))
	if fade*2 > total {
		fade = total / 2
	}
	if err := envelope.Fade(clip, envelope.ModeInOut, fade); err != nil {
		return nil, fmt.Errorf("fading clip: %w", err)
	}

	return clip, nil
}

// RenderProgression renders a sequence of chord codes and splices
// them with short crossfades, one clip per code.
func RenderProgression(codes []string, secondsEach float64, sampleRate int, amp float64) ([]float32, error) {
	var out []float32

	overlap := int(edgeFade * float64(sampleRate))
	for _, code := range codes {
		clip, err := RenderChord(code, secondsEach, sampleRate, amp)
		if err != nil {
			return nil, err
		}

		if out == nil {
			out = clip
			continue
		}

		out, err = envelope.CrossFade(out, clip, overlap)
		if err != nil {
			return nil, fmt.Errorf("splicing %q: %w", code, err)
		}
	}

	return out, nil
}

// WriteChordWAV renders a chord and writes it to w as a mono 16-bit
// PCM WAV file.
func WriteChordWAV(w io.Writer, code string, seconds float64, sampleRate int, amp float64) error {
	clip, err := RenderChord(code, seconds, sampleRate, amp)
	if err != nil {
		return err
	}

	pcm16 := utils.Float32ToInt16Slice(nil, clip)
	if err := wav.WriteWAV16(w, sampleRate, 1, pcm16); err != nil {
		return fmt.Errorf("writing wav: %w", err)
	}

	return nil
}
