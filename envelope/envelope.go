// SPDX-License-Identifier: EPL-2.0

package envelope

import (
	"fmt"

	"github.com/chrigorion/tonelab/utils"
)

// Fade modes. Mode selection is by string because that is how the
// calling code (and its human users) name them; anything else fails
// fast with ErrUnknownFadeMode.
const (
	ModeIn    = "in"
	ModeOut   = "out"
	ModeInOut = "in-out"
)

// Fade applies a linear amplitude ramp of the given length (in
// samples) in place. ModeIn ramps up from silence at the start,
// ModeOut ramps down to silence at the end, ModeInOut does both.
// A length longer than the clip (or than half of it for ModeInOut)
// is rejected.
func Fade(samples []float32, mode string, length int) error {
	if length < 0 {
		return ErrFadeTooLong
	}

	switch mode {
	case ModeIn:
		if length > len(samples) {
			return ErrFadeTooLong
		}
		fadeIn(samples, length)
	case ModeOut:
		if length > len(samples) {
			return ErrFadeTooLong
		}
		fadeOut(samples, length)
	case ModeInOut:
		if length*2 > len(samples) {
			return ErrFadeTooLong
		}
		fadeIn(samples, length)
		fadeOut(samples, length)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFadeMode, mode)
	}

	return nil
}

func fadeIn(samples []float32, length int) {
	for i := 0; i < length; i++ {
		samples[i] *= float32(i) / float32(length)
	}
}

func fadeOut(samples []float32, length int) {
	n := len(samples)
	for i := 0; i < length; i++ {
		samples[n-1-i] *= float32(i) / float32(length)
	}
}

// CrossFade joins two clips with a linear crossfade of overlap
// samples: the tail of a fades out while the head of b fades in. The
// result has length len(a)+len(b)-overlap. The overlap must fit in
// both clips.
func CrossFade(a, b []float32, overlap int) ([]float32, error) {
	if overlap < 0 || overlap > len(a) || overlap > len(b) {
		return nil, ErrOverlapTooLong
	}

	out := make([]float32, len(a)+len(b)-overlap)
	copy(out, a[:len(a)-overlap])

	join := len(a) - overlap
	for i := 0; i < overlap; i++ {
		x := float32(i) / float32(overlap)
		out[join+i] = utils.Lerp(a[join+i], b[i], x)
	}

	copy(out[len(a):], b[overlap:])

	return out, nil
}
