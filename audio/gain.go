// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// Gain scales every sample of a source by a constant factor. Summed
// tones are not normalized anywhere in this module, so a Gain stage is
// how callers keep a multi-tone mix out of clipping range: for k
// simultaneous tones at full scale, a gain of 1/k is a safe choice.
type Gain struct {
	src    Source
	factor float32
}

// NewGain wraps src with a constant amplitude factor. The factor must
// be non-negative; values above 1 are allowed and may clip downstream.
func NewGain(src Source, factor float64) (*Gain, error) {
	if factor < 0 {
		return nil, ErrGainOutOfRange
	}

	return &Gain{src: src, factor: float32(factor)}, nil
}

func (g *Gain) SampleRate() int { return g.src.SampleRate() }
func (g *Gain) Channels() int   { return g.src.Channels() }

func (g *Gain) Close() error {
	if err := g.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (g *Gain) ReadSamples(dst []float32) (int, error) {
	n, err := g.src.ReadSamples(dst)

	for i := 0; i < n; i++ {
		dst[i] *= g.factor
	}

	return n, err
}
