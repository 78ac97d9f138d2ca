// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/chrigorion/tonelab/utils"
)

// Resampler converts src to a new sample rate using Catmull-Rom cubic
// interpolation over a sliding four-frame window. It works on
// interleaved samples and preserves the channel count. No anti-alias
// filtering is applied; for the teaching material this module serves,
// source content is band-limited well below the Nyquist rate.
type Resampler struct {
	src      Source
	outRate  int
	step     float64 // source frames consumed per output frame
	channels int

	// win[0]..win[3] hold frames t-1, t0, t+1, t+2. Interpolation
	// happens between win[1] and win[2] at fractional position frac.
	win    [4][]float32
	filled int // number of valid frames currently in win
	frac   float64

	frameBuf []float32
	primed   bool
	eof      bool
}

func NewResampler(src Source, outRate int) *Resampler {
	r := &Resampler{
		src:      src,
		outRate:  outRate,
		step:     float64(src.SampleRate()) / float64(outRate),
		channels: src.Channels(),
		frameBuf: make([]float32, src.Channels()),
	}

	for i := range r.win {
		r.win[i] = make([]float32, r.channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.outRate }
func (r *Resampler) Channels() int   { return r.channels }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// readFrame reads exactly one source frame into dst. Returns io.EOF
// once the source is exhausted.
func (r *Resampler) readFrame(dst []float32) error {
	if r.eof {
		return io.EOF
	}

	n, err := r.src.ReadSamples(dst[:r.channels])
	if err == io.EOF {
		r.eof = true
	} else if err != nil {
		return fmt.Errorf("%w", err)
	}

	if n < r.channels {
		return io.EOF
	}
	return nil
}

// advance shifts the window one frame left and pulls the next source
// frame into win[3]. When the source runs dry the last frame is held,
// so the tail of the signal still interpolates cleanly.
func (r *Resampler) advance() error {
	if r.filled <= 1 {
		return io.EOF
	}

	r.win[0], r.win[1], r.win[2], r.win[3] = r.win[1], r.win[2], r.win[3], r.win[0]

	if err := r.readFrame(r.win[3]); err != nil {
		if err == io.EOF {
			copy(r.win[3], r.win[2])
			r.filled--
			return nil
		}
		return err
	}

	return nil
}

// prime fills the initial window, duplicating the first frame into the
// t-1 slot and the last available frame forward on short input.
func (r *Resampler) prime() error {
	if err := r.readFrame(r.win[1]); err != nil {
		return err
	}
	copy(r.win[0], r.win[1])

	r.filled = 4
	for i := 2; i < 4; i++ {
		if err := r.readFrame(r.win[i]); err != nil {
			if err != io.EOF {
				return err
			}
			copy(r.win[i], r.win[i-1])
			r.filled--
		}
	}

	r.primed = true
	return nil
}

// ReadSamples produces interpolated samples at the output rate. dst
// length must be a multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	frames := len(dst) / r.channels
	written := 0

	for written < frames {
		for r.frac >= 1.0 {
			r.frac -= 1.0
			if err := r.advance(); err != nil {
				if err == io.EOF {
					if written == 0 {
						return 0, io.EOF
					}
					return written * r.channels, io.EOF
				}
				return written * r.channels, err
			}
		}

		x := float32(r.frac)
		base := written * r.channels
		for c := 0; c < r.channels; c++ {
			dst[base+c] = utils.CubicInterpolate(
				r.win[0][c], r.win[1][c], r.win[2][c], r.win[3][c], x)
		}

		written++
		r.frac += r.step
	}

	return written * r.channels, nil
}
