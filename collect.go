// SPDX-License-Identifier: EPL-2.0

package tonelab

import (
	"fmt"
	"io"

	"github.com/chrigorion/tonelab/audio"
	"github.com/chrigorion/tonelab/utils"
)

// ToMonoPCM16 runs a source through the resample→mono pipeline and
// collects the whole stream as 16-bit PCM at targetRate. bufferSize
// sets the read granularity; 4096 is a reasonable default.
//
// The result is ready for wav.WriteWAV16:
//
//	src, _ := tonelab.DecodeFile("input.mp3")
//	pcm16, _ := tonelab.ToMonoPCM16(src, 8000, 4096)
//	wav.WriteWAV16(out, 8000, 1, pcm16)
func ToMonoPCM16(src audio.Source, targetRate, bufferSize int) ([]int16, error) {
	mono := audio.NewMonoMixer(audio.NewResampler(src, targetRate))

	pcm16 := make([]int16, 0, targetRate)
	buf := make([]float32, bufferSize)

	for {
		n, err := mono.ReadSamples(buf)
		if n > 0 {
			pcm16 = utils.Float32ToInt16Slice(pcm16, buf[:n])
		}

		if err == io.EOF {
			return pcm16, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}
}
