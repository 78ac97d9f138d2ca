//go:build portaudio

// SPDX-License-Identifier: EPL-2.0

package stream

import (
	"fmt"
	"sync"

	"github.com/gordonklaus/portaudio"
)

// framesPerBuffer is the portaudio callback period. At 44.1kHz this
// is roughly 12ms per buffer.
const framesPerBuffer = 512

// paDriver plays through portaudio. Unlike the oto backend it can
// also enumerate host devices and reports underflow flags from the
// callback.
type paDriver struct {
	sampleRate int
	channels   int

	mu     sync.Mutex
	stream *portaudio.Stream
	filler Filler
}

// NewDriver initializes portaudio and prepares the default output at
// the given rate and channel count.
func NewDriver(sampleRate, channels int) (Driver, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("initializing portaudio: %w", err)
	}

	return &paDriver{
		sampleRate: sampleRate,
		channels:   channels,
	}, nil
}

func (d *paDriver) SampleRate() int { return d.sampleRate }
func (d *paDriver) Channels() int   { return d.channels }

func (d *paDriver) callback(out []float32, _ portaudio.StreamCallbackTimeInfo, flags portaudio.StreamCallbackFlags) {
	d.mu.Lock()
	filler := d.filler
	d.mu.Unlock()

	if filler == nil {
		for i := range out {
			out[i] = 0
		}
		return
	}

	if flags&portaudio.OutputUnderflow != 0 {
		filler.ReportStatus("output underflow")
	}

	filler.Fill(out)
}

func (d *paDriver) Start(f Filler) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.filler = f

	stream, err := portaudio.OpenDefaultStream(
		0, d.channels, float64(d.sampleRate), framesPerBuffer, d.callback)
	if err != nil {
		d.filler = nil
		return fmt.Errorf("opening portaudio stream: %w", err)
	}

	if err := stream.Start(); err != nil {
		stream.Close()
		d.filler = nil
		return fmt.Errorf("starting portaudio stream: %w", err)
	}

	d.stream = stream
	return nil
}

func (d *paDriver) Stop() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stream == nil {
		return ErrDriverNotStarted
	}

	stopErr := d.stream.Stop()
	closeErr := d.stream.Close()
	d.stream = nil
	d.filler = nil

	if stopErr != nil {
		return fmt.Errorf("stopping portaudio stream: %w", stopErr)
	}
	if closeErr != nil {
		return fmt.Errorf("closing portaudio stream: %w", closeErr)
	}
	return nil
}

func (d *paDriver) Close() error {
	if err := d.Stop(); err != nil && err != ErrDriverNotStarted {
		return err
	}

	if err := portaudio.Terminate(); err != nil {
		return fmt.Errorf("terminating portaudio: %w", err)
	}
	return nil
}
