//go:build !portaudio

// SPDX-License-Identifier: EPL-2.0

package stream

import (
	"encoding/binary"
	"fmt"
	"math"
	"sync"

	"github.com/ebitengine/oto/v3"
)

// otoDriver plays through ebitengine/oto. oto pulls bytes via an
// io.Reader on its own goroutine; Read converts the pull into Fill
// calls and encodes the float32 samples little-endian.
type otoDriver struct {
	ctx        *oto.Context
	sampleRate int
	channels   int

	mu     sync.Mutex
	player *oto.Player
	filler Filler

	buf []float32
}

// NewDriver opens the default audio output at the given rate and
// channel count.
func NewDriver(sampleRate, channels int) (Driver, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: channels,
		Format:       oto.FormatFloat32LE,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("opening oto context: %w", err)
	}
	<-ready

	return &otoDriver{
		ctx:        ctx,
		sampleRate: sampleRate,
		channels:   channels,
		buf:        make([]float32, 4096),
	}, nil
}

func (d *otoDriver) SampleRate() int { return d.sampleRate }
func (d *otoDriver) Channels() int   { return d.channels }

func (d *otoDriver) Start(f Filler) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.filler = f
	d.player = d.ctx.NewPlayer(d)
	d.player.Play()

	return nil
}

func (d *otoDriver) Stop() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.player == nil {
		return ErrDriverNotStarted
	}

	err := d.player.Close()
	d.player = nil
	d.filler = nil

	if err != nil {
		return fmt.Errorf("closing oto player: %w", err)
	}
	return nil
}

func (d *otoDriver) Close() error {
	d.mu.Lock()
	player := d.player
	d.player = nil
	d.filler = nil
	d.mu.Unlock()

	if player != nil {
		if err := player.Close(); err != nil {
			return fmt.Errorf("closing oto player: %w", err)
		}
	}
	return nil
}

// Read is oto's pull callback.
func (d *otoDriver) Read(p []byte) (int, error) {
	d.mu.Lock()
	filler := d.filler
	d.mu.Unlock()

	samples := len(p) / 4
	if samples == 0 {
		return 0, nil
	}

	if len(d.buf) < samples {
		d.buf = make([]float32, samples)
	}
	buf := d.buf[:samples]

	if filler == nil {
		for i := range buf {
			buf[i] = 0
		}
	} else {
		filler.Fill(buf)
	}

	for i, s := range buf {
		binary.LittleEndian.PutUint32(p[i*4:], math.Float32bits(s))
	}

	return samples * 4, nil
}
