// SPDX-License-Identifier: EPL-2.0

package stream

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/chrigorion/tonelab/chords"
	"github.com/chrigorion/tonelab/synth"
)

// Config carries the optional knobs of a Streamer.
type Config struct {
	// Amplitude per tone. Three simultaneous tones at 0.2 peak at
	// 0.6; the output is never normalized, so keep Amplitude times
	// the largest chord size below 1. Defaults to 0.2.
	Amplitude float64
	// QueueDepth bounds the pending chord-code queue. Defaults to
	// synth.DefaultQueueDepth.
	QueueDepth int
	// Lookup resolves chord codes to frequency sets. Defaults to
	// chords.Lookup. Codes the lookup rejects are ignored.
	Lookup func(code string) ([]float64, bool)
	// Logger receives driver status reports. Defaults to
	// slog.Default().
	Logger *slog.Logger
}

// Streamer glues a synth.Voice to a Driver. The driver pulls buffers
// via Fill; controller goroutines push chord changes via Post. Per
// stream it moves between exactly two states, idle and active: Start
// resets the phase counter and begins playback, Stop (or a fatal
// driver error) returns it to idle and discards pending chord codes.
type Streamer struct {
	drv    Driver
	voice  *synth.Voice
	queue  *synth.ChordQueue
	amp    float64
	lookup func(string) ([]float64, bool)
	logger *slog.Logger

	// active is read on the driver's fill path, so it is atomic
	// rather than under mu; mu serializes control operations only.
	active  atomic.Bool
	mu      sync.Mutex
	lastErr error

	mono []float32 // scratch for multi-channel interleave
}

// New creates a Streamer on top of drv. The voice starts silent until
// the first chord code arrives.
func New(drv Driver, cfg Config) *Streamer {
	if cfg.Amplitude == 0 {
		cfg.Amplitude = 0.2
	}
	if cfg.Lookup == nil {
		cfg.Lookup = chords.Lookup
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return &Streamer{
		drv:    drv,
		voice:  synth.NewVoice(nil),
		queue:  synth.NewChordQueue(cfg.QueueDepth),
		amp:    cfg.Amplitude,
		lookup: cfg.Lookup,
		logger: cfg.Logger,
	}
}

// Start transitions idle → active: the phase counter rewinds to zero
// and the driver begins pulling buffers.
func (s *Streamer) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active.Load() {
		return ErrStreamActive
	}

	s.voice.Reset()
	s.lastErr = nil
	s.active.Store(true)

	if err := s.drv.Start(s); err != nil {
		s.active.Store(false)
		return fmt.Errorf("starting driver: %w", err)
	}

	return nil
}

// Stop transitions active → idle and discards any chord codes still
// pending in the queue.
func (s *Streamer) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active.Load() {
		return ErrStreamIdle
	}

	s.active.Store(false)
	s.queue.Drain()

	if err := s.drv.Stop(); err != nil {
		return fmt.Errorf("stopping driver: %w", err)
	}

	return nil
}

// Post enqueues a chord code from any goroutine without blocking.
// Returns false if the queue was full and the code dropped.
func (s *Streamer) Post(code string) bool {
	return s.queue.Post(code)
}

// Active reports whether the stream is currently running.
func (s *Streamer) Active() bool {
	return s.active.Load()
}

// Err returns the fatal driver error that stopped the stream, if any.
func (s *Streamer) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Phase returns the number of samples emitted since the last Start.
func (s *Streamer) Phase() uint64 {
	return s.voice.Phase()
}

// Frequencies returns the frequency set the next buffer would sound.
func (s *Streamer) Frequencies() []float64 {
	return s.voice.Frequencies()
}

// Fill implements Filler. It consumes at most one pending chord code,
// so a buffer is always rendered from a single frequency set, then
// synthesizes one buffer and advances the phase counter. Called by
// the driver goroutine only.
func (s *Streamer) Fill(dst []float32) {
	if !s.active.Load() {
		for i := range dst {
			dst[i] = 0
		}
		return
	}

	if code, ok := s.queue.TryNext(); ok {
		if freqs, ok := s.lookup(code); ok {
			s.voice.SetFrequencies(freqs)
		}
		// unknown codes keep the current frequency set
	}

	channels := s.drv.Channels()
	if channels <= 1 {
		s.voice.Fill(dst, s.amp, s.drv.SampleRate())
		return
	}

	frames := len(dst) / channels
	if cap(s.mono) < frames {
		s.mono = make([]float32, frames)
	}

	s.voice.Fill(s.mono[:frames], s.amp, s.drv.SampleRate())
	for f := 0; f < frames; f++ {
		for c := 0; c < channels; c++ {
			dst[f*channels+c] = s.mono[f]
		}
	}
}

// ReportStatus implements Filler: driver status flags are logged and
// otherwise ignored, the stream keeps running.
func (s *Streamer) ReportStatus(status string) {
	s.logger.Warn("audio driver status", "status", status)
}

// StreamFailed implements Filler: a fatal driver error ends the
// stream. The error is kept for the controller to inspect via Err.
func (s *Streamer) StreamFailed(err error) {
	s.logger.Error("audio stream failed", "error", err)

	s.active.Store(false)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = err
	s.queue.Drain()
}
