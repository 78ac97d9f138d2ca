// SPDX-License-Identifier: EPL-2.0

package stream

// Filler is what a Driver calls into. Fill must complete before the
// driver's next period elapses; both callbacks run on the driver's
// own goroutine.
type Filler interface {
	// Fill writes exactly len(dst) interleaved float32 samples.
	Fill(dst []float32)
	// ReportStatus surfaces a non-fatal driver condition (e.g. an
	// output underrun). Informational only; playback continues.
	ReportStatus(status string)
	// StreamFailed reports a fatal driver error. The stream is over;
	// no further Fill calls will arrive.
	StreamFailed(err error)
}

// Driver owns the platform audio output: it periodically pulls fixed
// size buffers from a Filler and plays them. Implementations are
// selected at build time (oto by default, portaudio with the
// "portaudio" build tag).
type Driver interface {
	// Start begins periodic Fill callbacks.
	Start(f Filler) error
	// Stop halts playback. The driver may be started again.
	Stop() error
	// Close releases the platform audio resources.
	Close() error

	SampleRate() int
	Channels() int
}

// DeviceInfo describes an audio device reported by the backend.
type DeviceInfo struct {
	Name              string
	MaxInputChannels  int
	MaxOutputChannels int
	DefaultSampleRate float64
	IsDefaultOutput   bool
}
