// SPDX-License-Identifier: EPL-2.0

// Package tonelab synthesizes, processes and plays simple tonal audio.
// It grew out of teaching material for an image- and signal-processing
// course: every piece is small enough to read in one sitting, and the
// heavy lifting (codecs, device output) is delegated to established
// libraries.
//
// # Layout
//
//   - synth: phase-continuous multi-tone sine synthesis and the
//     non-blocking chord-update queue
//   - chords: chord-code vocabulary and equal-temperament note table
//   - envelope: fade-in/out and crossfade
//   - stream: real-time playback with chord changes while playing
//   - audio: the Source pipeline (resampler, mono mixer, gain)
//   - formats/...: WAV, MP3, Ogg Vorbis and AIFF decoders, WAV writer
//
// # Quick start
//
// Render a chord to a WAV file:
//
//	f, _ := os.Create("am.wav")
//	defer f.Close()
//	err := tonelab.WriteChordWAV(f, "Am", 2.0, 44100, 0.2)
//
// Play chords live, changing them while the stream runs:
//
//	drv, _ := stream.NewDriver(44100, 2)
//	s := stream.New(drv, stream.Config{})
//	s.Start()
//	s.Post("Am")
//	time.Sleep(time.Second)
//	s.Post("Em")
//
// Decode any supported file into the processing pipeline:
//
//	src, _ := tonelab.DecodeFile("input.mp3")
//	defer src.Close()
//	mono := audio.NewMonoMixer(audio.NewResampler(src, 16000))
package tonelab
