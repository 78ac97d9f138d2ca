// SPDX-License-Identifier: EPL-2.0

// Package audio defines the streaming sample pipeline shared by the
// synthesis, envelope and file-format packages.
//
// Everything flows through the Source interface: interleaved float32
// samples in [-1, 1], pulled in caller-sized buffers until io.EOF.
// Format decoders (see the formats subpackages) produce Sources, and
// the processing stages here — Resampler, MonoMixer, Gain — wrap one
// Source to yield another, so stages compose freely:
//
//	src, _ := wav.Decoder{}.Decode(file)
//	mono := audio.NewMonoMixer(audio.NewResampler(src, 16000))
//
//	buf := make([]float32, 4096)
//	n, err := mono.ReadSamples(buf)
//
// A Registry maps format keys to decoders so callers can pick a codec
// by file extension without importing every format package themselves.
package audio
