// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes WAV audio files.
//
// Decoding is delegated to github.com/go-audio/wav, which handles
// chunk scanning and 8/16/24/32-bit PCM; the decoder exposes the
// result as an audio.Source of float32 samples in [-1, 1]:
//
//	src, err := wav.Decoder{}.Decode(file)
//
// Writing is the other direction: WriteWAV16 takes interleaved int16
// PCM and streams a canonical WAV to any io.Writer, so a bytes.Buffer
// works as well as a file:
//
//	err := wav.WriteWAV16(out, 44100, 1, samples)
package wav
