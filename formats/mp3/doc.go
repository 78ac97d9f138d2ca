// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 audio via github.com/hajimehoshi/go-mp3,
// exposing it as an audio.Source of float32 samples. go-mp3 always
// yields stereo 16-bit PCM; wrap the source in audio.NewMonoMixer for
// a mono stream.
package mp3
