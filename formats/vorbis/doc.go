// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis audio via
// github.com/jfreymuth/oggvorbis, exposing it as an audio.Source.
// Vorbis decodes natively to float32, so samples pass through without
// any PCM conversion.
package vorbis
