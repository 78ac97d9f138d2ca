// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF audio files via github.com/go-audio/aiff,
// exposing them as audio.Source streams of float32 samples. Only
// 16-bit PCM is supported.
package aiff
