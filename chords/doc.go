// SPDX-License-Identifier: EPL-2.0

// Package chords resolves short chord codes ("C", "Am", "F#5"-style
// note names) to sets of sine-wave frequencies in equal temperament,
// A4 = 440 Hz.
//
// The vocabulary is fixed: the seven major and seven minor root-
// position triads around octave 4. Lookups of unknown codes report a
// miss rather than an error; the streaming layer relies on that to
// ignore bad input without interrupting playback.
package chords
