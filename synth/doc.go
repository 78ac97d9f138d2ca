// SPDX-License-Identifier: EPL-2.0

// Package synth generates multi-tone sine audio with phase continuity
// across buffers.
//
// The two pieces mirror the two sides of a real-time synthesis loop:
//
//   - Voice holds the synthesis state — the active frequency set and a
//     sample counter — and fills one buffer at a time. Because the
//     counter advances by exactly the samples produced, consecutive
//     buffers join without clicks regardless of scheduling jitter.
//   - ChordQueue carries chord-change requests from a controller
//     goroutine to the goroutine that calls Voice.Fill. Both ends are
//     non-blocking, so posting a change can never stall audio output.
//
// The typical wiring (done for you by the stream package) consumes at
// most one queued code immediately before filling each buffer:
//
//	if code, ok := queue.TryNext(); ok {
//		if freqs, ok := chords.Lookup(code); ok {
//			voice.SetFrequencies(freqs)
//		}
//	}
//	voice.Fill(buf, amp, rate)
//
// Frequency sets are replaced wholesale, never edited in place, so a
// buffer is always rendered from exactly one chord.
package synth
