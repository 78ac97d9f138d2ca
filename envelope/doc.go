// SPDX-License-Identifier: EPL-2.0

// Package envelope applies amplitude envelopes to audio clips: linear
// fade-in, fade-out and the combination of both, plus a linear
// crossfade that splices two clips over a shared overlap region.
//
// All operations work on mono or interleaved sample slices in place
// (Fade) or allocate the joined result (CrossFade). A fade of a few
// hundred samples at each end of a synthesized tone is what removes
// the click a hard onset or cutoff would otherwise produce.
package envelope
