// SPDX-License-Identifier: EPL-2.0

package tonelab_test

import (
	"bytes"
	"fmt"

	"github.com/chrigorion/tonelab"
	"github.com/chrigorion/tonelab/chords"
	"github.com/chrigorion/tonelab/synth"
)

// Example_renderChord renders a chord into a WAV file held in memory.
func Example_renderChord() {
	out := new(bytes.Buffer)

	err := tonelab.WriteChordWAV(out, "Am", 1.0, 8000, 0.2)
	if err != nil {
		fmt.Printf("render error: %v\n", err)
		return
	}

	fmt.Printf("Wrote %d bytes of WAV\n", out.Len())
	// Output: Wrote 16044 bytes of WAV
}

// Example_chordLookup resolves chord codes to frequency sets.
func Example_chordLookup() {
	freqs, ok := chords.Lookup("Am")
	if !ok {
		fmt.Println("unknown chord")
		return
	}

	fmt.Printf("Am has %d notes, root %.0f Hz\n", len(freqs), freqs[0])

	_, ok = chords.Lookup("Zsus4")
	fmt.Printf("Zsus4 known: %v\n", ok)
	// Output:
	// Am has 3 notes, root 440 Hz
	// Zsus4 known: false
}

// Example_liveChordChanges shows how a controller feeds chord changes
// to a running synthesis loop without ever blocking it.
func Example_liveChordChanges() {
	queue := synth.NewChordQueue(8)
	voice := synth.NewVoice(nil)

	// Controller side: post updates at any time, from any goroutine
	queue.Post("Am")
	queue.Post("Em")

	// Producer side: consume at most one code per buffer
	buf := make([]float32, 256)
	for i := 0; i < 3; i++ {
		if code, ok := queue.TryNext(); ok {
			if freqs, ok := chords.Lookup(code); ok {
				voice.SetFrequencies(freqs)
			}
		}
		voice.Fill(buf, 0.2, 8000)
	}

	fmt.Printf("Emitted %d samples over %d tones\n", voice.Phase(), len(voice.Frequencies()))
	// Output: Emitted 768 samples over 3 tones
}

// Example_progression splices rendered chords with crossfades.
func Example_progression() {
	clip, err := tonelab.RenderProgression([]string{"C", "G", "Am", "F"}, 0.5, 8000, 0.2)
	if err != nil {
		fmt.Printf("render error: %v\n", err)
		return
	}

	fmt.Printf("Progression length: %d samples\n", len(clip))
	// Output: Progression length: 15760 samples
}
