// SPDX-License-Identifier: EPL-2.0

package chords

import (
	"math"
	"testing"
)

func TestNoteFrequency(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		note string
		want float64
	}{
		{name: "concert pitch", note: "A4", want: 440.0},
		{name: "middle C", note: "C4", want: 261.6256},
		{name: "octave up", note: "A5", want: 880.0},
		{name: "octave down", note: "A3", want: 220.0},
		{name: "sharp", note: "C#4", want: 277.1826},
		{name: "flat equals sharp", note: "Db4", want: 277.1826},
		{name: "high B", note: "B4", want: 493.8833},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := NoteFrequency(tt.note)
			if !ok {
				t.Fatalf("NoteFrequency(%q) ok=false", tt.note)
			}

			if math.Abs(got-tt.want) > 0.001 {
				t.Errorf("NoteFrequency(%q) = %v, want %v", tt.note, got, tt.want)
			}
		})
	}
}

func TestNoteFrequency_Invalid(t *testing.T) {
	t.Parallel()

	for _, note := range []string{"", "A", "H4", "A#", "Cx4", "A-1"} {
		if f, ok := NoteFrequency(note); ok {
			t.Errorf("NoteFrequency(%q) = (%v, true), want ok=false", note, f)
		}
	}
}

func TestLookup_KnownChords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code string
		want []float64
	}{
		{code: "C", want: []float64{261.6256, 329.6276, 391.9954}},
		{code: "Am", want: []float64{440.0, 523.2511, 659.2551}},
		{code: "Em", want: []float64{329.6276, 391.9954, 493.8833}},
		{code: "Fm", want: []float64{349.2282, 415.3047, 523.2511}},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			t.Parallel()

			got, ok := Lookup(tt.code)
			if !ok {
				t.Fatalf("Lookup(%q) ok=false", tt.code)
			}

			if len(got) != len(tt.want) {
				t.Fatalf("Lookup(%q) = %v, want %v", tt.code, got, tt.want)
			}

			for i := range tt.want {
				if math.Abs(got[i]-tt.want[i]) > 0.001 {
					t.Errorf("Lookup(%q)[%d] = %v, want %v", tt.code, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestLookup_UnknownCode(t *testing.T) {
	t.Parallel()

	for _, code := range []string{"", "X", "Cmaj7", "am", "A m"} {
		if freqs, ok := Lookup(code); ok {
			t.Errorf("Lookup(%q) = (%v, true), want ok=false", code, freqs)
		}
	}
}

func TestCodes_CoversVocabulary(t *testing.T) {
	t.Parallel()

	codes := Codes()
	if len(codes) != 14 {
		t.Fatalf("Codes() returned %d codes, want 14", len(codes))
	}

	for _, code := range codes {
		if _, ok := Lookup(code); !ok {
			t.Errorf("Lookup(%q) failed for a code returned by Codes()", code)
		}
	}

	// Sorted output
	for i := 1; i < len(codes); i++ {
		if codes[i-1] >= codes[i] {
			t.Errorf("Codes() not sorted: %q before %q", codes[i-1], codes[i])
		}
	}
}
