// SPDX-License-Identifier: EPL-2.0

package chords

import (
	"math"
	"sort"
)

// semitone offsets within an octave by note letter (with accidental)
var semitones = map[string]int{
	"C": 0, "C#": 1, "Db": 1,
	"D": 2, "D#": 3, "Eb": 3,
	"E": 4,
	"F": 5, "F#": 6, "Gb": 6,
	"G": 7, "G#": 8, "Ab": 8,
	"A": 9, "A#": 10, "Bb": 10,
	"B": 11,
}

// vocabulary maps chord codes to root-position triads. Major triads
// use the bare letter, minor triads an "m" suffix — the notation the
// parameter channel resolves chord codes against.
var vocabulary = map[string][]string{
	"C":  {"C4", "E4", "G4"},
	"D":  {"D4", "F#4", "A4"},
	"E":  {"E4", "G#4", "B4"},
	"F":  {"F4", "A4", "C5"},
	"G":  {"G4", "B4", "D5"},
	"A":  {"A4", "C#5", "E5"},
	"B":  {"B4", "D#5", "F#5"},
	"Cm": {"C4", "Eb4", "G4"},
	"Dm": {"D4", "F4", "A4"},
	"Em": {"E4", "G4", "B4"},
	"Fm": {"F4", "Ab4", "C5"},
	"Gm": {"G4", "Bb4", "D5"},
	"Am": {"A4", "C5", "E5"},
	"Bm": {"B4", "D5", "F#5"},
}

// NoteFrequency returns the equal-temperament frequency in Hz for a
// note name like "A4", "C#5" or "Eb3". A4 is tuned to 440 Hz. The
// second return is false for names outside octaves 0-9 or with an
// unknown letter.
func NoteFrequency(name string) (float64, bool) {
	if len(name) < 2 {
		return 0, false
	}

	letter := name[:len(name)-1]
	oct := name[len(name)-1]
	if oct < '0' || oct > '9' {
		return 0, false
	}

	semi, ok := semitones[letter]
	if !ok {
		return 0, false
	}

	// MIDI numbering: C4 = 60, A4 = 69
	midi := (int(oct-'0')+1)*12 + semi
	return 440 * math.Pow(2, float64(midi-69)/12), true
}

// Lookup resolves a chord code to its frequency set. Unknown codes
// return ok=false — by design a miss, not an error, so a mistyped
// code on a live stream is simply ignored.
func Lookup(code string) ([]float64, bool) {
	notes, ok := vocabulary[code]
	if !ok {
		return nil, false
	}

	freqs := make([]float64, len(notes))
	for i, n := range notes {
		f, ok := NoteFrequency(n)
		if !ok {
			return nil, false
		}
		freqs[i] = f
	}

	return freqs, true
}

// Codes returns the chord vocabulary in sorted order.
func Codes() []string {
	codes := make([]string, 0, len(vocabulary))
	for c := range vocabulary {
		codes = append(codes, c)
	}
	sort.Strings(codes)

	return codes
}
