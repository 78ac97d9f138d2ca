// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestFloat32ToInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float32
		want  int16
	}{
		{
			name:  "zero",
			input: 0.0,
			want:  0,
		},
		{
			name:  "max positive",
			input: 1.0,
			want:  math.MaxInt16,
		},
		{
			name:  "max negative",
			input: -1.0,
			want:  -32767,
		},
		{
			name:  "half positive",
			input: 0.5,
			want:  16383, // 32767 * 0.5 ≈ 16383.5
		},
		{
			name:  "half negative",
			input: -0.5,
			want:  -16383,
		},
		{
			name:  "clamp above range",
			input: 1.5,
			want:  math.MaxInt16,
		},
		{
			name:  "clamp below range",
			input: -2.0,
			want:  -32767,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Float32ToInt16(tt.input)
			if got != tt.want {
				t.Errorf("Float32ToInt16(%v) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestFloat32ToInt16Slice(t *testing.T) {
	t.Parallel()

	src := []float32{0, 0.5, -0.5, 1, -1}
	got := Float32ToInt16Slice(nil, src)

	want := []int16{0, 16383, -16383, 32767, -32767}
	if len(got) != len(want) {
		t.Fatalf("Float32ToInt16Slice() returned %d samples, want %d", len(got), len(want))
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestFloat32ToInt16Slice_Append(t *testing.T) {
	t.Parallel()

	dst := []int16{42}
	got := Float32ToInt16Slice(dst, []float32{0.5})

	if len(got) != 2 {
		t.Fatalf("Float32ToInt16Slice() returned %d samples, want 2", len(got))
	}

	if got[0] != 42 {
		t.Errorf("got[0] = %d, existing content was not preserved", got[0])
	}
}
