package utils

// Float32ToInt16 converts a float32 sample in [-1, 1] to 16-bit PCM.
// Values outside the range are clamped rather than wrapped.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Scale by 32767 on both sides so +1.0 does not overflow
	return int16(x * 32767.0)
}

// Float32ToInt16Slice converts a whole buffer of float32 samples to
// 16-bit PCM, appending to dst. dst may be nil.
func Float32ToInt16Slice(dst []int16, src []float32) []int16 {
	for _, x := range src {
		dst = append(dst, Float32ToInt16(x))
	}
	return dst
}
