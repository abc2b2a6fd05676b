package post

import "math"

// GaussianKernel returns the half-kernel weights for a separable blur:
// index 0 is the center tap, the remaining taps mirror to both sides.
// Weights are normalized so the full kernel sums to 1.
func GaussianKernel(taps int, sigma float64) []float32 {
	if taps < 1 {
		taps = 1
	}

	weights := make([]float64, taps)
	sum := 0.0
	for i := 0; i < taps; i++ {
		w := math.Exp(-float64(i*i) / (2 * sigma * sigma))
		weights[i] = w
		if i == 0 {
			sum += w
		} else {
			sum += 2 * w // mirrored tap
		}
	}

	out := make([]float32, taps)
	for i, w := range weights {
		out[i] = float32(w / sum)
	}
	return out
}
