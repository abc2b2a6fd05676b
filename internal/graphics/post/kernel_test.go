package post_test

import (
	"testing"

	"camwall/internal/graphics/post"
)

func TestGaussianKernelNormalized(t *testing.T) {
	for _, taps := range []int{1, 5, 9} {
		k := post.GaussianKernel(taps, 4.0)
		if len(k) != taps {
			t.Fatalf("taps=%d: expected %d weights, got %d", taps, taps, len(k))
		}

		// Full mirrored kernel must sum to 1
		sum := float64(k[0])
		for _, w := range k[1:] {
			sum += 2 * float64(w)
		}
		if sum < 0.9999 || sum > 1.0001 {
			t.Errorf("taps=%d: expected kernel sum 1.0, got %f", taps, sum)
		}
	}
}

func TestGaussianKernelMonotonic(t *testing.T) {
	k := post.GaussianKernel(9, 4.0)
	for i := 1; i < len(k); i++ {
		if k[i] > k[i-1] {
			t.Errorf("Expected weights to fall away from center, got %v", k)
			break
		}
	}
	if k[0] <= 0 {
		t.Errorf("Expected positive center weight, got %f", k[0])
	}
}
