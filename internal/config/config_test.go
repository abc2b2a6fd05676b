package config

import "testing"

func TestBloomThresholdClamping(t *testing.T) {
	defer SetBloomThreshold(1.0)

	SetBloomThreshold(-3)
	if got := GetBloomThreshold(); got != 0 {
		t.Errorf("Expected threshold clamped to 0, got %f", got)
	}

	SetBloomThreshold(100)
	if got := GetBloomThreshold(); got != 4 {
		t.Errorf("Expected threshold clamped to 4, got %f", got)
	}

	SetBloomThreshold(1.2)
	if got := GetBloomThreshold(); got != 1.2 {
		t.Errorf("Expected threshold 1.2, got %f", got)
	}
}

func TestAimYScaleClamping(t *testing.T) {
	defer SetAimYScale(1.5)

	SetAimYScale(0)
	if got := GetAimYScale(); got != 0.5 {
		t.Errorf("Expected scale clamped to 0.5, got %f", got)
	}

	SetAimYScale(10)
	if got := GetAimYScale(); got != 3 {
		t.Errorf("Expected scale clamped to 3, got %f", got)
	}
}

func TestFPSLimitClamping(t *testing.T) {
	defer SetFPSLimit(0)

	SetFPSLimit(-10)
	if got := GetFPSLimit(); got != 0 {
		t.Errorf("Expected limit clamped to 0, got %d", got)
	}

	SetFPSLimit(1000)
	if got := GetFPSLimit(); got != 480 {
		t.Errorf("Expected limit clamped to 480, got %d", got)
	}
}
