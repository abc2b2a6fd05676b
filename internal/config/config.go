package config

import (
	"os"
	"sync"
)

// Settings holds the runtime-tunable render parameters
type Settings struct {
	mu sync.RWMutex

	bloomThreshold float32
	bloomStrength  float32
	aimYScale      float32
	fpsLimit       int
	debugPanel     bool
}

var global = &Settings{
	bloomThreshold: 1.0,
	bloomStrength:  0.8,
	aimYScale:      1.5,
	fpsLimit:       0, // uncapped
	debugPanel:     os.Getenv("CAMWALL_DEBUG") != "",
}

// GetBloomThreshold returns the luminance cutoff for the bright pass
func GetBloomThreshold() float32 {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.bloomThreshold
}

// SetBloomThreshold sets the luminance cutoff for the bright pass
func SetBloomThreshold(v float32) {
	global.mu.Lock()
	defer global.mu.Unlock()

	// Clamp to reasonable values
	if v < 0 {
		v = 0
	}
	if v > 4 {
		v = 4
	}

	global.bloomThreshold = v
}

// GetBloomStrength returns the bloom composite weight
func GetBloomStrength() float32 {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.bloomStrength
}

// SetBloomStrength sets the bloom composite weight
func SetBloomStrength(v float32) {
	global.mu.Lock()
	defer global.mu.Unlock()

	if v < 0 {
		v = 0
	}
	if v > 2 {
		v = 2
	}

	global.bloomStrength = v
}

// GetAimYScale returns the vertical exaggeration applied to the camera aim target
func GetAimYScale() float32 {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.aimYScale
}

// SetAimYScale sets the vertical exaggeration applied to the camera aim target
func SetAimYScale(v float32) {
	global.mu.Lock()
	defer global.mu.Unlock()

	if v < 0.5 {
		v = 0.5
	}
	if v > 3 {
		v = 3
	}

	global.aimYScale = v
}

// GetFPSLimit returns the frame rate cap (0 means uncapped)
func GetFPSLimit() int {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.fpsLimit
}

// SetFPSLimit sets the frame rate cap (0 means uncapped)
func SetFPSLimit(limit int) {
	global.mu.Lock()
	defer global.mu.Unlock()

	if limit < 0 {
		limit = 0
	}
	if limit > 480 {
		limit = 480
	}

	global.fpsLimit = limit
}

// DebugPanelEnabled reports whether the debug parameter panel should be built.
// Read once from the CAMWALL_DEBUG environment variable at startup.
func DebugPanelEnabled() bool {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.debugPanel
}
