// Package config holds runtime-tunable viewer settings.
package config

import (
	"sync"

	"voxquad/internal/world"
)

// RenderSettings holds render configuration
type RenderSettings struct {
	mu             sync.RWMutex
	renderDistance int // in chunks
	fogFraction    float32
}

var globalRenderSettings = &RenderSettings{
	renderDistance: 8,
	fogFraction:    0.7, // fog starts at this fraction of the view range
}

// GetRenderDistance returns the current render distance in chunks
func GetRenderDistance() int {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.renderDistance
}

// SetRenderDistance sets the render distance in chunks
func SetRenderDistance(distance int) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	// Clamp to reasonable values
	if distance < 2 {
		distance = 2
	}
	if distance > 32 {
		distance = 32
	}
	globalRenderSettings.renderDistance = distance
}

// GetFogRange derives the fog start and end distances from the render
// distance, so geometry fades out before it pops out of range.
func GetFogRange() (start, end float32) {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	end = float32(globalRenderSettings.renderDistance) * world.ChunkSize
	start = end * globalRenderSettings.fogFraction
	return start, end
}

// SetFogFraction sets where fog starts as a fraction of the view range
func SetFogFraction(f float32) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	globalRenderSettings.fogFraction = f
}
