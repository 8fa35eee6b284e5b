package config

import "sync"

// TerrainSettings holds demo terrain generation configuration
type TerrainSettings struct {
	mu         sync.RWMutex
	seed       int64
	baseHeight int
	amplitude  int
	ores       bool
}

var globalTerrainSettings = &TerrainSettings{
	seed:       1,
	baseHeight: 20,
	amplitude:  12,
	ores:       true,
}

// GetSeed returns the terrain seed
func GetSeed() int64 {
	globalTerrainSettings.mu.RLock()
	defer globalTerrainSettings.mu.RUnlock()
	return globalTerrainSettings.seed
}

// SetSeed sets the terrain seed
func SetSeed(seed int64) {
	globalTerrainSettings.mu.Lock()
	defer globalTerrainSettings.mu.Unlock()
	globalTerrainSettings.seed = seed
}

// GetBaseHeight returns the mean ground level in blocks
func GetBaseHeight() int {
	globalTerrainSettings.mu.RLock()
	defer globalTerrainSettings.mu.RUnlock()
	return globalTerrainSettings.baseHeight
}

// GetAmplitude returns the height variation in blocks
func GetAmplitude() int {
	globalTerrainSettings.mu.RLock()
	defer globalTerrainSettings.mu.RUnlock()
	return globalTerrainSettings.amplitude
}

// GetOres returns whether ore pockets are generated
func GetOres() bool {
	globalTerrainSettings.mu.RLock()
	defer globalTerrainSettings.mu.RUnlock()
	return globalTerrainSettings.ores
}

// SetOres toggles ore pocket generation
func SetOres(enabled bool) {
	globalTerrainSettings.mu.Lock()
	defer globalTerrainSettings.mu.Unlock()
	globalTerrainSettings.ores = enabled
}
