// Package world provides the minimal voxel storage the meshing stage reads:
// fixed-size cubic chunks and the 27-chunk neighbourhood window used for
// cross-chunk face and occlusion queries.
package world

import (
	"github.com/cespare/xxhash/v2"
)

const (
	// ChunkSize is the chunk edge length in blocks. Frame-table offsets
	// are in chunk units, so world block position = offset * ChunkSize.
	ChunkSize = 32

	// ChunkVolume is the voxel count of one chunk.
	ChunkVolume = ChunkSize * ChunkSize * ChunkSize
)

// Chunk is a dense ChunkSize³ voxel cube. A nil Chunk reads as all air.
type Chunk struct {
	voxels [ChunkVolume]Voxel
}

func index(x, y, z int) int {
	return (x*ChunkSize+y)*ChunkSize + z
}

// Get returns the voxel at chunk-local coordinates. Out-of-range
// coordinates are the caller's bug; cross-chunk lookups go through
// Neighborhood, not here.
func (c *Chunk) Get(x, y, z int) Voxel {
	if c == nil {
		return VoxelAir
	}
	return c.voxels[index(x, y, z)]
}

// Set writes the voxel at chunk-local coordinates.
func (c *Chunk) Set(x, y, z int, v Voxel) {
	c.voxels[index(x, y, z)] = v
}

// Empty reports whether the chunk holds only air.
func (c *Chunk) Empty() bool {
	if c == nil {
		return true
	}
	for _, v := range c.voxels {
		if !v.IsAir() {
			return false
		}
	}
	return true
}

// ContentHash returns a hash of the voxel contents. The mesher compares it
// against the hash of the last meshed state to skip remeshing unchanged
// chunks.
func (c *Chunk) ContentHash() uint64 {
	if c == nil {
		return 0
	}
	buf := make([]byte, ChunkVolume)
	for i, v := range c.voxels {
		buf[i] = byte(v)
	}
	return xxhash.Sum64(buf)
}
