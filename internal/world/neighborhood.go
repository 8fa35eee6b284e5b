package world

// Neighborhood is the 3x3x3 window of chunks around the one being meshed.
// Face visibility and corner occlusion both read one block past the chunk
// boundary, so the mesher captures all 27 chunks up front and the window
// stays immutable for the whole mesh job. Missing neighbours read as air.
type Neighborhood struct {
	chunks [27]*Chunk
}

// NewNeighborhood builds the window. Index layout is 9x+3y+z with each of
// x,y,z in 0..2 and (1,1,1) the center chunk.
func NewNeighborhood(chunks [27]*Chunk) *Neighborhood {
	return &Neighborhood{chunks: chunks}
}

// Center returns the chunk being meshed.
func (n *Neighborhood) Center() *Chunk {
	return n.chunks[9+3+1]
}

// Get returns the voxel at coordinates local to the center chunk. The
// coordinate may run one chunk past the center in any direction.
func (n *Neighborhood) Get(x, y, z int) Voxel {
	x += ChunkSize
	y += ChunkSize
	z += ChunkSize

	ci := 9*(x/ChunkSize) + 3*(y/ChunkSize) + z/ChunkSize
	c := n.chunks[ci]
	if c == nil {
		return VoxelAir
	}
	return c.Get(x&(ChunkSize-1), y&(ChunkSize-1), z&(ChunkSize-1))
}

// Opaque reports whether the voxel at center-local coordinates occludes.
func (n *Neighborhood) Opaque(x, y, z int) bool {
	return n.Get(x, y, z).IsOpaque()
}
