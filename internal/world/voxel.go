package world

// Voxel is one block kind. Zero value is air.
type Voxel uint8

const (
	VoxelAir Voxel = iota
	VoxelDirt
	VoxelGrass
	VoxelStone
	VoxelCopper
	VoxelIron
	VoxelCoal
)

// IsAir reports whether the voxel contributes no faces.
func (v Voxel) IsAir() bool {
	return v == VoxelAir
}

// IsOpaque reports whether the voxel occludes neighbouring faces and
// contributes to ambient occlusion.
func (v Voxel) IsOpaque() bool {
	return v != VoxelAir
}

// tile ids into the 256-tile atlas strip. Grass uses a distinct top tile;
// everything else shows the same tile on all six faces.
var voxelTiles = [...][6]uint8{
	VoxelAir:    {0, 0, 0, 0, 0, 0},
	VoxelDirt:   {1, 1, 1, 1, 1, 1},
	VoxelGrass:  {2, 3, 2, 2, 1, 2}, // sides, top, sides, sides, dirt bottom, sides
	VoxelStone:  {4, 4, 4, 4, 4, 4},
	VoxelCopper: {5, 5, 5, 5, 5, 5},
	VoxelIron:   {6, 6, 6, 6, 6, 6},
	VoxelCoal:   {7, 7, 7, 7, 7, 7},
}

// Tile returns the atlas tile for the given face-normal index (0..5, where
// 1 is up and 4 is down).
func (v Voxel) Tile(normal uint32) uint8 {
	return voxelTiles[v][normal]
}
