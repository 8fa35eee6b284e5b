package face

import "github.com/go-gl/mathgl/mgl32"

// Face normal indices. Up and Down are the "horizontal" faces: their quads
// lie in the XZ plane and their width/height runs land on swapped axes
// relative to the four side faces.
const (
	NormalPosX = 0
	NormalUp   = 1
	NormalPosZ = 2
	NormalNegX = 3
	NormalDown = 4
	NormalNegZ = 5

	NormalCount = 6
)

// Normals is the fixed table of outward unit normals, indexed by the 3-bit
// normal field of a frame-table entry.
var Normals = [NormalCount]mgl32.Vec3{
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},
	{-1, 0, 0},
	{0, -1, 0},
	{0, 0, -1},
}

// IsHorizontal reports whether the normal index is one of the up/down faces.
func IsHorizontal(normal uint32) bool {
	return normal == NormalUp || normal == NormalDown
}

// RunAxes gives the world axes (0=X, 1=Y, 2=Z) that receive the width and
// height runs for each normal. Side faces keep height on Y and put width on
// whichever axis spans the face; up/down faces use the swapped XZ pair.
// A lookup table rather than branch logic so each entry is testable alone.
var RunAxes = [NormalCount][2]int{
	NormalPosX: {2, 1}, // width along Z, height along Y
	NormalUp:   {2, 0}, // width along Z, height along X
	NormalPosZ: {0, 1}, // width along X, height along Y
	NormalNegX: {2, 1},
	NormalDown: {2, 0},
	NormalNegZ: {0, 1},
}

// VertexSlot describes one of the six triangle corners shared by all quad
// instances. CornerU/CornerV are the unscaled in-plane corner offsets, each
// 0 or 1; Corner is the 0..5 slot index used to spot the diagonal corners.
type VertexSlot struct {
	CornerU, CornerV int32
	Corner           int32
}

// Slots is the per-draw vertex table: two triangles, six corners. Corners 2
// and 5 sit on the shared diagonal; they are the pair whose AO lookup
// mirrors when an instance carries the diagonal-swap flag.
var Slots = [6]VertexSlot{
	{1, 1, 0},
	{1, 0, 1},
	{0, 0, 2},
	{0, 0, 3},
	{0, 1, 4},
	{1, 1, 5},
}

// OnDiagonal reports whether the slot is one of the diagonal-swap corners.
func (s VertexSlot) OnDiagonal() bool {
	return s.Corner == 2 || s.Corner == 5
}
