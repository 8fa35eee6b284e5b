package frame

import "github.com/go-gl/mathgl/mgl32"

// Context is the immutable per-frame uniform state. It is built once per
// rendered frame by the caller and passed explicitly through the
// reconstruction stage; nothing in the hot path mutates it.
type Context struct {
	View       mgl32.Mat4
	Projection mgl32.Mat4

	// Modulate is a global tint multiplied into every lit color.
	Modulate mgl32.Vec4

	// CameraBlock and CameraOffset split the camera position into an
	// integer block-grid coordinate and a sub-block float remainder. The
	// split is what keeps reconstructed positions small near the camera
	// at large world coordinates.
	CameraBlock  [3]int32
	CameraOffset mgl32.Vec3

	FogColor   mgl32.Vec3
	FogDensity float32
	FogStart   float32
	FogEnd     float32
}

// SplitCamera builds the block/offset split from a full-precision camera
// position. The offset component always lands in [0,1).
func SplitCamera(x, y, z float64) ([3]int32, mgl32.Vec3) {
	var block [3]int32
	var off mgl32.Vec3
	for i, v := range [3]float64{x, y, z} {
		b := int32(v)
		if v < 0 && float64(b) != v {
			b--
		}
		block[i] = b
		off[i] = float32(v - float64(b))
	}
	return block, off
}
