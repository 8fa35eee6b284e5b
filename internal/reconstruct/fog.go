package reconstruct

import "github.com/go-gl/mathgl/mgl32"

// FogFactor returns the linear fog blend for a camera distance: 1 at or
// inside fogStart, 0 at or beyond fogEnd.
func FogFactor(distance, fogStart, fogEnd float32) float32 {
	f := (fogEnd - distance) / (fogEnd - fogStart)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// FogMix blends the lit color toward the fog color. factor 1 keeps the lit
// color, 0 is pure fog.
func FogMix(lit, fogColor mgl32.Vec3, factor float32) mgl32.Vec3 {
	return mgl32.Vec3{
		fogColor[0] + (lit[0]-fogColor[0])*factor,
		fogColor[1] + (lit[1]-fogColor[1])*factor,
		fogColor[2] + (lit[2]-fogColor[2])*factor,
	}
}
