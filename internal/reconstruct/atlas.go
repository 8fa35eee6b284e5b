package reconstruct

import "github.com/go-gl/mathgl/mgl32"

// The texture atlas is a fixed strip of 256 tiles along U. A face samples
// its tile by index plus a local fraction; the fraction is clamped a little
// inside the tile so linear filtering at quad edges cannot bleed the
// neighbouring tile in.
const (
	// AtlasTiles is the atlas width in tiles.
	AtlasTiles = 256

	// TileSpan is one tile's width in normalized atlas coordinates.
	TileSpan = 1.0 / AtlasTiles

	// edgeInset is the clamp margin as a fraction of a tile: half a texel
	// of a 32px tile.
	edgeInset = 1.0 / 64
)

// Address maps a tile index and local UV fraction (u,v in [0,1]) to
// normalized atlas coordinates.
func Address(tile uint8, u, v float32) mgl32.Vec2 {
	du := u * TileSpan
	if du < TileSpan*edgeInset {
		du = TileSpan * edgeInset
	}
	if du > TileSpan*(1-edgeInset) {
		du = TileSpan * (1 - edgeInset)
	}
	return mgl32.Vec2{float32(tile)*TileSpan + du, v}
}
