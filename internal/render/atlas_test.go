package render

import (
	"testing"

	"voxquad/internal/reconstruct"
)

func TestDebugAtlasDimensions(t *testing.T) {
	img := BuildDebugAtlas()
	if got := img.Bounds().Dx(); got != reconstruct.AtlasTiles*tilePx {
		t.Fatalf("atlas width = %d, want %d", got, reconstruct.AtlasTiles*tilePx)
	}
	if got := img.Bounds().Dy(); got != tilePx {
		t.Fatalf("atlas height = %d, want %d", got, tilePx)
	}
}

func TestDebugAtlasTilesDiffer(t *testing.T) {
	img := BuildDebugAtlas()
	// Sample the same in-tile texel from adjacent tiles; a strip of
	// identical tiles would make tile-selection bugs invisible.
	for tile := 0; tile < reconstruct.AtlasTiles-1; tile++ {
		a := img.RGBAAt(tile*tilePx+1, 1)
		b := img.RGBAAt((tile+1)*tilePx+1, 1)
		if a == b {
			t.Fatalf("tiles %d and %d sample identically (%v)", tile, tile+1, a)
		}
	}
}

func TestDebugAtlasOpaque(t *testing.T) {
	img := BuildDebugAtlas()
	for x := 0; x < img.Bounds().Dx(); x += tilePx / 2 {
		for y := 0; y < img.Bounds().Dy(); y++ {
			if a := img.RGBAAt(x, y).A; a != 255 {
				t.Fatalf("texel (%d,%d) alpha = %d, want opaque", x, y, a)
			}
		}
	}
}
