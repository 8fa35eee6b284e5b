package render

import (
	"image"
	"image/color"

	"github.com/go-gl/gl/v4.1-core/gl"
	xdraw "golang.org/x/image/draw"

	"voxquad/internal/reconstruct"
)

const (
	atlasGrid = 16 // 16x16 grid covers all 256 tile indices
	tilePx    = 16
)

// BuildDebugAtlas renders a procedural stand-in for the texture atlas: one
// distinctly colored checkered tile per index, laid out to match the
// addressing in reconstruct.Address (tile index selects the U strip). Useful
// for eyeballing tile selection and edge clamping without real art.
func BuildDebugAtlas() *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, reconstruct.AtlasTiles*tilePx, tilePx))
	base := image.NewRGBA(image.Rect(0, 0, 4, 4))

	for tile := 0; tile < reconstruct.AtlasTiles; tile++ {
		bright := tileColor(uint8(tile))
		dark := color.RGBA{bright.R / 2, bright.G / 2, bright.B / 2, 255}
		for y := 0; y < 4; y++ {
			for x := 0; x < 4; x++ {
				if (x+y)%2 == 0 {
					base.SetRGBA(x, y, bright)
				} else {
					base.SetRGBA(x, y, dark)
				}
			}
		}
		dst := image.Rect(tile*tilePx, 0, (tile+1)*tilePx, tilePx)
		xdraw.NearestNeighbor.Scale(out, dst, base, base.Bounds(), xdraw.Src, nil)
	}
	return out
}

// tileColor spreads hues over the index range so neighboring tiles are easy
// to tell apart.
func tileColor(tile uint8) color.RGBA {
	r := uint8(37*int(tile)+80) | 0x40
	g := uint8(97*int(tile)+40) | 0x40
	b := uint8(151*int(tile)+120) | 0x40
	return color.RGBA{r, g, b, 255}
}

// UploadAtlas creates a GL texture from the atlas image. Nearest filtering
// and edge clamping match what the tile addressing assumes.
func UploadAtlas(img *image.RGBA) uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA8,
		int32(img.Bounds().Dx()),
		int32(img.Bounds().Dy()),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(img.Pix),
	)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex
}

func bindTexture2D(unit uint32, tex uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, tex)
}

func deleteTexture(tex *uint32) {
	gl.DeleteTextures(1, tex)
	*tex = 0
}
