// Package reconstruct expands packed face instances back into geometry.
// Every function here is pure: one invocation per vertex/instance pair,
// reading only its inputs plus the read-only frame table and frame context.
// That keeps the stage trivially data-parallel, mirroring how the packed
// stream is consumed on the GPU.
package reconstruct

import (
	"github.com/go-gl/mathgl/mgl32"

	"voxquad/internal/face"
	"voxquad/internal/frame"
	"voxquad/internal/world"
)

// Brightness maps a 0..3 occluder count to an ambient-occlusion tint.
// Index 0 is an open corner.
var Brightness = [4]float32{1.0, 0.75, 0.5, 0.25}

// Vertex is one reconstructed quad corner.
type Vertex struct {
	// Position is camera-relative, safe to feed through the view and
	// projection matrices in single precision.
	Position mgl32.Vec3

	// UV is the normalized atlas coordinate.
	UV mgl32.Vec2

	// Tint is the ambient-occlusion brightness for this corner.
	Tint float32

	// Normal is the outward face normal.
	Normal mgl32.Vec3

	// Fog is the fog blend factor at this vertex, 1 = unfogged. It is
	// computed per vertex and interpolated; the compositor applies it
	// after lighting.
	Fog float32
}

// Corner reconstructs one triangle corner of one face instance.
func Corner(slot face.VertexSlot, in face.Instance, entry frame.Entry, ctx *frame.Context) Vertex {
	// Run-length expansion: a corner offset of 1 moves by the full run,
	// which is what lets one instance stand in for an NxM merged face.
	su := slot.CornerU * int32(in.Width)
	sv := slot.CornerV * int32(in.Height)

	// Land the flat quad on the world axes for this orientation.
	axes := face.RunAxes[entry.Normal]
	var corner [3]int32
	corner[axes[0]] = su
	corner[axes[1]] = sv

	local := [3]int32{int32(in.X), int32(in.Y), int32(in.Z)}

	// Camera-relative position. The chunk offset, local position and
	// corner are all integers, so the subtraction against the camera
	// block coordinate is exact; only the sub-block offset is float.
	// Without this ordering, positions far from the origin lose the
	// low bits before the camera is ever subtracted.
	var pos mgl32.Vec3
	for i := 0; i < 3; i++ {
		blocks := int64(entry.Offset[i])*world.ChunkSize + int64(local[i]) + int64(corner[i])
		pos[i] = float32(blocks-int64(ctx.CameraBlock[i])) - ctx.CameraOffset[i]
	}

	// AO lookup uses the unscaled corner. The diagonal corners mirror
	// their lookup when the swap flag is set, flipping the short
	// diagonal of the occlusion gradient without re-winding the quad.
	u, v := int(slot.CornerU), int(slot.CornerV)
	au, av := u, v
	if in.DiagSwap && slot.OnDiagonal() {
		au, av = 1-au, 1-av
	}
	tint := Brightness[in.AO[face.AOIndex(au, av)]]

	// UVs come from the unscaled corner as well, so the tile reference
	// frame is independent of the merged run lengths.
	uv := Address(in.Tile, float32(u), float32(v))

	return Vertex{
		Position: pos,
		UV:       uv,
		Tint:     tint,
		Normal:   face.Normals[entry.Normal],
		Fog:      FogFactor(pos.Len(), ctx.FogStart, ctx.FogEnd),
	}
}

// Quad reconstructs all six triangle corners of one instance, in slot order.
func Quad(in face.Instance, entry frame.Entry, ctx *frame.Context) [6]Vertex {
	var out [6]Vertex
	for i, slot := range face.Slots {
		out[i] = Corner(slot, in, entry, ctx)
	}
	return out
}
