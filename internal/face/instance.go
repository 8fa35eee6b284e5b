// Package face implements the packed wire format for meshed voxel quads.
//
// One meshed (possibly multi-block) face is three 32-bit words:
//
//	P1: localX 0..6 | localY 6..12 | localZ 12..18 | width-1 18..23 | height-1 23..28
//	ID: tile 0..8 | ao(0,0) 8..10 | ao(0,1) 10..12 | ao(1,0) 12..14 | ao(1,1) 14..16 | diagSwap 16
//	Offset: index into the per-chunk frame table
//
// All fields are LSB-first. Width and height are stored as run length minus
// one, so a stored 0 decodes to a 1-block run and the full 5-bit range covers
// runs of 1..32 blocks.
package face

import "fmt"

// Format identifies the packed layout. There is a single converged layout;
// the tag exists so containers carrying packed buffers can reject words
// produced by a different revision instead of decoding them into garbage.
const Format = 1

const (
	// MaxLocal is the largest chunk-local coordinate a packed word can hold.
	// Quads on the far boundary plane of a chunk sit at chunk size, not
	// chunk size minus one, which is why this exceeds the chunk dimensions.
	MaxLocal = 63

	// MaxRun is the largest merged run length along either quad axis.
	MaxRun = 32

	// MaxTile is the largest atlas tile index (the atlas is 256 tiles wide).
	MaxTile = 255

	// MaxAO is the largest per-corner occluder count.
	MaxAO = 3
)

// Packed is one face instance as it travels to the rendering boundary.
type Packed struct {
	P1 uint32
	ID uint32
	// Offset indexes the frame table entry shared by every face of the
	// owning chunk-face-group.
	Offset uint32
}

// Instance is the logical record behind a Packed word pair.
type Instance struct {
	// X, Y, Z are chunk-local block coordinates of the quad origin, with
	// the face-plane offset already applied by the mesher.
	X, Y, Z uint8

	// Width and Height are the greedy run lengths in blocks, 1..32.
	// Width runs along the quad's first in-plane axis, height along the
	// second; which world axes those are depends on the face normal.
	Width, Height uint8

	// Tile is the atlas tile index for this face.
	Tile uint8

	// AO holds the per-corner occluder counts, indexed with AOIndex.
	AO [4]uint8

	// DiagSwap mirrors the ambient-occlusion lookup for the two corners
	// on the triangulation diagonal when the occlusion pattern is
	// asymmetric, so the visually short diagonal flips without re-winding
	// the quad.
	DiagSwap bool
}

// AOIndex maps an unscaled corner position (u,v ∈ {0,1}) to its slot in
// Instance.AO and in the packed ID word.
func AOIndex(u, v int) int {
	return u*2 + v
}

// Encode packs the instance into wire words. Field values outside their bit
// widths are programmer errors on the producer side and are rejected rather
// than truncated: a silently masked coordinate renders as plausible but
// wrong geometry, which is far harder to find than a loud error.
func (in Instance) Encode(offset uint32) (Packed, error) {
	if in.X > MaxLocal || in.Y > MaxLocal || in.Z > MaxLocal {
		return Packed{}, fmt.Errorf("face: local position (%d,%d,%d) exceeds %d", in.X, in.Y, in.Z, MaxLocal)
	}
	if in.Width < 1 || in.Width > MaxRun || in.Height < 1 || in.Height > MaxRun {
		return Packed{}, fmt.Errorf("face: run %dx%d outside 1..%d", in.Width, in.Height, MaxRun)
	}
	for i, ao := range in.AO {
		if ao > MaxAO {
			return Packed{}, fmt.Errorf("face: ao[%d]=%d exceeds %d", i, ao, MaxAO)
		}
	}

	p1 := uint32(in.X) |
		uint32(in.Y)<<6 |
		uint32(in.Z)<<12 |
		uint32(in.Width-1)<<18 |
		uint32(in.Height-1)<<23

	id := uint32(in.Tile) |
		uint32(in.AO[0])<<8 |
		uint32(in.AO[1])<<10 |
		uint32(in.AO[2])<<12 |
		uint32(in.AO[3])<<14
	if in.DiagSwap {
		id |= 1 << 16
	}

	return Packed{P1: p1, ID: id, Offset: offset}, nil
}

// Decode expands the wire words back into the logical record. Every bit
// pattern decodes to some instance; corrupt input yields wrong geometry,
// never a failure, so validation belongs on the encode side.
func (p Packed) Decode() Instance {
	return Instance{
		X:      uint8(p.P1 & 0x3F),
		Y:      uint8(p.P1 >> 6 & 0x3F),
		Z:      uint8(p.P1 >> 12 & 0x3F),
		Width:  uint8(p.P1>>18&0x1F) + 1,
		Height: uint8(p.P1>>23&0x1F) + 1,
		Tile:   uint8(p.ID & 0xFF),
		AO: [4]uint8{
			uint8(p.ID >> 8 & 0x3),
			uint8(p.ID >> 10 & 0x3),
			uint8(p.ID >> 12 & 0x3),
			uint8(p.ID >> 14 & 0x3),
		},
		DiagSwap: p.ID>>16&1 != 0,
	}
}
