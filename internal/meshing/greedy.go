// Package meshing produces packed face instances from voxel chunks. It is
// the producer side of the wire format: greedy merging of identical
// adjacent faces, per-corner ambient occlusion, and the diagonal-swap flag
// all happen here, once per chunk edit, so the per-frame consumer only ever
// decodes.
package meshing

import (
	"fmt"

	"voxquad/internal/face"
	"voxquad/internal/world"
)

// Group is the mesh output for one chunk-face-group: every face of one
// chunk that shares a normal, all referencing the same frame-table entry.
type Group struct {
	Normal uint32
	Faces  []face.Packed
}

// ChunkMesh holds the six per-normal groups of one meshed chunk. Groups
// with no visible faces have a nil Faces slice.
type ChunkMesh struct {
	Groups [face.NormalCount]Group
}

// cell is the greedy-merge key. Two mask cells merge only when every field
// matches; merging across differing AO would smear the occlusion gradient
// of one block across the whole merged face.
type cell struct {
	set  bool
	tile uint8
	ao   [4]uint8
	swap bool
}

// MeshChunk greedy-meshes the neighbourhood's center chunk. offsets are the
// pre-allocated frame-table indices for the six groups, in normal order;
// every emitted instance references its group's index.
func MeshChunk(hood *world.Neighborhood, offsets [face.NormalCount]uint32) (*ChunkMesh, error) {
	mesh := &ChunkMesh{}
	for n := uint32(0); n < face.NormalCount; n++ {
		faces, err := meshDirection(hood, n, offsets[n])
		if err != nil {
			return nil, fmt.Errorf("meshing normal %d: %w", n, err)
		}
		mesh.Groups[n] = Group{Normal: n, Faces: faces}
	}
	return mesh, nil
}

func meshDirection(hood *world.Neighborhood, normal uint32, offset uint32) ([]face.Packed, error) {
	nAxis, sign := normalAxis(normal)
	uAxis, vAxis := face.RunAxes[normal][0], face.RunAxes[normal][1]

	var out []face.Packed
	mask := make([]cell, world.ChunkSize*world.ChunkSize)

	for layer := 0; layer < world.ChunkSize; layer++ {
		filled := false
		for u := 0; u < world.ChunkSize; u++ {
			for v := 0; v < world.ChunkSize; v++ {
				var p [3]int
				p[nAxis] = layer
				p[uAxis] = u
				p[vAxis] = v

				m := &mask[u*world.ChunkSize+v]
				*m = cell{}

				vox := hood.Get(p[0], p[1], p[2])
				if vox.IsAir() {
					continue
				}
				var q [3]int = p
				q[nAxis] += sign
				if hood.Opaque(q[0], q[1], q[2]) {
					continue
				}

				ao := cornerOcclusion(hood, q, uAxis, vAxis)
				*m = cell{
					set:  true,
					tile: vox.Tile(normal),
					ao:   ao,
					// Flip the AO diagonal when the occlusion pattern
					// is asymmetric the wrong way round for the fixed
					// triangulation.
					swap: int(ao[0])+int(ao[3]) > int(ao[1])+int(ao[2]),
				}
				filled = true
			}
		}
		if !filled {
			continue
		}

		// Greedy merge: width run along the u axis, then grow the height
		// along v while every column of the run still matches.
		for u := 0; u < world.ChunkSize; u++ {
			for v := 0; v < world.ChunkSize; {
				m := mask[u*world.ChunkSize+v]
				if !m.set {
					v++
					continue
				}

				height := 1
				for v+height < world.ChunkSize && mask[u*world.ChunkSize+v+height] == m {
					height++
				}

				width := 1
			grow:
				for u+width < world.ChunkSize {
					for k := 0; k < height; k++ {
						if mask[(u+width)*world.ChunkSize+v+k] != m {
							break grow
						}
					}
					width++
				}

				var p [3]int
				p[nAxis] = layer
				p[uAxis] = u
				p[vAxis] = v
				if sign > 0 {
					// Positive faces sit on the far plane of the block;
					// the offset is baked into the packed position.
					p[nAxis]++
				}

				in := face.Instance{
					X:        uint8(p[0]),
					Y:        uint8(p[1]),
					Z:        uint8(p[2]),
					Width:    uint8(width),
					Height:   uint8(height),
					Tile:     m.tile,
					AO:       m.ao,
					DiagSwap: m.swap,
				}
				packed, err := in.Encode(offset)
				if err != nil {
					return nil, err
				}
				out = append(out, packed)

				for du := 0; du < width; du++ {
					for dv := 0; dv < height; dv++ {
						mask[(u+du)*world.ChunkSize+v+dv] = cell{}
					}
				}
				v += height
			}
		}
	}
	return out, nil
}

// normalAxis splits a normal index into its axis (0..2) and sign.
func normalAxis(normal uint32) (int, int) {
	n := face.Normals[normal]
	for a := 0; a < 3; a++ {
		if n[a] > 0 {
			return a, 1
		}
		if n[a] < 0 {
			return a, -1
		}
	}
	panic("face normal table holds a zero vector")
}

// cornerOcclusion counts occluders for the four corners of a face whose
// front air block is at p. For each corner the two edge neighbours and the
// diagonal neighbour on the face plane are tested, giving 0..3.
func cornerOcclusion(hood *world.Neighborhood, p [3]int, uAxis, vAxis int) [4]uint8 {
	var ao [4]uint8
	for cu := 0; cu <= 1; cu++ {
		for cv := 0; cv <= 1; cv++ {
			du := 2*cu - 1
			dv := 2*cv - 1

			var side1, side2, corner [3]int = p, p, p
			side1[uAxis] += du
			side2[vAxis] += dv
			corner[uAxis] += du
			corner[vAxis] += dv

			n := uint8(0)
			if hood.Opaque(side1[0], side1[1], side1[2]) {
				n++
			}
			if hood.Opaque(side2[0], side2[1], side2[2]) {
				n++
			}
			if hood.Opaque(corner[0], corner[1], corner[2]) {
				n++
			}
			ao[face.AOIndex(cu, cv)] = n
		}
	}
	return ao
}
