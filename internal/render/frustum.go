package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"voxquad/internal/world"
)

type plane struct {
	a, b, c, d float32
}

// Frustum holds the six clip planes of a projection*view matrix, in
// camera-relative space (the same space reconstructed positions live in).
type Frustum struct {
	planes [6]plane
}

// ExtractFrustum builds the planes from the combined clip matrix. Order is
// left, right, bottom, top, near, far.
func ExtractFrustum(clip mgl32.Mat4) Frustum {
	// mgl32 matrices are column-major.
	m00, m01, m02, m03 := clip[0], clip[4], clip[8], clip[12]
	m10, m11, m12, m13 := clip[1], clip[5], clip[9], clip[13]
	m20, m21, m22, m23 := clip[2], clip[6], clip[10], clip[14]
	m30, m31, m32, m33 := clip[3], clip[7], clip[11], clip[15]

	var f Frustum
	f.planes[0] = normalizePlane(plane{m30 + m00, m31 + m01, m32 + m02, m33 + m03})
	f.planes[1] = normalizePlane(plane{m30 - m00, m31 - m01, m32 - m02, m33 - m03})
	f.planes[2] = normalizePlane(plane{m30 + m10, m31 + m11, m32 + m12, m33 + m13})
	f.planes[3] = normalizePlane(plane{m30 - m10, m31 - m11, m32 - m12, m33 - m13})
	f.planes[4] = normalizePlane(plane{m30 + m20, m31 + m21, m32 + m22, m33 + m23})
	f.planes[5] = normalizePlane(plane{m30 - m20, m31 - m21, m32 - m22, m33 - m23})
	return f
}

func normalizePlane(p plane) plane {
	l := float32(math.Sqrt(float64(p.a*p.a + p.b*p.b + p.c*p.c)))
	if l == 0 {
		return p
	}
	return plane{p.a / l, p.b / l, p.c / l, p.d / l}
}

// ContainsAABB tests an axis-aligned box given in camera-relative
// coordinates. Boxes straddling a plane count as visible.
func (f Frustum) ContainsAABB(min, max mgl32.Vec3) bool {
	for i := 0; i < 6; i++ {
		p := f.planes[i]
		// Positive vertex for this plane's normal.
		px := max[0]
		if p.a < 0 {
			px = min[0]
		}
		py := max[1]
		if p.b < 0 {
			py = min[1]
		}
		pz := max[2]
		if p.c < 0 {
			pz = min[2]
		}
		if p.a*px+p.b*py+p.c*pz+p.d < 0 {
			return false
		}
	}
	return true
}

// ContainsChunk tests a chunk's bounding box against the frustum, given the
// camera block/offset split used for reconstruction.
func (f Frustum) ContainsChunk(coord [3]int32, cameraBlock [3]int32, cameraOffset mgl32.Vec3) bool {
	var min mgl32.Vec3
	for i := 0; i < 3; i++ {
		blocks := int64(coord[i])*world.ChunkSize - int64(cameraBlock[i])
		min[i] = float32(blocks) - cameraOffset[i]
	}
	max := min.Add(mgl32.Vec3{world.ChunkSize, world.ChunkSize, world.ChunkSize})
	return f.ContainsAABB(min, max)
}
