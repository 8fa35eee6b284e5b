package render

import (
	"voxquad/internal/face"
	"voxquad/internal/frame"
	"voxquad/internal/meshing"
)

// Renderer owns the GL state for the face-instance pipeline: the quad
// program, the frame-table texture, the atlas, and one instance buffer per
// chunk. It must be used from the thread holding the GL context.
type Renderer struct {
	program *Program
	frames  *FrameBuffer
	atlas   uint32
	chunks  map[[3]int32]*InstanceBuffer
}

// NewRenderer compiles the quad shaders and allocates the shared buffers.
func NewRenderer(vertexPath, fragmentPath string) (*Renderer, error) {
	program, err := LoadProgram(vertexPath, fragmentPath)
	if err != nil {
		return nil, err
	}
	return &Renderer{
		program: program,
		frames:  NewFrameBuffer(),
		atlas:   UploadAtlas(BuildDebugAtlas()),
		chunks:  make(map[[3]int32]*InstanceBuffer),
	}, nil
}

// SetMesh uploads a chunk's mesh, replacing any previous geometry at that
// coordinate. The six face groups concatenate into one buffer; each
// instance's offset word keeps it tied to its own frame-table entry.
func (r *Renderer) SetMesh(coord [3]int32, mesh *meshing.ChunkMesh) {
	var faces []face.Packed
	for _, g := range mesh.Groups {
		faces = append(faces, g.Faces...)
	}

	buf := r.chunks[coord]
	if buf == nil {
		buf = NewInstanceBuffer()
		r.chunks[coord] = buf
	}
	buf.Upload(faces)
}

// DropMesh releases a chunk's geometry.
func (r *Renderer) DropMesh(coord [3]int32) {
	if buf := r.chunks[coord]; buf != nil {
		buf.Delete()
		delete(r.chunks, coord)
	}
}

// SyncFrames re-uploads the frame table. Call after meshing changes the
// table and before the next Draw.
func (r *Renderer) SyncFrames(table *frame.Table) {
	r.frames.Upload(table.Entries())
}

// Draw renders every resident chunk with the per-frame state in ctx.
func (r *Renderer) Draw(ctx *frame.Context) {
	r.program.Use()
	r.program.SetMat4("uView", ctx.View)
	r.program.SetMat4("uProjection", ctx.Projection)
	r.program.SetVec4("uModulate", ctx.Modulate)
	r.program.SetIVec3("uCameraBlock", ctx.CameraBlock)
	r.program.SetVec3("uCameraOffset", ctx.CameraOffset)
	r.program.SetVec3("uFogColor", ctx.FogColor)
	r.program.SetFloat("uFogStart", ctx.FogStart)
	r.program.SetFloat("uFogEnd", ctx.FogEnd)

	r.frames.Bind(0)
	r.program.SetInt("uFrames", 0)

	bindTexture2D(1, r.atlas)
	r.program.SetInt("uAtlas", 1)

	frustum := ExtractFrustum(ctx.Projection.Mul4(ctx.View))
	for coord, buf := range r.chunks {
		if !frustum.ContainsChunk(coord, ctx.CameraBlock, ctx.CameraOffset) {
			continue
		}
		buf.Draw()
	}
}

// Delete releases everything the renderer allocated.
func (r *Renderer) Delete() {
	for coord, buf := range r.chunks {
		buf.Delete()
		delete(r.chunks, coord)
	}
	r.frames.Delete()
	if r.atlas != 0 {
		deleteTexture(&r.atlas)
	}
	r.program.Delete()
}
