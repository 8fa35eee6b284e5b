package render

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"voxquad/internal/face"
	"voxquad/internal/frame"
)

const (
	// Three u32 words per instance, matching face.Packed.
	instanceStride = 12

	initialInstanceBytes = 64 * 1024
)

// InstanceBuffer holds one chunk's packed face instances on the GPU. The
// words are uploaded untouched; attribute 0 exposes them to the vertex
// shader as a uvec3 per instance.
type InstanceBuffer struct {
	vao           uint32
	vbo           uint32
	capacityBytes int
	count         int32
}

func NewInstanceBuffer() *InstanceBuffer {
	b := &InstanceBuffer{capacityBytes: initialInstanceBytes}
	gl.GenVertexArrays(1, &b.vao)
	gl.GenBuffers(1, &b.vbo)

	gl.BindVertexArray(b.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, b.capacityBytes, nil, gl.DYNAMIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribIPointer(0, 3, gl.UNSIGNED_INT, instanceStride, gl.PtrOffset(0))
	gl.VertexAttribDivisor(0, 1)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return b
}

// Upload replaces the buffer contents with the given instances, growing the
// VBO by doubling when they no longer fit. The old contents are never
// needed back, so growth orphans the buffer instead of copying.
func (b *InstanceBuffer) Upload(faces []face.Packed) {
	b.count = int32(len(faces))
	if len(faces) == 0 {
		return
	}
	required := len(faces) * instanceStride

	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	if required > b.capacityBytes {
		for b.capacityBytes < required {
			b.capacityBytes *= 2
		}
		gl.BufferData(gl.ARRAY_BUFFER, b.capacityBytes, nil, gl.DYNAMIC_DRAW)
	}
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, required, gl.Ptr(faces))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// Draw renders all instances as 6-vertex quads. The caller binds the
// program and frame buffer first.
func (b *InstanceBuffer) Draw() {
	if b.count == 0 {
		return
	}
	gl.BindVertexArray(b.vao)
	gl.DrawArraysInstanced(gl.TRIANGLES, 0, 6, b.count)
	gl.BindVertexArray(0)
}

func (b *InstanceBuffer) Delete() {
	if b.vbo != 0 {
		gl.DeleteBuffers(1, &b.vbo)
		b.vbo = 0
	}
	if b.vao != 0 {
		gl.DeleteVertexArrays(1, &b.vao)
		b.vao = 0
	}
	b.count = 0
}

// FrameBuffer mirrors the frame table into a texture buffer the vertex
// shader indexes with each instance's offset word. Each entry is one
// RGBA32I texel: chunk offset in xyz, normal index in w.
type FrameBuffer struct {
	tex           uint32
	buf           uint32
	capacityBytes int
}

func NewFrameBuffer() *FrameBuffer {
	f := &FrameBuffer{capacityBytes: 16 * 1024}
	gl.GenBuffers(1, &f.buf)
	gl.BindBuffer(gl.TEXTURE_BUFFER, f.buf)
	gl.BufferData(gl.TEXTURE_BUFFER, f.capacityBytes, nil, gl.DYNAMIC_DRAW)
	gl.BindBuffer(gl.TEXTURE_BUFFER, 0)

	gl.GenTextures(1, &f.tex)
	gl.BindTexture(gl.TEXTURE_BUFFER, f.tex)
	gl.TexBuffer(gl.TEXTURE_BUFFER, gl.RGBA32I, f.buf)
	gl.BindTexture(gl.TEXTURE_BUFFER, 0)
	return f
}

// Upload pushes the whole table. Freed slots ride along as stale texels;
// nothing references them until they are recycled with fresh data.
func (f *FrameBuffer) Upload(entries []frame.Entry) {
	if len(entries) == 0 {
		return
	}
	texels := make([]int32, 0, len(entries)*4)
	for _, e := range entries {
		texels = append(texels, e.Offset[0], e.Offset[1], e.Offset[2], int32(e.Normal))
	}
	required := len(texels) * int(unsafe.Sizeof(int32(0)))

	gl.BindBuffer(gl.TEXTURE_BUFFER, f.buf)
	if required > f.capacityBytes {
		for f.capacityBytes < required {
			f.capacityBytes *= 2
		}
		gl.BufferData(gl.TEXTURE_BUFFER, f.capacityBytes, nil, gl.DYNAMIC_DRAW)
	}
	gl.BufferSubData(gl.TEXTURE_BUFFER, 0, required, gl.Ptr(texels))
	gl.BindBuffer(gl.TEXTURE_BUFFER, 0)
}

// Bind attaches the frame texture to the given texture unit.
func (f *FrameBuffer) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_BUFFER, f.tex)
}

func (f *FrameBuffer) Delete() {
	if f.tex != 0 {
		gl.DeleteTextures(1, &f.tex)
		f.tex = 0
	}
	if f.buf != 0 {
		gl.DeleteBuffers(1, &f.buf)
		f.buf = 0
	}
}
