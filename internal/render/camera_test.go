package render

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestCameraDirectionDefaults(t *testing.T) {
	c := NewCamera(800, 600)
	dir := c.Direction()
	want := mgl32.Vec3{0, 0, -1}
	if !dir.ApproxEqualThreshold(want, 1e-6) {
		t.Fatalf("default direction = %v, want %v", dir, want)
	}
}

func TestCameraPitchClamp(t *testing.T) {
	c := NewCamera(800, 600)
	c.Rotate(0, 500)
	if c.Pitch != 89 {
		t.Fatalf("pitch clamped to %v, want 89", c.Pitch)
	}
	c.Rotate(0, -1000)
	if c.Pitch != -89 {
		t.Fatalf("pitch clamped to %v, want -89", c.Pitch)
	}
}

func TestCameraMoveFollowsYaw(t *testing.T) {
	c := NewCamera(800, 600)
	c.Move(1, 0, 0)
	if math.Abs(c.Z+1) > 1e-9 || math.Abs(c.X) > 1e-9 {
		t.Fatalf("forward at yaw 0 moved to (%v,%v), want (0,-1)", c.X, c.Z)
	}

	c = NewCamera(800, 600)
	c.Yaw = 90
	c.Move(1, 0, 0)
	if math.Abs(c.X-1) > 1e-6 || math.Abs(c.Z) > 1e-6 {
		t.Fatalf("forward at yaw 90 moved to (%v,%v), want (1,0)", c.X, c.Z)
	}
}

func TestCameraContextSplit(t *testing.T) {
	c := NewCamera(800, 600)
	c.X, c.Y, c.Z = 100000.25, -3.5, 7
	ctx := c.Context(mgl32.Vec3{0.5, 0.5, 0.6}, 32, 256)
	if ctx.CameraBlock != [3]int32{100000, -4, 7} {
		t.Fatalf("camera block = %v", ctx.CameraBlock)
	}
	want := mgl32.Vec3{0.25, 0.5, 0}
	if !ctx.CameraOffset.ApproxEqualThreshold(want, 1e-6) {
		t.Fatalf("camera offset = %v, want %v", ctx.CameraOffset, want)
	}
	if ctx.FogStart != 32 || ctx.FogEnd != 256 {
		t.Fatalf("fog range = (%v,%v)", ctx.FogStart, ctx.FogEnd)
	}
}

func TestFrustumCullsBehindCamera(t *testing.T) {
	c := NewCamera(800, 600)
	f := ExtractFrustum(c.Projection().Mul4(c.View()))

	// Default camera looks down -Z from the origin.
	front := mgl32.Vec3{-16, -16, -200}
	if !f.ContainsAABB(front, front.Add(mgl32.Vec3{32, 32, 32})) {
		t.Fatal("box in front of the camera culled")
	}
	behind := mgl32.Vec3{-16, -16, 100}
	if f.ContainsAABB(behind, behind.Add(mgl32.Vec3{32, 32, 32})) {
		t.Fatal("box behind the camera survived culling")
	}
}

func TestFrustumChunkTest(t *testing.T) {
	c := NewCamera(800, 600)
	c.X, c.Y, c.Z = 16, 16, 16 // inside chunk (0,0,0)
	ctx := c.Context(mgl32.Vec3{}, 32, 256)
	f := ExtractFrustum(ctx.Projection.Mul4(ctx.View))

	// The chunk containing the camera always intersects the frustum.
	if !f.ContainsChunk([3]int32{0, 0, 0}, ctx.CameraBlock, ctx.CameraOffset) {
		t.Fatal("containing chunk culled")
	}
	// A chunk two chunks behind the camera (+Z) must be culled.
	if f.ContainsChunk([3]int32{0, 0, 2}, ctx.CameraBlock, ctx.CameraOffset) {
		t.Fatal("chunk behind the camera survived culling")
	}
}
