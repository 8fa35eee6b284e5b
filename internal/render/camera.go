package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"voxquad/internal/frame"
)

// Camera is a free-flying viewpoint. The position is kept in float64 so the
// camera itself never loses precision; reconstruction only ever sees the
// block/sub-block split.
type Camera struct {
	X, Y, Z float64
	Yaw     float32 // degrees, 0 looks down -Z
	Pitch   float32 // degrees, clamped to avoid gimbal flip

	FOV       float32
	Aspect    float32
	NearPlane float32
	FarPlane  float32
}

func NewCamera(width, height int) *Camera {
	return &Camera{
		Yaw:       0,
		Pitch:     0,
		FOV:       60.0,
		Aspect:    float32(width) / float32(height),
		NearPlane: 0.1,
		FarPlane:  1000.0,
	}
}

// Direction is the unit look vector for the current yaw and pitch.
func (c *Camera) Direction() mgl32.Vec3 {
	yaw := float64(mgl32.DegToRad(c.Yaw))
	pitch := float64(mgl32.DegToRad(c.Pitch))
	return mgl32.Vec3{
		float32(math.Sin(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(-math.Cos(yaw) * math.Cos(pitch)),
	}.Normalize()
}

// Rotate applies mouse deltas and clamps pitch.
func (c *Camera) Rotate(dyaw, dpitch float32) {
	c.Yaw += dyaw
	c.Pitch += dpitch
	if c.Pitch > 89 {
		c.Pitch = 89
	}
	if c.Pitch < -89 {
		c.Pitch = -89
	}
}

// Move translates the camera in its own horizontal frame: forward follows
// the look direction projected onto the ground plane, up is world up.
func (c *Camera) Move(forward, right, up float32) {
	yaw := float64(mgl32.DegToRad(c.Yaw))
	sin, cos := math.Sin(yaw), math.Cos(yaw)
	c.X += float64(forward)*sin + float64(right)*cos
	c.Z += -float64(forward)*cos + float64(right)*sin
	c.Y += float64(up)
}

// View is the rotation-only view matrix. Reconstructed positions are
// already camera-relative, so the eye sits at the origin.
func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(mgl32.Vec3{}, c.Direction(), mgl32.Vec3{0, 1, 0})
}

func (c *Camera) Projection() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.Aspect, c.NearPlane, c.FarPlane)
}

// Context assembles the per-frame uniform state for this viewpoint.
func (c *Camera) Context(fogColor mgl32.Vec3, fogStart, fogEnd float32) *frame.Context {
	block, offset := frame.SplitCamera(c.X, c.Y, c.Z)
	return &frame.Context{
		View:         c.View(),
		Projection:   c.Projection(),
		Modulate:     mgl32.Vec4{1, 1, 1, 1},
		CameraBlock:  block,
		CameraOffset: offset,
		FogColor:     fogColor,
		FogStart:     fogStart,
		FogEnd:       fogEnd,
	}
}
