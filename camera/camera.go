// Package camera implements a first-person free-fly camera.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	pitchLimit = 89.0

	defaultYaw   = -90.0
	defaultFov   = 45.0
	defaultNear  = 0.1
	defaultFar   = 100.0
	defaultSpeed = 2.5
)

var (
	defaultPosition = mgl32.Vec3{0, 0, 5}
	worldUp         = mgl32.Vec3{0, 1, 0}
)

// Direction of a camera translation.
type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
)

// Camera is the state of the viewer.
// Yaw, Pitch and Fov are in degrees.
type Camera struct {
	Position mgl32.Vec3
	Front    mgl32.Vec3
	Up       mgl32.Vec3
	Yaw      float32
	Pitch    float32

	// Speed in units per second.
	Speed float32

	Fov       float32
	Near, Far float32
}

func New() *Camera {
	c := &Camera{
		Position: defaultPosition,
		Up:       worldUp,
		Yaw:      defaultYaw,
		Speed:    defaultSpeed,
		Fov:      defaultFov,
		Near:     defaultNear,
		Far:      defaultFar,
	}
	c.updateFront()
	return c
}

// Move translates the camera along the viewing direction or strafes
// sideways for the given duration.
func (c *Camera) Move(d Direction, seconds float32) {
	dist := c.Speed * seconds
	switch d {
	case Forward:
		c.Position = c.Position.Add(c.Front.Mul(dist))
	case Backward:
		c.Position = c.Position.Sub(c.Front.Mul(dist))
	case Left:
		c.Position = c.Position.Sub(c.right().Mul(dist))
	case Right:
		c.Position = c.Position.Add(c.right().Mul(dist))
	}
}

// Look turns the camera by the given yaw and pitch offsets.
// Pitch is clamped so that the view never flips over the poles.
func (c *Camera) Look(dyaw, dpitch float32) {
	c.Yaw += dyaw
	c.Pitch += dpitch
	if c.Pitch > pitchLimit {
		c.Pitch = pitchLimit
	} else if c.Pitch < -pitchLimit {
		c.Pitch = -pitchLimit
	}
	c.updateFront()
}

// SetOrientation sets yaw and pitch directly.
func (c *Camera) SetOrientation(yaw, pitch float32) {
	c.Yaw, c.Pitch = yaw, 0
	c.Look(0, pitch)
}

func (c *Camera) right() mgl32.Vec3 {
	return c.Front.Cross(c.Up).Normalize()
}

func (c *Camera) updateFront() {
	yaw := float64(mgl32.DegToRad(c.Yaw))
	pitch := float64(mgl32.DegToRad(c.Pitch))
	sy, cy := math.Sincos(yaw)
	sp, cp := math.Sincos(pitch)
	c.Front = mgl32.Vec3{
		float32(cy * cp),
		float32(sp),
		float32(sy * cp),
	}.Normalize()
}

// View returns the world-to-view matrix.
func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
}

// Projection returns the perspective projection for the given aspect ratio
// (width / height).
func (c *Camera) Projection(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.Fov), aspect, c.Near, c.Far)
}
