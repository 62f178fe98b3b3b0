// Package input maps key and pointer input onto the scene state.
package input

import (
	"github.com/seqsense/partviewer/camera"
	"github.com/seqsense/partviewer/scene"
)

const (
	defaultMoveSpeed   = 1.5
	defaultRotateSpeed = 50.0
	defaultSensitivity = 0.1
)

// Mapper applies input to a scene.
// All motions are scaled by the elapsed time of the frame.
type Mapper struct {
	// MoveSpeed is the part translation speed in units per second.
	MoveSpeed float32
	// RotateSpeed is the part rotation speed in degrees per second.
	RotateSpeed float32
	// Sensitivity converts pointer movement into degrees.
	Sensitivity float32

	pointer pointer
}

func NewMapper() *Mapper {
	return &Mapper{
		MoveSpeed:   defaultMoveSpeed,
		RotateSpeed: defaultRotateSpeed,
		Sensitivity: defaultSensitivity,
	}
}

var cameraKeys = [...]struct {
	action Action
	dir    camera.Direction
}{
	{CameraForward, camera.Forward},
	{CameraBackward, camera.Backward},
	{CameraLeft, camera.Left},
	{CameraRight, camera.Right},
}

// ApplyFrame applies the pressed keys held for the given duration.
func (m *Mapper) ApplyFrame(s *scene.State, keys Keys, seconds float32) {
	for _, k := range cameraKeys {
		if keys.Pressed(k.action) {
			s.Camera.Move(k.dir, seconds)
		}
	}

	move := m.MoveSpeed * seconds
	rotate := m.RotateSpeed * seconds

	p1, _ := s.Parts.Part(1)
	p2, _ := s.Parts.Part(2)
	p3, _ := s.Parts.Part(3)

	if keys.Pressed(Part1Plus) {
		p1.Position[0] += move
	}
	if keys.Pressed(Part1Minus) {
		p1.Position[0] -= move
	}

	// Part 3 slides diagonally in the Y-Z plane.
	if keys.Pressed(Part3Plus) {
		p3.Position[2] += move
		p3.Position[1] -= move
	}
	if keys.Pressed(Part3Minus) {
		p3.Position[2] -= move
		p3.Position[1] += move
	}

	if keys.Pressed(Part2RotatePlus) {
		p2.Rotation[0] += rotate
	}
	if keys.Pressed(Part2RotateMinus) {
		p2.Rotation[0] -= rotate
	}
}

// ApplyMouseDelta turns the camera by a pointer movement.
// dy is positive upwards.
func (m *Mapper) ApplyMouseDelta(s *scene.State, dx, dy float32) {
	s.Camera.Look(dx*m.Sensitivity, dy*m.Sensitivity)
}

// ApplyPointer turns the camera by the movement from the previous pointer
// position. The first position after a reset only seeds the tracker.
func (m *Mapper) ApplyPointer(s *scene.State, x, y float64) {
	dx, dy, ok := m.pointer.delta(x, y)
	if !ok {
		return
	}
	m.ApplyMouseDelta(s, dx, dy)
}

// ResetPointer forgets the previous pointer position.
func (m *Mapper) ResetPointer() {
	m.pointer = pointer{}
}

type pointer struct {
	seeded       bool
	lastX, lastY float64
}

// delta returns the movement since the previous sample, with Y flipped so
// that moving the pointer up is positive.
func (p *pointer) delta(x, y float64) (float32, float32, bool) {
	if !p.seeded {
		p.seeded = true
		p.lastX, p.lastY = x, y
		return 0, 0, false
	}
	dx := float32(x - p.lastX)
	dy := float32(p.lastY - y)
	p.lastX, p.lastY = x, y
	return dx, dy, true
}
