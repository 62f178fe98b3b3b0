// Package rig holds the local transforms of the model parts and resolves
// their world matrices along the fixed part hierarchy.
package rig

import (
	"errors"
	"math"

	"github.com/seqsense/pcgol/mat"
)

// NumParts is the number of parts the hierarchy is authored for.
const NumParts = 4

var ErrPartIndex = errors.New("part index out of range")

var identity = mat.Translate(0, 0, 0)

// PartTransform is the local transform of a part.
// Rotation is in degrees.
type PartTransform struct {
	Position mat.Vec3
	Rotation mat.Vec3
	Scale    mat.Vec3
	Pivot    mat.Vec3
}

func NewPartTransform() PartTransform {
	return PartTransform{
		Scale: mat.Vec3{1, 1, 1},
	}
}

type Rig struct {
	parts [NumParts]PartTransform
}

func New() *Rig {
	r := &Rig{}
	r.Reset()
	return r
}

// Reset restores all parts to the default transform.
// Pivots are kept.
func (r *Rig) Reset() {
	for i := range r.parts {
		pivot := r.parts[i].Pivot
		r.parts[i] = NewPartTransform()
		r.parts[i].Pivot = pivot
	}
}

// Part returns a mutable reference to the transform of the i-th part.
func (r *Rig) Part(i int) (*PartTransform, error) {
	if i < 0 || i >= NumParts {
		return nil, ErrPartIndex
	}
	return &r.parts[i], nil
}

// WorldMatrix composes the world matrix of the i-th part.
//
// Part 0 is the root. Part 1 is translated from the root. Parts 2 and 3 are
// translated by part 1, swiveled about part 2's pivot around the X axis, and
// then translated by part 3's position. Part 2 is driven by part 2's Z
// rotation and part 3 by part 2's X rotation.
// Indices out of the hierarchy resolve to identity.
func (r *Rig) WorldMatrix(i int) mat.Mat4 {
	switch i {
	case 1:
		return translate(r.parts[1].Position)
	case 2:
		return r.swivel(r.parts[2].Rotation[2])
	case 3:
		return r.swivel(r.parts[2].Rotation[0])
	default:
		return identity
	}
}

func (r *Rig) swivel(deg float32) mat.Mat4 {
	pivot := r.parts[2].Pivot
	return translate(r.parts[1].Position).
		Mul(translate(pivot)).
		Mul(rotateX(deg)).
		Mul(translate(pivot.Mul(-1))).
		Mul(translate(r.parts[3].Position))
}

func translate(v mat.Vec3) mat.Mat4 {
	return mat.Translate(v[0], v[1], v[2])
}

// rotateX returns a right-handed rotation about the X axis.
func rotateX(deg float32) mat.Mat4 {
	s, c := math.Sincos(float64(deg) * math.Pi / 180)
	sf, cf := float32(s), float32(c)
	return mat.Mat4{
		1, 0, 0, 0,
		0, cf, sf, 0,
		0, -sf, cf, 0,
		0, 0, 0, 1,
	}
}
