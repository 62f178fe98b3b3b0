package rig

import (
	"math"
	"testing"

	"github.com/seqsense/pcgol/mat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-4

func matEqual(t *testing.T, expected, got mat.Mat4) {
	t.Helper()
	assert.InDeltaSlice(t, expected[:], got[:], eps)
}

func vecEqual(t *testing.T, expected, got mat.Vec3) {
	t.Helper()
	assert.InDeltaSlice(t, expected[:], got[:], eps)
}

func setup(t *testing.T) *Rig {
	t.Helper()
	r := New()
	p1, _ := r.Part(1)
	p1.Position = mat.Vec3{0.4, -0.2, 0.1}
	p2, _ := r.Part(2)
	p2.Pivot = mat.Vec3{0.93, 1.35, -0.25}
	p2.Rotation = mat.Vec3{30, 0, -45}
	p3, _ := r.Part(3)
	p3.Position = mat.Vec3{0, -0.3, 0.3}
	return r
}

func TestWorldMatrix_Identity(t *testing.T) {
	r := New()
	for i := 0; i < NumParts; i++ {
		assert.Equal(t, identity, r.WorldMatrix(i), "part %d", i)
	}
}

func TestWorldMatrix_Pure(t *testing.T) {
	r := setup(t)
	for i := 0; i < NumParts; i++ {
		assert.Equal(t, r.WorldMatrix(i), r.WorldMatrix(i), "part %d", i)
	}
}

func TestWorldMatrix_Root(t *testing.T) {
	r := setup(t)
	matEqual(t, identity, r.WorldMatrix(0))
}

func TestWorldMatrix_OutOfHierarchy(t *testing.T) {
	r := setup(t)
	for _, i := range []int{-1, NumParts, NumParts + 3} {
		assert.Equal(t, identity, r.WorldMatrix(i), "part %d", i)
	}
}

func TestWorldMatrix_Part1(t *testing.T) {
	r := setup(t)
	matEqual(t, mat.Translate(0.4, -0.2, 0.1), r.WorldMatrix(1))
}

func TestWorldMatrix_Swivel(t *testing.T) {
	testCases := map[string]struct {
		part int
		deg  float32
	}{
		"Part2DrivenByRotationZ":      {part: 2, deg: -45},
		"Part3DrivenByPart2RotationX": {part: 3, deg: 30},
	}
	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			r := setup(t)
			s, c := math.Sincos(float64(tt.deg) * math.Pi / 180)
			rot := mat.Mat4{
				1, 0, 0, 0,
				0, float32(c), float32(s), 0,
				0, -float32(s), float32(c), 0,
				0, 0, 0, 1,
			}
			expected := mat.Translate(0.4, -0.2, 0.1).
				Mul(mat.Translate(0.93, 1.35, -0.25)).
				Mul(rot).
				Mul(mat.Translate(-0.93, -1.35, 0.25)).
				Mul(mat.Translate(0, -0.3, 0.3))
			matEqual(t, expected, r.WorldMatrix(tt.part))
		})
	}
}

func TestWorldMatrix_PivotFixed(t *testing.T) {
	r := New()
	p2, _ := r.Part(2)
	p2.Pivot = mat.Vec3{0.93, 1.35, -0.25}

	before := r.WorldMatrix(2).Transform(p2.Pivot)
	for _, deg := range []float32{15, 90, -135, 720} {
		p2.Rotation[2] = deg
		vecEqual(t, before, r.WorldMatrix(2).Transform(p2.Pivot))
	}
	vecEqual(t, p2.Pivot, before)
}

func TestRotateX(t *testing.T) {
	// Right-handed: +90 degrees maps +Y onto +Z.
	vecEqual(t, mat.Vec3{0, 0, 1}, rotateX(90).Transform(mat.Vec3{0, 1, 0}))
	vecEqual(t, mat.Vec3{0, -1, 0}, rotateX(90).Transform(mat.Vec3{0, 0, 1}))
	vecEqual(t, mat.Vec3{1, 0, 0}, rotateX(45).Transform(mat.Vec3{1, 0, 0}))
}

func TestPart(t *testing.T) {
	r := New()
	for i := 0; i < NumParts; i++ {
		p, err := r.Part(i)
		require.NoError(t, err, "part %d", i)
		assert.Equal(t, mat.Vec3{1, 1, 1}, p.Scale, "part %d", i)
	}
	for _, i := range []int{-1, NumParts} {
		_, err := r.Part(i)
		assert.ErrorIs(t, err, ErrPartIndex, "part %d", i)
	}
}

func TestReset(t *testing.T) {
	r := setup(t)
	r.Reset()
	p2, _ := r.Part(2)
	assert.Equal(t, mat.Vec3{0.93, 1.35, -0.25}, p2.Pivot, "pivot is kept")
	assert.Equal(t, mat.Vec3{}, p2.Rotation)
	p1, _ := r.Part(1)
	assert.Equal(t, mat.Vec3{}, p1.Position)
}
