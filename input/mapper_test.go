package input

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/seqsense/pcgol/mat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seqsense/partviewer/scene"
)

const eps = 1e-4

func parts(s *scene.State) (p1, p2, p3 mat.Vec3, rot2 mat.Vec3) {
	a, _ := s.Parts.Part(1)
	b, _ := s.Parts.Part(2)
	c, _ := s.Parts.Part(3)
	return a.Position, b.Position, c.Position, b.Rotation
}

func TestApplyFrame(t *testing.T) {
	testCases := map[string]struct {
		keys    []Action
		seconds float32
		part1   mat.Vec3
		part3   mat.Vec3
		rot2    mat.Vec3
		camera  mgl32.Vec3
	}{
		"Part3Plus": {
			keys:    []Action{Part3Plus},
			seconds: 1,
			part3:   mat.Vec3{0, -1.5, 1.5},
			camera:  mgl32.Vec3{0, 0, 5},
		},
		"Part3Minus": {
			keys:    []Action{Part3Minus},
			seconds: 1,
			part3:   mat.Vec3{0, 1.5, -1.5},
			camera:  mgl32.Vec3{0, 0, 5},
		},
		"Part3Both": {
			keys:    []Action{Part3Plus, Part3Minus},
			seconds: 1,
			camera:  mgl32.Vec3{0, 0, 5},
		},
		"Part1": {
			keys:    []Action{Part1Plus},
			seconds: 2,
			part1:   mat.Vec3{3, 0, 0},
			camera:  mgl32.Vec3{0, 0, 5},
		},
		"Part1Minus": {
			keys:    []Action{Part1Minus},
			seconds: 0.5,
			part1:   mat.Vec3{-0.75, 0, 0},
			camera:  mgl32.Vec3{0, 0, 5},
		},
		"Part2Rotate": {
			keys:    []Action{Part2RotatePlus},
			seconds: 2,
			rot2:    mat.Vec3{100, 0, 0},
			camera:  mgl32.Vec3{0, 0, 5},
		},
		"Part2RotateMinus": {
			keys:    []Action{Part2RotateMinus},
			seconds: 0.1,
			rot2:    mat.Vec3{-5, 0, 0},
			camera:  mgl32.Vec3{0, 0, 5},
		},
		"CameraForward": {
			keys:    []Action{CameraForward},
			seconds: 1,
			camera:  mgl32.Vec3{0, 0, 2.5},
		},
		"CameraForwardRight": {
			keys:    []Action{CameraForward, CameraRight},
			seconds: 1,
			camera:  mgl32.Vec3{2.5, 0, 2.5},
		},
		"CameraBackwardLeft": {
			keys:    []Action{CameraBackward, CameraLeft},
			seconds: 2,
			camera:  mgl32.Vec3{-5, 0, 10},
		},
		"QuitOnly": {
			keys:    []Action{Quit},
			seconds: 1,
			camera:  mgl32.Vec3{0, 0, 5},
		},
	}
	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			s := scene.New()
			m := NewMapper()
			var k Keys
			k.Press(tt.keys...)
			m.ApplyFrame(s, k, tt.seconds)

			p1, _, p3, rot2 := parts(s)
			assert.InDeltaSlice(t, tt.part1[:], p1[:], eps, "part 1 position")
			assert.InDeltaSlice(t, tt.part3[:], p3[:], eps, "part 3 position")
			assert.InDeltaSlice(t, tt.rot2[:], rot2[:], eps, "part 2 rotation")
			assert.InDeltaSlice(t, tt.camera[:], s.Camera.Position[:], eps, "camera position")
		})
	}
}

func TestApplyFrame_FrameRateIndependent(t *testing.T) {
	var k Keys
	k.Press(CameraForward, CameraLeft, Part1Plus, Part3Plus)

	split := []float32{0.3, 0.45}

	s1 := scene.New()
	m1 := NewMapper()
	for _, dt := range split {
		m1.ApplyFrame(s1, k, dt)
	}

	s2 := scene.New()
	m2 := NewMapper()
	m2.ApplyFrame(s2, k, split[0]+split[1])

	a1, _, a3, _ := parts(s1)
	b1, _, b3, _ := parts(s2)
	assert.InDeltaSlice(t, b1[:], a1[:], eps, "part 1")
	assert.InDeltaSlice(t, b3[:], a3[:], eps, "part 3")
	assert.InDeltaSlice(t, s2.Camera.Position[:], s1.Camera.Position[:], eps, "camera")
}

func TestApplyMouseDelta_PitchClamp(t *testing.T) {
	s := scene.New()
	m := NewMapper()
	for i := 0; i < 1000; i++ {
		m.ApplyMouseDelta(s, 7, 123)
		if s.Camera.Pitch > 89 || s.Camera.Pitch < -89 {
			t.Fatalf("pitch out of range: %f", s.Camera.Pitch)
		}
	}
	for i := 0; i < 1000; i++ {
		m.ApplyMouseDelta(s, 0, -456)
		if s.Camera.Pitch > 89 || s.Camera.Pitch < -89 {
			t.Fatalf("pitch out of range: %f", s.Camera.Pitch)
		}
	}
	assert.Equal(t, float32(-89), s.Camera.Pitch)
}

func TestApplyMouseDelta_Sensitivity(t *testing.T) {
	s := scene.New()
	m := NewMapper()
	m.ApplyMouseDelta(s, 100, 50)
	assert.InDelta(t, -80, s.Camera.Yaw, eps)
	assert.InDelta(t, 5, s.Camera.Pitch, eps)
}

func TestApplyPointer(t *testing.T) {
	s := scene.New()
	m := NewMapper()

	// First sample only seeds, however far from the window center it is.
	m.ApplyPointer(s, 1000, -2000)
	require.Equal(t, float32(-90), s.Camera.Yaw, "first sample must not turn the camera")
	require.Equal(t, float32(0), s.Camera.Pitch, "first sample must not turn the camera")

	// Moving the pointer right and up.
	m.ApplyPointer(s, 1010, -2020)
	assert.InDelta(t, -89, s.Camera.Yaw, eps)
	assert.InDelta(t, 2, s.Camera.Pitch, eps)

	m.ResetPointer()
	m.ApplyPointer(s, 0, 0)
	assert.InDelta(t, -89, s.Camera.Yaw, eps, "sample after reset must not turn the camera")
}

func TestParseAction(t *testing.T) {
	for _, a := range Actions() {
		b, err := ParseAction(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, b)
	}
	_, err := ParseAction("jump")
	assert.Error(t, err)
}
