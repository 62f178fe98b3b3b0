// Package frame drives one iteration of the viewer per displayed frame.
package frame

import (
	"log/slog"

	"github.com/seqsense/pcgol/mat"

	"github.com/seqsense/partviewer/input"
	"github.com/seqsense/partviewer/rig"
	"github.com/seqsense/partviewer/scene"
)

// Frame is what the renderer draws.
type Frame struct {
	View       mat.Mat4
	Projection mat.Mat4
	Eye        mat.Vec3
	// World holds one matrix per model part.
	World []mat.Mat4
}

type Window interface {
	Keys() input.Keys
	FramebufferSize() (width, height int)
	SetShouldClose(bool)
}

type Renderer interface {
	Render(*Frame)
}

// Clock returns monotonic time in seconds.
type Clock func() float64

type Loop struct {
	state    *scene.State
	mapper   *input.Mapper
	window   Window
	renderer Renderer
	clock    Clock

	commands chan func(*scene.State)

	started bool
	last    float64
	frame   Frame
}

// New creates a loop drawing parts model parts.
func New(s *scene.State, m *input.Mapper, w Window, r Renderer, clock Clock, parts int, logger *slog.Logger) *Loop {
	if parts != rig.NumParts {
		logger.Warn("model part count differs from the rig hierarchy",
			"parts", parts, "rig", rig.NumParts,
		)
	}
	return &Loop{
		state:    s,
		mapper:   m,
		window:   w,
		renderer: r,
		clock:    clock,
		commands: make(chan func(*scene.State), 16),
		frame: Frame{
			World: make([]mat.Mat4, parts),
		},
	}
}

// Post queues fn to run on the loop at the beginning of the next frame.
// It is safe to call from any goroutine.
func (l *Loop) Post(fn func(*scene.State)) {
	l.commands <- fn
}

// Pointer applies an absolute pointer position.
func (l *Loop) Pointer(x, y float64) {
	l.mapper.ApplyPointer(l.state, x, y)
}

// Step runs one frame.
func (l *Loop) Step() {
	now := l.clock()
	var dt float32
	if l.started {
		dt = float32(now - l.last)
	}
	l.started = true
	l.last = now

	l.drain()

	keys := l.window.Keys()
	if keys.Pressed(input.Quit) {
		l.window.SetShouldClose(true)
	}
	l.mapper.ApplyFrame(l.state, keys, dt)

	for i := range l.frame.World {
		l.frame.World[i] = l.state.Parts.WorldMatrix(i)
	}

	w, h := l.window.FramebufferSize()
	aspect := float32(1)
	if h > 0 {
		aspect = float32(w) / float32(h)
	}
	cam := l.state.Camera
	l.frame.View = mat.Mat4(cam.View())
	l.frame.Projection = mat.Mat4(cam.Projection(aspect))
	l.frame.Eye = mat.Vec3(cam.Position)

	l.renderer.Render(&l.frame)
}

func (l *Loop) drain() {
	for {
		select {
		case fn := <-l.commands:
			fn(l.state)
		default:
			return
		}
	}
}
