// Package scene bundles the mutable state owned by the frame loop.
package scene

import (
	"github.com/seqsense/partviewer/camera"
	"github.com/seqsense/partviewer/rig"
)

// State is read and written by a single goroutine, once per frame.
type State struct {
	Parts  *rig.Rig
	Camera *camera.Camera
}

func New() *State {
	return &State{
		Parts:  rig.New(),
		Camera: camera.New(),
	}
}
