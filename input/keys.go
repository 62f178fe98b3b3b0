package input

import (
	"fmt"
)

// Action is a key-driven operation of the viewer.
type Action int

const (
	CameraForward Action = iota
	CameraBackward
	CameraLeft
	CameraRight
	Part1Plus
	Part1Minus
	Part3Plus
	Part3Minus
	Part2RotatePlus
	Part2RotateMinus
	Quit

	numActions
)

var actionNames = [numActions]string{
	CameraForward:    "camera_forward",
	CameraBackward:   "camera_backward",
	CameraLeft:       "camera_left",
	CameraRight:      "camera_right",
	Part1Plus:        "part1_plus",
	Part1Minus:       "part1_minus",
	Part3Plus:        "part3_plus",
	Part3Minus:       "part3_minus",
	Part2RotatePlus:  "part2_rotate_plus",
	Part2RotateMinus: "part2_rotate_minus",
	Quit:             "quit",
}

func (a Action) String() string {
	if a < 0 || a >= numActions {
		return fmt.Sprintf("Action(%d)", int(a))
	}
	return actionNames[a]
}

// Actions returns all actions in declaration order.
func Actions() []Action {
	as := make([]Action, numActions)
	for i := range as {
		as[i] = Action(i)
	}
	return as
}

// ParseAction returns the action named s.
func ParseAction(s string) (Action, error) {
	for i, n := range actionNames {
		if n == s {
			return Action(i), nil
		}
	}
	return 0, fmt.Errorf("unknown action %q", s)
}

// Keys is a snapshot of pressed actions.
type Keys [numActions]bool

func (k *Keys) Press(as ...Action) {
	for _, a := range as {
		k[a] = true
	}
}

func (k Keys) Pressed(a Action) bool {
	return k[a]
}
