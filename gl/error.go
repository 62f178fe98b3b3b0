package gl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

type Error struct {
	Number uint32
}

func (e *Error) Error() string {
	switch e.Number {
	case gl.INVALID_ENUM:
		return "invalid enum"
	case gl.INVALID_VALUE:
		return "invalid value"
	case gl.INVALID_OPERATION:
		return "invalid operation"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "invalid framebuffer operation"
	case gl.OUT_OF_MEMORY:
		return "out of memory"
	default:
		return fmt.Sprintf("unknown %d", e.Number)
	}
}

// GetError returns the oldest pending GL error, or nil.
func GetError() error {
	if n := gl.GetError(); n != gl.NO_ERROR {
		return &Error{Number: n}
	}
	return nil
}
