package gl

import (
	"fmt"
	"strings"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/seqsense/partviewer/input"
)

var namedKeys = map[string]glfw.Key{
	"ESCAPE":    glfw.KeyEscape,
	"SPACE":     glfw.KeySpace,
	"ENTER":     glfw.KeyEnter,
	"TAB":       glfw.KeyTab,
	"UP":        glfw.KeyUp,
	"DOWN":      glfw.KeyDown,
	"LEFT":      glfw.KeyLeft,
	"RIGHT":     glfw.KeyRight,
	"PAGE_UP":   glfw.KeyPageUp,
	"PAGE_DOWN": glfw.KeyPageDown,
	"HOME":      glfw.KeyHome,
	"END":       glfw.KeyEnd,
}

// ParseKey returns the key named s: a letter, a digit, or one of the
// named keys.
func ParseKey(s string) (glfw.Key, error) {
	s = strings.ToUpper(s)
	if len(s) == 1 {
		switch c := s[0]; {
		case 'A' <= c && c <= 'Z':
			return glfw.KeyA + glfw.Key(c-'A'), nil
		case '0' <= c && c <= '9':
			return glfw.Key0 + glfw.Key(c-'0'), nil
		}
	}
	if k, ok := namedKeys[s]; ok {
		return k, nil
	}
	return glfw.KeyUnknown, fmt.Errorf("unknown key %q", s)
}

// Bindings maps actions to keys.
type Bindings map[input.Action]glfw.Key

// ParseBindings parses action name to key name pairs.
func ParseBindings(m map[string]string) (Bindings, error) {
	b := make(Bindings, len(m))
	for action, key := range m {
		a, err := input.ParseAction(action)
		if err != nil {
			return nil, err
		}
		k, err := ParseKey(key)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", action, err)
		}
		b[a] = k
	}
	return b, nil
}
