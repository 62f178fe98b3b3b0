// Package asset loads the text assets of the viewer.
package asset

import (
	"fmt"
	"os"
)

// Text is the result of loading a text asset.
// Err is set when the content could not be read, in which case Content is
// empty.
type Text struct {
	Path    string
	Content string
	Err     error
}

func (t Text) OK() bool {
	return t.Err == nil
}

// LoadText reads the file at path.
func LoadText(path string) Text {
	b, err := os.ReadFile(path)
	if err != nil {
		return Text{Path: path, Err: fmt.Errorf("reading %s: %w", path, err)}
	}
	return Text{Path: path, Content: string(b)}
}

// ShaderSource loads a shader from path, or returns the built-in source
// when path is empty.
func ShaderSource(path, builtin string) Text {
	if path == "" {
		return Text{Path: "(builtin)", Content: builtin}
	}
	return LoadText(path)
}
