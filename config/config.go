// Package config loads the viewer configuration.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/seqsense/partviewer/input"
	"github.com/seqsense/partviewer/rig"
)

type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// Shaders are the GLSL source files.
// Empty paths select the built-in sources.
type Shaders struct {
	Vertex   string `yaml:"vertex"`
	Fragment string `yaml:"fragment"`
	// Strict makes unreadable or invalid shaders fatal.
	Strict bool `yaml:"strict"`
}

type Camera struct {
	Position    [3]float32 `yaml:"position"`
	Yaw         float32    `yaml:"yaw"`
	Pitch       float32    `yaml:"pitch"`
	Speed       float32    `yaml:"speed"`
	Sensitivity float32    `yaml:"sensitivity"`
	Fov         float32    `yaml:"fov"`
	Near        float32    `yaml:"near"`
	Far         float32    `yaml:"far"`
}

type Parts struct {
	MoveSpeed   float32            `yaml:"move_speed"`
	RotateSpeed float32            `yaml:"rotate_speed"`
	Pivots      map[int][3]float32 `yaml:"pivots"`
}

type Light struct {
	Position [3]float32 `yaml:"position"`
	Ambient  [3]float32 `yaml:"ambient"`
	Diffuse  [3]float32 `yaml:"diffuse"`
	Specular [3]float32 `yaml:"specular"`
}

type Material struct {
	Ambient   [3]float32 `yaml:"ambient"`
	Diffuse   [3]float32 `yaml:"diffuse"`
	Specular  [3]float32 `yaml:"specular"`
	Shininess float32    `yaml:"shininess"`
}

type Config struct {
	Window     Window            `yaml:"window"`
	Model      string            `yaml:"model"`
	Shaders    Shaders           `yaml:"shaders"`
	Camera     Camera            `yaml:"camera"`
	Parts      Parts             `yaml:"parts"`
	ClearColor [4]float32        `yaml:"clear_color"`
	Light      Light             `yaml:"light"`
	Material   Material          `yaml:"material"`
	Keys       map[string]string `yaml:"keys"`
}

func Default() *Config {
	return &Config{
		Window: Window{
			Width:  1280,
			Height: 720,
			Title:  "3D Model Transformations",
		},
		Model: "Lab_3.obj",
		Camera: Camera{
			Position:    [3]float32{0, 0, 5},
			Yaw:         -90,
			Speed:       2.5,
			Sensitivity: 0.1,
			Fov:         45,
			Near:        0.1,
			Far:         100,
		},
		Parts: Parts{
			MoveSpeed:   1.5,
			RotateSpeed: 50,
			Pivots: map[int][3]float32{
				2: {0.93, 1.35, -0.25},
			},
		},
		ClearColor: [4]float32{0.5, 0.2, 0.7, 1},
		Light: Light{
			Position: [3]float32{1.2, 1, 2},
			Ambient:  [3]float32{1, 0.8, 0.6},
			Diffuse:  [3]float32{1, 0.8, 0.6},
			Specular: [3]float32{1, 1, 1},
		},
		Material: Material{
			Ambient:   [3]float32{1, 1, 1},
			Diffuse:   [3]float32{1, 1, 1},
			Specular:  [3]float32{1, 1, 1},
			Shininess: 32,
		},
		Keys: map[string]string{
			input.CameraForward.String():    "W",
			input.CameraBackward.String():   "S",
			input.CameraLeft.String():       "A",
			input.CameraRight.String():      "D",
			input.Part1Plus.String():        "Y",
			input.Part1Minus.String():       "H",
			input.Part3Plus.String():        "I",
			input.Part3Minus.String():       "K",
			input.Part2RotatePlus.String():  "U",
			input.Part2RotateMinus.String(): "J",
			input.Quit.String():             "ESCAPE",
		},
	}
}

// Load reads a YAML file over the defaults.
// An empty path returns the defaults.
func Load(path string) (*Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

var (
	errWindowSize = errors.New("window size must be positive")
	errClipRange  = errors.New("camera near must be positive and less than far")
	errFov        = errors.New("camera fov must be in (0, 180)")
	errPivotPart  = errors.New("pivot part index out of range")
)

func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return errWindowSize
	}
	if c.Camera.Near <= 0 || c.Camera.Near >= c.Camera.Far {
		return errClipRange
	}
	if c.Camera.Fov <= 0 || c.Camera.Fov >= 180 {
		return errFov
	}
	for i := range c.Parts.Pivots {
		if i < 0 || i >= rig.NumParts {
			return fmt.Errorf("%w: %d", errPivotPart, i)
		}
	}
	for name := range c.Keys {
		if _, err := input.ParseAction(name); err != nil {
			return err
		}
	}
	return nil
}
