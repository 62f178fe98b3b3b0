package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/spf13/pflag"

	"github.com/seqsense/partviewer/asset"
	"github.com/seqsense/partviewer/config"
	"github.com/seqsense/partviewer/console"
	"github.com/seqsense/partviewer/frame"
	"github.com/seqsense/partviewer/gl"
	"github.com/seqsense/partviewer/input"
	"github.com/seqsense/partviewer/obj"
	"github.com/seqsense/partviewer/scene"
)

func init() {
	// glfw and the GL context must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	var (
		configPath  = pflag.StringP("config", "c", "", "YAML configuration file")
		modelPath   = pflag.String("model", "", "OBJ model file (overrides config)")
		vertexPath  = pflag.String("vertex", "", "vertex shader file (overrides config)")
		fragPath    = pflag.String("fragment", "", "fragment shader file (overrides config)")
		logLevel    = pflag.String("log-level", "info", "log level: debug, info, warn or error")
		withConsole = pflag.Bool("console", false, "read commands from stdin")
	)
	pflag.Parse()

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if *modelPath != "" {
		cfg.Model = *modelPath
	}
	if *vertexPath != "" {
		cfg.Shaders.Vertex = *vertexPath
	}
	if *fragPath != "" {
		cfg.Shaders.Fragment = *fragPath
	}

	if err := run(cfg, *withConsole, logger); err != nil {
		logger.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, withConsole bool, logger *slog.Logger) error {
	bindings, err := gl.ParseBindings(cfg.Keys)
	if err != nil {
		return err
	}

	win, err := gl.NewWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, bindings)
	if err != nil {
		return err
	}
	defer win.Destroy()

	program, err := loadProgram(cfg.Shaders, logger)
	if err != nil {
		return err
	}

	meshes, err := loadModel(cfg.Model, logger)
	if err != nil {
		return err
	}
	defer func() {
		for _, m := range meshes {
			m.Delete()
		}
	}()
	parts := len(meshes)

	state := newState(cfg)
	mapper := input.NewMapper()
	mapper.MoveSpeed = cfg.Parts.MoveSpeed
	mapper.RotateSpeed = cfg.Parts.RotateSpeed
	mapper.Sensitivity = cfg.Camera.Sensitivity

	loop := frame.New(state, mapper, win, newRenderer(program, meshes, cfg), gl.Time, parts, logger)
	win.OnCursorPos(loop.Pointer)
	win.OnFocus(func(focused bool) {
		if focused {
			mapper.ResetPointer()
		}
	})

	if withConsole {
		go func() {
			if err := console.Serve(os.Stdin, os.Stdout, loop.Post); err != nil {
				logger.Warn("console stopped", "error", err)
			}
		}()
	}

	logger.Info("started", "model", cfg.Model, "parts", parts)
	for !win.ShouldClose() {
		loop.Step()
		win.SwapBuffers()
	}
	return nil
}

func newState(cfg *config.Config) *scene.State {
	s := scene.New()

	c := s.Camera
	c.Position = mgl32.Vec3(cfg.Camera.Position)
	c.Speed = cfg.Camera.Speed
	c.Fov = cfg.Camera.Fov
	c.Near, c.Far = cfg.Camera.Near, cfg.Camera.Far
	c.SetOrientation(cfg.Camera.Yaw, cfg.Camera.Pitch)

	for i, pivot := range cfg.Parts.Pivots {
		if p, err := s.Parts.Part(i); err == nil {
			p.Pivot = pivot
		}
	}
	return s
}

// loadProgram builds the shader program. Unreadable sources and compile
// errors are reported and the viewer continues with what was built, unless
// strict mode is enabled.
func loadProgram(cfg config.Shaders, logger *slog.Logger) (*gl.Program, error) {
	vs := asset.ShaderSource(cfg.Vertex, asset.VertexSource)
	fs := asset.ShaderSource(cfg.Fragment, asset.FragmentSource)
	for _, txt := range []asset.Text{vs, fs} {
		if txt.OK() {
			continue
		}
		if cfg.Strict {
			return nil, txt.Err
		}
		logger.Error("failed to read shader", "path", txt.Path, "error", txt.Err)
	}

	program, err := gl.NewProgram(vs.Content, fs.Content)
	if err != nil {
		if cfg.Strict {
			return nil, err
		}
		logger.Error("failed to build shader program", "error", err)
	}
	return program, nil
}

// loadModel uploads each part of the model as a mesh. An unreadable model
// is reported and yields no meshes.
func loadModel(path string, logger *slog.Logger) ([]*gl.Mesh, error) {
	m, err := obj.Load(path)
	if err != nil {
		logger.Error("failed to load model", "path", path, "error", err)
		return nil, nil
	}
	meshes := make([]*gl.Mesh, 0, len(m.Parts))
	for i := range m.Parts {
		mesh, err := gl.NewMesh(m.Parts[i].Vertices)
		if err != nil {
			for _, uploaded := range meshes {
				uploaded.Delete()
			}
			return nil, fmt.Errorf("uploading part %d (%s): %w", i, m.Parts[i].Name, err)
		}
		meshes = append(meshes, mesh)
		logger.Debug("part loaded",
			"index", i, "name", m.Parts[i].Name, "vertices", m.Parts[i].VertexCount(),
		)
	}
	return meshes, nil
}

var _ frame.Window = (*gl.Window)(nil)
