// Package console implements text commands to inspect and edit the scene.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/seqsense/pcgol/mat"

	"github.com/seqsense/partviewer/rig"
	"github.com/seqsense/partviewer/scene"
)

var (
	ErrArgumentNumber = errors.New("invalid number of arguments")
	ErrInvalidCommand = errors.New("invalid command")
	errPartIndex      = errors.New("part index must be an integer")
)

type command func(s *scene.State, args []float32) ([][]float32, error)

var commands = map[string]command{
	"part": func(s *scene.State, args []float32) ([][]float32, error) {
		if len(args) != 1 {
			return nil, ErrArgumentNumber
		}
		p, err := part(s, args[0])
		if err != nil {
			return nil, err
		}
		return [][]float32{
			p.Position[:], p.Rotation[:], p.Scale[:], p.Pivot[:],
		}, nil
	},
	"position": partField(func(p *rig.PartTransform) *mat.Vec3 { return &p.Position }),
	"rotation": partField(func(p *rig.PartTransform) *mat.Vec3 { return &p.Rotation }),
	"pivot":    partField(func(p *rig.PartTransform) *mat.Vec3 { return &p.Pivot }),
	"camera": func(s *scene.State, args []float32) ([][]float32, error) {
		c := s.Camera
		switch len(args) {
		case 0:
		case 5:
			c.Position = mgl32.Vec3{args[0], args[1], args[2]}
			c.SetOrientation(args[3], args[4])
		default:
			return nil, ErrArgumentNumber
		}
		return [][]float32{{c.Position[0], c.Position[1], c.Position[2], c.Yaw, c.Pitch}}, nil
	},
	"reset": func(s *scene.State, args []float32) ([][]float32, error) {
		if len(args) != 0 {
			return nil, ErrArgumentNumber
		}
		s.Parts.Reset()
		return nil, nil
	},
}

// partField returns a command getting or setting a vector of a part.
func partField(field func(*rig.PartTransform) *mat.Vec3) command {
	return func(s *scene.State, args []float32) ([][]float32, error) {
		switch len(args) {
		case 1, 4:
		default:
			return nil, ErrArgumentNumber
		}
		p, err := part(s, args[0])
		if err != nil {
			return nil, err
		}
		v := field(p)
		if len(args) == 4 {
			*v = mat.Vec3{args[1], args[2], args[3]}
		}
		return [][]float32{v[:]}, nil
	}
}

func part(s *scene.State, arg float32) (*rig.PartTransform, error) {
	i := int(arg)
	if float32(i) != arg {
		return nil, errPartIndex
	}
	return s.Parts.Part(i)
}

// Run executes a command line on the state.
func Run(s *scene.State, line string) (string, error) {
	args := strings.Fields(line)
	if len(args) == 0 {
		return "", nil
	}
	fn, ok := commands[args[0]]
	if !ok {
		return "", ErrInvalidCommand
	}
	var argsFloat []float32
	for i := 1; i < len(args); i++ {
		f, err := strconv.ParseFloat(args[i], 32)
		if err != nil {
			return "", err
		}
		argsFloat = append(argsFloat, float32(f))
	}
	res, err := fn(s, argsFloat)
	if err != nil {
		return "", err
	}
	var resStr []string
	for _, vv := range res {
		var resLine []string
		for _, v := range vv {
			resLine = append(resLine, strconv.FormatFloat(float64(v), 'f', 3, 32))
		}
		resStr = append(resStr, strings.Join(resLine, " "))
	}
	return strings.Join(resStr, "\n"), nil
}

// Serve reads command lines from r until EOF. Each line is handed to post,
// which must run it on the goroutine owning the state; replies go to w.
func Serve(r io.Reader, w io.Writer, post func(func(*scene.State))) error {
	s := bufio.NewScanner(r)
	for s.Scan() {
		line := s.Text()
		post(func(st *scene.State) {
			res, err := Run(st, line)
			switch {
			case err != nil:
				fmt.Fprintf(w, "error: %v\n", err)
			case res != "":
				fmt.Fprintln(w, res)
			}
		})
	}
	return s.Err()
}
