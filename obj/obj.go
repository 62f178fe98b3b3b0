// Package obj parses Wavefront OBJ models into drawable parts.
//
// Each object ("o") or group ("g") statement starts a new part. Faces are
// triangulated as fans and flattened into interleaved position and normal
// attributes. Materials, texture coordinates and other statements are
// ignored.
package obj

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/seqsense/pcgol/mat"
)

// Stride is the number of floats per vertex: position then normal.
const Stride = 6

var (
	ErrNoVertices = errors.New("model has no faces")
	errSyntax     = errors.New("syntax error")
)

// Part is a sub-mesh of a model.
type Part struct {
	Name string
	// Vertices holds Stride floats per vertex, three vertices per triangle.
	Vertices []float32
}

// VertexCount returns the number of vertices.
func (p *Part) VertexCount() int {
	return len(p.Vertices) / Stride
}

type Model struct {
	Parts []Part
}

// Load reads the OBJ file at path.
func Load(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	m, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

type decoder struct {
	positions []mat.Vec3
	normals   []mat.Vec3
	parts     []Part
	cur       *Part
	line      int
}

// Decode parses an OBJ stream.
func Decode(r io.Reader) (*Model, error) {
	d := &decoder{}
	s := bufio.NewScanner(r)
	for s.Scan() {
		d.line++
		if err := d.parseLine(s.Text()); err != nil {
			return nil, fmt.Errorf("line %d: %w", d.line, err)
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}

	m := &Model{}
	for _, p := range d.parts {
		if len(p.Vertices) > 0 {
			m.Parts = append(m.Parts, p)
		}
	}
	if len(m.Parts) == 0 {
		return nil, ErrNoVertices
	}
	return m, nil
}

func (d *decoder) parseLine(line string) error {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	switch fields[0] {
	case "v":
		v, err := parseVec3(fields[1:])
		if err != nil {
			return err
		}
		d.positions = append(d.positions, v)
	case "vn":
		v, err := parseVec3(fields[1:])
		if err != nil {
			return err
		}
		d.normals = append(d.normals, v)
	case "o", "g":
		d.beginPart(strings.Join(fields[1:], " "))
	case "f":
		return d.parseFace(fields[1:])
	}
	return nil
}

func (d *decoder) beginPart(name string) {
	if d.cur != nil && len(d.cur.Vertices) == 0 {
		// Consecutive "o" and "g" statements name the same part.
		if name != "" {
			d.cur.Name = name
		}
		return
	}
	d.parts = append(d.parts, Part{Name: name})
	d.cur = &d.parts[len(d.parts)-1]
}

type corner struct {
	pos    mat.Vec3
	normal mat.Vec3
	hasN   bool
}

func (d *decoder) parseFace(fields []string) error {
	if len(fields) < 3 {
		return fmt.Errorf("%w: face needs at least 3 vertices", errSyntax)
	}
	cs := make([]corner, len(fields))
	for i, f := range fields {
		c, err := d.parseCorner(f)
		if err != nil {
			return err
		}
		cs[i] = c
	}
	if d.cur == nil {
		d.beginPart("")
	}
	for i := 2; i < len(cs); i++ {
		d.addTriangle(cs[0], cs[i-1], cs[i])
	}
	return nil
}

func (d *decoder) addTriangle(a, b, c corner) {
	flat := b.pos.Sub(a.pos).Cross(c.pos.Sub(a.pos))
	if n := flat.Norm(); n > 0 {
		flat = flat.Mul(1 / n)
	}
	for _, v := range [3]corner{a, b, c} {
		n := flat
		if v.hasN {
			n = v.normal
		}
		d.cur.Vertices = append(d.cur.Vertices,
			v.pos[0], v.pos[1], v.pos[2],
			n[0], n[1], n[2],
		)
	}
}

// parseCorner parses "v", "v/vt", "v//vn" or "v/vt/vn".
func (d *decoder) parseCorner(s string) (corner, error) {
	idx := strings.Split(s, "/")
	if len(idx) > 3 {
		return corner{}, fmt.Errorf("%w: face vertex %q", errSyntax, s)
	}
	pi, err := resolveIndex(idx[0], len(d.positions))
	if err != nil {
		return corner{}, err
	}
	c := corner{pos: d.positions[pi]}
	if len(idx) == 3 && idx[2] != "" {
		ni, err := resolveIndex(idx[2], len(d.normals))
		if err != nil {
			return corner{}, err
		}
		c.normal = d.normals[ni]
		c.hasN = true
	}
	return c, nil
}

// resolveIndex converts a 1-based or negative relative OBJ index to a
// 0-based one.
func resolveIndex(s string, n int) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: index %q", errSyntax, s)
	}
	switch {
	case i > 0 && i <= n:
		return i - 1, nil
	case i < 0 && -i <= n:
		return n + i, nil
	}
	return 0, fmt.Errorf("%w: index %d out of range (%d)", errSyntax, i, n)
}

func parseVec3(fields []string) (mat.Vec3, error) {
	var v mat.Vec3
	if len(fields) < 3 {
		return v, fmt.Errorf("%w: expected 3 components", errSyntax)
	}
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return v, fmt.Errorf("%w: %v", errSyntax, err)
		}
		v[i] = float32(f)
	}
	return v, nil
}
