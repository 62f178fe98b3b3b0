package gl

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Mesh is a triangle list in GPU memory with interleaved position and
// normal attributes at locations 0 and 1.
type Mesh struct {
	vao, vbo uint32
	count    int32
}

// NewMesh uploads vertices holding six floats per vertex.
func NewMesh(vertices Float32ArrayBuffer) (*Mesh, error) {
	m := &Mesh{count: int32(len(vertices) / 6)}

	gl.GenVertexArrays(1, &m.vao)
	gl.GenBuffers(1, &m.vbo)

	gl.BindVertexArray(m.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	bufferData(gl.ARRAY_BUFFER, vertices, gl.STATIC_DRAW)

	const stride = 6 * 4
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)

	if err := GetError(); err != nil {
		m.Delete()
		return nil, err
	}
	return m, nil
}

func (m *Mesh) Draw() {
	gl.BindVertexArray(m.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, m.count)
	gl.BindVertexArray(0)
}

func (m *Mesh) Delete() {
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteVertexArrays(1, &m.vao)
}
