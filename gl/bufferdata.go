package gl

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

type BufferData interface {
	Bytes() []byte
}

type Float32ArrayBuffer []float32

func (b Float32ArrayBuffer) Bytes() []byte {
	return float32SliceAsByteSlice([]float32(b))
}

// bufferData uploads b to the buffer bound to target.
func bufferData(target uint32, b BufferData, usage uint32) {
	bs := b.Bytes()
	if len(bs) == 0 {
		gl.BufferData(target, 0, nil, usage)
		return
	}
	gl.BufferData(target, len(bs), gl.Ptr(bs), usage)
}
