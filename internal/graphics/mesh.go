package graphics

import (
	"unsafe"

	"camwall/internal/assets"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Vertex layout: position(3) normal(3) uv(2), tightly interleaved
const vertexStride = 8 * 4

// Mesh is decoded geometry uploaded to the GPU.
type Mesh struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32

	// Instancing buffer for per-instance model matrices, attribs 3..6.
	// Zero when the mesh is drawn singly.
	instanceVBO   uint32
	instanceCount int32
}

// UploadMesh creates GPU buffers for the decoded mesh data.
func UploadMesh(data *assets.MeshData) *Mesh {
	m := &Mesh{indexCount: int32(len(data.Indices))}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data.Vertices)*4, gl.Ptr(data.Vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(data.Indices)*4, gl.Ptr(data.Indices), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, vertexStride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, vertexStride, 3*4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, vertexStride, 5*4)

	gl.BindVertexArray(0)
	return m
}

// EnableInstancing attaches a dynamic per-instance model-matrix buffer sized
// for count instances.
func (m *Mesh) EnableInstancing(count int) {
	m.instanceCount = int32(count)

	gl.BindVertexArray(m.vao)
	gl.GenBuffers(1, &m.instanceVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.instanceVBO)
	gl.BufferData(gl.ARRAY_BUFFER, count*int(unsafe.Sizeof(mgl32.Mat4{})), nil, gl.DYNAMIC_DRAW)

	// A mat4 occupies four consecutive vec4 attribute slots
	for i := 0; i < 4; i++ {
		loc := uint32(3 + i)
		gl.EnableVertexAttribArray(loc)
		gl.VertexAttribPointerWithOffset(loc, 4, gl.FLOAT, false, int32(unsafe.Sizeof(mgl32.Mat4{})), uintptr(i*16))
		gl.VertexAttribDivisor(loc, 1)
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}

// SetInstanceTransforms re-uploads the per-instance model matrices.
func (m *Mesh) SetInstanceTransforms(mats []mgl32.Mat4) {
	gl.BindBuffer(gl.ARRAY_BUFFER, m.instanceVBO)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(mats)*int(unsafe.Sizeof(mgl32.Mat4{})), gl.Ptr(mats))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// Draw renders the mesh once.
func (m *Mesh) Draw() {
	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// DrawInstanced renders every instance in one call.
func (m *Mesh) DrawInstanced() {
	gl.BindVertexArray(m.vao)
	gl.DrawElementsInstanced(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, nil, m.instanceCount)
	gl.BindVertexArray(0)
}

// Dispose releases the GPU buffers.
func (m *Mesh) Dispose() {
	if m.instanceVBO != 0 {
		gl.DeleteBuffers(1, &m.instanceVBO)
	}
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
	}
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
	}
}
