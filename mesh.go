package tess

import (
	"slices"
	"unsafe"

	"github.com/gogpu/gputypes"
)

// Vertex is one GPU vertex: position and UV in 2D, straight-alpha color.
// The field order matches the vertex buffer layout returned by
// VertexBufferLayout.
type Vertex struct {
	Position [2]float32
	UV       [2]float32
	Color    [4]float32
}

// WhiteUV is the UV coordinate of the solid white texel every atlas
// reserves; untextured geometry samples it so one pipeline handles both
// textured and flat fills.
var WhiteUV = [2]float32{0, 0}

// Mesh is an indexed triangle list plus the texture it samples.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
	Texture  TextureID
}

// Clear empties the mesh, keeping allocated capacity.
func (m *Mesh) Clear() {
	m.Vertices = m.Vertices[:0]
	m.Indices = m.Indices[:0]
	m.Texture = TextureID{}
}

// IsEmpty reports whether the mesh has no triangles.
func (m *Mesh) IsEmpty() bool {
	return len(m.Indices) == 0
}

// Reserve grows capacity for the given number of additional vertices and
// indices.
func (m *Mesh) Reserve(vertices, indices int) {
	m.Vertices = slices.Grow(m.Vertices, vertices)
	m.Indices = slices.Grow(m.Indices, indices)
}

// AddVertex appends v and returns its index.
func (m *Mesh) AddVertex(v Vertex) uint32 {
	idx := uint32(len(m.Vertices))
	m.Vertices = append(m.Vertices, v)
	return idx
}

// AddTriangle appends one triangle by vertex indices.
func (m *Mesh) AddTriangle(a, b, c uint32) {
	m.Indices = append(m.Indices, a, b, c)
}

// Append copies another mesh's geometry into m, offsetting its indices.
// The other mesh's texture is ignored.
func (m *Mesh) Append(other *Mesh) {
	offset := uint32(len(m.Vertices))
	m.Vertices = append(m.Vertices, other.Vertices...)
	for _, idx := range other.Indices {
		m.Indices = append(m.Indices, idx+offset)
	}
}

// VertexStride is the size of one Vertex in bytes.
const VertexStride = uint64(unsafe.Sizeof(Vertex{}))

// MeshIndexFormat is the index buffer format matching Mesh.Indices.
const MeshIndexFormat = gputypes.IndexFormatUint32

// MeshPrimitiveTopology is the primitive topology meshes are built for.
const MeshPrimitiveTopology = gputypes.PrimitiveTopologyTriangleList

// VertexBufferLayout describes the Vertex memory layout for pipeline
// creation: Float32x2 position, Float32x2 uv, Float32x4 color.
func VertexBufferLayout() gputypes.VertexBufferLayout {
	return gputypes.VertexBufferLayout{
		ArrayStride: VertexStride,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes: []gputypes.VertexAttribute{
			{
				Format:         gputypes.VertexFormatFloat32x2,
				Offset:         0,
				ShaderLocation: 0,
			},
			{
				Format:         gputypes.VertexFormatFloat32x2,
				Offset:         8,
				ShaderLocation: 1,
			},
			{
				Format:         gputypes.VertexFormatFloat32x4,
				Offset:         16,
				ShaderLocation: 2,
			},
		},
	}
}
