package scene

import "github.com/google/uuid"

// Geometry is indexed triangle data with per-vertex normals.
type Geometry struct {
	Resource

	UUID      uuid.UUID
	Positions []float32 // xyz per vertex
	Normals   []float32 // xyz per vertex
	Indices   []uint32
}

// VertexCount returns the number of vertices.
func (g *Geometry) VertexCount() int {
	return len(g.Positions) / 3
}

// boxFace describes one side of a box: the axis it faces and two in-plane axes.
type boxFace struct {
	normal [3]float32
	u, v   [3]float32
}

var boxFaces = [6]boxFace{
	{normal: [3]float32{1, 0, 0}, u: [3]float32{0, 0, -1}, v: [3]float32{0, 1, 0}},
	{normal: [3]float32{-1, 0, 0}, u: [3]float32{0, 0, 1}, v: [3]float32{0, 1, 0}},
	{normal: [3]float32{0, 1, 0}, u: [3]float32{1, 0, 0}, v: [3]float32{0, 0, -1}},
	{normal: [3]float32{0, -1, 0}, u: [3]float32{1, 0, 0}, v: [3]float32{0, 0, 1}},
	{normal: [3]float32{0, 0, 1}, u: [3]float32{1, 0, 0}, v: [3]float32{0, 1, 0}},
	{normal: [3]float32{0, 0, -1}, u: [3]float32{-1, 0, 0}, v: [3]float32{0, 1, 0}},
}

// NewBoxGeometry builds an axis-aligned box centred on the origin.
// Each face has its own four vertices so normals stay flat.
func NewBoxGeometry(width, height, depth float32) *Geometry {
	half := [3]float32{width / 2, height / 2, depth / 2}

	g := &Geometry{
		UUID:      uuid.New(),
		Positions: make([]float32, 0, 6*4*3),
		Normals:   make([]float32, 0, 6*4*3),
		Indices:   make([]uint32, 0, 6*6),
	}

	corners := [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
	for _, f := range boxFaces {
		base := uint32(g.VertexCount())
		for _, c := range corners {
			for axis := 0; axis < 3; axis++ {
				p := f.normal[axis] + c[0]*f.u[axis] + c[1]*f.v[axis]
				g.Positions = append(g.Positions, p*half[axis])
			}
			g.Normals = append(g.Normals, f.normal[0], f.normal[1], f.normal[2])
		}
		g.Indices = append(g.Indices, base, base+1, base+2, base, base+2, base+3)
	}

	return g
}
