package scene

// Mesh places a geometry with a material in the graph.
type Mesh struct {
	Object3D
	Geometry *Geometry
	Material *PhongMaterial
}

// NewMesh creates a mesh at the origin.
func NewMesh(geometry *Geometry, material *PhongMaterial) *Mesh {
	return &Mesh{
		Object3D: newObject3D("Mesh"),
		Geometry: geometry,
		Material: material,
	}
}
