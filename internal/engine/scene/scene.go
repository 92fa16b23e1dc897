package scene

// Scene is the root of a graph. Its own transform is normally identity.
// Background is the color the renderer clears to before drawing.
type Scene struct {
	Object3D
	Background Color
}

// New creates an empty scene with a black background.
func New() *Scene {
	return &Scene{
		Object3D: newObject3D("Scene"),
	}
}

// Meshes returns every visible mesh in the graph, depth first.
func (s *Scene) Meshes() []*Mesh {
	var meshes []*Mesh
	Traverse(s, func(n Node) {
		if m, ok := n.(*Mesh); ok && m.Visible {
			meshes = append(meshes, m)
		}
	})
	return meshes
}

// DirectionalLights returns every visible directional light in the graph.
func (s *Scene) DirectionalLights() []*DirectionalLight {
	var lights []*DirectionalLight
	Traverse(s, func(n Node) {
		if l, ok := n.(*DirectionalLight); ok && l.Visible {
			lights = append(lights, l)
		}
	})
	return lights
}
