// Package scene provides a small retained scene graph: objects with
// transforms, meshes, lights and a perspective camera.
//
// The graph is plain data. It does no GPU work; the renderer walks it each
// frame and keys its own buffers by object UUID.
package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

// Node is anything that can be placed in the graph.
type Node interface {
	Object() *Object3D
}

// Object3D holds identity, transform and hierarchy for a graph node.
// Rotation is Euler angles in radians, applied in X, Y, Z order.
type Object3D struct {
	UUID     uuid.UUID
	Name     string
	Position mgl32.Vec3
	Rotation mgl32.Vec3
	Scale    mgl32.Vec3
	Visible  bool

	parent   *Object3D
	children []Node
}

func newObject3D(name string) Object3D {
	return Object3D{
		UUID:    uuid.New(),
		Name:    name,
		Scale:   mgl32.Vec3{1, 1, 1},
		Visible: true,
	}
}

// Object implements Node.
func (o *Object3D) Object() *Object3D { return o }

// Parent returns the parent object, or nil for a root.
func (o *Object3D) Parent() *Object3D { return o.parent }

// Children returns the direct children. The slice must not be modified.
func (o *Object3D) Children() []Node { return o.children }

// Add attaches n as a child of o, detaching it from any previous parent.
func (o *Object3D) Add(n Node) {
	child := n.Object()
	if child == o {
		return
	}
	if child.parent != nil {
		child.parent.Remove(n)
	}
	child.parent = o
	o.children = append(o.children, n)
}

// Remove detaches n if it is a direct child of o.
func (o *Object3D) Remove(n Node) {
	child := n.Object()
	for i, c := range o.children {
		if c.Object() == child {
			o.children = append(o.children[:i], o.children[i+1:]...)
			child.parent = nil
			return
		}
	}
}

// Traverse calls fn for n and every descendant, depth first.
func Traverse(n Node, fn func(Node)) {
	fn(n)
	for _, c := range n.Object().children {
		Traverse(c, fn)
	}
}

// LocalMatrix returns translation * rotation(XYZ) * scale.
func (o *Object3D) LocalMatrix() mgl32.Mat4 {
	rot := mgl32.HomogRotate3DX(o.Rotation.X()).
		Mul4(mgl32.HomogRotate3DY(o.Rotation.Y())).
		Mul4(mgl32.HomogRotate3DZ(o.Rotation.Z()))
	return mgl32.Translate3D(o.Position.X(), o.Position.Y(), o.Position.Z()).
		Mul4(rot).
		Mul4(mgl32.Scale3D(o.Scale.X(), o.Scale.Y(), o.Scale.Z()))
}

// WorldMatrix composes local matrices from the root down to o.
func (o *Object3D) WorldMatrix() mgl32.Mat4 {
	m := o.LocalMatrix()
	for p := o.parent; p != nil; p = p.parent {
		m = p.LocalMatrix().Mul4(m)
	}
	return m
}

// WorldPosition returns the origin of o in world space.
func (o *Object3D) WorldPosition() mgl32.Vec3 {
	return o.WorldMatrix().Col(3).Vec3()
}
