package scene

import "github.com/go-gl/mathgl/mgl32"

// PerspectiveCamera projects through a view frustum.
//
// Fov is the vertical field of view in degrees. Near and Far bound the
// visible depth; anything closer than Near or beyond Far is clipped.
// After changing Fov, Aspect, Near or Far call UpdateProjectionMatrix.
type PerspectiveCamera struct {
	Object3D
	Fov    float32
	Aspect float32
	Near   float32
	Far    float32

	projection mgl32.Mat4
}

// NewPerspectiveCamera creates a camera at the origin looking down -Z.
func NewPerspectiveCamera(fov, aspect, near, far float32) *PerspectiveCamera {
	c := &PerspectiveCamera{
		Object3D: newObject3D("PerspectiveCamera"),
		Fov:      fov,
		Aspect:   aspect,
		Near:     near,
		Far:      far,
	}
	c.UpdateProjectionMatrix()
	return c
}

// UpdateProjectionMatrix recomputes the cached projection.
func (c *PerspectiveCamera) UpdateProjectionMatrix() {
	c.projection = mgl32.Perspective(mgl32.DegToRad(c.Fov), c.Aspect, c.Near, c.Far)
}

// ProjectionMatrix returns the projection as of the last update.
func (c *PerspectiveCamera) ProjectionMatrix() mgl32.Mat4 {
	return c.projection
}

// ViewMatrix returns the inverse of the camera's world transform.
func (c *PerspectiveCamera) ViewMatrix() mgl32.Mat4 {
	return c.WorldMatrix().Inv()
}

// ContainsDepth reports whether a distance along the view axis lies inside
// the near/far range.
func (c *PerspectiveCamera) ContainsDepth(d float32) bool {
	return d >= c.Near && d <= c.Far
}
