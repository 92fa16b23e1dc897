package scene

import "github.com/go-gl/mathgl/mgl32"

// DirectionalLight shines parallel rays from its position towards Target.
type DirectionalLight struct {
	Object3D
	Color     Color
	Intensity float32
	Target    mgl32.Vec3
}

// NewDirectionalLight creates a light at (0, 1, 0) aimed at the origin.
func NewDirectionalLight(color Color, intensity float32) *DirectionalLight {
	l := &DirectionalLight{
		Object3D:  newObject3D("DirectionalLight"),
		Color:     color,
		Intensity: intensity,
	}
	l.Position = mgl32.Vec3{0, 1, 0}
	return l
}

// Direction returns the unit vector pointing from the target towards the light.
func (l *DirectionalLight) Direction() mgl32.Vec3 {
	d := l.WorldPosition().Sub(l.Target)
	if d.Len() == 0 {
		return mgl32.Vec3{0, 1, 0}
	}
	return d.Normalize()
}
