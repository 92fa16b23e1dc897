package scene

import "github.com/google/uuid"

// PhongMaterial is a lit material with diffuse, specular and emissive terms.
type PhongMaterial struct {
	Resource

	UUID      uuid.UUID
	Color     Color
	Specular  Color
	Emissive  Color
	Shininess float32
}

// NewPhongMaterial creates a Phong material of the given diffuse color with
// a faint grey specular highlight.
func NewPhongMaterial(color Color) *PhongMaterial {
	return &PhongMaterial{
		UUID:      uuid.New(),
		Color:     color,
		Specular:  ColorHex(0x111111),
		Shininess: 30,
	}
}
