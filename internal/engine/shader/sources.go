package shader

import _ "embed"

// PhongVertex transforms positions and normals into view space.
//
//go:embed glsl/phong.vert
var PhongVertex string

// PhongFragment shades with one directional light plus ambient.
//
//go:embed glsl/phong.frag
var PhongFragment string
