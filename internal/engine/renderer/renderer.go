// Package renderer draws a scene graph with OpenGL 4.1 core.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Faultbox/hello-cubes/internal/engine/host"
	"github.com/Faultbox/hello-cubes/internal/engine/scene"
	"github.com/Faultbox/hello-cubes/internal/engine/shader"
	"github.com/Faultbox/hello-cubes/internal/logger"
)

// Config holds renderer settings.
type Config struct {
	Ambient scene.Color
	// PixelRatio overrides the canvas ratio when > 0.
	PixelRatio float32
}

// Resizable is implemented by canvases whose displayed size can be changed.
type Resizable interface {
	SetClientSize(width, height int)
}

// geometryBuffers is the GPU copy of one scene.Geometry.
type geometryBuffers struct {
	vao, positions, normals, indices uint32
	count                            int32
}

// Renderer owns the GL program and per-geometry buffers for one canvas.
// It must only be used on the thread holding the GL context.
type Renderer struct {
	config Config
	canvas host.Canvas

	width, height int
	program       *shader.Program
	buffers       map[uuid.UUID]*geometryBuffers
	disposed      bool
}

// New creates a renderer bound to canvas.
// The GL context for canvas must already be current.
func New(canvas host.Canvas, cfg Config) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("initializing OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	program, err := shader.NewProgram(shader.PhongVertex, shader.PhongFragment)
	if err != nil {
		return nil, fmt.Errorf("creating phong program: %w", err)
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)

	r := &Renderer{
		config:  cfg,
		canvas:  canvas,
		program: program,
		buffers: make(map[uuid.UUID]*geometryBuffers),
	}
	r.width, r.height = canvas.ClientSize()
	r.applyViewport()

	return r, nil
}

// Canvas returns the surface this renderer draws to.
func (r *Renderer) Canvas() host.Canvas {
	return r.canvas
}

// PixelRatio returns the drawable-to-logical ratio in effect.
func (r *Renderer) PixelRatio() float32 {
	if r.config.PixelRatio > 0 {
		return r.config.PixelRatio
	}
	return r.canvas.PixelRatio()
}

// SetSize sets the logical output size. The backing viewport is scaled by
// the pixel ratio. The canvas itself is only resized when updateStyle is set
// and the canvas supports it.
func (r *Renderer) SetSize(width, height int, updateStyle bool) {
	r.width, r.height = width, height
	if updateStyle {
		if rc, ok := r.canvas.(Resizable); ok {
			rc.SetClientSize(width, height)
		}
	}
	r.applyViewport()
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Bool("update_style", updateStyle),
	)
}

func (r *Renderer) applyViewport() {
	ratio := r.PixelRatio()
	gl.Viewport(0, 0, int32(float32(r.width)*ratio), int32(float32(r.height)*ratio))
}

// Render draws s as seen by cam.
func (r *Renderer) Render(s *scene.Scene, cam *scene.PerspectiveCamera) {
	if r.disposed {
		return
	}

	bg := s.Background
	gl.ClearColor(bg.R, bg.G, bg.B, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	view := cam.ViewMatrix()
	projection := cam.ProjectionMatrix()

	r.program.Use()
	gl.UniformMatrix4fv(r.program.Uniform("uView"), 1, false, &view[0])
	gl.UniformMatrix4fv(r.program.Uniform("uProjection"), 1, false, &projection[0])
	r.setLight(s, view)

	for _, m := range s.Meshes() {
		if !drawable(m) {
			continue
		}
		r.drawMesh(m, view)
	}
	gl.BindVertexArray(0)
}

// drawable reports whether m has a material and non-empty indexed geometry.
func drawable(m *scene.Mesh) bool {
	g := m.Geometry
	if g == nil || m.Material == nil {
		return false
	}
	return len(g.Indices) > 0 && len(g.Positions) > 0 && len(g.Normals) == len(g.Positions)
}

// setLight uploads the first directional light in view space. Extra lights
// are ignored by the single-light shader.
func (r *Renderer) setLight(s *scene.Scene, view mgl32.Mat4) {
	dir := mgl32.Vec3{0, 0, 1}
	color := scene.Color{}

	if lights := s.DirectionalLights(); len(lights) > 0 {
		l := lights[0]
		dir = view.Mat3().Mul3x1(l.Direction())
		color = scene.Color{
			R: l.Color.R * l.Intensity,
			G: l.Color.G * l.Intensity,
			B: l.Color.B * l.Intensity,
		}
	}

	amb := r.config.Ambient
	gl.Uniform3f(r.program.Uniform("uLightDir"), dir.X(), dir.Y(), dir.Z())
	gl.Uniform3f(r.program.Uniform("uLightColor"), color.R, color.G, color.B)
	gl.Uniform3f(r.program.Uniform("uAmbient"), amb.R, amb.G, amb.B)
}

func (r *Renderer) drawMesh(m *scene.Mesh, view mgl32.Mat4) {
	buf := r.upload(m.Geometry)

	model := m.WorldMatrix()
	normal := view.Mul4(model).Mat3().Inv().Transpose()
	mat := m.Material

	gl.UniformMatrix4fv(r.program.Uniform("uModel"), 1, false, &model[0])
	gl.UniformMatrix3fv(r.program.Uniform("uNormalMatrix"), 1, false, &normal[0])
	gl.Uniform3f(r.program.Uniform("uDiffuse"), mat.Color.R, mat.Color.G, mat.Color.B)
	gl.Uniform3f(r.program.Uniform("uSpecular"), mat.Specular.R, mat.Specular.G, mat.Specular.B)
	gl.Uniform3f(r.program.Uniform("uEmissive"), mat.Emissive.R, mat.Emissive.G, mat.Emissive.B)
	gl.Uniform1f(r.program.Uniform("uShininess"), mat.Shininess)

	gl.BindVertexArray(buf.vao)
	gl.DrawElements(gl.TRIANGLES, buf.count, gl.UNSIGNED_INT, nil)
}

// upload returns the GPU buffers for g, creating them on first use.
// The buffers are freed when g is disposed or the renderer is.
func (r *Renderer) upload(g *scene.Geometry) *geometryBuffers {
	if buf, ok := r.buffers[g.UUID]; ok {
		return buf
	}

	buf := &geometryBuffers{count: int32(len(g.Indices))}
	gl.GenVertexArrays(1, &buf.vao)
	gl.BindVertexArray(buf.vao)

	buf.positions = vertexBuffer(0, g.Positions)
	buf.normals = vertexBuffer(1, g.Normals)

	gl.GenBuffers(1, &buf.indices)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, buf.indices)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(g.Indices)*4, unsafe.Pointer(&g.Indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)

	r.buffers[g.UUID] = buf
	id := g.UUID
	g.OnDispose(func() { r.release(id) })

	logger.Debug("geometry uploaded",
		zap.String("uuid", id.String()),
		zap.Int("vertices", g.VertexCount()),
		zap.Uint32("vao", buf.vao),
	)
	return buf
}

// vertexBuffer uploads a tightly packed vec3 attribute at location loc.
func vertexBuffer(loc uint32, data []float32) uint32 {
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, unsafe.Pointer(&data[0]), gl.STATIC_DRAW)
	gl.VertexAttribPointer(loc, 3, gl.FLOAT, false, 3*4, nil)
	gl.EnableVertexAttribArray(loc)
	return vbo
}

func (r *Renderer) release(id uuid.UUID) {
	buf, ok := r.buffers[id]
	if !ok || r.disposed {
		return
	}
	gl.DeleteVertexArrays(1, &buf.vao)
	gl.DeleteBuffers(1, &buf.positions)
	gl.DeleteBuffers(1, &buf.normals)
	gl.DeleteBuffers(1, &buf.indices)
	delete(r.buffers, id)
}

// Dispose frees every GL object the renderer created. Further Render calls
// are no-ops.
func (r *Renderer) Dispose() {
	if r.disposed {
		return
	}
	logger.Info("disposing renderer", zap.Int("geometries", len(r.buffers)))
	for id := range r.buffers {
		r.release(id)
	}
	r.program.Delete()
	r.disposed = true
}
