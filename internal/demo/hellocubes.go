// Package demo contains the hello-cubes scene component: three coloured
// cubes spinning under a directional light.
package demo

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/hello-cubes/internal/engine/host"
	"github.com/Faultbox/hello-cubes/internal/engine/scene"
	"github.com/Faultbox/hello-cubes/internal/logger"
)

// ErrAlreadyMounted is returned by Mount on a component that is mounted.
var ErrAlreadyMounted = errors.New("component already mounted")

// Scene constants.
const (
	CameraFov    = 75
	CameraAspect = 2
	CameraNear   = 0.1
	CameraFar    = 5
	CameraZ      = 2

	// RotationPerMs converts frame time in milliseconds to radians.
	RotationPerMs = 0.001
)

// CubeColors are the cube colors, left to right.
var CubeColors = [3]uint32{0x44aa88, 0xc50d0d, 0x39b20a}

// CubeOffsets are the cube x positions, left to right.
var CubeOffsets = [3]float32{-2, 0, 2}

// Renderer is what the component needs from a renderer.
type Renderer interface {
	Canvas() host.Canvas
	Render(s *scene.Scene, cam *scene.PerspectiveCamera)
	SetSize(width, height int, updateStyle bool)
	Dispose()
}

// Events registers window-level event listeners.
type Events interface {
	AddEventListener(eventType string, fn func()) host.ListenerID
	RemoveEventListener(eventType string, id host.ListenerID)
}

// Frames schedules animation-frame callbacks.
type Frames interface {
	RequestAnimationFrame(cb host.FrameCallback) host.FrameID
	CancelAnimationFrame(id host.FrameID)
}

// Env is everything a mount needs from its host.
type Env struct {
	Canvas      host.Canvas
	Background  scene.Color
	Events      Events
	Frames      Frames
	NewRenderer func(host.Canvas) (Renderer, error)
}

// HelloCubes is the demo scene component. The scene is fixed; Mount builds
// it and starts the frame loop, Unmount tears everything down.
type HelloCubes struct {
	env Env

	renderer  Renderer
	camera    *scene.PerspectiveCamera
	scene     *scene.Scene
	geometry  *scene.Geometry
	materials []*scene.PhongMaterial
	cubes     []*scene.Mesh

	mounted  bool
	frame    host.FrameID
	resizeID host.ListenerID
	log      *zap.Logger
}

// New creates an unmounted component.
func New() *HelloCubes {
	return &HelloCubes{log: logger.Named("hellocubes")}
}

// Mount builds the scene on env.Canvas, renders it every frame and keeps
// the camera and output size in step with the canvas on resize.
func (h *HelloCubes) Mount(env Env) error {
	if h.mounted {
		return ErrAlreadyMounted
	}

	r, err := env.NewRenderer(env.Canvas)
	if err != nil {
		return fmt.Errorf("creating renderer: %w", err)
	}

	h.env = env
	h.renderer = r
	h.build()
	h.mounted = true

	h.frame = env.Frames.RequestAnimationFrame(h.render)

	h.handleResize()
	h.resizeID = env.Events.AddEventListener(host.EventResize, h.handleResize)

	h.log.Info("mounted",
		zap.Int("cubes", len(h.cubes)),
		zap.String("scene", h.scene.UUID.String()),
	)
	return nil
}

// build creates the camera, scene, cubes and light.
func (h *HelloCubes) build() {
	h.camera = scene.NewPerspectiveCamera(CameraFov, CameraAspect, CameraNear, CameraFar)
	h.camera.Position[2] = CameraZ

	h.scene = scene.New()
	h.scene.Background = h.env.Background
	h.geometry = scene.NewBoxGeometry(1, 1, 1)

	// Fresh slices so callers holding the previous mount's Cubes keep them.
	h.materials = make([]*scene.PhongMaterial, 0, len(CubeColors))
	h.cubes = make([]*scene.Mesh, 0, len(CubeColors))
	for i, hex := range CubeColors {
		mat := scene.NewPhongMaterial(scene.ColorHex(hex))
		cube := scene.NewMesh(h.geometry, mat)
		cube.Position[0] = CubeOffsets[i]
		h.scene.Add(cube)

		h.materials = append(h.materials, mat)
		h.cubes = append(h.cubes, cube)
	}

	light := scene.NewDirectionalLight(scene.ColorHex(0xFFFFFF), 1)
	light.Position = mgl32.Vec3{-1, 2, 4}
	h.scene.Add(light)
}

// render is the frame callback. It queues exactly one successor per call
// and stops once the component is unmounted.
func (h *HelloCubes) render(timeMs float64) {
	if !h.mounted {
		return
	}

	angle := float32(math.Mod(timeMs*RotationPerMs, 2*math.Pi))
	for _, cube := range h.cubes {
		cube.Rotation[1] = angle
	}

	h.renderer.Render(h.scene, h.camera)
	h.frame = h.env.Frames.RequestAnimationFrame(h.render)
}

// handleResize matches the camera aspect and renderer output to the canvas's
// displayed size. The canvas itself is left alone.
func (h *HelloCubes) handleResize() {
	w, ht := h.renderer.Canvas().ClientSize()
	if w <= 0 || ht <= 0 {
		// Minimised window; keep the last projection.
		return
	}

	h.camera.Aspect = float32(w) / float32(ht)
	h.camera.UpdateProjectionMatrix()
	h.renderer.SetSize(w, ht, false)

	h.log.Debug("resized", zap.Int("width", w), zap.Int("height", ht))
}

// Unmount removes the resize listener, stops the frame loop and releases the
// renderer and GPU-backed resources. It is safe to call more than once.
func (h *HelloCubes) Unmount() {
	if !h.mounted {
		return
	}
	h.mounted = false

	h.env.Events.RemoveEventListener(host.EventResize, h.resizeID)
	h.env.Frames.CancelAnimationFrame(h.frame)
	h.resizeID, h.frame = 0, 0

	h.geometry.Dispose()
	for _, m := range h.materials {
		m.Dispose()
	}
	h.renderer.Dispose()
	h.renderer = nil

	h.log.Info("unmounted")
}

// Mounted reports whether the component is mounted.
func (h *HelloCubes) Mounted() bool { return h.mounted }

// Camera returns the camera built by the last Mount.
func (h *HelloCubes) Camera() *scene.PerspectiveCamera { return h.camera }

// Scene returns the scene built by the last Mount.
func (h *HelloCubes) Scene() *scene.Scene { return h.scene }

// Cubes returns the cube meshes, left to right.
func (h *HelloCubes) Cubes() []*scene.Mesh { return h.cubes }
