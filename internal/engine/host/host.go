// Package host models the environment a scene component runs in: a drawing
// surface, window-level event listeners and animation-frame callbacks.
//
// The main loop owns one EventTarget and one FrameScheduler and drives them
// once per iteration. Nothing here is safe for concurrent use; all calls are
// expected on the thread that owns the GL context.
package host

// Canvas is a drawing surface with a displayed (logical) size.
type Canvas interface {
	// ClientSize returns the displayed size in logical pixels.
	ClientSize() (width, height int)
	// PixelRatio returns drawable pixels per logical pixel.
	PixelRatio() float32
}

// Event types dispatched by the main loop.
const (
	EventResize = "resize"
)

// StaticCanvas is a Canvas with a fixed size, used by tests and headless runs.
type StaticCanvas struct {
	Width  int
	Height int
	Ratio  float32
}

// ClientSize implements Canvas.
func (c *StaticCanvas) ClientSize() (int, int) {
	return c.Width, c.Height
}

// PixelRatio implements Canvas.
func (c *StaticCanvas) PixelRatio() float32 {
	if c.Ratio <= 0 {
		return 1
	}
	return c.Ratio
}
