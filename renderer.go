package dui

// SurfaceID is an opaque handle to a renderer-owned draw target.
type SurfaceID int32

// WindowSurface targets the window itself rather than an offscreen surface.
const WindowSurface SurfaceID = 0

// Renderer is the device interface the UI draws through. The library ships
// an OpenGL implementation in backend/opengl; tests use an in-memory mock.
//
// All draw calls operate on the current target, selected with SetTarget.
// Surfaces are window-sized offscreen buffers used to compose panels:
// a panel renders into its own surface and is flattened onto its parent
// with Composite when it closes.
type Renderer interface {
	// Size returns the window size in pixels.
	Size() (width, height int)

	// CreateSurface allocates an offscreen surface. The returned ID is
	// never WindowSurface.
	CreateSurface(width, height int) (SurfaceID, error)

	// DestroySurface releases a surface. Destroying WindowSurface is a no-op.
	DestroySurface(id SurfaceID)

	// SetTarget routes subsequent draw calls to the given surface.
	SetTarget(id SurfaceID)

	// Clear fills the entire current target with color.
	Clear(color uint32)

	// FillRect fills a rectangle on the current target.
	FillRect(r Rect, color uint32)

	// StrokeRect outlines a rectangle on the current target.
	StrokeRect(r Rect, color uint32)

	// DrawGlyph blits one cell of the font atlas texture (src, in texels)
	// to dst on the current target, tinted with color.
	DrawGlyph(src, dst Rect, color uint32)

	// Composite alpha-blends the full surface onto the current target
	// at the origin.
	Composite(id SurfaceID)

	// Flush presents any batched work. Called once per frame from Render.
	Flush()
}
