package dui

import (
	"fmt"
	"log/slog"
)

var logger = slog.With("component", "dui")

// Context holds all UI state for one window: the layout cursor, the panel
// stack, the frame's input snapshot, and the style. Create one with New and
// drive it once per frame with Begin / widget calls / Render.
type Context struct {
	renderer Renderer
	style    Style
	atlas    Atlas
	input    Input

	cursor    Vec2
	lineStart float32
	tabCursor Vec2

	stack    []panelFrame
	surfaces []SurfaceID
	maxDepth int

	overlay         SurfaceID
	overlayOpen     bool
	overlayUsed     bool
	overlaySaved    Vec2
	overlayLineSave float32
}

// Option configures a Context at creation time.
type Option func(*Context)

// WithStyle sets the initial style.
func WithStyle(style Style) Option {
	return func(c *Context) { c.style = style }
}

// WithAtlas sets the glyph atlas describing the backend's font texture.
func WithAtlas(atlas Atlas) Option {
	return func(c *Context) { c.atlas = atlas }
}

// WithMaxDepth sets the maximum panel nesting depth. Surfaces for every
// level are allocated up front in New.
func WithMaxDepth(depth int) Option {
	return func(c *Context) { c.maxDepth = depth }
}

// New creates a Context over the given renderer and pre-allocates one
// window-sized surface per panel depth plus the overlay surface. Surface
// allocation failure is fatal and fails construction.
func New(renderer Renderer, opts ...Option) (*Context, error) {
	c := &Context{
		renderer: renderer,
		style:    DefaultStyle(),
		atlas:    DefaultAtlas(),
		maxDepth: DefaultPanelDepth,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.maxDepth < 1 {
		return nil, fmt.Errorf("dui: max panel depth %d, want >= 1", c.maxDepth)
	}
	if c.style.CharWidth == 0 {
		c.style.CharWidth = c.atlas.CellW
	}
	if c.style.CharHeight == 0 {
		c.style.CharHeight = c.atlas.CellH
	}

	w, h := renderer.Size()

	c.surfaces = make([]SurfaceID, 0, c.maxDepth)
	for i := 0; i < c.maxDepth; i++ {
		id, err := renderer.CreateSurface(w, h)
		if err != nil {
			c.Close()
			return nil, fmt.Errorf("dui: allocate panel surface %d: %w", i, err)
		}
		c.surfaces = append(c.surfaces, id)
	}

	overlay, err := renderer.CreateSurface(w, h)
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("dui: allocate overlay surface: %w", err)
	}
	c.overlay = overlay

	c.stack = make([]panelFrame, 1, c.maxDepth+1)
	c.stack[0] = windowFrame(w, h)

	logger.Debug("context created",
		"width", w, "height", h, "maxDepth", c.maxDepth)

	return c, nil
}

// Close releases every surface the context allocated. The context must not
// be used afterwards.
func (c *Context) Close() {
	for _, id := range c.surfaces {
		c.renderer.DestroySurface(id)
	}
	c.surfaces = nil
	if c.overlay != WindowSurface {
		c.renderer.DestroySurface(c.overlay)
		c.overlay = WindowSurface
	}
}

// Begin starts a new frame: it stores the frame's input snapshot, resets
// the cursor to the window origin, and targets the window surface.
func (c *Context) Begin(input Input) {
	w, h := c.renderer.Size()

	c.input = input
	c.cursor = Vec2{}
	c.lineStart = 0
	c.tabCursor = Vec2{}
	c.stack = c.stack[:1]
	c.stack[0] = windowFrame(w, h)
	c.overlayOpen = false
	c.overlayUsed = false

	c.renderer.SetTarget(WindowSurface)
}

// Render finishes the frame. Every PanelStart must have been matched by a
// PanelEnd; leftover open panels panic with ErrPanelUnbalanced. The overlay
// surface, if drawn to this frame, is composited over the window last.
func (c *Context) Render() {
	if len(c.stack) != 1 {
		logger.Error("render with open panels", "open", len(c.stack)-1)
		panic(ErrPanelUnbalanced)
	}

	if c.overlayUsed {
		c.renderer.SetTarget(WindowSurface)
		c.renderer.Composite(c.overlay)
	}

	c.renderer.Flush()
}

// Style returns the active style.
func (c *Context) Style() Style { return c.style }

// SetStyle replaces the active style. Takes effect immediately; changing
// it mid-frame affects only widgets drawn afterwards.
func (c *Context) SetStyle(style Style) {
	if style.CharWidth == 0 {
		style.CharWidth = c.atlas.CellW
	}
	if style.CharHeight == 0 {
		style.CharHeight = c.atlas.CellH
	}
	c.style = style
}

// Input returns the frame's input snapshot.
func (c *Context) Input() Input { return c.input }

// Cursor returns the current layout cursor position.
func (c *Context) Cursor() Vec2 { return c.cursor }

// MoveTo places the cursor at an absolute position. The x coordinate
// becomes the start of future lines.
func (c *Context) MoveTo(x, y float32) {
	c.cursor = Vec2{X: x, Y: y}
	c.lineStart = x
}

// MoveBy offsets the cursor. The resulting x coordinate becomes the start
// of future lines, same as MoveTo; there is no relative move that keeps
// the previous line anchor.
func (c *Context) MoveBy(dx, dy float32) {
	c.cursor.X += dx
	c.cursor.Y += dy
	c.lineStart = c.cursor.X
}

// Newline moves the cursor down one text row and back to the line start.
func (c *Context) Newline() {
	c.cursor.Y += c.style.CharHeight + c.style.LinePadding
	c.cursor.X = c.lineStart

	c.growPanel()
}

// Print draws text at the cursor and moves the cursor to the end of the
// text. Spaces advance without drawing, '\n' starts a new line, and runes
// missing from the atlas draw the fallback glyph.
func (c *Context) Print(text string) {
	pen := c.cursor

	for _, r := range text {
		switch r {
		case ' ':
			pen.X += c.style.CharWidth
		case '\n':
			c.Newline()
			pen = c.cursor
		default:
			src := c.atlas.SourceRect(r)
			dst := Rect{X: pen.X, Y: pen.Y, W: c.style.CharWidth, H: c.style.CharHeight}
			c.renderer.DrawGlyph(src, dst, c.style.ColorText)
			pen.X += c.style.CharWidth
		}
	}

	c.cursor = pen
	c.growPanel()
}

// Println draws text at the cursor and moves to the next line.
func (c *Context) Println(text string) {
	c.Print(text)
	c.Newline()
}

// Printf formats and prints at the cursor.
func (c *Context) Printf(format string, args ...any) {
	c.Print(fmt.Sprintf(format, args...))
}

// PrintAt draws text at the given position. The cursor and line anchor are
// left as they were.
func (c *Context) PrintAt(x, y float32, text string) {
	cur, line := c.cursor, c.lineStart
	c.MoveTo(x, y)
	c.Print(text)
	c.cursor, c.lineStart = cur, line
}

// BeginOverlay redirects drawing to the overlay surface, which is
// composited over everything else at Render. The overlay is cleared on its
// first use each frame. Panels cannot be opened inside an overlay.
func (c *Context) BeginOverlay() {
	if c.overlayOpen {
		return
	}
	c.overlaySaved = c.cursor
	c.overlayLineSave = c.lineStart
	c.overlayOpen = true

	c.renderer.SetTarget(c.overlay)
	if !c.overlayUsed {
		c.renderer.Clear(ColorTransparent)
		c.overlayUsed = true
	}
}

// EndOverlay returns drawing to the current panel surface and restores the
// cursor from before BeginOverlay.
func (c *Context) EndOverlay() {
	if !c.overlayOpen {
		return
	}
	c.overlayOpen = false
	c.cursor = c.overlaySaved
	c.lineStart = c.overlayLineSave

	c.renderer.SetTarget(c.stack[len(c.stack)-1].surface)
}

func (c *Context) isHovered(r Rect) bool {
	return r.Contains(c.input.Pos)
}
