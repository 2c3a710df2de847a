package dui

import "errors"

// DefaultPanelDepth is the panel nesting limit used when WithMaxDepth is
// not given.
const DefaultPanelDepth = 10

var (
	// ErrPanelOverflow is the panic value for PanelStart beyond the
	// configured nesting depth.
	ErrPanelOverflow = errors.New("dui: panel stack overflow")

	// ErrPanelUnderflow is the panic value for PanelEnd without a
	// matching PanelStart.
	ErrPanelUnderflow = errors.New("dui: panel stack underflow")

	// ErrPanelUnbalanced is the panic value for Render while panels are
	// still open.
	ErrPanelUnbalanced = errors.New("dui: unbalanced panel stack")
)

// panelFrame is one level of the panel stack. Frame zero is the window.
type panelFrame struct {
	bounds  Rect
	fixed   bool
	title   string
	surface SurfaceID
}

func windowFrame(w, h int) panelFrame {
	return panelFrame{
		bounds:  Rect{W: float32(w), H: float32(h)},
		fixed:   true,
		surface: WindowSurface,
	}
}

// PanelStart opens a panel at the cursor with the given minimum content
// size and redirects drawing to the panel's own surface. Every PanelStart
// must be matched by a PanelEnd in the same frame.
//
// A non-empty title is drawn over the top border at PanelEnd; it shifts
// the panel down half a row and the content down a full row. Non-fixed
// panels grow to fit whatever is printed inside them; fixed panels keep
// the given size and let content spill over the border.
//
// Opening more panels than the configured depth is a programming error
// and panics with ErrPanelOverflow.
func (c *Context) PanelStart(title string, w, h float32, fixed bool) {
	if len(c.stack)-1 >= len(c.surfaces) {
		logger.Error("panel stack overflow", "depth", len(c.stack)-1, "title", title)
		panic(ErrPanelOverflow)
	}

	f := panelFrame{
		bounds: Rect{
			X: c.cursor.X,
			Y: c.cursor.Y,
			W: w + c.style.PanelPadding,
			H: h + c.style.PanelPadding,
		},
		fixed:   fixed,
		title:   title,
		surface: c.surfaces[len(c.stack)-1],
	}

	if f.title != "" {
		f.bounds.Y += c.style.CharHeight / 2
		c.MoveBy(0, c.style.CharHeight)
	}

	c.MoveBy(c.style.PanelPadding, c.style.PanelPadding)

	c.stack = append(c.stack, f)

	c.renderer.SetTarget(f.surface)
	c.renderer.Clear(ColorTransparent)
}

// PanelStartAt moves the cursor and opens a panel there. Unlike the At
// widget variants the cursor is not restored; the panel owns it until
// PanelEnd places it below the panel.
func (c *Context) PanelStartAt(x, y float32, title string, w, h float32, fixed bool) {
	c.MoveTo(x, y)
	c.PanelStart(title, w, h, fixed)
}

// PanelEnd closes the innermost panel: the title plate is drawn on the
// panel surface, the surface is composited onto the parent inside a filled
// and outlined frame, and the cursor moves below the panel.
func (c *Context) PanelEnd() {
	if len(c.stack) <= 1 {
		logger.Error("panel stack underflow")
		panic(ErrPanelUnderflow)
	}

	f := &c.stack[len(c.stack)-1]
	f.bounds.W += c.style.PanelPadding
	f.bounds.H += c.style.PanelPadding

	// The frame drawn on the parent keeps this size even if the title
	// plate grows the panel bounds below.
	frame := f.bounds

	if f.title != "" {
		plate := Rect{
			X: f.bounds.X + c.style.CharWidth,
			Y: f.bounds.Y - c.style.CharHeight/2,
			W: c.style.CharWidth * float32(len(f.title)+2),
			H: c.style.CharHeight,
		}
		c.renderer.FillRect(plate, c.style.ColorBackground)
		c.PrintAt(plate.X+c.style.CharWidth, plate.Y, f.title)
	}

	parent := c.stack[len(c.stack)-2]
	c.renderer.SetTarget(parent.surface)

	c.renderer.FillRect(frame, c.style.ColorBackground)
	c.renderer.StrokeRect(frame, c.style.ColorBorder)
	c.renderer.Composite(f.surface)

	c.MoveTo(f.bounds.X, f.bounds.Y+f.bounds.H+c.style.LinePadding)

	c.stack = c.stack[:len(c.stack)-1]
}

// PanelDepth returns the number of open panels, not counting the window.
func (c *Context) PanelDepth() int {
	return len(c.stack) - 1
}

// growPanel widens the innermost panel to reach the cursor. Fixed panels
// (including the window frame) never change size, and growth is monotonic.
func (c *Context) growPanel() {
	f := &c.stack[len(c.stack)-1]
	if f.fixed {
		return
	}
	f.bounds.W = maxf(f.bounds.W, c.cursor.X-f.bounds.X)
	f.bounds.H = maxf(f.bounds.H, c.cursor.Y-f.bounds.Y)
}
