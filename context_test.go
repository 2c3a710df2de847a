package dui_test

import (
	"errors"
	"testing"

	"github.com/debugtools/dui"
)

// mockRenderer records every draw call along with the target it was
// issued against.
type mockRenderer struct {
	width, height int
	next          dui.SurfaceID
	target        dui.SurfaceID
	ops           []drawOp
	created       int
	destroyed     int
	failCreate    bool
	flushes       int
}

type drawOp struct {
	kind    string // clear, fill, stroke, glyph, composite
	target  dui.SurfaceID
	rect    dui.Rect
	src     dui.Rect
	color   uint32
	surface dui.SurfaceID
}

func newMockRenderer() *mockRenderer {
	return &mockRenderer{width: 800, height: 600, next: 1}
}

func (m *mockRenderer) Size() (int, int) { return m.width, m.height }

func (m *mockRenderer) CreateSurface(w, h int) (dui.SurfaceID, error) {
	if m.failCreate {
		return 0, errors.New("out of surfaces")
	}
	id := m.next
	m.next++
	m.created++
	return id, nil
}

func (m *mockRenderer) DestroySurface(id dui.SurfaceID) { m.destroyed++ }

func (m *mockRenderer) SetTarget(id dui.SurfaceID) { m.target = id }

func (m *mockRenderer) Clear(color uint32) {
	m.ops = append(m.ops, drawOp{kind: "clear", target: m.target, color: color})
}

func (m *mockRenderer) FillRect(r dui.Rect, color uint32) {
	m.ops = append(m.ops, drawOp{kind: "fill", target: m.target, rect: r, color: color})
}

func (m *mockRenderer) StrokeRect(r dui.Rect, color uint32) {
	m.ops = append(m.ops, drawOp{kind: "stroke", target: m.target, rect: r, color: color})
}

func (m *mockRenderer) DrawGlyph(src, dst dui.Rect, color uint32) {
	m.ops = append(m.ops, drawOp{kind: "glyph", target: m.target, rect: dst, src: src, color: color})
}

func (m *mockRenderer) Composite(id dui.SurfaceID) {
	m.ops = append(m.ops, drawOp{kind: "composite", target: m.target, surface: id})
}

func (m *mockRenderer) Flush() { m.flushes++ }

func (m *mockRenderer) opsOfKind(kind string) []drawOp {
	var out []drawOp
	for _, op := range m.ops {
		if op.kind == kind {
			out = append(out, op)
		}
	}
	return out
}

// newTestContext builds a context over a fresh mock renderer and starts a
// frame with a neutral input snapshot.
func newTestContext(t *testing.T, opts ...dui.Option) (*dui.Context, *mockRenderer) {
	t.Helper()

	m := newMockRenderer()
	ctx, err := dui.New(m, opts...)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	ctx.Begin(dui.Input{})
	m.ops = nil
	return ctx, m
}

func TestNewAllocatesSurfaces(t *testing.T) {
	m := newMockRenderer()
	ctx, err := dui.New(m, dui.WithMaxDepth(4))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	defer ctx.Close()

	// 4 panel surfaces plus the overlay
	if m.created != 5 {
		t.Errorf("created %d surfaces, want 5", m.created)
	}
}

func TestNewSurfaceAllocationFailure(t *testing.T) {
	m := newMockRenderer()
	m.failCreate = true

	if _, err := dui.New(m); err == nil {
		t.Fatal("New() should fail when surface allocation fails")
	}
}

func TestNewRejectsBadDepth(t *testing.T) {
	if _, err := dui.New(newMockRenderer(), dui.WithMaxDepth(0)); err == nil {
		t.Fatal("New() should reject max depth 0")
	}
}

func TestCloseDestroysSurfaces(t *testing.T) {
	m := newMockRenderer()
	ctx, err := dui.New(m, dui.WithMaxDepth(3))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	ctx.Close()

	if m.destroyed != m.created {
		t.Errorf("destroyed %d of %d surfaces", m.destroyed, m.created)
	}
}

func TestMoveToSetsLineStart(t *testing.T) {
	ctx, _ := newTestContext(t)

	ctx.MoveTo(10, 20)
	ctx.Newline()

	got := ctx.Cursor()
	want := dui.Vec2{X: 10, Y: 20 + 8 + 4} // CharHeight + LinePadding
	if got != want {
		t.Errorf("cursor = %+v, want %+v", got, want)
	}
}

func TestMoveByResetsLineStart(t *testing.T) {
	ctx, _ := newTestContext(t)

	// The relative move anchors future lines at the new x, not the old one.
	ctx.MoveTo(10, 20)
	ctx.MoveBy(5, 0)
	ctx.Newline()

	if got := ctx.Cursor().X; got != 15 {
		t.Errorf("cursor.X = %v after newline, want 15", got)
	}
}

func TestPrintAdvancesCursor(t *testing.T) {
	ctx, m := newTestContext(t)

	ctx.MoveTo(10, 10)
	ctx.Print("HI")

	if got := ctx.Cursor(); got != (dui.Vec2{X: 26, Y: 10}) {
		t.Errorf("cursor = %+v, want {26 10}", got)
	}
	if n := len(m.opsOfKind("glyph")); n != 2 {
		t.Errorf("drew %d glyphs, want 2", n)
	}
}

func TestPrintSpaceAdvancesWithoutDrawing(t *testing.T) {
	ctx, m := newTestContext(t)

	ctx.MoveTo(0, 0)
	ctx.Print("A B")

	if got := ctx.Cursor().X; got != 24 {
		t.Errorf("cursor.X = %v, want 24", got)
	}
	if n := len(m.opsOfKind("glyph")); n != 2 {
		t.Errorf("drew %d glyphs, want 2", n)
	}
}

func TestPrintEmbeddedNewline(t *testing.T) {
	ctx, _ := newTestContext(t)

	ctx.MoveTo(10, 10)
	ctx.Print("AB\nCD")

	got := ctx.Cursor()
	want := dui.Vec2{X: 10 + 16, Y: 10 + 12}
	if got != want {
		t.Errorf("cursor = %+v, want %+v", got, want)
	}
}

func TestPrintUnknownRuneDrawsFallback(t *testing.T) {
	ctx, m := newTestContext(t)

	ctx.MoveTo(0, 0)
	ctx.Print("é") // not in the ASCII atlas

	glyphs := m.opsOfKind("glyph")
	if len(glyphs) != 1 {
		t.Fatalf("drew %d glyphs, want 1", len(glyphs))
	}
	want := dui.DefaultAtlas().SourceRect('?')
	if glyphs[0].src != want {
		t.Errorf("glyph src = %+v, want fallback %+v", glyphs[0].src, want)
	}
}

func TestPrintFoldsCaseForUppercaseAtlas(t *testing.T) {
	atlas := dui.Atlas{
		Mapping:   " ABCDEFGHIJKLMNOPQRSTUVWXYZ?",
		Columns:   16,
		CellW:     8,
		CellH:     8,
		Uppercase: true,
		Fallback:  '?',
	}
	ctx, m := newTestContext(t, dui.WithAtlas(atlas))

	ctx.Print("a")

	glyphs := m.opsOfKind("glyph")
	if len(glyphs) != 1 {
		t.Fatalf("drew %d glyphs, want 1", len(glyphs))
	}
	if want := atlas.SourceRect('A'); glyphs[0].src != want {
		t.Errorf("glyph src = %+v, want %+v", glyphs[0].src, want)
	}
}

func TestPrintAtLeavesCursorAndAnchor(t *testing.T) {
	ctx, _ := newTestContext(t)

	ctx.MoveTo(10, 20)
	ctx.Print("AB") // cursor now (26, 20), anchor 10
	ctx.PrintAt(200, 300, "ELSEWHERE")

	if got := ctx.Cursor(); got != (dui.Vec2{X: 26, Y: 20}) {
		t.Errorf("cursor = %+v, want {26 20}", got)
	}
	ctx.Newline()
	if got := ctx.Cursor().X; got != 10 {
		t.Errorf("line anchor changed: newline moved to x=%v, want 10", got)
	}
}

func TestPrintln(t *testing.T) {
	ctx, _ := newTestContext(t)

	ctx.MoveTo(10, 10)
	ctx.Println("AB")

	if got := ctx.Cursor(); got != (dui.Vec2{X: 10, Y: 22}) {
		t.Errorf("cursor = %+v, want {10 22}", got)
	}
}

func TestPrintfFormats(t *testing.T) {
	ctx, m := newTestContext(t)

	ctx.Printf("N=%d", 7)

	if n := len(m.opsOfKind("glyph")); n != 3 {
		t.Errorf("drew %d glyphs, want 3", n)
	}
}

func TestBeginResetsCursor(t *testing.T) {
	ctx, m := newTestContext(t)

	ctx.MoveTo(100, 100)
	ctx.Begin(dui.Input{})

	if got := ctx.Cursor(); got != (dui.Vec2{}) {
		t.Errorf("cursor = %+v after Begin, want origin", got)
	}
	if m.target != dui.WindowSurface {
		t.Errorf("target = %v after Begin, want window", m.target)
	}
}

func TestRenderFlushes(t *testing.T) {
	ctx, m := newTestContext(t)

	ctx.Render()

	if m.flushes != 1 {
		t.Errorf("flushes = %d, want 1", m.flushes)
	}
}

func TestRenderWithOpenPanelPanics(t *testing.T) {
	ctx, _ := newTestContext(t)
	defer func() {
		if r := recover(); r != dui.ErrPanelUnbalanced {
			t.Errorf("recovered %v, want ErrPanelUnbalanced", r)
		}
	}()

	ctx.PanelStart("", 10, 10, false)
	ctx.Render()
}

func TestOverlayDrawsAboveEverything(t *testing.T) {
	ctx, m := newTestContext(t)

	ctx.MoveTo(10, 10)
	ctx.BeginOverlay()
	ctx.PrintAt(700, 8, "FPS")
	ctx.EndOverlay()

	// Drawing went to the overlay surface, not the window.
	glyphs := m.opsOfKind("glyph")
	if len(glyphs) != 3 {
		t.Fatalf("drew %d glyphs, want 3", len(glyphs))
	}
	overlayTarget := glyphs[0].target
	if overlayTarget == dui.WindowSurface {
		t.Fatal("overlay glyphs drawn on the window surface")
	}

	// Cursor came back from the overlay untouched.
	if got := ctx.Cursor(); got != (dui.Vec2{X: 10, Y: 10}) {
		t.Errorf("cursor = %+v after overlay, want {10 10}", got)
	}

	// Render composites the overlay onto the window.
	ctx.Render()
	comps := m.opsOfKind("composite")
	if len(comps) != 1 {
		t.Fatalf("got %d composites, want 1", len(comps))
	}
	if comps[0].target != dui.WindowSurface || comps[0].surface != overlayTarget {
		t.Errorf("composite %+v, want overlay onto window", comps[0])
	}
}

func TestOverlayNotCompositedWhenUnused(t *testing.T) {
	ctx, m := newTestContext(t)

	ctx.Render()

	if n := len(m.opsOfKind("composite")); n != 0 {
		t.Errorf("got %d composites without overlay use, want 0", n)
	}
}

func TestSetStyleFillsGlyphSizeFromAtlas(t *testing.T) {
	ctx, _ := newTestContext(t)

	s := dui.DarkStyle()
	s.CharWidth = 0
	s.CharHeight = 0
	ctx.SetStyle(s)

	got := ctx.Style()
	if got.CharWidth != 8 || got.CharHeight != 8 {
		t.Errorf("glyph size = %vx%v, want 8x8 from atlas", got.CharWidth, got.CharHeight)
	}
}
