package dui_test

import (
	"testing"

	"github.com/debugtools/dui"
)

func TestTabBarLaysTabsOutFromAnchor(t *testing.T) {
	ctx, m := newTestContext(t)
	sel := 0

	ctx.MoveTo(8, 8)
	ctx.BeginTabBar()
	ctx.Tab("AA", 0, &sel)
	// Cursor movement between tabs does not disturb the bar.
	ctx.MoveTo(400, 400)
	ctx.Tab("BB", 1, &sel)

	fills := m.opsOfKind("fill")
	if len(fills) != 2 {
		t.Fatalf("got %d fills, want 2", len(fills))
	}
	// Tab width: 2 chars * 8 + 2 * TabPadding = 32; margin 8 between tabs.
	if want := (dui.Rect{X: 8, Y: 8, W: 32, H: 24}); fills[0].rect != want {
		t.Errorf("first tab rect = %+v, want %+v", fills[0].rect, want)
	}
	if want := (dui.Rect{X: 48, Y: 8, W: 32, H: 24}); fills[1].rect != want {
		t.Errorf("second tab rect = %+v, want %+v", fills[1].rect, want)
	}
}

func TestTabClickSelects(t *testing.T) {
	ctx, _ := newTestContext(t)
	sel := 0

	drawBar := func() (a, b, c bool) {
		ctx.MoveTo(8, 8)
		ctx.BeginTabBar()
		a = ctx.Tab("AA", 0, &sel)
		b = ctx.Tab("BB", 1, &sel)
		c = ctx.Tab("CC", 2, &sel)
		return
	}

	// Tabs sit at x 8, 48, 88. Click the third.
	ctx.Begin(pointerAt(90, 10, true))
	drawBar()
	if sel != 2 {
		t.Fatalf("sel = %d after clicking third tab, want 2", sel)
	}

	// Next frame only the third is active.
	ctx.Begin(dui.Input{})
	a, b, c := drawBar()
	if a || b || !c {
		t.Errorf("active = %v %v %v, want false false true", a, b, c)
	}
}

func TestActiveTabUsesHoverColor(t *testing.T) {
	ctx, m := newTestContext(t)
	sel := 0

	ctx.MoveTo(8, 8)
	ctx.BeginTabBar()
	ctx.Tab("AA", 0, &sel) // active, pointer elsewhere
	ctx.Tab("BB", 1, &sel)

	fills := m.opsOfKind("fill")
	if fills[0].color != ctx.Style().ColorHover {
		t.Error("active tab not drawn with the hover color")
	}
	if fills[1].color != ctx.Style().ColorDefault {
		t.Error("inactive tab not drawn with the default color")
	}
}

func TestTabReturnsActiveAfterWrite(t *testing.T) {
	ctx, _ := newTestContext(t)
	sel := 0

	// Clicking a tab activates it the same frame; the previously active
	// tab drawn earlier in the frame also reported active. Hosts that
	// draw page content under both simply draw the new page last.
	ctx.Begin(pointerAt(50, 10, true))
	ctx.MoveTo(8, 8)
	ctx.BeginTabBar()
	first := ctx.Tab("AA", 0, &sel)
	second := ctx.Tab("BB", 1, &sel)

	if !first {
		t.Error("previously active tab reported inactive before the click was seen")
	}
	if !second {
		t.Error("clicked tab reported inactive")
	}
	if sel != 1 {
		t.Errorf("sel = %d, want 1", sel)
	}
}
