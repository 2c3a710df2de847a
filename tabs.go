package dui

// BeginTabBar anchors a tab bar at the cursor. Subsequent Tab calls lay
// themselves out left to right from this anchor, regardless of cursor
// movement between them.
func (c *Context) BeginTabBar() {
	c.tabCursor = c.cursor
}

// Tab draws one tab of a bar sharing *sel. A click selects this tab's
// index; the return reports whether it is the selected tab after any
// click, which is the usual guard for drawing the tab's page:
//
//	c.BeginTabBar()
//	if c.Tab("LOG", 0, &page) {
//	    // draw the log page
//	}
//	if c.Tab("STATS", 1, &page) {
//	    // draw the stats page
//	}
//
// Selected tabs draw with the hover color even when the pointer is
// elsewhere.
func (c *Context) Tab(label string, index int, sel *int) bool {
	c.cursor = c.tabCursor

	bounds := Rect{
		X: c.cursor.X,
		Y: c.cursor.Y,
		W: float32(len(label))*c.style.CharWidth + 2*c.style.TabPadding,
		H: c.style.CharHeight + 2*c.style.TabPadding,
	}

	hover := c.isHovered(bounds)
	if hover && c.input.Pressed {
		*sel = index
	}
	active := *sel == index

	fill := c.style.ColorDefault
	if hover || active {
		fill = c.style.ColorHover
	}
	c.renderer.FillRect(bounds, fill)
	c.renderer.StrokeRect(bounds, c.style.ColorBorder)

	c.cursor.X += c.style.TabPadding
	c.cursor.Y += c.style.TabPadding
	c.Print(label)

	c.cursor.X = bounds.X + bounds.W + c.style.TabMargin
	c.cursor.Y = bounds.Y

	c.tabCursor = c.cursor

	return active
}
