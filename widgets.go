package dui

// Button draws a push button at the cursor and reports whether it was
// clicked this frame. The cursor moves past the button's right edge,
// back at the button's top.
func (c *Context) Button(label string) bool {
	bounds := Rect{
		X: c.cursor.X,
		Y: c.cursor.Y,
		W: float32(len(label))*c.style.CharWidth + 2*c.style.ButtonPadding,
		H: c.style.CharHeight + 2*c.style.ButtonPadding,
	}

	hover := c.isHovered(bounds)
	clicked := hover && c.input.Pressed

	fill := c.style.ColorDefault
	if hover {
		fill = c.style.ColorHover
	}
	c.renderer.FillRect(bounds, fill)
	c.renderer.StrokeRect(bounds, c.style.ColorBorder)

	c.cursor.X += c.style.ButtonPadding
	c.cursor.Y += c.style.ButtonPadding
	c.Print(label)

	c.cursor.X = bounds.X + bounds.W + c.style.ButtonMargin
	c.cursor.Y = bounds.Y

	return clicked
}

// ButtonAt draws a button at the given position, leaving the cursor as it
// was.
func (c *Context) ButtonAt(x, y float32, label string) bool {
	tmp := c.cursor
	c.cursor = Vec2{X: x, Y: y}

	clicked := c.Button(label)

	c.cursor = tmp
	return clicked
}

// Checkbox draws a checkbox bound to *checked. A click toggles the value;
// the return is the value after any toggle.
func (c *Context) Checkbox(label string, checked *bool) bool {
	bounds := Rect{
		X: c.cursor.X,
		Y: c.cursor.Y,
		W: float32(len(label))*c.style.CharWidth + 2*c.style.CharWidth + 2*c.style.ButtonPadding,
		H: c.style.CharHeight + 2*c.style.ButtonPadding,
	}

	hover := c.isHovered(bounds)
	clicked := hover && c.input.Pressed

	fill := c.style.ColorDefault
	if hover {
		fill = c.style.ColorHover
	}
	c.renderer.FillRect(bounds, fill)
	c.renderer.StrokeRect(bounds, c.style.ColorBorder)

	mark := Rect{
		X: bounds.X + c.style.CharWidth/2,
		Y: bounds.Y + c.style.CharHeight/2,
		W: c.style.CharWidth,
		H: c.style.CharWidth,
	}
	c.renderer.StrokeRect(mark, c.style.ColorBorder)

	if clicked {
		*checked = !*checked
	}

	if *checked {
		mark.X++
		mark.Y++
		mark.W -= 2
		mark.H -= 2
		c.renderer.FillRect(mark, c.style.ColorBorder)
	}

	c.cursor.X += c.style.ButtonPadding + c.style.CharWidth + c.style.CharWidth/2
	c.cursor.Y += c.style.ButtonPadding
	c.Print(label)

	c.cursor.X = bounds.X + bounds.W + c.style.ButtonMargin
	c.cursor.Y = bounds.Y

	return *checked
}

// CheckboxAt draws a checkbox at the given position, leaving the cursor as
// it was.
func (c *Context) CheckboxAt(x, y float32, label string, checked *bool) bool {
	tmp := c.cursor
	c.cursor = Vec2{X: x, Y: y}

	checked2 := c.Checkbox(label, checked)

	c.cursor = tmp
	return checked2
}

// Radio draws one radio button of a group sharing *sel. A click selects
// this button's index; the return reports whether it is the selected one
// after any click.
func (c *Context) Radio(label string, index int, sel *int) bool {
	bounds := Rect{
		X: c.cursor.X,
		Y: c.cursor.Y,
		W: float32(len(label))*c.style.CharWidth + 2*c.style.CharWidth + 2*c.style.ButtonPadding,
		H: c.style.CharHeight + 2*c.style.ButtonPadding,
	}

	hover := c.isHovered(bounds)
	if hover && c.input.Pressed {
		*sel = index
	}
	active := *sel == index

	fill := c.style.ColorDefault
	if hover {
		fill = c.style.ColorHover
	}
	c.renderer.FillRect(bounds, fill)
	c.renderer.StrokeRect(bounds, c.style.ColorBorder)

	mark := Rect{
		X: bounds.X + c.style.CharWidth/2,
		Y: bounds.Y + c.style.CharHeight/2,
		W: c.style.CharWidth,
		H: c.style.CharWidth,
	}
	c.renderer.StrokeRect(mark, c.style.ColorBorder)

	if active {
		mark.X++
		mark.Y++
		mark.W -= 2
		mark.H -= 2
		c.renderer.FillRect(mark, c.style.ColorBorder)
	}

	c.cursor.X += c.style.ButtonPadding + c.style.CharWidth + c.style.CharWidth/2
	c.cursor.Y += c.style.ButtonPadding
	c.Print(label)

	c.cursor.X = bounds.X + bounds.W + c.style.ButtonMargin
	c.cursor.Y = bounds.Y

	return active
}

// RadioAt draws a radio button at the given position, leaving the cursor
// as it was.
func (c *Context) RadioAt(x, y float32, label string, index int, sel *int) bool {
	tmp := c.cursor
	c.cursor = Vec2{X: x, Y: y}

	active := c.Radio(label, index, sel)

	c.cursor = tmp
	return active
}
