package dui

// Style controls spacing and colors for all widgets drawn by a Context.
// A Style is a plain value; copy it, tweak fields, and pass it back with
// WithStyle or Context.SetStyle.
type Style struct {
	// Glyph cell size. Zero values are filled in from the atlas at New.
	CharWidth  float32 `toml:"char_width"`
	CharHeight float32 `toml:"char_height"`

	LinePadding   float32 `toml:"line_padding"`   // Vertical gap between lines
	PanelPadding  float32 `toml:"panel_padding"`  // Inset around panel content
	ButtonPadding float32 `toml:"button_padding"` // Inset around button labels
	ButtonMargin  float32 `toml:"button_margin"`  // Horizontal gap after a button
	TabPadding    float32 `toml:"tab_padding"`    // Inset around tab labels
	TabMargin     float32 `toml:"tab_margin"`     // Horizontal gap after a tab

	ColorBackground uint32 `toml:"color_background"`
	ColorBorder     uint32 `toml:"color_border"`
	ColorHover      uint32 `toml:"color_hover"`
	ColorDefault    uint32 `toml:"color_default"`
	ColorText       uint32 `toml:"color_text"`
}

// DefaultStyle returns the default light-gray debug style.
func DefaultStyle() Style {
	return Style{
		LinePadding:   4,
		PanelPadding:  8,
		ButtonPadding: 4,
		ButtonMargin:  8,
		TabPadding:    8,
		TabMargin:     8,

		ColorBackground: RGBA(0xEE, 0xEE, 0xEE, 0xFF),
		ColorBorder:     RGBA(0x00, 0x00, 0x00, 0xFF),
		ColorHover:      RGBA(0xEE, 0xEE, 0xEE, 0xEE),
		ColorDefault:    RGBA(0xAA, 0xAA, 0xAA, 0xAA),
		ColorText:       ColorBlack,
	}
}

// DarkStyle returns a dark variant for overlays on bright scenes.
func DarkStyle() Style {
	s := DefaultStyle()
	s.ColorBackground = RGBA(0x20, 0x20, 0x24, 0xF0)
	s.ColorBorder = RGBA(0x60, 0x60, 0x68, 0xFF)
	s.ColorHover = RGBA(0x50, 0x50, 0x58, 0xEE)
	s.ColorDefault = RGBA(0x38, 0x38, 0x40, 0xEE)
	s.ColorText = RGBA(0xE0, 0xE0, 0xE0, 0xFF)
	return s
}

// LightStyle returns a brighter variant with more breathing room.
func LightStyle() Style {
	s := DefaultStyle()
	s.LinePadding = 6
	s.PanelPadding = 12
	s.ColorBackground = ColorWhite
	s.ColorHover = RGBA(0xD0, 0xD8, 0xF0, 0xFF)
	s.ColorDefault = RGBA(0xC8, 0xC8, 0xC8, 0xFF)
	return s
}
