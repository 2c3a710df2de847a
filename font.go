package dui

import (
	"strings"
	"unicode"
)

// Atlas describes a fixed-cell glyph atlas: a texture holding glyphs of
// uniform size laid out in a grid, addressed through a mapping string whose
// i-th rune lives in cell i.
type Atlas struct {
	Mapping   string  // Runes in atlas order
	Columns   int     // Cells per atlas row
	CellW     float32 // Glyph cell width in texels
	CellH     float32 // Glyph cell height in texels
	Uppercase bool    // Atlas carries a single case; fold input to upper
	Fallback  rune    // Drawn for runes missing from Mapping
}

// asciiMapping is ASCII 32-127 in code point order.
const asciiMapping = " !\"#$%&'()*+,-./0123456789:;<=>?" +
	"@ABCDEFGHIJKLMNOPQRSTUVWXYZ[\\]^_" +
	"`abcdefghijklmnopqrstuvwxyz{|}~\x7f"

// DefaultAtlas describes the 8x8 ASCII font built into the OpenGL backend,
// 16 glyphs per row.
func DefaultAtlas() Atlas {
	return Atlas{
		Mapping:  asciiMapping,
		Columns:  16,
		CellW:    8,
		CellH:    8,
		Fallback: '?',
	}
}

// SourceRect returns the atlas cell for r. Input is folded to upper case
// when the atlas is single-case, and unmapped runes resolve to the
// fallback glyph (or cell 0 if the fallback itself is unmapped).
func (a Atlas) SourceRect(r rune) Rect {
	if a.Uppercase {
		r = unicode.ToUpper(r)
	}

	idx := strings.IndexRune(a.Mapping, r)
	if idx < 0 {
		idx = strings.IndexRune(a.Mapping, a.Fallback)
		if idx < 0 {
			idx = 0
		}
	}

	// IndexRune reports a byte offset; the mapping is ASCII so byte and
	// rune positions coincide. Guard anyway for multibyte mappings.
	cell := len([]rune(a.Mapping[:idx]))

	col := cell % a.Columns
	row := cell / a.Columns
	return Rect{
		X: float32(col) * a.CellW,
		Y: float32(row) * a.CellH,
		W: a.CellW,
		H: a.CellH,
	}
}

// Contains reports whether the atlas maps r directly (before fallback).
func (a Atlas) Contains(r rune) bool {
	if a.Uppercase {
		r = unicode.ToUpper(r)
	}
	return strings.ContainsRune(a.Mapping, r)
}
