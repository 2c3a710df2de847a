package opengl

import "github.com/go-gl/gl/v4.1-core/gl"

// createFontTexture builds the 8x8 bitmap font texture described by
// dui.DefaultAtlas: ASCII 32-127 in a 16x6 grid, alpha in the R channel.
func createFontTexture() uint32 {
	const texWidth = 128 // 16 chars * 8 pixels
	const texHeight = 48 // 6 rows * 8 pixels

	data := make([]byte, texWidth*texHeight)

	for ch, pattern := range fontBitmaps {
		if ch < 32 || ch > 127 {
			continue
		}
		idx := int(ch - 32)
		col := idx % 16
		row := idx / 16

		for y := 0; y < 8; y++ {
			for x := 0; x < 8; x++ {
				px := col*8 + x
				py := row*8 + y
				if pattern[y]&(0x80>>x) != 0 {
					data[py*texWidth+px] = 255
				}
			}
		}
	}

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, texWidth, texHeight, 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(data))
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return tex
}

// fontBitmaps holds one 8x8 bitmap per character, one byte per row, MSB
// leftmost.
var fontBitmaps = map[byte][]byte{
	'0':  {0x3C, 0x66, 0x6E, 0x76, 0x66, 0x66, 0x3C, 0x00},
	'1':  {0x18, 0x38, 0x18, 0x18, 0x18, 0x18, 0x7E, 0x00},
	'2':  {0x3C, 0x66, 0x06, 0x1C, 0x30, 0x60, 0x7E, 0x00},
	'3':  {0x3C, 0x66, 0x06, 0x1C, 0x06, 0x66, 0x3C, 0x00},
	'4':  {0x0C, 0x1C, 0x3C, 0x6C, 0x7E, 0x0C, 0x0C, 0x00},
	'5':  {0x7E, 0x60, 0x7C, 0x06, 0x06, 0x66, 0x3C, 0x00},
	'6':  {0x1C, 0x30, 0x60, 0x7C, 0x66, 0x66, 0x3C, 0x00},
	'7':  {0x7E, 0x06, 0x0C, 0x18, 0x30, 0x30, 0x30, 0x00},
	'8':  {0x3C, 0x66, 0x66, 0x3C, 0x66, 0x66, 0x3C, 0x00},
	'9':  {0x3C, 0x66, 0x66, 0x3E, 0x06, 0x0C, 0x38, 0x00},
	'A':  {0x18, 0x3C, 0x66, 0x66, 0x7E, 0x66, 0x66, 0x00},
	'B':  {0x7C, 0x66, 0x66, 0x7C, 0x66, 0x66, 0x7C, 0x00},
	'C':  {0x3C, 0x66, 0x60, 0x60, 0x60, 0x66, 0x3C, 0x00},
	'D':  {0x78, 0x6C, 0x66, 0x66, 0x66, 0x6C, 0x78, 0x00},
	'E':  {0x7E, 0x60, 0x60, 0x7C, 0x60, 0x60, 0x7E, 0x00},
	'F':  {0x7E, 0x60, 0x60, 0x7C, 0x60, 0x60, 0x60, 0x00},
	'G':  {0x3C, 0x66, 0x60, 0x6E, 0x66, 0x66, 0x3E, 0x00},
	'H':  {0x66, 0x66, 0x66, 0x7E, 0x66, 0x66, 0x66, 0x00},
	'I':  {0x7E, 0x18, 0x18, 0x18, 0x18, 0x18, 0x7E, 0x00},
	'J':  {0x3E, 0x0C, 0x0C, 0x0C, 0x0C, 0x6C, 0x38, 0x00},
	'K':  {0x66, 0x6C, 0x78, 0x70, 0x78, 0x6C, 0x66, 0x00},
	'L':  {0x60, 0x60, 0x60, 0x60, 0x60, 0x60, 0x7E, 0x00},
	'M':  {0x63, 0x77, 0x7F, 0x6B, 0x63, 0x63, 0x63, 0x00},
	'N':  {0x66, 0x76, 0x7E, 0x7E, 0x6E, 0x66, 0x66, 0x00},
	'O':  {0x3C, 0x66, 0x66, 0x66, 0x66, 0x66, 0x3C, 0x00},
	'P':  {0x7C, 0x66, 0x66, 0x7C, 0x60, 0x60, 0x60, 0x00},
	'Q':  {0x3C, 0x66, 0x66, 0x66, 0x6A, 0x6C, 0x36, 0x00},
	'R':  {0x7C, 0x66, 0x66, 0x7C, 0x6C, 0x66, 0x66, 0x00},
	'S':  {0x3C, 0x66, 0x60, 0x3C, 0x06, 0x66, 0x3C, 0x00},
	'T':  {0x7E, 0x18, 0x18, 0x18, 0x18, 0x18, 0x18, 0x00},
	'U':  {0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x3C, 0x00},
	'V':  {0x66, 0x66, 0x66, 0x66, 0x66, 0x3C, 0x18, 0x00},
	'W':  {0x63, 0x63, 0x63, 0x6B, 0x7F, 0x77, 0x63, 0x00},
	'X':  {0x66, 0x66, 0x3C, 0x18, 0x3C, 0x66, 0x66, 0x00},
	'Y':  {0x66, 0x66, 0x66, 0x3C, 0x18, 0x18, 0x18, 0x00},
	'Z':  {0x7E, 0x06, 0x0C, 0x18, 0x30, 0x60, 0x7E, 0x00},
	'a':  {0x00, 0x00, 0x3C, 0x06, 0x3E, 0x66, 0x3E, 0x00},
	'b':  {0x60, 0x60, 0x7C, 0x66, 0x66, 0x66, 0x7C, 0x00},
	'c':  {0x00, 0x00, 0x3C, 0x66, 0x60, 0x66, 0x3C, 0x00},
	'd':  {0x06, 0x06, 0x3E, 0x66, 0x66, 0x66, 0x3E, 0x00},
	'e':  {0x00, 0x00, 0x3C, 0x66, 0x7E, 0x60, 0x3C, 0x00},
	'f':  {0x1C, 0x30, 0x30, 0x7C, 0x30, 0x30, 0x30, 0x00},
	'g':  {0x00, 0x00, 0x3E, 0x66, 0x66, 0x3E, 0x06, 0x3C},
	'h':  {0x60, 0x60, 0x7C, 0x66, 0x66, 0x66, 0x66, 0x00},
	'i':  {0x18, 0x00, 0x38, 0x18, 0x18, 0x18, 0x3C, 0x00},
	'j':  {0x0C, 0x00, 0x1C, 0x0C, 0x0C, 0x0C, 0x6C, 0x38},
	'k':  {0x60, 0x60, 0x66, 0x6C, 0x78, 0x6C, 0x66, 0x00},
	'l':  {0x38, 0x18, 0x18, 0x18, 0x18, 0x18, 0x3C, 0x00},
	'm':  {0x00, 0x00, 0x76, 0x7F, 0x6B, 0x6B, 0x63, 0x00},
	'n':  {0x00, 0x00, 0x7C, 0x66, 0x66, 0x66, 0x66, 0x00},
	'o':  {0x00, 0x00, 0x3C, 0x66, 0x66, 0x66, 0x3C, 0x00},
	'p':  {0x00, 0x00, 0x7C, 0x66, 0x66, 0x7C, 0x60, 0x60},
	'q':  {0x00, 0x00, 0x3E, 0x66, 0x66, 0x3E, 0x06, 0x06},
	'r':  {0x00, 0x00, 0x6C, 0x76, 0x60, 0x60, 0x60, 0x00},
	's':  {0x00, 0x00, 0x3E, 0x60, 0x3C, 0x06, 0x7C, 0x00},
	't':  {0x30, 0x30, 0x7C, 0x30, 0x30, 0x30, 0x1C, 0x00},
	'u':  {0x00, 0x00, 0x66, 0x66, 0x66, 0x66, 0x3E, 0x00},
	'v':  {0x00, 0x00, 0x66, 0x66, 0x66, 0x3C, 0x18, 0x00},
	'w':  {0x00, 0x00, 0x63, 0x6B, 0x6B, 0x7F, 0x36, 0x00},
	'x':  {0x00, 0x00, 0x66, 0x3C, 0x18, 0x3C, 0x66, 0x00},
	'y':  {0x00, 0x00, 0x66, 0x66, 0x66, 0x3E, 0x06, 0x3C},
	'z':  {0x00, 0x00, 0x7E, 0x0C, 0x18, 0x30, 0x7E, 0x00},
	' ':  {0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
	'.':  {0x00, 0x00, 0x00, 0x00, 0x00, 0x18, 0x18, 0x00},
	',':  {0x00, 0x00, 0x00, 0x00, 0x00, 0x18, 0x18, 0x30},
	':':  {0x00, 0x00, 0x18, 0x18, 0x00, 0x18, 0x18, 0x00},
	';':  {0x00, 0x00, 0x18, 0x18, 0x00, 0x18, 0x18, 0x30},
	'=':  {0x00, 0x00, 0x7E, 0x00, 0x7E, 0x00, 0x00, 0x00},
	'-':  {0x00, 0x00, 0x00, 0x7E, 0x00, 0x00, 0x00, 0x00},
	'+':  {0x00, 0x18, 0x18, 0x7E, 0x18, 0x18, 0x00, 0x00},
	'[':  {0x1C, 0x18, 0x18, 0x18, 0x18, 0x18, 0x1C, 0x00},
	']':  {0x38, 0x18, 0x18, 0x18, 0x18, 0x18, 0x38, 0x00},
	'>':  {0x60, 0x30, 0x18, 0x0C, 0x18, 0x30, 0x60, 0x00},
	'<':  {0x06, 0x0C, 0x18, 0x30, 0x18, 0x0C, 0x06, 0x00},
	'/':  {0x02, 0x06, 0x0C, 0x18, 0x30, 0x60, 0x40, 0x00},
	'\\': {0x40, 0x60, 0x30, 0x18, 0x0C, 0x06, 0x02, 0x00},
	'_':  {0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x7E, 0x00},
	'(':  {0x0C, 0x18, 0x30, 0x30, 0x30, 0x18, 0x0C, 0x00},
	')':  {0x30, 0x18, 0x0C, 0x0C, 0x0C, 0x18, 0x30, 0x00},
	'*':  {0x00, 0x66, 0x3C, 0xFF, 0x3C, 0x66, 0x00, 0x00},
	'|':  {0x18, 0x18, 0x18, 0x18, 0x18, 0x18, 0x18, 0x00},
	'?':  {0x3C, 0x66, 0x06, 0x1C, 0x18, 0x00, 0x18, 0x00},
	'!':  {0x18, 0x18, 0x18, 0x18, 0x18, 0x00, 0x18, 0x00},
	'@':  {0x3C, 0x66, 0x6E, 0x6A, 0x6E, 0x60, 0x3C, 0x00},
	'#':  {0x24, 0x7E, 0x24, 0x24, 0x7E, 0x24, 0x00, 0x00},
	'$':  {0x18, 0x3E, 0x60, 0x3C, 0x06, 0x7C, 0x18, 0x00},
	'%':  {0x62, 0x64, 0x08, 0x10, 0x26, 0x46, 0x00, 0x00},
	'^':  {0x18, 0x3C, 0x66, 0x00, 0x00, 0x00, 0x00, 0x00},
	'&':  {0x38, 0x6C, 0x38, 0x76, 0xDC, 0xCC, 0x76, 0x00},
	'\'': {0x18, 0x18, 0x30, 0x00, 0x00, 0x00, 0x00, 0x00},
	'"':  {0x66, 0x66, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
	'`':  {0x30, 0x18, 0x0C, 0x00, 0x00, 0x00, 0x00, 0x00},
	'~':  {0x00, 0x00, 0x76, 0xDC, 0x00, 0x00, 0x00, 0x00},
	'{':  {0x0E, 0x18, 0x18, 0x70, 0x18, 0x18, 0x0E, 0x00},
	'}':  {0x70, 0x18, 0x18, 0x0E, 0x18, 0x18, 0x70, 0x00},
}
