// Package font provides the fixed bitmap fonts the matrix renders with.
//
// Glyphs are authored as row strings ("1" = lit pixel) and rendered
// proportionally: blank leading/trailing columns are trimmed per glyph, with
// one blank column of tracking between glyphs. Unknown runes are skipped.
package font

import (
	"image/draw"
	"unicode"

	"periph.io/x/devices/v3/ssd1306/image1bit"
)

// Font is a fixed bitmap font.
type Font struct {
	name     string
	height   int // cell height in pixels
	top      int // first glyph row within the cell
	tracking int // blank columns between glyphs
	glyphs   map[rune][]string
}

// Name returns the font's name.
func (f *Font) Name() string { return f.name }

// Height returns the cell height in pixels.
func (f *Font) Height() int { return f.height }

// glyph resolves a rune, falling back to small caps when the font has no
// dedicated lowercase forms.
func (f *Font) glyph(r rune) ([]string, bool) {
	if g, ok := f.glyphs[r]; ok {
		return g, true
	}
	if unicode.IsLower(r) {
		g, ok := f.glyphs[unicode.ToUpper(r)]
		return g, ok
	}
	return nil, false
}

// span returns the lit column range of a glyph. Fully blank glyphs (space)
// report ok=false and render as two blank columns.
func span(rows []string) (first, last int, ok bool) {
	first, last = -1, -1
	for _, row := range rows {
		for x := 0; x < len(row); x++ {
			if row[x] != '1' {
				continue
			}
			if first == -1 || x < first {
				first = x
			}
			if x > last {
				last = x
			}
		}
	}
	return first, last, first != -1
}

const blankWidth = 2

func width(rows []string) int {
	first, last, ok := span(rows)
	if !ok {
		return blankWidth
	}
	return last - first + 1
}

// Extent returns the pixel width and height of s rendered in f.
func (f *Font) Extent(s string) (w, h int) {
	for _, r := range s {
		rows, ok := f.glyph(r)
		if !ok {
			continue
		}
		if w > 0 {
			w += f.tracking
		}
		w += width(rows)
	}
	return w, f.height
}

// Draw renders s onto dst with the top-left of the first cell at (x, y).
func (f *Font) Draw(dst draw.Image, x, y int, s string) {
	cx := x
	for _, r := range s {
		rows, ok := f.glyph(r)
		if !ok {
			continue
		}
		first, _, lit := span(rows)
		if lit {
			for ry, row := range rows {
				for rx := first; rx < len(row); rx++ {
					if row[rx] == '1' {
						dst.Set(cx+rx-first, y+f.top+ry, image1bit.On)
					}
				}
			}
		}
		cx += width(rows) + f.tracking
	}
}

// ByIndex maps the LED_FONT / LED_TICKER_FONT selector onto a font.
func ByIndex(i int) *Font {
	if i == 2 {
		return Sinclair
	}
	return Tiny
}

// Small is the 3x5 widget font used by the temperature readout. It covers
// digits, the minus sign and the letter C; every glyph is exactly 3 columns.
var Small = &Font{
	name:     "small35",
	height:   5,
	tracking: 1,
	glyphs: map[rune][]string{
		'0': {"111", "101", "101", "101", "111"},
		'1': {"010", "110", "010", "010", "111"},
		'2': {"111", "001", "111", "100", "111"},
		'3': {"111", "001", "111", "001", "111"},
		'4': {"101", "101", "111", "001", "001"},
		'5': {"111", "100", "111", "001", "111"},
		'6': {"111", "100", "111", "101", "111"},
		'7': {"111", "001", "010", "100", "100"},
		'8': {"111", "101", "111", "101", "111"},
		'9': {"111", "101", "111", "001", "111"},
		'-': {"000", "000", "111", "000", "000"},
		'C': {"111", "100", "100", "100", "111"},
	},
}
