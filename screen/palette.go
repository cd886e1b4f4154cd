//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package screen

import (
	"github.com/nsf/termbox-go"

	"github.com/timburks/isotile/config"
	gott "github.com/timburks/isotile/types"
)

const (
	missingGlyph = "??"
	dimColor     = 240 // lower layers are drawn in gray
)

// A Palette says how each tile type is drawn.
type Palette struct {
	glyphs []string
	colors []termbox.Attribute
}

func NewPalette(cfg config.PaletteConfig) Palette {
	p := Palette{
		glyphs: make([]string, 0, cfg.Tiles),
		colors: make([]termbox.Attribute, 0, cfg.Tiles),
	}
	for i := 0; i < cfg.Tiles; i++ {
		glyph := missingGlyph
		if i < len(cfg.Glyphs) {
			glyph = cfg.Glyphs[i]
		}
		color := termbox.ColorDefault
		if i < len(cfg.Colors) {
			color = colorAttribute(cfg.Colors[i])
		}
		p.glyphs = append(p.glyphs, glyph)
		p.colors = append(p.colors, color)
	}
	return p
}

// colorAttribute converts an xterm-256 index into a termbox color in
// Output256 mode, where zero means the default color.
func colorAttribute(index int) termbox.Attribute {
	return termbox.Attribute(index + 1)
}

// Glyph returns exactly CellWidth runes for a tile.
func (p Palette) Glyph(t gott.TileType) []rune {
	glyph := missingGlyph
	if int(t) < len(p.glyphs) {
		glyph = p.glyphs[t]
	}
	runes := []rune(glyph)
	for len(runes) < CellWidth {
		runes = append(runes, ' ')
	}
	return runes[0:CellWidth]
}

func (p Palette) Color(t gott.TileType) termbox.Attribute {
	if int(t) < len(p.colors) {
		return p.colors[t]
	}
	return termbox.ColorDefault
}

// Tiles returns the number of tile types in the palette.
func (p Palette) Tiles() int {
	return len(p.glyphs)
}
