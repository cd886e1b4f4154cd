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
	gott "github.com/timburks/isotile/types"
)

// CellWidth is the number of terminal columns used to draw one cell.
const CellWidth = 2

// barRows are the rows below the map used by the info and message bars.
const barRows = 2

// A View is what is drawn at one map position: the highest occupied cell at
// or below the edited layer.
type View struct {
	Tile  gott.TileType
	Layer int
}

// Compose flattens the layers up to and including layer into one view per
// position. Cells on higher layers are hidden.
func Compose(cells []gott.Cell, layer int) map[gott.Point]View {
	views := make(map[gott.Point]View)
	for _, cell := range cells {
		l := int(cell.Coord.Layer)
		if l > layer {
			continue
		}
		p := gott.Point{Row: int(cell.Coord.Position.Y), Col: int(cell.Coord.Position.X)}
		if v, ok := views[p]; ok && v.Layer > l {
			continue
		}
		views[p] = View{Tile: cell.Tile, Layer: l}
	}
	return views
}

// CellPosition returns the terminal position of the left column of a cell.
func CellPosition(p gott.Point) (x, y int) {
	return p.Col * CellWidth, p.Row
}

// CellAt returns the map cell under a terminal position and whether that
// position is inside the map and the drawable map area.
func CellAt(x, y int, screen gott.Size, mapSize gott.Size) (gott.Point, bool) {
	p := gott.Point{Row: y, Col: x / CellWidth}
	if x < 0 || y < 0 || y >= screen.Rows-barRows {
		return p, false
	}
	if p.Row >= mapSize.Rows || p.Col >= mapSize.Cols {
		return p, false
	}
	return p, true
}

// fit pads or truncates text to exactly width columns, with right aligned
// after the left text.
func fit(left, right string, width int) string {
	line := []rune(left)
	r := []rune(right)
	for len(line) < width-len(r) {
		line = append(line, ' ')
	}
	line = append(line, r...)
	if len(line) > width {
		line = line[0:width]
	}
	return string(line)
}
