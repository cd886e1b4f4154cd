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
package editor

import (
	"sort"

	gott "github.com/timburks/isotile/types"
)

// A Grid holds the tile type of every occupied cell of a map.
// Cells are keyed by coordinate, so a coordinate has at most one occupant.
type Grid struct {
	cells map[gott.Coord]gott.TileType
}

func NewGrid() *Grid {
	return &Grid{cells: make(map[gott.Coord]gott.TileType)}
}

func (g *Grid) Lookup(c gott.Coord) (gott.TileType, bool) {
	t, ok := g.cells[c]
	return t, ok
}

// Put creates the cell at c or overwrites its tile type.
func (g *Grid) Put(c gott.Coord, t gott.TileType) {
	g.cells[c] = t
}

// Remove deletes the cell at c and reports whether there was one.
func (g *Grid) Remove(c gott.Coord) bool {
	if _, ok := g.cells[c]; !ok {
		return false
	}
	delete(g.cells, c)
	return true
}

func (g *Grid) Len() int {
	return len(g.cells)
}

// Cells returns a copy of the occupied cells ordered by layer, row and column.
func (g *Grid) Cells() []gott.Cell {
	cells := make([]gott.Cell, 0, len(g.cells))
	for c, t := range g.cells {
		cells = append(cells, gott.Cell{Coord: c, Tile: t})
	}
	sort.Slice(cells, func(i, j int) bool {
		a, b := cells[i].Coord, cells[j].Coord
		if a.Layer != b.Layer {
			return a.Layer < b.Layer
		}
		if a.Position.Y != b.Position.Y {
			return a.Position.Y < b.Position.Y
		}
		return a.Position.X < b.Position.X
	})
	return cells
}

// Layer returns the cells of one layer, keyed by their position.
func (g *Grid) Layer(layer float32) map[gott.Vec2]gott.TileType {
	result := make(map[gott.Vec2]gott.TileType)
	for c, t := range g.cells {
		if c.Layer == layer {
			result[c.Position] = t
		}
	}
	return result
}

// Snapshot returns a copy of the grid contents.
func (g *Grid) Snapshot() map[gott.Coord]gott.TileType {
	result := make(map[gott.Coord]gott.TileType, len(g.cells))
	for c, t := range g.cells {
		result[c] = t
	}
	return result
}
