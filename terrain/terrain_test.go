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
package terrain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timburks/isotile/config"
	"github.com/timburks/isotile/editor"
	gott "github.com/timburks/isotile/types"
)

func TestFlat(t *testing.T) {
	cells := Flat(16, 16, 2)
	require.Len(t, cells, 512)

	assert.Equal(t, gott.Cell{Coord: gott.NewCoord(15, 15, 0), Tile: TileGrass}, cells[0])
	assert.Equal(t, gott.Cell{Coord: gott.NewCoord(0, 0, 0), Tile: TileGrass}, cells[255])
	assert.Equal(t, gott.Cell{Coord: gott.NewCoord(15, 15, 1), Tile: TileRock}, cells[256])
	assert.Equal(t, gott.Cell{Coord: gott.NewCoord(0, 0, 1), Tile: TileRock}, cells[511])

	grid := editor.NewGrid()
	for _, cell := range cells {
		grid.Put(cell.Coord, cell.Tile)
	}
	assert.Equal(t, 512, grid.Len())
}

func TestNoiseIsDeterministic(t *testing.T) {
	a := NewNoise(7, 0.1).Generate(12, 12, 3)
	b := NewNoise(7, 0.1).Generate(12, 12, 3)
	assert.Equal(t, a, b)
}

func TestNoiseFillsGroundLayer(t *testing.T) {
	g := NewNoise(3, 0.15)
	cells := g.Generate(10, 8, 2)

	ground := 0
	for _, cell := range cells {
		h := g.Height(int(cell.Coord.Position.X), int(cell.Coord.Position.Y))
		assert.True(t, h >= 0 && h <= 1)
		switch cell.Coord.Layer {
		case 0:
			ground++
			assert.Contains(t, []gott.TileType{TileWater, TileSand, TileGrass}, cell.Tile)
		case 1:
			assert.Equal(t, TileRock, cell.Tile)
			assert.GreaterOrEqual(t, h, RaisedBase)
		default:
			t.Errorf("unexpected layer %v", cell.Coord.Layer)
		}
	}
	assert.Equal(t, 80, ground)
}

func TestGenerate(t *testing.T) {
	m := config.DefaultConfig().Map

	cells, err := Generate(m)
	require.NoError(t, err)
	assert.Len(t, cells, m.Width*m.Height*m.Layers)

	m.Generator = config.GeneratorEmpty
	cells, err = Generate(m)
	require.NoError(t, err)
	assert.Empty(t, cells)

	m.Generator = config.GeneratorNoise
	cells, err = Generate(m)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(cells), m.Width*m.Height)

	m.Generator = "caves"
	_, err = Generate(m)
	assert.Error(t, err)
}
