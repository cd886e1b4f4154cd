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

// Package terrain generates the map that an editing session starts from.
package terrain

import (
	"fmt"

	"github.com/aquilax/go-perlin"

	"github.com/timburks/isotile/config"
	gott "github.com/timburks/isotile/types"
)

// Tiles placed by the generators
const (
	TileGrass gott.TileType = 0
	TileWater gott.TileType = 1
	TileSand  gott.TileType = 2
	TileRock  gott.TileType = 8
)

// Height bands of the noise generator
const (
	WaterMax   = 0.30
	SandMax    = 0.40
	RaisedBase = 0.60 // layer 1 starts here, each further layer 0.1 higher
	RaisedStep = 0.10
)

// Generate builds the cells for a map configuration.
func Generate(m config.MapConfig) ([]gott.Cell, error) {
	switch m.Generator {
	case config.GeneratorFlat:
		return Flat(m.Width, m.Height, m.Layers), nil
	case config.GeneratorNoise:
		return NewNoise(m.Seed, m.Scale).Generate(m.Width, m.Height, m.Layers), nil
	case config.GeneratorEmpty:
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown map generator %q", m.Generator)
	}
}

// Flat fills every layer completely: grass on layer 0 and rock above it.
// Each layer is listed in descending row-major order, lowest layer first.
func Flat(width, height, layers int) []gott.Cell {
	cells := make([]gott.Cell, 0, width*height*layers)
	for layer := 0; layer < layers; layer++ {
		tile := TileRock
		if layer == 0 {
			tile = TileGrass
		}
		for y := height - 1; y >= 0; y-- {
			for x := width - 1; x >= 0; x-- {
				cells = append(cells, gott.Cell{Coord: gott.NewCoord(x, y, layer), Tile: tile})
			}
		}
	}
	return cells
}

// Noise generates terrain from Perlin noise. Layer 0 is always filled;
// higher layers are raised where the terrain is high enough.
type Noise struct {
	Seed  int64
	Scale float64 // sampling step per cell
	noise *perlin.Perlin
}

func NewNoise(seed int64, scale float64) *Noise {
	alpha := 2.0
	beta := 2.0
	n := int32(3)
	return &Noise{
		Seed:  seed,
		Scale: scale,
		noise: perlin.NewPerlin(alpha, beta, n, seed),
	}
}

// Height returns the terrain height at a cell, between 0 and 1.
func (g *Noise) Height(x, y int) float64 {
	h := (g.noise.Noise2D(float64(x)*g.Scale, float64(y)*g.Scale) + 1) / 2
	if h < 0 {
		return 0
	}
	if h > 1 {
		return 1
	}
	return h
}

func (g *Noise) Generate(width, height, layers int) []gott.Cell {
	cells := make([]gott.Cell, 0, width*height)
	for layer := 0; layer < layers; layer++ {
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				if tile, ok := g.Tile(x, y, layer); ok {
					cells = append(cells, gott.Cell{Coord: gott.NewCoord(x, y, layer), Tile: tile})
				}
			}
		}
	}
	return cells
}

// Tile returns the tile generated at a cell, if any.
func (g *Noise) Tile(x, y, layer int) (gott.TileType, bool) {
	h := g.Height(x, y)
	if layer == 0 {
		switch {
		case h < WaterMax:
			return TileWater, true
		case h < SandMax:
			return TileSand, true
		default:
			return TileGrass, true
		}
	}
	if h >= RaisedBase+RaisedStep*float64(layer-1) {
		return TileRock, true
	}
	return 0, false
}
