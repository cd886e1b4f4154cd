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
package operations

import (
	"fmt"

	gott "github.com/timburks/isotile/types"
)

// Set assigns a tile type to every listed cell.
// Coordinates are handled independently and in order; a line fill is a
// single Set with many coordinates.
type Set struct {
	Coords   []gott.Coord
	TileType gott.TileType
}

func (op *Set) Perform(e gott.Editor) []gott.Operation {
	inverses := make([]gott.Operation, 0, len(op.Coords))
	for _, coord := range op.Coords {
		if previous, ok := e.GetTile(coord); ok {
			inverses = append(inverses, &Set{
				Coords:   []gott.Coord{coord},
				TileType: previous,
			})
		} else {
			inverses = append(inverses, &Despawn{Coord: coord})
		}
		e.SetTile(coord, op.TileType)
	}
	return inverses
}

func (op *Set) String() string {
	return fmt.Sprintf("Set%v=%d", op.Coords, op.TileType)
}
