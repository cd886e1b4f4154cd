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
package types

import "fmt"

// Editor modes
const (
	ModeEdit    = 0
	ModeCommand = 2
	ModeLisp    = 4
	ModeQuit    = 9999
)

// Move directions
const (
	MoveUp    = 0
	MoveDown  = 1
	MoveRight = 2
	MoveLeft  = 3
)

// Event types
const (
	EventKey       = 0
	EventResize    = 1
	EventMouse     = 2
	EventInterrupt = 3 // the screen was woken without user input
)

type Key uint16

// Keys that the commander understands
const (
	KeyUnsupported Key = iota
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyArrowUp
	KeyBackspace2
	KeyCtrlC
	KeyCtrlZ
	KeyEnter
	KeyEsc
	KeyPgdn
	KeyPgup
	KeySpace
	KeyTab
	KeyMouseLeft
	KeyMouseRight
	KeyMouseRelease
)

// An Event is a user input, already translated out of terminal coordinates.
type Event struct {
	Type   int
	Key    Key
	Ch     rune
	Cell   Point // grid cell under the mouse
	OnGrid bool  // true if Cell is inside the map area
}

type Point struct {
	Row int
	Col int
}

type Size struct {
	Rows int
	Cols int
}

// Vec2 is a position in the plane of a layer.
type Vec2 struct {
	X float32
	Y float32
}

// Coord identifies a cell. Equality is exact, component-wise.
type Coord struct {
	Position Vec2
	Layer    float32
}

// NewCoord returns the coordinate of the cell at column x and row y of a layer.
func NewCoord(x, y, layer int) Coord {
	return Coord{Position: Vec2{X: float32(x), Y: float32(y)}, Layer: float32(layer)}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%g,%g)@%g", c.Position.X, c.Position.Y, c.Layer)
}

// TileType is an index into the tile palette. It is opaque to the engine.
type TileType uint

// A Cell is an occupied grid position.
type Cell struct {
	Coord Coord
	Tile  TileType
}

// Grid is a read-only view of the occupied cells of a map.
type Grid interface {
	Lookup(c Coord) (TileType, bool)
	Len() int
	Cells() []Cell // ordered by layer, then row, then column
}

// Editor is implemented by the command engine. Operations call these services.
type Editor interface {
	GetTile(c Coord) (TileType, bool)
	SetTile(c Coord, t TileType) // creates the cell if it does not exist
	RemoveTile(c Coord) bool
	UndoTransaction() // queues the inverses of the most recent transaction
}

type Operation interface {
	Perform(e Editor) []Operation // performs the operation and returns the operations that reverse it
}

// An Inbox collects operations until the next tick.
type Inbox interface {
	Submit(op Operation)
}

type Commander interface {
	GetMode() int
	GetCommand() string
	GetLispText() string
	GetMessage() string
	GetCursor() Point
	GetLayer() int
	GetTileType() TileType
	GetAnchor() (Point, bool)
}
