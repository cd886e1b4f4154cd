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
package commander

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/timburks/isotile/operations"
	gott "github.com/timburks/isotile/types"
)

// Defaults for the tile and layer ranges.
const (
	DefaultTiles    = 25
	DefaultMaxLayer = 3
)

// The Commander converts user input into operations for the session.
type Commander struct {
	inbox      gott.Inbox    // receives operations
	grid       gott.Grid     // map being edited, read only
	ticker     func() int    // runs a tick; used by scripts
	debugHook  func(bool)    // called when debug mode changes
	mode       int           // editor mode
	debug      bool          // debug mode displays information about events
	command    string        // command as it is being typed on the command line
	lispText   string        // lisp command as it is being typed
	message    string        // status message
	multiplier string        // multiplier string as it is being entered
	cursor     gott.Point    // cell under the cursor
	bounds     gott.Size     // cursor range
	layer      int           // layer being edited
	maxLayer   int           // highest selectable layer
	tile       gott.TileType // tile placed by set operations
	tiles      int           // number of tile types
	anchor     gott.Point    // start of a line fill
	anchored   bool          // true if a line fill is in progress
	dragging   bool          // true while the mouse button is held
}

func NewCommander(inbox gott.Inbox, grid gott.Grid) *Commander {
	return &Commander{
		inbox:    inbox,
		grid:     grid,
		mode:     gott.ModeEdit,
		bounds:   gott.Size{Rows: 16, Cols: 16},
		layer:    0,
		maxLayer: DefaultMaxLayer,
		tiles:    DefaultTiles,
	}
}

// SetLimits sets the number of tile types and the highest editable layer.
func (c *Commander) SetLimits(tiles, maxLayer int) {
	c.tiles = tiles
	c.maxLayer = maxLayer
	c.SelectTile(int(c.tile))
	c.SelectLayer(c.layer)
	c.bindLimits()
}

// SetBounds limits cursor movement to a map of the given size.
func (c *Commander) SetBounds(size gott.Size) {
	c.bounds = size
	c.cursor = c.clamp(c.cursor)
}

func (c *Commander) SetTicker(f func() int) {
	c.ticker = f
}

func (c *Commander) SetDebugHook(f func(bool)) {
	c.debugHook = f
}

func (c *Commander) GetMode() int {
	return c.mode
}

func (c *Commander) SetMode(m int) {
	c.mode = m
}

func (c *Commander) IsRunning() bool {
	return c.mode != gott.ModeQuit
}

func (c *Commander) ProcessEvent(event *gott.Event) error {
	if c.debug {
		c.message = fmt.Sprintf("event=%+v", event)
	}
	switch event.Type {
	case gott.EventKey:
		return c.ProcessKey(event)
	case gott.EventMouse:
		return c.ProcessMouse(event)
	case gott.EventResize:
		return nil
	default:
		return nil
	}
}

func (c *Commander) ProcessKey(event *gott.Event) error {
	switch c.mode {
	case gott.ModeEdit:
		return c.ProcessKeyEditMode(event)
	case gott.ModeCommand:
		return c.ProcessKeyCommandMode(event)
	case gott.ModeLisp:
		return c.ProcessKeyLispMode(event)
	}
	return nil
}

func (c *Commander) ProcessKeyEditMode(event *gott.Event) error {
	key := event.Key
	ch := event.Ch
	if key != 0 {
		switch key {
		case gott.KeyEsc:
			c.anchored = false
			c.multiplier = ""
		case gott.KeyArrowUp:
			c.MoveCursor(gott.MoveUp, c.Multiplier())
		case gott.KeyArrowDown:
			c.MoveCursor(gott.MoveDown, c.Multiplier())
		case gott.KeyArrowLeft:
			c.MoveCursor(gott.MoveLeft, c.Multiplier())
		case gott.KeyArrowRight:
			c.MoveCursor(gott.MoveRight, c.Multiplier())
		case gott.KeyPgup:
			c.SelectLayer(c.layer + 1)
		case gott.KeyPgdn:
			c.SelectLayer(c.layer - 1)
		case gott.KeySpace, gott.KeyEnter:
			c.Place()
		case gott.KeyCtrlZ:
			c.Undo()
		}
	}
	if ch != 0 {
		switch ch {
		//
		// command multipliers apply to cursor movement
		//
		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			c.multiplier += string(ch)
		//
		// commands go to the message bar
		//
		case ':':
			c.mode = gott.ModeCommand
			c.command = ""
		//
		// lisp commands go to the message bar
		//
		case '(':
			c.mode = gott.ModeLisp
			c.lispText = "("
		//
		// cursor movement doesn't change the map
		//
		case 'h':
			c.MoveCursor(gott.MoveLeft, c.Multiplier())
		case 'j':
			c.MoveCursor(gott.MoveDown, c.Multiplier())
		case 'k':
			c.MoveCursor(gott.MoveUp, c.Multiplier())
		case 'l':
			c.MoveCursor(gott.MoveRight, c.Multiplier())
		//
		// tile and layer selection
		//
		case ',', '[':
			c.SelectTile(int(c.tile) - 1)
		case '.', ']':
			c.SelectTile(int(c.tile) + 1)
		case '+':
			c.SelectLayer(c.layer + 1)
		case '-':
			c.SelectLayer(c.layer - 1)
		case 'p': // pick the tile under the cursor
			if tile, ok := c.grid.Lookup(c.coord(c.cursor)); ok {
				c.SelectTile(int(tile))
			}
		//
		// operations go to the inbox
		//
		case 'v':
			if c.anchored {
				c.anchored = false
			} else {
				c.anchor = c.cursor
				c.anchored = true
			}
		case 'x':
			c.Despawn(c.cursor)
		case 'u':
			c.Undo()
		}
	}
	return nil
}

func (c *Commander) ProcessKeyCommandMode(event *gott.Event) error {
	key := event.Key
	ch := event.Ch
	if key != 0 {
		switch key {
		case gott.KeyEsc:
			c.mode = gott.ModeEdit
		case gott.KeyEnter:
			c.PerformCommand()
		case gott.KeyBackspace2:
			if len(c.command) > 0 {
				c.command = c.command[0 : len(c.command)-1]
			}
		case gott.KeySpace:
			c.command += " "
		}
	}
	if ch != 0 {
		c.command = c.command + string(ch)
	}
	return nil
}

func (c *Commander) ProcessKeyLispMode(event *gott.Event) error {
	key := event.Key
	ch := event.Ch
	if key != 0 {
		switch key {
		case gott.KeyEsc:
			c.mode = gott.ModeEdit
		case gott.KeyEnter:
			c.message = c.ParseEval(c.lispText)
			c.mode = gott.ModeEdit
		case gott.KeyBackspace2:
			if len(c.lispText) > 0 {
				c.lispText = c.lispText[0 : len(c.lispText)-1]
			}
		case gott.KeySpace:
			c.lispText += " "
		}
	}
	if ch != 0 {
		c.lispText = c.lispText + string(ch)
	}
	return nil
}

// ProcessMouse handles clicks on the map. A press starts a drag at the cell;
// the release sets the cell, or fills a line if the mouse moved.
func (c *Commander) ProcessMouse(event *gott.Event) error {
	if c.mode != gott.ModeEdit {
		return nil
	}
	switch event.Key {
	case gott.KeyMouseLeft:
		if !event.OnGrid {
			return nil
		}
		c.cursor = event.Cell
		if !c.dragging {
			c.dragging = true
			c.anchor = event.Cell
			c.anchored = true
		}
	case gott.KeyMouseRelease:
		if !c.dragging {
			return nil
		}
		c.dragging = false
		if event.OnGrid {
			c.cursor = event.Cell
		}
		c.Place()
	case gott.KeyMouseRight:
		if event.OnGrid {
			c.cursor = event.Cell
			c.Despawn(event.Cell)
		}
	}
	return nil
}

func (c *Commander) PerformCommand() {
	parts := strings.Fields(c.command)
	c.message = ""
	if len(parts) > 0 {
		switch parts[0] {
		case "q":
			c.mode = gott.ModeQuit
			return
		case "tile":
			if n, ok := c.numberArgument(parts); ok {
				c.SelectTile(n)
			}
		case "layer":
			if n, ok := c.numberArgument(parts); ok {
				c.SelectLayer(n)
			}
		case "undo":
			c.Undo()
		case "debug":
			if len(parts) == 2 {
				if parts[1] == "on" {
					c.SetDebug(true)
				} else if parts[1] == "off" {
					c.SetDebug(false)
					c.message = ""
				}
			}
		default:
			c.message = "unknown command: " + parts[0]
		}
	}
	c.command = ""
	c.mode = gott.ModeEdit
}

func (c *Commander) numberArgument(parts []string) (int, bool) {
	if len(parts) != 2 {
		c.message = fmt.Sprintf("usage: %s N", parts[0])
		return 0, false
	}
	n, err := strconv.Atoi(parts[1])
	if err != nil {
		c.message = err.Error()
		return 0, false
	}
	return n, true
}

func (c *Commander) SetDebug(debug bool) {
	c.debug = debug
	if c.debugHook != nil {
		c.debugHook(debug)
	}
}

func (c *Commander) Multiplier() int {
	if c.multiplier == "" {
		return 1
	}
	i, err := strconv.ParseInt(c.multiplier, 10, 64)
	c.multiplier = ""
	if err != nil {
		return 1
	}
	return int(i)
}

func (c *Commander) MoveCursor(direction int, n int) {
	switch direction {
	case gott.MoveUp:
		c.cursor.Row -= n
	case gott.MoveDown:
		c.cursor.Row += n
	case gott.MoveLeft:
		c.cursor.Col -= n
	case gott.MoveRight:
		c.cursor.Col += n
	}
	c.cursor = c.clamp(c.cursor)
}

func (c *Commander) SetCursor(p gott.Point) {
	c.cursor = c.clamp(p)
}

func (c *Commander) clamp(p gott.Point) gott.Point {
	if p.Row >= c.bounds.Rows {
		p.Row = c.bounds.Rows - 1
	}
	if p.Col >= c.bounds.Cols {
		p.Col = c.bounds.Cols - 1
	}
	if p.Row < 0 {
		p.Row = 0
	}
	if p.Col < 0 {
		p.Col = 0
	}
	return p
}

// SelectTile sets the tile placed by later operations, clamped to the palette.
func (c *Commander) SelectTile(n int) {
	if n >= c.tiles {
		n = c.tiles - 1
	}
	if n < 0 {
		n = 0
	}
	c.tile = gott.TileType(n)
}

// SelectLayer sets the layer edited by later operations.
func (c *Commander) SelectLayer(n int) {
	if n > c.maxLayer {
		n = c.maxLayer
	}
	if n < 0 {
		n = 0
	}
	c.layer = n
}

func (c *Commander) coord(p gott.Point) gott.Coord {
	return gott.NewCoord(p.Col, p.Row, c.layer)
}

// Place sets the cell under the cursor, or every cell on the line from the
// anchor to the cursor if a line fill is in progress.
func (c *Commander) Place() {
	if c.anchored {
		c.anchored = false
		c.Fill(c.anchor, c.cursor)
		return
	}
	c.Set([]gott.Point{c.cursor})
}

// Fill sets the cells on the line from a to b as a single operation.
func (c *Commander) Fill(a, b gott.Point) {
	c.Set(Line(a, b))
}

// Set submits one operation that sets the current tile at the given cells
// of the current layer. Repeated cells are dropped.
func (c *Commander) Set(points []gott.Point) {
	coords := make([]gott.Coord, 0, len(points))
	for _, p := range points {
		coords = append(coords, c.coord(p))
	}
	c.inbox.Submit(&operations.Set{Coords: uniqueCoords(coords), TileType: c.tile})
}

func (c *Commander) Despawn(p gott.Point) {
	c.inbox.Submit(&operations.Despawn{Coord: c.coord(p)})
}

func (c *Commander) Undo() {
	c.inbox.Submit(&operations.Undo{})
}

func uniqueCoords(coords []gott.Coord) []gott.Coord {
	seen := make(map[gott.Coord]bool, len(coords))
	unique := make([]gott.Coord, 0, len(coords))
	for _, coord := range coords {
		if !seen[coord] {
			seen[coord] = true
			unique = append(unique, coord)
		}
	}
	return unique
}

func (c *Commander) GetLispText() string {
	return c.lispText
}

func (c *Commander) GetCommand() string {
	return c.command
}

func (c *Commander) GetMessage() string {
	return c.message
}

func (c *Commander) SetMessage(message string) {
	c.message = message
}

func (c *Commander) GetCursor() gott.Point {
	return c.cursor
}

func (c *Commander) GetLayer() int {
	return c.layer
}

func (c *Commander) GetTileType() gott.TileType {
	return c.tile
}

func (c *Commander) GetAnchor() (gott.Point, bool) {
	return c.anchor, c.anchored
}
