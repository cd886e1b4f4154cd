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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timburks/isotile/editor"
	"github.com/timburks/isotile/operations"
	gott "github.com/timburks/isotile/types"
)

type inbox struct {
	ops []gott.Operation
}

func (i *inbox) Submit(op gott.Operation) {
	i.ops = append(i.ops, op)
}

func newCommander() (*Commander, *inbox, *editor.Grid) {
	in := &inbox{}
	grid := editor.NewGrid()
	return NewCommander(in, grid), in, grid
}

func key(k gott.Key) *gott.Event {
	return &gott.Event{Type: gott.EventKey, Key: k}
}

func char(ch rune) *gott.Event {
	return &gott.Event{Type: gott.EventKey, Ch: ch}
}

func typeText(t *testing.T, c *Commander, text string) {
	t.Helper()
	for _, ch := range text {
		if ch == ' ' {
			require.NoError(t, c.ProcessEvent(key(gott.KeySpace)))
		} else {
			require.NoError(t, c.ProcessEvent(char(ch)))
		}
	}
}

func mouse(k gott.Key, row, col int) *gott.Event {
	return &gott.Event{Type: gott.EventMouse, Key: k, Cell: gott.Point{Row: row, Col: col}, OnGrid: true}
}

func TestCursorMovement(t *testing.T) {
	c, _, _ := newCommander()
	typeText(t, c, "lljjj")
	assert.Equal(t, gott.Point{Row: 3, Col: 2}, c.GetCursor())

	typeText(t, c, "20l")
	assert.Equal(t, gott.Point{Row: 3, Col: 15}, c.GetCursor())

	c.ProcessEvent(key(gott.KeyArrowUp))
	c.ProcessEvent(key(gott.KeyArrowLeft))
	assert.Equal(t, gott.Point{Row: 2, Col: 14}, c.GetCursor())

	typeText(t, c, "9k9h")
	assert.Equal(t, gott.Point{Row: 0, Col: 5}, c.GetCursor())
}

func TestSpaceSubmitsSet(t *testing.T) {
	c, in, _ := newCommander()
	typeText(t, c, "l.. ")

	require.Len(t, in.ops, 1)
	assert.Equal(t, &operations.Set{
		Coords:   []gott.Coord{gott.NewCoord(1, 0, 0)},
		TileType: 2,
	}, in.ops[0])
}

func TestTileAndLayerSelectionIsClamped(t *testing.T) {
	c, _, _ := newCommander()
	typeText(t, c, ",")
	assert.Equal(t, gott.TileType(0), c.GetTileType())

	for i := 0; i < 30; i++ {
		typeText(t, c, "]")
	}
	assert.Equal(t, gott.TileType(24), c.GetTileType())

	c.ProcessEvent(key(gott.KeyPgdn))
	assert.Equal(t, 0, c.GetLayer())
	for i := 0; i < 5; i++ {
		c.ProcessEvent(key(gott.KeyPgup))
	}
	assert.Equal(t, 3, c.GetLayer())
	typeText(t, c, "-")
	assert.Equal(t, 2, c.GetLayer())

	c.SetLimits(4, 1)
	assert.Equal(t, gott.TileType(3), c.GetTileType())
	assert.Equal(t, 1, c.GetLayer())
}

func TestLineFillFromAnchor(t *testing.T) {
	c, in, _ := newCommander()
	typeText(t, c, "+v3l")
	anchor, ok := c.GetAnchor()
	require.True(t, ok)
	assert.Equal(t, gott.Point{}, anchor)

	c.ProcessEvent(key(gott.KeyEnter))
	_, ok = c.GetAnchor()
	assert.False(t, ok)

	require.Len(t, in.ops, 1)
	set := in.ops[0].(*operations.Set)
	assert.Equal(t, []gott.Coord{
		gott.NewCoord(0, 0, 1),
		gott.NewCoord(1, 0, 1),
		gott.NewCoord(2, 0, 1),
		gott.NewCoord(3, 0, 1),
	}, set.Coords)
}

func TestDespawnAndUndoKeys(t *testing.T) {
	c, in, _ := newCommander()
	typeText(t, c, "jxu")
	c.ProcessEvent(key(gott.KeyCtrlZ))

	require.Len(t, in.ops, 3)
	assert.Equal(t, &operations.Despawn{Coord: gott.NewCoord(0, 1, 0)}, in.ops[0])
	assert.Equal(t, &operations.Undo{}, in.ops[1])
	assert.Equal(t, &operations.Undo{}, in.ops[2])
}

func TestPickTileUnderCursor(t *testing.T) {
	c, _, grid := newCommander()
	grid.Put(gott.NewCoord(0, 0, 0), 17)
	typeText(t, c, "p")
	assert.Equal(t, gott.TileType(17), c.GetTileType())
}

func TestMouseClickSetsCell(t *testing.T) {
	c, in, _ := newCommander()
	c.ProcessEvent(mouse(gott.KeyMouseLeft, 4, 5))
	c.ProcessEvent(mouse(gott.KeyMouseRelease, 4, 5))

	require.Len(t, in.ops, 1)
	assert.Equal(t, []gott.Coord{gott.NewCoord(5, 4, 0)}, in.ops[0].(*operations.Set).Coords)
	assert.Equal(t, gott.Point{Row: 4, Col: 5}, c.GetCursor())
}

func TestMouseDragFillsLine(t *testing.T) {
	c, in, _ := newCommander()
	c.ProcessEvent(mouse(gott.KeyMouseLeft, 0, 0))
	c.ProcessEvent(mouse(gott.KeyMouseLeft, 1, 1))
	c.ProcessEvent(mouse(gott.KeyMouseLeft, 2, 2))
	c.ProcessEvent(mouse(gott.KeyMouseRelease, 2, 2))

	require.Len(t, in.ops, 1)
	assert.Equal(t, []gott.Coord{
		gott.NewCoord(0, 0, 0),
		gott.NewCoord(1, 1, 0),
		gott.NewCoord(2, 2, 0),
	}, in.ops[0].(*operations.Set).Coords)
}

func TestMouseOffGridIsIgnored(t *testing.T) {
	c, in, _ := newCommander()
	c.ProcessEvent(&gott.Event{Type: gott.EventMouse, Key: gott.KeyMouseLeft})
	c.ProcessEvent(&gott.Event{Type: gott.EventMouse, Key: gott.KeyMouseRelease})
	assert.Empty(t, in.ops)
}

func TestRightClickDespawns(t *testing.T) {
	c, in, _ := newCommander()
	c.ProcessEvent(mouse(gott.KeyMouseRight, 3, 1))
	require.Len(t, in.ops, 1)
	assert.Equal(t, &operations.Despawn{Coord: gott.NewCoord(1, 3, 0)}, in.ops[0])
}

func TestCommands(t *testing.T) {
	c, in, _ := newCommander()
	debug := false
	c.SetDebugHook(func(on bool) { debug = on })

	typeText(t, c, ":tile 7")
	assert.Equal(t, gott.ModeCommand, c.GetMode())
	assert.Equal(t, "tile 7", c.GetCommand())
	c.ProcessEvent(key(gott.KeyEnter))
	assert.Equal(t, gott.ModeEdit, c.GetMode())
	assert.Equal(t, gott.TileType(7), c.GetTileType())

	typeText(t, c, ":layer 2")
	c.ProcessEvent(key(gott.KeyEnter))
	assert.Equal(t, 2, c.GetLayer())

	typeText(t, c, ":layer x")
	c.ProcessEvent(key(gott.KeyEnter))
	assert.Equal(t, 2, c.GetLayer())
	assert.NotEmpty(t, c.GetMessage())

	typeText(t, c, ":undo")
	c.ProcessEvent(key(gott.KeyEnter))
	require.Len(t, in.ops, 1)

	typeText(t, c, ":debug on")
	c.ProcessEvent(key(gott.KeyEnter))
	assert.True(t, debug)

	typeText(t, c, ":bogus")
	c.ProcessEvent(key(gott.KeyEnter))
	assert.Equal(t, "unknown command: bogus", c.GetMessage())

	typeText(t, c, ":q")
	c.ProcessEvent(key(gott.KeyEnter))
	assert.False(t, c.IsRunning())
}

func TestCommandEditing(t *testing.T) {
	c, _, _ := newCommander()
	typeText(t, c, ":tilx")
	c.ProcessEvent(key(gott.KeyBackspace2))
	assert.Equal(t, "til", c.GetCommand())
	c.ProcessEvent(key(gott.KeyEsc))
	assert.Equal(t, gott.ModeEdit, c.GetMode())
}

func TestUniqueCoords(t *testing.T) {
	a := gott.NewCoord(0, 0, 0)
	b := gott.NewCoord(1, 0, 0)
	assert.Equal(t, []gott.Coord{a, b}, uniqueCoords([]gott.Coord{a, b, a, b, a}))
}
