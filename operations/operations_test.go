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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gott "github.com/timburks/isotile/types"
)

// fakeEditor records the services that operations call.
type fakeEditor struct {
	tiles  map[gott.Coord]gott.TileType
	undos  int
	events []string
}

func newFakeEditor() *fakeEditor {
	return &fakeEditor{tiles: make(map[gott.Coord]gott.TileType)}
}

func (e *fakeEditor) GetTile(c gott.Coord) (gott.TileType, bool) {
	t, ok := e.tiles[c]
	return t, ok
}

func (e *fakeEditor) SetTile(c gott.Coord, t gott.TileType) {
	e.events = append(e.events, "set "+c.String())
	e.tiles[c] = t
}

func (e *fakeEditor) RemoveTile(c gott.Coord) bool {
	e.events = append(e.events, "remove "+c.String())
	_, ok := e.tiles[c]
	delete(e.tiles, c)
	return ok
}

func (e *fakeEditor) UndoTransaction() {
	e.undos++
}

func TestSetReturnsOneInversePerCoordinate(t *testing.T) {
	e := newFakeEditor()
	a := gott.NewCoord(0, 0, 1)
	b := gott.NewCoord(1, 0, 1)
	e.tiles[a] = 7

	inverses := (&Set{Coords: []gott.Coord{a, b}, TileType: 3}).Perform(e)

	require.Len(t, inverses, 2)
	assert.Equal(t, &Set{Coords: []gott.Coord{a}, TileType: 7}, inverses[0])
	assert.Equal(t, &Despawn{Coord: b}, inverses[1])
	assert.Equal(t, gott.TileType(3), e.tiles[a])
	assert.Equal(t, gott.TileType(3), e.tiles[b])
	assert.Equal(t, []string{"set " + a.String(), "set " + b.String()}, e.events)
}

func TestSetWithNoCoordinates(t *testing.T) {
	e := newFakeEditor()
	inverses := (&Set{TileType: 3}).Perform(e)
	assert.Empty(t, inverses)
	assert.Empty(t, e.events)
}

func TestInversesRestoreState(t *testing.T) {
	e := newFakeEditor()
	a := gott.NewCoord(2, 3, 0)
	b := gott.NewCoord(4, 5, 0)
	e.tiles[a] = 1

	inverses := (&Set{Coords: []gott.Coord{a, b}, TileType: 9}).Perform(e)
	require.Len(t, inverses, 2)

	// restoring an overwritten cell is itself undoable; removing a created one is not
	assert.Equal(t, []gott.Operation{&Set{Coords: []gott.Coord{a}, TileType: 9}}, inverses[0].Perform(e))
	assert.Nil(t, inverses[1].Perform(e))
	assert.Equal(t, map[gott.Coord]gott.TileType{a: 1}, e.tiles)
}

func TestDespawnIsNotRecorded(t *testing.T) {
	e := newFakeEditor()
	c := gott.NewCoord(0, 0, 0)
	e.tiles[c] = 4

	assert.Nil(t, (&Despawn{Coord: c}).Perform(e))
	assert.Empty(t, e.tiles)

	// removing a missing cell is a no-op
	assert.Nil(t, (&Despawn{Coord: c}).Perform(e))
}

func TestUndoAsksEditorForTransaction(t *testing.T) {
	e := newFakeEditor()
	assert.Nil(t, (&Undo{}).Perform(e))
	assert.Equal(t, 1, e.undos)
}

func TestKind(t *testing.T) {
	assert.Equal(t, KindSet, Kind(&Set{}))
	assert.Equal(t, KindDespawn, Kind(&Despawn{}))
	assert.Equal(t, KindUndo, Kind(&Undo{}))
	assert.Equal(t, KindUnknown, Kind(nil))
}

func TestString(t *testing.T) {
	assert.Equal(t, "Set[(1,2)@0]=5", (&Set{Coords: []gott.Coord{gott.NewCoord(1, 2, 0)}, TileType: 5}).String())
}
