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
	gott "github.com/timburks/isotile/types"
)

// The Editor applies operations to a grid once per tick and keeps the undo
// history. All inverses recorded during one tick share a transaction id, so
// a single undo reverses everything a tick changed.
type Editor struct {
	grid        *Grid      // cells being edited
	history     *History   // inverses of user operations
	transaction uint64     // id of the transaction being recorded
	queue       []queued   // work queue of the tick in progress
	stats       *TickStats // counters of the tick in progress
}

type queued struct {
	op            gott.Operation
	userGenerated bool // false for operations queued by undo
}

// TickStats summarizes the work done by one tick.
type TickStats struct {
	Transaction uint64 // transaction id the tick recorded under
	Submitted   int    // operations in the batch
	Performed   int    // operations performed, undo expansions included
	Recorded    int    // inverses pushed onto the history
	Undone      int    // inverses queued by undo
}

func NewEditor() *Editor {
	return &Editor{
		grid:    NewGrid(),
		history: NewHistory(),
		queue:   make([]queued, 0),
	}
}

func (e *Editor) Grid() *Grid {
	return e.grid
}

func (e *Editor) History() *History {
	return e.history
}

// Transaction returns the id that the next tick will record under.
func (e *Editor) Transaction() uint64 {
	return e.transaction
}

// Seed writes cells directly into the grid without recording history.
func (e *Editor) Seed(cells []gott.Cell) {
	for _, cell := range cells {
		e.grid.Put(cell.Coord, cell.Tile)
	}
}

// Tick performs a batch of submitted operations.
//
// The batch is queued in arrival order and the queue is drained from its
// tail, so submitted operations run in reverse order. Inverses queued by an
// undo go onto the same tail and run before any submitted operation still
// waiting. The transaction id advances once per tick, even for an empty batch.
func (e *Editor) Tick(batch []gott.Operation) TickStats {
	stats := TickStats{
		Transaction: e.transaction,
		Submitted:   len(batch),
	}
	e.stats = &stats
	defer func() { e.stats = nil }()

	e.queue = e.queue[0:0]
	for _, op := range batch {
		e.queue = append(e.queue, queued{op: op, userGenerated: true})
	}
	for len(e.queue) > 0 {
		last := len(e.queue) - 1
		next := e.queue[last]
		e.queue = e.queue[0:last]

		inverses := next.op.Perform(e)
		stats.Performed++
		if next.userGenerated {
			for _, inverse := range inverses {
				e.history.Push(e.transaction, inverse)
				stats.Recorded++
			}
		}
	}
	e.transaction++
	return stats
}

// editor services, called by operations

func (e *Editor) GetTile(c gott.Coord) (gott.TileType, bool) {
	return e.grid.Lookup(c)
}

func (e *Editor) SetTile(c gott.Coord, t gott.TileType) {
	e.grid.Put(c, t)
}

func (e *Editor) RemoveTile(c gott.Coord) bool {
	return e.grid.Remove(c)
}

func (e *Editor) UndoTransaction() {
	for _, entry := range e.history.PopTransaction() {
		e.queue = append(e.queue, queued{op: entry.Inverse, userGenerated: false})
		if e.stats != nil {
			e.stats.Undone++
		}
	}
}
