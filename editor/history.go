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

// An UndoEntry is an inverse operation and the transaction that recorded it.
// Inverses are single-cell Sets or Despawns.
type UndoEntry struct {
	Transaction uint64
	Inverse     gott.Operation
}

// History is the undo log. The most recent entry is at the end.
type History struct {
	entries []UndoEntry
}

func NewHistory() *History {
	return &History{entries: make([]UndoEntry, 0)}
}

func (h *History) Push(transaction uint64, inverse gott.Operation) {
	h.entries = append(h.entries, UndoEntry{Transaction: transaction, Inverse: inverse})
}

func (h *History) Len() int {
	return len(h.entries)
}

// Entries returns a copy of the log, oldest first.
func (h *History) Entries() []UndoEntry {
	entries := make([]UndoEntry, len(h.entries))
	copy(entries, h.entries)
	return entries
}

// PopTransaction removes every entry of the most recent transaction and
// returns them in the order they were popped, most recent first.
func (h *History) PopTransaction() []UndoEntry {
	if len(h.entries) == 0 {
		return nil
	}
	group := h.entries[len(h.entries)-1].Transaction
	popped := make([]UndoEntry, 0)
	for len(h.entries) > 0 {
		last := len(h.entries) - 1
		if h.entries[last].Transaction != group {
			break
		}
		popped = append(popped, h.entries[last])
		h.entries = h.entries[0:last]
	}
	return popped
}
