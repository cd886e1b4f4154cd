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
package predict

import (
	"fmt"
	"sort"

	"github.com/timburks/isotile/operations"
	gott "github.com/timburks/isotile/types"
)

// Depth is the number of keys in a context.
const Depth = 2

// emptyLayer is the layer assumed for a Set with no coordinates.
const emptyLayer = 1

// A BaseKey describes one Set.
type BaseKey struct {
	LayerChange int
	TileType    gott.TileType
}

func (k BaseKey) String() string {
	return fmt.Sprintf("%+d:%d", k.LayerChange, k.TileType)
}

// A Context is a run of consecutive keys, oldest first.
type Context [Depth]BaseKey

func (c Context) String() string {
	return fmt.Sprintf("%v", [Depth]BaseKey(c))
}

// A Prediction is a key that followed a context and how many times it did.
type Prediction struct {
	Key   BaseKey
	Count int
}

// The Model is a frequency table from contexts to the keys that followed them.
// The table is never pruned; its size is bounded by the number of distinct
// layer changes and tile types seen during a session.
type Model struct {
	history   []BaseKey                   // keys not yet consolidated, trimmed to Depth each tick
	table     map[Context]map[BaseKey]int // counts of keys following each context
	lastLayer int                         // layer of the most recent Set
	trained   int                         // windows counted so far
}

func NewModel() *Model {
	return &Model{
		history: make([]BaseKey, 0, Depth+1),
		table:   make(map[Context]map[BaseKey]int),
	}
}

// Train folds a tick's batch of operations into the model.
// Operations are read in arrival order and only Sets are used.
// It returns the number of windows counted.
func (m *Model) Train(batch []gott.Operation) int {
	for _, op := range batch {
		set, ok := op.(*operations.Set)
		if !ok {
			continue
		}
		layer := emptyLayer
		if len(set.Coords) > 0 {
			layer = int(set.Coords[0].Layer)
		}
		m.history = append(m.history, BaseKey{
			LayerChange: layer - m.lastLayer,
			TileType:    set.TileType,
		})
		m.lastLayer = layer
	}
	return m.consolidate()
}

// consolidate counts every window of Depth+1 keys in the history and then
// drops all but the last Depth keys.
func (m *Model) consolidate() int {
	if len(m.history) <= Depth {
		return 0
	}
	counted := 0
	for i := 0; i+Depth < len(m.history); i++ {
		var context Context
		copy(context[:], m.history[i:i+Depth])
		next := m.history[i+Depth]

		followers, ok := m.table[context]
		if !ok {
			followers = make(map[BaseKey]int)
			m.table[context] = followers
		}
		followers[next]++
		counted++
	}
	m.history = append(m.history[0:0], m.history[len(m.history)-Depth:]...)
	m.trained += counted
	return counted
}

// Predict returns the keys that followed a context, most frequent first.
// Equal counts are ordered by layer change and then tile type.
// It returns nil for a context the model has never seen.
func (m *Model) Predict(context Context) []Prediction {
	followers, ok := m.table[context]
	if !ok {
		return nil
	}
	predictions := make([]Prediction, 0, len(followers))
	for key, count := range followers {
		predictions = append(predictions, Prediction{Key: key, Count: count})
	}
	sort.Slice(predictions, func(i, j int) bool {
		a, b := predictions[i], predictions[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		if a.Key.LayerChange != b.Key.LayerChange {
			return a.Key.LayerChange < b.Key.LayerChange
		}
		return a.Key.TileType < b.Key.TileType
	})
	return predictions
}

// Suggestions returns predictions for every context in the current history.
func (m *Model) Suggestions() map[Context][]Prediction {
	suggestions := make(map[Context][]Prediction)
	for i := 0; i+Depth <= len(m.history); i++ {
		var context Context
		copy(context[:], m.history[i:i+Depth])
		if predictions := m.Predict(context); predictions != nil {
			suggestions[context] = predictions
		}
	}
	return suggestions
}

// Count returns how many times next followed a context.
func (m *Model) Count(context Context, next BaseKey) int {
	return m.table[context][next]
}

// History returns a copy of the keys waiting to be consolidated.
func (m *Model) History() []BaseKey {
	history := make([]BaseKey, len(m.history))
	copy(history, m.history)
	return history
}

// Contexts returns the number of contexts in the table.
func (m *Model) Contexts() int {
	return len(m.table)
}

// Trained returns the number of windows counted since the model was created.
func (m *Model) Trained() int {
	return m.trained
}

func (m *Model) LastLayer() int {
	return m.lastLayer
}
