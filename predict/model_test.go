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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timburks/isotile/operations"
	gott "github.com/timburks/isotile/types"
)

// sets returns one single-cell Set per tile type, all on the given layer.
func sets(layer int, tiles ...gott.TileType) []gott.Operation {
	batch := make([]gott.Operation, 0, len(tiles))
	for i, tile := range tiles {
		batch = append(batch, &operations.Set{
			Coords:   []gott.Coord{gott.NewCoord(i, 0, layer)},
			TileType: tile,
		})
	}
	return batch
}

func key(tile gott.TileType) BaseKey {
	return BaseKey{LayerChange: 0, TileType: tile}
}

func TestTrainCountsRepeatedWindows(t *testing.T) {
	m := NewModel()

	counted := m.Train(sets(0, 1, 1, 2, 1, 1, 2))

	assert.Equal(t, 4, counted)
	assert.Equal(t, 2, m.Count(Context{key(1), key(1)}, key(2)))
	assert.Equal(t, 1, m.Count(Context{key(1), key(2)}, key(1)))
	assert.Equal(t, 1, m.Count(Context{key(2), key(1)}, key(1)))
	assert.Equal(t, 0, m.Count(Context{key(2), key(1)}, key(2)))
	assert.Equal(t, []BaseKey{key(1), key(2)}, m.History())
}

func TestTrainCarriesContextAcrossTicks(t *testing.T) {
	m := NewModel()

	for _, tile := range []gott.TileType{1, 1, 2, 1, 1, 2} {
		m.Train(sets(0, tile))
		assert.LessOrEqual(t, len(m.History()), Depth)
	}

	assert.Equal(t, 2, m.Count(Context{key(1), key(1)}, key(2)))
	assert.Equal(t, 1, m.Count(Context{key(1), key(2)}, key(1)))
	assert.Equal(t, 1, m.Count(Context{key(2), key(1)}, key(1)))
	assert.Equal(t, 4, m.Trained())
	assert.Equal(t, 3, m.Contexts())
}

func TestTrainUsesLayerChanges(t *testing.T) {
	m := NewModel()
	batch := []gott.Operation{
		&operations.Set{Coords: []gott.Coord{gott.NewCoord(0, 0, 0)}, TileType: 4},
		&operations.Set{Coords: []gott.Coord{gott.NewCoord(0, 0, 2), gott.NewCoord(0, 0, 0)}, TileType: 5},
		&operations.Set{Coords: []gott.Coord{gott.NewCoord(0, 0, 1)}, TileType: 6},
	}

	m.Train(batch)

	context := Context{{LayerChange: 0, TileType: 4}, {LayerChange: 2, TileType: 5}}
	assert.Equal(t, 1, m.Count(context, BaseKey{LayerChange: -1, TileType: 6}))
	assert.Equal(t, 1, m.LastLayer())
}

func TestTrainAssumesLayerOneWithoutCoordinates(t *testing.T) {
	m := NewModel()

	m.Train([]gott.Operation{&operations.Set{TileType: 3}})

	assert.Equal(t, []BaseKey{{LayerChange: 1, TileType: 3}}, m.History())
	assert.Equal(t, 1, m.LastLayer())
}

func TestTrainIgnoresOtherOperations(t *testing.T) {
	m := NewModel()
	m.Train(sets(0, 1, 2))

	m.Train([]gott.Operation{
		&operations.Despawn{Coord: gott.NewCoord(0, 0, 0)},
		&operations.Undo{},
	})
	m.Train(nil)

	assert.Equal(t, []BaseKey{key(1), key(2)}, m.History())
	assert.Equal(t, 0, m.Contexts())
}

func TestPredictRanksByCount(t *testing.T) {
	m := NewModel()
	m.Train(sets(0, 1, 1, 2, 1, 1, 2, 1, 1, 3))

	predictions := m.Predict(Context{key(1), key(1)})

	require.Len(t, predictions, 2)
	assert.Equal(t, Prediction{Key: key(2), Count: 2}, predictions[0])
	assert.Equal(t, Prediction{Key: key(3), Count: 1}, predictions[1])
}

func TestPredictBreaksTiesByKey(t *testing.T) {
	m := NewModel()
	m.Train(sets(0, 1, 1, 3, 1, 1, 2))

	predictions := m.Predict(Context{key(1), key(1)})

	require.Len(t, predictions, 2)
	assert.Equal(t, key(2), predictions[0].Key)
	assert.Equal(t, key(3), predictions[1].Key)
}

func TestPredictUnknownContext(t *testing.T) {
	m := NewModel()
	assert.Nil(t, m.Predict(Context{key(7), key(7)}))
}

func TestSuggestionsUseCurrentHistory(t *testing.T) {
	m := NewModel()
	assert.Empty(t, m.Suggestions())

	m.Train(sets(0, 1, 1, 2, 1, 1))

	suggestions := m.Suggestions()
	require.Len(t, suggestions, 1)
	assert.Equal(t, []Prediction{{Key: key(2), Count: 1}}, suggestions[Context{key(1), key(1)}])
}
