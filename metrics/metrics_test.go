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
package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveTick(t *testing.T) {
	c := NewCollector("test")

	c.ObserveTick(Tick{
		Kinds:     map[string]int{"set": 2, "undo": 1},
		Recorded:  3,
		Undone:    1,
		UndoDepth: 5,
		GridCells: 12,
		Contexts:  2,
		Duration:  time.Millisecond,
	})
	c.ObserveTick(Tick{Kinds: map[string]int{"set": 1}, UndoDepth: 6, GridCells: 13})

	assert.Equal(t, 2.0, testutil.ToFloat64(c.ticks))
	assert.Equal(t, 3.0, testutil.ToFloat64(c.operations.WithLabelValues("set")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.operations.WithLabelValues("undo")))
	assert.Equal(t, 3.0, testutil.ToFloat64(c.recorded))
	assert.Equal(t, 6.0, testutil.ToFloat64(c.undoDepth))
	assert.Equal(t, 13.0, testutil.ToFloat64(c.gridCells))
	assert.Equal(t, 0.0, testutil.ToFloat64(c.contexts))
}

func TestHandlerExportsSessionLabel(t *testing.T) {
	c := NewCollector("abc")
	c.ObserveTick(Tick{GridCells: 1})

	recorder := httptest.NewRecorder()
	c.Handler().ServeHTTP(recorder, httptest.NewRequest("GET", "/metrics", nil))

	require.Equal(t, 200, recorder.Code)
	body := recorder.Body.String()
	assert.True(t, strings.Contains(body, `isotile_grid_cells{session="abc"} 1`), body)
	assert.True(t, strings.Contains(body, "isotile_ticks_total"), body)
}
