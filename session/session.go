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

// Package session ties the command engine and the prediction model to a
// per-tick inbox of user operations.
package session

import (
	"log"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/timburks/isotile/editor"
	"github.com/timburks/isotile/metrics"
	"github.com/timburks/isotile/operations"
	"github.com/timburks/isotile/predict"
	gott "github.com/timburks/isotile/types"
)

// A Session collects operations from input sources and applies them once per
// tick. Operations submitted while a tick is running wait for the next tick.
type Session struct {
	ID string

	mutex   sync.Mutex
	inbox   []gott.Operation
	editor  *editor.Editor
	model   *predict.Model
	metrics *metrics.Collector // optional
	debug   bool
	ticks   uint64
}

func NewSession() *Session {
	return &Session{
		ID:     uuid.NewString(),
		inbox:  make([]gott.Operation, 0),
		editor: editor.NewEditor(),
		model:  predict.NewModel(),
	}
}

// SetMetrics attaches a collector that observes every tick.
func (s *Session) SetMetrics(m *metrics.Collector) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.metrics = m
}

// SetDebug turns logging of the prediction table on or off.
func (s *Session) SetDebug(debug bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.debug = debug
}

func (s *Session) Debug() bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.debug
}

// Submit queues an operation for the next tick.
func (s *Session) Submit(op gott.Operation) {
	if op == nil {
		return
	}
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.inbox = append(s.inbox, op)
}

// Pending returns the number of operations waiting for the next tick.
func (s *Session) Pending() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return len(s.inbox)
}

// Seed fills the map before the first tick. Seeded cells are not undoable.
func (s *Session) Seed(cells []gott.Cell) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.editor.Seed(cells)
	log.Printf("[%s] seeded %d cells", s.ID, len(cells))
}

// Tick takes everything submitted so far and hands the same batch to the
// engine and to the prediction model.
func (s *Session) Tick() editor.TickStats {
	s.mutex.Lock()
	batch := s.inbox
	s.inbox = make([]gott.Operation, 0)
	s.mutex.Unlock()

	start := time.Now()
	stats := s.editor.Tick(batch)
	counted := s.model.Train(batch)
	elapsed := time.Since(start)

	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.ticks++

	kinds := make(map[string]int)
	for _, op := range batch {
		kinds[operations.Kind(op)]++
	}
	if s.metrics != nil {
		s.metrics.ObserveTick(metrics.Tick{
			Kinds:     kinds,
			Recorded:  stats.Recorded,
			Undone:    stats.Undone,
			UndoDepth: s.editor.History().Len(),
			GridCells: s.editor.Grid().Len(),
			Contexts:  s.model.Contexts(),
			Duration:  elapsed,
		})
	}
	if len(batch) > 0 {
		log.Printf("[%s] tick %d transaction %d: %d operations %v, %d performed, %d recorded, %d undone, history %d",
			s.ID, s.ticks, stats.Transaction, stats.Submitted, kinds,
			stats.Performed, stats.Recorded, stats.Undone, s.editor.History().Len())
	}
	if s.debug && counted > 0 {
		s.logSuggestions()
	}
	return stats
}

func (s *Session) logSuggestions() {
	suggestions := s.model.Suggestions()
	contexts := make([]predict.Context, 0, len(suggestions))
	for context := range suggestions {
		contexts = append(contexts, context)
	}
	sort.Slice(contexts, func(i, j int) bool {
		return contexts[i].String() < contexts[j].String()
	})
	for _, context := range contexts {
		log.Printf("[%s] prediction %v -> %v", s.ID, context, suggestions[context])
	}
}

// Next returns the most likely next Set after the most recent ones.
func (s *Session) Next() (predict.Prediction, bool) {
	history := s.model.History()
	if len(history) < predict.Depth {
		return predict.Prediction{}, false
	}
	var context predict.Context
	copy(context[:], history[len(history)-predict.Depth:])
	predictions := s.model.Predict(context)
	if len(predictions) == 0 {
		return predict.Prediction{}, false
	}
	return predictions[0], true
}

// Ticks returns the number of ticks processed.
func (s *Session) Ticks() uint64 {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.ticks
}

// Grid returns the map being edited. Callers must not hold on to it across
// a tick running on another goroutine.
func (s *Session) Grid() *editor.Grid {
	return s.editor.Grid()
}

func (s *Session) Editor() *editor.Editor {
	return s.editor
}

func (s *Session) Model() *predict.Model {
	return s.model
}
