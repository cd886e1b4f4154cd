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

// Package metrics exports Prometheus metrics about an editing session.
package metrics

import (
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "isotile"

// A Tick is what a session reports after each tick.
type Tick struct {
	Kinds     map[string]int // submitted operations by kind
	Recorded  int            // inverses pushed onto the undo history
	Undone    int            // inverses replayed by undo
	UndoDepth int            // undo history length after the tick
	GridCells int            // occupied cells after the tick
	Contexts  int            // contexts in the prediction table
	Duration  time.Duration
}

// The Collector owns a registry with the metrics of one session.
type Collector struct {
	registry     *prometheus.Registry
	ticks        prometheus.Counter
	operations   *prometheus.CounterVec
	recorded     prometheus.Counter
	undone       prometheus.Counter
	undoDepth    prometheus.Gauge
	gridCells    prometheus.Gauge
	contexts     prometheus.Gauge
	tickDuration prometheus.Histogram
}

// NewCollector creates the metrics of a session. Every metric carries the
// session id as a constant label.
func NewCollector(sessionID string) *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ticks_total",
			Help:      "Ticks processed.",
		}),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Operations submitted, by kind.",
		}, []string{"kind"}),
		recorded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "undo_recorded_total",
			Help:      "Inverse operations recorded in the undo history.",
		}),
		undone: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "undo_replayed_total",
			Help:      "Inverse operations replayed by undo.",
		}),
		undoDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "undo_depth",
			Help:      "Entries in the undo history.",
		}),
		gridCells: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "grid_cells",
			Help:      "Occupied cells in the map.",
		}),
		contexts: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "prediction_contexts",
			Help:      "Contexts in the prediction table.",
		}),
		tickDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "tick_duration_seconds",
			Help:      "Time spent processing a tick.",
			Buckets:   []float64{0.00001, 0.0001, 0.001, 0.01, 0.1},
		}),
	}
	registerer := prometheus.WrapRegistererWith(prometheus.Labels{"session": sessionID}, c.registry)
	registerer.MustRegister(
		c.ticks,
		c.operations,
		c.recorded,
		c.undone,
		c.undoDepth,
		c.gridCells,
		c.contexts,
		c.tickDuration,
	)
	return c
}

func (c *Collector) ObserveTick(t Tick) {
	c.ticks.Inc()
	for kind, count := range t.Kinds {
		c.operations.WithLabelValues(kind).Add(float64(count))
	}
	c.recorded.Add(float64(t.Recorded))
	c.undone.Add(float64(t.Undone))
	c.undoDepth.Set(float64(t.UndoDepth))
	c.gridCells.Set(float64(t.GridCells))
	c.contexts.Set(float64(t.Contexts))
	c.tickDuration.Observe(t.Duration.Seconds())
}

func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Serve exposes the metrics on addr at /metrics until the server is closed.
func (c *Collector) Serve(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", c.Handler())
	server := &http.Server{Addr: addr, Handler: mux}
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("metrics server on %s: %v", addr, err)
		}
	}()
	return server
}
