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
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/timburks/isotile/commander"
	"github.com/timburks/isotile/config"
	"github.com/timburks/isotile/metrics"
	"github.com/timburks/isotile/screen"
	"github.com/timburks/isotile/session"
	"github.com/timburks/isotile/terrain"
	gott "github.com/timburks/isotile/types"
)

func main() {

	var configPath string
	var script string

	for i := 1; i < len(os.Args); i++ {
		argi := os.Args[i]
		switch argi {
		case "--config": // settings file
			i++
			if i < len(os.Args) {
				configPath = os.Args[i]
			} else {
				log.Output(1, "No file specified for --config option")
				return
			}
		case "--eval": // eval program
			i++
			if i < len(os.Args) {
				script = os.Args[i]
			} else {
				log.Output(1, "No file specified for --eval option")
				return
			}
		default:
			log.Output(1, "Unknown option "+argi)
			return
		}
	}
	if configPath == "" {
		home, _ := os.UserHomeDir()
		configPath = filepath.Join(home, ".isotile.toml")
	}

	loader := config.NewLoader(configPath)
	defer loader.Close()
	cfg, err := loader.Load()
	if err != nil {
		log.Output(1, err.Error())
		return
	}

	// Open a log file.
	f, err := os.OpenFile(cfg.Log.Path, os.O_APPEND|os.O_CREATE|os.O_RDWR, 0666)
	if err != nil {
		log.Output(1, err.Error())
		return
	}
	log.SetOutput(f)
	defer f.Close()

	// The session applies operations to the map once per tick.
	s := session.NewSession()
	s.SetDebug(cfg.Log.Debug)
	log.Printf("[%s] starting with %s", s.ID, configPath)

	m := metrics.NewCollector(s.ID)
	s.SetMetrics(m)
	if cfg.Metrics.Addr != "" {
		server := m.Serve(cfg.Metrics.Addr)
		defer server.Close()
	}

	cells, err := terrain.Generate(cfg.Map)
	if err != nil {
		log.Output(1, err.Error())
		return
	}
	s.Seed(cells)

	// The commander converts user inputs into operations for the session.
	c := commander.NewCommander(s, s.Grid())
	c.SetLimits(cfg.Palette.Tiles, cfg.Input.MaxLayer)
	c.SetBounds(gott.Size{Rows: cfg.Map.Height, Cols: cfg.Map.Width})
	c.SetTicker(func() int { return s.Tick().Performed })
	c.SetDebugHook(s.SetDebug)

	if script != "" {
		// Run an isotile script and exit.
		if err := c.ParseEvalFile(script); err != nil {
			log.Output(1, err.Error())
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		s.Tick()
		fmt.Printf("%d cells after %d ticks\n", s.Grid().Len(), s.Ticks())
		return
	}

	// Create a screen to manage display.
	scr := screen.NewScreen(screen.NewPalette(cfg.Palette), gott.Size{Rows: cfg.Map.Height, Cols: cfg.Map.Width})
	if scr == nil {
		return
	}
	defer scr.Close()

	// Palette changes are applied by the event loop while running.
	reloaded := make(chan struct{}, 1)
	loader.OnChange(func(cfg *config.Config) {
		select {
		case reloaded <- struct{}{}:
		default:
		}
		scr.Interrupt()
	})
	if err := loader.Watch(); err != nil {
		log.Printf("[%s] not watching %s: %v", s.ID, configPath, err)
	}
	go func() {
		for err := range loader.Errors() {
			log.Printf("[%s] %v", s.ID, err)
		}
	}()

	// Run the main event loop. Every event is followed by one tick.
	for c.IsRunning() {
		select {
		case <-reloaded:
			scr.SetPalette(reconfigure(c, loader.Config()))
			log.Printf("[%s] reloaded %s", s.ID, configPath)
		default:
		}
		scr.Render(s.Grid(), c, status(s))
		event := scr.GetNextEvent()
		if event.Type == gott.EventInterrupt {
			continue
		}
		err = c.ProcessEvent(event)
		if err != nil {
			log.Output(1, err.Error())
		}
		s.Tick()
	}
}

// reconfigure applies the settings that may change while running and
// returns the palette to draw with.
func reconfigure(c *commander.Commander, cfg *config.Config) screen.Palette {
	c.SetLimits(cfg.Palette.Tiles, cfg.Input.MaxLayer)
	return screen.NewPalette(cfg.Palette)
}

func status(s *session.Session) string {
	return fmt.Sprintf("cells %d undo %d", s.Grid().Len(), s.Editor().History().Len())
}
