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
package screen

import (
	"fmt"
	"log"
	"sync"

	"github.com/nsf/termbox-go"

	gott "github.com/timburks/isotile/types"
)

// The Screen draws the map being edited and reads user input.
type Screen struct {
	size    gott.Size // screen size
	mapSize gott.Size // map size, used to recognize clicks on the map
	mutex   sync.Mutex
	palette Palette
}

func NewScreen(palette Palette, mapSize gott.Size) *Screen {
	// Open the terminal.
	err := termbox.Init()
	if err != nil {
		log.Output(1, err.Error())
		return nil
	}
	termbox.SetOutputMode(termbox.Output256)
	termbox.SetInputMode(termbox.InputEsc | termbox.InputMouse)
	return &Screen{palette: palette, mapSize: mapSize}
}

func (s *Screen) Close() {
	termbox.Close()
}

// SetPalette replaces the palette. It may be called from any goroutine.
func (s *Screen) SetPalette(p Palette) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.palette = p
}

// Render draws the layers up to the commander's layer. Status is shown at
// the right of the info bar.
func (s *Screen) Render(g gott.Grid, c gott.Commander, status string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	termbox.Clear(termbox.ColorWhite, termbox.ColorBlack)
	s.size.Cols, s.size.Rows = termbox.Size()

	layer := c.GetLayer()
	for p, v := range Compose(g.Cells(), layer) {
		x, y := CellPosition(p)
		if y >= s.size.Rows-barRows {
			continue
		}
		fg := s.palette.Color(v.Tile)
		if v.Layer < layer {
			fg = colorAttribute(dimColor)
		}
		for i, ch := range s.palette.Glyph(v.Tile) {
			termbox.SetCell(x+i, y, ch, fg, termbox.ColorBlack)
		}
	}
	if anchor, ok := c.GetAnchor(); ok {
		s.highlight(anchor)
	}
	s.RenderInfoBar(c, status)
	s.RenderMessageBar(c)

	x, y := CellPosition(c.GetCursor())
	termbox.SetCursor(x, y)
	termbox.Flush()
}

func (s *Screen) highlight(p gott.Point) {
	x, y := CellPosition(p)
	for i := 0; i < CellWidth; i++ {
		termbox.SetCell(x+i, y, '*', termbox.ColorBlack, termbox.ColorYellow)
	}
}

func (s *Screen) RenderInfoBar(c gott.Commander, status string) {
	tile := c.GetTileType()
	text := fmt.Sprintf(" isotile - layer %d tile %d %s ", c.GetLayer(), tile, string(s.palette.Glyph(tile)))
	line := fit(text, status+" ", s.size.Cols)
	for x, ch := range line {
		termbox.SetCell(x, s.size.Rows-2, ch, termbox.ColorBlack, termbox.ColorWhite)
	}
	// sample of the selected tile in its own color
	for i, ch := range s.palette.Glyph(tile) {
		x := len([]rune(text)) - CellWidth - 1 + i
		if x < s.size.Cols {
			termbox.SetCell(x, s.size.Rows-2, ch, s.palette.Color(tile), termbox.ColorBlack)
		}
	}
}

func (s *Screen) RenderMessageBar(c gott.Commander) {
	var line string
	switch c.GetMode() {
	case gott.ModeCommand:
		line += ":" + c.GetCommand()
	case gott.ModeLisp:
		line += c.GetLispText()
	default:
		line += c.GetMessage()
	}
	runes := []rune(line)
	if len(runes) > s.size.Cols {
		runes = runes[0:s.size.Cols]
	}
	for x, ch := range runes {
		termbox.SetCell(x, s.size.Rows-1, ch, termbox.ColorWhite, termbox.ColorBlack)
	}
}

// Interrupt makes a pending GetNextEvent return an interrupt event.
// It may be called from any goroutine.
func (s *Screen) Interrupt() {
	termbox.Interrupt()
}

func (s *Screen) GetNextEvent() *gott.Event {
	event := termbox.PollEvent()
	switch event.Type {
	case termbox.EventResize:
		termbox.Flush()
		return &gott.Event{Type: gott.EventResize}
	case termbox.EventMouse:
		s.mutex.Lock()
		cell, onGrid := CellAt(event.MouseX, event.MouseY, s.size, s.mapSize)
		s.mutex.Unlock()
		return &gott.Event{
			Type:   gott.EventMouse,
			Key:    key(event.Key),
			Cell:   cell,
			OnGrid: onGrid,
		}
	case termbox.EventInterrupt:
		return &gott.Event{Type: gott.EventInterrupt}
	case termbox.EventKey:
		return &gott.Event{
			Type: gott.EventKey,
			Key:  key(event.Key),
			Ch:   event.Ch,
		}
	default:
		return &gott.Event{Type: int(event.Type)}
	}
}

func key(k termbox.Key) gott.Key {
	switch k {
	case termbox.KeyArrowDown:
		return gott.KeyArrowDown
	case termbox.KeyArrowLeft:
		return gott.KeyArrowLeft
	case termbox.KeyArrowRight:
		return gott.KeyArrowRight
	case termbox.KeyArrowUp:
		return gott.KeyArrowUp
	case termbox.KeyBackspace2:
		return gott.KeyBackspace2
	case termbox.KeyCtrlC:
		return gott.KeyCtrlC
	case termbox.KeyCtrlZ:
		return gott.KeyCtrlZ
	case termbox.KeyEnter:
		return gott.KeyEnter
	case termbox.KeyEsc:
		return gott.KeyEsc
	case termbox.KeyPgdn:
		return gott.KeyPgdn
	case termbox.KeyPgup:
		return gott.KeyPgup
	case termbox.KeySpace:
		return gott.KeySpace
	case termbox.KeyTab:
		return gott.KeyTab
	case termbox.MouseLeft:
		return gott.KeyMouseLeft
	case termbox.MouseRight:
		return gott.KeyMouseRight
	case termbox.MouseRelease:
		return gott.KeyMouseRelease
	default:
		return gott.KeyUnsupported
	}
}
