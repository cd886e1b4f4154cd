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
package commander

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/steelseries/golisp"

	gott "github.com/timburks/isotile/types"
)

// current is the commander that lisp primitives act on.
var current *Commander

func init() {
	golisp.Global.BindTo(golisp.SymbolWithName("MAX-TILE"), golisp.IntegerWithValue(DefaultTiles-1))
	golisp.Global.BindTo(golisp.SymbolWithName("MAX-LAYER"), golisp.IntegerWithValue(DefaultMaxLayer))
	golisp.MakePrimitiveFunction("set-tile", "2|3", SetTileImpl)
	golisp.MakePrimitiveFunction("fill-line", "4|5", FillLineImpl)
	golisp.MakePrimitiveFunction("despawn", "2|3", DespawnImpl)
	golisp.MakePrimitiveFunction("undo", "0", UndoImpl)
	golisp.MakePrimitiveFunction("tick", "0", TickImpl)
	golisp.MakePrimitiveFunction("tile-at", "2|3", TileAtImpl)
	golisp.MakePrimitiveFunction("select-tile", "1", SelectTileImpl)
	golisp.MakePrimitiveFunction("select-layer", "1", SelectLayerImpl)
}

func integerArguments(name string, args *golisp.Data) ([]int, error) {
	values := make([]int, 0)
	for a := args; !golisp.NilP(a); a = golisp.Cdr(a) {
		val := golisp.Car(a)
		switch {
		case golisp.IntegerP(val):
			values = append(values, int(golisp.IntegerValue(val)))
		case golisp.FloatP(val):
			values = append(values, int(golisp.FloatValue(val)))
		default:
			return nil, fmt.Errorf("%s requires numeric arguments, got %s", name, golisp.String(val))
		}
	}
	return values, nil
}

func active(name string) (*Commander, error) {
	if current == nil {
		return nil, errors.New(name + " requires an active editor")
	}
	return current, nil
}

// cellArguments reads "x y [layer]" starting at the front of values.
func cellArguments(c *Commander, values []int) (gott.Point, int) {
	layer := c.layer
	if len(values) > 2 {
		layer = values[2]
	}
	return gott.Point{Col: values[0], Row: values[1]}, layer
}

// (set-tile x y [layer]) sets one cell to the selected tile.
func SetTileImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := active("set-tile")
	if err != nil {
		return nil, err
	}
	values, err := integerArguments("set-tile", args)
	if err != nil {
		return nil, err
	}
	p, layer := cellArguments(c, values)
	c.withLayer(layer, func() { c.Set([]gott.Point{p}) })
	return golisp.IntegerWithValue(1), nil
}

// (fill-line x1 y1 x2 y2 [layer]) sets every cell on a line in one operation.
func FillLineImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := active("fill-line")
	if err != nil {
		return nil, err
	}
	values, err := integerArguments("fill-line", args)
	if err != nil {
		return nil, err
	}
	layer := c.layer
	if len(values) > 4 {
		layer = values[4]
	}
	points := Line(gott.Point{Col: values[0], Row: values[1]}, gott.Point{Col: values[2], Row: values[3]})
	c.withLayer(layer, func() { c.Set(points) })
	return golisp.IntegerWithValue(int64(len(points))), nil
}

// (despawn x y [layer]) removes one cell.
func DespawnImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := active("despawn")
	if err != nil {
		return nil, err
	}
	values, err := integerArguments("despawn", args)
	if err != nil {
		return nil, err
	}
	p, layer := cellArguments(c, values)
	c.withLayer(layer, func() { c.Despawn(p) })
	return golisp.IntegerWithValue(1), nil
}

// (undo) reverses the most recent transaction at the next tick.
func UndoImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := active("undo")
	if err != nil {
		return nil, err
	}
	c.Undo()
	return golisp.IntegerWithValue(1), nil
}

// (tick) applies everything submitted so far and returns the number of
// operations performed.
func TickImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := active("tick")
	if err != nil {
		return nil, err
	}
	if c.ticker == nil {
		return nil, errors.New("tick is not available")
	}
	return golisp.IntegerWithValue(int64(c.ticker())), nil
}

// (tile-at x y [layer]) returns the tile of a cell or -1 if it is empty.
func TileAtImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := active("tile-at")
	if err != nil {
		return nil, err
	}
	values, err := integerArguments("tile-at", args)
	if err != nil {
		return nil, err
	}
	p, layer := cellArguments(c, values)
	tile, ok := c.grid.Lookup(gott.NewCoord(p.Col, p.Row, layer))
	if !ok {
		return golisp.IntegerWithValue(-1), nil
	}
	return golisp.IntegerWithValue(int64(tile)), nil
}

// (select-tile n) selects the tile placed by later operations.
func SelectTileImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := active("select-tile")
	if err != nil {
		return nil, err
	}
	values, err := integerArguments("select-tile", args)
	if err != nil {
		return nil, err
	}
	c.SelectTile(values[0])
	return golisp.IntegerWithValue(int64(c.tile)), nil
}

// (select-layer n) selects the layer edited by later operations.
func SelectLayerImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := active("select-layer")
	if err != nil {
		return nil, err
	}
	values, err := integerArguments("select-layer", args)
	if err != nil {
		return nil, err
	}
	c.SelectLayer(values[0])
	return golisp.IntegerWithValue(int64(c.layer)), nil
}

// withLayer runs f with the edited layer temporarily replaced.
// Scripts may address any layer, not only the selectable ones.
func (c *Commander) withLayer(layer int, f func()) {
	saved := c.layer
	c.layer = layer
	f()
	c.layer = saved
}

// bindLimits publishes the tile and layer ranges of c to scripts.
func (c *Commander) bindLimits() {
	golisp.Global.BindTo(golisp.SymbolWithName("MAX-TILE"), golisp.IntegerWithValue(int64(c.tiles-1)))
	golisp.Global.BindTo(golisp.SymbolWithName("MAX-LAYER"), golisp.IntegerWithValue(int64(c.maxLayer)))
}

// ParseEval evaluates a lisp expression and returns its printed value.
func (c *Commander) ParseEval(command string) string {
	current = c
	c.bindLimits()
	value, err := golisp.ParseAndEval(command)
	if err != nil {
		log.Printf("ERR %+v", err)
		return err.Error()
	}
	log.Printf("SEXPR %s", command)
	return golisp.String(value)
}

// ParseEvalFile evaluates every expression in a script file.
func (c *Commander) ParseEvalFile(filename string) error {
	source, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	current = c
	c.bindLimits()
	value, err := golisp.ParseAndEval("(begin\n" + string(source) + "\n)")
	if err != nil {
		return fmt.Errorf("eval %s: %w", filename, err)
	}
	log.Printf("%s: %s", filename, golisp.String(value))
	return nil
}
