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
	gott "github.com/timburks/isotile/types"
)

// Line returns the cells on the straight line from a to b, both included,
// starting at a.
func Line(a, b gott.Point) []gott.Point {
	dx := abs(b.Col - a.Col)
	dy := -abs(b.Row - a.Row)
	sx := sign(b.Col - a.Col)
	sy := sign(b.Row - a.Row)
	e := dx + dy

	points := make([]gott.Point, 0, max(dx, -dy)+1)
	p := a
	for {
		points = append(points, p)
		if p == b {
			return points
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			p.Col += sx
		}
		if e2 <= dx {
			e += dx
			p.Row += sy
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
