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
package operations

import (
	"fmt"

	gott "github.com/timburks/isotile/types"
)

// Despawn removes whatever occupies a cell. An empty cell is left alone.
type Despawn struct {
	Coord gott.Coord
}

// Removals are not recorded for undo.
func (op *Despawn) Perform(e gott.Editor) []gott.Operation {
	e.RemoveTile(op.Coord)
	return nil
}

func (op *Despawn) String() string {
	return fmt.Sprintf("Despawn%v", op.Coord)
}
