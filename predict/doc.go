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

// Package predict learns which edit tends to follow a short sequence of edits.
// Every Set seen by the model becomes a BaseKey (the layer change since the
// previous Set and the tile type). Runs of Depth keys are used as a context,
// and the model counts which key followed each context. The model only
// observes operations; it never changes the map.
package predict
