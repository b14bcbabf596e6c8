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
package editor

import (
	"fmt"

	yugen "github.com/AndreaOrru/Yugen/types"
)

// A StatusWindow is a read-only one-line window showing the cursor
// position and file name of the window being edited.
type StatusWindow struct {
	Window
}

func NewStatusWindow(e *Editor, origin yugen.Point, size yugen.Size) *StatusWindow {
	w := &StatusWindow{Window: newWindow(e, origin, size)}
	w.surface.AttributesSet(yugen.Attribute{Reverse: true})
	w.buffer = NewBuffer("")
	w.buffer.ObserverAdd(w)
	return w
}

// Update refreshes the status line from the current text window.
func (w *StatusWindow) Update() {
	current := w.editor.WindowCurrent()
	cursor := current.Cursor()
	position := fmt.Sprintf("(%d, %d)", cursor.Row+1, cursor.Col)
	w.buffer.SetContent(fmt.Sprintf("%-15s%s", position, current.Buffer().FileName()))
}
