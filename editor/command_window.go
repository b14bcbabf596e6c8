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
	"github.com/AndreaOrru/Yugen/commander"
	yugen "github.com/AndreaOrru/Yugen/types"
)

// A CommandWindow is a one-line window at the bottom of the screen for
// entering commands and displaying their results. Its evaluate binding
// takes precedence over both the text-window grammar and the editor's
// global table.
type CommandWindow struct {
	TextWindow
	commander *commander.Commander
}

func NewCommandWindow(e *Editor, origin yugen.Point, size yugen.Size) *CommandWindow {
	w := &CommandWindow{
		TextWindow: TextWindow{
			Window:   newWindow(e, origin, size),
			bindings: defaultBindings(),
			tabWidth: e.tabWidth,
		},
		commander: commander.New(e),
	}
	w.format = plainFormat
	w.buffer = NewBuffer("")
	w.buffer.ObserverAdd(w)
	return w
}

// KeyHandle evaluates on Enter/C-j and otherwise behaves as a text
// window.
func (w *CommandWindow) KeyHandle(k yugen.Key) (bool, error) {
	if k == (yugen.Key{Special: yugen.KeyEnter}) || k == (yugen.Key{Ch: 'j', Ctrl: true}) {
		w.Evaluate()
		if w.editor.focused == focusable(w) {
			w.editor.FocusSet(w.editor.WindowCurrent())
		}
		return true, nil
	}
	return w.TextWindow.KeyHandle(k)
}

// Evaluate runs the window's content through the command table and
// replaces the content with the result. Command failures are shown in
// the window, never propagated: a bad command must not take down the
// editor loop.
func (w *CommandWindow) Evaluate() {
	output, err := w.commander.Evaluate(w.buffer.Content())
	if err != nil {
		output = err.Error()
	}
	w.buffer.SetContent(output)
	w.CursorEndBuffer()
	w.cursorRestrain()
}

// MessageShow displays a transient message in the command line.
func (w *CommandWindow) MessageShow(message string) {
	w.buffer.SetContent(message)
	w.cursorRestrain()
}

// cursorRestrain undoes the cursor draw that writing to the window's
// buffer triggers through the reload resync. Only the focused surface
// may show a cursor.
func (w *CommandWindow) cursorRestrain() {
	if w.editor.focused != focusable(w) {
		w.surface.CursorHide()
	}
}
