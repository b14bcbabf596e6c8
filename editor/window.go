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
	yugen "github.com/AndreaOrru/Yugen/types"
)

// A Window displays one buffer on one UI surface. Windows respond to
// the buffer's change notifications and mirror them onto the surface.
type Window struct {
	editor  *Editor
	surface yugen.UIWindow
	buffer  *Buffer
	origin  yugen.Point
	size    yugen.Size

	// format produces the display attributes for a line's content.
	// Concrete window kinds replace it to decorate their text.
	format func(content string) []yugen.Attribute

	// pushed counts the lines mirrored onto the surface, so a reload
	// to a shorter buffer can blank the stale remainder.
	pushed int
}

func newWindow(e *Editor, origin yugen.Point, size yugen.Size) Window {
	return Window{
		editor:  e,
		surface: e.ui.WindowCreate(origin, size),
		origin:  origin,
		size:    size,
		format:  plainFormat,
	}
}

func plainFormat(content string) []yugen.Attribute {
	return make([]yugen.Attribute, len([]rune(content)))
}

func (w *Window) Buffer() *Buffer {
	return w.buffer
}

func (w *Window) Surface() yugen.UIWindow {
	return w.surface
}

// LineUpdated pushes a changed buffer line to the surface.
func (w *Window) LineUpdated(row int) {
	content := w.buffer.Line(row)
	w.surface.LineUpdate(row, content, w.format(content))
}

// LineInserted pushes a new buffer line to the surface.
func (w *Window) LineInserted(row int) {
	content := w.buffer.Line(row)
	w.surface.LineInsert(row, content, w.format(content))
	w.pushed = w.buffer.RowCount()
}

// LineDeleted removes a line from the surface.
func (w *Window) LineDeleted(row int) {
	w.surface.LineDelete(row)
	w.pushed = w.buffer.RowCount()
}

// Reloaded pushes every buffer line to the surface and blanks the
// lines a previous, longer buffer left behind.
func (w *Window) Reloaded() {
	rows := w.buffer.RowCount()
	for row := 0; row < rows; row++ {
		w.LineUpdated(row)
	}
	for row := rows; row < w.pushed; row++ {
		w.surface.LineUpdate(row, "", w.format(""))
	}
	w.pushed = rows
}
