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
	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"

	yugen "github.com/AndreaOrru/Yugen/types"
)

type line struct {
	text  []rune
	attrs []yugen.Attribute
}

// A window is a rectangular surface on the terminal. It keeps its own
// copy of the lines pushed to it and a scroll offset that follows the
// cursor.
type window struct {
	screen      *Screen
	origin      yugen.Point
	size        yugen.Size
	lines       []line
	scroll      int
	cursor      yugen.Point
	cursorShown bool
	defaults    yugen.Attribute
}

func (w *window) grow(n int) {
	for len(w.lines) < n {
		w.lines = append(w.lines, line{})
	}
}

func (w *window) LineUpdate(row int, content string, attrs []yugen.Attribute) {
	w.grow(row + 1)
	w.lines[row] = line{text: []rune(content), attrs: attrs}
}

func (w *window) LineInsert(row int, content string, attrs []yugen.Attribute) {
	w.grow(row)
	w.lines = append(w.lines, line{})
	copy(w.lines[row+1:], w.lines[row:])
	w.lines[row] = line{text: []rune(content), attrs: attrs}
}

func (w *window) LineDelete(row int) {
	if row < len(w.lines) {
		w.lines = append(w.lines[:row], w.lines[row+1:]...)
	}
}

// CursorDraw moves the cursor and scrolls the surface to keep it
// visible.
func (w *window) CursorDraw(p yugen.Point) {
	w.cursor = p
	w.cursorShown = true
	if p.Row >= w.scroll+w.size.Rows {
		w.scroll = p.Row - w.size.Rows + 1
	} else if p.Row < w.scroll {
		w.scroll = p.Row
	}
}

func (w *window) CursorHide() {
	w.cursorShown = false
}

func (w *window) AttributesSet(attr yugen.Attribute) {
	w.defaults = attr
}

// KeyGet blocks until a key event arrives. Resize events trigger a
// reflush and are swallowed.
func (w *window) KeyGet() yugen.Key {
	for {
		event := termbox.PollEvent()
		switch event.Type {
		case termbox.EventKey:
			return keyFromEvent(event)
		case termbox.EventResize:
			termbox.Flush()
		}
	}
}

// cellX converts a buffer column to a screen column, accounting for
// wide runes.
func (w *window) cellX(p yugen.Point) int {
	x := 0
	if p.Row < len(w.lines) {
		text := w.lines[p.Row].text
		for i := 0; i < p.Col && i < len(text); i++ {
			x += runewidth.RuneWidth(text[i])
		}
	}
	return x
}

func (w *window) paint() {
	for y := 0; y < w.size.Rows; y++ {
		row := y + w.scroll
		var ln line
		if row < len(w.lines) {
			ln = w.lines[row]
		}
		x := 0
		for i := 0; i < len(ln.text) && x < w.size.Cols; i++ {
			attr := w.defaults
			if i < len(ln.attrs) && ln.attrs[i] != (yugen.Attribute{}) {
				attr = ln.attrs[i]
				attr.Reverse = attr.Reverse || w.defaults.Reverse
			}
			fg, bg := cellAttributes(attr)
			termbox.SetCell(w.origin.Col+x, w.origin.Row+y, ln.text[i], fg, bg)
			x += runewidth.RuneWidth(ln.text[i])
		}
		fg, bg := cellAttributes(w.defaults)
		for ; x < w.size.Cols; x++ {
			termbox.SetCell(w.origin.Col+x, w.origin.Row+y, ' ', fg, bg)
		}
	}
}
