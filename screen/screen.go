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

// Package screen implements the editor's UI contract on termbox.
package screen

import (
	"github.com/nsf/termbox-go"

	yugen "github.com/AndreaOrru/Yugen/types"
)

// The Screen owns the terminal and the surfaces created on it.
// Surfaces are painted in creation order, so later surfaces overdraw
// earlier ones.
type Screen struct {
	windows []*window
}

func NewScreen() (*Screen, error) {
	if err := termbox.Init(); err != nil {
		return nil, err
	}
	termbox.SetInputMode(termbox.InputEsc | termbox.InputAlt)
	termbox.SetOutputMode(termbox.Output256)
	return &Screen{}, nil
}

func (s *Screen) Close() {
	termbox.Close()
}

func (s *Screen) Size() yugen.Size {
	cols, rows := termbox.Size()
	return yugen.Size{Rows: rows, Cols: cols}
}

func (s *Screen) WindowCreate(origin yugen.Point, size yugen.Size) yugen.UIWindow {
	w := &window{screen: s, origin: origin, size: size}
	s.windows = append(s.windows, w)
	return w
}

// Refresh repaints every surface and flushes the terminal.
func (s *Screen) Refresh() {
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
	cursorDrawn := false
	for _, w := range s.windows {
		w.paint()
		if w.cursorShown {
			termbox.SetCursor(w.origin.Col+w.cellX(w.cursor), w.origin.Row+w.cursor.Row-w.scroll)
			cursorDrawn = true
		}
	}
	if !cursorDrawn {
		termbox.HideCursor()
	}
	termbox.Flush()
}

var colors = map[yugen.Color]termbox.Attribute{
	yugen.ColorDefault: termbox.ColorDefault,
	yugen.ColorBlack:   termbox.ColorBlack,
	yugen.ColorRed:     termbox.ColorRed,
	yugen.ColorGreen:   termbox.ColorGreen,
	yugen.ColorYellow:  termbox.ColorYellow,
	yugen.ColorBlue:    termbox.ColorBlue,
	yugen.ColorMagenta: termbox.ColorMagenta,
	yugen.ColorCyan:    termbox.ColorCyan,
	yugen.ColorWhite:   termbox.ColorWhite,
}

func cellAttributes(a yugen.Attribute) (fg, bg termbox.Attribute) {
	fg = colors[a.Foreground]
	bg = colors[a.Background]
	if a.Bold {
		fg |= termbox.AttrBold
	}
	if a.Reverse {
		fg |= termbox.AttrReverse
	}
	return fg, bg
}
