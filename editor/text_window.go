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
	"regexp"
	"unicode/utf8"

	yugen "github.com/AndreaOrru/Yugen/types"
)

// A TextWindow is a window for text editing. It owns a cursor and
// translates key events into buffer operations. The cursor is always a
// valid buffer coordinate: every mutation that could invalidate it
// recomputes it through a buffer navigation call.
type TextWindow struct {
	Window
	cursor    yugen.Point
	targetCol int // sticky column for vertical movement
	bindings  map[yugen.Key]Command
	tabWidth  int
}

func NewTextWindow(e *Editor, origin yugen.Point, size yugen.Size, buf *Buffer) *TextWindow {
	w := &TextWindow{
		Window:   newWindow(e, origin, size),
		bindings: defaultBindings(),
		tabWidth: e.tabWidth,
	}
	w.format = keywordFormat
	if buf == nil {
		buf = NewBuffer("")
	}
	w.buffer = buf
	buf.ObserverAdd(w)
	return w
}

func defaultBindings() map[yugen.Key]Command {
	return map[yugen.Key]Command{
		{Ch: 'j', Ctrl: true}:          CmdLineBreak,
		{Special: yugen.KeyEnter}:      CmdLineBreak,
		{Ch: 'i', Meta: true}:          CmdCursorUp,
		{Ch: 'k', Meta: true}:          CmdCursorDown,
		{Ch: 'j', Meta: true}:          CmdCursorBack,
		{Ch: 'l', Meta: true}:          CmdCursorForward,
		{Special: yugen.KeyArrowUp}:    CmdCursorUp,
		{Special: yugen.KeyArrowDown}:  CmdCursorDown,
		{Special: yugen.KeyArrowLeft}:  CmdCursorBack,
		{Special: yugen.KeyArrowRight}: CmdCursorForward,
		{Special: yugen.KeyBackspace}:  CmdDeleteBefore,
		{Special: yugen.KeyDelete}:     CmdDeleteAt,
		{Ch: 'd', Ctrl: true}:          CmdDeleteAt,
		{Ch: 'b', Meta: true}:          CmdCursorBeginBuffer,
		{Ch: 'e', Meta: true}:          CmdCursorEndBuffer,
		{Special: yugen.KeyHome}:       CmdCursorBeginLine,
		{Special: yugen.KeyEnd}:        CmdCursorEndLine,
		{Ch: 'a', Ctrl: true}:          CmdCursorBeginLine,
		{Ch: 'e', Ctrl: true}:          CmdCursorEndLine,
		{Special: yugen.KeyTab}:        CmdIndent,
	}
}

// BufferSet replaces the displayed buffer, unlinking the window from
// the previous one.
func (w *TextWindow) BufferSet(buf *Buffer) {
	if w.buffer != nil {
		w.buffer.ObserverRemove(w)
	}
	w.buffer = buf
	buf.ObserverAdd(w)
}

// Reloaded resyncs the whole surface and resets the cursor to the
// origin.
func (w *TextWindow) Reloaded() {
	w.Window.Reloaded()
	w.CursorBeginBuffer()
}

func (w *TextWindow) Cursor() yugen.Point {
	return w.cursor
}

// CursorSet moves the logical cursor and redraws it on the surface,
// keeping the two synchronized.
func (w *TextWindow) CursorSet(p yugen.Point) {
	w.cursor = p
	w.surface.CursorDraw(p)
}

// CursorUp moves one line up toward the sticky target column. At the
// first line this is a no-op.
func (w *TextWindow) CursorUp() {
	if p, ok := w.buffer.CharAbove(w.cursor.Row, w.targetCol); ok {
		w.CursorSet(p)
	}
}

// CursorDown moves one line down toward the sticky target column. At
// the last line this is a no-op.
func (w *TextWindow) CursorDown() {
	if p, ok := w.buffer.CharBelow(w.cursor.Row, w.targetCol); ok {
		w.CursorSet(p)
	}
}

// CursorBack moves one position back and resets the target column.
func (w *TextWindow) CursorBack() {
	if p, ok := w.buffer.CharBefore(w.cursor); ok {
		w.CursorSet(p)
	}
	w.targetCol = w.cursor.Col
}

// CursorForward moves one position forward and resets the target
// column.
func (w *TextWindow) CursorForward() {
	if p, ok := w.buffer.CharAfter(w.cursor); ok {
		w.CursorSet(p)
	}
	w.targetCol = w.cursor.Col
}

func (w *TextWindow) CursorBeginBuffer() {
	w.CursorSet(yugen.Point{Row: 0, Col: 0})
	w.targetCol = 0
}

func (w *TextWindow) CursorEndBuffer() {
	w.CursorSet(w.buffer.End())
	w.targetCol = w.cursor.Col
}

func (w *TextWindow) CursorBeginLine() {
	w.CursorSet(yugen.Point{Row: w.cursor.Row, Col: 0})
	w.targetCol = 0
}

func (w *TextWindow) CursorEndLine() {
	w.CursorSet(yugen.Point{Row: w.cursor.Row, Col: w.buffer.RowLength(w.cursor.Row)})
	w.targetCol = w.cursor.Col
}

// CharInsert inserts a character at the cursor and leaves the cursor
// immediately after it.
func (w *TextWindow) CharInsert(c rune) error {
	if err := w.buffer.CharInsert(c, w.cursor); err != nil {
		return err
	}
	w.CursorForward()
	return nil
}

// CharDeleteBefore deletes the character before the cursor and moves
// the cursor to its position (backspace). At the start of the buffer
// this is a no-op.
func (w *TextWindow) CharDeleteBefore() error {
	before, ok := w.buffer.CharBefore(w.cursor)
	if !ok {
		return nil
	}
	if err := w.buffer.CharDelete(before); err != nil {
		return err
	}
	w.CursorSet(before)
	w.targetCol = before.Col
	return nil
}

// CharDeleteAt deletes the character at the cursor (forward delete).
// At the very end of the buffer this is a no-op.
func (w *TextWindow) CharDeleteAt() error {
	if w.cursor == w.buffer.End() {
		return nil
	}
	if err := w.buffer.CharDelete(w.cursor); err != nil {
		return err
	}
	w.CursorSet(yugen.Point{
		Row: w.cursor.Row,
		Col: min(w.cursor.Col, w.buffer.RowLength(w.cursor.Row)),
	})
	return nil
}

// LineBreak splits the current line at the cursor and places the
// cursor at the start of the new second line.
func (w *TextWindow) LineBreak() error {
	if err := w.buffer.LineBreak(w.cursor); err != nil {
		return err
	}
	w.CursorSet(yugen.Point{Row: w.cursor.Row + 1, Col: 0})
	w.targetCol = 0
	return nil
}

// Indent inserts spaces up to the next tab stop.
func (w *TextWindow) Indent() error {
	if err := w.CharInsert(' '); err != nil {
		return err
	}
	for w.cursor.Col%w.tabWidth != 0 {
		if err := w.CharInsert(' '); err != nil {
			return err
		}
	}
	return nil
}

// KeyHandle tries to handle a key: printable keys are inserted, other
// keys go through the window's binding table. It reports false when
// the key is unhandled so the editor can fall back to its global
// bindings.
func (w *TextWindow) KeyHandle(k yugen.Key) (bool, error) {
	if k.Printable() {
		return true, w.CharInsert(k.Ch)
	}
	cmd, ok := w.bindings[k]
	if !ok {
		return false, nil
	}
	return w.perform(cmd)
}

// perform interprets a window command. Unknown commands (including
// editor-level ones) are reported unhandled.
func (w *TextWindow) perform(cmd Command) (bool, error) {
	switch cmd {
	case CmdCursorUp:
		w.CursorUp()
	case CmdCursorDown:
		w.CursorDown()
	case CmdCursorBack:
		w.CursorBack()
	case CmdCursorForward:
		w.CursorForward()
	case CmdCursorBeginBuffer:
		w.CursorBeginBuffer()
	case CmdCursorEndBuffer:
		w.CursorEndBuffer()
	case CmdCursorBeginLine:
		w.CursorBeginLine()
	case CmdCursorEndLine:
		w.CursorEndLine()
	case CmdLineBreak:
		return true, w.LineBreak()
	case CmdDeleteBefore:
		return true, w.CharDeleteBefore()
	case CmdDeleteAt:
		return true, w.CharDeleteAt()
	case CmdIndent:
		return true, w.Indent()
	default:
		return false, nil
	}
	return true, nil
}

// BindingSet maps a key to a command in the window's table.
func (w *TextWindow) BindingSet(k yugen.Key, cmd Command) {
	w.bindings[k] = cmd
}

func (w *TextWindow) CursorShow() {
	w.surface.CursorDraw(w.cursor)
}

func (w *TextWindow) CursorHide() {
	w.surface.CursorHide()
}

func (w *TextWindow) KeyGet() yugen.Key {
	return w.surface.KeyGet()
}

var (
	returnPattern = regexp.MustCompile(`\breturn\b`)
	funcPattern   = regexp.MustCompile(`\bfunc\b`)
)

// keywordFormat decorates a couple of keywords so multi-window
// rendering differences are visible during editing.
func keywordFormat(content string) []yugen.Attribute {
	attrs := make([]yugen.Attribute, len([]rune(content)))
	paint := func(pattern *regexp.Regexp, color yugen.Color) {
		for _, m := range pattern.FindAllStringIndex(content, -1) {
			start := utf8.RuneCountInString(content[:m[0]])
			end := utf8.RuneCountInString(content[:m[1]])
			for i := start; i < end; i++ {
				attrs[i] = yugen.Attribute{Foreground: color}
			}
		}
	}
	paint(returnPattern, yugen.ColorGreen)
	paint(funcPattern, yugen.ColorRed)
	return attrs
}
