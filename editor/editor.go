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
	"errors"
	"fmt"
	"log"

	yugen "github.com/AndreaOrru/Yugen/types"
)

// focusable is anything the editor can give key focus to.
type focusable interface {
	KeyHandle(k yugen.Key) (bool, error)
	CursorShow()
	CursorHide()
	KeyGet() yugen.Key
}

// The Editor owns the window collection, the focus state, and the
// top-level key dispatch. The focused window receives keys before the
// editor's global binding table.
type Editor struct {
	ui            yugen.UI
	textWindows   []*TextWindow
	statusWindow  *StatusWindow
	commandWindow *CommandWindow

	focused focusable
	current *TextWindow // text window being edited

	bindings       map[yugen.Key]Command
	windowBindings map[yugen.Key]Command // config overlay for new text windows
	tabWidth       int
	running        bool
}

func NewEditor(ui yugen.UI, cfg *Config) (*Editor, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	e := &Editor{
		ui:       ui,
		bindings: defaultGlobalBindings(),
		tabWidth: cfg.tabWidth(),
	}

	windowBindings, err := cfg.windowBindings()
	if err != nil {
		return nil, err
	}
	e.windowBindings = windowBindings
	globalBindings, err := cfg.globalBindings()
	if err != nil {
		return nil, err
	}
	for key, cmd := range globalBindings {
		e.bindings[key] = cmd
	}

	total := ui.Size()
	if total.Rows < 3 {
		return nil, errors.New("screen too small")
	}
	textSize := yugen.Size{Rows: total.Rows - 2, Cols: total.Cols}
	w := e.windowAdd(yugen.Point{Row: 0, Col: 0}, textSize, nil)
	e.statusWindow = NewStatusWindow(e,
		yugen.Point{Row: total.Rows - 2, Col: 0}, yugen.Size{Rows: 1, Cols: total.Cols})
	e.commandWindow = NewCommandWindow(e,
		yugen.Point{Row: total.Rows - 1, Col: 0}, yugen.Size{Rows: 1, Cols: total.Cols})
	e.FocusSet(w)
	return e, nil
}

func defaultGlobalBindings() map[yugen.Key]Command {
	return map[yugen.Key]Command{
		{Ch: 'q', Meta: true}: CmdQuit,
		{Ch: 'x', Meta: true}: CmdCommandToggle,
		{Ch: 's', Meta: true}: CmdFileWrite,
		{Ch: 'n', Meta: true}: CmdWindowNext,
	}
}

func (e *Editor) windowAdd(origin yugen.Point, size yugen.Size, buf *Buffer) *TextWindow {
	w := NewTextWindow(e, origin, size, buf)
	for key, cmd := range e.windowBindings {
		w.BindingSet(key, cmd)
	}
	e.textWindows = append(e.textWindows, w)
	if e.current == nil {
		e.current = w
	}
	return w
}

// WindowCurrent returns the text window being edited. When the command
// window has focus, this is the window edits will return to.
func (e *Editor) WindowCurrent() *TextWindow {
	return e.current
}

// FocusSet moves key focus. Every other surface's cursor is hidden:
// window construction and buffer reloads draw cursors on surfaces that
// never had focus, and exactly one cursor may be visible.
func (e *Editor) FocusSet(f focusable) {
	for _, w := range e.textWindows {
		w.CursorHide()
	}
	if e.commandWindow != nil {
		e.commandWindow.CursorHide()
	}
	e.focused = f
	f.CursorShow()
	if w, ok := f.(*TextWindow); ok {
		e.current = w
	}
}

// Run executes the main loop: refresh the display, block on a key from
// the focused window's surface, dispatch it. Dispatch errors are
// reported and the loop continues.
func (e *Editor) Run() {
	e.running = true
	for e.running {
		e.statusWindow.Update()
		e.ui.Refresh()
		key := e.focused.KeyGet()
		if err := e.KeyDispatch(key); err != nil {
			log.Printf("key %v: %v", key, err)
			e.commandWindow.MessageShow(err.Error())
		}
	}
}

// KeyDispatch offers the key to the focused window first and falls
// back to the global binding table only if the window reports it
// unhandled.
func (e *Editor) KeyDispatch(k yugen.Key) error {
	handled, err := e.focused.KeyHandle(k)
	if err != nil {
		return err
	}
	if handled {
		return nil
	}
	cmd, ok := e.bindings[k]
	if !ok {
		return nil
	}
	return e.perform(cmd)
}

func (e *Editor) perform(cmd Command) error {
	switch cmd {
	case CmdQuit:
		e.Quit()
	case CmdCommandToggle:
		e.CommandWindowToggle()
	case CmdFileWrite:
		path, err := e.FileWrite("")
		if err != nil {
			e.commandWindow.MessageShow(err.Error())
		} else {
			e.commandWindow.MessageShow(fmt.Sprintf("Wrote %s", path))
		}
	case CmdWindowNext:
		e.WindowNext()
	}
	return nil
}

// CommandWindowToggle moves focus between the command window and the
// current text window.
func (e *Editor) CommandWindowToggle() {
	if e.focused == focusable(e.commandWindow) {
		e.FocusSet(e.current)
	} else {
		e.FocusSet(e.commandWindow)
	}
}

// WindowNext cycles focus through the text windows in creation order.
func (e *Editor) WindowNext() {
	for i, w := range e.textWindows {
		if w == e.current {
			e.FocusSet(e.textWindows[(i+1)%len(e.textWindows)])
			return
		}
	}
}

// Quit stops the run loop after the current dispatch completes.
func (e *Editor) Quit() {
	e.running = false
}

// FileOpen loads a file into the current window's buffer.
func (e *Editor) FileOpen(path string) error {
	return e.current.Buffer().FileOpen(path)
}

// FileWrite writes the current window's buffer and returns the path
// written.
func (e *Editor) FileWrite(path string) (string, error) {
	return e.current.Buffer().FileWrite(path)
}

// WindowSplit splits the current text window in two halves sharing the
// same buffer. The old window is replaced by two freshly created ones;
// their surfaces cover its area.
func (e *Editor) WindowSplit() error {
	old := e.current
	if old.size.Rows < 2 {
		return errors.New("window too small to split")
	}
	topRows := old.size.Rows / 2
	buf := old.Buffer()

	// The detached surface stays on screen underneath the new halves;
	// it must not keep showing a cursor.
	old.CursorHide()
	buf.ObserverRemove(old)
	for i, w := range e.textWindows {
		if w == old {
			e.textWindows = append(e.textWindows[:i], e.textWindows[i+1:]...)
			break
		}
	}
	top := e.windowAdd(old.origin,
		yugen.Size{Rows: topRows, Cols: old.size.Cols}, buf)
	e.windowAdd(yugen.Point{Row: old.origin.Row + topRows, Col: old.origin.Col},
		yugen.Size{Rows: old.size.Rows - topRows, Cols: old.size.Cols}, buf)
	e.FocusSet(top)
	return nil
}

// WindowSelect focuses the text window with the given index in
// creation order.
func (e *Editor) WindowSelect(index int) error {
	if index < 0 || index >= len(e.textWindows) {
		return fmt.Errorf("no window %d", index)
	}
	e.FocusSet(e.textWindows[index])
	return nil
}

func (e *Editor) WindowCount() int {
	return len(e.textWindows)
}

// LineGoto moves the current window's cursor to the start of a
// one-based line.
func (e *Editor) LineGoto(line int) error {
	buf := e.current.Buffer()
	if line < 1 || line > buf.RowCount() {
		return fmt.Errorf("no line %d", line)
	}
	e.current.CursorSet(yugen.Point{Row: line - 1, Col: 0})
	e.current.targetCol = 0
	return nil
}
