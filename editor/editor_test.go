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
	"path/filepath"
	"strings"
	"testing"

	yugen "github.com/AndreaOrru/Yugen/types"
)

func TestGlobalBindingFallback(t *testing.T) {
	e, _ := newTestEditor(t)
	e.running = true

	// M-q is not bound in the text window, so it falls through to the
	// global table and quits.
	if err := e.KeyDispatch(yugen.Key{Ch: 'q', Meta: true}); err != nil {
		t.Fatal(err)
	}
	if e.running {
		t.Error("global quit binding did not stop the editor")
	}
}

func TestWindowBindingShadowsGlobal(t *testing.T) {
	e, _ := newTestEditor(t)
	e.running = true
	w := e.WindowCurrent()
	w.BindingSet(yugen.Key{Ch: 'q', Meta: true}, CmdCursorEndBuffer)
	w.Buffer().SetContent("hi")

	if err := e.KeyDispatch(yugen.Key{Ch: 'q', Meta: true}); err != nil {
		t.Fatal(err)
	}
	if !e.running {
		t.Error("window binding did not shadow the global quit")
	}
	if w.Cursor() != (yugen.Point{Row: 0, Col: 2}) {
		t.Errorf("cursor = %v, want (0,2)", w.Cursor())
	}
}

func TestFocusSwitchMovesCursorVisibility(t *testing.T) {
	e, _ := newTestEditor(t)
	textSurface := surfaceOf(t, e.WindowCurrent())
	commandSurface, ok := e.commandWindow.Surface().(*fakeSurface)
	if !ok {
		t.Fatal("command window surface is not a fake surface")
	}

	if !textSurface.cursorShown {
		t.Fatal("focused window's cursor not drawn")
	}
	if commandSurface.cursorShown {
		t.Fatal("unfocused command window shows a cursor")
	}

	e.CommandWindowToggle()
	if textSurface.cursorShown {
		t.Error("previous window's cursor still shown after focus switch")
	}
	if !commandSurface.cursorShown {
		t.Error("command window's cursor not drawn after focus switch")
	}

	e.CommandWindowToggle()
	if commandSurface.cursorShown {
		t.Error("command window's cursor still shown after toggling back")
	}
	if !textSurface.cursorShown {
		t.Error("text window's cursor not redrawn after toggling back")
	}
}

func TestMessageLeavesCursorOnFocusedWindow(t *testing.T) {
	e, _ := newTestEditor(t)
	textSurface := surfaceOf(t, e.WindowCurrent())
	commandSurface, ok := e.commandWindow.Surface().(*fakeSurface)
	if !ok {
		t.Fatal("command window surface is not a fake surface")
	}

	path := filepath.Join(t.TempDir(), "message.txt")
	if _, err := e.FileWrite(path); err != nil {
		t.Fatal(err)
	}
	e.commandWindow.MessageShow("Wrote " + path)

	if commandSurface.cursorShown {
		t.Error("unfocused command window shows a cursor after a message")
	}
	if !textSurface.cursorShown {
		t.Error("focused window's cursor hidden by a message")
	}

	// The file-write binding reports through the same message path.
	if err := e.KeyDispatch(yugen.Key{Ch: 's', Meta: true}); err != nil {
		t.Fatal(err)
	}
	if commandSurface.cursorShown {
		t.Error("unfocused command window shows a cursor after file-write")
	}
	if !textSurface.cursorShown {
		t.Error("focused window's cursor hidden by file-write")
	}
}

func TestSplitHidesReplacedWindowCursor(t *testing.T) {
	e, _ := newTestEditor(t)
	replaced := surfaceOf(t, e.WindowCurrent())
	if err := e.WindowSplit(); err != nil {
		t.Fatal(err)
	}
	if replaced.cursorShown {
		t.Error("detached window's surface still shows a cursor")
	}
}

func TestWindowNextCycles(t *testing.T) {
	e, _ := newTestEditor(t)
	if err := e.WindowSplit(); err != nil {
		t.Fatal(err)
	}
	first := e.WindowCurrent()

	e.WindowNext()
	second := e.WindowCurrent()
	if second == first {
		t.Fatal("focus did not move to the next window")
	}
	e.WindowNext()
	if e.WindowCurrent() != first {
		t.Error("cycling did not wrap back to the first window")
	}
}

func TestCommandWindowEvaluates(t *testing.T) {
	e, _ := newTestEditor(t)
	e.WindowCurrent().Buffer().SetContent("one\ntwo\nthree")

	e.CommandWindowToggle()
	for _, c := range "goto 3" {
		if err := e.KeyDispatch(yugen.Key{Ch: c}); err != nil {
			t.Fatal(err)
		}
	}
	if err := e.KeyDispatch(yugen.Key{Special: yugen.KeyEnter}); err != nil {
		t.Fatal(err)
	}

	if e.WindowCurrent().Cursor() != (yugen.Point{Row: 2, Col: 0}) {
		t.Errorf("cursor = %v, want (2,0)", e.WindowCurrent().Cursor())
	}
	if e.focused != focusable(e.WindowCurrent()) {
		t.Error("focus did not return to the text window after evaluation")
	}
	if s, ok := e.commandWindow.Surface().(*fakeSurface); ok && s.cursorShown {
		t.Error("command window shows a cursor after giving up focus")
	}
}

func TestCommandWindowShowsErrors(t *testing.T) {
	e, _ := newTestEditor(t)

	e.CommandWindowToggle()
	for _, c := range "bogus" {
		if err := e.KeyDispatch(yugen.Key{Ch: c}); err != nil {
			t.Fatal(err)
		}
	}
	if err := e.KeyDispatch(yugen.Key{Special: yugen.KeyEnter}); err != nil {
		t.Fatal(err)
	}

	if got := e.commandWindow.Buffer().Content(); !strings.Contains(got, "bogus") {
		t.Errorf("command window content = %q, want an unknown-command message", got)
	}
}

func TestQuitCommand(t *testing.T) {
	e, _ := newTestEditor(t)
	e.running = true

	e.CommandWindowToggle()
	for _, c := range "quit" {
		if err := e.KeyDispatch(yugen.Key{Ch: c}); err != nil {
			t.Fatal(err)
		}
	}
	if err := e.KeyDispatch(yugen.Key{Special: yugen.KeyEnter}); err != nil {
		t.Fatal(err)
	}
	if e.running {
		t.Error("quit command did not stop the editor")
	}
}

func TestStatusWindowShowsPositionAndFile(t *testing.T) {
	e, _ := newTestEditor(t)
	path := filepath.Join(t.TempDir(), "status.txt")
	if _, err := e.WindowCurrent().Buffer().FileWrite(path); err != nil {
		t.Fatal(err)
	}

	e.statusWindow.Update()
	got := e.statusWindow.Buffer().Content()
	if !strings.Contains(got, "(1, 0)") {
		t.Errorf("status %q does not show the cursor position", got)
	}
	if !strings.Contains(got, path) {
		t.Errorf("status %q does not show the file name", got)
	}
}

func TestConfigOverridesBindings(t *testing.T) {
	ui := &fakeUI{size: yugen.Size{Rows: 24, Cols: 80}}
	cfg := &Config{
		TabWidth: 4,
		Bindings: map[string]string{"C-b": "cursor-begin-buffer"},
	}
	e, err := NewEditor(ui, cfg)
	if err != nil {
		t.Fatal(err)
	}
	w := e.WindowCurrent()
	w.Buffer().SetContent("hi")
	w.CursorEndBuffer()

	handled, err := w.KeyHandle(yugen.Key{Ch: 'b', Ctrl: true})
	if err != nil {
		t.Fatal(err)
	}
	if !handled {
		t.Fatal("configured binding not handled")
	}
	if w.Cursor() != (yugen.Point{Row: 0, Col: 0}) {
		t.Errorf("cursor = %v, want origin", w.Cursor())
	}
}
