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
	"testing"

	yugen "github.com/AndreaOrru/Yugen/types"
)

// fakeSurface implements types.UIWindow in memory for tests.
type fakeSurface struct {
	lines       []string
	cursor      yugen.Point
	cursorShown bool
	defaults    yugen.Attribute
	keys        []yugen.Key
}

func (s *fakeSurface) grow(n int) {
	for len(s.lines) < n {
		s.lines = append(s.lines, "")
	}
}

func (s *fakeSurface) LineUpdate(row int, content string, attrs []yugen.Attribute) {
	s.grow(row + 1)
	s.lines[row] = content
}

func (s *fakeSurface) LineInsert(row int, content string, attrs []yugen.Attribute) {
	s.grow(row)
	s.lines = append(s.lines, "")
	copy(s.lines[row+1:], s.lines[row:])
	s.lines[row] = content
}

func (s *fakeSurface) LineDelete(row int) {
	if row < len(s.lines) {
		s.lines = append(s.lines[:row], s.lines[row+1:]...)
	}
}

func (s *fakeSurface) CursorDraw(p yugen.Point) {
	s.cursor = p
	s.cursorShown = true
}

func (s *fakeSurface) CursorHide() {
	s.cursorShown = false
}

func (s *fakeSurface) AttributesSet(attr yugen.Attribute) {
	s.defaults = attr
}

func (s *fakeSurface) KeyGet() yugen.Key {
	if len(s.keys) == 0 {
		return yugen.Key{}
	}
	k := s.keys[0]
	s.keys = s.keys[1:]
	return k
}

// fakeUI implements types.UI in memory for tests.
type fakeUI struct {
	size     yugen.Size
	surfaces []*fakeSurface
}

func (ui *fakeUI) WindowCreate(origin yugen.Point, size yugen.Size) yugen.UIWindow {
	s := &fakeSurface{}
	ui.surfaces = append(ui.surfaces, s)
	return s
}

func (ui *fakeUI) Size() yugen.Size { return ui.size }
func (ui *fakeUI) Refresh()         {}
func (ui *fakeUI) Close()           {}

func newTestEditor(t *testing.T) (*Editor, *fakeUI) {
	t.Helper()
	ui := &fakeUI{size: yugen.Size{Rows: 24, Cols: 80}}
	e, err := NewEditor(ui, nil)
	if err != nil {
		t.Fatal(err)
	}
	return e, ui
}

func surfaceOf(t *testing.T, w *TextWindow) *fakeSurface {
	t.Helper()
	s, ok := w.Surface().(*fakeSurface)
	if !ok {
		t.Fatal("window surface is not a fake surface")
	}
	return s
}
