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
package types

// A Point is a position in a buffer or on a surface.
// Row and Col are zero-based; Col may equal the row length,
// denoting the position after the last character.
type Point struct {
	Row int
	Col int
}

type Size struct {
	Rows int
	Cols int
}

type Color uint16

const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
)

// An Attribute describes how a character is displayed.
type Attribute struct {
	Foreground Color
	Background Color
	Reverse    bool
	Bold       bool
}

// UIWindow is a rectangular display surface. It mirrors the buffer's
// line-level change vocabulary and owns a cursor.
type UIWindow interface {
	LineUpdate(line int, content string, attrs []Attribute)
	LineInsert(line int, content string, attrs []Attribute)
	LineDelete(line int)

	CursorDraw(p Point)
	CursorHide()

	// AttributesSet sets the default attributes for the whole surface.
	AttributesSet(attr Attribute)

	// KeyGet blocks until a key is pressed inside the window.
	KeyGet() Key
}

// UI is the capability set a rendering backend must provide.
// This is the entire surface the editor core depends on.
type UI interface {
	WindowCreate(origin Point, size Size) UIWindow
	Size() Size
	Refresh()
	Close()
}

// Editor is the control surface exposed to the commander.
type Editor interface {
	Quit()
	FileOpen(path string) error
	FileWrite(path string) (string, error)
	WindowSplit() error
	WindowSelect(index int) error
	WindowCount() int
	LineGoto(line int) error
}
