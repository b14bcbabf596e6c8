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
	"os"
	"strings"

	yugen "github.com/AndreaOrru/Yugen/types"
)

// ErrOutOfRange reports a buffer operation called with coordinates
// outside the buffer. It indicates a bug in the caller: well-behaved
// windows never produce such coordinates.
var ErrOutOfRange = errors.New("position out of range")

// A BufferObserver is notified of every buffer mutation, synchronously,
// before the mutating operation returns. Windows register themselves as
// observers; the buffer never holds a concrete window reference.
type BufferObserver interface {
	LineUpdated(row int)
	LineInserted(row int)
	LineDeleted(row int)
	Reloaded()
}

// A Buffer is a container for text, stored as an ordered sequence of
// rows. It is never empty: an empty buffer is one row of zero length.
// All mutation goes through the buffer's own methods, which notify
// every registered observer in registration order.
type Buffer struct {
	rows      []*Row
	observers []BufferObserver
	fileName  string
}

func NewBuffer(content string) *Buffer {
	b := &Buffer{}
	b.load(content)
	return b
}

func (b *Buffer) load(content string) {
	lines := strings.Split(content, "\n")
	b.rows = make([]*Row, 0, len(lines))
	for _, line := range lines {
		b.rows = append(b.rows, NewRow(line))
	}
}

// Content returns the buffer's text, with rows joined by newlines.
func (b *Buffer) Content() string {
	var sb strings.Builder
	for i, row := range b.rows {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(row.String())
	}
	return sb.String()
}

// SetContent replaces the whole text and notifies every observer of a
// full reload.
func (b *Buffer) SetContent(content string) {
	b.load(content)
	for _, o := range b.observers {
		o.Reloaded()
	}
}

// Lines returns a copy of the buffer's lines, without newlines.
func (b *Buffer) Lines() []string {
	lines := make([]string, len(b.rows))
	for i, row := range b.rows {
		lines[i] = row.String()
	}
	return lines
}

func (b *Buffer) Line(row int) string {
	return b.rows[row].String()
}

func (b *Buffer) RowCount() int {
	return len(b.rows)
}

func (b *Buffer) RowLength(row int) int {
	return b.rows[row].Length()
}

func (b *Buffer) FileName() string {
	return b.fileName
}

// End returns the coordinates of the last valid position in the buffer.
func (b *Buffer) End() yugen.Point {
	last := len(b.rows) - 1
	return yugen.Point{Row: last, Col: b.rows[last].Length()}
}

func (b *Buffer) valid(p yugen.Point) bool {
	return p.Row >= 0 && p.Row < len(b.rows) &&
		p.Col >= 0 && p.Col <= b.rows[p.Row].Length()
}

// CharAbove returns the position one row above, clamping the column to
// the destination row's length. The second result is false when there
// is no row above.
func (b *Buffer) CharAbove(row, col int) (yugen.Point, bool) {
	if row <= 0 {
		return yugen.Point{}, false
	}
	return yugen.Point{Row: row - 1, Col: min(col, b.rows[row-1].Length())}, true
}

// CharBelow is the downward counterpart of CharAbove.
func (b *Buffer) CharBelow(row, col int) (yugen.Point, bool) {
	if row+1 >= len(b.rows) {
		return yugen.Point{}, false
	}
	return yugen.Point{Row: row + 1, Col: min(col, b.rows[row+1].Length())}, true
}

// CharBefore returns the position immediately preceding p in document
// order. Moving before column 0 of a non-first row lands at the end of
// the previous row: the newline is a navigable position.
func (b *Buffer) CharBefore(p yugen.Point) (yugen.Point, bool) {
	if p.Col > 0 {
		return yugen.Point{Row: p.Row, Col: p.Col - 1}, true
	}
	if p.Row > 0 {
		return yugen.Point{Row: p.Row - 1, Col: b.rows[p.Row-1].Length()}, true
	}
	return yugen.Point{}, false
}

// CharAfter is the successor counterpart of CharBefore.
func (b *Buffer) CharAfter(p yugen.Point) (yugen.Point, bool) {
	if p.Col < b.rows[p.Row].Length() {
		return yugen.Point{Row: p.Row, Col: p.Col + 1}, true
	}
	if p.Row+1 < len(b.rows) {
		return yugen.Point{Row: p.Row + 1, Col: 0}, true
	}
	return yugen.Point{}, false
}

// CharInsert splices a character into the buffer at p and notifies a
// line update.
func (b *Buffer) CharInsert(c rune, p yugen.Point) error {
	if !b.valid(p) {
		return fmt.Errorf("insert at (%d,%d): %w", p.Row, p.Col, ErrOutOfRange)
	}
	b.rows[p.Row].InsertChar(p.Col, c)
	for _, o := range b.observers {
		o.LineUpdated(p.Row)
	}
	return nil
}

// CharDelete deletes the character at p. When p is at the end of a row,
// the deleted character is the newline: the next row is merged into the
// current one. Deleting at the buffer's end has no next row to merge
// and is out of range.
func (b *Buffer) CharDelete(p yugen.Point) error {
	if !b.valid(p) {
		return fmt.Errorf("delete at (%d,%d): %w", p.Row, p.Col, ErrOutOfRange)
	}
	if p.Col == b.rows[p.Row].Length() {
		if p.Row+1 >= len(b.rows) {
			return fmt.Errorf("delete at (%d,%d): %w", p.Row, p.Col, ErrOutOfRange)
		}
		b.rows[p.Row].Join(b.rows[p.Row+1])
		b.rows = append(b.rows[:p.Row+1], b.rows[p.Row+2:]...)
		for _, o := range b.observers {
			o.LineUpdated(p.Row)
		}
		for _, o := range b.observers {
			o.LineDeleted(p.Row + 1)
		}
		return nil
	}
	b.rows[p.Row].DeleteChar(p.Col)
	for _, o := range b.observers {
		o.LineUpdated(p.Row)
	}
	return nil
}

// LineBreak splits the row at p into two rows and notifies a line
// update for the shortened first half and a line insert for the new
// second half.
func (b *Buffer) LineBreak(p yugen.Point) error {
	if !b.valid(p) {
		return fmt.Errorf("line break at (%d,%d): %w", p.Row, p.Col, ErrOutOfRange)
	}
	after := b.rows[p.Row].Split(p.Col)
	b.rows = append(b.rows, nil)
	copy(b.rows[p.Row+2:], b.rows[p.Row+1:])
	b.rows[p.Row+1] = after
	for _, o := range b.observers {
		o.LineUpdated(p.Row)
	}
	for _, o := range b.observers {
		o.LineInserted(p.Row + 1)
	}
	return nil
}

// ObserverAdd registers an observer and resyncs it with a full reload.
// Registering the same observer twice has no effect.
func (b *Buffer) ObserverAdd(o BufferObserver) {
	for _, registered := range b.observers {
		if registered == o {
			return
		}
	}
	b.observers = append(b.observers, o)
	o.Reloaded()
}

func (b *Buffer) ObserverRemove(o BufferObserver) {
	for i, registered := range b.observers {
		if registered == o {
			b.observers = append(b.observers[:i], b.observers[i+1:]...)
			return
		}
	}
}

// FileOpen reads a file into the buffer and associates its path.
func (b *Buffer) FileOpen(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	b.fileName = path
	b.SetContent(string(data))
	return nil
}

// FileWrite writes the buffer's content to path. An empty path means
// the associated file; the first explicit path becomes the association.
// The path written to is returned.
func (b *Buffer) FileWrite(path string) (string, error) {
	if path == "" {
		path = b.fileName
	} else if b.fileName == "" {
		b.fileName = path
	}
	if path == "" {
		return "", errors.New("buffer has no file name")
	}
	if err := os.WriteFile(path, []byte(b.Content()), 0644); err != nil {
		return "", err
	}
	return path, nil
}
