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

// A Row is one line of text in a buffer. No trailing newline is stored.
type Row struct {
	text []rune
}

func NewRow(text string) *Row {
	return &Row{text: []rune(text)}
}

func (r *Row) String() string {
	return string(r.text)
}

func (r *Row) Length() int {
	return len(r.text)
}

// InsertChar splices a character into the row at col.
// The caller guarantees 0 <= col <= Length().
func (r *Row) InsertChar(col int, c rune) {
	line := make([]rune, 0, len(r.text)+1)
	line = append(line, r.text[:col]...)
	line = append(line, c)
	line = append(line, r.text[col:]...)
	r.text = line
}

// DeleteChar removes the character at col and returns it.
// The caller guarantees 0 <= col < Length().
func (r *Row) DeleteChar(col int) rune {
	c := r.text[col]
	r.text = append(r.text[:col], r.text[col+1:]...)
	return c
}

// Split truncates the row at col and returns a new row holding the
// remaining text.
func (r *Row) Split(col int) *Row {
	after := string(r.text[col:])
	r.text = r.text[:col]
	return NewRow(after)
}

// Join appends the other row's text to this row.
func (r *Row) Join(other *Row) {
	r.text = append(r.text, other.text...)
}
