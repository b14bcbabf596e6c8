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

import "fmt"

// A Command identifies an editing operation. Binding tables map keys to
// commands; a single interpreter per component executes them. Window
// commands are interpreted by the focused window, editor commands by
// the editor itself when the window reports the key unhandled.
type Command int

const (
	CmdNone Command = iota

	// Window commands.
	CmdCursorUp
	CmdCursorDown
	CmdCursorBack
	CmdCursorForward
	CmdCursorBeginBuffer
	CmdCursorEndBuffer
	CmdCursorBeginLine
	CmdCursorEndLine
	CmdLineBreak
	CmdDeleteBefore
	CmdDeleteAt
	CmdIndent

	// Editor commands.
	CmdQuit
	CmdCommandToggle
	CmdFileWrite
	CmdWindowNext
)

var commandNames = map[string]Command{
	"cursor-up":           CmdCursorUp,
	"cursor-down":         CmdCursorDown,
	"cursor-back":         CmdCursorBack,
	"cursor-forward":      CmdCursorForward,
	"cursor-begin-buffer": CmdCursorBeginBuffer,
	"cursor-end-buffer":   CmdCursorEndBuffer,
	"cursor-begin-line":   CmdCursorBeginLine,
	"cursor-end-line":     CmdCursorEndLine,
	"line-break":          CmdLineBreak,
	"delete-before":       CmdDeleteBefore,
	"delete-at":           CmdDeleteAt,
	"indent":              CmdIndent,
	"quit":                CmdQuit,
	"command-toggle":      CmdCommandToggle,
	"file-write":          CmdFileWrite,
	"window-next":         CmdWindowNext,
}

// CommandByName resolves a command identifier from a configuration
// file.
func CommandByName(name string) (Command, error) {
	cmd, ok := commandNames[name]
	if !ok {
		return CmdNone, fmt.Errorf("unknown command %q", name)
	}
	return cmd, nil
}
