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

// Package commander turns command-line input into editor operations
// through a statically declared table of named commands. There is no
// runtime reflection and no code evaluation: every command is a typed
// function operating on the editor contract.
package commander

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	yugen "github.com/AndreaOrru/Yugen/types"
)

// A Command is one entry in the dispatch table.
type Command struct {
	Name string
	Args string // argument synopsis shown by help
	Help string
	Run  func(e yugen.Editor, args []string) (string, error)
}

// The Commander dispatches command strings against its table.
type Commander struct {
	editor   yugen.Editor
	commands map[string]Command
}

func New(e yugen.Editor) *Commander {
	c := &Commander{editor: e}
	c.commands = map[string]Command{}
	for _, cmd := range table {
		c.commands[cmd.Name] = cmd
	}
	c.commands["help"] = Command{
		Name: "help",
		Help: "list the available commands",
		Run: func(yugen.Editor, []string) (string, error) {
			return c.help(), nil
		},
	}
	return c
}

var table = []Command{
	{
		Name: "open", Args: "<path>",
		Help: "open a file in the current window",
		Run: func(e yugen.Editor, args []string) (string, error) {
			if len(args) != 1 {
				return "", fmt.Errorf("open: want one path, got %d arguments", len(args))
			}
			if err := e.FileOpen(args[0]); err != nil {
				return "", err
			}
			return fmt.Sprintf("Opened %s", args[0]), nil
		},
	},
	{
		Name: "write", Args: "[path]",
		Help: "write the current buffer to its file, or to path",
		Run: func(e yugen.Editor, args []string) (string, error) {
			path := ""
			if len(args) > 1 {
				return "", fmt.Errorf("write: want at most one path, got %d arguments", len(args))
			}
			if len(args) == 1 {
				path = args[0]
			}
			written, err := e.FileWrite(path)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("Wrote %s", written), nil
		},
	},
	{
		Name: "quit",
		Help: "quit the editor",
		Run: func(e yugen.Editor, args []string) (string, error) {
			e.Quit()
			return "", nil
		},
	},
	{
		Name: "split",
		Help: "split the current window in two views of the same buffer",
		Run: func(e yugen.Editor, args []string) (string, error) {
			return "", e.WindowSplit()
		},
	},
	{
		Name: "window", Args: "<n>",
		Help: "focus window number n",
		Run: func(e yugen.Editor, args []string) (string, error) {
			if len(args) != 1 {
				return "", fmt.Errorf("window: want a window number")
			}
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return "", fmt.Errorf("window: %q is not a number", args[0])
			}
			return "", e.WindowSelect(n - 1)
		},
	},
	{
		Name: "goto", Args: "<line>",
		Help: "move the cursor to the given line",
		Run: func(e yugen.Editor, args []string) (string, error) {
			if len(args) != 1 {
				return "", fmt.Errorf("goto: want a line number")
			}
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return "", fmt.Errorf("goto: %q is not a number", args[0])
			}
			return "", e.LineGoto(n)
		},
	},
}

// Evaluate parses one command line and runs it. A bare number is a
// shorthand for "goto". An empty input does nothing.
func (c *Commander) Evaluate(input string) (string, error) {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return "", nil
	}
	if n, err := strconv.Atoi(fields[0]); err == nil {
		return "", c.editor.LineGoto(n)
	}
	cmd, ok := c.commands[fields[0]]
	if !ok {
		return "", fmt.Errorf("unknown command %q", fields[0])
	}
	return cmd.Run(c.editor, fields[1:])
}

func (c *Commander) help() string {
	names := make([]string, 0, len(c.commands))
	for name := range c.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	for i, name := range names {
		if i > 0 {
			sb.WriteString("  ")
		}
		cmd := c.commands[name]
		sb.WriteString(cmd.Name)
		if cmd.Args != "" {
			sb.WriteByte(' ')
			sb.WriteString(cmd.Args)
		}
	}
	return sb.String()
}
