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

import (
	"fmt"
	"strings"
	"unicode"
)

// Special identifies a named (non-character) key.
type Special int

const (
	KeyNone Special = iota
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyEnter
	KeyBackspace
	KeyDelete
	KeyHome
	KeyEnd
	KeyPgUp
	KeyPgDn
	KeyTab
	KeyEsc
)

// A Key is one logical key event: either a character, possibly with
// Ctrl/Meta modifiers, or a named key. Keys are comparable and can be
// used as map keys in binding tables.
type Key struct {
	Ch      rune
	Special Special
	Ctrl    bool
	Meta    bool
}

// Printable reports whether the key should be inserted as text.
func (k Key) Printable() bool {
	return !k.Ctrl && !k.Meta && k.Special == KeyNone && unicode.IsPrint(k.Ch)
}

var keyNames = map[string]Special{
	"UP":    KeyArrowUp,
	"DOWN":  KeyArrowDown,
	"LEFT":  KeyArrowLeft,
	"RIGHT": KeyArrowRight,
	"RET":   KeyEnter,
	"DEL":   KeyBackspace,
	"DC":    KeyDelete,
	"HOME":  KeyHome,
	"END":   KeyEnd,
	"PGUP":  KeyPgUp,
	"PGDN":  KeyPgDn,
	"TAB":   KeyTab,
	"ESC":   KeyEsc,
}

var specialNames = map[Special]string{
	KeyArrowUp:    "UP",
	KeyArrowDown:  "DOWN",
	KeyArrowLeft:  "LEFT",
	KeyArrowRight: "RIGHT",
	KeyEnter:      "RET",
	KeyBackspace:  "DEL",
	KeyDelete:     "DC",
	KeyHome:       "HOME",
	KeyEnd:        "END",
	KeyPgUp:       "PGUP",
	KeyPgDn:       "PGDN",
	KeyTab:        "TAB",
	KeyEsc:        "ESC",
}

// ParseKey parses a key chord in the form C-M-S-k, with C, M and S being
// optional modifiers (Ctrl, Meta, Shift) and k either a single character
// or a key name ("UP", "DEL", "RET", ...).
func ParseKey(chord string) (Key, error) {
	var k Key
	rest := chord
	for {
		switch {
		case strings.HasPrefix(rest, "C-"):
			k.Ctrl = true
			rest = rest[2:]
		case strings.HasPrefix(rest, "M-"):
			k.Meta = true
			rest = rest[2:]
		case strings.HasPrefix(rest, "S-"):
			rest = strings.ToUpper(rest[2:])
		default:
			if special, ok := keyNames[rest]; ok {
				k.Special = special
				return k, nil
			}
			runes := []rune(rest)
			if len(runes) != 1 {
				return Key{}, fmt.Errorf("invalid key chord %q", chord)
			}
			k.Ch = runes[0]
			return k, nil
		}
	}
}

func (k Key) String() string {
	var sb strings.Builder
	if k.Ctrl {
		sb.WriteString("C-")
	}
	if k.Meta {
		sb.WriteString("M-")
	}
	if k.Special != KeyNone {
		sb.WriteString(specialNames[k.Special])
	} else {
		sb.WriteRune(k.Ch)
	}
	return sb.String()
}
