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
package screen

import (
	"github.com/nsf/termbox-go"

	yugen "github.com/AndreaOrru/Yugen/types"
)

// keyFromEvent maps a termbox key event to the editor's logical key
// space. The Alt modifier becomes Meta; control characters become
// Ctrl-letter combinations except for the keys with names of their own
// (Tab, Enter, Backspace, Escape).
func keyFromEvent(event termbox.Event) yugen.Key {
	meta := event.Mod&termbox.ModAlt != 0
	if event.Ch != 0 {
		return yugen.Key{Ch: event.Ch, Meta: meta}
	}
	switch event.Key {
	case termbox.KeyArrowUp:
		return yugen.Key{Special: yugen.KeyArrowUp, Meta: meta}
	case termbox.KeyArrowDown:
		return yugen.Key{Special: yugen.KeyArrowDown, Meta: meta}
	case termbox.KeyArrowLeft:
		return yugen.Key{Special: yugen.KeyArrowLeft, Meta: meta}
	case termbox.KeyArrowRight:
		return yugen.Key{Special: yugen.KeyArrowRight, Meta: meta}
	case termbox.KeyHome:
		return yugen.Key{Special: yugen.KeyHome, Meta: meta}
	case termbox.KeyEnd:
		return yugen.Key{Special: yugen.KeyEnd, Meta: meta}
	case termbox.KeyPgup:
		return yugen.Key{Special: yugen.KeyPgUp, Meta: meta}
	case termbox.KeyPgdn:
		return yugen.Key{Special: yugen.KeyPgDn, Meta: meta}
	case termbox.KeyDelete:
		return yugen.Key{Special: yugen.KeyDelete, Meta: meta}
	case termbox.KeyBackspace: // 0x08, also Ctrl-H
		return yugen.Key{Special: yugen.KeyBackspace, Meta: meta}
	case termbox.KeyBackspace2: // 0x7F
		return yugen.Key{Special: yugen.KeyBackspace, Meta: meta}
	case termbox.KeyTab:
		return yugen.Key{Special: yugen.KeyTab, Meta: meta}
	case termbox.KeyEnter:
		return yugen.Key{Special: yugen.KeyEnter, Meta: meta}
	case termbox.KeyEsc:
		return yugen.Key{Special: yugen.KeyEsc, Meta: meta}
	case termbox.KeySpace:
		return yugen.Key{Ch: ' ', Meta: meta}
	}
	if event.Key >= termbox.KeyCtrlA && event.Key <= termbox.KeyCtrlZ {
		ch := rune('a') + rune(event.Key) - rune(termbox.KeyCtrlA)
		return yugen.Key{Ch: ch, Ctrl: true, Meta: meta}
	}
	return yugen.Key{}
}
