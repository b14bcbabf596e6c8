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
	"testing"

	"github.com/nsf/termbox-go"

	yugen "github.com/AndreaOrru/Yugen/types"
)

func TestKeyFromEvent(t *testing.T) {
	cases := []struct {
		name  string
		event termbox.Event
		want  yugen.Key
	}{
		{"char", termbox.Event{Ch: 'a'}, yugen.Key{Ch: 'a'}},
		{"wide char", termbox.Event{Ch: '世'}, yugen.Key{Ch: '世'}},
		{"meta char", termbox.Event{Ch: 'x', Mod: termbox.ModAlt}, yugen.Key{Ch: 'x', Meta: true}},
		{"space", termbox.Event{Key: termbox.KeySpace}, yugen.Key{Ch: ' '}},
		{"arrow up", termbox.Event{Key: termbox.KeyArrowUp}, yugen.Key{Special: yugen.KeyArrowUp}},
		{"meta arrow", termbox.Event{Key: termbox.KeyArrowLeft, Mod: termbox.ModAlt},
			yugen.Key{Special: yugen.KeyArrowLeft, Meta: true}},
		{"home", termbox.Event{Key: termbox.KeyHome}, yugen.Key{Special: yugen.KeyHome}},
		{"end", termbox.Event{Key: termbox.KeyEnd}, yugen.Key{Special: yugen.KeyEnd}},
		{"page up", termbox.Event{Key: termbox.KeyPgup}, yugen.Key{Special: yugen.KeyPgUp}},
		{"delete", termbox.Event{Key: termbox.KeyDelete}, yugen.Key{Special: yugen.KeyDelete}},
		{"backspace", termbox.Event{Key: termbox.KeyBackspace}, yugen.Key{Special: yugen.KeyBackspace}},
		{"backspace2", termbox.Event{Key: termbox.KeyBackspace2}, yugen.Key{Special: yugen.KeyBackspace}},
		{"tab", termbox.Event{Key: termbox.KeyTab}, yugen.Key{Special: yugen.KeyTab}},
		{"enter", termbox.Event{Key: termbox.KeyEnter}, yugen.Key{Special: yugen.KeyEnter}},
		{"escape", termbox.Event{Key: termbox.KeyEsc}, yugen.Key{Special: yugen.KeyEsc}},
		{"ctrl a", termbox.Event{Key: termbox.KeyCtrlA}, yugen.Key{Ch: 'a', Ctrl: true}},
		{"ctrl j", termbox.Event{Key: termbox.KeyCtrlJ}, yugen.Key{Ch: 'j', Ctrl: true}},
		{"ctrl z", termbox.Event{Key: termbox.KeyCtrlZ}, yugen.Key{Ch: 'z', Ctrl: true}},
	}
	for _, c := range cases {
		if got := keyFromEvent(c.event); got != c.want {
			t.Errorf("%s: keyFromEvent = %+v, want %+v", c.name, got, c.want)
		}
	}
}

func TestControlLettersNamedKeysWin(t *testing.T) {
	// Ctrl-H, Ctrl-I and Ctrl-M share key codes with Backspace, Tab and
	// Enter; the named key takes precedence.
	cases := []struct {
		event termbox.Event
		want  yugen.Key
	}{
		{termbox.Event{Key: termbox.KeyCtrlH}, yugen.Key{Special: yugen.KeyBackspace}},
		{termbox.Event{Key: termbox.KeyCtrlI}, yugen.Key{Special: yugen.KeyTab}},
		{termbox.Event{Key: termbox.KeyCtrlM}, yugen.Key{Special: yugen.KeyEnter}},
	}
	for _, c := range cases {
		if got := keyFromEvent(c.event); got != c.want {
			t.Errorf("keyFromEvent(%v) = %+v, want %+v", c.event.Key, got, c.want)
		}
	}
}
