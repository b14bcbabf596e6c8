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
package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/AndreaOrru/Yugen/editor"
	"github.com/AndreaOrru/Yugen/screen"
)

func main() {
	var filename string
	if len(os.Args) > 1 {
		filename = os.Args[1]
	}

	home := os.Getenv("HOME")

	// Open a log file: the terminal is taken over by the editor.
	f, err := os.OpenFile(filepath.Join(home, ".yugenlog"),
		os.O_APPEND|os.O_CREATE|os.O_RDWR, 0666)
	if err != nil {
		log.Output(1, err.Error())
		return
	}
	log.SetOutput(f)
	defer f.Close()

	cfg, err := editor.LoadConfig(filepath.Join(home, ".yugen.toml"))
	if err != nil {
		log.Output(1, err.Error())
		return
	}

	s, err := screen.NewScreen()
	if err != nil {
		log.Output(1, err.Error())
		return
	}
	defer s.Close()

	e, err := editor.NewEditor(s, cfg)
	if err != nil {
		log.Output(1, err.Error())
		return
	}

	if filename != "" {
		if _, err := os.Stat(filename); err != nil {
			// Create a file that doesn't exist yet.
			file, err := os.Create(filename)
			if err != nil {
				log.Printf("%+v", err)
			} else {
				file.Close()
			}
		}
		if err := e.FileOpen(filename); err != nil {
			log.Output(1, err.Error())
		}
	}

	e.Run()
}
