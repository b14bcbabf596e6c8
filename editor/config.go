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
	"fmt"
	"os"

	yugen "github.com/AndreaOrru/Yugen/types"
	"github.com/BurntSushi/toml"
)

const defaultTabWidth = 8

// Config holds the user configuration, decoded from a TOML file.
// Binding tables map key chords ("C-j", "M-i", "DEL", ...) to command
// names ("line-break", "cursor-up", ...).
type Config struct {
	TabWidth       int               `toml:"tab_width"`
	Bindings       map[string]string `toml:"bindings"`
	GlobalBindings map[string]string `toml:"global_bindings"`
}

func DefaultConfig() *Config {
	return &Config{TabWidth: defaultTabWidth}
}

// LoadConfig reads a configuration file. A missing file is not an
// error: the defaults apply.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) tabWidth() int {
	if c.TabWidth <= 0 {
		return defaultTabWidth
	}
	return c.TabWidth
}

func (c *Config) windowBindings() (map[yugen.Key]Command, error) {
	return parseBindings(c.Bindings)
}

func (c *Config) globalBindings() (map[yugen.Key]Command, error) {
	return parseBindings(c.GlobalBindings)
}

func parseBindings(raw map[string]string) (map[yugen.Key]Command, error) {
	bindings := make(map[yugen.Key]Command, len(raw))
	for chord, name := range raw {
		key, err := yugen.ParseKey(chord)
		if err != nil {
			return nil, err
		}
		cmd, err := CommandByName(name)
		if err != nil {
			return nil, fmt.Errorf("binding %q: %w", chord, err)
		}
		bindings[key] = cmd
	}
	return bindings, nil
}
