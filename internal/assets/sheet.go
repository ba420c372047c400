// Package assets loads optional ASCII sprite sheets for the renderer.
// A missing sheet or sprite is never fatal: the renderer substitutes its
// built-in glyphs.
package assets

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/memerun/internal/games/memerun"
)

//go:embed defaults/sprites.yaml
var defaultSheetYAML []byte

// Sheet is a named set of ASCII sprites.
type Sheet struct {
	Sprites map[string][]string `yaml:"sprites"`
}

// Sprite returns the rows of a sprite. A nil sheet has no sprites.
func (s *Sheet) Sprite(name string) ([]string, bool) {
	if s == nil {
		return nil, false
	}
	rows, ok := s.Sprites[name]
	return rows, ok && len(rows) > 0
}

// Len returns the number of sprites in the sheet.
func (s *Sheet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Sprites)
}

var _ memerun.Assets = (*Sheet)(nil)

// Parse decodes a sprite sheet from YAML.
func Parse(data []byte) (*Sheet, error) {
	var s Sheet
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("assets: failed to parse sprite sheet: %w", err)
	}
	return &s, nil
}

// Load reads a sprite sheet from a YAML file.
func Load(path string) (*Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("assets: failed to read sprite sheet %s: %w", path, err)
	}
	return Parse(data)
}

// Default returns the embedded sprite sheet.
func Default() *Sheet {
	s, err := Parse(defaultSheetYAML)
	if err != nil {
		return &Sheet{}
	}
	return s
}

// Overlay returns a sheet with every sprite of top, falling back to base
// for names top does not define.
func Overlay(base, top *Sheet) *Sheet {
	out := &Sheet{Sprites: make(map[string][]string, base.Len()+top.Len())}
	if base != nil {
		for name, rows := range base.Sprites {
			out.Sprites[name] = rows
		}
	}
	if top != nil {
		for name, rows := range top.Sprites {
			out.Sprites[name] = rows
		}
	}
	return out
}
