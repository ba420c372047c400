package assets

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultSheetHasEverySprite(t *testing.T) {
	s := Default()
	for _, name := range []string{"player", "token", "rug", "fud", "bear", "paper", "scam"} {
		if rows, ok := s.Sprite(name); !ok || len(rows) == 0 {
			t.Errorf("default sheet missing %q", name)
		}
	}
}

func TestNilSheetIsSafe(t *testing.T) {
	var s *Sheet
	if _, ok := s.Sprite("player"); ok {
		t.Error("nil sheet returned a sprite")
	}
	if s.Len() != 0 {
		t.Error("nil sheet has sprites")
	}
}

func TestLoadAndOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sprites.yaml")
	body := "sprites:\n  player:\n    - \"@@\"\n  empty: []\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	custom, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if _, ok := custom.Sprite("empty"); ok {
		t.Error("empty sprite should count as missing")
	}

	merged := Overlay(Default(), custom)
	rows, ok := merged.Sprite("player")
	if !ok || rows[0] != "@@" {
		t.Errorf("player sprite = %v, want custom", rows)
	}
	if _, ok := merged.Sprite("bear"); !ok {
		t.Error("overlay lost a default sprite")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "none.yaml")); err == nil {
		t.Error("expected error for missing sheet")
	}
}

func TestParseBadYAML(t *testing.T) {
	if _, err := Parse([]byte("sprites: [")); err == nil {
		t.Error("expected parse error")
	}
}
