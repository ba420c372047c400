package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetColorGetCell(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColor(5, 5, 'X', ColorRed)
	cell := s.GetCell(5, 5)
	if cell.Rune != 'X' || cell.Color != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v, expected X in red", cell)
	}

	// Out of bounds should be silent
	s.SetColor(-1, 0, 'A', ColorRed)
	s.SetColor(0, 100, 'A', ColorRed)

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 4)
	s.DrawRect(NewRect(0, 0, 4, 4), '#', ColorYellow)
	s.Clear()

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Errorf("After Clear, expected blank cell at (%d, %d), got %+v", x, y, c)
			}
		}
	}
}

func TestScreenDrawTextClipsAndCountsRunes(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello", ColorDefault)
	if !strings.HasPrefix(s.Row(1)[2:], "Hello") {
		t.Errorf("DrawText: row 1 = %q", s.Row(1))
	}

	s.DrawText(18, 0, "Hello", ColorDefault)
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}

	// Multi-byte runes advance one cell each.
	s.DrawText(0, 2, "◆█", ColorDefault)
	if s.Get(0, 2) != '◆' || s.Get(1, 2) != '█' {
		t.Errorf("multi-byte text misplaced: %q", s.Row(2))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorDefault)

	if s.Get(1, 1) != '┌' || s.Get(5, 1) != '┐' || s.Get(1, 4) != '└' || s.Get(5, 4) != '┘' {
		t.Error("DrawBox corners not drawn correctly")
	}
	if s.Get(3, 1) != '─' || s.Get(1, 2) != '│' {
		t.Error("DrawBox edges not drawn correctly")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 5)
	s.Resize(20, 8)
	if s.Width() != 20 || s.Height() != 8 {
		t.Errorf("Resize: got %dx%d", s.Width(), s.Height())
	}
	s.SetColor(19, 7, 'Z', ColorDefault)
	if s.Get(19, 7) != 'Z' {
		t.Error("resized screen should accept writes at new bounds")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')
	if got := s.String(); got != "a  \n  b" {
		t.Errorf("String() = %q", got)
	}
}
