package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("size = %dx%d, expected 80x24", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(10, 10)
	s.SetColored(3, 4, '#', ColorGreen)

	cell := s.GetCell(3, 4)
	if cell.Rune != '#' || cell.Color != ColorGreen {
		t.Errorf("GetCell(3, 4) = %+v, expected green '#'", cell)
	}

	// Out of bounds writes are ignored and reads return blank cells
	s.SetColored(-1, 0, 'X', ColorRed)
	s.SetColored(0, 100, 'X', ColorRed)
	if got := s.GetCell(-1, 0); got.Rune != ' ' || got.Color != ColorDefault {
		t.Errorf("out of bounds GetCell = %+v, expected blank", got)
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRect(NewRect(2, 2, 3, 2), '=', ColorGray)

	for y := 2; y < 4; y++ {
		for x := 2; x < 5; x++ {
			if c := s.GetCell(x, y); c.Rune != '=' || c.Color != ColorGray {
				t.Errorf("DrawRect: expected gray '=' at (%d, %d), got %+v", x, y, c)
			}
		}
	}
	if s.Get(5, 2) != ' ' || s.Get(2, 4) != ' ' {
		t.Error("DrawRect should not draw outside the rect")
	}

	// Partially off-screen rects are clipped
	s.DrawRect(NewRect(-2, -2, 3, 3), '#', ColorRed)
	if s.Get(0, 0) != '#' {
		t.Error("clipped rect should still draw its visible part")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Höjd")

	if !strings.HasPrefix(s.Row(1), "  Höjd") {
		t.Errorf("Row(1) = %q", s.Row(1))
	}
	if s.Get(3, 1) != 'ö' {
		t.Errorf("multi-byte runes should occupy one cell, got %q", s.Get(3, 1))
	}

	s.DrawTextCentered(3, "Hi")
	if s.Get(9, 3) != 'H' || s.Get(10, 3) != 'i' {
		t.Error("DrawTextCentered should center the text")
	}

	// Clipped at the right boundary
	s.DrawText(18, 0, "Hello")
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawBox(NewRect(0, 0, 10, 5))

	if s.Get(0, 0) != '┌' || s.Get(9, 0) != '┐' || s.Get(0, 4) != '└' || s.Get(9, 4) != '┘' {
		t.Error("DrawBox corners are wrong")
	}
	if s.Get(5, 0) != '─' || s.Get(0, 2) != '│' {
		t.Error("DrawBox edges are wrong")
	}
}

func TestScreenStringAndResize(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	if got := s.String(); got != "a  \n  b" {
		t.Errorf("String() = %q", got)
	}

	s.Resize(5, 3)
	if s.Width() != 5 || s.Height() != 3 {
		t.Fatalf("Resize: size = %dx%d", s.Width(), s.Height())
	}
	if strings.TrimSpace(strings.ReplaceAll(s.String(), "\n", "")) != "" {
		t.Error("Resize should leave a blank screen")
	}
	if s.Row(-1) != "     " {
		t.Errorf("Row(-1) = %q, expected blank row", s.Row(-1))
	}
}
