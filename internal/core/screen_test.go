package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetColored(3, 2, '●', ColorBrightWhite)
	cell := s.GetCell(3, 2)
	if cell.Rune != '●' || cell.Color != ColorBrightWhite {
		t.Errorf("GetCell(3,2) = %+v, want ● bright white", cell)
	}

	// Out of bounds writes are ignored, reads return blanks.
	s.Set(-1, 0, 'x')
	s.Set(10, 0, 'x')
	s.Set(0, 5, 'x')
	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("out-of-bounds Get = %q, want space", got)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 3)
	s.FillRect(0, 0, 4, 3, '#', ColorRed)
	s.Clear()

	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			cell := s.GetCell(x, y)
			if cell.Rune != ' ' || cell.Color != ColorDefault {
				t.Fatalf("cell (%d,%d) not cleared: %+v", x, y, cell)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(2, 1, "hello")

	if got := strings.TrimRight(rowString(s, 1), " "); got != "  hello" {
		t.Errorf("row 1 = %q, want %q", got, "  hello")
	}

	// Clipping at the right edge.
	s.DrawText(8, 0, "abc")
	if s.Get(8, 0) != 'a' || s.Get(9, 0) != 'b' {
		t.Error("text should clip at screen edge")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "abc")
	if s.Get(4, 0) != 'a' || s.Get(6, 0) != 'c' {
		t.Errorf("centered text misplaced: row = %q", rowString(s, 0))
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(6, 4)
	s.Set(1, 1, 'x')
	s.Set(5, 3, 'y')

	s.Resize(4, 2)
	if s.Width() != 4 || s.Height() != 2 {
		t.Fatalf("size = %dx%d, want 4x2", s.Width(), s.Height())
	}
	if s.Get(1, 1) != 'x' {
		t.Error("resize should preserve in-range content")
	}

	s.Resize(8, 6)
	if s.Get(1, 1) != 'x' {
		t.Error("grow should preserve content")
	}
	if s.Get(7, 5) != ' ' {
		t.Error("grown area should be blank")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(0, 0, 6, 4)

	if s.Get(0, 0) != '┌' || s.Get(5, 0) != '┐' || s.Get(0, 3) != '└' || s.Get(5, 3) != '┘' {
		t.Error("box corners incorrect")
	}
	if s.Get(2, 0) != '─' || s.Get(0, 2) != '│' {
		t.Error("box edges incorrect")
	}
}

func TestBrickColorWraps(t *testing.T) {
	if BrickColor(0) != BrickColor(10) {
		t.Error("brick palette should wrap modulo 10")
	}
	if BrickColor(-3) == ColorDefault {
		t.Error("negative indices should still map into the palette")
	}
}

func rowString(s *Screen, y int) string {
	var sb strings.Builder
	for x := 0; x < s.Width(); x++ {
		sb.WriteRune(s.Get(x, y))
	}
	return sb.String()
}
