package othello

import (
	"testing"
)

func TestNotation(t *testing.T) {
	cases := []struct {
		row, col int
		want     string
	}{
		{0, 0, "a1"},
		{2, 3, "d3"},
		{3, 2, "c4"},
		{7, 7, "h8"},
	}
	for _, c := range cases {
		if got := Notation(c.row, c.col); got != c.want {
			t.Fatalf("Notation(%d,%d) should be %q, got %q", c.row, c.col, c.want, got)
		}
	}
}

func TestParseNotationRoundTrip(t *testing.T) {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			s := Notation(row, col)
			r, c, err := ParseNotation(s)
			if err != nil {
				t.Fatalf("ParseNotation(%q) failed: %v", s, err)
			}
			if r != row || c != col {
				t.Fatalf("ParseNotation(%q) should be (%d,%d), got (%d,%d)", s, row, col, r, c)
			}
		}
	}
}

func TestParseNotationPass(t *testing.T) {
	row, col, err := ParseNotation("pass")
	if err != nil {
		t.Fatalf("pass should parse: %v", err)
	}
	if row != -1 || col != -1 {
		t.Fatalf("pass should be (-1,-1), got (%d,%d)", row, col)
	}
}

func TestParseNotationInvalid(t *testing.T) {
	for _, s := range []string{"", "a", "i1", "a0", "a9", "d33", "3d"} {
		if _, _, err := ParseNotation(s); err == nil {
			t.Fatalf("ParseNotation(%q) should fail", s)
		}
	}
}

func TestParseColor(t *testing.T) {
	for _, s := range []string{"dark", "d", "black", "B", "Dark"} {
		c, err := ParseColor(s)
		if err != nil || c != Dark {
			t.Fatalf("ParseColor(%q) should be Dark, got %v (%v)", s, c, err)
		}
	}
	for _, s := range []string{"light", "L", "white", "w"} {
		c, err := ParseColor(s)
		if err != nil || c != Light {
			t.Fatalf("ParseColor(%q) should be Light, got %v (%v)", s, c, err)
		}
	}
	if _, err := ParseColor("green"); err == nil {
		t.Fatal("ParseColor should reject unknown colors")
	}
}
