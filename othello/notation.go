package othello

import (
	"fmt"
	"strconv"
	"strings"
)

// Othello algebraic notation:
// - Columns: a-h (left to right)
// - Rows: 1-8 (top to bottom)
// - Example: the four opening moves for Dark are d3, c4, f5, e6.

// Notation converts a board coordinate to algebraic notation.
func Notation(row, col int) string {
	return fmt.Sprintf("%c%d", 'a'+rune(col), row+1)
}

// ParseNotation converts algebraic notation to a board coordinate.
// "pass" (any case) returns (-1, -1).
func ParseNotation(s string) (row, col int, err error) {
	s = strings.TrimSpace(strings.ToLower(s))

	if s == "pass" {
		return -1, -1, nil
	}

	if len(s) != 2 {
		return 0, 0, fmt.Errorf("invalid square: %q", s)
	}

	col = int(s[0] - 'a')
	if col < 0 || col >= Size {
		return 0, 0, fmt.Errorf("invalid column in square: %q", s)
	}

	n, err := strconv.Atoi(s[1:])
	if err != nil || n < 1 || n > Size {
		return 0, 0, fmt.Errorf("invalid row in square: %q", s)
	}
	row = n - 1

	return row, col, nil
}

// ParseColor converts a color name to a Color. Accepts "dark"/"d"/"black"/"b"
// and "light"/"l"/"white"/"w".
func ParseColor(s string) (Color, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dark", "d", "black", "b":
		return Dark, nil
	case "light", "l", "white", "w":
		return Light, nil
	}
	return Empty, fmt.Errorf("invalid color: %q", s)
}
