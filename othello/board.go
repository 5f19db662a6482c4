// Package othello implements the Othello (Reversi) game rules: board
// representation, move legality under the eight-direction sandwich rule,
// move application, scoring and terminal detection.
package othello

import "fmt"

// Size is the fixed board dimension.
const Size = 8

// Color identifies the owner of a cell. Empty marks an unoccupied cell
// and doubles as the tie result of Winner.
type Color int8

const (
	Empty Color = iota
	Dark
	Light
)

// Opponent returns the other player's color.
func (c Color) Opponent() Color {
	switch c {
	case Dark:
		return Light
	case Light:
		return Dark
	}
	return Empty
}

func (c Color) String() string {
	switch c {
	case Dark:
		return "Dark"
	case Light:
		return "Light"
	}
	return "Empty"
}

// Move is a board coordinate. Row and Col are 0-indexed from the top-left.
type Move struct {
	Row, Col int
}

// Board is an 8x8 grid of cells. It is a plain value type: Apply returns a
// new Board and never mutates its receiver, so boards can be copied and
// shared freely during search.
type Board [Size][Size]Color

var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Initial returns the standard starting position: Light on the (3,3)/(4,4)
// diagonal of the center block, Dark on the other.
func Initial() Board {
	var b Board
	mid := Size / 2
	b[mid-1][mid-1], b[mid][mid] = Light, Light
	b[mid-1][mid], b[mid][mid-1] = Dark, Dark
	return b
}

func inBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

// flipsInDirection counts the opposing discs that would be flipped along one
// ray from (row,col). Zero means the ray does not satisfy the sandwich rule.
func (b Board) flipsInDirection(row, col int, c Color, dr, dc int) int {
	opp := c.Opponent()
	n := 0
	r, cl := row+dr, col+dc
	for inBounds(r, cl) && b[r][cl] == opp {
		n++
		r += dr
		cl += dc
	}
	if n > 0 && inBounds(r, cl) && b[r][cl] == c {
		return n
	}
	return 0
}

// IsLegalMove reports whether placing c at (row,col) is legal: the cell must
// be empty and at least one direction must sandwich opposing discs.
func (b Board) IsLegalMove(row, col int, c Color) bool {
	if !inBounds(row, col) || b[row][col] != Empty {
		return false
	}
	for _, d := range directions {
		if b.flipsInDirection(row, col, c, d[0], d[1]) > 0 {
			return true
		}
	}
	return false
}

// LegalMoves returns every legal move for c in row-major order. The order is
// part of the contract: move selection breaks ties by picking the first
// maximal candidate, so callers rely on top-left to bottom-right enumeration.
func (b Board) LegalMoves(c Color) []Move {
	var moves []Move
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if b.IsLegalMove(row, col, c) {
				moves = append(moves, Move{Row: row, Col: col})
			}
		}
	}
	return moves
}

// HasAnyMove reports whether c has at least one legal move.
func (b Board) HasAnyMove(c Color) bool {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if b.IsLegalMove(row, col, c) {
				return true
			}
		}
	}
	return false
}

// Apply places c at (row,col), flips every sandwiched ray and returns the
// resulting board. The receiver is left untouched. Applying an illegal move
// is a caller error and is rejected rather than producing a corrupt board.
func (b Board) Apply(row, col int, c Color) (Board, error) {
	if !b.IsLegalMove(row, col, c) {
		return b, fmt.Errorf("illegal move %s for %s", Notation(row, col), c)
	}
	next := b
	next[row][col] = c
	for _, d := range directions {
		n := b.flipsInDirection(row, col, c, d[0], d[1])
		r, cl := row+d[0], col+d[1]
		for i := 0; i < n; i++ {
			next[r][cl] = c
			r += d[0]
			cl += d[1]
		}
	}
	return next, nil
}

// IsTerminal reports whether the game is over. A player without a move only
// passes the turn; the game ends when both colors are stuck.
func (b Board) IsTerminal() bool {
	return !b.HasAnyMove(Dark) && !b.HasAnyMove(Light)
}

// Score tallies the discs of each color.
func (b Board) Score() (dark, light int) {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			switch b[row][col] {
			case Dark:
				dark++
			case Light:
				light++
			}
		}
	}
	return dark, light
}

// Occupied returns the number of non-empty cells.
func (b Board) Occupied() int {
	dark, light := b.Score()
	return dark + light
}

// Winner returns the color with strictly more discs, or Empty for a tie.
func (b Board) Winner() Color {
	dark, light := b.Score()
	switch {
	case dark > light:
		return Dark
	case light > dark:
		return Light
	}
	return Empty
}
