package othello

// Positional weights. Corners dominate; the X- and C-squares next to them
// are liabilities because they hand the corner to the opponent. Edges are
// mildly valuable, the interior is neutral.
var cellWeights = [Size][Size]int{
	{100, -20, 10, 5, 5, 10, -20, 100},
	{-20, -40, 2, 2, 2, 2, -40, -20},
	{10, 2, 0, 0, 0, 0, 2, 10},
	{5, 2, 0, 0, 0, 0, 2, 5},
	{5, 2, 0, 0, 0, 0, 2, 5},
	{10, 2, 0, 0, 0, 0, 2, 10},
	{-20, -40, 2, 2, 2, 2, -40, -20},
	{100, -20, 10, 5, 5, 10, -20, 100},
}

var corners = [4]Move{{0, 0}, {0, Size - 1}, {Size - 1, 0}, {Size - 1, Size - 1}}

const (
	mobilityWeight = 5
	cornerWeight   = 30

	// Disc count is misleading early (mobility and position dominate) but
	// decisive near the end, so its weight switches with the game phase.
	earlyDiscWeight   = 2
	lateDiscWeight    = 10
	lateGameThreshold = 45
)

// Evaluate statically scores the board from c's perspective; higher is
// better for c. It is a pure function of the position: positional weights,
// mobility, corner control and phase-weighted disc differential, each
// computed as a difference against the opponent.
func Evaluate(b Board, c Color) int {
	opp := c.Opponent()

	positional := 0
	myDiscs, oppDiscs := 0, 0
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			switch b[row][col] {
			case c:
				positional += cellWeights[row][col]
				myDiscs++
			case opp:
				positional -= cellWeights[row][col]
				oppDiscs++
			}
		}
	}

	mobility := (len(b.LegalMoves(c)) - len(b.LegalMoves(opp))) * mobilityWeight

	cornerDiff := 0
	for _, m := range corners {
		switch b[m.Row][m.Col] {
		case c:
			cornerDiff++
		case opp:
			cornerDiff--
		}
	}
	cornerScore := cornerDiff * cornerWeight

	discWeight := earlyDiscWeight
	if myDiscs+oppDiscs > lateGameThreshold {
		discWeight = lateDiscWeight
	}
	discScore := (myDiscs - oppDiscs) * discWeight

	return positional + mobility + cornerScore + discScore
}
