package othello

import (
	"testing"
)

// playFirstLegal advances the game by always picking the first legal move,
// passing when stuck. It returns the reached position.
func playFirstLegal(plies int) Board {
	b := Initial()
	toMove := Dark
	for i := 0; i < plies; i++ {
		moves := b.LegalMoves(toMove)
		if len(moves) == 0 {
			toMove = toMove.Opponent()
			continue
		}
		b, _ = b.Apply(moves[0].Row, moves[0].Col, toMove)
		toMove = toMove.Opponent()
	}
	return b
}

func TestEvaluateAntisymmetry(t *testing.T) {
	// Every term is a difference against the opponent, so the evaluation
	// must negate exactly when the perspective flips.
	for plies := 0; plies <= 12; plies++ {
		b := playFirstLegal(plies)
		d := Evaluate(b, Dark)
		l := Evaluate(b, Light)
		if d != -l {
			t.Fatalf("after %d plies: Evaluate(Dark)=%d, Evaluate(Light)=%d, want negation", plies, d, l)
		}
	}
}

func TestEvaluateDeterministic(t *testing.T) {
	b := playFirstLegal(8)
	first := Evaluate(b, Dark)
	for i := 0; i < 5; i++ {
		if v := Evaluate(b, Dark); v != first {
			t.Fatalf("evaluation should be deterministic, got %d then %d", first, v)
		}
	}
}

func TestEvaluateSingleCorner(t *testing.T) {
	// One dark disc on a corner: 100 positional + 30 corner + 1*2 discs,
	// no mobility for either side.
	var b Board
	b[0][0] = Dark
	if v := Evaluate(b, Dark); v != 132 {
		t.Fatalf("expected 132, got %d", v)
	}
	if v := Evaluate(b, Light); v != -132 {
		t.Fatalf("expected -132 from light's perspective, got %d", v)
	}
}

func TestEvaluatePhaseSwitch(t *testing.T) {
	// Rows 0-2 dark: 24 discs, early phase, disc term weighted x2.
	var early Board
	for row := 0; row < 3; row++ {
		for col := 0; col < Size; col++ {
			early[row][col] = Dark
		}
	}
	// positional 102 + corners 60 + discs 24*2
	if v := Evaluate(early, Dark); v != 210 {
		t.Fatalf("early-phase evaluation should be 210, got %d", v)
	}

	// Rows 0-5 dark: 48 discs, past the 45-disc threshold, weighted x10.
	var late Board
	for row := 0; row < 6; row++ {
		for col := 0; col < Size; col++ {
			late[row][col] = Dark
		}
	}
	// positional 154 + corners 60 + discs 48*10
	if v := Evaluate(late, Dark); v != 694 {
		t.Fatalf("late-phase evaluation should be 694, got %d", v)
	}
}

func TestCellWeightsShape(t *testing.T) {
	cornerCells := [][2]int{{0, 0}, {0, 7}, {7, 0}, {7, 7}}
	for _, c := range cornerCells {
		if cellWeights[c[0]][c[1]] != 100 {
			t.Fatalf("corner (%d,%d) should weigh 100", c[0], c[1])
		}
	}
	xSquares := [][2]int{{1, 1}, {1, 6}, {6, 1}, {6, 6}}
	for _, c := range xSquares {
		if cellWeights[c[0]][c[1]] != -40 {
			t.Fatalf("X-square (%d,%d) should weigh -40", c[0], c[1])
		}
	}
	cSquares := [][2]int{{0, 1}, {1, 0}, {0, 6}, {1, 7}, {6, 0}, {7, 1}, {6, 7}, {7, 6}}
	for _, c := range cSquares {
		if cellWeights[c[0]][c[1]] != -20 {
			t.Fatalf("C-square (%d,%d) should weigh -20", c[0], c[1])
		}
	}
	// Weights are symmetric under board rotation.
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if cellWeights[row][col] != cellWeights[Size-1-row][Size-1-col] {
				t.Fatalf("weights should be symmetric at (%d,%d)", row, col)
			}
		}
	}
}
