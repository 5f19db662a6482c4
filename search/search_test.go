package search

import (
	"testing"

	"termello/othello"
)

// midgamePosition plays the first legal move for plies half-moves from the
// start, passing when a side is stuck.
func midgamePosition(plies int) (othello.Board, othello.Color) {
	b := othello.Initial()
	toMove := othello.Dark
	for i := 0; i < plies; i++ {
		moves := b.LegalMoves(toMove)
		if len(moves) == 0 {
			toMove = toMove.Opponent()
			continue
		}
		b, _ = b.Apply(moves[0].Row, moves[0].Col, toMove)
		toMove = toMove.Opponent()
	}
	return b, toMove
}

func TestOpeningSearchDepthOne(t *testing.T) {
	s := New(nil)
	move, score, ok := s.FindBestMove(othello.Initial(), othello.Dark, 1)
	if !ok {
		t.Fatal("dark has four opening moves, search must find one")
	}
	openings := []othello.Move{{Row: 2, Col: 3}, {Row: 3, Col: 2}, {Row: 4, Col: 5}, {Row: 5, Col: 4}}
	found := false
	for _, m := range openings {
		if move == m {
			found = true
		}
	}
	if !found {
		t.Fatalf("chosen move %v is not an opening move", move)
	}
	if score <= lossScore || score >= winScore {
		t.Fatalf("opening score should be a finite heuristic value, got %d", score)
	}
}

func TestOpeningTieBreak(t *testing.T) {
	// The four opening moves are symmetric and score identically, so the
	// first one in row-major order must win the tie.
	s := New(nil)
	move, _, ok := s.FindBestMove(othello.Initial(), othello.Dark, 1)
	if !ok {
		t.Fatal("search must find a move")
	}
	if (move != othello.Move{Row: 2, Col: 3}) {
		t.Fatalf("tie-break should pick (2,3), got %v", move)
	}
}

func TestNodeCountDepthOne(t *testing.T) {
	// Four candidates, one evaluator call each.
	s := New(nil)
	s.SetPruning(false)
	if _, _, ok := s.FindBestMove(othello.Initial(), othello.Dark, 1); !ok {
		t.Fatal("search must find a move")
	}
	if n := s.NodesExamined(); n != 4 {
		t.Fatalf("depth-1 opening search should examine 4 nodes, got %d", n)
	}
}

func TestNoMoveSentinel(t *testing.T) {
	// Light at (0,0), dark at (0,1): dark is stuck but the game is not over.
	var b othello.Board
	b[0][0] = othello.Light
	b[0][1] = othello.Dark
	if b.IsTerminal() {
		t.Fatal("position should not be terminal")
	}

	s := New(nil)
	_, _, ok := s.FindBestMove(b, othello.Dark, 4)
	if ok {
		t.Fatal("stuck player should get the no-move sentinel")
	}
	if n := s.NodesExamined(); n != 0 {
		t.Fatalf("no-move search should examine 0 nodes, got %d", n)
	}
}

func TestPruningPreservesResult(t *testing.T) {
	for plies := 0; plies <= 14; plies += 2 {
		b, toMove := midgamePosition(plies)
		if !b.HasAnyMove(toMove) {
			continue
		}

		pruned := New(nil)
		pruned.SetPruning(true)
		pMove, pScore, pOK := pruned.FindBestMove(b, toMove, 3)

		plain := New(nil)
		plain.SetPruning(false)
		uMove, uScore, uOK := plain.FindBestMove(b, toMove, 3)

		if pOK != uOK {
			t.Fatalf("plies %d: sentinel mismatch", plies)
		}
		if pMove != uMove || pScore != uScore {
			t.Fatalf("plies %d: pruning changed the result: %v/%d vs %v/%d",
				plies, pMove, pScore, uMove, uScore)
		}
		if pruned.NodesExamined() > plain.NodesExamined() {
			t.Fatalf("plies %d: pruning should never examine more nodes (%d > %d)",
				plies, pruned.NodesExamined(), plain.NodesExamined())
		}
	}
}

func TestPruningReducesNodes(t *testing.T) {
	// At least one branchy midgame position must show a strict reduction.
	strict := false
	for plies := 4; plies <= 12; plies += 2 {
		b, toMove := midgamePosition(plies)
		if !b.HasAnyMove(toMove) {
			continue
		}

		pruned := New(nil)
		pruned.SetPruning(true)
		pruned.FindBestMove(b, toMove, 4)

		plain := New(nil)
		plain.SetPruning(false)
		plain.FindBestMove(b, toMove, 4)

		if pruned.NodesExamined() < plain.NodesExamined() {
			strict = true
		}
	}
	if !strict {
		t.Fatal("pruning should strictly reduce nodes on at least one midgame position")
	}
}

func TestDepthZeroDegradesGracefully(t *testing.T) {
	s := New(nil)
	move, _, ok := s.FindBestMove(othello.Initial(), othello.Dark, 0)
	if !ok {
		t.Fatal("depth 0 should still pick a move from static evaluation")
	}
	if !othello.Initial().IsLegalMove(move.Row, move.Col, othello.Dark) {
		t.Fatalf("depth-0 move %v should be legal", move)
	}
}

func TestTerminalBoardSearch(t *testing.T) {
	// Dark-only board: terminal, nobody can move.
	var b othello.Board
	b[0][0] = othello.Dark
	b[0][1] = othello.Dark

	s := New(nil)
	_, _, ok := s.FindBestMove(b, othello.Dark, 3)
	if ok {
		t.Fatal("terminal board should return the no-move sentinel")
	}
}

func TestTerminalScoring(t *testing.T) {
	var b othello.Board
	b[0][0] = othello.Dark
	b[0][1] = othello.Dark

	s := New(nil)
	if v := s.searchValue(b, othello.Dark, 5, true, othello.Dark, negInf, posInf); v != winScore {
		t.Fatalf("won terminal position should score %d, got %d", winScore, v)
	}
	if v := s.searchValue(b, othello.Dark, 5, true, othello.Light, negInf, posInf); v != lossScore {
		t.Fatalf("lost terminal position should score %d, got %d", lossScore, v)
	}

	b[7][6] = othello.Light
	b[7][7] = othello.Light
	if !b.IsTerminal() {
		t.Fatal("separated discs should leave no legal moves")
	}
	if v := s.searchValue(b, othello.Dark, 5, true, othello.Dark, negInf, posInf); v != 0 {
		t.Fatalf("tied terminal position should score 0, got %d", v)
	}
}

func TestPassTurnConsumesDepth(t *testing.T) {
	// Dark stuck, light to move via forced pass. searchValue entered for
	// dark must hand the turn to light without enumerating dark moves.
	var b othello.Board
	b[0][0] = othello.Light
	b[0][1] = othello.Dark

	s := New(nil)
	s.SetPruning(false)
	v := s.searchValue(b, othello.Dark, 2, true, othello.Dark, negInf, posInf)
	// Light's only reply (0,2) wipes dark out; depth runs out after it.
	if v >= 0 {
		t.Fatalf("forced pass into a lost line should score negative, got %d", v)
	}
}
