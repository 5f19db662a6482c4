package minimax

import (
	"testing"
	"time"

	"termello/engine"
	"termello/othello"
	"termello/types"
)

type moveEvent struct {
	row, col int
	color    othello.Color
	state    *types.BoardState
}

func testConfig(player othello.Color) engine.GameConfig {
	return engine.GameConfig{
		PlayerColor: player,
		SearchDepth: 2,
		Pruning:     true,
		ThinkDelay:  0,
	}
}

func newTestEngine(t *testing.T, player othello.Color) (*Engine, chan moveEvent, chan string) {
	t.Helper()
	e := NewEngine(testConfig(player))
	moves := make(chan moveEvent, 128)
	ends := make(chan string, 1)
	e.OnMove(func(row, col int, c othello.Color, state *types.BoardState) {
		moves <- moveEvent{row, col, c, state}
	})
	e.OnGameEnd(func(outcome string) {
		ends <- outcome
	})
	if err := e.Connect(); err != nil {
		t.Fatalf("connect failed: %v", err)
	}
	return e, moves, ends
}

func waitEvent(t *testing.T, moves chan moveEvent) moveEvent {
	t.Helper()
	select {
	case ev := <-moves:
		return ev
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for a move event")
		return moveEvent{}
	}
}

func TestHumanDarkMovesFirst(t *testing.T) {
	e, _, _ := newTestEngine(t, othello.Dark)
	defer e.Close()

	if !e.IsMyTurn() {
		t.Fatal("dark human should move first")
	}
	state := e.GetBoardState()
	if state.MoveNumber != 0 || state.ToMove != othello.Dark {
		t.Fatalf("unexpected initial state: move %d, to move %v", state.MoveNumber, state.ToMove)
	}
}

func TestEngineOpensWhenHumanIsLight(t *testing.T) {
	e, moves, _ := newTestEngine(t, othello.Light)
	defer e.Close()

	ev := waitEvent(t, moves)
	if ev.color != othello.Dark {
		t.Fatalf("engine should open as dark, got %v", ev.color)
	}
	if ev.row == -1 {
		t.Fatal("opening move should not be a pass")
	}
	if ev.state.MoveNumber != 1 {
		t.Fatalf("move number should be 1 after the opening, got %d", ev.state.MoveNumber)
	}
	if ev.state.NodesExamined == 0 {
		t.Fatal("node count of the search should be surfaced on the state")
	}
	if !e.IsMyTurn() {
		t.Fatal("turn should pass to the human after the engine's opening")
	}
}

func TestCallbackRegisteredAfterConnect(t *testing.T) {
	cfg := testConfig(othello.Light)
	cfg.ThinkDelay = 300 * time.Millisecond
	e := NewEngine(cfg)
	defer e.Close()

	if err := e.Connect(); err != nil {
		t.Fatalf("connect failed: %v", err)
	}

	// The engine is already thinking on its goroutine; registering now must
	// be safe and still catch the opening move, which the think delay is
	// holding back.
	moves := make(chan moveEvent, 8)
	e.OnMove(func(row, col int, c othello.Color, state *types.BoardState) {
		moves <- moveEvent{row, col, c, state}
	})

	ev := waitEvent(t, moves)
	if ev.color != othello.Dark || ev.row == -1 {
		t.Fatalf("expected the engine's opening move, got %+v", ev)
	}
}

func TestPlayMoveValidation(t *testing.T) {
	e, _, _ := newTestEngine(t, othello.Dark)
	defer e.Close()

	if err := e.PlayMove(0, 0); err == nil {
		t.Fatal("illegal move should be rejected")
	}
	if err := e.PlayMove(3, 3); err == nil {
		t.Fatal("occupied cell should be rejected")
	}
	state := e.GetBoardState()
	if state.MoveNumber != 0 {
		t.Fatal("rejected moves must not advance the game")
	}
}

func TestPlayMoveTriggersEngineReply(t *testing.T) {
	e, moves, _ := newTestEngine(t, othello.Dark)
	defer e.Close()

	if err := e.PlayMove(2, 3); err != nil {
		t.Fatalf("legal opening move rejected: %v", err)
	}

	human := waitEvent(t, moves)
	if human.color != othello.Dark || human.row != 2 || human.col != 3 {
		t.Fatalf("first event should be the human move, got %+v", human)
	}
	if human.state.DarkScore != 4 || human.state.LightScore != 1 {
		t.Fatalf("score after d3 should be 4-1, got %d-%d", human.state.DarkScore, human.state.LightScore)
	}

	reply := waitEvent(t, moves)
	if reply.color != othello.Light {
		t.Fatalf("second event should be the engine reply, got %+v", reply)
	}
	if !e.IsMyTurn() {
		t.Fatal("turn should return to the human after the reply")
	}
}

func TestPlayMoveAfterClose(t *testing.T) {
	e, _, _ := newTestEngine(t, othello.Dark)
	e.Close()

	if err := e.PlayMove(2, 3); err == nil {
		t.Fatal("moves after Close should be rejected")
	}
}

func TestUndoRestoresPosition(t *testing.T) {
	e, moves, _ := newTestEngine(t, othello.Dark)
	defer e.Close()

	before := e.GetBoardState().Board

	if err := e.PlayMove(2, 3); err != nil {
		t.Fatalf("legal opening move rejected: %v", err)
	}
	waitEvent(t, moves) // human move
	waitEvent(t, moves) // engine reply

	// Wait until the turn is back before undoing.
	deadline := time.Now().Add(5 * time.Second)
	for !e.IsMyTurn() {
		if time.Now().After(deadline) {
			t.Fatal("turn never returned to the human")
		}
		time.Sleep(10 * time.Millisecond)
	}

	if err := e.Undo(); err != nil {
		t.Fatalf("undo failed: %v", err)
	}
	after := e.GetBoardState()
	if after.Board != before {
		t.Fatal("undo should restore the pre-move board")
	}
	if after.MoveNumber != 0 {
		t.Fatalf("undo should rewind the move number, got %d", after.MoveNumber)
	}
	if !e.IsMyTurn() {
		t.Fatal("undo should leave the human to move")
	}
}

func TestUndoWithoutHistory(t *testing.T) {
	e, _, _ := newTestEngine(t, othello.Dark)
	defer e.Close()

	if err := e.Undo(); err == nil {
		t.Fatal("undo with no history should fail")
	}
}

func TestFullGameCompletes(t *testing.T) {
	e, moves, ends := newTestEngine(t, othello.Dark)
	defer e.Close()

	deadline := time.Now().Add(30 * time.Second)
	for {
		select {
		case outcome := <-ends:
			if outcome == "" {
				t.Fatal("outcome should not be empty")
			}
			state := e.GetBoardState()
			if !state.Finished() {
				t.Fatal("state should be finished after game end")
			}
			if !state.Board.IsTerminal() {
				t.Fatal("final board should be terminal")
			}
			return
		case <-moves:
			// Drain events; play whenever the turn is ours.
		case <-time.After(50 * time.Millisecond):
		}

		if time.Now().After(deadline) {
			t.Fatal("game did not finish in time")
		}

		if e.IsMyTurn() {
			state := e.GetBoardState()
			legal := state.Board.LegalMoves(othello.Dark)
			if len(legal) == 0 {
				continue
			}
			if err := e.PlayMove(legal[0].Row, legal[0].Col); err != nil {
				t.Fatalf("legal move %v rejected: %v", legal[0], err)
			}
		}
	}
}
