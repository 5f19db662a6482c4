// Package minimax implements the GameEngine interface with the built-in
// othello search engine as the opponent.
package minimax

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"

	"termello/engine"
	"termello/othello"
	"termello/search"
	"termello/types"
)

var debugLog *zap.SugaredLogger

func init() {
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{filepath.Join(os.TempDir(), "termello-debug.log")}
	cfg.ErrorOutputPaths = cfg.OutputPaths
	logger, err := cfg.Build()
	if err != nil {
		logger = zap.NewNop()
	}
	debugLog = logger.Sugar()
}

// Engine plays Othello against the human using minimax search. It owns the
// authoritative game state and sequences turns: human moves come in through
// PlayMove, AI turns run on a goroutine, and passes are handled
// automatically for both sides.
type Engine struct {
	config   engine.GameConfig
	state    *types.BoardState
	searcher *search.Searcher

	myTurn   bool
	gameOver bool

	// history holds a snapshot taken before each human move, for Undo.
	history []types.BoardState

	moveCallback func(row, col int, c othello.Color, state *types.BoardState)
	endCallback  func(outcome string)

	mu sync.Mutex
}

// NewEngine creates a new minimax engine with the given configuration.
func NewEngine(cfg engine.GameConfig) *Engine {
	s := search.New(debugLog)
	s.SetPruning(cfg.Pruning)
	s.SetTrace(cfg.Trace)
	return &Engine{
		config:   cfg,
		state:    types.NewBoardState(),
		searcher: s,
	}
}

// Connect initializes the game. Dark always moves first; if the human plays
// light, the AI starts thinking immediately.
func (e *Engine) Connect() error {
	if e.config.PlayerColor != othello.Dark && e.config.PlayerColor != othello.Light {
		return fmt.Errorf("invalid player color: %v", e.config.PlayerColor)
	}
	if e.config.SearchDepth < 1 {
		e.config.SearchDepth = 1
	}

	if e.config.PlayerColor == othello.Dark {
		e.myTurn = true
	} else {
		e.myTurn = false
		go e.triggerEngineMove()
	}
	debugLog.Infow("game started",
		"player", e.config.PlayerColor.String(),
		"depth", e.config.SearchDepth,
		"pruning", e.config.Pruning)
	return nil
}

// GetBoardState returns a snapshot of the current board state.
func (e *Engine) GetBoardState() *types.BoardState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

// PlayMove plays the human's move and hands the turn to the AI.
func (e *Engine) PlayMove(row, col int) error {
	e.mu.Lock()

	if e.gameOver {
		e.mu.Unlock()
		return fmt.Errorf("game is over")
	}
	if !e.myTurn {
		e.mu.Unlock()
		return fmt.Errorf("not your turn")
	}

	color := e.config.PlayerColor
	next, err := e.state.Board.Apply(row, col, color)
	if err != nil {
		e.mu.Unlock()
		return err
	}

	e.history = append(e.history, *e.state)

	e.state.Board = next
	e.state.LastMove = types.BoardPos{Row: row, Col: col}
	e.state.MoveNumber++
	e.state.ToMove = color.Opponent()
	e.refreshScoreLocked()

	e.myTurn = false
	snap := e.snapshotLocked()
	cb := e.moveCallback
	e.mu.Unlock()

	debugLog.Infof("human played %s", othello.Notation(row, col))
	if cb != nil {
		cb(row, col, color, snap)
	}

	go e.triggerEngineMove()
	return nil
}

// triggerEngineMove runs the AI's turn, including any forced passes, until
// the turn returns to the human or the game ends.
func (e *Engine) triggerEngineMove() {
	e.mu.Lock()
	if e.gameOver {
		e.mu.Unlock()
		return
	}

	aiColor := e.config.PlayerColor.Opponent()

	for {
		if e.state.Board.IsTerminal() {
			e.handleGameEndLocked()
			return
		}

		move, score, ok := e.searcher.FindBestMove(e.state.Board, aiColor, e.config.SearchDepth)
		nodes := e.searcher.NodesExamined()
		e.state.NodesExamined = nodes

		if !ok {
			// AI has no move; the human must, since the game is not over.
			e.applyPassLocked(aiColor)
			e.myTurn = true
			snap := e.snapshotLocked()
			cb := e.moveCallback
			e.mu.Unlock()

			debugLog.Info("engine passes")
			if cb != nil {
				cb(-1, -1, aiColor, snap)
			}
			return
		}

		// The move is already decided; the pause is purely for pacing.
		e.mu.Unlock()
		time.Sleep(e.config.ThinkDelay)
		e.mu.Lock()
		if e.gameOver {
			e.mu.Unlock()
			return
		}

		next, err := e.state.Board.Apply(move.Row, move.Col, aiColor)
		if err != nil {
			e.mu.Unlock()
			debugLog.Errorw("search returned an illegal move", "move", move, "error", err)
			return
		}
		e.state.Board = next
		e.state.LastMove = types.BoardPos{Row: move.Row, Col: move.Col}
		e.state.MoveNumber++
		e.state.ToMove = e.config.PlayerColor
		e.refreshScoreLocked()

		snap := e.snapshotLocked()
		cb := e.moveCallback
		e.mu.Unlock()

		debugLog.Infow("engine played",
			"move", othello.Notation(move.Row, move.Col),
			"score", score,
			"nodes", nodes)
		if cb != nil {
			cb(move.Row, move.Col, aiColor, snap)
		}

		e.mu.Lock()
		if e.state.Board.IsTerminal() {
			e.handleGameEndLocked()
			return
		}
		if e.state.Board.HasAnyMove(e.config.PlayerColor) {
			e.myTurn = true
			e.mu.Unlock()
			return
		}

		// Human is stuck: pass on their behalf and let the AI move again.
		e.applyPassLocked(e.config.PlayerColor)
		snap = e.snapshotLocked()
		cb = e.moveCallback
		e.mu.Unlock()

		debugLog.Info("human has no move, passing")
		if cb != nil {
			cb(-1, -1, e.config.PlayerColor, snap)
		}
		e.mu.Lock()
		if e.gameOver {
			e.mu.Unlock()
			return
		}
	}
}

// applyPassLocked records a pass for c. Caller must hold the lock.
func (e *Engine) applyPassLocked(c othello.Color) {
	e.state.LastMove = types.BoardPos{Row: -1, Col: -1}
	e.state.MoveNumber++
	e.state.ToMove = c.Opponent()
}

// refreshScoreLocked recomputes the disc tallies. Caller must hold the lock.
func (e *Engine) refreshScoreLocked() {
	e.state.DarkScore, e.state.LightScore = e.state.Board.Score()
}

// handleGameEndLocked finalizes the game. Caller must hold the lock; it is
// released before the end callback fires.
func (e *Engine) handleGameEndLocked() {
	e.gameOver = true
	e.myTurn = false
	e.state.Phase = "finished"
	e.refreshScoreLocked()

	dark, light := e.state.DarkScore, e.state.LightScore
	switch e.state.Board.Winner() {
	case othello.Dark:
		e.state.Outcome = fmt.Sprintf("Dark wins %d-%d", dark, light)
	case othello.Light:
		e.state.Outcome = fmt.Sprintf("Light wins %d-%d", light, dark)
	default:
		e.state.Outcome = fmt.Sprintf("Tie %d-%d", dark, light)
	}

	outcome := e.state.Outcome
	cb := e.endCallback
	e.mu.Unlock()

	debugLog.Infow("game over", "outcome", outcome)
	if cb != nil {
		cb(outcome)
	}
}

// IsMyTurn returns true if it's the human player's turn.
func (e *Engine) IsMyTurn() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.myTurn && !e.gameOver
}

// PlayerColor returns the human player's color.
func (e *Engine) PlayerColor() othello.Color {
	return e.config.PlayerColor
}

// Undo rewinds to the position before the human's previous move, dropping
// the AI's reply with it. Only allowed while it is the human's turn.
func (e *Engine) Undo() error {
	e.mu.Lock()

	if e.gameOver {
		e.mu.Unlock()
		return fmt.Errorf("game is over")
	}
	if !e.myTurn {
		e.mu.Unlock()
		return fmt.Errorf("cannot undo while the engine is thinking")
	}
	if len(e.history) == 0 {
		e.mu.Unlock()
		return fmt.Errorf("nothing to undo")
	}

	prev := e.history[len(e.history)-1]
	e.history = e.history[:len(e.history)-1]
	*e.state = prev

	snap := e.snapshotLocked()
	last := e.state.LastMove
	color := e.state.ToMove
	cb := e.moveCallback
	e.mu.Unlock()

	debugLog.Info("undo")
	if cb != nil {
		cb(last.Row, last.Col, color, snap)
	}
	return nil
}

// OnMove registers a callback for when a move is played. The AI turn runs
// on its own goroutine, so registration takes the lock.
func (e *Engine) OnMove(callback func(row, col int, c othello.Color, state *types.BoardState)) {
	e.mu.Lock()
	e.moveCallback = callback
	e.mu.Unlock()
}

// OnGameEnd registers a callback for when the game ends.
func (e *Engine) OnGameEnd(callback func(outcome string)) {
	e.mu.Lock()
	e.endCallback = callback
	e.mu.Unlock()
}

// snapshotLocked copies the current board state. Caller must hold the lock.
func (e *Engine) snapshotLocked() *types.BoardState {
	snap := *e.state
	return &snap
}

// Close marks the game as abandoned. Any in-flight AI turn finishes
// without effect.
func (e *Engine) Close() {
	e.mu.Lock()
	e.gameOver = true
	e.mu.Unlock()
}
