// Package engine defines the interface between the UI and a game opponent.
package engine

import (
	"time"

	"termello/othello"
	"termello/types"
)

// GameEngine defines the interface for playing Othello against an opponent.
type GameEngine interface {
	// Connect initializes the game. If the opponent moves first it starts
	// thinking immediately.
	Connect() error

	// GetBoardState returns the current board state.
	GetBoardState() *types.BoardState

	// PlayMove plays the human's move at the given coordinates.
	// Returns an error if the move is illegal or it is not the human's turn.
	PlayMove(row, col int) error

	// IsMyTurn returns true if it's the human player's turn.
	IsMyTurn() bool

	// PlayerColor returns the human player's color.
	PlayerColor() othello.Color

	// OnMove registers a callback for when a move is played by either side.
	// row, col are -1, -1 for a pass. The board state is a snapshot owned
	// by the callback.
	OnMove(func(row, col int, c othello.Color, state *types.BoardState))

	// OnGameEnd registers a callback for when the game ends.
	OnGameEnd(func(outcome string))

	// Undo rewinds to the position before the human's previous move.
	Undo() error

	// Close shuts down the engine.
	Close()
}

// GameConfig holds configuration for starting a new game.
type GameConfig struct {
	PlayerColor othello.Color // human's color; dark moves first
	SearchDepth int           // minimax depth in plies, 1-8
	Pruning     bool          // alpha-beta pruning
	Trace       bool          // verbose search logging
	ThinkDelay  time.Duration // artificial pause before the AI's move shows
}

// DefaultConfig returns a reasonable default configuration.
func DefaultConfig() GameConfig {
	return GameConfig{
		PlayerColor: othello.Dark,
		SearchDepth: 4,
		Pruning:     true,
		ThinkDelay:  400 * time.Millisecond,
	}
}
