// Package types contains shared data structures for termello.
package types

import "termello/othello"

// BoardState is a snapshot of a game as the UI sees it: the board value
// plus turn, score and diagnostic information.
type BoardState struct {
	MoveNumber int
	ToMove     othello.Color
	Phase      string // "playing", "finished"
	Board      othello.Board
	Outcome    string

	// LastMove is (-1,-1) when the last turn was a pass or no move has
	// been played yet.
	LastMove BoardPos

	DarkScore  int
	LightScore int

	// NodesExamined is the node count of the most recent AI search,
	// surfaced for the info panel. Zero when the AI has not moved yet.
	NodesExamined int
}

// Finished returns true if the game is over.
func (b *BoardState) Finished() bool {
	return b.Phase == "finished"
}

// BoardPos is a position on the board. Row and Col are 0-indexed from the
// top-left; (-1,-1) marks "no position".
type BoardPos struct {
	Row int
	Col int
}

// NewBoardState creates the starting position with dark to move.
func NewBoardState() *BoardState {
	b := othello.Initial()
	dark, light := b.Score()
	return &BoardState{
		MoveNumber: 0,
		ToMove:     othello.Dark,
		Phase:      "playing",
		Board:      b,
		LastMove:   BoardPos{Row: -1, Col: -1},
		DarkScore:  dark,
		LightScore: light,
	}
}
