// Package search implements depth-limited minimax with optional alpha-beta
// pruning over othello positions.
package search

import (
	"go.uber.org/zap"

	"termello/othello"
)

const (
	// Terminal scores dwarf any static evaluation so that a proven win or
	// loss always outranks a heuristic guess.
	winScore  = 10000
	lossScore = -10000

	negInf = -1 << 30
	posInf = 1 << 30
)

// Searcher selects moves via recursive minimax. Telemetry (the node counter
// and the pruning/trace toggles) lives on the Searcher rather than in
// package state, so independent searches never interfere. A Searcher is not
// safe for concurrent FindBestMove calls.
type Searcher struct {
	pruning bool
	trace   bool
	nodes   int
	log     *zap.SugaredLogger
}

// New returns a Searcher with pruning enabled. A nil logger disables
// trace output entirely.
func New(log *zap.SugaredLogger) *Searcher {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Searcher{
		pruning: true,
		log:     log,
	}
}

// SetPruning toggles alpha-beta pruning. Pruning changes the node count,
// never the chosen move or score.
func (s *Searcher) SetPruning(on bool) {
	s.pruning = on
}

// Pruning reports whether alpha-beta pruning is enabled.
func (s *Searcher) Pruning() bool {
	return s.pruning
}

// SetTrace toggles verbose logging of considered moves and cutoffs.
// Trace output is diagnostic only and never affects the result.
func (s *Searcher) SetTrace(on bool) {
	s.trace = on
}

// NodesExamined returns the number of positions evaluated by the most
// recent FindBestMove call.
func (s *Searcher) NodesExamined() int {
	return s.nodes
}

// FindBestMove searches for c's best move from b, looking depth plies
// ahead. It returns ok=false when c has no legal move (score is then
// meaningless and no search is performed). Ties between equally scored
// moves go to the first candidate in row-major order.
func (s *Searcher) FindBestMove(b othello.Board, c othello.Color, depth int) (best othello.Move, score int, ok bool) {
	s.nodes = 0

	moves := b.LegalMoves(c)
	if len(moves) == 0 {
		return othello.Move{}, 0, false
	}

	if s.trace {
		s.log.Infof("search: %s to move, depth %d, pruning %v, %d candidates",
			c, depth, s.pruning, len(moves))
	}

	alpha := negInf
	score = negInf
	for _, m := range moves {
		child, err := b.Apply(m.Row, m.Col, c)
		if err != nil {
			continue // unreachable: moves come from LegalMoves
		}
		v := s.searchValue(child, c.Opponent(), depth-1, false, c, alpha, posInf)
		if s.trace {
			s.log.Infof("search: candidate %s scores %d", othello.Notation(m.Row, m.Col), v)
		}
		if v > score {
			score = v
			best = m
		}
		if s.pruning && score > alpha {
			alpha = score
		}
	}

	if s.trace {
		s.log.Infof("search: chose %s (score %d, %d nodes)",
			othello.Notation(best.Row, best.Col), score, s.nodes)
	}
	return best, score, true
}

// searchValue is the recursive evaluator. The sign convention is fixed by
// root: static and terminal scores are always from root's perspective, and
// alpha/beta bounds are handed down unchanged rather than negated per ply.
func (s *Searcher) searchValue(b othello.Board, toMove othello.Color, depth int, maximizing bool, root othello.Color, alpha, beta int) int {
	s.nodes++

	// A finished game short-circuits the depth limit: its value is exact.
	if b.IsTerminal() {
		switch b.Winner() {
		case root:
			return winScore
		case root.Opponent():
			return lossScore
		}
		return 0
	}

	if depth <= 0 {
		return othello.Evaluate(b, root)
	}

	moves := b.LegalMoves(toMove)
	if len(moves) == 0 {
		// Forced pass: the turn flips without branching, but still costs a
		// ply of depth.
		return s.searchValue(b, toMove.Opponent(), depth-1, !maximizing, root, alpha, beta)
	}

	if maximizing {
		best := negInf
		for _, m := range moves {
			child, err := b.Apply(m.Row, m.Col, toMove)
			if err != nil {
				continue // unreachable: moves come from LegalMoves
			}
			v := s.searchValue(child, toMove.Opponent(), depth-1, false, root, alpha, beta)
			if v > best {
				best = v
			}
			if s.pruning {
				if best > alpha {
					alpha = best
				}
				if beta <= alpha {
					if s.trace {
						s.log.Infof("search: beta cutoff at %s (depth %d)",
							othello.Notation(m.Row, m.Col), depth)
					}
					break
				}
			}
		}
		return best
	}

	best := posInf
	for _, m := range moves {
		child, err := b.Apply(m.Row, m.Col, toMove)
		if err != nil {
			continue // unreachable: moves come from LegalMoves
		}
		v := s.searchValue(child, toMove.Opponent(), depth-1, true, root, alpha, beta)
		if v < best {
			best = v
		}
		if s.pruning {
			if best < beta {
				beta = best
			}
			if beta <= alpha {
				if s.trace {
					s.log.Infof("search: alpha cutoff at %s (depth %d)",
						othello.Notation(m.Row, m.Col), depth)
				}
				break
			}
		}
	}
	return best
}
