package engine

import (
	"github.com/ogre-chess/ogre/board"
)

var (
	// DefaultCaptureScores is the per-kind capture value table. The king
	// dwarfs everything else so that king-threatening moves dominate.
	DefaultCaptureScores = map[board.Kind]float64{
		board.KindPawn:   1,
		board.KindKnight: 3,
		board.KindBishop: 3,
		board.KindRook:   5,
		board.KindQueen:  9,
		board.KindKing:   100,
	}

	// DefaultLookaheadWeight scales the post-move static evaluation in a
	// move's total score.
	DefaultLookaheadWeight = 0.3
)

func (e *Engine) captureScore(k board.Kind) float64 {
	return e.config.CaptureScores[k]
}

// Evaluate scores the position for its side to move: the mover's
// mobility-weighted threat sum minus twice the opponent's. The asymmetry
// biases towards the side to move.
func (e *Engine) Evaluate(b *board.Board) float64 {
	active := b.Turn()
	return e.threatSum(b, active) - 2*e.threatSum(b, active.Opposite())
}

// threatSum totals the capture score reachable through each of the side's
// pieces' own possible moves.
func (e *Engine) threatSum(b *board.Board, s board.Side) float64 {
	var total float64
	for _, p := range b.Player(s).Pieces() {
		for _, mv := range p.PossibleMoves() {
			if mv.Captured != nil {
				total += e.captureScore(mv.Captured.Kind())
			}
		}
	}
	return total
}

// EvaluateMove scores a candidate: the immediate capture value on its
// destination plus the weighted evaluation of the resulting position. The
// move is applied and rewound on b itself; a depth-1 heuristic, not a
// minimax search.
func (e *Engine) EvaluateMove(b *board.Board, mv *board.Move) float64 {
	var immediate float64
	if occ := b.PieceAt(mv.To); occ != nil {
		immediate = e.captureScore(occ.Kind())
	}

	b.MakeMove(mv)
	lookahead := e.config.LookaheadWeight * e.Evaluate(b)
	b.UndoMove()

	return immediate + lookahead
}
