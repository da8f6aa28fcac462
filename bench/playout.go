package bench

import (
	"fmt"
	"time"

	"github.com/ogre-chess/ogre/board"
	"github.com/ogre-chess/ogre/engine"
)

// Playout drives a seeded random game for the given number of plies,
// counting generated moves, then unwinds the whole game through UndoMove.
// The returned count is the total number of moves generated; the unwind
// doubles as a make/undo consistency exercise.
func Playout(plies int, seed uint64, verbose bool, out chan<- string) (uint64, error) {
	b, err := board.NewBoard()
	if err != nil {
		return 0, err
	}
	rnd := engine.NewPseudoRand(seed)

	var generated uint64
	startTime := time.Now()
	for ply := 0; ply < plies; ply++ {
		var mvs []*board.Move
		for _, p := range b.ActivePlayer().Pieces() {
			mvs = append(mvs, p.PossibleMoves()...)
		}
		generated += uint64(len(mvs))
		if len(mvs) == 0 {
			break
		}
		mv := mvs[rnd.Intn(len(mvs))]
		b.MakeMove(mv)
		if verbose && out != nil {
			out <- fmt.Sprintf("[#%d] %s", ply+1, mv)
		}
	}

	played := b.Ply()
	for b.Ply() > 0 {
		b.UndoMove()
	}
	if got, want := b.FEN(), freshFEN(); got != want {
		return 0, fmt.Errorf("unwind mismatch after %d plies: got=%s want=%s", played, got, want)
	}

	if out != nil {
		out <- fmt.Sprintf("playout depth:%d moves:%d t:%s", played, generated, time.Since(startTime))
	}
	return generated, nil
}

func freshFEN() string {
	b, err := board.NewBoard()
	if err != nil {
		panic(err)
	}
	return b.FEN()
}
