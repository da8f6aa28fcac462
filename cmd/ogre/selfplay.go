package main

import (
	"fmt"
	"log"
	"time"

	"github.com/ogre-chess/ogre/board"
	"github.com/ogre-chess/ogre/engine"
)

// selfplay pits the engine (White) against a uniformly random mover
// (Black) and dumps the game as it unfolds.
func selfplay(plies int, seed uint64) error {
	b, err := board.NewBoard()
	if err != nil {
		return err
	}
	e := engine.NewEngine(&engine.EngineConfig{
		Seed:  seed,
		Debug: true,
	})
	rnd := engine.NewPseudoRand(seed + 1)
	fmt.Println(b.Draw())
	fmt.Println(b.FEN())

	for ply := 0; ply < plies; ply++ {
		var mv *board.Move
		if b.Turn() == board.SideWhite {
			mv, err = e.BestMove(b)
			if err != nil {
				return err
			}
		} else {
			var mvs []*board.Move
			for _, p := range b.ActivePlayer().Pieces() {
				mvs = append(mvs, p.PossibleMoves()...)
			}
			if len(mvs) == 0 {
				break
			}
			mv = mvs[rnd.Intn(len(mvs))]
			b.MakeMove(mv)
		}

		fmt.Printf("\n>>> %s: %s\n", mv.Piece.Side(), mv)
		fmt.Println(b.FEN())
		fmt.Println(b.Draw())
		<-time.Tick(2 * time.Millisecond)
	}
	log.Println("=============== game ended")
	fmt.Println(b.FEN())
	dumpHistory(b.History())

	return nil
}

func dumpHistory(mvs []*board.Move) {
	for i, mv := range mvs {
		if i%2 == 0 {
			fmt.Printf("%d.", i/2+1)
		}
		fmt.Printf("%s ", mv)
	}
	fmt.Println()
}
