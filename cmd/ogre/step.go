package main

import (
	"fmt"
	"log"
	"time"

	"github.com/ogre-chess/ogre/board"
	"github.com/ogre-chess/ogre/engine"
)

func step(plies int) error {
	log.Println("============ step")
	var (
		timesGenerate []time.Duration
		timesMake     []time.Duration
	)
	b, err := board.NewBoard()
	if err != nil {
		return err
	}
	rnd := engine.NewPseudoRand(uint64(time.Now().UnixNano()))

	for ply := 0; ply < plies; ply++ {
		t1 := time.Now()
		var mvs []*board.Move
		for _, p := range b.ActivePlayer().Pieces() {
			mvs = append(mvs, p.PossibleMoves()...)
		}
		t2 := time.Now()
		timesGenerate = append(timesGenerate, t2.Sub(t1))
		if len(mvs) == 0 {
			return fmt.Errorf("unexpected move exhaustion at ply %d", ply)
		}
		mv := mvs[rnd.Intn(len(mvs))]

		t1 = time.Now()
		b.MakeMove(mv)
		t2 = time.Now()
		timesMake = append(timesMake, t2.Sub(t1))

		fmt.Printf("\n===== [#%d] %s: %s\n", ply/2+1, mv.Piece.Side(), mv)
		fmt.Println(b.Draw())
		fmt.Println(b.FEN())
		<-time.Tick(10 * time.Millisecond)
	}

	avg := func(ds []time.Duration) time.Duration {
		var s time.Duration
		for _, d := range ds {
			s += d
		}
		return time.Duration(s.Seconds() / float64(len(ds)) * float64(time.Second))
	}

	fmt.Println()
	fmt.Println("genmv:", avg(timesGenerate))
	fmt.Println("make: ", avg(timesMake))
	return nil
}
