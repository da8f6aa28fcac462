package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/ogre-chess/ogre/uci"
)

const (
	exitOK = iota
	exitErr
)

var (
	profile = flag.Bool("profile", false, "serve pprof endpoint")

	stepRun   = flag.Bool("step", false, "run random playout mode")
	stepPlies = flag.Int("step.plies", 60, "playout length in plies in step mode")

	selfplayRun   = flag.Bool("selfplay", false, "run engine-versus-random mode")
	selfplayPlies = flag.Int("selfplay.plies", 60, "game length in plies in selfplay mode")
	selfplaySeed  = flag.Uint64("selfplay.seed", 0, "engine seed in selfplay mode")

	pgnFile = flag.String("pgn", "", "import a PGN file and print the final position")
)

func main() {
	flag.Parse()

	if *profile {
		runProfiler()
	}

	err := realMain()
	if err != nil {
		log.Println(err)
		os.Exit(exitErr)
	}
	os.Exit(exitOK)
}

func runProfiler() {
	go func() {
		addr := "localhost:6060"
		log.Printf("starting pprof endpoint: http://%s/debug/pprof\n", addr)
		_ = http.ListenAndServe(addr, nil)
	}()
}

func realMain() error {
	if *stepRun {
		return step(*stepPlies)
	}
	if *selfplayRun {
		return selfplay(*selfplayPlies, *selfplaySeed)
	}
	if *pgnFile != "" {
		return importPGN(*pgnFile)
	}

	return uci.NewInterface().Run()
}
