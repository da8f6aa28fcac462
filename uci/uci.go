package uci

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/ogre-chess/ogre/board"
	"github.com/ogre-chess/ogre/engine"
)

var (
	EngineName   = "ogre"
	EngineAuthor = "og"

	defaultOptions = options{
		debug:   false,
		samples: engine.DefaultSampleCount,
	}
)

const debugLogFile = "ogre-engine.log"

type options struct {
	debug   bool
	samples int
}

type Interface struct {
	board    *board.Board
	engine   *engine.Engine
	options  options
	debugLog *log.Logger
}

func NewInterface() *Interface {
	return &Interface{
		options: defaultOptions,
	}
}

func (i *Interface) Run() error {
	i.reset()

	reader := bufio.NewReader(os.Stdin)
	for {
		cmd, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		cmd = strings.TrimSpace(cmd)
		i.logf("received: %s", cmd)

		switch args := strings.Split(cmd, " "); args[0] {
		case "uci":
			i.commandUCI()
		case "ucinewgame":
			i.reset()
		case "isready":
			i.commandReady()
		case "setoption":
			i.commandSetOption(args[1:])
		case "position":
			i.commandPosition(args[1:])
		case "d":
			i.commandDraw()
		case "go":
			i.commandGo()
		case "quit":
			return nil
		default:
			// unknown input still gets a move proposal
			i.commandGo()
		}
	}
}

func (i *Interface) commandUCI() {
	i.println(fmt.Sprintf("id name %s", EngineName))
	i.println(fmt.Sprintf("id author %s", EngineAuthor))
	i.println(fmt.Sprintf("option Debug type check default %v", defaultOptions.debug))
	i.println(fmt.Sprintf("option Samples type spin default %d min 1 max 65536", defaultOptions.samples))
	i.println("uciok")
}

func (i *Interface) commandReady() {
	if i.board != nil && i.engine != nil {
		i.println("readyok")
	}
}

func (i *Interface) commandSetOption(args []string) {
	if len(args) < 4 || args[0] != "name" || args[2] != "value" {
		return
	}
	switch name, valueStr := strings.ToLower(args[1]), args[3]; name {
	case "debug":
		value, err := strconv.ParseBool(valueStr)
		if err != nil {
			return
		}
		i.options.debug = value
		if value && i.debugLog == nil {
			f, err := os.OpenFile(debugLogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
			if err != nil {
				return
			}
			i.debugLog = log.New(f, "", log.LstdFlags)
		}
		i.reset()
	case "samples":
		value, err := strconv.Atoi(valueStr)
		if err != nil || value < 1 || value > 1<<16 {
			return
		}
		i.options.samples = value
		i.reset()
	}
}

func (i *Interface) commandPosition(args []string) {
	if len(args) == 0 {
		return
	}

	switch args[0] {
	case "startpos":
		var moves []string
		if len(args) > 1 && args[1] == "moves" {
			moves = args[2:]
		}
		if err := i.board.SyncMoves(moves); err != nil {
			panic(err)
		}
	case "fen":
		b, err := board.NewBoard(board.WithFEN(strings.Join(args[1:], " ")))
		if err != nil {
			return
		}
		i.board = b
	}
}

func (i *Interface) commandDraw() {
	i.println(i.board.Draw())
}

func (i *Interface) commandGo() {
	mv, err := i.engine.BestMove(i.board)
	if err != nil {
		panic(err)
	}
	i.println(fmt.Sprintf("bestmove %s", mv.Notation()))
}

func (i *Interface) reset() {
	b, err := board.NewBoard()
	if err != nil {
		panic(err)
	}
	i.board = b
	i.engine = engine.NewEngine(&engine.EngineConfig{
		Samples: i.options.samples,
		Debug:   i.options.debug,
		Logger:  i.println,
	})
}

func (i *Interface) println(a ...any) {
	fmt.Fprintln(os.Stdout, a...)
}

func (i *Interface) logf(format string, a ...any) {
	if i.options.debug && i.debugLog != nil {
		i.debugLog.Printf(format, a...)
	}
}
