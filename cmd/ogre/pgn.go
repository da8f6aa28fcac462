package main

import (
	"fmt"
	"os"

	"github.com/ogre-chess/ogre/board"
)

// importPGN replays the PGN movetext in path onto a fresh board and prints
// the resulting position.
func importPGN(path string) error {
	text, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	b, err := board.NewBoard()
	if err != nil {
		return err
	}
	if err := b.ImportPGN(string(text)); err != nil {
		return err
	}

	fmt.Println(b.Draw())
	fmt.Println(b.FEN())
	dumpHistory(b.History())
	return nil
}
