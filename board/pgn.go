package board

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	pgnRoundRegex  = regexp.MustCompile(`^\d+\.(\.\.)?$`)
	pgnResultRegex = regexp.MustCompile(`^(1-0|0-1|1/2-1/2|\*)$`)
)

// ImportPGN replays a whitespace-separated stream of SAN tokens onto b.
// Round markers ("1.", "3...") and game results are skipped; every other
// token must parse and resolve to exactly one move.
func (b *Board) ImportPGN(text string) error {
	for _, token := range strings.Fields(text) {
		if pgnRoundRegex.MatchString(token) || pgnResultRegex.MatchString(token) {
			continue
		}
		mv, err := ResolveSAN(b, token)
		if err != nil {
			return fmt.Errorf("import pgn: move %d: %w", len(b.history)+1, err)
		}
		b.MakeMove(mv)
	}
	return nil
}
