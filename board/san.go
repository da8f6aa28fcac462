package board

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/ogre-chess/ogre/position"
)

var (
	// ErrInvalidSAN represents a token the SAN grammar rejects.
	ErrInvalidSAN = errors.New("invalid san notation")
	// ErrUnresolvableSAN represents a token the grammar accepts but that
	// matches zero or several pieces on the current board.
	ErrUnresolvableSAN = errors.New("unresolvable san notation")
	// ErrCastlingNotImplemented represents a castling token; the grammar
	// recognizes them but castling is not executed.
	ErrCastlingNotImplemented = errors.New("castling not implemented")
)

// sanRegex captures: piece letter, origin file, origin rank, capture
// marker, destination, promotion suffix, or a castling token, with an
// optional check/mate suffix.
var sanRegex = regexp.MustCompile(`^(?:([KQRBN]?)([a-h]?)([1-8]?)(x?)([a-h][1-8])(?:=([QRBN]))?|(O-O(?:-O)?))([+#])?$`)

type Castle uint8

const (
	CastleNone Castle = iota
	CastleKingside
	CastleQueenside
)

// SANMove is a parsed SAN token, before resolution against a board.
type SANMove struct {
	Kind         Kind
	OriginColumn int8 // 0 when absent
	OriginRow    int8 // 0 when absent
	Capture      bool
	Dest         position.Pos
	Promote      bool
	Castle       Castle
	Check        bool
	Mate         bool
}

// ParseSAN applies the grammar only; board state is not consulted. An
// absent piece letter denotes a pawn.
func ParseSAN(token string) (*SANMove, error) {
	groups := sanRegex.FindStringSubmatch(token)
	if groups == nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSAN, token)
	}

	sm := &SANMove{
		Check: groups[8] == "+",
		Mate:  groups[8] == "#",
	}
	switch groups[7] {
	case "O-O":
		sm.Castle = CastleKingside
		return sm, nil
	case "O-O-O":
		sm.Castle = CastleQueenside
		return sm, nil
	}

	sm.Kind = KindPawn
	if groups[1] != "" {
		sm.Kind = kindFromSymbol(groups[1][0])
	}
	if groups[2] != "" {
		sm.OriginColumn = int8(groups[2][0]-'a') + 1
	}
	if groups[3] != "" {
		sm.OriginRow = int8(groups[3][0]-'1') + 1
	}
	sm.Capture = groups[4] == "x"
	dest, err := position.NewPosFromNotation(groups[5])
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidSAN, token, err)
	}
	sm.Dest = dest
	sm.Promote = groups[6] != ""
	return sm, nil
}

// ResolveSAN parses a SAN token and resolves it to a concrete move for the
// side to move. The filters (kind, origin hints, membership in the piece's
// own possible moves) must isolate exactly one piece.
func ResolveSAN(b *Board, token string) (*Move, error) {
	sm, err := ParseSAN(token)
	if err != nil {
		return nil, err
	}
	if sm.Castle != CastleNone {
		return nil, fmt.Errorf("%w: %q", ErrCastlingNotImplemented, token)
	}

	var resolved *Move
	var matches int
	for _, p := range b.ActivePlayer().Pieces() {
		if p.kind != sm.Kind {
			continue
		}
		if sm.OriginColumn != 0 && p.pos.Column != sm.OriginColumn {
			continue
		}
		if sm.OriginRow != 0 && p.pos.Row != sm.OriginRow {
			continue
		}
		for _, mv := range p.PossibleMoves() {
			if mv.To == sm.Dest {
				resolved = mv
				matches++
				break
			}
		}
	}
	switch matches {
	case 1:
		return resolved, nil
	case 0:
		return nil, fmt.Errorf("%w: %q matches no piece", ErrUnresolvableSAN, token)
	default:
		return nil, fmt.Errorf("%w: %q matches %d pieces", ErrUnresolvableSAN, token, matches)
	}
}
