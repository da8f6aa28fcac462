package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/ogre-chess/ogre/position"
)

const (
	DefaultStartingPositionFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
)

var (
	ErrInvalidFEN = errors.New("invalid fen")
)

type placement struct {
	side Side
	kind Kind
	pos  position.Pos
}

// parseFEN extracts piece placement and the side to move. The castling,
// en passant and clock segments are accepted but not tracked; the board
// model carries no such state.
func parseFEN(fen string) ([]placement, Side, error) {
	segments := strings.Split(fen, " ")
	if len(segments) != 6 {
		return nil, SideUnknown, fmt.Errorf("%w: incorrect number of segments", ErrInvalidFEN)
	}

	rows := strings.Split(segments[0], "/")
	if len(rows) != int(Height) {
		return nil, SideUnknown, fmt.Errorf("%w: invalid board configuration", ErrInvalidFEN)
	}
	var placements []placement
	for row := Height; row >= 1; row-- {
		line := rows[Height-row]
		column := int8(1)
		for _, cell := range line {
			if column > Width {
				return nil, SideUnknown, fmt.Errorf("%w: excess cells on row %d", ErrInvalidFEN, row)
			}
			if cell != '0' && unicode.IsDigit(cell) {
				column += int8(cell - '0')
				continue
			}
			s := SideWhite
			sym := byte(cell)
			if 'a' <= sym && sym <= 'z' {
				s = SideBlack
				sym -= 0x20
			}
			k := kindFromSymbol(sym)
			if k == KindUnknown {
				return nil, SideUnknown, fmt.Errorf("%w: unknown symbol %q", ErrInvalidFEN, string(cell))
			}
			placements = append(placements, placement{
				side: s,
				kind: k,
				pos:  position.NewPos(column, row),
			})
			column++
		}
		if column != Width+1 {
			return nil, SideUnknown, fmt.Errorf("%w: missing cells on row %d", ErrInvalidFEN, row)
		}
	}

	var turn Side
	switch segments[1] {
	case "w":
		turn = SideWhite
	case "b":
		turn = SideBlack
	default:
		return nil, SideUnknown, fmt.Errorf("%w: invalid turn", ErrInvalidFEN)
	}

	if _, err := strconv.ParseUint(segments[4], 10, 64); err != nil {
		return nil, SideUnknown, fmt.Errorf("%w: invalid half move clock", ErrInvalidFEN)
	}
	if _, err := strconv.ParseUint(segments[5], 10, 64); err != nil {
		return nil, SideUnknown, fmt.Errorf("%w: invalid full move clock", ErrInvalidFEN)
	}

	return placements, turn, nil
}

// FEN serializes the piece placement and side to move. Castling rights and
// en passant are emitted as absent and the half move clock as zero, since
// the model tracks neither.
func (b *Board) FEN() string {
	builder := strings.Builder{}
	for row := Height; row >= 1; row-- {
		var skip int8
		for column := int8(1); column <= Width; column++ {
			p := b.PieceAt(position.NewPos(column, row))
			if p == nil {
				skip++
				continue
			}
			if skip != 0 {
				_, _ = builder.WriteRune(rune('0' + skip))
				skip = 0
			}
			_, _ = builder.WriteString(p.kind.SymbolFEN(p.side))
		}
		if skip != 0 {
			_, _ = builder.WriteRune(rune('0' + skip))
		}
		if row > 1 {
			_, _ = builder.WriteRune('/')
		}
	}

	if b.Turn() == SideWhite {
		_, _ = builder.WriteString(" w")
	} else {
		_, _ = builder.WriteString(" b")
	}

	_, _ = builder.WriteString(fmt.Sprintf(" - - 0 %d", len(b.history)/2+1))

	return builder.String()
}
