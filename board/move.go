package board

import (
	"errors"
	"fmt"

	"github.com/ogre-chess/ogre/position"
)

var (
	// ErrInvalidMove represents a move that cannot be resolved against the
	// current board state.
	ErrInvalidMove = errors.New("invalid move")
)

// Promotion records a pawn swapped for a freshly constructed queen.
type Promotion struct {
	From, To *Piece
}

// Move is a single executed or executable ply. Captured and Promote are
// resolved at construction time against the board state the move was built
// for; identity for history comparison is (From, To, promotion marker) only.
type Move struct {
	From, To position.Pos
	Piece    *Piece
	Captured *Piece
	Promote  *Promotion
}

func newMove(p *Piece, to position.Pos) *Move {
	mv := &Move{From: p.pos, To: to, Piece: p}
	if occ := p.board.PieceAt(to); occ != nil && occ.side != p.side {
		mv.Captured = occ
	}
	if p.kind == KindPawn && to.Row == p.side.lastRank() {
		mv.promote()
	}
	return mv
}

// NewMoveFromNotation resolves a 4 or 5 character long-algebraic string
// against b. A 5th character forces a promotion record; the promotion piece
// is always a queen, whatever letter was supplied.
func NewMoveFromNotation(b *Board, n string) (*Move, error) {
	if len(n) != 4 && len(n) != 5 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMove, n)
	}
	from, err := position.NewPosFromNotation(n[:2])
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidMove, n, err)
	}
	to, err := position.NewPosFromNotation(n[2:4])
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidMove, n, err)
	}
	p := b.PieceAt(from)
	if p == nil {
		return nil, fmt.Errorf("%w: no piece on %s", ErrInvalidMove, from)
	}
	mv := newMove(p, to)
	if len(n) == 5 {
		mv.promote()
	}
	return mv, nil
}

// promote attaches the promotion record, swapping the mover for a queen.
func (m *Move) promote() {
	if m.Promote != nil {
		return
	}
	m.Promote = &Promotion{
		From: m.Piece,
		To: &Piece{
			kind:  KindQueen,
			side:  m.Piece.side,
			pos:   m.To,
			board: m.Piece.board,
		},
	}
}

// Equal compares by origin, destination and promotion marker, not by
// object identity.
func (m *Move) Equal(o *Move) bool {
	if m == nil || o == nil {
		return m == o
	}
	return m.From == o.From && m.To == o.To && (m.Promote != nil) == (o.Promote != nil)
}

// MatchesNotation reports whether m denotes the same move as a 4 or 5
// character long-algebraic string, under the Equal identity.
func (m *Move) MatchesNotation(n string) bool {
	if len(n) != 4 && len(n) != 5 {
		return false
	}
	return m.From.Notation() == n[:2] &&
		m.To.Notation() == n[2:4] &&
		(m.Promote != nil) == (len(n) == 5)
}

func (m *Move) String() string {
	return m.Notation()
}

// Notation returns the long-algebraic form, with a trailing promotion
// letter when a promotion record is attached.
func (m *Move) Notation() string {
	n := m.From.Notation() + m.To.Notation()
	if m.Promote != nil {
		n += "q"
	}
	return n
}
