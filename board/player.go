package board

import (
	"github.com/ogre-chess/ogre/position"
)

// Player owns one side's active pieces. Captured and promoted-away pieces
// leave the set but keep their last position so undo can reinsert them
// unchanged.
type Player struct {
	side   Side
	pieces []*Piece
}

func newPlayer(b *Board, s Side) *Player {
	pl := &Player{side: s}
	st := s.setup()
	place := func(k Kind, column int8, row int8) {
		pl.pieces = append(pl.pieces, &Piece{
			kind:  k,
			side:  s,
			pos:   position.NewPos(column, row),
			board: b,
		})
	}
	place(KindKing, 5, st.backRank)
	place(KindQueen, 4, st.backRank)
	for _, c := range []int8{3, 6} {
		place(KindBishop, c, st.backRank)
	}
	for _, c := range []int8{2, 7} {
		place(KindKnight, c, st.backRank)
	}
	for _, c := range []int8{1, 8} {
		place(KindRook, c, st.backRank)
	}
	for c := int8(1); c <= 8; c++ {
		place(KindPawn, c, st.pawnRank)
	}
	return pl
}

func (pl *Player) Side() Side {
	return pl.side
}

func (pl *Player) Pieces() []*Piece {
	return pl.pieces
}

func (pl *Player) add(p *Piece) {
	pl.pieces = append(pl.pieces, p)
}

func (pl *Player) remove(p *Piece) {
	for i, q := range pl.pieces {
		if q == p {
			pl.pieces = append(pl.pieces[:i], pl.pieces[i+1:]...)
			return
		}
	}
}
