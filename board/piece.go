package board

import (
	"fmt"

	"github.com/ogre-chess/ogre/position"
)

// quadrantDirs holds one representative direction set per kind; the full
// direction set is the union of each entry's mirrors and its switched
// mirrors. Pawns do not participate, their moves are asymmetric.
var quadrantDirs = map[Kind][]position.Direction{
	KindKing: {
		position.NewDirection(0, 1),
		position.NewDirection(1, 1),
	},
	KindKnight: {
		position.NewDirection(2, 1),
	},
	KindRook:   slidingQuadrant(0),
	KindBishop: slidingQuadrant(1),
	KindQueen:  append(slidingQuadrant(0), slidingQuadrant(1)...),
}

func slidingQuadrant(columnStep int8) []position.Direction {
	var dirs []position.Direction
	for i := int8(1); i < position.MaxComponentScalar; i++ {
		dirs = append(dirs, position.NewDirection(columnStep*i, i))
	}
	return dirs
}

var kindDirs = expandQuadrants()

func expandQuadrants() map[Kind][]position.Direction {
	all := make(map[Kind][]position.Direction, len(quadrantDirs))
	for k, quadrant := range quadrantDirs {
		seen := make(map[position.Direction]struct{})
		var dirs []position.Direction
		add := func(ms [4]position.Direction) {
			for _, d := range ms {
				if _, ok := seen[d]; ok {
					continue
				}
				seen[d] = struct{}{}
				dirs = append(dirs, d)
			}
		}
		for _, d := range quadrant {
			add(d.Mirrors())
			add(d.Switched().Mirrors())
		}
		all[k] = dirs
	}
	return all
}

// Piece is a live piece on a Board. Its position mutates in place as moves
// are made and undone; capture and promotion remove it from its player's
// active set without destroying it.
type Piece struct {
	kind  Kind
	side  Side
	pos   position.Pos
	board *Board
}

func (p *Piece) Kind() Kind {
	return p.kind
}

func (p *Piece) Side() Side {
	return p.side
}

func (p *Piece) Pos() position.Pos {
	return p.pos
}

func (p *Piece) String() string {
	return fmt.Sprintf("%s %s on %s", p.side, p.kind, p.pos)
}

// PossibleMoves enumerates the pseudo-legal moves for the piece: occupancy
// and path rules only, no check or pin detection.
func (p *Piece) PossibleMoves() []*Move {
	if p.kind == KindPawn {
		return p.pawnMoves()
	}
	var mvs []*Move
	for _, d := range kindDirs[p.kind] {
		to := p.pos.Add(d)
		if p.checkMoveTo(to) {
			mvs = append(mvs, newMove(p, to))
		}
	}
	return mvs
}

func (p *Piece) checkMoveTo(to position.Pos) bool {
	if !to.IsValid() {
		return false
	}
	if occ := p.board.PieceAt(to); occ != nil && occ.side == p.side {
		return false
	}
	if p.kind.Slides() && !p.straightLineTo(to) {
		return false
	}
	return true
}

// straightLineTo walks one square at a time towards to, failing on any
// occupied intermediate square. Running off-board counts as unobstructed;
// that only happens for destinations not on a ray from the piece.
func (p *Piece) straightLineTo(to position.Pos) bool {
	d := to.Sub(p.pos).Normalized()
	for pos := p.pos.Add(d); pos != to && pos.IsValid(); pos = pos.Add(d) {
		if p.board.PieceAt(pos) != nil {
			return false
		}
	}
	return true
}

func (p *Piece) pawnMoves() []*Move {
	var mvs []*Move
	st := p.side.setup()
	forward := position.NewDirection(0, st.heading)

	// forward, never a capture
	one := p.pos.Add(forward)
	if one.IsValid() && p.board.PieceAt(one) == nil {
		mvs = append(mvs, newMove(p, one))

		// double step, only from the original square while unobstructed
		if p.pos.Row == st.pawnRank {
			two := one.Add(forward)
			if two.IsValid() && p.board.PieceAt(two) == nil {
				mvs = append(mvs, newMove(p, two))
			}
		}
	}

	// diagonals, capture only
	for _, dc := range [2]int8{-1, 1} {
		to := p.pos.Add(position.NewDirection(dc, st.heading))
		if !to.IsValid() {
			continue
		}
		if occ := p.board.PieceAt(to); occ != nil && occ.side != p.side {
			mvs = append(mvs, newMove(p, to))
		}
	}
	return mvs
}
