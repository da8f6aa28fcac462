package board

type Side uint8

const (
	SideUnknown Side = iota
	SideWhite
	SideBlack
)

func (s Side) String() string {
	switch s {
	case SideWhite:
		return "White"
	case SideBlack:
		return "Black"
	default:
		return ""
	}
}

func (s Side) Opposite() Side {
	switch s {
	case SideWhite:
		return SideBlack
	case SideBlack:
		return SideWhite
	default:
		return SideUnknown
	}
}

// setup carries the per-color construction parameters for the initial
// piece layout.
type setup struct {
	backRank int8
	pawnRank int8
	heading  int8 // pawn advance direction along rows
}

var sideSetup = map[Side]setup{
	SideWhite: {backRank: 1, pawnRank: 2, heading: 1},
	SideBlack: {backRank: 8, pawnRank: 7, heading: -1},
}

func (s Side) setup() setup {
	return sideSetup[s]
}

// lastRank is the rank on which this side's pawns promote.
func (s Side) lastRank() int8 {
	return s.Opposite().setup().backRank
}
