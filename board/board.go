package board

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/ogre-chess/ogre/position"
)

const (
	Width      = position.MaxComponentScalar
	Height     = position.MaxComponentScalar
	TotalCells = int(Width) * int(Height)
)

type boardConfig struct {
	fen string
}

type BoardOption func(*boardConfig)

func WithFEN(fen string) BoardOption {
	return func(cfg *boardConfig) {
		cfg.fen = fen
	}
}

// Board owns both players' pieces and the executed move history. The side
// to move is a pure function of the history length; speculative evaluation
// rides the same MakeMove/UndoMove stack the game moves use, so there is no
// shadow board to keep in sync.
type Board struct {
	players map[Side]*Player
	history []*Move

	// baseTurn is the side to move at history length zero. White except
	// for positions loaded from FEN with Black to move.
	baseTurn Side
}

func NewBoard(opts ...BoardOption) (*Board, error) {
	cfg := &boardConfig{}
	for _, f := range opts {
		f(cfg)
	}

	b := &Board{baseTurn: SideWhite}
	if cfg.fen == "" {
		b.players = map[Side]*Player{
			SideWhite: newPlayer(b, SideWhite),
			SideBlack: newPlayer(b, SideBlack),
		}
		return b, nil
	}

	placements, turn, err := parseFEN(cfg.fen)
	if err != nil {
		return nil, err
	}
	b.baseTurn = turn
	b.players = map[Side]*Player{
		SideWhite: {side: SideWhite},
		SideBlack: {side: SideBlack},
	}
	for _, pc := range placements {
		b.players[pc.side].add(&Piece{
			kind:  pc.kind,
			side:  pc.side,
			pos:   pc.pos,
			board: b,
		})
	}
	return b, nil
}

// reset rebuilds the standard initial layout and clears the history.
func (b *Board) reset() {
	b.players = map[Side]*Player{
		SideWhite: newPlayer(b, SideWhite),
		SideBlack: newPlayer(b, SideBlack),
	}
	b.history = nil
	b.baseTurn = SideWhite
}

// Turn returns the side to move, inferred from the history parity.
func (b *Board) Turn() Side {
	if len(b.history)%2 == 0 {
		return b.baseTurn
	}
	return b.baseTurn.Opposite()
}

func (b *Board) Player(s Side) *Player {
	return b.players[s]
}

func (b *Board) ActivePlayer() *Player {
	return b.players[b.Turn()]
}

func (b *Board) History() []*Move {
	return b.history
}

func (b *Board) Ply() int {
	return len(b.history)
}

// PieceAt returns the piece occupying pos, or nil. At most one piece ever
// occupies a valid position.
func (b *Board) PieceAt(pos position.Pos) *Piece {
	for _, pl := range b.players {
		for _, p := range pl.pieces {
			if p.pos == pos {
				return p
			}
		}
	}
	return nil
}

// MakeMove executes mv: the captured piece, if any, leaves its player's
// active set, the mover relocates, a promotion swaps the pawn for its
// queen, and the move is appended to the history.
func (b *Board) MakeMove(mv *Move) {
	if mv.Captured != nil {
		b.players[mv.Captured.side].remove(mv.Captured)
	}
	mv.Piece.pos = mv.To
	if mv.Promote != nil {
		b.players[mv.Promote.From.side].remove(mv.Promote.From)
		mv.Promote.To.pos = mv.To
		b.players[mv.Promote.To.side].add(mv.Promote.To)
	}
	b.history = append(b.history, mv)
}

// MakeMoveNotation resolves a long-algebraic string against the current
// state and executes it.
func (b *Board) MakeMoveNotation(n string) error {
	mv, err := NewMoveFromNotation(b, n)
	if err != nil {
		return err
	}
	b.MakeMove(mv)
	return nil
}

// UndoMove rewinds the last executed move. Calling it with an empty history
// is a precondition violation.
func (b *Board) UndoMove() {
	if len(b.history) == 0 {
		panic("board: undo with empty history")
	}
	mv := b.history[len(b.history)-1]
	b.history = b.history[:len(b.history)-1]

	if mv.Promote != nil {
		b.players[mv.Promote.To.side].remove(mv.Promote.To)
		b.players[mv.Promote.From.side].add(mv.Promote.From)
	}
	mv.Piece.pos = mv.From
	if mv.Captured != nil {
		// still holds its last position, mv.To
		b.players[mv.Captured.side].add(mv.Captured)
	}
}

// SyncMoves reconciles the board against an authoritative external move
// list in long-algebraic notation. Any divergence, or an external list no
// longer than the local history, resets the board and replays the entire
// list; otherwise only the new suffix is applied. Board state is thereby a
// deterministic function of the longest externally-agreed move list.
func (b *Board) SyncMoves(moves []string) error {
	diverged := len(moves) <= len(b.history)
	if !diverged {
		for i, mv := range b.history {
			if !mv.MatchesNotation(moves[i]) {
				diverged = true
				break
			}
		}
	}
	if diverged {
		b.reset()
		return b.applyAll(moves)
	}
	return b.applyAll(moves[len(b.history):])
}

func (b *Board) applyAll(moves []string) error {
	for _, n := range moves {
		if err := b.MakeMoveNotation(n); err != nil {
			return fmt.Errorf("sync move %d: %w", len(b.history)+1, err)
		}
	}
	return nil
}

func (b *Board) Dump() string {
	builder := strings.Builder{}
	for row := Height; row >= 1; row-- {
		_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n")
		_, _ = builder.WriteString(fmt.Sprintf(" %d |", row))
		for column := int8(1); column <= Width; column++ {
			sym := " "
			if p := b.PieceAt(position.NewPos(column, row)); p != nil {
				sym = p.kind.SymbolFEN(p.side)
			}
			_, _ = builder.WriteString(fmt.Sprintf(" %s |", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n   ")
	for column := int8(1); column <= Width; column++ {
		_, _ = builder.WriteString(fmt.Sprintf("  %s ", position.NewPos(column, 1).NotationComponentColumn()))
	}
	return builder.String()
}

var (
	drawLabel     = color.New(color.Bold)
	drawDarkCell  = color.New(color.BgGreen, color.FgBlack)
	drawLightCell = color.New(color.BgHiWhite, color.FgBlack)
)

func (b *Board) Draw() string {
	builder := strings.Builder{}
	for row := Height; row >= 1; row-- {
		_, _ = builder.WriteString(drawLabel.Sprintf(" %d ", row))
		for column := int8(1); column <= Width; column++ {
			sym := " "
			if p := b.PieceAt(position.NewPos(column, row)); p != nil {
				sym = p.kind.SymbolUnicode(p.side)
			}
			cell := drawLightCell
			if column%2^row%2 == 0 {
				cell = drawDarkCell
			}
			_, _ = builder.WriteString(cell.Sprintf(" %s ", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   ")
	for column := int8(1); column <= Width; column++ {
		_, _ = builder.WriteString(drawLabel.Sprintf(" %s ", position.NewPos(column, 1).NotationComponentColumn()))
	}
	return builder.String()
}
