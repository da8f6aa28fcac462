package board

import (
	"errors"
	"sort"
	"testing"

	"github.com/ogre-chess/ogre/position"
)

func mustBoard(t *testing.T, opts ...BoardOption) *Board {
	t.Helper()
	b, err := NewBoard(opts...)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return b
}

func mustMakeMoves(t *testing.T, b *Board, notations ...string) {
	t.Helper()
	for _, n := range notations {
		if err := b.MakeMoveNotation(n); err != nil {
			t.Fatalf("unexpected error on %q: %v", n, err)
		}
	}
}

func destinations(t *testing.T, b *Board, from string) []string {
	t.Helper()
	pos, err := position.NewPosFromNotation(from)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p := b.PieceAt(pos)
	if p == nil {
		t.Fatalf("no piece on %s", from)
	}
	var ds []string
	for _, mv := range p.PossibleMoves() {
		ds = append(ds, mv.To.Notation())
	}
	sort.Strings(ds)
	return ds
}

func snapshot(b *Board) map[string]string {
	m := make(map[string]string)
	for _, pl := range b.players {
		for _, p := range pl.pieces {
			m[p.pos.Notation()] = p.side.String() + " " + p.kind.String()
		}
	}
	return m
}

func equalSnapshots(a, b map[string]string) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if b[k] != v {
			return false
		}
	}
	return true
}

func TestFreshBoardLayout(t *testing.T) {
	t.Parallel()
	b := mustBoard(t)
	if got := len(b.Player(SideWhite).Pieces()); got != 16 {
		t.Errorf("unexpected white piece count: got=%d want=16", got)
	}
	if got := len(b.Player(SideBlack).Pieces()); got != 16 {
		t.Errorf("unexpected black piece count: got=%d want=16", got)
	}
	if got := b.Turn(); got != SideWhite {
		t.Errorf("unexpected turn: got=%s want=%s", got, SideWhite)
	}
	tests := []struct {
		square string
		kind   Kind
		side   Side
	}{
		{square: "e1", kind: KindKing, side: SideWhite},
		{square: "d1", kind: KindQueen, side: SideWhite},
		{square: "a8", kind: KindRook, side: SideBlack},
		{square: "g8", kind: KindKnight, side: SideBlack},
		{square: "c2", kind: KindPawn, side: SideWhite},
		{square: "f7", kind: KindPawn, side: SideBlack},
	}
	for _, tt := range tests {
		pos, _ := position.NewPosFromNotation(tt.square)
		p := b.PieceAt(pos)
		if p == nil {
			t.Fatalf("no piece on %s", tt.square)
		}
		if p.Kind() != tt.kind || p.Side() != tt.side {
			t.Errorf("unexpected piece on %s: got=%s %s want=%s %s",
				tt.square, p.Side(), p.Kind(), tt.side, tt.kind)
		}
	}
}

func TestQueenMobility(t *testing.T) {
	t.Parallel()
	b := mustBoard(t)
	if got := destinations(t, b, "d1"); len(got) != 0 {
		t.Errorf("unexpected destinations: got=%v want=[]", got)
	}

	mustMakeMoves(t, b, "e2e3")
	want := []string{"e2", "f3", "g4", "h5"}
	if got := destinations(t, b, "d1"); !equalStrings(got, want) {
		t.Errorf("unexpected destinations: got=%v want=%v", got, want)
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestKnightMobility(t *testing.T) {
	t.Parallel()
	b := mustBoard(t)
	want := []string{"a3", "c3"}
	if got := destinations(t, b, "b1"); !equalStrings(got, want) {
		t.Errorf("unexpected destinations: got=%v want=%v", got, want)
	}
}

func TestPawnMobility(t *testing.T) {
	t.Parallel()
	b := mustBoard(t)
	want := []string{"e3", "e4"}
	if got := destinations(t, b, "e2"); !equalStrings(got, want) {
		t.Errorf("unexpected destinations: got=%v want=%v", got, want)
	}

	// after advancing, the double step is gone
	mustMakeMoves(t, b, "e2e3")
	want = []string{"e4"}
	if got := destinations(t, b, "e3"); !equalStrings(got, want) {
		t.Errorf("unexpected destinations: got=%v want=%v", got, want)
	}
}

func TestPawnCaptures(t *testing.T) {
	t.Parallel()
	b := mustBoard(t)
	mustMakeMoves(t, b, "e2e4", "d7d5")
	// forward e5 plus the d5 capture
	want := []string{"d5", "e5"}
	if got := destinations(t, b, "e4"); !equalStrings(got, want) {
		t.Errorf("unexpected destinations: got=%v want=%v", got, want)
	}
	// pawns cannot capture straight ahead
	mustMakeMoves(t, b, "e4e5", "e7e6")
	if got := destinations(t, b, "e5"); len(got) != 0 {
		t.Errorf("unexpected destinations: got=%v want=[]", got)
	}
}

func TestHistoryAndCaptures(t *testing.T) {
	t.Parallel()
	b := mustBoard(t)
	mustMakeMoves(t, b, "d2d4", "e7e5", "d4e5")

	want := []string{"d2d4", "e7e5", "d4e5"}
	history := b.History()
	if len(history) != len(want) {
		t.Fatalf("unexpected history length: got=%d want=%d", len(history), len(want))
	}
	for i, n := range want {
		if got := history[i].Notation(); got != n {
			t.Errorf("unexpected history[%d]: got=%s want=%s", i, got, n)
		}
	}
	if history[1].Captured != nil {
		t.Errorf("unexpected capture: got=%v want=nil", history[1].Captured)
	}
	captured := history[2].Captured
	if captured == nil {
		t.Fatal("expected capture: got=nil")
	}
	if captured.Kind() != KindPawn || captured.Side() != SideBlack {
		t.Errorf("unexpected captured piece: got=%s %s want=Black Pawn", captured.Side(), captured.Kind())
	}
	if got := len(b.Player(SideBlack).Pieces()); got != 15 {
		t.Errorf("unexpected black piece count: got=%d want=15", got)
	}
}

func TestTurnAlternates(t *testing.T) {
	t.Parallel()
	b := mustBoard(t)
	if got := b.Turn(); got != SideWhite {
		t.Errorf("unexpected turn: got=%s want=%s", got, SideWhite)
	}
	mustMakeMoves(t, b, "e2e4")
	if got := b.Turn(); got != SideBlack {
		t.Errorf("unexpected turn: got=%s want=%s", got, SideBlack)
	}
	b.UndoMove()
	if got := b.Turn(); got != SideWhite {
		t.Errorf("unexpected turn: got=%s want=%s", got, SideWhite)
	}
}

func TestMakeUndoRoundTrip(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		fen   string
		setup []string
		move  string
	}{
		{
			name: "quiet move",
			move: "g1f3",
		},
		{
			name:  "capture",
			setup: []string{"e2e4", "d7d5"},
			move:  "e4d5",
		},
		{
			name: "promotion",
			fen:  "4k3/P7/8/8/8/8/8/4K3 w - - 0 1",
			move: "a7a8",
		},
		{
			name: "capturing promotion",
			fen:  "1q2k3/P7/8/8/8/8/8/4K3 w - - 0 1",
			move: "a7b8q",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var opts []BoardOption
			if tt.fen != "" {
				opts = append(opts, WithFEN(tt.fen))
			}
			b := mustBoard(t, opts...)
			mustMakeMoves(t, b, tt.setup...)

			before := snapshot(b)
			mustMakeMoves(t, b, tt.move)
			if equalSnapshots(before, snapshot(b)) {
				t.Fatal("move had no effect")
			}
			b.UndoMove()
			if got := snapshot(b); !equalSnapshots(before, got) {
				t.Errorf("unexpected state after undo: got=%v want=%v", got, before)
			}
		})
	}
}

func TestPromotionSwapsQueen(t *testing.T) {
	t.Parallel()
	b := mustBoard(t, WithFEN("4k3/P7/8/8/8/8/8/4K3 w - - 0 1"))

	// no promotion letter needed, the last rank forces it
	mustMakeMoves(t, b, "a7a8")
	mv := b.History()[0]
	if mv.Promote == nil {
		t.Fatal("expected promotion record: got=nil")
	}
	if got := mv.Notation(); got != "a7a8q" {
		t.Errorf("unexpected notation: got=%s want=a7a8q", got)
	}
	pos, _ := position.NewPosFromNotation("a8")
	p := b.PieceAt(pos)
	if p == nil || p.Kind() != KindQueen || p.Side() != SideWhite {
		t.Fatalf("unexpected piece on a8: got=%v want=White Queen", p)
	}
}

func TestUndoEmptyHistoryPanics(t *testing.T) {
	t.Parallel()
	b := mustBoard(t)
	defer func() {
		if recover() == nil {
			t.Error("expected panic: got=nil")
		}
	}()
	b.UndoMove()
}

func TestSyncMovesResetOnDivergence(t *testing.T) {
	t.Parallel()
	b := mustBoard(t)
	mustMakeMoves(t, b, "d2d4")

	if err := b.SyncMoves([]string{"e2e4"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	d4, _ := position.NewPosFromNotation("d4")
	if p := b.PieceAt(d4); p != nil {
		t.Errorf("unexpected piece on d4: got=%v want=nil", p)
	}
	e4, _ := position.NewPosFromNotation("e4")
	p := b.PieceAt(e4)
	if p == nil || p.Kind() != KindPawn || p.Side() != SideWhite {
		t.Fatalf("unexpected piece on e4: got=%v want=White Pawn", p)
	}
	if got := b.Ply(); got != 1 {
		t.Errorf("unexpected ply: got=%d want=1", got)
	}
}

func TestSyncMovesAppliesSuffix(t *testing.T) {
	t.Parallel()
	b := mustBoard(t)
	if err := b.SyncMoves([]string{"d2d4"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	existing := b.PieceAt(position.NewPos(4, 4))
	if existing == nil {
		t.Fatal("no piece on d4")
	}

	if err := b.SyncMoves([]string{"d2d4", "e7e5"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := b.Ply(); got != 2 {
		t.Errorf("unexpected ply: got=%d want=2", got)
	}
	// suffix application must not have rebuilt the board
	if got := b.PieceAt(position.NewPos(4, 4)); got != existing {
		t.Error("unexpected board rebuild on suffix sync")
	}
}

func TestSyncMovesEqualLengthResets(t *testing.T) {
	t.Parallel()
	b := mustBoard(t)
	mustMakeMoves(t, b, "d2d4")
	existing := b.PieceAt(position.NewPos(4, 4))

	if err := b.SyncMoves([]string{"d2d4"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := b.Ply(); got != 1 {
		t.Errorf("unexpected ply: got=%d want=1", got)
	}
	if got := b.PieceAt(position.NewPos(4, 4)); got == existing {
		t.Error("expected full replay for a list no longer than the history")
	}
}

func TestSyncMovesBadNotation(t *testing.T) {
	t.Parallel()
	b := mustBoard(t)
	if err := b.SyncMoves([]string{"e2e4", "zz9"}); !errors.Is(err, ErrInvalidMove) {
		t.Errorf("unexpected error: got=%v want=%v", err, ErrInvalidMove)
	}
}

func TestMoveEqual(t *testing.T) {
	t.Parallel()
	b1 := mustBoard(t)
	b2 := mustBoard(t)
	mv1, err := NewMoveFromNotation(b1, "e2e4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mv2, err := NewMoveFromNotation(b2, "e2e4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// same squares, different point-in-time pieces
	if !mv1.Equal(mv2) {
		t.Error("unexpected inequality")
	}
}

func TestNewMoveFromNotationErrors(t *testing.T) {
	t.Parallel()
	b := mustBoard(t)
	tests := []struct {
		name     string
		notation string
	}{
		{name: "empty", notation: ""},
		{name: "short", notation: "e2e"},
		{name: "long", notation: "e2e4e6"},
		{name: "off board", notation: "i2i4"},
		{name: "no piece on origin", notation: "e4e5"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := NewMoveFromNotation(b, tt.notation); !errors.Is(err, ErrInvalidMove) {
				t.Errorf("unexpected error: got=%v want=%v", err, ErrInvalidMove)
			}
		})
	}
}

func TestSlidingBlocked(t *testing.T) {
	t.Parallel()
	b := mustBoard(t)
	// rooks and bishops are boxed in on a fresh board
	for _, sq := range []string{"a1", "c1", "f8", "h8"} {
		if got := destinations(t, b, sq); len(got) != 0 {
			t.Errorf("unexpected destinations from %s: got=%v want=[]", sq, got)
		}
	}
}

func TestKingMobility(t *testing.T) {
	t.Parallel()
	b := mustBoard(t, WithFEN("8/8/8/8/3K4/8/8/8 w - - 0 1"))
	want := []string{"c3", "c4", "c5", "d3", "d5", "e3", "e4", "e5"}
	if got := destinations(t, b, "d4"); !equalStrings(got, want) {
		t.Errorf("unexpected destinations: got=%v want=%v", got, want)
	}
}
