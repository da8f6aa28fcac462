package position

import (
	"errors"
)

const (
	// MaxComponentScalar is the maximum column/row scalar the position system supports.
	MaxComponentScalar int8 = 8
)

var (
	// ErrInvalidNotation represents an invalid notation error.
	ErrInvalidNotation = errors.New("invalid notation")
)

// Pos is a square on the grid, both components in [1, MaxComponentScalar].
// Values outside that range are representable; IsValid gates them.
type Pos struct {
	Column, Row int8
}

func NewPos(column, row int8) Pos {
	return Pos{Column: column, Row: row}
}

func NewPosFromNotation(n string) (Pos, error) {
	if len(n) != 2 {
		return Pos{}, ErrInvalidNotation
	}
	p := Pos{
		Column: int8(n[0]-'a') + 1,
		Row:    int8(n[1]-'1') + 1,
	}
	if !p.IsValid() {
		return Pos{}, ErrInvalidNotation
	}
	return p, nil
}

func (p Pos) IsValid() bool {
	return 1 <= p.Column && p.Column <= MaxComponentScalar &&
		1 <= p.Row && p.Row <= MaxComponentScalar
}

func (p Pos) Add(d Direction) Pos {
	return Pos{Column: p.Column + d.Column, Row: p.Row + d.Row}
}

func (p Pos) Sub(o Pos) Direction {
	return Direction{Column: p.Column - o.Column, Row: p.Row - o.Row}
}

func (p Pos) String() string {
	return p.Notation()
}

func (p Pos) Notation() string {
	if !p.IsValid() {
		return ""
	}
	return string(rune('a'-1+p.Column)) + string(rune('0'+p.Row))
}

func (p Pos) NotationComponentColumn() string {
	if p.Column < 1 || MaxComponentScalar < p.Column {
		return ""
	}
	return string(rune('a' - 1 + p.Column))
}

func (p Pos) NotationComponentRow() string {
	if p.Row < 1 || MaxComponentScalar < p.Row {
		return ""
	}
	return string(rune('0' + p.Row))
}

// Direction is a relative position diff, e.g. +2 columns, -1 row.
// Unlike Pos it is unbounded.
type Direction struct {
	Column, Row int8
}

func NewDirection(column, row int8) Direction {
	return Direction{Column: column, Row: row}
}

// Mirrors returns the four sign reflections of d. Components equal to zero
// produce duplicate entries; callers wanting set semantics must deduplicate.
func (d Direction) Mirrors() [4]Direction {
	return [4]Direction{
		{Column: d.Column, Row: d.Row},
		{Column: d.Column, Row: -d.Row},
		{Column: -d.Column, Row: d.Row},
		{Column: -d.Column, Row: -d.Row},
	}
}

// Switched swaps the column and row deltas, completing symmetric move sets.
func (d Direction) Switched() Direction {
	return Direction{Column: d.Row, Row: d.Column}
}

// Normalized reduces each component to its sign, for stepping one square at
// a time along a ray.
func (d Direction) Normalized() Direction {
	return Direction{Column: sign(d.Column), Row: sign(d.Row)}
}

func sign(c int8) int8 {
	switch {
	case c > 0:
		return 1
	case c < 0:
		return -1
	default:
		return 0
	}
}
