package core

import "strings"

// Board is an R×C grid of occupants, row-major. Dimensions are fixed at
// construction and never change. Accessors are bounds-unchecked by
// contract: passing an out-of-range position is a programming error.
type Board struct {
	Rows, Cols int
	cells      []Occupant // length = Rows*Cols
}

// NewBoard creates an empty board with the given dimensions.
func NewBoard(rows, cols int) *Board {
	return &Board{Rows: rows, Cols: cols, cells: make([]Occupant, rows*cols)}
}

func (b *Board) idx(p Position) int { return p.Row*b.Cols + p.Col }

// At returns the occupant of the given square.
func (b *Board) At(p Position) Occupant { return b.cells[b.idx(p)] }

// Set overwrites the occupant of the given square.
func (b *Board) Set(p Position, o Occupant) { b.cells[b.idx(p)] = o }

// InBounds checks if a position is within the board.
func (b *Board) InBounds(p Position) bool { return p.IsValid(b.Rows, b.Cols) }

// Clone returns a deep copy with independent storage. Mutating the
// clone never affects the original; every hypothetical-move check runs
// on a clone rather than on the live board.
func (b *Board) Clone() *Board {
	cells := make([]Occupant, len(b.cells))
	copy(cells, b.cells)
	return &Board{Rows: b.Rows, Cols: b.Cols, cells: cells}
}

// Find locates the first occupant of the given kind and side in
// row-major order.
func (b *Board) Find(kind Kind, side Side) (Position, bool) {
	for i, o := range b.cells {
		if o.Kind == kind && o.Side == side {
			return Position{Row: i / b.Cols, Col: i % b.Cols}, true
		}
	}
	return Position{}, false
}

// Apply executes the move's effect for the occupant at m.From and
// returns the effect classification.
//
// For every kind except the Jester a capture overwrites the destination
// and clears the source. The Jester swaps with a friendly destination
// and converts an enemy non-General destination in place. Wall squares
// are only ever entered by the Miner, which clears them.
func (b *Board) Apply(m Move) Effect {
	mover := b.At(m.From)
	if !mover.IsPiece() {
		return EffectNone
	}
	target := b.At(m.To)

	if mover.Kind == KindJester {
		switch {
		case target.IsFriendOf(mover.Side):
			b.Set(m.To, mover)
			b.Set(m.From, target)
			return EffectSwap
		case target.IsEnemyOf(mover.Side) && target.Kind != KindGeneral:
			b.Set(m.To, Occupant{Kind: target.Kind, Side: mover.Side})
			return EffectConversion
		case target.IsEmpty():
			b.Set(m.To, mover)
			b.Set(m.From, Empty)
			return EffectRelocation
		default:
			return EffectNone
		}
	}

	effect := EffectRelocation
	switch {
	case target.IsEnemyOf(mover.Side):
		effect = EffectCapture
	case target.IsWall():
		effect = EffectWallCleared
	}
	b.Set(m.To, mover)
	b.Set(m.From, Empty)
	return effect
}

// BuildWall places a wall on a square. Callers must only pass squares
// that are currently empty.
func (b *Board) BuildWall(p Position) {
	b.Set(p, Wall)
}

// String renders the grid in the board file alphabet, one row per line.
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			sb.WriteByte(b.At(Position{Row: r, Col: c}).Symbol())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
