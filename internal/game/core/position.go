package core

import "fmt"

// Position represents a square on the board, 0-based, row-major.
type Position struct {
	Row, Col int
}

// NewPosition creates a position from row and column values.
func NewPosition(row, col int) Position {
	return Position{Row: row, Col: col}
}

// Offset is a relative displacement between two positions.
type Offset struct {
	DRow, DCol int
}

// Shift returns a new position displaced by the given offset.
func (p Position) Shift(o Offset) Position {
	return Position{Row: p.Row + o.DRow, Col: p.Col + o.DCol}
}

// IsValid checks if the position is within the given bounds.
func (p Position) IsValid(rows, cols int) bool {
	return p.Row >= 0 && p.Row < rows && p.Col >= 0 && p.Col < cols
}

// OffsetTo returns the displacement from this position to another.
func (p Position) OffsetTo(other Position) Offset {
	return Offset{DRow: other.Row - p.Row, DCol: other.Col - p.Col}
}

// IsCardinalAdjacent checks if this position is orthogonally adjacent to
// another. This is the "protection range" relation used when judging
// whether a square shields the General.
func (p Position) IsCardinalAdjacent(other Position) bool {
	dr := p.Row - other.Row
	dc := p.Col - other.Col
	return (dr == 0 && (dc == 1 || dc == -1)) || (dc == 0 && (dr == 1 || dr == -1))
}

// CardinalNeighbors returns the four orthogonal neighbors of this position.
func (p Position) CardinalNeighbors() []Position {
	return []Position{
		{Row: p.Row - 1, Col: p.Col},
		{Row: p.Row, Col: p.Col - 1},
		{Row: p.Row, Col: p.Col + 1},
		{Row: p.Row + 1, Col: p.Col},
	}
}

// Equal checks if two positions are equal.
func (p Position) Equal(other Position) bool {
	return p.Row == other.Row && p.Col == other.Col
}

// String returns a string representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}
