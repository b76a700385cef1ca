package core

import "fmt"

// Move is a displacement of the occupant at From to the square To.
// A move is classified by its effect at application time, not just by
// validity; see Board.Apply.
type Move struct {
	From Position
	To   Position
}

func (m Move) String() string {
	return fmt.Sprintf("%s->%s", m.From, m.To)
}

// Effect is the outcome of applying a move.
type Effect int8

const (
	// EffectNone means nothing was applied.
	EffectNone Effect = iota
	// EffectRelocation moved a piece onto an empty square.
	EffectRelocation
	// EffectCapture removed an enemy piece from the destination.
	EffectCapture
	// EffectConversion flipped an enemy piece to the mover's side
	// without the mover leaving its square (Jester only).
	EffectConversion
	// EffectSwap exchanged the mover with a friendly piece (Jester only).
	EffectSwap
	// EffectWallCleared moved a piece onto a wall square, removing the
	// wall (Miner only).
	EffectWallCleared
)

func (e Effect) String() string {
	switch e {
	case EffectRelocation:
		return "relocation"
	case EffectCapture:
		return "capture"
	case EffectConversion:
		return "conversion"
	case EffectSwap:
		return "swap"
	case EffectWallCleared:
		return "wall_cleared"
	default:
		return "none"
	}
}
