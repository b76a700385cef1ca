package rules

import (
	"github.com/siegechess/siegechess/internal/game/core"
)

// Offset tables. Table order is load-bearing: the selector takes the
// first qualifying candidate, so enumeration order is part of the
// observable decision policy.
var (
	cardinalDirs = []core.Offset{
		{DRow: -1, DCol: 0}, {DRow: 0, DCol: -1}, {DRow: 0, DCol: 1}, {DRow: 1, DCol: 0},
	}
	allDirs = []core.Offset{
		{DRow: -1, DCol: -1}, {DRow: -1, DCol: 0}, {DRow: -1, DCol: 1},
		{DRow: 0, DCol: -1}, {DRow: 0, DCol: 1},
		{DRow: 1, DCol: -1}, {DRow: 1, DCol: 0}, {DRow: 1, DCol: 1},
	}
	knightOffsets = []core.Offset{
		{DRow: -2, DCol: -1}, {DRow: -2, DCol: 1},
		{DRow: -1, DCol: -2}, {DRow: -1, DCol: 2},
		{DRow: 1, DCol: -2}, {DRow: 1, DCol: 2},
		{DRow: 2, DCol: -1}, {DRow: 2, DCol: 1},
	}
	catapultOffsets = []core.Offset{
		{DRow: -1, DCol: 0}, {DRow: 0, DCol: -1}, {DRow: 0, DCol: 1}, {DRow: 1, DCol: 0},
		{DRow: -2, DCol: 0}, {DRow: 0, DCol: -2}, {DRow: 0, DCol: 2}, {DRow: 2, DCol: 0},
		{DRow: -3, DCol: 0}, {DRow: 0, DCol: -3}, {DRow: 0, DCol: 3}, {DRow: 3, DCol: 0},
		{DRow: -2, DCol: -2}, {DRow: -2, DCol: 2}, {DRow: 2, DCol: -2}, {DRow: 2, DCol: 2},
	}
)

func zombieOffsets(side core.Side) []core.Offset {
	f := side.Forward()
	return []core.Offset{
		{DRow: f, DCol: 0}, {DRow: f, DCol: -1}, {DRow: f, DCol: 1},
		{DRow: 2 * f, DCol: 0}, {DRow: 2 * f, DCol: -2}, {DRow: 2 * f, DCol: 2},
	}
}

// CandidateMoves enumerates the squares the occupant at from could move
// to, before any check-safety filtering by the caller. The single
// exception is the General, whose candidates are already filtered
// through the oracle: a General move that leaves itself in danger is
// not a candidate at all.
func CandidateMoves(b *core.Board, from core.Position) []core.Position {
	occ := b.At(from)
	switch occ.Kind {
	case core.KindZombie:
		return offsetCandidates(b, from, zombieOffsets(occ.Side))
	case core.KindBuilder:
		return offsetCandidates(b, from, allDirs)
	case core.KindMiner:
		return rayCandidates(b, from, cardinalDirs)
	case core.KindJester:
		return offsetCandidates(b, from, allDirs)
	case core.KindSentinel:
		return offsetCandidates(b, from, knightOffsets)
	case core.KindCatapult:
		return offsetCandidates(b, from, catapultOffsets)
	case core.KindDragon:
		return rayCandidates(b, from, allDirs)
	case core.KindGeneral:
		return generalCandidates(b, from, occ.Side)
	default:
		return nil
	}
}

// offsetCandidates filters a fixed offset table through IsLegal.
func offsetCandidates(b *core.Board, from core.Position, offsets []core.Offset) []core.Position {
	var out []core.Position
	for _, o := range offsets {
		to := from.Shift(o)
		if b.InBounds(to) && IsLegal(b, from, to) {
			out = append(out, to)
		}
	}
	return out
}

// rayCandidates walks each direction outward until the ray is blocked,
// keeping every legal destination. A non-empty square ends its ray
// whether or not it was a legal destination.
func rayCandidates(b *core.Board, from core.Position, dirs []core.Offset) []core.Position {
	var out []core.Position
	for _, d := range dirs {
		for to := from.Shift(d); b.InBounds(to); to = to.Shift(d) {
			if IsLegal(b, from, to) {
				out = append(out, to)
			}
			if !b.At(to).IsEmpty() {
				break
			}
		}
	}
	return out
}

func generalCandidates(b *core.Board, from core.Position, side core.Side) []core.Position {
	var out []core.Position
	for _, o := range allDirs {
		to := from.Shift(o)
		if !b.InBounds(to) || !IsLegal(b, from, to) {
			continue
		}
		if DangerAfterMove(b, from, to, side) {
			continue
		}
		out = append(out, to)
	}
	return out
}

// WallSites returns the empty squares adjacent to a builder, in offset
// table order. These are wall-construction sites, not moves.
func WallSites(b *core.Board, builder core.Position) []core.Position {
	var out []core.Position
	for _, o := range allDirs {
		to := builder.Shift(o)
		if b.InBounds(to) && b.At(to).IsEmpty() {
			out = append(out, to)
		}
	}
	return out
}
