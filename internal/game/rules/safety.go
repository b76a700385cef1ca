package rules

import (
	"github.com/siegechess/siegechess/internal/game/core"
)

// InDanger reports whether any enemy piece has a legal move onto pos
// under its own kind's geometric rule. Walls never threaten but do
// block paths.
func InDanger(b *core.Board, side core.Side, pos core.Position) bool {
	_, ok := IdentifyThreat(b, side, pos)
	return ok
}

// IdentifyThreat returns the first enemy position with a legal move
// onto pos, scanning the piece-kind list and then board squares in
// row-major order. First match wins: callers act on "a" threat, not
// the most dangerous one, so the scan order is a deliberate policy.
func IdentifyThreat(b *core.Board, side core.Side, pos core.Position) (core.Position, bool) {
	enemy := side.Opponent()
	for _, kind := range core.PieceKinds {
		for r := 0; r < b.Rows; r++ {
			for c := 0; c < b.Cols; c++ {
				from := core.NewPosition(r, c)
				occ := b.At(from)
				if occ.Kind != kind || occ.Side != enemy {
					continue
				}
				if IsLegal(b, from, pos) {
					return from, true
				}
			}
		}
	}
	return core.Position{}, false
}

// DangerAfterMove simulates the move on a clone of the board and
// reports whether side's General is in danger afterwards. The
// simulation is one-ply: threatening pieces are not themselves checked
// for danger.
func DangerAfterMove(b *core.Board, from, to core.Position, side core.Side) bool {
	sim := b.Clone()
	sim.Apply(core.Move{From: from, To: to})
	general, ok := sim.Find(core.KindGeneral, side)
	if !ok {
		return false
	}
	return InDanger(sim, side, general)
}

// WouldProtect reports whether pos falls in the General's protection
// range: the four cardinally adjacent squares.
func WouldProtect(pos, general core.Position) bool {
	return pos.IsCardinalAdjacent(general)
}

// ProtectedAfterWall reports whether a wall at wallPos would leave the
// General out of danger. The wall is placed on a clone; the caller's
// board is never touched.
func ProtectedAfterWall(b *core.Board, wallPos, general core.Position, side core.Side) bool {
	sim := b.Clone()
	sim.BuildWall(wallPos)
	return !InDanger(sim, side, general)
}
