// Package rules implements the piece capability model and the
// check-safety oracle. The two share a package: the General's candidate
// generation consults the oracle, and the oracle tests enemy moves with
// the per-kind geometric rules.
package rules

import (
	"github.com/siegechess/siegechess/internal/game/core"
)

// IsLegal is the authoritative geometric and occupancy rule for the
// occupant at from moving to to. For the General this is geometry only;
// the safety filter is applied during candidate generation, which keeps
// threat scans one-ply and non-recursive.
func IsLegal(b *core.Board, from, to core.Position) bool {
	if !b.InBounds(from) || !b.InBounds(to) || from.Equal(to) {
		return false
	}
	mover := b.At(from)
	if !mover.IsPiece() {
		return false
	}
	switch mover.Kind {
	case core.KindZombie:
		return zombieLegal(b, from, to, mover.Side)
	case core.KindBuilder:
		return builderLegal(b, from, to, mover.Side)
	case core.KindMiner:
		return minerLegal(b, from, to, mover.Side)
	case core.KindJester:
		return jesterLegal(b, from, to, mover.Side)
	case core.KindSentinel:
		return sentinelLegal(b, from, to, mover.Side)
	case core.KindCatapult:
		return catapultLegal(b, from, to)
	case core.KindDragon:
		return dragonLegal(b, from, to, mover.Side)
	case core.KindGeneral:
		return generalLegal(b, from, to, mover.Side)
	default:
		return false
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// pathClear reports whether every square strictly between from and to
// is empty. from and to must be aligned on a straight or diagonal line.
func pathClear(b *core.Board, from, to core.Position) bool {
	step := core.Offset{DRow: sign(to.Row - from.Row), DCol: sign(to.Col - from.Col)}
	for p := from.Shift(step); !p.Equal(to); p = p.Shift(step) {
		if !b.At(p).IsEmpty() {
			return false
		}
	}
	return true
}

// Zombie: one forward step straight or diagonal onto empty or enemy,
// or a two-step forward leap (straight or diagonal) over an empty
// square onto an enemy. The leap is a forced capture.
func zombieLegal(b *core.Board, from, to core.Position, side core.Side) bool {
	f := side.Forward()
	o := from.OffsetTo(to)
	target := b.At(to)
	switch {
	case o.DRow == f && abs(o.DCol) <= 1:
		return target.IsEmpty() || target.IsEnemyOf(side)
	case o.DRow == 2*f && (o.DCol == 0 || abs(o.DCol) == 2):
		mid := core.NewPosition(from.Row+f, from.Col+o.DCol/2)
		return b.At(mid).IsEmpty() && target.IsEnemyOf(side)
	default:
		return false
	}
}

// Builder: one step in any of the 8 directions onto empty or enemy.
// Wall construction is not a move; see WallSites.
func builderLegal(b *core.Board, from, to core.Position, side core.Side) bool {
	o := from.OffsetTo(to)
	if abs(o.DRow) > 1 || abs(o.DCol) > 1 {
		return false
	}
	target := b.At(to)
	return target.IsEmpty() || target.IsEnemyOf(side)
}

// Miner: any straight line, blocked by any occupied square on the
// path. Uniquely, the destination may be a wall, which the miner
// clears by entering it.
func minerLegal(b *core.Board, from, to core.Position, side core.Side) bool {
	o := from.OffsetTo(to)
	if o.DRow != 0 && o.DCol != 0 {
		return false
	}
	if !pathClear(b, from, to) {
		return false
	}
	target := b.At(to)
	return target.IsEmpty() || target.IsWall() || target.IsEnemyOf(side)
}

// Jester: one step in any direction; destination may be empty, a
// friendly piece (swap) or an enemy piece other than the General
// (conversion). The Jester never captures.
func jesterLegal(b *core.Board, from, to core.Position, side core.Side) bool {
	o := from.OffsetTo(to)
	if abs(o.DRow) > 1 || abs(o.DCol) > 1 {
		return false
	}
	target := b.At(to)
	switch {
	case target.IsEmpty():
		return true
	case target.IsFriendOf(side):
		return true
	case target.IsEnemyOf(side):
		return target.Kind != core.KindGeneral
	default:
		return false
	}
}

// Sentinel: knight offsets onto empty or enemy.
func sentinelLegal(b *core.Board, from, to core.Position, side core.Side) bool {
	o := from.OffsetTo(to)
	ar, ac := abs(o.DRow), abs(o.DCol)
	if !(ar == 1 && ac == 2 || ar == 2 && ac == 1) {
		return false
	}
	target := b.At(to)
	return target.IsEmpty() || target.IsEnemyOf(side)
}

// Catapult: single cardinal steps, plus bombardment patterns at
// straight distance 2 or 3 and diagonal distance (2,2). The catapult
// only ever lands on empty squares; a bombardment never removes the
// occupant of a non-empty square, so patterns are legal only when the
// destination is empty. Paths of length >= 2 must be unobstructed.
func catapultLegal(b *core.Board, from, to core.Position) bool {
	if !b.At(to).IsEmpty() {
		return false
	}
	o := from.OffsetTo(to)
	ar, ac := abs(o.DRow), abs(o.DCol)
	switch {
	case ar+ac == 1:
		return true
	case ar == 2 && ac == 0 || ar == 0 && ac == 2,
		ar == 3 && ac == 0 || ar == 0 && ac == 3,
		ar == 2 && ac == 2:
		return pathClear(b, from, to)
	default:
		return false
	}
}

// Dragon: unlimited straight or diagonal slide, blocked by any
// occupied square, onto empty or enemy.
func dragonLegal(b *core.Board, from, to core.Position, side core.Side) bool {
	o := from.OffsetTo(to)
	straight := o.DRow == 0 || o.DCol == 0
	diagonal := abs(o.DRow) == abs(o.DCol)
	if !straight && !diagonal {
		return false
	}
	if !pathClear(b, from, to) {
		return false
	}
	target := b.At(to)
	return target.IsEmpty() || target.IsEnemyOf(side)
}

// General geometry: one step in any direction onto empty or enemy.
func generalLegal(b *core.Board, from, to core.Position, side core.Side) bool {
	o := from.OffsetTo(to)
	if abs(o.DRow) > 1 || abs(o.DCol) > 1 {
		return false
	}
	target := b.At(to)
	return target.IsEmpty() || target.IsEnemyOf(side)
}
