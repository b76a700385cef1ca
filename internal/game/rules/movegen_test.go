package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siegechess/siegechess/internal/game/core"
)

func boardFromLines(t *testing.T, lines ...string) *core.Board {
	t.Helper()
	require.NotEmpty(t, lines)
	b := core.NewBoard(len(lines), len(lines[0]))
	for r, line := range lines {
		require.Len(t, line, b.Cols, "row %d", r)
		for c := 0; c < b.Cols; c++ {
			occ, err := core.OccupantFromSymbol(line[c])
			require.NoError(t, err)
			b.Set(core.NewPosition(r, c), occ)
		}
	}
	return b
}

func emptyBoard(rows, cols int) *core.Board {
	return core.NewBoard(rows, cols)
}

func TestZombieForcedLeap(t *testing.T) {
	// White zombie at (6,4), enemy at (4,4), empty intermediate at (5,4).
	b := emptyBoard(9, 9)
	b.Set(core.NewPosition(6, 4), core.Occupant{Kind: core.KindZombie, Side: core.White})
	b.Set(core.NewPosition(4, 4), core.Occupant{Kind: core.KindDragon, Side: core.Black})

	moves := CandidateMoves(b, core.NewPosition(6, 4))
	assert.Contains(t, moves, core.NewPosition(4, 4), "leap over empty square onto enemy")

	// Occupying the intermediate square kills the leap.
	b.Set(core.NewPosition(5, 4), core.Occupant{Kind: core.KindBuilder, Side: core.White})
	moves = CandidateMoves(b, core.NewPosition(6, 4))
	assert.NotContains(t, moves, core.NewPosition(4, 4))
}

func TestZombieCandidates(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		from  core.Position
		want  []core.Position
	}{
		{
			name: "white moves toward decreasing row",
			lines: []string{
				".....",
				".....",
				"..Z..",
				".....",
			},
			from: core.NewPosition(2, 2),
			want: []core.Position{
				core.NewPosition(1, 2), core.NewPosition(1, 1), core.NewPosition(1, 3),
			},
		},
		{
			name: "black moves toward increasing row",
			lines: []string{
				"..z..",
				".....",
				".....",
				".....",
			},
			from: core.NewPosition(0, 2),
			want: []core.Position{
				core.NewPosition(1, 2), core.NewPosition(1, 1), core.NewPosition(1, 3),
			},
		},
		{
			name: "leap requires enemy destination",
			lines: []string{
				".....",
				".....",
				"..Z..",
				".....",
			},
			from: core.NewPosition(2, 2),
			// No (0,2) leap: destination empty, not an enemy.
			want: []core.Position{
				core.NewPosition(1, 2), core.NewPosition(1, 1), core.NewPosition(1, 3),
			},
		},
		{
			name: "diagonal leap onto enemy",
			lines: []string{
				"d...s",
				".....",
				"..Z..",
				".....",
			},
			from: core.NewPosition(2, 2),
			want: []core.Position{
				core.NewPosition(1, 2), core.NewPosition(1, 1), core.NewPosition(1, 3),
				core.NewPosition(0, 0), core.NewPosition(0, 4),
			},
		},
		{
			name: "forward step blocked by friend and wall",
			lines: []string{
				".....",
				".B#..",
				"..Z..",
				".....",
			},
			from: core.NewPosition(2, 2),
			want: []core.Position{core.NewPosition(1, 3)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := boardFromLines(t, tt.lines...)
			assert.Equal(t, tt.want, CandidateMoves(b, tt.from))
		})
	}
}

func TestBuilderCandidates(t *testing.T) {
	b := boardFromLines(t,
		"#b.",
		".B.",
		".Z.",
	)
	moves := CandidateMoves(b, core.NewPosition(1, 1))

	assert.NotContains(t, moves, core.NewPosition(0, 0), "wall is not enterable")
	assert.Contains(t, moves, core.NewPosition(0, 1), "enemy is capturable")
	assert.NotContains(t, moves, core.NewPosition(2, 1), "friend blocks")
	assert.Contains(t, moves, core.NewPosition(1, 0))
	assert.Contains(t, moves, core.NewPosition(2, 2))
}

func TestWallSites(t *testing.T) {
	b := boardFromLines(t,
		"#b.",
		".B.",
		".Z.",
	)
	sites := WallSites(b, core.NewPosition(1, 1))
	// Empty neighbors only, in offset table order.
	assert.Equal(t, []core.Position{
		core.NewPosition(0, 2),
		core.NewPosition(1, 0), core.NewPosition(1, 2),
		core.NewPosition(2, 0), core.NewPosition(2, 2),
	}, sites)
}

func TestMinerCandidates(t *testing.T) {
	b := boardFromLines(t,
		"..#..",
		".....",
		"d.M.B",
		".....",
		"..z..",
	)
	moves := CandidateMoves(b, core.NewPosition(2, 2))

	assert.Contains(t, moves, core.NewPosition(1, 2))
	assert.Contains(t, moves, core.NewPosition(0, 2), "miner may enter a wall square")
	assert.Contains(t, moves, core.NewPosition(2, 1))
	assert.Contains(t, moves, core.NewPosition(2, 0), "enemy at end of line")
	assert.Contains(t, moves, core.NewPosition(3, 2))
	assert.Contains(t, moves, core.NewPosition(4, 2))
	assert.Contains(t, moves, core.NewPosition(2, 3), "empty square before friend")
	assert.NotContains(t, moves, core.NewPosition(2, 4), "friend is not a destination")
	assert.NotContains(t, moves, core.NewPosition(3, 3), "no diagonals")
}

func TestMinerBlockedBehindWall(t *testing.T) {
	b := boardFromLines(t,
		"..z..",
		"..#..",
		"..M..",
	)
	moves := CandidateMoves(b, core.NewPosition(2, 2))
	assert.Contains(t, moves, core.NewPosition(1, 2), "adjacent wall enterable")
	assert.NotContains(t, moves, core.NewPosition(0, 2), "no sliding past a wall")
	assert.False(t, IsLegal(b, core.NewPosition(2, 2), core.NewPosition(0, 2)))
}

func TestJesterCandidates(t *testing.T) {
	b := boardFromLines(t,
		"bg#",
		".J.",
		".G.",
	)
	from := core.NewPosition(1, 1)
	moves := CandidateMoves(b, from)

	assert.Contains(t, moves, core.NewPosition(0, 0), "enemy piece convertible")
	assert.NotContains(t, moves, core.NewPosition(0, 1), "enemy general never convertible")
	assert.NotContains(t, moves, core.NewPosition(0, 2), "wall not enterable")
	assert.Contains(t, moves, core.NewPosition(2, 1), "friendly general swappable")
	assert.Contains(t, moves, core.NewPosition(1, 0))
	assert.Contains(t, moves, core.NewPosition(1, 2))
}

func TestSentinelCandidates(t *testing.T) {
	b := emptyBoard(5, 5)
	b.Set(core.NewPosition(2, 2), core.Occupant{Kind: core.KindSentinel, Side: core.White})
	b.Set(core.NewPosition(0, 1), core.Occupant{Kind: core.KindZombie, Side: core.Black})
	b.Set(core.NewPosition(0, 3), core.Occupant{Kind: core.KindZombie, Side: core.White})

	moves := CandidateMoves(b, core.NewPosition(2, 2))
	assert.Equal(t, []core.Position{
		core.NewPosition(0, 1), // enemy, capturable
		core.NewPosition(1, 0), core.NewPosition(1, 4),
		core.NewPosition(3, 0), core.NewPosition(3, 4),
		core.NewPosition(4, 1), core.NewPosition(4, 3),
	}, moves)
}

func TestCatapultCandidates(t *testing.T) {
	b := boardFromLines(t,
		"..z....",
		".......",
		"..b....",
		".......",
		"z.C.z.z",
		".......",
		".......",
	)
	from := core.NewPosition(4, 2)
	moves := CandidateMoves(b, from)

	// Single cardinal steps onto empty squares.
	assert.Contains(t, moves, core.NewPosition(3, 2))
	assert.Contains(t, moves, core.NewPosition(4, 1))
	assert.Contains(t, moves, core.NewPosition(4, 3))
	assert.Contains(t, moves, core.NewPosition(5, 2))

	// Bombardment patterns only land on empty squares.
	assert.NotContains(t, moves, core.NewPosition(4, 0), "straight-2 onto enemy is not generated")
	assert.NotContains(t, moves, core.NewPosition(4, 4), "straight-2 onto enemy is not generated")
	assert.NotContains(t, moves, core.NewPosition(2, 2), "straight-2 onto enemy is not generated")
	assert.Contains(t, moves, core.NewPosition(6, 2), "straight-2 onto empty")
	assert.Contains(t, moves, core.NewPosition(2, 0), "diagonal (2,2) onto empty")
	assert.Contains(t, moves, core.NewPosition(2, 4), "diagonal (2,2) onto empty")
	assert.NotContains(t, moves, core.NewPosition(1, 2), "straight-3 path blocked at (2,2)")
	assert.NotContains(t, moves, core.NewPosition(4, 5), "straight-3 path blocked by enemy at (4,4)")
	assert.Contains(t, moves, core.NewPosition(6, 4), "diagonal (2,2) onto empty")
}

// Bombardment destinations are generated only when empty, so a catapult
// "capture" can never leave the catapult on a previously occupied
// square.
func TestCatapultNeverOccupiesOccupiedSquare(t *testing.T) {
	b := boardFromLines(t,
		"z..C...",
	)
	from := core.NewPosition(0, 3)
	for _, to := range CandidateMoves(b, from) {
		require.True(t, b.At(to).IsEmpty(), "candidate %s must be empty", to)
		sim := b.Clone()
		sim.Apply(core.Move{From: from, To: to})
		assert.Equal(t, core.KindCatapult, sim.At(to).Kind)
	}
	assert.NotContains(t, CandidateMoves(b, from), core.NewPosition(0, 0),
		"straight-3 onto enemy is not generated")
}

func TestDragonCandidates(t *testing.T) {
	b := boardFromLines(t,
		"D..z.",
		".....",
		"#....",
		".....",
		"....B",
	)
	from := core.NewPosition(0, 0)
	moves := CandidateMoves(b, from)

	assert.Contains(t, moves, core.NewPosition(0, 3), "enemy at end of rank")
	assert.NotContains(t, moves, core.NewPosition(0, 4), "enemy blocks the ray")
	assert.Contains(t, moves, core.NewPosition(1, 0))
	assert.NotContains(t, moves, core.NewPosition(2, 0), "wall is not enterable")
	assert.NotContains(t, moves, core.NewPosition(3, 0), "wall blocks the ray")
	assert.Contains(t, moves, core.NewPosition(3, 3))
	assert.NotContains(t, moves, core.NewPosition(4, 4), "friend is not a destination")
}

func TestGeneralCandidatesAreSafetyFiltered(t *testing.T) {
	// Black dragon at (0,0) covers its row, file and diagonal. The only
	// safe general step from (2,1) is (1,2).
	b := boardFromLines(t,
		"d....",
		".....",
		".G...",
	)
	moves := CandidateMoves(b, core.NewPosition(2, 1))

	assert.Equal(t, []core.Position{core.NewPosition(1, 2)}, moves)
}

func TestGeneralCapturesIntoSafety(t *testing.T) {
	// Adjacent undefended enemy zombie: capturing it is a candidate.
	b := boardFromLines(t,
		"...",
		".Gz",
		"...",
	)
	moves := CandidateMoves(b, core.NewPosition(1, 1))
	assert.Contains(t, moves, core.NewPosition(1, 2))
}
