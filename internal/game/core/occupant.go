package core

import (
	"fmt"
	"strings"
)

// Side identifies which player a piece belongs to.
type Side int8

const (
	NoSide Side = iota
	White
	Black
)

// ParseSide converts the canonical side strings to a Side value.
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(s) {
	case "white":
		return White, nil
	case "black":
		return Black, nil
	default:
		return NoSide, fmt.Errorf("%w: %q", ErrInvalidSide, s)
	}
}

// Opponent returns the other side.
func (s Side) Opponent() Side {
	switch s {
	case White:
		return Black
	case Black:
		return White
	default:
		return NoSide
	}
}

// Forward returns the row delta for this side's forward direction.
// White advances toward decreasing row, Black toward increasing row.
func (s Side) Forward() int {
	if s == White {
		return -1
	}
	return 1
}

func (s Side) String() string {
	switch s {
	case White:
		return "white"
	case Black:
		return "black"
	default:
		return "none"
	}
}

// Kind identifies what occupies a board square.
// KindNone is an empty square and KindWall an immobile wall; the
// remaining kinds are movable pieces.
type Kind int8

const (
	KindNone Kind = iota
	KindWall
	KindZombie
	KindBuilder
	KindMiner
	KindJester
	KindSentinel
	KindCatapult
	KindDragon
	KindGeneral
)

// PieceKinds lists every movable kind. The order is fixed: threat scans
// iterate kinds in this order and report the first match, which is an
// observable part of the decision policy.
var PieceKinds = [...]Kind{
	KindZombie,
	KindBuilder,
	KindMiner,
	KindJester,
	KindSentinel,
	KindCatapult,
	KindDragon,
	KindGeneral,
}

var kindNames = map[Kind]string{
	KindNone:     "none",
	KindWall:     "wall",
	KindZombie:   "zombie",
	KindBuilder:  "builder",
	KindMiner:    "miner",
	KindJester:   "jester",
	KindSentinel: "sentinel",
	KindCatapult: "catapult",
	KindDragon:   "dragon",
	KindGeneral:  "general",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Occupant is the content of one board cell: empty, a wall, or a
// (kind, side) piece. The zero value is an empty cell.
type Occupant struct {
	Kind Kind
	Side Side
}

var (
	Empty = Occupant{}
	Wall  = Occupant{Kind: KindWall}
)

func (o Occupant) IsEmpty() bool { return o.Kind == KindNone }
func (o Occupant) IsWall() bool  { return o.Kind == KindWall }
func (o Occupant) IsPiece() bool { return o.Kind != KindNone && o.Kind != KindWall }

// IsEnemyOf reports whether the occupant is a piece of the opposing side.
// Walls and empty squares belong to no side.
func (o Occupant) IsEnemyOf(s Side) bool {
	return o.IsPiece() && o.Side != s
}

// IsFriendOf reports whether the occupant is a piece of the given side.
func (o Occupant) IsFriendOf(s Side) bool {
	return o.IsPiece() && o.Side == s
}

// Symbol alphabet for the board file format: one byte per cell,
// uppercase for White, lowercase for Black.
const (
	symbolEmpty = '.'
	symbolWall  = '#'
)

var kindSymbols = map[Kind]byte{
	KindZombie:   'Z',
	KindBuilder:  'B',
	KindMiner:    'M',
	KindJester:   'J',
	KindSentinel: 'S',
	KindCatapult: 'C',
	KindDragon:   'D',
	KindGeneral:  'G',
}

var symbolKinds = map[byte]Kind{}

func init() {
	for k, sym := range kindSymbols {
		symbolKinds[sym] = k
	}
}

// Symbol returns the single-character encoding of this occupant.
func (o Occupant) Symbol() byte {
	switch {
	case o.IsEmpty():
		return symbolEmpty
	case o.IsWall():
		return symbolWall
	}
	sym := kindSymbols[o.Kind]
	if o.Side == Black {
		sym += 'a' - 'A'
	}
	return sym
}

// OccupantFromSymbol decodes a board file character into an occupant.
func OccupantFromSymbol(ch byte) (Occupant, error) {
	switch ch {
	case symbolEmpty:
		return Empty, nil
	case symbolWall:
		return Wall, nil
	}
	upper := ch
	side := White
	if ch >= 'a' && ch <= 'z' {
		upper = ch - ('a' - 'A')
		side = Black
	}
	kind, ok := symbolKinds[upper]
	if !ok {
		return Empty, fmt.Errorf("%w: %q", ErrUnknownSymbol, ch)
	}
	return Occupant{Kind: kind, Side: side}, nil
}
