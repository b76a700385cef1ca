// Package selector implements the per-turn decision procedure: a
// strict priority ladder that applies at most one mutating action to
// the board per invocation.
package selector

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/siegechess/siegechess/internal/game/core"
	"github.com/siegechess/siegechess/internal/game/events"
	"github.com/siegechess/siegechess/internal/game/rules"
)

// Action describes what the selector did to the board.
type Action int8

const (
	// ActionNone means the board was left untouched.
	ActionNone Action = iota
	// ActionMove means a piece move was applied.
	ActionMove
	// ActionBuildWall means a builder placed a wall.
	ActionBuildWall
)

// Resolution names identify which rung of the priority ladder produced
// the decision. They appear on events and logs.
const (
	ResolutionCaptureThreat  = "capture_threat"
	ResolutionSentinelShield = "sentinel_shield"
	ResolutionWallBlock      = "wall_block"
	ResolutionGeneralRetreat = "general_retreat"
	ResolutionConversion     = "jester_conversion"
	ResolutionCapture        = "generic_capture"
	ResolutionAdvance        = "generic_advance"
	ResolutionDesperate      = "desperate_move"
	ResolutionPass           = "pass"
)

// Decision is the outcome of one selector invocation.
type Decision struct {
	ID         string
	Action     Action
	Move       core.Move     // set when Action == ActionMove
	Builder    core.Position // set when Action == ActionBuildWall
	WallAt     core.Position // set when Action == ActionBuildWall
	Effect     core.Effect
	Resolution string
}

// Selector chooses one move per turn for a fixed side. It holds no
// board state: each PlayTurn call is a pure function of the board it
// is handed, side-effecting that board at most once.
type Selector struct {
	side   core.Side
	logger zerolog.Logger
	bus    events.Publisher
}

// Option configures a Selector.
type Option func(*Selector)

// WithPublisher attaches an event publisher for decision events.
func WithPublisher(bus events.Publisher) Option {
	return func(s *Selector) { s.bus = bus }
}

// WithLogger replaces the default package logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Selector) {
		s.logger = logger.With().Str("component", "selector").Logger()
	}
}

// New creates a selector for the given side.
func New(side core.Side, opts ...Option) *Selector {
	s := &Selector{
		side: side,
		logger: log.With().
			Str("component", "selector").
			Stringer("side", side).
			Logger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Selector) publish(e events.Event) {
	if s.bus != nil {
		s.bus.Publish(e)
	}
}

// PlayTurn decides and applies at most one action for the selector's
// side. Priority order: resolve a check on the own General (capture
// the threat, shield with a sentinel, wall off the line, retreat),
// then the generic search (immediate capture, jester conversion
// fallback, first quiet move, first dangerous move, pass).
func (s *Selector) PlayTurn(b *core.Board) Decision {
	id := uuid.New().String()
	logger := s.logger.With().Str("decision_id", id).Logger()
	s.publish(events.NewTurnStartedEvent(id, s.side, b.Rows, b.Cols))

	inDanger := false
	var threat core.Position

	general, hasGeneral := b.Find(core.KindGeneral, s.side)
	if !hasGeneral {
		logger.Warn().Msg("No general on the board, skipping safety handling")
	} else if th, ok := rules.IdentifyThreat(b, s.side, general); ok {
		inDanger = true
		threat = th
		logger.Info().
			Stringer("general", general).
			Stringer("threat", th).
			Msg("General in danger")
		s.publish(events.NewThreatDetectedEvent(id, s.side, general, th))

		if d, resolved := s.resolveThreat(b, id, logger, general, th); resolved {
			return d
		}
		logger.Debug().Msg("No threat resolution applies, falling through to generic search")
	}

	return s.genericSearch(b, id, logger, inDanger, threat)
}

// resolveThreat tries the check-resolution rungs in fixed order. The
// first success applies its action and ends the turn.
func (s *Selector) resolveThreat(b *core.Board, id string, logger zerolog.Logger, general, threat core.Position) (Decision, bool) {
	// Capture the threatening piece.
	for _, from := range s.ownPieces(b) {
		if rules.IsLegal(b, from, threat) && !rules.DangerAfterMove(b, from, threat, s.side) {
			return s.applyMove(b, id, logger, core.Move{From: from, To: threat}, ResolutionCaptureThreat), true
		}
	}

	// Shield the General with a sentinel on a cardinally adjacent square.
	for _, from := range s.ownPiecesOfKind(b, core.KindSentinel) {
		for _, to := range rules.CandidateMoves(b, from) {
			if rules.WouldProtect(to, general) && !rules.DangerAfterMove(b, from, to, s.side) {
				return s.applyMove(b, id, logger, core.Move{From: from, To: to}, ResolutionSentinelShield), true
			}
		}
	}

	// Wall off the threat from a builder's adjacent empty square.
	for _, from := range s.ownPiecesOfKind(b, core.KindBuilder) {
		for _, site := range rules.WallSites(b, from) {
			if rules.ProtectedAfterWall(b, site, general, s.side) {
				b.BuildWall(site)
				logger.Info().
					Stringer("builder", from).
					Stringer("wall", site).
					Msg("Wall built to block threat")
				s.publish(events.NewWallBuiltEvent(id, s.side, from, site))
				return Decision{
					ID:         id,
					Action:     ActionBuildWall,
					Builder:    from,
					WallAt:     site,
					Resolution: ResolutionWallBlock,
				}, true
			}
		}
	}

	// Retreat the General. Its candidates are already safety-filtered.
	for _, to := range rules.CandidateMoves(b, general) {
		if !rules.DangerAfterMove(b, general, to, s.side) {
			return s.applyMove(b, id, logger, core.Move{From: general, To: to}, ResolutionGeneralRetreat), true
		}
	}

	return Decision{}, false
}

// genericSearch scans own pieces in row-major order. Occupied
// destinations are taken immediately; the first quiet and the first
// dangerous candidates are remembered as fallbacks, below a remembered
// jester conversion.
func (s *Selector) genericSearch(b *core.Board, id string, logger zerolog.Logger, inDanger bool, threat core.Position) Decision {
	var (
		conversion    core.Move
		hasConversion bool
		quiet         core.Move
		hasQuiet      bool
		dangerous     core.Move
		hasDangerous  bool
	)

	for _, from := range s.ownPieces(b) {
		// The whole-board jester re-scan runs before every piece. The
		// repetition is an observable part of the selection policy, a
		// documented top-of-loop precondition rather than a hoistable
		// computation.
		if jm, onThreat, ok := s.findJesterConversion(b, inDanger, threat); ok {
			if onThreat {
				return s.applyMove(b, id, logger, jm, ResolutionConversion)
			}
			if !hasConversion {
				conversion = jm
				hasConversion = true
			}
		}

		for _, to := range rules.CandidateMoves(b, from) {
			m := core.Move{From: from, To: to}
			if rules.DangerAfterMove(b, from, to, s.side) {
				if !hasDangerous {
					dangerous = m
					hasDangerous = true
				}
				continue
			}
			if !b.At(to).IsEmpty() {
				return s.applyMove(b, id, logger, m, ResolutionCapture)
			}
			if !hasQuiet {
				quiet = m
				hasQuiet = true
			}
		}
	}

	switch {
	case hasConversion:
		return s.applyMove(b, id, logger, conversion, ResolutionConversion)
	case hasQuiet:
		return s.applyMove(b, id, logger, quiet, ResolutionAdvance)
	case hasDangerous:
		logger.Warn().Stringer("move", dangerous).Msg("Only dangerous moves available")
		return s.applyMove(b, id, logger, dangerous, ResolutionDesperate)
	default:
		logger.Info().Msg("No legal move available, passing")
		s.publish(events.NewTurnPassedEvent(id, s.side))
		return Decision{ID: id, Action: ActionNone, Resolution: ResolutionPass}
	}
}

// findJesterConversion scans every conversion available to any own
// jester: board scanned row-major, each jester's candidates in offset
// order, conversion meaning an enemy (never a General) on the
// destination. When the side is in danger and any conversion lands
// exactly on the threat, that move wins with onThreat set, regardless
// of where it falls in the scan; otherwise the first conversion found
// is returned as the fallback.
func (s *Selector) findJesterConversion(b *core.Board, inDanger bool, threat core.Position) (move core.Move, onThreat, ok bool) {
	for _, from := range s.ownPiecesOfKind(b, core.KindJester) {
		for _, to := range rules.CandidateMoves(b, from) {
			if !b.At(to).IsEnemyOf(s.side) {
				continue
			}
			if inDanger && to.Equal(threat) {
				return core.Move{From: from, To: to}, true, true
			}
			if !ok {
				move = core.Move{From: from, To: to}
				ok = true
			}
		}
	}
	return move, false, ok
}

func (s *Selector) applyMove(b *core.Board, id string, logger zerolog.Logger, m core.Move, resolution string) Decision {
	effect := b.Apply(m)
	logger.Info().
		Stringer("move", m).
		Stringer("effect", effect).
		Str("resolution", resolution).
		Msg("Move executed")
	s.publish(events.NewMoveExecutedEvent(id, s.side, m, effect, resolution))
	if effect == core.EffectConversion {
		s.publish(events.NewPieceConvertedEvent(id, s.side, m.From, m.To))
	}
	return Decision{ID: id, Action: ActionMove, Move: m, Effect: effect, Resolution: resolution}
}

// ownPieces lists the side's piece positions in row-major order.
func (s *Selector) ownPieces(b *core.Board) []core.Position {
	var out []core.Position
	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			p := core.NewPosition(r, c)
			if b.At(p).IsFriendOf(s.side) {
				out = append(out, p)
			}
		}
	}
	return out
}

func (s *Selector) ownPiecesOfKind(b *core.Board, kind core.Kind) []core.Position {
	var out []core.Position
	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			p := core.NewPosition(r, c)
			occ := b.At(p)
			if occ.Kind == kind && occ.Side == s.side {
				out = append(out, p)
			}
		}
	}
	return out
}
