package events

import (
	"time"

	"github.com/siegechess/siegechess/internal/game/core"
)

// Event type constants
const (
	TypeTurnStarted    = "turn.started"
	TypeThreatDetected = "threat.detected"
	TypeMoveExecuted   = "move.executed"
	TypeWallBuilt      = "wall.built"
	TypePieceConverted = "piece.converted"
	TypeTurnPassed     = "turn.passed"
)

// TurnStartedEvent is published when the selector begins a decision.
type TurnStartedEvent struct {
	BaseEvent
	Side core.Side
	Rows int
	Cols int
}

// NewTurnStartedEvent creates a new TurnStartedEvent
func NewTurnStartedEvent(decisionID string, side core.Side, rows, cols int) *TurnStartedEvent {
	return &TurnStartedEvent{
		BaseEvent: BaseEvent{
			EventType: TypeTurnStarted,
			Time:      time.Now(),
			Decision:  decisionID,
		},
		Side: side,
		Rows: rows,
		Cols: cols,
	}
}

// ThreatDetectedEvent is published when the side's General is found to
// be in danger at the start of a turn.
type ThreatDetectedEvent struct {
	BaseEvent
	Side    core.Side
	General core.Position
	Threat  core.Position
}

// NewThreatDetectedEvent creates a new ThreatDetectedEvent
func NewThreatDetectedEvent(decisionID string, side core.Side, general, threat core.Position) *ThreatDetectedEvent {
	return &ThreatDetectedEvent{
		BaseEvent: BaseEvent{
			EventType: TypeThreatDetected,
			Time:      time.Now(),
			Decision:  decisionID,
		},
		Side:    side,
		General: general,
		Threat:  threat,
	}
}

// MoveExecutedEvent is published when the selector applies a move.
type MoveExecutedEvent struct {
	BaseEvent
	Side       core.Side
	Move       core.Move
	Effect     core.Effect
	Resolution string
}

// NewMoveExecutedEvent creates a new MoveExecutedEvent
func NewMoveExecutedEvent(decisionID string, side core.Side, move core.Move, effect core.Effect, resolution string) *MoveExecutedEvent {
	return &MoveExecutedEvent{
		BaseEvent: BaseEvent{
			EventType: TypeMoveExecuted,
			Time:      time.Now(),
			Decision:  decisionID,
		},
		Side:       side,
		Move:       move,
		Effect:     effect,
		Resolution: resolution,
	}
}

// WallBuiltEvent is published when a builder resolves a check by
// placing a wall.
type WallBuiltEvent struct {
	BaseEvent
	Side    core.Side
	Builder core.Position
	At      core.Position
}

// NewWallBuiltEvent creates a new WallBuiltEvent
func NewWallBuiltEvent(decisionID string, side core.Side, builder, at core.Position) *WallBuiltEvent {
	return &WallBuiltEvent{
		BaseEvent: BaseEvent{
			EventType: TypeWallBuilt,
			Time:      time.Now(),
			Decision:  decisionID,
		},
		Side:    side,
		Builder: builder,
		At:      at,
	}
}

// PieceConvertedEvent is published when a jester flips an enemy piece.
type PieceConvertedEvent struct {
	BaseEvent
	Side   core.Side
	Jester core.Position
	Target core.Position
}

// NewPieceConvertedEvent creates a new PieceConvertedEvent
func NewPieceConvertedEvent(decisionID string, side core.Side, jester, target core.Position) *PieceConvertedEvent {
	return &PieceConvertedEvent{
		BaseEvent: BaseEvent{
			EventType: TypePieceConverted,
			Time:      time.Now(),
			Decision:  decisionID,
		},
		Side:   side,
		Jester: jester,
		Target: target,
	}
}

// TurnPassedEvent is published when no legal move exists and the board
// is left untouched.
type TurnPassedEvent struct {
	BaseEvent
	Side core.Side
}

// NewTurnPassedEvent creates a new TurnPassedEvent
func NewTurnPassedEvent(decisionID string, side core.Side) *TurnPassedEvent {
	return &TurnPassedEvent{
		BaseEvent: BaseEvent{
			EventType: TypeTurnPassed,
			Time:      time.Now(),
			Decision:  decisionID,
		},
		Side: side,
	}
}
