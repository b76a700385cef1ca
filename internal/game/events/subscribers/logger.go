// Package subscribers holds event bus subscribers.
package subscribers

import (
	"github.com/rs/zerolog"

	"github.com/siegechess/siegechess/internal/game/events"
)

// LoggerSubscriber logs decision events to structured logs
type LoggerSubscriber struct {
	id       string
	logger   zerolog.Logger
	logLevel zerolog.Level
}

// NewLoggerSubscriber creates a new logger subscriber
func NewLoggerSubscriber(id string, logger zerolog.Logger, logLevel zerolog.Level) *LoggerSubscriber {
	return &LoggerSubscriber{
		id:       id,
		logger:   logger.With().Str("subscriber", "event_logger").Logger(),
		logLevel: logLevel,
	}
}

// ID returns the subscriber's unique identifier
func (ls *LoggerSubscriber) ID() string {
	return ls.id
}

// InterestedIn reports that the log subscriber wants every event type.
func (ls *LoggerSubscriber) InterestedIn(string) bool {
	return true
}

// HandleEvent processes an event by logging it
func (ls *LoggerSubscriber) HandleEvent(e events.Event) {
	entry := ls.logger.WithLevel(ls.logLevel).
		Str("event_type", e.Type()).
		Str("decision_id", e.DecisionID()).
		Time("event_time", e.Timestamp())

	switch ev := e.(type) {
	case *events.TurnStartedEvent:
		entry = entry.Stringer("side", ev.Side).Int("rows", ev.Rows).Int("cols", ev.Cols)
	case *events.ThreatDetectedEvent:
		entry = entry.Stringer("side", ev.Side).Stringer("general", ev.General).Stringer("threat", ev.Threat)
	case *events.MoveExecutedEvent:
		entry = entry.Stringer("side", ev.Side).Stringer("move", ev.Move).
			Stringer("effect", ev.Effect).Str("resolution", ev.Resolution)
	case *events.WallBuiltEvent:
		entry = entry.Stringer("side", ev.Side).Stringer("builder", ev.Builder).Stringer("at", ev.At)
	case *events.PieceConvertedEvent:
		entry = entry.Stringer("side", ev.Side).Stringer("jester", ev.Jester).Stringer("target", ev.Target)
	case *events.TurnPassedEvent:
		entry = entry.Stringer("side", ev.Side)
	}

	entry.Msg("Decision event")
}
