package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/siegechess/siegechess/internal/boardio"
	"github.com/siegechess/siegechess/internal/config"
	"github.com/siegechess/siegechess/internal/game/core"
	"github.com/siegechess/siegechess/internal/game/events"
	"github.com/siegechess/siegechess/internal/game/events/subscribers"
	"github.com/siegechess/siegechess/internal/game/selector"
)

const engineName = "siegechess"

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 1 && args[0] == "name" {
		fmt.Println(engineName)
		return exitOK
	}
	if len(args) != 3 {
		usage()
		return exitUsage
	}

	side, err := core.ParseSide(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "unknown side %q\n", args[0])
		usage()
		return exitUsage
	}
	inputPath, outputPath := args[1], args[2]

	if err := config.Init(""); err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		return exitError
	}
	cfg := config.Get()
	setupLogging(cfg.Logging.Level, cfg.Logging.Format)
	if path := config.ConfigFilePath(); path != "" {
		log.Debug().Str("path", path).Msg("Configuration loaded")
	}
	config.WatchConfig(func() {
		c := config.Get()
		setupLogging(c.Logging.Level, c.Logging.Format)
		log.Debug().Str("path", config.ConfigFilePath()).Msg("Configuration reloaded")
	})

	board, err := boardio.Load(inputPath, cfg.Engine.MaxBoardDim)
	if err != nil {
		log.Error().Err(err).Str("path", inputPath).Msg("Failed to read board")
		return exitError
	}

	var opts []selector.Option
	if cfg.Engine.EmitEvents {
		var bus events.Bus = events.NewEventBus()
		bus.Subscribe(subscribers.NewLoggerSubscriber("decision-log", log.Logger, zerolog.InfoLevel))
		opts = append(opts, selector.WithPublisher(bus))
	}

	decision := selector.New(side, opts...).PlayTurn(board)
	log.Info().
		Stringer("side", side).
		Str("resolution", decision.Resolution).
		Str("decision_id", decision.ID).
		Msg("Turn decided")

	if err := boardio.Save(outputPath, board); err != nil {
		log.Error().Err(err).Str("path", outputPath).Msg("Failed to write board")
		return exitError
	}
	return exitOK
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s name | %s <white|black> <input> <output>\n", engineName, engineName)
}

func setupLogging(level, format string) {
	var logLevel zerolog.Level
	switch level {
	case "trace":
		logLevel = zerolog.TraceLevel
	case "debug":
		logLevel = zerolog.DebugLevel
	case "info":
		logLevel = zerolog.InfoLevel
	case "warn":
		logLevel = zerolog.WarnLevel
	case "error":
		logLevel = zerolog.ErrorLevel
	default:
		logLevel = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(logLevel)

	if format == "json" {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		})
	}
}
