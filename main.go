package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"fanorona/config"
	"fanorona/engine"
	"fanorona/experiments/metrics"
	"fanorona/game"
)

func main() {
	configPath := flag.String("config", "", "path to a config file (default: XDG location)")
	games := flag.Int("games", 0, "number of self-play games")
	seed := flag.Uint64("seed", 0, "base RNG seed for self-play")
	script := flag.String("script", "", "file with one short-notation move per line to replay")
	flag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("loading config")
	}
	if *games > 0 {
		settings.Games = *games
	}
	if *seed != 0 {
		settings.Seed = *seed
	}
	if *script != "" {
		settings.Script = *script
	}

	level, err := zerolog.ParseLevel(settings.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msgf("invalid log level %q", settings.LogLevel)
	}
	zerolog.SetGlobalLevel(level)

	if settings.Script != "" {
		if err := runScript(settings.Script); err != nil {
			log.Fatal().Err(err).Msg("replay failed")
		}
		return
	}

	if err := runSelfPlay(settings); err != nil {
		log.Fatal().Err(err).Msg("self-play failed")
	}
}

// runScript replays a move list against a fresh game and prints the final
// position.
func runScript(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}

	state := game.NewGameState()
	lineNo := 0
	for _, line := range strings.Split(string(data), "\n") {
		lineNo++
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		move, err := game.ParseMove(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		if err := state.Push(move); err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		log.Debug().Msgf("%s -> %q", move, state)
	}

	fmt.Println(state)
	if state.Done() {
		winner, err := state.Winner()
		if err != nil {
			return err
		}
		if winner == game.Empty {
			fmt.Println("result: draw")
		} else {
			fmt.Printf("result: %s wins\n", winner)
		}
	}
	return nil
}

// runSelfPlay plays a batch of uniformly sampled games to exercise the rules
// core and records per-game metrics.
func runSelfPlay(settings config.Settings) error {
	writer, err := metrics.NewWriter()
	if err != nil {
		return err
	}

	tally := map[game.Piece]int{}
	records := make([]metrics.GameRecord, 0, settings.Games)

	fmt.Printf("Running %d self-play games...\n", settings.Games)
	for i := 0; i < settings.Games; i++ {
		gameSeed := settings.Seed + uint64(i)*2
		white := engine.NewSampledPlayer("white", gameSeed)
		black := engine.NewSampledPlayer("black", gameSeed+1)

		e := engine.LocalEngine(white, black, engine.WithMaxMoves(settings.MaxMoves))
		winner, metric, err := e.Run()
		if err != nil {
			return fmt.Errorf("game %d: %w", i+1, err)
		}

		tally[winner]++
		records = append(records, metrics.GameRecord{ID: i + 1, Seed: gameSeed, GameMetric: metric})
	}

	if err := writer.WriteGameRecords(records); err != nil {
		return err
	}

	fmt.Printf("%d games: white %d, black %d, draws %d\n",
		settings.Games, tally[game.White], tally[game.Black], tally[game.Empty])
	fmt.Printf("records written to %s\n", writer.BaseDir())
	return nil
}
