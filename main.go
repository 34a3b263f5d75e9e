package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jnakos01/freckers2/agent"
	"github.com/jnakos01/freckers2/engine"
	"github.com/jnakos01/freckers2/game"
)

func main() {
	var (
		profilePath = flag.String("profiles", "", "YAML profile file; built-ins are used when empty")
		redName     = flag.String("red", "balanced", "profile for the red agent")
		blueName    = flag.String("blue", "balanced", "profile for the blue agent")
		budget      = flag.Duration("budget", time.Second, "wall-clock budget per move")
		games       = flag.Int("games", 1, "number of games to play")
		recordDir   = flag.String("record", "", "write CSV match records under this directory")
		verbose     = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).With().Timestamp().Logger()

	if err := run(*profilePath, *redName, *blueName, *budget, *games, *recordDir); err != nil {
		log.Fatal().Err(err).Msg("match runner failed")
	}
}

func run(profilePath, redName, blueName string, budget time.Duration, games int, recordDir string) error {
	profiles := agent.BuiltinProfiles()
	if profilePath != "" {
		f, err := os.Open(profilePath)
		if err != nil {
			return err
		}
		defer f.Close()
		loaded, err := agent.LoadProfiles(f)
		if err != nil {
			return err
		}
		for name, p := range loaded {
			profiles[name] = p
		}
	}

	redProfile, ok := profiles[redName]
	if !ok {
		return fmt.Errorf("unknown profile %q", redName)
	}
	blueProfile, ok := profiles[blueName]
	if !ok {
		return fmt.Errorf("unknown profile %q", blueName)
	}

	var results []engine.Result
	tally := map[game.Result]int{}
	for i := 1; i <= games; i++ {
		red, err := agent.New(game.Red, redProfile)
		if err != nil {
			return err
		}
		blue, err := agent.New(game.Blue, blueProfile)
		if err != nil {
			return err
		}
		match, err := engine.NewLocal(red, blue, budget)
		if err != nil {
			return err
		}

		log.Info().Int("game", i).Str("red", redProfile.Name).Str("blue", blueProfile.Name).Msg("game started")
		result, err := match.Run(context.Background())
		if err != nil {
			return fmt.Errorf("game %d: %w", i, err)
		}
		results = append(results, result)
		tally[result.Outcome]++
	}

	log.Info().
		Int("games", games).
		Int("red_wins", tally[game.RedWin]).
		Int("blue_wins", tally[game.BlueWin]).
		Int("draws", tally[game.Draw]).
		Msg("session complete")

	if recordDir != "" {
		recorder, err := engine.NewRecorder(recordDir)
		if err != nil {
			return err
		}
		if err := recorder.WriteMatches(results); err != nil {
			return err
		}
		if err := recorder.WriteMoves(results); err != nil {
			return err
		}
		log.Info().Str("dir", recorder.Dir()).Msg("records written")
	}
	return nil
}
