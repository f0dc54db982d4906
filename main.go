package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"zertz/communication"
	"zertz/config"
	"zertz/engine"
	"zertz/game"
	"zertz/gamemaster"
	"zertz/store"
)

const usage = `usage: zertz <command> [flags]

commands:
  play  -script moves.json   run a scripted match and save it
  show  -id <uuid>           print a saved match
  list                       list saved matches
`

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	zerolog.SetGlobalLevel(cfg.LogLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch os.Args[1] {
	case "play":
		err = runPlay(ctx, cfg, os.Args[2:])
	case "show":
		err = runShow(ctx, cfg, os.Args[2:])
	case "list":
		err = runList(ctx, cfg, os.Args[2:])
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		log.Error().Err(err).Msgf("%s failed", os.Args[1])
		os.Exit(1)
	}
}

func runPlay(ctx context.Context, cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("play", flag.ExitOnError)
	script := fs.String("script", "", "JSON file of moves, - for stdin")
	size := fs.Int("kind", int(cfg.Kind), "board size (37, 40, 43, 44, 48 or 61)")
	rulesName := fs.String("rules", cfg.Rules, "rule set (standard or blitz)")
	dbPath := fs.String("db", cfg.DBPath, "SQLite database for saved matches")
	maxTurns := fs.Int("max-turns", cfg.MaxTurns, "stop after this many moves")
	fs.Parse(args)

	if *script == "" {
		return errors.New("play needs -script")
	}
	kind, err := game.ParseKind(*size)
	if err != nil {
		return err
	}
	rules, err := game.RulesByName(*rulesName)
	if err != nil {
		return err
	}
	src, err := openScript(*script)
	if err != nil {
		return err
	}
	db, err := store.OpenSQLite(*dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	master, err := gamemaster.New(kind, rules)
	if err != nil {
		return err
	}
	comm := communication.NewLocal(master)
	log.Info().Msgf("starting a %d ring %s match", int(kind), rules.Name())
	res, runErr := engine.New(comm, src, engine.WithMaxTurns(*maxTurns)).Run(ctx)
	comm.Close()

	match, err := store.NewMatch(uuid.New(), master)
	if err != nil {
		return err
	}
	if err := db.Save(ctx, match); err != nil {
		return err
	}

	printView(os.Stdout, master.View())
	fmt.Printf("saved match %s after %d turns: %s\n", match.ID, res.Turns, match.Result())
	return runErr
}

func openScript(path string) (*engine.ScriptSource, error) {
	if path == "-" {
		return engine.LoadScript(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return engine.LoadScript(f)
}

func runShow(ctx context.Context, cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("show", flag.ExitOnError)
	rawID := fs.String("id", "", "match ID")
	dbPath := fs.String("db", cfg.DBPath, "SQLite database for saved matches")
	asJSON := fs.Bool("json", false, "print the view as JSON")
	fs.Parse(args)

	id, err := uuid.Parse(*rawID)
	if err != nil {
		return fmt.Errorf("cannot parse -id: %w", err)
	}
	db, err := store.OpenSQLite(*dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	match, err := db.Get(ctx, id)
	if err != nil {
		return err
	}
	master, err := match.Master()
	if err != nil {
		return err
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(master.View())
	}
	fmt.Printf("match %s (%d rings, %s rules): %s\n", match.ID, int(match.Kind), match.Rules, match.Result())
	printView(os.Stdout, master.View())
	return nil
}

func runList(ctx context.Context, cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	dbPath := fs.String("db", cfg.DBPath, "SQLite database for saved matches")
	fs.Parse(args)

	db, err := store.OpenSQLite(*dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	matches, err := db.List(ctx)
	if err != nil {
		return err
	}
	for _, m := range matches {
		fmt.Printf("%s  %2d rings  %-8s  %3d moves  %s\n", m.ID, int(m.Kind), m.Rules, m.Moves, m.Result())
	}
	return nil
}

func printView(w io.Writer, v gamemaster.View) {
	fmt.Fprint(w, v.Board.String())
	fmt.Fprintf(w, "state: %v, player %v to move\n", v.State, v.Current)
	fmt.Fprintf(w, "pool: %+v\n", v.Pool)
	fmt.Fprintf(w, "player one: %+v\nplayer two: %+v\n", v.Scores[game.PlayerOne], v.Scores[game.PlayerTwo])
}
