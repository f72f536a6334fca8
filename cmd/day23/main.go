// Command day23 prints the least energy needed to organize the amphipods of
// an Advent of Code 2021 day 23 burrow, for the burrow as given (part 1) and
// for its unfolded, four-deep version (part 2).
//
// Usage:
//
//	day23 [-f input.txt] [-config day23.yaml] [-astar] [-v] [-profile cpu|mem]
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/kr/pretty"
	"github.com/pkg/profile"

	"github.com/katalvlaran/aoc2021/amphipod"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("day23: ")

	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		log.Fatal(err)
	}
	if err := run(context.Background(), cfg, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cfg Config, w io.Writer) error {
	if cfg.Verbose {
		log.Printf("config: %# v", pretty.Formatter(cfg))
	}
	switch cfg.Profile {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	}

	raw, err := os.ReadFile(cfg.Input)
	if err != nil {
		return err
	}
	input := string(raw)
	unfolded, err := amphipod.Unfold(input)
	if err != nil {
		return err
	}

	var opts []amphipod.Option
	if cfg.AStar {
		opts = append(opts, amphipod.WithAStar())
	}
	if cfg.Verbose {
		opts = append(opts, amphipod.WithSteps())
	}

	for part, text := range []string{input, unfolded} {
		energy, err := solvePart(ctx, part+1, text, cfg.Verbose, opts)
		if err != nil {
			return fmt.Errorf("part %d: %w", part+1, err)
		}
		fmt.Fprintf(w, "Part%d: %d\n", part+1, energy)
	}

	return nil
}

func solvePart(ctx context.Context, part int, text string, verbose bool, opts []amphipod.Option) (int, error) {
	b, err := amphipod.Parse(text)
	if err != nil {
		return 0, err
	}

	start := time.Now()
	sol, err := amphipod.Organize(ctx, b, opts...)
	if err != nil {
		return 0, err
	}

	if verbose {
		log.Printf("part %d: energy %s, %s burrows expanded, %s discovered in %s",
			part,
			humanize.Comma(int64(sol.Energy)),
			humanize.Comma(int64(sol.Expanded)),
			humanize.Comma(int64(sol.Discovered)),
			time.Since(start).Round(time.Millisecond))
		for i, m := range sol.Steps {
			log.Printf("  %2d. %v", i+1, m)
		}
	}

	return sol.Energy, nil
}
