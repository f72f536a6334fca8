package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the run settings. Values come from an optional YAML file and
// are overridden by any flag given on the command line.
type Config struct {
	Input   string `yaml:"input"`
	AStar   bool   `yaml:"astar"`
	Verbose bool   `yaml:"verbose"`
	Profile string `yaml:"profile"` // "", "cpu" or "mem"
}

func defaultConfig() Config {
	return Config{Input: "input.txt"}
}

// loadConfigFile decodes the YAML file at path on top of cfg.
func loadConfigFile(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return fmt.Errorf("config %s: %w", path, err)
	}

	return nil
}

// parseFlags builds the Config for args (without the program name).
func parseFlags(args []string, stderr io.Writer) (Config, error) {
	fs := flag.NewFlagSet("day23", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		configPath = fs.String("config", "", "optional YAML configuration file")
		input      = fs.String("f", "input.txt", "input file")
		astar      = fs.Bool("astar", false, "guide the search with an energy lower bound")
		verbose    = fs.Bool("v", false, "log search statistics and print the move plans")
		prof       = fs.String("profile", "", "write a \"cpu\" or \"mem\" profile")
	)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %q", fs.Args())
	}

	cfg := defaultConfig()
	if *configPath != "" {
		if err := loadConfigFile(*configPath, &cfg); err != nil {
			return Config{}, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "f":
			cfg.Input = *input
		case "astar":
			cfg.AStar = *astar
		case "v":
			cfg.Verbose = *verbose
		case "profile":
			cfg.Profile = *prof
		}
	})

	switch cfg.Profile {
	case "", "cpu", "mem":
	default:
		return Config{}, fmt.Errorf("unknown profile %q (want cpu or mem)", cfg.Profile)
	}

	return cfg, nil
}
