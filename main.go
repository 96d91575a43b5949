package main

import (
	"io/fs"
	"log"
	"os"

	"github.com/integrii/flaggy"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-console/model"
	"github.com/sheikhrachel/go-gol-console/utils"
)

const (
	configEnvVar      = "GOL_CONFIG"
	defaultConfigFile = "config.json"
)

func main() {
	log.SetPrefix("[GOL] ")
	log.SetFlags(0)

	config, err := loadConfig(os.Getenv(configEnvVar))
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := parseFlags(&config, os.Args[1:]); err != nil {
		log.Fatalf("parse flags: %v", err)
	}

	grid, seed, err := initializeGrid(config)
	if err != nil {
		log.Fatalf("seed grid: %v", err)
	}
	log.Printf("%dx%d grid, density %.2f, seed %d", config.Height, config.Width, config.Density, seed)

	if err := newGame(grid, config, os.Stdin, os.Stdout).run(); err != nil {
		log.Fatalf("game loop: %v", err)
	}
}

// loadConfig reads the JSON config file, then applies GOL_* environment overrides
func loadConfig(filename string) (utils.Config, error) {
	if filename == "" {
		filename = defaultConfigFile
	}

	// Fallback to defaults if the file doesn't exist
	config, err := utils.LoadConfig(filename)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("using default configuration (%s not found)", filename)
		config = utils.DefaultConfig()
	} else if err != nil {
		return config, err
	}

	if err := utils.ApplyEnv(&config); err != nil {
		return config, err
	}
	return config, nil
}

// parseFlags lets command-line flags override the loaded config
func parseFlags(config *utils.Config, args []string) error {
	p := flaggy.NewParser("gol")
	p.Description = "Conway's Game of Life on a bordered grid, driven by one-letter commands"
	p.ShowHelpOnUnexpected = true

	p.Int(&config.Height, "y", "height", "Grid height, border rows included")
	p.Int(&config.Width, "x", "width", "Grid width, border columns included")
	p.Float64(&config.Density, "d", "density", "Probability in [0, 1] that an interior cell starts alive")
	p.Int64(&config.Seed, "s", "seed", "Random seed for the initial grid (0 picks one)")
	p.Bool(&config.Color, "c", "color", "Color the output")
	p.Bool(&config.ShowStats, "", "stats", "Show the status line under the grid")
	p.Bool(&config.ShowCounts, "n", "counts", "Show the neighbor count view after the N command")

	return p.ParseArgs(args)
}

// initializeGrid seeds the first generation, returning the seed it used
func initializeGrid(config utils.Config) (*model.Grid, int64, error) {
	seed := config.Seed
	if seed == 0 {
		var err error
		if seed, err = model.NewSeed(); err != nil {
			return nil, 0, err
		}
	}

	grid, err := model.Seed(config.Height, config.Width, config.Density, model.NewRand(seed))
	if err != nil {
		return nil, seed, err
	}
	return grid, seed, nil
}
