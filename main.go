package main

import (
	"errors"
	"flag"
	"io/fs"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	configPath = flag.String("config", "config.json", "JSON config file, loaded if present")
	count      = flag.Int("count", 0, "number of particles (overrides config)")
	radius     = flag.Float64("radius", 0, "particle radius (overrides config)")
	seed       = flag.Int64("seed", 0, "random seed, 0 for time based (overrides config)")
	width      = flag.Int("width", 0, "window width (overrides config)")
	height     = flag.Int("height", 0, "window height (overrides config)")
	backdrop   = flag.Bool("backdrop", false, "animated noise backdrop (overrides config)")
	maxTries   = flag.Int("cap", 0, "max placement draws per particle, 0 for unbounded (overrides config)")
	termMode   = flag.Bool("term", false, "render in the terminal instead of a window")
	logPath    = flag.String("log", "collision-field.log", "log file in terminal mode")
)

// loadSettings merges the config file with flags given on the command line
func loadSettings() (Config, error) {
	cfg, err := LoadConfig(*configPath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return cfg, err
		}
		cfg = DefaultConfig()
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "count":
			cfg.Count = *count
		case "radius":
			cfg.Radius = *radius
		case "seed":
			cfg.Seed = *seed
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "backdrop":
			cfg.Backdrop = *backdrop
		case "cap":
			cfg.MaxPlacementAttempts = *maxTries
		}
	})
	return cfg, cfg.Validate()
}

func newRand(cfg Config) *rand.Rand {
	s := cfg.Seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(s))
}

func runTerminal(cfg Config) error {
	logFile, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	defer logFile.Close()
	log.SetOutput(logFile)

	palette, err := ParsePalette(cfg.Palette)
	if err != nil {
		return err
	}
	term, err := NewTerminal(NewField(cfg, palette, newRand(cfg)))
	if err != nil {
		return err
	}
	return term.Run()
}

func main() {
	flag.Parse()

	cfg, err := loadSettings()
	if err != nil {
		log.Fatal(err)
	}

	if *termMode {
		if err := runTerminal(cfg); err != nil {
			log.Fatal(err)
		}
		return
	}

	sim, err := NewSimulation(cfg, *configPath, newRand(cfg))
	if err != nil {
		log.Fatal(err)
	}

	// Set up Ebitengine game
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("Collision Field")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(ebiten.SyncWithFPS) // One step per display refresh

	// Run the game loop
	if err := ebiten.RunGame(sim); err != nil {
		log.Fatal(err)
	}
}
