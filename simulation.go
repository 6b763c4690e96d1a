package main

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Simulation is the ebiten game driving a Field
type Simulation struct {
	Config     Config
	ConfigPath string // Target of the save/load keys
	Field      *Field
	Backdrop   *Backdrop // nil when disabled
	Pointer    Pointer
	Paused     bool
	ShowHUD    bool

	viewW, viewH int // Last size reported by Layout
	rng          *rand.Rand
}

// NewSimulation builds a simulation and populates its field for the
// configured window size
func NewSimulation(cfg Config, configPath string, rng *rand.Rand) (*Simulation, error) {
	s := &Simulation{
		ConfigPath: configPath,
		viewW:      cfg.Width,
		viewH:      cfg.Height,
		rng:        rng,
	}
	if err := s.apply(cfg); err != nil {
		return nil, err
	}
	return s, nil
}

// apply swaps in a config and rebuilds the field from it
func (s *Simulation) apply(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	palette, err := ParsePalette(cfg.Palette)
	if err != nil {
		return err
	}
	field := NewField(cfg, palette, s.rng)
	if err := field.Init(float64(s.viewW), float64(s.viewH)); err != nil {
		return err
	}
	s.Config = cfg
	s.Field = field
	s.setBackdrop(cfg.Backdrop)
	return nil
}

func (s *Simulation) setBackdrop(on bool) {
	s.Config.Backdrop = on
	if !on {
		s.Backdrop = nil
		return
	}
	if s.Backdrop == nil {
		s.Backdrop = NewBackdrop(s.rng.Int63())
	}
}

// Update is called once per frame by ebiten
func (s *Simulation) Update() error {
	// Resize lands at the frame boundary as a full rebuild
	rebuilt, err := s.Field.Resize(float64(s.viewW), float64(s.viewH))
	if err != nil {
		return fmt.Errorf("rebuild field: %w", err)
	}
	if rebuilt {
		log.Printf("viewport %dx%d, field rebuilt with %d particles", s.viewW, s.viewH, len(s.Field.Particles))
	}

	s.handleInput()

	if s.Paused {
		return nil
	}
	s.Field.Step(s.Pointer)
	if s.Backdrop != nil {
		s.Backdrop.Advance()
	}
	return nil
}

// Draw is called each frame by ebiten
func (s *Simulation) Draw(screen *ebiten.Image) {
	surface := &ebitenSurface{img: screen}
	if s.Backdrop != nil {
		surface.background = s.Backdrop.Color()
	}
	surface.Clear()
	s.Field.Draw(surface)

	if s.ShowHUD {
		status := fmt.Sprintf("particles: %d  fps: %.0f", len(s.Field.Particles), ebiten.ActualFPS())
		if s.Paused {
			status += "  [paused]"
		}
		ebitenutil.DebugPrintAt(screen, status, 8, 8)
	}
}

// Layout tracks the window size; the field follows it on the next Update
func (s *Simulation) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		s.viewW, s.viewH = outsideWidth, outsideHeight
	}
	return s.viewW, s.viewH
}

// handleInput processes keyboard and mouse input
func (s *Simulation) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.Paused = !s.Paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := s.Field.Init(float64(s.viewW), float64(s.viewH)); err != nil {
			log.Printf("respawn: %v", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		s.ShowHUD = !s.ShowHUD
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		s.setBackdrop(s.Backdrop == nil)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		s.saveConfig()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		s.loadConfig()
	}

	mx, my := ebiten.CursorPosition()
	s.trackPointer(mx, my, ebiten.IsFocused())
}

// trackPointer records the cursor. Ebiten reports (0, 0) before the cursor
// has ever entered the window, so the origin only counts once the window
// has focus or the pointer was already seen.
func (s *Simulation) trackPointer(mx, my int, focused bool) {
	if mx != 0 || my != 0 || focused || s.Pointer.Valid {
		s.Pointer.MoveTo(float64(mx), float64(my))
	}
}

func (s *Simulation) saveConfig() {
	if err := s.Config.Save(s.ConfigPath); err != nil {
		log.Printf("save: %v", err)
		return
	}
	log.Printf("config saved to %s", s.ConfigPath)
}

func (s *Simulation) loadConfig() {
	cfg, err := LoadConfig(s.ConfigPath)
	if err != nil {
		log.Printf("load: %v", err)
		return
	}
	if err := s.apply(cfg); err != nil {
		log.Printf("load %s: %v", s.ConfigPath, err)
		return
	}
	log.Printf("config loaded from %s", s.ConfigPath)
}
