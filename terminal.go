package main

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
)

// Terminal cell footprint in field units
const (
	termCellW      = 12.0
	termCellH      = 24.0
	termFrameDelay = 16 * time.Millisecond // ~60 FPS
	termOutline    = 'o'
)

// termSurface rasterises circles onto terminal cells
type termSurface struct {
	screen     tcell.Screen
	cellW      float64
	cellH      float64
	background color.RGBA
}

func tcellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (s *termSurface) Clear() {
	s.screen.Fill(' ', tcell.StyleDefault.Background(tcellColor(s.background)))
}

func (s *termSurface) Circle(x, y, r float64, stroke color.RGBA, fillAlpha float64) {
	cols, rows := s.screen.Size()
	c0 := max(int((x-r)/s.cellW), 0)
	c1 := min(int((x+r)/s.cellW), cols-1)
	r0 := max(int((y-r)/s.cellH), 0)
	r1 := min(int((y+r)/s.cellH), rows-1)

	fg := tcellColor(stroke)
	bg := tcellColor(s.background)
	fill := tcellColor(blendOver(s.background, stroke, fillAlpha))

	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			outline, inside := cellCoverage(x, y, r,
				float64(col)*s.cellW, float64(row)*s.cellH,
				float64(col+1)*s.cellW, float64(row+1)*s.cellH)
			cellBG := bg
			if inside && fillAlpha > 0 {
				cellBG = fill
			}
			switch {
			case outline:
				s.screen.SetContent(col, row, termOutline, nil, tcell.StyleDefault.Foreground(fg).Background(cellBG))
			case inside && fillAlpha > 0:
				s.screen.SetContent(col, row, ' ', nil, tcell.StyleDefault.Background(cellBG))
			}
		}
	}
}

// cellCoverage reports whether the circle's edge crosses the rectangle
// [x0,x1]x[y0,y1] and whether the rectangle's center lies inside the circle
func cellCoverage(cx, cy, r, x0, y0, x1, y1 float64) (outline, inside bool) {
	// Nearest point of the rect to the center
	nx := math.Max(x0, math.Min(cx, x1))
	ny := math.Max(y0, math.Min(cy, y1))
	closest := Distance(cx, cy, nx, ny)

	// Farthest corner
	fx := x0
	if cx-x0 < x1-cx {
		fx = x1
	}
	fy := y0
	if cy-y0 < y1-cy {
		fy = y1
	}
	far := Distance(cx, cy, fx, fy)

	outline = closest <= r && r <= far
	inside = Distance(cx, cy, (x0+x1)/2, (y0+y1)/2) < r
	return outline, inside
}

// Terminal drives a Field inside a tcell screen
type Terminal struct {
	screen  tcell.Screen
	surface *termSurface
	field   *Field
	pointer Pointer
	paused  bool
}

// NewTerminal initialises the screen and populates field to fit it
func NewTerminal(field *Field) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	t, err := newTerminal(screen, field)
	if err != nil {
		screen.Fini()
		return nil, err
	}
	return t, nil
}

// newTerminal wires an initialised screen to field
func newTerminal(screen tcell.Screen, field *Field) (*Terminal, error) {
	screen.EnableMouse()
	screen.HideCursor()

	t := &Terminal{
		screen:  screen,
		surface: &termSurface{screen: screen, cellW: termCellW, cellH: termCellH},
		field:   field,
	}
	if _, err := t.resize(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Terminal) resize() (bool, error) {
	cols, rows := t.screen.Size()
	w, h := float64(cols)*t.surface.cellW, float64(rows)*t.surface.cellH
	rebuilt, err := t.field.Resize(w, h)
	if err != nil {
		return false, fmt.Errorf("rebuild field for %dx%d cells: %w", cols, rows, err)
	}
	if rebuilt {
		log.Printf("terminal %dx%d cells, field rebuilt with %d particles", cols, rows, len(t.field.Particles))
	}
	return rebuilt, nil
}

// handleEvent applies one input event. Returns false when the user quits.
func (t *Terminal) handleEvent(ev tcell.Event) (bool, error) {
	switch ev := ev.(type) {
	case nil:
		return false, nil
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
			return false, nil
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return false, nil
		case ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
			t.paused = !t.paused
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'r':
			if err := t.field.Init(t.field.Width, t.field.Height); err != nil {
				return false, err
			}
		}
	case *tcell.EventMouse:
		col, row := ev.Position()
		t.pointer.MoveTo((float64(col)+0.5)*t.surface.cellW, (float64(row)+0.5)*t.surface.cellH)
	case *tcell.EventResize:
		t.screen.Sync()
		if _, err := t.resize(); err != nil {
			return false, err
		}
	}
	return true, nil
}

// Run animates until the user quits. Events are applied between frames.
func (t *Terminal) Run() error {
	defer t.screen.Fini()

	ticker := time.NewTicker(termFrameDelay)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			eventChan <- ev
			if ev == nil {
				return
			}
		}
	}()

	log.Printf("terminal driver started")
	for {
		select {
		case ev := <-eventChan:
			running, err := t.handleEvent(ev)
			if err != nil {
				return err
			}
			if !running {
				log.Printf("terminal driver stopped")
				return nil
			}

		case <-ticker.C:
			if t.paused {
				continue
			}
			t.field.Animate(t.surface, t.pointer)
			t.screen.Show()
		}
	}
}
