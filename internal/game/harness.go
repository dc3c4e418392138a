package game

import (
	"fmt"
	"image/color"
)

// Sim is a headless simulation harness used by tests and the
// headless-drive CLI. It mirrors the App loop but has no Ebitengine
// dependency: every Step is one tick-bearing frame.
type Sim struct {
	World  *World
	Camera *Camera
	Car    *ControlledCar
	Tick   int

	script *ScriptedControls
}

// ScriptPhase holds one stretch of constant driving input.
type ScriptPhase struct {
	Name    string
	Ticks   int
	Signals ControlSignals
}

// ScriptedControls replays a fixed sequence of script phases, one
// signals record per tick. After the last phase it reports no input.
type ScriptedControls struct {
	phases []ScriptPhase
	tick   int
}

// NewScriptedControls builds a control source from the given phases.
func NewScriptedControls(phases ...ScriptPhase) *ScriptedControls {
	return &ScriptedControls{phases: phases}
}

// Signals returns the current phase's signals.
func (sc *ScriptedControls) Signals() ControlSignals {
	t := sc.tick
	for _, p := range sc.phases {
		if t < p.Ticks {
			return p.Signals
		}
		t -= p.Ticks
	}
	return ControlSignals{}
}

// advance moves the script to the next tick.
func (sc *ScriptedControls) advance() {
	sc.tick++
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptWorld  simOptionKind = iota // grid size, tiles; applied first
	simOptCar                         // player car; applied after the world exists
	simOptScript                      // drive script and camera; applied last
)

// SimOption is a builder function applied to a Sim during construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*Sim)
}

// WithWorldSize sets the initial tile grid dimensions.
func WithWorldSize(cols, rows int) SimOption {
	return SimOption{simOptWorld, func(s *Sim) {
		s.World = NewWorld(cols, rows)
	}}
}

// WithCheckerTile places a checkerboard tile at (col, row).
func WithCheckerTile(col, row int) SimOption {
	return SimOption{simOptWorld, func(s *Sim) {
		t := NewTile(NewCheckerSurface(TileSize, 10,
			color.RGBA{R: 70, G: 70, B: 74, A: 255},
			color.RGBA{R: 88, G: 88, B: 92, A: 255}))
		if err := s.World.AddTile(t, col, row); err != nil {
			panic(err)
		}
	}}
}

// WithCar places the player car at (x, y).
func WithCar(x, y float64) SimOption {
	return SimOption{simOptCar, func(s *Sim) {
		s.Car = NewControlledCar(Vec{X: x, Y: y}, nil)
		s.World.AddObject(s.Car)
	}}
}

// WithCamera sets the camera viewport and smoothing; the camera starts
// on the car and follows it.
func WithCamera(viewW, viewH int, smoothing float64) SimOption {
	return SimOption{simOptScript, func(s *Sim) {
		s.Camera = NewCamera(s.World, viewW, viewH, s.Car.TruePos, s.Car, smoothing)
	}}
}

// WithScript attaches a drive script to the car.
func WithScript(phases ...ScriptPhase) SimOption {
	return SimOption{simOptScript, func(s *Sim) {
		s.script = NewScriptedControls(phases...)
		s.Car.Controls = s.script
	}}
}

// NewSim builds a harness. Defaults: a 2x2 world, the car at (100, 100),
// a 700x500 camera following it with smoothing 0.1. Options apply in
// kind order so tiles land on a sized world and scripts on an existing
// car, regardless of argument order.
func NewSim(opts ...SimOption) *Sim {
	s := &Sim{}
	for _, o := range opts {
		if o.kind == simOptWorld {
			if s.World == nil {
				s.World = NewWorld(2, 2)
			}
			o.fn(s)
		}
	}
	if s.World == nil {
		s.World = NewWorld(2, 2)
	}
	carSet := false
	for _, o := range opts {
		if o.kind == simOptCar {
			o.fn(s)
			carSet = true
		}
	}
	if !carSet {
		s.Car = NewControlledCar(Vec{X: 100, Y: 100}, nil)
		s.World.AddObject(s.Car)
	}
	for _, o := range opts {
		if o.kind == simOptScript {
			o.fn(s)
		}
	}
	if s.Camera == nil {
		s.Camera = NewCamera(s.World, 700, 500, s.Car.TruePos, s.Car, 0.1)
	}
	s.World.Update(false)
	return s
}

// Step runs n tick-bearing frames.
func (s *Sim) Step(n int) {
	for i := 0; i < n; i++ {
		s.Tick++
		s.World.Update(true)
		s.Camera.Update()
		if s.script != nil {
			s.script.advance()
		}
	}
}

// DriveStats is a telemetry snapshot of the player car.
type DriveStats struct {
	Tick    int
	X, Y    float64
	Speed   float64
	Heading float64
}

// Snapshot captures the car's current state.
func (s *Sim) Snapshot() DriveStats {
	return DriveStats{
		Tick:    s.Tick,
		X:       s.Car.TruePos.X,
		Y:       s.Car.TruePos.Y,
		Speed:   s.Car.Velocity.Len(),
		Heading: s.Car.Angle,
	}
}

// String formats a snapshot as one report line.
func (d DriveStats) String() string {
	return fmt.Sprintf("tick %5d  pos (%8.2f, %8.2f)  speed %6.3f  heading %7.2f",
		d.Tick, d.X, d.Y, d.Speed, d.Heading)
}
