package game

import "image/color"

// Tuning constants for the player car.
const (
	carAcceleration = 0.06 // px/tick/tick added per accelerating tick
	carBraking      = 0.05 // px/tick/tick removed per braking tick
	carHandling     = 4.0  // degrees turned per turning tick
	carFriction     = 0.02
	carWidth        = 50
	carHeight       = 28
)

// ControlSignals is one tick's worth of driving input. Physics consumes
// this record; where it comes from (keyboard, script, test) is the
// control source's business.
type ControlSignals struct {
	Accelerate bool
	Brake      bool
	TurnLeft   bool
	TurnRight  bool
}

// ControlSource produces the control signals for the current tick. It is
// sampled exactly once per tick-bearing frame.
type ControlSource interface {
	Signals() ControlSignals
}

// ControlSourceFunc adapts a plain function to a ControlSource.
type ControlSourceFunc func() ControlSignals

// Signals calls f.
func (f ControlSourceFunc) Signals() ControlSignals { return f() }

// ControlledCar is an entity driven by an external control source with
// car-specific tuning. With no source attached it coasts.
type ControlledCar struct {
	Entity

	Acceleration float64
	Braking      float64
	Handling     float64
	Controls     ControlSource
}

// NewControlledCar creates a drivable car at pos with a procedurally
// drawn sprite. Sprite and handling constants follow the stock blue car.
func NewControlledCar(pos Vec, controls ControlSource) *ControlledCar {
	sprite := NewCarSurface(carWidth, carHeight, color.RGBA{R: 58, G: 112, B: 214, A: 255})
	ent, err := NewEntity(pos, LayerCar, sprite, Scale{})
	if err != nil {
		// Only reachable with a broken sprite constant.
		panic(err)
	}
	ent.Friction = carFriction
	return &ControlledCar{
		Entity:       *ent,
		Acceleration: carAcceleration,
		Braking:      carBraking,
		Handling:     carHandling,
		Controls:     controls,
	}
}

// Update integrates physics, then applies this tick's control signals.
func (c *ControlledCar) Update(tick bool) {
	c.Entity.Update(tick)
	if !tick || c.Controls == nil {
		return
	}
	s := c.Controls.Signals()
	if s.Accelerate {
		c.Accelerate(c.Acceleration)
	}
	if s.Brake {
		c.Brake(c.Braking)
	}
	if s.TurnRight {
		c.Turn(c.Handling)
	}
	if s.TurnLeft {
		c.Turn(-c.Handling)
	}
}

// NPCCar is a car without a driver. Path is the route it is meant to
// follow; route following is not implemented and the field stays dormant.
type NPCCar struct {
	Entity

	Path []Vec
}

// NewNPCCar creates an undriven car at pos with the given body colour.
func NewNPCCar(pos Vec, body color.RGBA) *NPCCar {
	sprite := NewCarSurface(carWidth, carHeight, body)
	ent, err := NewEntity(pos, LayerCar, sprite, Scale{})
	if err != nil {
		panic(err)
	}
	ent.Friction = carFriction
	return &NPCCar{Entity: *ent}
}
