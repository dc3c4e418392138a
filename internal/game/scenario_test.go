package game

import (
	"image/color"
	"math"
	"testing"
)

func carBodyRed() color.RGBA {
	return color.RGBA{R: 180, G: 30, B: 30, A: 255}
}

func TestScenario_StraightDrive(t *testing.T) {
	sim := NewSim(
		WithWorldSize(2, 2),
		WithCheckerTile(0, 0),
		WithCar(100, 100),
		WithScript(ScriptPhase{Name: "accelerate", Ticks: 60, Signals: ControlSignals{Accelerate: true}}),
	)
	sim.Step(60)

	snap := sim.Snapshot()
	if snap.X <= 100 {
		t.Fatalf("car did not advance east: %+v", snap)
	}
	if !almost(snap.Y, 100) {
		t.Fatalf("straight drive drifted to Y=%f", snap.Y)
	}
	if snap.Heading != 0 {
		t.Fatalf("heading changed to %f", snap.Heading)
	}
	if snap.Speed <= 0 {
		t.Fatalf("car should still be moving, speed %f", snap.Speed)
	}
}

func TestScenario_TurnChangesHeading(t *testing.T) {
	sim := NewSim(
		WithCar(100, 100),
		WithScript(
			ScriptPhase{Name: "launch", Ticks: 30, Signals: ControlSignals{Accelerate: true}},
			ScriptPhase{Name: "turn", Ticks: 30, Signals: ControlSignals{Accelerate: true, TurnRight: true}},
		),
	)
	sim.Step(60)

	snap := sim.Snapshot()
	if snap.Heading != 30*4 {
		t.Fatalf("heading = %f, want 120 after 30 right-turn ticks", snap.Heading)
	}
	// Turning right (clockwise, y down) pulls the car downward.
	if snap.Y <= 100 {
		t.Fatalf("right turn should increase Y, got %f", snap.Y)
	}
}

func TestScenario_CoastToRest(t *testing.T) {
	sim := NewSim(
		WithCar(100, 100),
		WithScript(ScriptPhase{Name: "launch", Ticks: 30, Signals: ControlSignals{Accelerate: true}}),
	)
	sim.Step(30)
	if sim.Snapshot().Speed == 0 {
		t.Fatal("car should be moving after launch")
	}

	// Coast: friction alone must bring the car to a complete stop.
	for i := 0; i < 5000 && sim.Car.Velocity.Len() > 0; i++ {
		sim.Step(1)
	}
	if sim.Car.Velocity != (Vec{}) {
		t.Fatalf("car never came to rest: %+v", sim.Car.Velocity)
	}
	rest := sim.Snapshot()
	sim.Step(10)
	after := sim.Snapshot()
	if rest.X != after.X || rest.Y != after.Y {
		t.Fatal("car crept after coming to rest")
	}
}

func TestScenario_BrakingStopsFasterThanCoasting(t *testing.T) {
	launch := ScriptPhase{Name: "launch", Ticks: 60, Signals: ControlSignals{Accelerate: true}}

	coast := NewSim(WithCar(100, 100), WithScript(launch))
	coast.Step(60)
	coastTicks := 0
	for coast.Car.Velocity.Len() > 0 && coastTicks < 5000 {
		coast.Step(1)
		coastTicks++
	}

	braking := NewSim(WithCar(100, 100), WithScript(
		launch,
		ScriptPhase{Name: "brake", Ticks: 5000, Signals: ControlSignals{Brake: true}},
	))
	braking.Step(60)
	brakeTicks := 0
	for braking.Car.Velocity.Len() > 0 && brakeTicks < 5000 {
		braking.Step(1)
		brakeTicks++
	}

	if brakeTicks >= coastTicks {
		t.Fatalf("braking (%d ticks) should stop sooner than coasting (%d)", brakeTicks, coastTicks)
	}
}

func TestScenario_CarsCollide(t *testing.T) {
	sim := NewSim(WithCar(100, 100))
	npc := NewNPCCar(Vec{X: 110, Y: 100}, carBodyRed())
	sim.World.AddObject(npc)
	sim.World.Update(false)

	if !sim.Car.CollidesWith(&npc.Entity) {
		t.Fatal("overlapping cars on the car layer must collide")
	}
	if !npc.CollidesWith(&sim.Car.Entity) {
		t.Fatal("collision must be symmetric")
	}

	far := NewNPCCar(Vec{X: 400, Y: 400}, carBodyRed())
	if sim.Car.CollidesWith(&far.Entity) {
		t.Fatal("distant cars must not collide")
	}
}

func TestScenario_DriveIntoParkedCar(t *testing.T) {
	sim := NewSim(
		WithCar(100, 100),
		WithScript(ScriptPhase{Name: "ram", Ticks: 2000, Signals: ControlSignals{Accelerate: true}}),
	)
	parked := NewNPCCar(Vec{X: 400, Y: 86}, carBodyRed())
	sim.World.AddObject(parked)

	hit := false
	for i := 0; i < 2000; i++ {
		sim.Step(1)
		if sim.Car.CollidesWith(&parked.Entity) {
			hit = true
			break
		}
	}
	if !hit {
		t.Fatal("eastbound car never reached the parked car")
	}
	// Detection only: nothing stopped the car.
	if sim.Car.Velocity.Len() == 0 {
		t.Fatal("collision must not carry a response")
	}
}

func TestScenario_CameraTracksLap(t *testing.T) {
	sim := NewSim(
		WithWorldSize(3, 3),
		WithCheckerTile(0, 0),
		WithCheckerTile(1, 0),
		WithCheckerTile(1, 1),
		WithCar(200, 200),
		WithCamera(400, 300, 0.1),
		WithScript(
			ScriptPhase{Name: "launch", Ticks: 120, Signals: ControlSignals{Accelerate: true}},
			ScriptPhase{Name: "loop", Ticks: 90, Signals: ControlSignals{Accelerate: true, TurnRight: true}},
		),
	)
	sim.Step(210)

	// 90 ticks of 4 degrees is a full revolution.
	if h := math.Mod(sim.Snapshot().Heading, 360); h != 0 {
		t.Fatalf("heading after full loop = %f, want multiple of 360", h)
	}
	// The camera stayed glued to the car within a viewport.
	gap := sim.Car.TruePos.Sub(sim.Camera.Pos).Len()
	if gap > 400 {
		t.Fatalf("camera lost the car: gap %f", gap)
	}
	// And the frame always extracts at viewport size.
	if b := sim.Camera.Frame().Bounds(); b.Dx() != 400 || b.Dy() != 300 {
		t.Fatalf("frame %dx%d, want 400x300", b.Dx(), b.Dy())
	}
}

func TestScripted_PhaseSequencing(t *testing.T) {
	sc := NewScriptedControls(
		ScriptPhase{Name: "a", Ticks: 2, Signals: ControlSignals{Accelerate: true}},
		ScriptPhase{Name: "b", Ticks: 1, Signals: ControlSignals{Brake: true}},
	)
	want := []ControlSignals{
		{Accelerate: true},
		{Accelerate: true},
		{Brake: true},
		{}, // script exhausted
		{},
	}
	for i, w := range want {
		if got := sc.Signals(); got != w {
			t.Fatalf("tick %d: signals = %+v, want %+v", i, got, w)
		}
		sc.advance()
	}
}
