package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/torvale/driftworld/internal/game"
)

func main() {
	var accelTicks int
	var coastTicks int
	var turnTicks int
	var brakeTicks int
	var turnLeft bool
	var copyReport bool

	flag.IntVar(&accelTicks, "accel", 120, "ticks spent accelerating")
	flag.IntVar(&coastTicks, "coast", 60, "ticks spent coasting")
	flag.IntVar(&turnTicks, "turn", 45, "ticks spent turning while accelerating")
	flag.IntVar(&brakeTicks, "brake", 90, "ticks spent braking")
	flag.BoolVar(&turnLeft, "left", false, "turn left instead of right")
	flag.BoolVar(&copyReport, "copy", false, "copy the report to the clipboard")
	flag.Parse()

	phases := []game.ScriptPhase{
		{Name: "accelerate", Ticks: accelTicks, Signals: game.ControlSignals{Accelerate: true}},
		{Name: "coast", Ticks: coastTicks},
		{Name: "turn", Ticks: turnTicks, Signals: game.ControlSignals{
			Accelerate: true, TurnLeft: turnLeft, TurnRight: !turnLeft,
		}},
		{Name: "brake", Ticks: brakeTicks, Signals: game.ControlSignals{Brake: true}},
	}

	sim := game.NewSim(
		game.WithWorldSize(5, 5),
		game.WithCheckerTile(0, 0),
		game.WithCheckerTile(0, 1),
		game.WithCheckerTile(1, 0),
		game.WithCheckerTile(1, 1),
		game.WithCheckerTile(2, 0),
		game.WithCar(100, 100),
		game.WithCamera(700, 500, 0.1),
		game.WithScript(phases...),
	)

	var b strings.Builder
	fmt.Fprintf(&b, "driftworld headless drive\n")
	fmt.Fprintf(&b, "%s  (start)\n", sim.Snapshot())
	for _, p := range phases {
		sim.Step(p.Ticks)
		fmt.Fprintf(&b, "%s  (after %s)\n", sim.Snapshot(), p.Name)
	}

	// Settle: run until friction stops the car.
	settled := 0
	for sim.Car.Velocity.Len() > 0 && settled < 100000 {
		sim.Step(1)
		settled++
	}
	fmt.Fprintf(&b, "%s  (at rest after %d settle ticks)\n", sim.Snapshot(), settled)

	report := b.String()
	fmt.Print(report)
	if copyReport {
		if err := clipboard.WriteAll(report); err != nil {
			fmt.Printf("clipboard copy failed: %v\n", err)
		}
	}
}
