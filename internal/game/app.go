package game

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// speedBarScale is how many pixels of speedometer bar one px/tick of
// speed is worth.
const speedBarScale = 30

// keyboardControls samples the arrow keys as driving input.
type keyboardControls struct{}

func (keyboardControls) Signals() ControlSignals {
	return ControlSignals{
		Accelerate: ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Brake:      ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		TurnLeft:   ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		TurnRight:  ebiten.IsKeyPressed(ebiten.KeyArrowRight),
	}
}

// App is the Ebitengine shell around the simulation: it owns the real
// clock, feeds elapsed time to the ticker, forwards window resizes to
// the camera and presents the camera frame.
type App struct {
	world  *World
	camera *Camera
	player *ControlledCar
	ticker *Ticker

	lastFrame time.Time
	frame     *ebiten.Image // reused blit target for the camera frame

	showHUD  bool
	prevKeyH bool
}

// NewApp builds the demo world: a 2x3 patch of checkered tiles inside a
// 5x5 grid (unset cells show the fallback tile), the player car and a
// camera following it.
func NewApp() *App {
	world := NewWorld(5, 5)
	dark := color.RGBA{R: 70, G: 70, B: 74, A: 255}
	light := color.RGBA{R: 88, G: 88, B: 92, A: 255}
	for _, cell := range [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}, {2, 0}} {
		t := NewTile(NewCheckerSurface(TileSize, 10, dark, light))
		if err := world.AddTile(t, cell[0], cell[1]); err != nil {
			panic(err)
		}
	}

	player := NewControlledCar(Vec{X: 100, Y: 100}, keyboardControls{})
	world.AddObject(player)

	return &App{
		world:   world,
		camera:  NewCamera(world, 700, 500, Vec{X: 100, Y: 100}, player, 0.1),
		player:  player,
		ticker:  NewTicker(DefaultTPS),
		showHUD: true,
	}
}

func (a *App) Update() error {
	now := time.Now()
	var elapsedMs float64
	if !a.lastFrame.IsZero() {
		elapsedMs = float64(now.Sub(a.lastFrame).Microseconds()) / 1000
	}
	a.lastFrame = now

	// H: toggle HUD (edge-triggered).
	keyH := ebiten.IsKeyPressed(ebiten.KeyH)
	if keyH && !a.prevKeyH {
		a.showHUD = !a.showHUD
	}
	a.prevKeyH = keyH

	tick := a.ticker.Advance(elapsedMs)
	a.world.Update(tick)
	a.camera.Update()
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	frame := a.camera.Frame()
	w, h := frame.Bounds().Dx(), frame.Bounds().Dy()
	if a.frame == nil || a.frame.Bounds().Dx() != w || a.frame.Bounds().Dy() != h {
		a.frame = ebiten.NewImage(w, h)
	}
	a.frame.WritePixels(frame.Pix)
	screen.DrawImage(a.frame, nil)

	if a.showHUD {
		speed := a.player.Velocity.Len()
		ebitenutil.DebugPrintAt(screen,
			fmt.Sprintf("speed %5.2f  heading %6.1f  [H] hud", speed, a.player.Angle), 8, 8)
		vector.DrawFilledRect(screen, 8, 28, float32(speed*speedBarScale), 6,
			color.RGBA{R: 240, G: 200, B: 60, A: 220}, false)
	}
}

// Layout matches the backbuffer to the window and keeps the camera
// viewport in step with resizes.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if vw, vh := a.camera.Viewport(); vw != outsideWidth || vh != outsideHeight {
		a.camera.SetViewport(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
