package gui

import (
	"errors"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/trajview/trajview/internal/camera"
	"github.com/trajview/trajview/internal/config"
	"github.com/trajview/trajview/internal/loader"
	"github.com/trajview/trajview/internal/player"
	"github.com/trajview/trajview/internal/scene"
	"github.com/trajview/trajview/internal/traj"
)

// ErrWindowNotReady indicates NewViewer was called before InitWindow.
var ErrWindowNotReady = errors.New("gui: window not initialized (call InitWindow before NewViewer)")

// Monochrome theme, dark background with soft white particles.
var (
	colBg      = rl.NewColor(10, 10, 10, 255)
	colSelect  = rl.NewColor(255, 255, 255, 255)
	colText    = rl.NewColor(140, 140, 140, 255)
	colTextDim = rl.NewColor(60, 60, 60, 255)
)

// fpsCaps are the playback rate limits the F key cycles through.
// 0 means one frame per render tick.
var fpsCaps = []int{0, 5, 15, 30, 60}

// InitWindow opens the raylib window. Must run on the main thread
// before any Viewer is constructed.
func InitWindow(cfg *config.Config) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(cfg.WindowWidth), int32(cfg.WindowHeight), "trajview")
	rl.SetTargetFPS(int32(cfg.TargetFPS))
	rl.SetExitKey(0)
}

// Viewer renders a trajectory and reacts to input.
type Viewer struct {
	cfg     *config.Config
	trajDir string
	tr      *traj.Trajectory

	sc  *scene.Scene
	cam *camera.Camera
	ctl *camera.Controller
	ld  *loader.Loader
	pl  *player.Player

	// Particle layer cached between changes; the HUD is cheap and drawn
	// fresh every tick.
	sceneTex rl.RenderTexture2D

	// Set by the loader worker and by input handling; drained by draw.
	redraw atomic.Bool

	quit bool
}

// NewViewer wires scene, camera, loader and player for one trajectory.
func NewViewer(tr *traj.Trajectory, dir string, cfg *config.Config) (*Viewer, error) {
	if !rl.IsWindowReady() {
		return nil, ErrWindowNotReady
	}

	v := &Viewer{cfg: cfg, trajDir: dir, tr: tr}
	v.cam = camera.New()
	v.cam.Resize(rl.GetScreenWidth(), rl.GetScreenHeight())
	v.cam.FitBounds(tr.Positions(0))
	v.ctl = camera.NewController(v.cam)
	v.sceneTex = rl.LoadRenderTexture(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()))
	v.attach(tr)
	return v, nil
}

// attach points the viewer at a trajectory, replacing the scene, loader
// and player. The previous loader, if any, is joined first so no worker
// outlives its scene.
func (v *Viewer) attach(tr *traj.Trajectory) {
	if v.ld != nil {
		v.ld.Close()
	}
	v.tr = tr
	v.sc = scene.New(tr)
	v.ld = loader.New(v.sc, func(int) { v.redraw.Store(true) })
	v.pl = player.New(tr.NumFrames(), v.ld.Request)
	v.pl.SetFPSCap(v.cfg.PlaybackFPS)
	v.ld.Start()
	v.pl.Goto(0)
}

// Run drives the viewer until the window closes or the user quits.
func (v *Viewer) Run() {
	for !v.quit && !rl.WindowShouldClose() {
		v.handleInput()
		v.update()
		v.draw()
	}
	v.close()
}

func (v *Viewer) handleInput() {
	now := time.Now()

	if rl.IsWindowResized() {
		v.cam.Resize(rl.GetScreenWidth(), rl.GetScreenHeight())
		rl.UnloadRenderTexture(v.sceneTex)
		v.sceneTex = rl.LoadRenderTexture(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()))
		v.redraw.Store(true)
	}

	mouse := rl.GetMousePosition()
	pos := scene.Vec2{X: float64(mouse.X), Y: float64(mouse.Y)}
	switch {
	case rl.IsMouseButtonPressed(rl.MouseLeftButton):
		v.ctl.Press(pos, now)
	case rl.IsMouseButtonDown(rl.MouseLeftButton):
		if v.ctl.Move(pos, now) {
			v.redraw.Store(true)
		}
	case rl.IsMouseButtonReleased(rl.MouseLeftButton):
		v.ctl.Release(now)
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		precise := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)
		if v.ctl.Wheel(float64(wheel)*120, precise) {
			v.redraw.Store(true)
		}
	}

	switch {
	case rl.IsKeyPressed(rl.KeySpace):
		v.pl.TogglePlaying()
	case rl.IsKeyPressed(rl.KeyRight):
		v.pl.Next()
	case rl.IsKeyPressed(rl.KeyLeft):
		v.pl.Prev()
	case rl.IsKeyPressed(rl.KeyHome):
		v.pl.First()
	case rl.IsKeyPressed(rl.KeyEnd):
		v.pl.Last()
	case rl.IsKeyPressed(rl.KeyF):
		v.cycleFPSCap()
	case rl.IsKeyPressed(rl.KeyO):
		v.openDialog()
	case rl.IsKeyPressed(rl.KeyQ), rl.IsKeyPressed(rl.KeyEscape):
		v.quit = true
	}
}

func (v *Viewer) cycleFPSCap() {
	cur := v.pl.FPSCap()
	for i, limit := range fpsCaps {
		if limit == cur {
			v.pl.SetFPSCap(fpsCaps[(i+1)%len(fpsCaps)])
			return
		}
	}
	v.pl.SetFPSCap(fpsCaps[0])
}

func (v *Viewer) openDialog() {
	dir, err := OpenTrajectoryDialog()
	if err != nil || dir == "" {
		return
	}
	tr, err := traj.Load(dir)
	if err != nil {
		log.Printf("gui: %v", err)
		return
	}
	v.trajDir = dir
	v.attach(tr)
	v.cam.FitBounds(tr.Positions(0))
	v.redraw.Store(true)
}

func (v *Viewer) update() {
	now := time.Now()
	// The controller only does work while panning inertia is live; at
	// Idle this is a no-op, not a poll.
	if v.ctl.Active() {
		if v.ctl.Tick(now) {
			v.redraw.Store(true)
		}
	}
	v.pl.Advance(now)
}

func (v *Viewer) draw() {
	if v.redraw.Swap(false) {
		v.renderScene()
	}

	w, h := rl.GetScreenWidth(), rl.GetScreenHeight()

	rl.BeginDrawing()
	rl.ClearBackground(colBg)
	// Render textures are y-flipped; the negative source height undoes it.
	rl.DrawTextureRec(v.sceneTex.Texture,
		rl.NewRectangle(0, 0, float32(v.sceneTex.Texture.Width), -float32(v.sceneTex.Texture.Height)),
		rl.NewVector2(0, 0), rl.White)
	v.drawHUD(w, h)
	rl.EndDrawing()
}

// renderScene redraws the particle layer into the cached texture. Runs
// on the render loop only; the loader worker merely raises the redraw
// flag.
func (v *Viewer) renderScene() {
	w, h := rl.GetScreenWidth(), rl.GetScreenHeight()

	rl.BeginTextureMode(v.sceneTex)
	rl.ClearBackground(colBg)
	if f := v.sc.Snapshot(); f != nil {
		radius := float32(v.cfg.PointSize)
		for i, p := range f.Positions {
			sx, sy := v.cam.ToScreen(p, w, h)
			if sx < -8 || sx > float64(w)+8 || sy < -8 || sy > float64(h)+8 {
				continue
			}
			rl.DrawCircleV(rl.NewVector2(float32(sx), float32(sy)), radius, v.particleColor(f, i))
		}
	}
	rl.EndTextureMode()
}

func (v *Viewer) particleColor(f *scene.Frame, i int) rl.Color {
	if !v.cfg.ColorBySpeed || i >= len(f.Speeds) {
		return colSelect
	}
	val := 140 + f.Speeds[i]*20
	if val > 255 {
		val = 255
	}
	return rl.NewColor(uint8(val), uint8(val), uint8(val), 255)
}

func (v *Viewer) drawHUD(w, h int) {
	rl.DrawText("trajview", 20, 20, 20, colSelect)
	rl.DrawText(fmt.Sprintf(":: %s", v.tr.Meta.Name), 120, 24, 16, colText)

	frame := v.sc.CurrentIndex()
	rl.DrawText(fmt.Sprintf("frame %d / %d", frame, v.tr.NumFrames()-1), 20, 48, 16, colText)

	status := "PLAYING"
	col := colSelect
	if !v.pl.Playing() {
		status = "PAUSED"
		col = colTextDim
	}
	rl.DrawText(status, int32(w-120), 20, 16, col)

	rate := "max"
	if v.pl.FPSCap() > 0 {
		rate = fmt.Sprintf("%d fps", v.pl.FPSCap())
	}
	rl.DrawText(fmt.Sprintf("playback %s", rate), int32(w-120), 44, 14, colTextDim)

	rl.DrawText("[SPACE] PLAY  [←/→] STEP  [HOME/END] JUMP  [F] RATE  [O] OPEN  [Q] QUIT",
		20, int32(h-30), 14, colTextDim)
	rl.DrawText(fmt.Sprintf("%d FPS", rl.GetFPS()), int32(w-80), int32(h-30), 14, colTextDim)
}

// close tears the viewer down in dependency order: playback stops, the
// loader worker is joined, GPU resources are freed, and only then may
// the caller destroy the window and its graphics context.
func (v *Viewer) close() {
	v.pl.SetPlaying(false)
	v.ld.Close()
	rl.UnloadRenderTexture(v.sceneTex)

	store := config.OpenSessionStore()
	store.Save(&config.Session{
		LastTrajectory: v.trajDir,
		WindowWidth:    rl.GetScreenWidth(),
		WindowHeight:   rl.GetScreenHeight(),
		PlaybackFPS:    v.pl.FPSCap(),
	})
}

// Run opens a trajectory directory in a new window and blocks until the
// viewer exits.
func Run(dir string, cfg *config.Config) error {
	tr, err := traj.Load(dir)
	if err != nil {
		return err
	}

	InitWindow(cfg)
	defer rl.CloseWindow()

	v, err := NewViewer(tr, dir, cfg)
	if err != nil {
		return err
	}
	v.Run()
	return nil
}
