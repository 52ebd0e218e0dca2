package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/collide/internal/config"
)

var (
	ColBg   = rl.NewColor(10, 10, 10, 255)    // Deep Black
	ColBody = rl.NewColor(230, 230, 230, 255) // Soft White
)

// Window implements sim.Window on top of raylib. Clear begins a frame and
// Present ends it; raylib polls input while presenting.
type Window struct {
	bg, fg rl.Color
}

// openWindow creates the raylib window. The frame rate is left uncapped.
func openWindow(cfg *config.Config) *Window {
	rl.SetTraceLogLevel(traceLevel(cfg.LogLevel))
	rl.SetConfigFlags(rl.FlagMsaa4xHint)
	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), cfg.Window.Title)
	rl.SetTargetFPS(0)
	return &Window{bg: ColBg, fg: ColBody}
}

func (w *Window) ShouldClose() bool { return rl.WindowShouldClose() }
func (w *Window) Now() float64      { return rl.GetTime() }

func (w *Window) Clear() {
	rl.BeginDrawing()
	rl.ClearBackground(w.bg)
}

func (w *Window) FillCircle(x, y, r float64) {
	rl.DrawCircleV(rl.NewVector2(float32(x), float32(y)), float32(r), w.fg)
}

func (w *Window) Present()              { rl.EndDrawing() }
func (w *Window) SetTitle(title string) { rl.SetWindowTitle(title) }
func (w *Window) Close()                { rl.CloseWindow() }

func traceLevel(name string) rl.TraceLogLevel {
	switch name {
	case "trace":
		return rl.LogTrace
	case "debug":
		return rl.LogDebug
	case "info":
		return rl.LogInfo
	case "error":
		return rl.LogError
	case "fatal":
		return rl.LogFatal
	case "none":
		return rl.LogNone
	default:
		return rl.LogWarning
	}
}
