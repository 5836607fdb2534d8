//go:build raylib

// Package raylib is an alternate window driver on raylib (cgo). Build with
// -tags raylib to register it.
package raylib

import (
	"fmt"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/vovakirdan/spider-dash/internal/core"
	"github.com/vovakirdan/spider-dash/internal/games/spiderdash"
	"github.com/vovakirdan/spider-dash/internal/registry"
)

// Driver opens a raylib window.
type Driver struct{}

var _ registry.Driver = (*Driver)(nil)

func init() {
	registry.Register("raylib", func() registry.Driver { return &Driver{} })
}

var keys = map[string]int32{
	"space": rl.KeySpace,
	"up":    rl.KeyUp,
	"w":     rl.KeyW,
	"enter": rl.KeyEnter,
}

// Name implements registry.Driver.
func (d *Driver) Name() string { return "raylib" }

// Description implements registry.Driver.
func (d *Driver) Description() string { return "raylib window (cgo)" }

// Run implements registry.Driver.
func (d *Driver) Run(opts registry.Options) error {
	if opts.Assets == nil {
		return fmt.Errorf("raylib: no textures loaded")
	}
	cfg := opts.Config
	logger := opts.Log()

	geom := opts.Assets.Geometry()
	if err := geom.Validate(); err != nil {
		return fmt.Errorf("raylib: %w", err)
	}

	jumpKey, ok := keys[strings.ToLower(cfg.Controls.Jump)]
	if !ok {
		return fmt.Errorf("raylib: unsupported jump key %q", cfg.Controls.Jump)
	}

	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), cfg.Window.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Window.TickRate))

	// Textures can only be created once the GL context exists.
	player := rl.LoadTextureFromImage(rl.NewImageFromImage(opts.Assets.Player))
	defer rl.UnloadTexture(player)
	enemy := rl.LoadTextureFromImage(rl.NewImageFromImage(opts.Assets.Enemy))
	defer rl.UnloadTexture(enemy)
	var layers []rl.Texture2D
	for _, img := range opts.Assets.Layers() {
		tex := rl.LoadTextureFromImage(rl.NewImageFromImage(img))
		defer rl.UnloadTexture(tex)
		layers = append(layers, tex)
	}

	game := spiderdash.New(cfg)
	game.Reset(geom)
	logger.Info("window opened", "driver", d.Name(), "size", fmt.Sprintf("%dx%d", cfg.Window.Width, cfg.Window.Height))

	for !rl.WindowShouldClose() {
		in := core.NewInputFrame()
		if rl.IsKeyPressed(jumpKey) {
			in.Set(core.ActionJump)
		}

		res := game.Step(in, float64(rl.GetFrameTime()))
		if res.Transition.Changed() {
			logger.Debug("phase changed", "from", res.Transition.From, "to", res.Transition.To, "score", res.State.Score)
		}

		snap := game.Snapshot()
		rl.BeginDrawing()
		rl.ClearBackground(core.Background)
		if snap.ShowWorld() {
			for i, layer := range snap.Layers {
				a, b := layer.Copies()
				rl.DrawTextureEx(layers[i], rl.NewVector2(float32(a), 0), 0, float32(snap.Scale), rl.White)
				rl.DrawTextureEx(layers[i], rl.NewVector2(float32(b), 0), 0, float32(snap.Scale), rl.White)
			}
			for _, e := range snap.Enemies {
				rl.DrawTextureRec(enemy, rect(e.Src), rl.NewVector2(float32(e.X), float32(e.Y)), rl.White)
			}
			rl.DrawTextureRec(player, rect(snap.Player.Src), rl.NewVector2(float32(snap.Player.X), float32(snap.Player.Y)), rl.White)
		}
		for _, l := range snap.Labels {
			rl.DrawText(l.Text, int32(l.X), int32(l.Y), int32(l.Size), l.Color.RGBA())
		}
		rl.EndDrawing()
	}

	logger.Info("window closed", "high", game.State().HighScore)
	return nil
}

func rect(r core.Rect) rl.Rectangle {
	return rl.NewRectangle(float32(r.X), float32(r.Y), float32(r.W), float32(r.H))
}
