package ebiten

import (
	"image"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/vovakirdan/spider-dash/internal/assets"
	"github.com/vovakirdan/spider-dash/internal/core"
	"github.com/vovakirdan/spider-dash/internal/games/spiderdash"
)

// textures are the asset images uploaded to the GPU.
type textures struct {
	player *ebiten.Image
	enemy  *ebiten.Image
	layers []*ebiten.Image // back to front
}

func upload(set *assets.Set) textures {
	t := textures{
		player: ebiten.NewImageFromImage(set.Player),
		enemy:  ebiten.NewImageFromImage(set.Enemy),
	}
	for _, img := range set.Layers() {
		t.layers = append(t.layers, ebiten.NewImageFromImage(img))
	}
	return t
}

func (t textures) deallocate() {
	t.player.Deallocate()
	t.enemy.Deallocate()
	for _, l := range t.layers {
		l.Deallocate()
	}
}

// runner adapts the game to ebiten.Game.
type runner struct {
	game     *spiderdash.Game
	textures textures
	face     *text.GoTextFaceSource
	jumpKey  ebiten.Key
	width    int
	height   int
	logger   *log.Logger
}

// Update polls the jump key and steps the game once per tick.
func (r *runner) Update() error {
	in := core.NewInputFrame()
	if inpututil.IsKeyJustPressed(r.jumpKey) {
		in.Set(core.ActionJump)
	}

	res := r.game.Step(in, 1.0/float64(ebiten.TPS()))
	if res.Transition.Changed() {
		r.logger.Debug("phase changed",
			"from", res.Transition.From, "to", res.Transition.To,
			"score", res.State.Score, "high", res.State.HighScore)
	}
	return nil
}

// Draw paints the layers, sprites and HUD.
func (r *runner) Draw(screen *ebiten.Image) {
	screen.Fill(core.Background)
	snap := r.game.Snapshot()

	if snap.ShowWorld() {
		for i, layer := range snap.Layers {
			a, b := layer.Copies()
			r.drawLayer(screen, r.textures.layers[i], a, snap.Scale)
			r.drawLayer(screen, r.textures.layers[i], b, snap.Scale)
		}

		for _, e := range snap.Enemies {
			drawSprite(screen, r.textures.enemy, e)
		}
		drawSprite(screen, r.textures.player, snap.Player)
	}

	for _, l := range snap.Labels {
		op := &text.DrawOptions{}
		op.GeoM.Translate(l.X, l.Y)
		op.ColorScale.ScaleWithColor(l.Color.RGBA())
		text.Draw(screen, l.Text, &text.GoTextFace{
			Source: r.face,
			Size:   float64(l.Size),
		}, op)
	}
}

// Layout keeps the logical window size regardless of the outer window.
func (r *runner) Layout(outsideWidth, outsideHeight int) (int, int) {
	return r.width, r.height
}

func (r *runner) drawLayer(screen, img *ebiten.Image, x, scale float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, 0)
	screen.DrawImage(img, op)
}

func drawSprite(screen, sheet *ebiten.Image, s spiderdash.SpriteView) {
	frame := sheet.SubImage(srcRect(s.Src)).(*ebiten.Image)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(s.X, s.Y)
	screen.DrawImage(frame, op)
}

// srcRect converts a sheet sub-rectangle to image coordinates.
func srcRect(r core.Rect) image.Rectangle {
	return image.Rect(int(r.X), int(r.Y), int(r.Right()), int(r.Bottom()))
}
