// Package ebiten is the default window driver, built on Ebitengine.
package ebiten

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/vovakirdan/spider-dash/internal/games/spiderdash"
	"github.com/vovakirdan/spider-dash/internal/registry"
)

// Driver opens an Ebitengine window.
type Driver struct{}

var _ registry.Driver = (*Driver)(nil)

func init() {
	registry.Register("ebiten", func() registry.Driver { return &Driver{} })
}

// Name implements registry.Driver.
func (d *Driver) Name() string { return "ebiten" }

// Description implements registry.Driver.
func (d *Driver) Description() string { return "Ebitengine window (default)" }

// Run implements registry.Driver.
func (d *Driver) Run(opts registry.Options) error {
	if opts.Assets == nil {
		return fmt.Errorf("ebiten: no textures loaded")
	}
	cfg := opts.Config

	geom := opts.Assets.Geometry()
	if err := geom.Validate(); err != nil {
		return fmt.Errorf("ebiten: %w", err)
	}

	jumpKey, err := parseKey(cfg.Controls.Jump)
	if err != nil {
		return err
	}

	face, err := text.NewGoTextFaceSource(bytes.NewReader(fonts.PressStart2P_ttf))
	if err != nil {
		return fmt.Errorf("ebiten: load font: %w", err)
	}

	game := spiderdash.New(cfg)
	game.Reset(geom)

	r := &runner{
		game:     game,
		textures: upload(opts.Assets),
		face:     face,
		jumpKey:  jumpKey,
		width:    cfg.Window.Width,
		height:   cfg.Window.Height,
		logger:   opts.Log(),
	}
	defer r.textures.deallocate()

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Window.TickRate)

	r.logger.Info("window opened", "driver", d.Name(), "size", fmt.Sprintf("%dx%d", r.width, r.height), "tps", cfg.Window.TickRate)
	if err := ebiten.RunGame(r); err != nil {
		return fmt.Errorf("ebiten: %w", err)
	}
	r.logger.Info("window closed", "high", game.State().HighScore)
	return nil
}

// parseKey resolves a key name such as "space" or "ArrowUp".
func parseKey(name string) (ebiten.Key, error) {
	var k ebiten.Key
	if err := k.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("ebiten: jump key %q: %w", name, err)
	}
	return k, nil
}
