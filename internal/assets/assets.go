// Package assets loads the Spider Dash textures. Images are decoded once at
// startup; drivers upload them to whatever texture type their backend uses.
package assets

import (
	"fmt"
	"image"
	_ "image/png" // register the PNG decoder
	"io/fs"
	"os"

	"github.com/vovakirdan/spider-dash/internal/config"
	"github.com/vovakirdan/spider-dash/internal/games/spiderdash"
)

// Set holds the five decoded textures.
type Set struct {
	Player     image.Image // 6 frames in a row
	Enemy      image.Image // 8×8 grid
	Background image.Image
	Midground  image.Image
	Foreground image.Image
}

// Dir returns a filesystem rooted at path.
func Dir(path string) fs.FS {
	return os.DirFS(path)
}

// Load decodes every texture named in cfg from fsys.
// The first missing or undecodable file aborts the load.
func Load(fsys fs.FS, cfg config.AssetsConfig) (*Set, error) {
	s := &Set{}
	files := []struct {
		name string
		dst  *image.Image
	}{
		{cfg.Player, &s.Player},
		{cfg.Enemy, &s.Enemy},
		{cfg.Background, &s.Background},
		{cfg.Midground, &s.Midground},
		{cfg.Foreground, &s.Foreground},
	}

	for _, f := range files {
		img, err := decode(fsys, f.name)
		if err != nil {
			return nil, err
		}
		*f.dst = img
	}
	return s, nil
}

func decode(fsys fs.FS, name string) (image.Image, error) {
	if name == "" {
		return nil, fmt.Errorf("assets: empty file name")
	}
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("assets: open %s: %w", name, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", name, err)
	}
	return img, nil
}

// Layers returns the scroll layer images, back to front.
func (s *Set) Layers() []image.Image {
	return []image.Image{s.Background, s.Midground, s.Foreground}
}

// Geometry reports the texture sizes the game derives its frames from.
func (s *Set) Geometry() spiderdash.Geometry {
	g := spiderdash.Geometry{
		PlayerSheetW: s.Player.Bounds().Dx(),
		PlayerSheetH: s.Player.Bounds().Dy(),
		EnemySheetW:  s.Enemy.Bounds().Dx(),
		EnemySheetH:  s.Enemy.Bounds().Dy(),
	}
	for i, img := range s.Layers() {
		g.LayerW[i] = img.Bounds().Dx()
	}
	return g
}
