package spiderdash

import "github.com/vovakirdan/spider-dash/internal/core"

// Roster is the fixed, ordered procession of enemies.
// Its length is set once by NewRoster and never changes.
type Roster struct {
	enemies []Sprite
	spacing float64
}

// NewRoster creates count enemies sharing the given frame size.
func NewRoster(count int, frameW, frameH, frameTime, spacing float64) *Roster {
	r := &Roster{
		enemies: make([]Sprite, count),
		spacing: spacing,
	}
	for i := range r.enemies {
		r.enemies[i] = Sprite{
			Src:       core.NewRect(0, 0, frameW, frameH),
			FrameTime: frameTime,
		}
	}
	return r
}

// Reset lines the enemies up off-screen to the right, spacing units apart,
// standing on the floor. Animation state is left alone.
func (r *Roster) Reset(windowW, windowH float64) {
	for i := range r.enemies {
		r.enemies[i].X = windowW + float64(i)*r.spacing
		r.enemies[i].Y = windowH - r.enemies[i].Src.H
	}
}

// Move shifts every enemy horizontally by dx.
func (r *Roster) Move(dx float64) {
	for i := range r.enemies {
		r.enemies[i].X += dx
	}
}

// Animate advances every enemy's animation.
func (r *Roster) Animate(dt float64, maxFrame int) {
	for i := range r.enemies {
		r.enemies[i].Advance(dt, maxFrame)
	}
}

// Collides reports whether any enemy's hitbox, shrunk by padding on each side,
// overlaps the player rectangle. The player rectangle is used as given.
func (r *Roster) Collides(player core.Rect, padding float64) bool {
	for _, e := range r.enemies {
		if e.Bounds().Inset(padding).Intersects(player) {
			return true
		}
	}
	return false
}

// Len returns the number of enemies.
func (r *Roster) Len() int {
	return len(r.enemies)
}

// At returns the i-th enemy.
func (r *Roster) At(i int) Sprite {
	return r.enemies[i]
}

// Last returns the enemy furthest back in the procession.
func (r *Roster) Last() Sprite {
	return r.enemies[len(r.enemies)-1]
}
