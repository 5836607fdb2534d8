package spiderdash

// Player is the spider: an animated sprite with vertical physics.
type Player struct {
	Sprite
	Velocity float64 // Vertical velocity, negative = up
	Airborne bool
}

// Grounded reports whether the player has reached the floor of a window
// windowH units tall.
func (p Player) Grounded(windowH float64) bool {
	return p.Y >= windowH-p.Src.H
}

// Place puts the player at the start position: centered horizontally,
// standing on the floor, at rest.
func (p *Player) Place(windowW, windowH float64) {
	p.X = float64(int(windowW)/2) - p.Src.W/2
	p.Y = windowH - p.Src.H
	p.Velocity = 0
	p.Airborne = false
}

// applyGravity runs the ground test. On the floor velocity is cleared,
// otherwise gravity accumulates.
func (p *Player) applyGravity(windowH, gravity, dt float64) {
	if p.Grounded(windowH) {
		p.Velocity = 0
		p.Airborne = false
		return
	}
	p.Velocity += gravity * dt
	p.Airborne = true
}

// jump applies an instantaneous impulse if the player is on the ground.
func (p *Player) jump(impulse float64) {
	if !p.Airborne {
		p.Velocity += impulse
	}
}
