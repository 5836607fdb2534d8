package spiderdash

// Layer indices, back to front.
const (
	LayerBackground = iota
	LayerMidground
	LayerForeground
	layerCount
)

// Layer is one horizontally scrolling image.
type Layer struct {
	Offset float64 // Current x offset, in (-Span, 0]
	Rate   float64 // Scroll speed in units per second
	Span   float64 // Drawn width of one copy (texture width × draw scale)
}

// advance scrolls left by Rate·dt and wraps to 0 once a full copy has scrolled past.
func (l *Layer) advance(dt float64) {
	l.Offset -= l.Rate * dt
	if l.Offset <= -l.Span {
		l.Offset = 0
	}
}

// Copies returns the x positions of the two copies needed to cover the window.
func (l Layer) Copies() (float64, float64) {
	return l.Offset, l.Offset + l.Span
}

// Parallax holds the background, midground and foreground layers.
// It keeps scrolling across restarts.
type Parallax struct {
	Layers [layerCount]Layer
}

// Advance scrolls every layer.
func (p *Parallax) Advance(dt float64) {
	for i := range p.Layers {
		p.Layers[i].advance(dt)
	}
}
