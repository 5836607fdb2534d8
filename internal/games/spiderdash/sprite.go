package spiderdash

import "github.com/vovakirdan/spider-dash/internal/core"

// Sprite is an animated sprite: a frame rectangle inside a sprite sheet plus a
// world position and the bookkeeping needed to step through frames.
type Sprite struct {
	Src       core.Rect // Current frame within the sheet; W/H are the frame size
	X, Y      float64   // World position (top-left)
	Frame     int       // Next frame index, always in [0, maxFrame]
	FrameTime float64   // Seconds per frame
	Elapsed   float64   // Seconds since the last frame advance
}

// Advance accumulates dt and moves to the next frame once FrameTime has passed.
// The sheet rectangle is set from the current index before it is incremented,
// and the index wraps to 0 after maxFrame.
func (s *Sprite) Advance(dt float64, maxFrame int) {
	s.Elapsed += dt
	if s.Elapsed < s.FrameTime {
		return
	}
	s.Elapsed = 0
	s.Src.X = float64(s.Frame) * s.Src.W
	s.Frame++
	if s.Frame > maxFrame {
		s.Frame = 0
	}
}

// Bounds returns the sprite's world-space bounding box.
func (s Sprite) Bounds() core.Rect {
	return core.NewRect(s.X, s.Y, s.Src.W, s.Src.H)
}
