package spiderdash

// Sprite sheet layout.
const (
	PlayerFrames  = 6 // horizontal frames in the spider sheet
	EnemyFrames   = 8 // frames cycled by each enemy, first row of the sheet
	EnemyGridCols = 8
	EnemyGridRows = 8
)

// Tuning holds the gameplay constants of a run.
type Tuning struct {
	Gravity       float64 // units/s², applied while airborne
	JumpVelocity  float64 // negative = up
	EnemyVelocity float64 // negative = leftward
	FrameTime     float64 // seconds per animation frame, player and enemies

	EnemyCount   int
	EnemySpacing float64
	EnemyPadding float64 // collision inset applied to each enemy

	LayerRates [layerCount]float64 // background, midground, foreground
	LayerScale float64             // draw scale; layers wrap at LayerScale × texture width
}

// DefaultTuning returns the fixed tuning every Game built by New plays with.
func DefaultTuning() Tuning {
	return Tuning{
		Gravity:       1000,
		JumpVelocity:  -600,
		EnemyVelocity: -200,
		FrameTime:     1.0 / 12.0,
		EnemyCount:    60,
		EnemySpacing:  300,
		EnemyPadding:  10,
		LayerRates:    [layerCount]float64{20, 40, 80},
		LayerScale:    2,
	}
}
