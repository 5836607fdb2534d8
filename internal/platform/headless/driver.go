package headless

import (
	"github.com/vovakirdan/spider-dash/internal/games/spiderdash"
	"github.com/vovakirdan/spider-dash/internal/registry"
)

// Driver plays on autopilot for DefaultFrames and logs every finished run.
type Driver struct{}

var _ registry.Driver = (*Driver)(nil)

func init() {
	registry.Register("headless", func() registry.Driver { return &Driver{} })
}

// Name implements registry.Driver.
func (d *Driver) Name() string { return "headless" }

// Description implements registry.Driver.
func (d *Driver) Description() string { return "no window; autopilot plays one minute and logs the runs" }

// Run implements registry.Driver.
func (d *Driver) Run(opts registry.Options) error {
	geom := spiderdash.DefaultGeometry()
	if opts.Assets != nil {
		geom = opts.Assets.Geometry()
	}
	if err := geom.Validate(); err != nil {
		return err
	}

	g := spiderdash.New(opts.Config)
	g.Reset(geom)

	dt := 1.0 / float64(opts.Config.Window.TickRate)
	res := Run(g, DefaultFrames, dt, Autopilot(DefaultLookahead), false)

	logger := opts.Log()
	for i, run := range res.Runs {
		logger.Info("run finished", "run", i+1, "outcome", run.Outcome, "score", run.Score, "frames", run.Frames)
	}
	logger.Info("headless session done", "frames", res.Frames, "runs", len(res.Runs), "wins", res.Wins(), "high", res.Final.HighScore)
	return nil
}
