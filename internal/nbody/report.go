package nbody

import "github.com/charmbracelet/log"

// LogReporter writes collision and singularity events to a logger.
type LogReporter struct {
	Logger *log.Logger
}

func (r LogReporter) OnCollision(c Collision) {
	r.Logger.Warn("collision", "a", c.A, "b", c.B, "distance", c.Distance)
}

func (r LogReporter) OnSingularity(s Singularity) {
	r.Logger.Error("singular force, pair skipped", "a", s.A, "b", s.B, "distance", s.Distance)
}

// Reporters fans events out to several reporters in order.
type Reporters []Reporter

func (rs Reporters) OnCollision(c Collision) {
	for _, r := range rs {
		r.OnCollision(c)
	}
}

func (rs Reporters) OnSingularity(s Singularity) {
	for _, r := range rs {
		r.OnSingularity(s)
	}
}
