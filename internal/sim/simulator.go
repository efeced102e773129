package sim

import (
	"context"
	"io"
	"math"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/san-kum/orbitsim/internal/nbody"
)

type Simulator struct {
	mu sync.RWMutex

	cfg        Config
	bodies     []nbody.Celestial
	integrator *nbody.Integrator
	logger     *log.Logger

	frame  int
	time   float64
	paused bool

	metrics   []Metric
	observers []Observer
}

// New takes ownership of bodies. reporter may be nil.
func New(bodies []nbody.Celestial, cfg Config, reporter nbody.Reporter) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(bodies) == 0 {
		return nil, ErrNoBodies
	}

	return &Simulator{
		cfg:        cfg,
		bodies:     bodies,
		integrator: nbody.NewIntegrator(reporter),
		logger:     log.New(io.Discard),
		metrics:    make([]Metric, 0),
		observers:  make([]Observer, 0),
	}, nil
}

func (s *Simulator) SetLogger(l *log.Logger) { s.logger = l }
func (s *Simulator) AddMetric(m Metric)      { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer)  { s.observers = append(s.observers, o) }

func (s *Simulator) Config() Config { return s.cfg }

func (s *Simulator) Paused() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.paused
}

func (s *Simulator) SetPaused(p bool) {
	s.mu.Lock()
	s.paused = p
	s.mu.Unlock()
}

// TogglePause flips the pause state and returns the new one.
func (s *Simulator) TogglePause() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paused = !s.paused
	return s.paused
}

// Frame advances the bodies by one frame of StepsPerFrame steps unless
// paused. The day announcement is made before the frame's steps, for the
// day the frame starts in.
func (s *Simulator) Frame() FrameInfo {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.paused {
		dpf := s.cfg.DaysPerFrame()
		day := int(math.Floor(float64(s.frame) * dpf))
		if s.frame == 0 || day != int(math.Floor(float64(s.frame-1)*dpf)) {
			s.logger.Info("beginning day", "day", day)
		}

		for i := 0; i < s.cfg.StepsPerFrame; i++ {
			s.integrator.Step(s.bodies, s.cfg.SecondsPerStep)
			s.time += s.cfg.SecondsPerStep
		}
		s.frame++
	}

	info := s.infoLocked()

	// Paused frames repeat the last state; metrics sample advanced frames only.
	if !s.paused {
		for _, m := range s.metrics {
			m.Observe(s.bodies, s.time)
		}
	}
	for _, obs := range s.observers {
		obs.OnFrame(info, s.bodies)
	}

	return info
}

func (s *Simulator) Info() FrameInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.infoLocked()
}

func (s *Simulator) infoLocked() FrameInfo {
	return FrameInfo{
		Frame:  s.frame,
		Steps:  s.integrator.Steps(),
		Time:   s.time,
		Day:    int(s.time / SecondsPerDay),
		Paused: s.paused,
	}
}

// Snapshot returns a copy of the bodies between frames.
func (s *Simulator) Snapshot() []nbody.Celestial {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return nbody.Clone(s.bodies)
}

// Energy returns the total mechanical energy of the current state.
func (s *Simulator) Energy() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return nbody.TotalEnergy(s.bodies, s.integrator.G)
}

// Run advances cfg.Frames frames, checking ctx between frames. On
// cancellation the partial result is returned with ctx.Err().
func (s *Simulator) Run(ctx context.Context) (*Result, error) {
	if s.cfg.Frames <= 0 {
		return nil, ErrInvalidConfig
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	result := &Result{
		InitialEnergy: s.Energy(),
		Drift:         make([]float64, 0, s.cfg.Frames),
		Metrics:       make(map[string]float64),
	}

	var runErr error
	for i := 0; i < s.cfg.Frames; i++ {
		select {
		case <-ctx.Done():
			runErr = ctx.Err()
		default:
		}
		if runErr != nil {
			break
		}

		info := s.Frame()
		result.Drift = append(result.Drift, relativeDrift(result.InitialEnergy, s.Energy()))

		if err := s.checkState(info); err != nil {
			runErr = err
			break
		}
	}

	s.finish(result)
	return result, runErr
}

// RunWithCallback advances frames until callback returns false, ctx is
// done, or cfg.Frames frames have run when it is positive.
func (s *Simulator) RunWithCallback(ctx context.Context, callback func(FrameInfo, []nbody.Celestial) bool) error {
	for i := 0; s.cfg.Frames == 0 || i < s.cfg.Frames; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		info := s.Frame()
		if err := s.checkState(info); err != nil {
			return err
		}
		if !callback(info, s.Snapshot()) {
			return nil
		}
	}
	return nil
}

func (s *Simulator) checkState(info FrameInfo) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.bodies {
		if !s.bodies[i].Orbit.IsFinite() {
			return &SimulationError{Frame: info.Frame, Time: info.Time, Body: s.bodies[i].Name, Wrapped: ErrInvalidState}
		}
	}
	return nil
}

func (s *Simulator) finish(r *Result) {
	info := s.Info()
	r.Frames = info.Frame
	r.Steps = info.Steps
	r.Time = info.Time
	r.FinalEnergy = s.Energy()
	r.EnergyDrift = relativeDrift(r.InitialEnergy, r.FinalEnergy)
	r.Bodies = s.Snapshot()

	for _, m := range s.metrics {
		r.Metrics[m.Name()] = m.Value()
	}
}

func relativeDrift(initial, current float64) float64 {
	if initial == 0 {
		return 0
	}
	return math.Abs(current-initial) / math.Abs(initial)
}
