package metrics

import (
	"context"
	"errors"
	"math"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/san-kum/orbitsim/internal/nbody"
	"github.com/san-kum/orbitsim/internal/sim"
)

// Exporter publishes simulation progress to Prometheus. It is both a
// collision reporter for the integrator and a frame observer for the
// simulator, and owns its registry so several can coexist.
type Exporter struct {
	registry *prometheus.Registry

	steps         prometheus.Counter
	frames        prometheus.Counter
	collisions    *prometheus.CounterVec
	singularities *prometheus.CounterVec
	simTime       prometheus.Gauge
	energyDrift   prometheus.Gauge
	bodies        prometheus.Gauge

	mu            sync.Mutex
	g             float64
	lastSteps     int
	lastFrame     int
	initialEnergy float64
	haveInitial   bool
}

func NewExporter(g float64) *Exporter {
	e := &Exporter{
		registry: prometheus.NewRegistry(),
		g:        g,
		steps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "orbitsim",
			Name:      "steps_total",
			Help:      "Integrator steps taken",
		}),
		frames: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "orbitsim",
			Name:      "frames_total",
			Help:      "Frames advanced",
		}),
		collisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "orbitsim",
			Name:      "collisions_total",
			Help:      "Pairs entering contact",
		}, []string{"a", "b"}),
		singularities: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "orbitsim",
			Name:      "singularities_total",
			Help:      "Pair impulses skipped because they were not finite",
		}, []string{"a", "b"}),
		simTime: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "orbitsim",
			Name:      "simulated_seconds",
			Help:      "Simulated time since start",
		}),
		energyDrift: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "orbitsim",
			Name:      "energy_drift_ratio",
			Help:      "Relative deviation of total energy from its first observed value",
		}),
		bodies: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "orbitsim",
			Name:      "bodies",
			Help:      "Bodies in the simulation",
		}),
	}

	e.registry.MustRegister(e.steps, e.frames, e.collisions, e.singularities, e.simTime, e.energyDrift, e.bodies)

	return e
}

func (e *Exporter) Registry() *prometheus.Registry { return e.registry }

func (e *Exporter) OnCollision(c nbody.Collision) {
	e.collisions.WithLabelValues(c.A, c.B).Inc()
}

func (e *Exporter) OnSingularity(s nbody.Singularity) {
	e.singularities.WithLabelValues(s.A, s.B).Inc()
}

func (e *Exporter) OnFrame(f sim.FrameInfo, bodies []nbody.Celestial) {
	energy := nbody.TotalEnergy(bodies, e.g)

	e.mu.Lock()
	defer e.mu.Unlock()

	if f.Steps > e.lastSteps {
		e.steps.Add(float64(f.Steps - e.lastSteps))
		e.lastSteps = f.Steps
	}
	if f.Frame > e.lastFrame {
		e.frames.Add(float64(f.Frame - e.lastFrame))
		e.lastFrame = f.Frame
	}
	if !e.haveInitial {
		e.initialEnergy = energy
		e.haveInitial = true
	}

	e.simTime.Set(f.Time)
	e.bodies.Set(float64(len(bodies)))
	if e.initialEnergy != 0 {
		e.energyDrift.Set(math.Abs(energy-e.initialEnergy) / math.Abs(e.initialEnergy))
	}
}

func (e *Exporter) Handler() http.Handler {
	return promhttp.HandlerFor(e.registry, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until ctx is done.
func (e *Exporter) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", e.Handler())

	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
