package sim

import (
	"context"
	"sync"

	"github.com/san-kum/orbitsim/internal/nbody"
)

// Ensemble runs one simulation per config, each on its own copy of the
// same initial bodies.
type Ensemble struct {
	bodies  []nbody.Celestial
	configs []Config
	metrics func() []Metric
}

// NewEnsemble copies bodies. newMetrics, if non-nil, is called once per
// member so members never share metric state.
func NewEnsemble(bodies []nbody.Celestial, configs []Config, newMetrics func() []Metric) *Ensemble {
	return &Ensemble{bodies: nbody.Clone(bodies), configs: configs, metrics: newMetrics}
}

// Run returns results in config order. The first error stops nothing
// already started but is returned after all members finish.
func (e *Ensemble) Run(ctx context.Context) ([]*Result, error) {
	results := make([]*Result, len(e.configs))
	errs := make([]error, len(e.configs))

	var wg sync.WaitGroup
	for i := range e.configs {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			s, err := New(nbody.Clone(e.bodies), e.configs[idx], nil)
			if err != nil {
				errs[idx] = err
				return
			}
			if e.metrics != nil {
				for _, m := range e.metrics() {
					s.AddMetric(m)
				}
			}

			results[idx], errs[idx] = s.Run(ctx)
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return results, err
		}
	}

	return results, nil
}
