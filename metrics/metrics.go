// Package metrics exposes the engine's tick-level behavior as Prometheus
// instruments behind a process-wide singleton registry.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/saagar210/OrbitForge/integrator"
)

// Registry bundles the instruments reported once per tick.
type Registry struct {
	TickDuration    prometheus.Histogram
	BodyCount       prometheus.Gauge
	BackendSelected *prometheus.CounterVec
	Collisions      prometheus.Counter
	Substeps        prometheus.Counter
}

var (
	global     *Registry
	globalOnce sync.Once
)

// Get returns the process-wide Registry, registering its instruments with
// the default Prometheus registerer on first call.
func Get() *Registry {
	globalOnce.Do(func() {
		global = newRegistry()
	})
	return global
}

func newRegistry() *Registry {
	r := &Registry{
		TickDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "orbitforge_tick_duration_seconds",
			Help:    "Wall-clock duration of one simulation tick.",
			Buckets: prometheus.DefBuckets,
		}),
		BodyCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "orbitforge_body_count",
			Help: "Current number of live bodies.",
		}),
		BackendSelected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "orbitforge_backend_selected_total",
			Help: "Count of ticks by force-evaluation backend selected.",
		}, []string{"backend"}),
		Collisions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "orbitforge_collisions_total",
			Help: "Total number of collision merges.",
		}),
		Substeps: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "orbitforge_substeps_total",
			Help: "Total number of velocity-Verlet substeps executed.",
		}),
	}

	prometheus.MustRegister(r.TickDuration, r.BodyCount, r.BackendSelected, r.Collisions, r.Substeps)
	return r
}

func backendLabel(b integrator.Backend) string {
	switch b {
	case integrator.GPU:
		return "gpu"
	case integrator.BarnesHut:
		return "barnes_hut"
	default:
		return "direct"
	}
}

// ObserveTick records one tick's backend choice, body count, and substep
// count. It satisfies engine.Recorder.
func (r *Registry) ObserveTick(backend integrator.Backend, bodyCount int, substeps int) {
	r.BackendSelected.WithLabelValues(backendLabel(backend)).Inc()
	r.BodyCount.Set(float64(bodyCount))
	r.Substeps.Add(float64(substeps))
}

// ObserveCollisions records n collision merges. It satisfies
// engine.Recorder.
func (r *Registry) ObserveCollisions(n int) {
	r.Collisions.Add(float64(n))
}

// ObserveTickDuration records the wall-clock time one Step call took; the
// driver calls this separately since engine.Recorder's interface is
// content-only (no timing dependency in the physics core).
func (r *Registry) ObserveTickDuration(seconds float64) {
	r.TickDuration.Observe(seconds)
}
