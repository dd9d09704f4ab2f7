package metrics

import (
	"testing"

	dto "github.com/prometheus/client_model/go"

	"github.com/saagar210/OrbitForge/integrator"
)

func TestGetReturnsSameInstance(t *testing.T) {
	a := Get()
	b := Get()
	if a != b {
		t.Fatal("Get() should return the process-wide singleton")
	}
}

func TestObserveTickUpdatesBodyCountAndBackend(t *testing.T) {
	r := Get()
	r.ObserveTick(integrator.Direct, 7, 1)

	g := &dto.Metric{}
	if err := r.BodyCount.Write(g); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if g.GetGauge().GetValue() != 7 {
		t.Fatalf("body count = %f, want 7", g.GetGauge().GetValue())
	}

	c, err := r.BackendSelected.GetMetricWithLabelValues("direct")
	if err != nil {
		t.Fatalf("GetMetricWithLabelValues: %v", err)
	}
	if c == nil {
		t.Fatal("expected a direct-backend counter to exist")
	}
}
