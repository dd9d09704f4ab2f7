// Command orbitforged is a demonstration driver for the physics core: it
// loads configuration, probes for a GPU backend, loads a scenario, and runs
// the 120 Hz tick loop, optionally exporting telemetry and serving metrics.
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"sync"
	"time"

	kitlog "github.com/go-kit/kit/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/saagar210/OrbitForge/config"
	"github.com/saagar210/OrbitForge/engine"
	"github.com/saagar210/OrbitForge/gpu"
	"github.com/saagar210/OrbitForge/metrics"
	"github.com/saagar210/OrbitForge/telemetry"
)

var (
	configPath   string
	scenarioName string
	ticks        int
	serveMetrics bool
)

func init() {
	flag.StringVar(&configPath, "config", "", "path to an orbitforge config file (optional)")
	flag.StringVar(&scenarioName, "scenario", "sun_earth", "named scenario to load at startup")
	flag.IntVar(&ticks, "ticks", 0, "stop after this many ticks (0 = run forever)")
	flag.BoolVar(&serveMetrics, "metrics", false, "serve Prometheus metrics on config.metrics_addr (default :9090)")
}

func main() {
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("orbitforged: %v", err)
	}

	logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	logger = kitlog.With(logger, "ts", kitlog.DefaultTimestampUTC)

	state := engine.New(logger)
	state.DT = cfg.DT
	state.G = cfg.G
	state.Softening = cfg.Softening
	state.Theta = cfg.Theta
	state.SpeedMultiplier = cfg.SpeedMultiplier
	state.DirectThreshold = cfg.DirectThreshold
	state.GPUThreshold = cfg.GPUThreshold

	if cfg.GPUEnabled {
		if kernel, ok := gpu.New(); ok {
			state.SetGPU(kernel)
			logger.Log("level", "info", "subsys", "gpu", "status", "acquired")
		} else {
			logger.Log("level", "info", "subsys", "gpu", "status", "unavailable", "fallback", "cpu")
		}
	}

	if !state.LoadScenario(scenarioName) {
		log.Fatalf("orbitforged: unknown scenario %q", scenarioName)
	}

	recorder := metrics.Get()
	state.SetRecorder(recorder)

	writer, err := telemetry.NewWriter(telemetry.Config{ExportPath: cfg.ExportPath})
	if err != nil {
		log.Fatalf("orbitforged: %v", err)
	}
	defer writer.Close()

	if serveMetrics {
		addr := cfg.MetricsAddr
		if addr == "" {
			addr = ":9090"
		}
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			logger.Log("level", "info", "subsys", "engine", "msg", "serving metrics", "addr", addr)
			if err := http.ListenAndServe(addr, mux); err != nil {
				logger.Log("level", "error", "subsys", "engine", "err", err)
			}
		}()
	}

	done := make(chan struct{})
	go runTickLoop(state, recorder, writer, cfg.TickRate, logger, done)
	<-done
}

// runTickLoop owns the tick thread described in spec.md §5: a dedicated
// goroutine advancing state under mu, sleeping only between ticks for
// max(0, period-elapsed) with no catch-up on overrun.
func runTickLoop(state *engine.State, recorder *metrics.Registry, writer *telemetry.Writer, tickRate float64, logger kitlog.Logger, done chan<- struct{}) {
	defer close(done)

	var mu sync.Mutex
	period := time.Duration(float64(time.Second) / tickRate)
	statusTicker := time.NewTicker(10 * time.Second)
	defer statusTicker.Stop()

	tickCount := 0
	for {
		start := time.Now()

		mu.Lock()
		events := state.Step()
		frame := state.ToFrame()
		mu.Unlock()

		if recorder != nil {
			recorder.ObserveTickDuration(time.Since(start).Seconds())
		}

		if writer != nil {
			writer.Frames <- telemetry.FrameRecord{
				RunID:           state.RunID,
				Tick:            frame.Tick,
				Paused:          frame.Paused,
				SpeedMultiplier: frame.SpeedMultiplier,
				Energy:          frame.Energy.Total,
				Bodies:          frame.Bodies,
			}
			for _, e := range events {
				writer.Collisions <- telemetry.CollisionRecord{Tick: frame.Tick, RunID: state.RunID, Event: e}
			}
		}

		select {
		case <-statusTicker.C:
			logger.Log("level", "info", "subsys", "engine", "tick", frame.Tick, "bodies", len(frame.Bodies), "energy", frame.Energy.Total)
		default:
		}

		tickCount++
		if ticks > 0 && tickCount >= ticks {
			fmt.Printf("orbitforged: stopped after %d ticks\n", tickCount)
			return
		}

		elapsed := time.Since(start)
		if sleep := period - elapsed; sleep > 0 {
			time.Sleep(sleep)
		}
	}
}
