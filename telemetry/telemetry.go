// Package telemetry streams simulation frames and collision events to disk:
// JSON-lines snapshots and a CSV collision log. It mirrors the teacher's
// buffered-channel-plus-goroutine StreamStates shape.
package telemetry

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/saagar210/OrbitForge/collision"
)

// FrameRecord is one JSON-lines entry; Bodies is left as a generic value so
// this package does not need to import the body package just to re-shape
// it for export.
type FrameRecord struct {
	RunID           uuid.UUID   `json:"run_id"`
	Tick            uint64      `json:"tick"`
	Paused          bool        `json:"paused"`
	SpeedMultiplier float64     `json:"speed_multiplier"`
	Energy          float64     `json:"energy"`
	Bodies          interface{} `json:"bodies"`
}

// CollisionRecord is one CSV row.
type CollisionRecord struct {
	Tick  uint64
	RunID uuid.UUID
	Event collision.Event
}

// Config controls whether and where telemetry is written; ExportPath ==
// "" disables the writer entirely.
type Config struct {
	ExportPath string
}

// Enabled reports whether this config names an export target.
func (c Config) Enabled() bool {
	return c.ExportPath != ""
}

// Writer owns the output files and the channels frames/collisions are
// delivered on.
type Writer struct {
	frameFile     *os.File
	collisionFile *os.File

	Frames     chan FrameRecord
	Collisions chan CollisionRecord

	done chan struct{}
}

// NewWriter opens (or creates) the export files named by cfg and starts
// the background goroutine that drains Frames/Collisions, matching the
// teacher's NewMission/StreamStates pattern. Returns (nil, nil) if cfg is
// disabled.
func NewWriter(cfg Config) (*Writer, error) {
	if !cfg.Enabled() {
		return nil, nil
	}

	frameFile, err := os.Create(cfg.ExportPath + ".frames.jsonl")
	if err != nil {
		return nil, fmt.Errorf("telemetry: create frame file: %w", err)
	}
	collisionFile, err := os.Create(cfg.ExportPath + ".collisions.csv")
	if err != nil {
		frameFile.Close()
		return nil, fmt.Errorf("telemetry: create collision file: %w", err)
	}
	if _, err := collisionFile.WriteString("tick,run_id,absorbed_id,survivor_id,x,y,z,combined_mass\n"); err != nil {
		frameFile.Close()
		collisionFile.Close()
		return nil, fmt.Errorf("telemetry: write collision header: %w", err)
	}

	w := &Writer{
		frameFile:     frameFile,
		collisionFile: collisionFile,
		Frames:        make(chan FrameRecord, 1000),
		Collisions:    make(chan CollisionRecord, 1000),
		done:          make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *Writer) run() {
	defer close(w.done)
	for {
		select {
		case rec, more := <-w.Frames:
			if !more {
				w.Frames = nil
				if w.Collisions == nil {
					return
				}
				continue
			}
			w.writeFrame(rec)
		case rec, more := <-w.Collisions:
			if !more {
				w.Collisions = nil
				if w.Frames == nil {
					return
				}
				continue
			}
			w.writeCollision(rec)
		}
	}
}

func (w *Writer) writeFrame(rec FrameRecord) {
	data, err := json.Marshal(rec)
	if err != nil {
		return
	}
	w.frameFile.Write(data)
	w.frameFile.WriteString("\n")
}

func (w *Writer) writeCollision(rec CollisionRecord) {
	e := rec.Event
	fmt.Fprintf(w.collisionFile, "%d,%s,%d,%d,%f,%f,%f,%f\n",
		rec.Tick, rec.RunID, e.AbsorbedID, e.SurvivorID,
		e.Position[0], e.Position[1], e.Position[2], e.CombinedMass)
}

// Close signals the background goroutine to drain and exit, then closes
// the underlying files.
func (w *Writer) Close() {
	if w == nil {
		return
	}
	close(w.Frames)
	close(w.Collisions)
	<-w.done
	w.frameFile.Close()
	w.collisionFile.Close()
}
