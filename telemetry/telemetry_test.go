package telemetry

import (
	"bufio"
	"os"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/saagar210/OrbitForge/collision"
)

func TestDisabledConfigReturnsNilWriter(t *testing.T) {
	w, err := NewWriter(Config{})
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	if w != nil {
		t.Fatal("expected nil writer for disabled config")
	}
	w.Close() // must not panic on a nil receiver
}

func TestWriterWritesFramesAndCollisions(t *testing.T) {
	dir := t.TempDir()
	base := dir + "/run"

	w, err := NewWriter(Config{ExportPath: base})
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}

	runID := uuid.New()
	w.Frames <- FrameRecord{RunID: runID, Tick: 1, SpeedMultiplier: 1, Energy: -5}
	w.Collisions <- CollisionRecord{
		Tick:  1,
		RunID: runID,
		Event: collision.Event{AbsorbedID: 2, SurvivorID: 1, CombinedMass: 3, Position: [3]float64{1, 2, 3}},
	}
	w.Close()

	frameData, err := os.ReadFile(base + ".frames.jsonl")
	if err != nil {
		t.Fatalf("read frames file: %v", err)
	}
	if !strings.Contains(string(frameData), `"tick":1`) {
		t.Fatalf("frame file missing expected content: %s", frameData)
	}

	collisionFile, err := os.Open(base + ".collisions.csv")
	if err != nil {
		t.Fatalf("open collisions file: %v", err)
	}
	defer collisionFile.Close()

	scanner := bufio.NewScanner(collisionFile)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if len(lines) != 2 {
		t.Fatalf("expected header + 1 row, got %d lines: %v", len(lines), lines)
	}
	if !strings.HasPrefix(lines[0], "tick,run_id,") {
		t.Fatalf("unexpected header: %s", lines[0])
	}
}
