package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pthm-cable/gridsnake/config"
)

func TestOutputManager_Disabled(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil {
		t.Fatalf("NewOutputManager(\"\") error: %v", err)
	}
	if om != nil {
		t.Fatal("expected nil manager when dir is empty")
	}

	// All methods are safe on a nil manager.
	if err := om.WriteSession(SessionStats{}); err != nil {
		t.Errorf("WriteSession on nil: %v", err)
	}
	if err := om.WritePerf(PerfStats{}, 0); err != nil {
		t.Errorf("WritePerf on nil: %v", err)
	}
	if err := om.WriteConfig(config.Default()); err != nil {
		t.Errorf("WriteConfig on nil: %v", err)
	}
	if om.Dir() != "" {
		t.Errorf("Dir() = %q, want empty", om.Dir())
	}
	if err := om.Close(); err != nil {
		t.Errorf("Close on nil: %v", err)
	}
}

func TestOutputManager_WritesCSV(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("NewOutputManager: %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := om.WriteSession(SessionStats{Session: i, Score: uint32(i * 2), Cause: "wall_collision"}); err != nil {
			t.Fatalf("WriteSession: %v", err)
		}
	}
	perf := PerfStats{AvgTickDuration: time.Millisecond, PhasePct: map[string]float64{PhaseMovement: 50}}
	if err := om.WritePerf(perf, 120); err != nil {
		t.Fatalf("WritePerf: %v", err)
	}
	if err := om.WriteConfig(config.Default()); err != nil {
		t.Fatalf("WriteConfig: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	sessions := readLines(t, filepath.Join(dir, "sessions.csv"))
	if len(sessions) != 4 {
		t.Fatalf("sessions.csv has %d lines, want header + 3", len(sessions))
	}
	if !strings.HasPrefix(sessions[0], "session,seed,ticks") {
		t.Errorf("unexpected header: %q", sessions[0])
	}
	if strings.Count(strings.Join(sessions, "\n"), "session,seed") != 1 {
		t.Error("header written more than once")
	}
	if !strings.HasSuffix(sessions[3], "wall_collision") {
		t.Errorf("last row = %q, want cause at end", sessions[3])
	}

	perfLines := readLines(t, filepath.Join(dir, "perf.csv"))
	if len(perfLines) != 2 {
		t.Fatalf("perf.csv has %d lines, want 2", len(perfLines))
	}
	if !strings.Contains(perfLines[0], "movement_pct") {
		t.Errorf("perf header missing movement_pct: %q", perfLines[0])
	}

	if _, err := os.Stat(filepath.Join(dir, "config.yaml")); err != nil {
		t.Errorf("config.yaml not written: %v", err)
	}
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}
