package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"life-ca/internal/telemetry"
)

func TestRunBlockIsStable(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"-w", "10", "-h", "10", "-pattern", "block", "-generations", "25"}, &out)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	text := out.String()
	if !strings.Contains(text, "25 generations") {
		t.Fatalf("unexpected summary:\n%s", text)
	}
	if !strings.Contains(text, "initial 4, peak 4, final 4") {
		t.Fatalf("block population changed:\n%s", text)
	}
}

func TestRunWritesTelemetry(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	var out bytes.Buffer
	err := run([]string{"-w", "12", "-h", "12", "-pattern", "glider", "-workers", "3", "-generations", "8", "-out", dir}, &out)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	f, err := os.Open(filepath.Join(dir, "generations.csv"))
	if err != nil {
		t.Fatalf("open csv: %v", err)
	}
	defer f.Close()
	samples, err := telemetry.ReadSamples(f)
	if err != nil {
		t.Fatalf("ReadSamples: %v", err)
	}
	if len(samples) != 8 {
		t.Fatalf("got %d samples, expected 8", len(samples))
	}
	for i, s := range samples {
		if s.Generation != uint64(i+1) || s.Population != 5 {
			t.Fatalf("sample %d = %+v, expected generation %d with 5 cells", i, s, i+1)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "config.yaml")); err != nil {
		t.Fatalf("config snapshot missing: %v", err)
	}
}

func TestRunStopWhenEmpty(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"-w", "8", "-h", "8", "-pattern", "", "-stop-empty", "-generations", "100"}, &out)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "1 generations") {
		t.Fatalf("expected the run to stop after one empty generation:\n%s", out.String())
	}
}

func TestRunRejectsBadArgs(t *testing.T) {
	for _, args := range [][]string{{"-generations", "-1"}, {"-pattern", "nope"}} {
		if err := run(args, &bytes.Buffer{}); err == nil {
			t.Fatalf("run(%v) succeeded, expected error", args)
		}
	}
}
