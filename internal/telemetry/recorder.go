// Package telemetry records per-generation statistics of a run as CSV.
package telemetry

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"life-ca/internal/config"
	"life-ca/internal/sim"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"
)

// Sample is one row of generations.csv.
type Sample struct {
	Generation uint64 `csv:"generation"`
	Population int    `csv:"population"`
	StepMicros int64  `csv:"step_us"`
}

// SampleFromStep converts a controller step notification into a row.
func SampleFromStep(info sim.StepInfo) Sample {
	return Sample{
		Generation: info.Generation,
		Population: info.Population,
		StepMicros: info.Took.Microseconds(),
	}
}

// Recorder appends samples to a CSV stream, writing the header once.
type Recorder struct {
	w             io.Writer
	closer        io.Closer
	headerWritten bool

	samples    int
	totalStep  time.Duration
	peak       int
	lastSample Sample
}

// NewRecorder writes samples to w.
func NewRecorder(w io.Writer) *Recorder {
	return &Recorder{w: w}
}

// NewFileRecorder creates dir, snapshots cfg into config.yaml and opens
// generations.csv. It returns nil when dir is empty.
func NewFileRecorder(dir string, cfg *config.Config) (*Recorder, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "[NewFileRecorder] failed to create directory: %s", dir)
	}
	if cfg != nil {
		if err := cfg.WriteYAML(filepath.Join(dir, "config.yaml")); err != nil {
			return nil, err
		}
	}
	path := filepath.Join(dir, "generations.csv")
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, "[NewFileRecorder] failed to create file: %s", path)
	}
	r := NewRecorder(f)
	r.closer = f
	return r, nil
}

// Write appends a sample.
func (r *Recorder) Write(s Sample) error {
	if r == nil {
		return nil
	}
	records := []Sample{s}
	if !r.headerWritten {
		if err := gocsv.Marshal(records, r.w); err != nil {
			return errors.Wrap(err, "[Write] failed to write samples")
		}
		r.headerWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, r.w); err != nil {
			return errors.Wrap(err, "[Write] failed to write samples")
		}
	}

	r.samples++
	r.totalStep += time.Duration(s.StepMicros) * time.Microsecond
	r.peak = max(r.peak, s.Population)
	r.lastSample = s
	return nil
}

// Summary aggregates the samples written so far.
type Summary struct {
	Generations    int
	PeakPopulation int
	LastPopulation int
	MeanStep       time.Duration
}

// Summary returns aggregate statistics over every written sample.
func (r *Recorder) Summary() Summary {
	if r == nil || r.samples == 0 {
		return Summary{}
	}
	return Summary{
		Generations:    r.samples,
		PeakPopulation: r.peak,
		LastPopulation: r.lastSample.Population,
		MeanStep:       r.totalStep / time.Duration(r.samples),
	}
}

// Close closes the underlying file, if the recorder owns one. Later calls
// are no-ops.
func (r *Recorder) Close() error {
	if r == nil || r.closer == nil {
		return nil
	}
	c := r.closer
	r.closer = nil
	return c.Close()
}

// ReadSamples parses a generations.csv stream.
func ReadSamples(rd io.Reader) ([]Sample, error) {
	var out []Sample
	if err := gocsv.Unmarshal(rd, &out); err != nil {
		return nil, errors.Wrap(err, "[ReadSamples] failed to parse samples")
	}
	return out, nil
}
