// SPDX-License-Identifier: MIT

package bench

import (
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"
)

// Result is the timing of one strategy.
type Result struct {
	Label   string
	Workers int
	Elapsed time.Duration
}

// Report holds the benchmark configuration and one Result per strategy,
// in execution order (sequential first).
type Report struct {
	Size    int
	Workers int
	Results []Result
}

// Speedup returns sequential time divided by parallel time, or 0 when
// either pass is missing or the parallel pass took no measurable time.
func (r *Report) Speedup() float64 {
	if len(r.Results) < 2 || r.Results[1].Elapsed <= 0 {
		return 0
	}

	return float64(r.Results[0].Elapsed) / float64(r.Results[1].Elapsed)
}

// WriteText renders the report the way the benchmark prints it:
//
//	Matrix size: 1000x1000
//	Without parallelization:
//	Time: 0.00412 s
//	With parallelization (8 threads):
//	Time: 0.00131 s
func (r *Report) WriteText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Matrix size: %dx%d\n", r.Size, r.Size); err != nil {
		return err
	}
	for _, res := range r.Results {
		if _, err := fmt.Fprintf(w, "%s:\nTime: %.6g s\n", res.Label, res.Elapsed.Seconds()); err != nil {
			return err
		}
	}

	return nil
}

// yamlReport is the serialized shape of a Report.
type yamlReport struct {
	Size    int          `yaml:"size"`
	Workers int          `yaml:"workers"`
	Results []yamlResult `yaml:"results"`
	Speedup float64      `yaml:"speedup"`
}

type yamlResult struct {
	Label   string  `yaml:"label"`
	Workers int     `yaml:"workers"`
	Seconds float64 `yaml:"seconds"`
}

// WriteYAML renders the report as a YAML document, including Speedup.
func (r *Report) WriteYAML(w io.Writer) error {
	doc := yamlReport{
		Size:    r.Size,
		Workers: r.Workers,
		Results: make([]yamlResult, 0, len(r.Results)),
		Speedup: r.Speedup(),
	}
	for _, res := range r.Results {
		doc.Results = append(doc.Results, yamlResult{
			Label:   res.Label,
			Workers: res.Workers,
			Seconds: res.Elapsed.Seconds(),
		})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("bench: encode yaml: %w", err)
	}

	return enc.Close()
}
