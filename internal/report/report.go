// Package report renders visits and their aggregates into the supported
// output encodings, and builds the prompt handed to an LLM backend.
package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/runnerr0/hindsight/internal/analysis"
	"github.com/runnerr0/hindsight/internal/history"
)

// Format selects the output encoding for a run.
type Format string

const (
	FormatCSV      Format = "csv"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

// PromptFileName is the fixed name of the saved LLM prompt inside the
// output directory.
const PromptFileName = "llm_prompt.txt"

// InsightsFileName is the fixed name of the saved LLM insights inside the
// output directory.
const InsightsFileName = "llm_insights.md"

// recentSampleSize is how many of the newest visits the markdown report and
// the LLM prompt include.
const recentSampleSize = 10

// Writer renders artifacts into an output directory using a fixed file
// prefix. Same-named files from earlier runs are overwritten.
type Writer struct {
	dir    string
	prefix string
}

// NewWriter creates a Writer for the given output directory and artifact
// prefix.
func NewWriter(dir, prefix string) *Writer {
	return &Writer{dir: dir, prefix: prefix}
}

// Dir returns the writer's output directory.
func (w *Writer) Dir() string { return w.dir }

// ReportPath returns the path of the markdown report artifact.
func (w *Writer) ReportPath() string {
	return filepath.Join(w.dir, w.prefix+"_report.md")
}

// PromptPath returns the fixed path of the saved LLM prompt.
func (w *Writer) PromptPath() string {
	return filepath.Join(w.dir, PromptFileName)
}

// Write renders visits and aggregates in the requested format.
func (w *Writer) Write(format Format, visits []history.Visit, agg analysis.Aggregates) error {
	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	switch format {
	case FormatCSV:
		return w.writeCSV(visits, agg)
	case FormatJSON:
		return w.writeJSON(visits, agg)
	case FormatMarkdown:
		return w.writeMarkdown(visits, agg)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// WritePrompt renders the LLM prompt and saves it to the fixed prompt path,
// regardless of the chosen output format. Returns the path written.
func (w *Writer) WritePrompt(visits []history.Visit, agg analysis.Aggregates) (string, error) {
	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	path := w.PromptPath()
	if err := os.WriteFile(path, []byte(BuildPrompt(visits, agg)), 0644); err != nil {
		return "", fmt.Errorf("writing prompt file: %w", err)
	}
	return path, nil
}

// writeFile writes an artifact named prefix+suffix into the output directory.
func (w *Writer) writeFile(suffix string, data []byte) error {
	path := filepath.Join(w.dir, w.prefix+suffix)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// recentVisits returns up to n of the newest visits. The extractor already
// orders visits newest first, so this is a simple prefix.
func recentVisits(visits []history.Visit, n int) []history.Visit {
	if len(visits) < n {
		n = len(visits)
	}
	return visits[:n]
}
