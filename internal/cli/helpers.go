package cli

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/runnerr0/hindsight/internal/analysis"
	"github.com/runnerr0/hindsight/internal/config"
	"github.com/runnerr0/hindsight/internal/history"
	"github.com/runnerr0/hindsight/internal/report"
)

// loadConfig resolves the config as flag > default path: --config when
// given, otherwise the default location (created with defaults on first
// run). The configured log level applies unless --verbose already raised it.
func loadConfig(globals *GlobalFlags) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if globals != nil && globals.Config != "" {
		cfg, err = config.Load(globals.Config)
	} else {
		cfg, err = config.LoadOrCreate()
	}
	if err != nil {
		return nil, err
	}

	if globals == nil || !globals.Verbose {
		if lvl, err := log.ParseLevel(cfg.Logging.Level); err == nil {
			log.SetLevel(lvl)
		}
	}

	return cfg, nil
}

// runPipeline executes the extract, aggregate, and format stages: it reads
// the history store, computes the aggregates, writes the artifacts in the
// chosen format, and always saves the LLM prompt file. Extraction failures
// are fatal to the run.
func runPipeline(cfg *config.Config, days int, format report.Format) (*report.Writer, error) {
	histPath := cfg.History.Path
	if histPath == "" {
		p, err := history.DefaultPath()
		if err != nil {
			return nil, err
		}
		histPath = p
	}

	log.Infof("Extracting Chrome history for the past %d days...", days)
	extractor := history.NewExtractor(histPath, cfg.History.ExcludeDomains)
	visits, err := extractor.Extract(context.Background(), days)
	if err != nil {
		return nil, err
	}

	log.Infof("Analyzing %d browsing history entries...", len(visits))
	agg := analysis.Analyze(visits)

	w := report.NewWriter(cfg.Output.Dir, cfg.Output.Prefix)
	if err := w.Write(format, visits, agg); err != nil {
		return nil, fmt.Errorf("saving %s output: %w", format, err)
	}

	promptPath, err := w.WritePrompt(visits, agg)
	if err != nil {
		return nil, err
	}
	log.Debugf("prompt saved to %s", promptPath)

	return w, nil
}
