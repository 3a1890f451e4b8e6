package cli

import (
	"fmt"

	"github.com/runnerr0/hindsight/internal/config"
	"github.com/runnerr0/hindsight/internal/report"
)

// Execute implements the go-flags Commander interface for AnalyzeCommand.
func (c *AnalyzeCommand) Execute(args []string) error {
	cfg, err := loadConfig(c.globals)
	if err != nil {
		return err
	}
	return c.run(cfg)
}

// run executes the analyze pipeline against a provided config (used by tests).
func (c *AnalyzeCommand) run(cfg *config.Config) error {
	days := cfg.History.LookbackDays
	if c.Days != nil {
		days = *c.Days
	}

	w, err := runPipeline(cfg, days, report.Format(c.Output))
	if err != nil {
		return err
	}

	fmt.Printf("Output saved to %s directory\n", w.Dir())
	fmt.Printf("To get AI insights, run 'hindsight insights' with the generated prompt in %s.\n", w.PromptPath())
	return nil
}
