package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/runnerr0/hindsight/internal/config"
	"github.com/runnerr0/hindsight/internal/report"
)

// Execute implements the go-flags Commander interface for DailyCommand.
func (c *DailyCommand) Execute(args []string) error {
	cfg, err := loadConfig(c.globals)
	if err != nil {
		return err
	}
	return c.run(cfg, time.Now())
}

// run executes the daily orchestration against a provided config and clock
// (used by tests). The pipeline runs in markdown mode; the resulting report
// is archived under a date-stamped path, and with --analyze the LLM
// submission step runs and its insights are archived under the same stamp.
func (c *DailyCommand) run(cfg *config.Config, now time.Time) error {
	w, err := runPipeline(cfg, c.Days, report.FormatMarkdown)
	if err != nil {
		return err
	}

	reportData, err := os.ReadFile(w.ReportPath())
	if err != nil {
		return fmt.Errorf("expected report not found after formatting: %w", err)
	}

	dailyDir := filepath.Join(cfg.Output.Dir, "daily")
	if err := os.MkdirAll(dailyDir, 0755); err != nil {
		return fmt.Errorf("creating daily archive directory: %w", err)
	}

	stamp := now.Format("2006-01-02")
	datedReport := filepath.Join(dailyDir, stamp+"_chrome_history.md")
	if err := os.WriteFile(datedReport, reportData, 0644); err != nil {
		return fmt.Errorf("archiving daily report: %w", err)
	}
	fmt.Printf("Daily summary saved to %s\n", datedReport)

	if !c.Analyze {
		return nil
	}

	// Submission failures yield no insights, which just means nothing to
	// archive; the daily run itself still succeeds.
	_, ok, err := runSubmission(cfg, cfg.LLM.Provider, w.PromptPath())
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	insightsData, err := os.ReadFile(filepath.Join(cfg.Output.Dir, report.InsightsFileName))
	if err != nil {
		return fmt.Errorf("reading insights file: %w", err)
	}

	datedInsights := filepath.Join(dailyDir, stamp+"_insights.md")
	if err := os.WriteFile(datedInsights, insightsData, 0644); err != nil {
		return fmt.Errorf("archiving daily insights: %w", err)
	}
	fmt.Printf("Daily insights saved to %s\n", datedInsights)

	return nil
}
