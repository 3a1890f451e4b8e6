package cli

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaily_ArchivesDatedReport(t *testing.T) {
	now := time.Now()
	histPath := seedChromeHistory(t, []historyRow{
		{ts: now.Add(-1 * time.Hour), url: "https://github.com/a", title: "A"},
	})
	cfg := testConfig(t, histPath)

	cmd := &DailyCommand{Days: 1, globals: &GlobalFlags{}}
	stamp := time.Date(2024, 5, 6, 9, 0, 0, 0, time.Local)

	output := captureOutput(t, func() {
		require.NoError(t, cmd.run(cfg, stamp))
	})
	assert.Contains(t, output, "Daily summary saved to")

	archived := filepath.Join(cfg.Output.Dir, "daily", "2024-05-06_chrome_history.md")
	data, err := os.ReadFile(archived)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# Chrome Browsing History Analysis")

	// The archive is a copy of the report produced this run.
	report, err := os.ReadFile(filepath.Join(cfg.Output.Dir, "chrome_history_report.md"))
	require.NoError(t, err)
	assert.Equal(t, report, data)
}

func TestDaily_MissingHistoryPropagates(t *testing.T) {
	cfg := testConfig(t, filepath.Join(t.TempDir(), "no-such-History"))

	cmd := &DailyCommand{Days: 1, globals: &GlobalFlags{}}
	err := cmd.run(cfg, time.Now())
	require.Error(t, err)
}

func TestDaily_AnalyzeWithoutCredentialArchivesNothing(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	now := time.Now()
	histPath := seedChromeHistory(t, []historyRow{
		{ts: now.Add(-1 * time.Hour), url: "https://github.com/a", title: "A"},
	})
	cfg := testConfig(t, histPath)
	cfg.LLM.Provider = "openai"

	cmd := &DailyCommand{Days: 1, Analyze: true, globals: &GlobalFlags{}}
	stamp := time.Date(2024, 5, 6, 9, 0, 0, 0, time.Local)

	output := captureOutput(t, func() {
		require.NoError(t, cmd.run(cfg, stamp))
	})
	assert.Contains(t, output, "OPENAI_API_KEY not set")

	// Report is archived, insights are not.
	_, err := os.Stat(filepath.Join(cfg.Output.Dir, "daily", "2024-05-06_chrome_history.md"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(cfg.Output.Dir, "daily", "2024-05-06_insights.md"))
	assert.True(t, os.IsNotExist(err))
}

func TestDaily_AnalyzeWithLocalBackendArchivesInsights(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"response": "go to bed earlier"})
	}))
	defer srv.Close()

	now := time.Now()
	histPath := seedChromeHistory(t, []historyRow{
		{ts: now.Add(-1 * time.Hour), url: "https://github.com/a", title: "A"},
	})
	cfg := testConfig(t, histPath)
	cfg.LLM.Provider = "local"
	cfg.LLM.OllamaURL = srv.URL

	cmd := &DailyCommand{Days: 1, Analyze: true, globals: &GlobalFlags{}}
	stamp := time.Date(2024, 5, 6, 9, 0, 0, 0, time.Local)

	output := captureOutput(t, func() {
		require.NoError(t, cmd.run(cfg, stamp))
	})
	assert.Contains(t, output, "Daily insights saved to")

	data, err := os.ReadFile(filepath.Join(cfg.Output.Dir, "daily", "2024-05-06_insights.md"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "# Chrome History Analysis Insights")
	assert.Contains(t, string(data), "go to bed earlier")
}
