package cli

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsights_MissingPromptFileIsNotFatal(t *testing.T) {
	cfg := testConfig(t, "unused")

	cmd := &InsightsCommand{
		Provider:   "openai",
		PromptFile: filepath.Join(t.TempDir(), "missing_prompt.txt"),
		globals:    &GlobalFlags{},
	}

	output := captureOutput(t, func() {
		require.NoError(t, cmd.run(cfg))
	})
	assert.Contains(t, output, "Prompt file not found")
	assert.Contains(t, output, "hindsight analyze")
}

func TestInsights_MissingCredentialLeavesInsightsUntouched(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	cfg := testConfig(t, "unused")
	require.NoError(t, os.MkdirAll(cfg.Output.Dir, 0755))

	promptFile := filepath.Join(cfg.Output.Dir, "llm_prompt.txt")
	require.NoError(t, os.WriteFile(promptFile, []byte("analyze this"), 0644))

	// Pre-existing insights from an earlier successful run.
	insightsFile := filepath.Join(cfg.Output.Dir, "llm_insights.md")
	require.NoError(t, os.WriteFile(insightsFile, []byte("prior insights"), 0644))

	cmd := &InsightsCommand{Provider: "openai", PromptFile: promptFile, globals: &GlobalFlags{}}
	output := captureOutput(t, func() {
		require.NoError(t, cmd.run(cfg))
	})
	assert.Contains(t, output, "Failed to get insights from openai")
	assert.Contains(t, output, "OPENAI_API_KEY not set")

	data, err := os.ReadFile(insightsFile)
	require.NoError(t, err)
	assert.Equal(t, "prior insights", string(data))
}

func TestInsights_LocalBackendWritesInsights(t *testing.T) {
	var gotPrompt string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Prompt string `json:"prompt"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		gotPrompt = req.Prompt
		_ = json.NewEncoder(w).Encode(map[string]any{"response": "morning person, mostly coding"})
	}))
	defer srv.Close()

	cfg := testConfig(t, "unused")
	cfg.LLM.OllamaURL = srv.URL
	require.NoError(t, os.MkdirAll(cfg.Output.Dir, 0755))

	promptFile := filepath.Join(cfg.Output.Dir, "llm_prompt.txt")
	require.NoError(t, os.WriteFile(promptFile, []byte("analyze this history"), 0644))

	cmd := &InsightsCommand{Provider: "local", PromptFile: promptFile, globals: &GlobalFlags{}}
	output := captureOutput(t, func() {
		require.NoError(t, cmd.run(cfg))
	})

	assert.Equal(t, "analyze this history", gotPrompt)
	assert.Contains(t, output, "Analyzing browsing history with local...")
	assert.Contains(t, output, "=== LLM Insights ===")
	assert.Contains(t, output, "morning person, mostly coding")

	data, err := os.ReadFile(filepath.Join(cfg.Output.Dir, "llm_insights.md"))
	require.NoError(t, err)
	assert.Equal(t, "# Chrome History Analysis Insights\n\nmorning person, mostly coding", string(data))
}

func TestInsights_BackendHTTPErrorYieldsNoResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusInternalServerError)
	}))
	defer srv.Close()

	cfg := testConfig(t, "unused")
	cfg.LLM.OllamaURL = srv.URL
	require.NoError(t, os.MkdirAll(cfg.Output.Dir, 0755))

	promptFile := filepath.Join(cfg.Output.Dir, "llm_prompt.txt")
	require.NoError(t, os.WriteFile(promptFile, []byte("prompt"), 0644))

	cmd := &InsightsCommand{Provider: "local", PromptFile: promptFile, globals: &GlobalFlags{}}
	output := captureOutput(t, func() {
		require.NoError(t, cmd.run(cfg))
	})
	assert.Contains(t, output, "Failed to get insights from local")

	_, err := os.Stat(filepath.Join(cfg.Output.Dir, "llm_insights.md"))
	assert.True(t, os.IsNotExist(err))
}
