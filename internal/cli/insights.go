package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/runnerr0/hindsight/internal/config"
	"github.com/runnerr0/hindsight/internal/llm"
	"github.com/runnerr0/hindsight/internal/report"
)

// Execute implements the go-flags Commander interface for InsightsCommand.
func (c *InsightsCommand) Execute(args []string) error {
	cfg, err := loadConfig(c.globals)
	if err != nil {
		return err
	}
	return c.run(cfg)
}

// run executes the submission step against a provided config (used by tests).
// A submission that cannot produce insights is not an error: it prints a
// diagnostic and the process still exits zero.
func (c *InsightsCommand) run(cfg *config.Config) error {
	insights, ok, err := runSubmission(cfg, c.Provider, c.PromptFile)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	fmt.Println("\n=== LLM Insights ===")
	fmt.Println(insights)
	return nil
}

// runSubmission reads the saved prompt, submits it to the named backend, and
// writes the insights file on success. Missing preconditions and backend
// failures report a diagnostic and yield no result; only failures writing
// the insights file surface as errors.
func runSubmission(cfg *config.Config, providerName, promptFile string) (string, bool, error) {
	// Credentials may live in a local .env file.
	if err := godotenv.Load(); err == nil {
		log.Debug("loaded environment from .env")
	}

	prompt, err := os.ReadFile(promptFile)
	if err != nil {
		fmt.Printf("Prompt file not found: %s\n", promptFile)
		fmt.Println("Run 'hindsight analyze' first to generate the prompt file.")
		return "", false, nil
	}

	provider, err := selectProvider(providerName, cfg.LLM)
	if err != nil {
		fmt.Println(err)
		return "", false, nil
	}

	fmt.Printf("Analyzing browsing history with %s...\n", provider.Name())

	insights, err := provider.Generate(context.Background(), string(prompt))
	if err != nil {
		fmt.Printf("Failed to get insights from %s: %v\n", provider.Name(), err)
		return "", false, nil
	}

	insightsPath := filepath.Join(cfg.Output.Dir, report.InsightsFileName)
	if err := llm.SaveInsights(insightsPath, insights); err != nil {
		return "", false, err
	}
	fmt.Printf("Insights saved to %s\n", insightsPath)

	return insights, true, nil
}

// selectProvider maps a provider name onto its backend client. Exactly one
// backend per invocation; there is no fallback between them.
func selectProvider(name string, cfg config.LLMConfig) (llm.Provider, error) {
	switch name {
	case "openai":
		return llm.NewOpenAIClient(os.Getenv("OPENAI_API_KEY"), cfg.OpenAIModel), nil
	case "anthropic":
		return llm.NewAnthropicClient(os.Getenv("ANTHROPIC_API_KEY"), cfg.AnthropicModel, cfg.MaxTokens), nil
	case "local":
		return llm.NewOllamaClient(cfg.OllamaURL, cfg.OllamaModel), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider %q (use openai, anthropic, or local)", name)
	}
}
