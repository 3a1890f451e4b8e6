package config

// DefaultConfig returns a Config populated with all default values.
func DefaultConfig() *Config {
	return &Config{
		History: HistoryConfig{
			Path:           "",
			LookbackDays:   30,
			ExcludeDomains: DefaultExcludeDomains(),
		},
		Output: OutputConfig{
			Dir:    "output",
			Prefix: "chrome_history",
		},
		LLM: LLMConfig{
			Provider:       "openai",
			OpenAIModel:    "gpt-4",
			AnthropicModel: "claude-3-opus-20240229",
			OllamaURL:      "http://localhost:11434",
			OllamaModel:    "llama3",
			MaxTokens:      2000,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
