package cli

// GlobalFlags holds flags available to all subcommands.
type GlobalFlags struct {
	Config  string `long:"config" description:"Path to config file" default:""`
	Verbose bool   `long:"verbose" description:"Enable verbose output"`
	Version bool   `long:"version" description:"Show version and exit"`
}

// AnalyzeCommand — extract browsing history, compute aggregates, write
// artifacts in the chosen format plus the LLM prompt file.
type AnalyzeCommand struct {
	// Days is a pointer so an explicit --days 0 is distinguishable from the
	// flag being absent, in which case the configured lookback applies.
	Days   *int   `long:"days" description:"Number of days of history to analyze (default: config lookback_days, 30)"`
	Output string `long:"output" description:"Output format: csv | json | markdown" choice:"csv" choice:"json" choice:"markdown" default:"csv"`

	globals *GlobalFlags
	version string
}

// DailyCommand — run the analyzer for a short lookback, archive the dated
// report, and optionally submit it for LLM insights.
type DailyCommand struct {
	Days    int  `long:"days" description:"Number of days to look back" default:"1"`
	Analyze bool `long:"analyze" description:"Send the summary to an LLM for analysis"`

	globals *GlobalFlags
	version string
}

// InsightsCommand — submit the saved prompt to a text-generation backend.
type InsightsCommand struct {
	Provider   string `long:"provider" description:"LLM provider: openai | anthropic | local" choice:"openai" choice:"anthropic" choice:"local" default:"openai"`
	PromptFile string `long:"prompt_file" description:"Path to the prompt file" default:"output/llm_prompt.txt"`

	globals *GlobalFlags
	version string
}
