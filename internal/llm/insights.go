package llm

import (
	"fmt"
	"os"
	"path/filepath"
)

// insightsHeading prefixes every saved insights file.
const insightsHeading = "# Chrome History Analysis Insights\n\n"

// SaveInsights writes the returned text, prefixed with the fixed heading,
// to path. The parent directory is created if absent; an existing file is
// overwritten.
func SaveInsights(path, insights string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(insightsHeading+insights), 0644); err != nil {
		return fmt.Errorf("writing insights file: %w", err)
	}
	return nil
}
