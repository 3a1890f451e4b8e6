package report

import (
	"fmt"
	"strings"

	"github.com/runnerr0/hindsight/internal/analysis"
	"github.com/runnerr0/hindsight/internal/history"
)

// BuildPrompt renders the natural-language prompt submitted to a
// text-generation backend. The prompt depends only on its inputs (no clock
// reads), so identical input always produces byte-identical text.
func BuildPrompt(visits []history.Visit, agg analysis.Aggregates) string {
	var b strings.Builder

	b.WriteString("Analyze this Chrome browsing history data:\n\n")

	b.WriteString("1. Hourly activity pattern:\n")
	fmt.Fprintf(&b, "%6s %7s\n", "hour", "count")
	for _, h := range agg.SortedHours() {
		fmt.Fprintf(&b, "%6d %7d\n", h, agg.HourlyCounts[h])
	}

	b.WriteString("\n2. Top domains visited:\n")
	fmt.Fprintf(&b, "%-40s %7s\n", "domain", "count")
	for _, d := range agg.TopDomains {
		fmt.Fprintf(&b, "%-40s %7d\n", d.Domain, d.Count)
	}

	fmt.Fprintf(&b, "\n3. Average first browsing hour: %.2f\n", agg.AvgFirstHour)
	fmt.Fprintf(&b, "4. Average last browsing hour: %.2f\n", agg.AvgLastHour)

	b.WriteString("\n5. Sample of recent URLs and titles:\n")
	for _, v := range recentVisits(visits, recentSampleSize) {
		fmt.Fprintf(&b, "%s  %s  %s\n", v.Timestamp.Format(timestampLayout), v.Title, v.URL)
	}

	b.WriteString(`
Based on this data, please provide insights about:
1. Sleep patterns (when the person likely wakes up and goes to sleep)
2. Work focus and productivity patterns
3. Main interests based on content
4. Recommendations for better time management
`)

	return b.String()
}
