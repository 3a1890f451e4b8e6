package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/runnerr0/hindsight/internal/analysis"
	"github.com/runnerr0/hindsight/internal/history"
)

// topDomainsInReport limits the markdown report to the most visited domains;
// the full top-20 list lives in the tabular/JSON artifacts.
const topDomainsInReport = 10

// writeMarkdown renders the single human-readable report document.
func (w *Writer) writeMarkdown(visits []history.Visit, agg analysis.Aggregates) error {
	return w.writeFile("_report.md", []byte(buildMarkdown(visits, agg, time.Now())))
}

func buildMarkdown(visits []history.Visit, agg analysis.Aggregates, now time.Time) string {
	var b strings.Builder

	b.WriteString("# Chrome Browsing History Analysis\n\n")
	fmt.Fprintf(&b, "Analysis date: %s\n\n", now.Format(timestampLayout))

	b.WriteString("## Activity by Hour\n\n")
	for _, h := range agg.SortedHours() {
		fmt.Fprintf(&b, "- %d:00 - %d visits\n", h, agg.HourlyCounts[h])
	}

	b.WriteString("\n## Top Domains\n\n")
	domains := agg.TopDomains
	if len(domains) > topDomainsInReport {
		domains = domains[:topDomainsInReport]
	}
	for _, d := range domains {
		fmt.Fprintf(&b, "- %s: %d visits\n", d.Domain, d.Count)
	}

	b.WriteString("\n## Estimated Sleep Patterns\n\n")
	fmt.Fprintf(&b, "- Average first browsing hour: %.2f\n", agg.AvgFirstHour)
	fmt.Fprintf(&b, "- Average last browsing hour: %.2f\n", agg.AvgLastHour)

	b.WriteString("\n## Recent Browsing Activity\n\n")
	for _, v := range recentVisits(visits, recentSampleSize) {
		fmt.Fprintf(&b, "- %s: [%s](%s)\n", v.Timestamp.Format(timestampLayout), v.Title, v.URL)
	}

	return b.String()
}
