package report

import (
	"encoding/json"
	"math"

	"github.com/runnerr0/hindsight/internal/analysis"
	"github.com/runnerr0/hindsight/internal/history"
)

// visitJSON is the JSON shape of one raw visit record.
type visitJSON struct {
	VisitTime       string `json:"visit_time"`
	URL             string `json:"url"`
	Title           string `json:"title"`
	DurationSeconds int64  `json:"duration_seconds"`
	Hour            int    `json:"hour"`
	Date            string `json:"date"`
	DayOfWeek       string `json:"day_of_week"`
	Domain          string `json:"domain"`
}

// analysisJSON is the JSON shape of the aggregate document. The averaged
// hours are pointers because they are undefined (null) for empty input;
// encoding/json cannot represent NaN.
type analysisJSON struct {
	HourlyCounts  map[int]int            `json:"hourly_counts"`
	WeekdayCounts map[string]int         `json:"weekday_counts"`
	TopDomains    []analysis.DomainCount `json:"top_domains"`
	AvgFirstHour  *float64               `json:"avg_first_hour"`
	AvgLastHour   *float64               `json:"avg_last_hour"`
}

// writeJSON renders the raw visit array and the aggregate document.
func (w *Writer) writeJSON(visits []history.Visit, agg analysis.Aggregates) error {
	raw, err := json.MarshalIndent(toVisitJSON(visits), "", "  ")
	if err != nil {
		return err
	}
	if err := w.writeFile("_raw.json", append(raw, '\n')); err != nil {
		return err
	}

	doc, err := json.MarshalIndent(toAnalysisJSON(agg), "", "  ")
	if err != nil {
		return err
	}
	return w.writeFile("_analysis.json", append(doc, '\n'))
}

func toVisitJSON(visits []history.Visit) []visitJSON {
	out := make([]visitJSON, len(visits))
	for i, v := range visits {
		out[i] = visitJSON{
			VisitTime:       v.Timestamp.Format(timestampLayout),
			URL:             v.URL,
			Title:           v.Title,
			DurationSeconds: v.Duration,
			Hour:            v.Hour,
			Date:            v.Date,
			DayOfWeek:       v.Weekday,
			Domain:          v.Domain,
		}
	}
	return out
}

func toAnalysisJSON(agg analysis.Aggregates) analysisJSON {
	doc := analysisJSON{
		HourlyCounts:  agg.HourlyCounts,
		WeekdayCounts: agg.WeekdayCounts,
		TopDomains:    agg.TopDomains,
	}
	if !math.IsNaN(agg.AvgFirstHour) {
		f := agg.AvgFirstHour
		doc.AvgFirstHour = &f
	}
	if !math.IsNaN(agg.AvgLastHour) {
		l := agg.AvgLastHour
		doc.AvgLastHour = &l
	}
	return doc
}
