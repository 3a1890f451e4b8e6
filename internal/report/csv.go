package report

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/runnerr0/hindsight/internal/analysis"
	"github.com/runnerr0/hindsight/internal/history"
)

// timestampLayout is how visit timestamps are rendered in tabular output.
const timestampLayout = "2006-01-02 15:04:05"

// writeCSV renders the three tabular artifacts: raw visits, hourly counts,
// and top domains, each with a header row.
func (w *Writer) writeCSV(visits []history.Visit, agg analysis.Aggregates) error {
	raw, err := rawCSV(visits)
	if err != nil {
		return err
	}
	if err := w.writeFile("_raw.csv", raw); err != nil {
		return err
	}

	hourly, err := hourlyCSV(agg)
	if err != nil {
		return err
	}
	if err := w.writeFile("_hourly.csv", hourly); err != nil {
		return err
	}

	domains, err := domainsCSV(agg)
	if err != nil {
		return err
	}
	return w.writeFile("_domains.csv", domains)
}

func rawCSV(visits []history.Visit) ([]byte, error) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	if err := cw.Write([]string{"visit_time", "url", "title", "duration_seconds", "hour", "date", "day_of_week", "domain"}); err != nil {
		return nil, err
	}
	for _, v := range visits {
		record := []string{
			v.Timestamp.Format(timestampLayout),
			v.URL,
			v.Title,
			strconv.FormatInt(v.Duration, 10),
			strconv.Itoa(v.Hour),
			v.Date,
			v.Weekday,
			v.Domain,
		}
		if err := cw.Write(record); err != nil {
			return nil, err
		}
	}

	cw.Flush()
	return buf.Bytes(), cw.Error()
}

func hourlyCSV(agg analysis.Aggregates) ([]byte, error) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	if err := cw.Write([]string{"hour", "count"}); err != nil {
		return nil, err
	}
	for _, h := range agg.SortedHours() {
		if err := cw.Write([]string{strconv.Itoa(h), strconv.Itoa(agg.HourlyCounts[h])}); err != nil {
			return nil, err
		}
	}

	cw.Flush()
	return buf.Bytes(), cw.Error()
}

func domainsCSV(agg analysis.Aggregates) ([]byte, error) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	if err := cw.Write([]string{"domain", "count"}); err != nil {
		return nil, err
	}
	for _, d := range agg.TopDomains {
		if err := cw.Write([]string{d.Domain, strconv.Itoa(d.Count)}); err != nil {
			return nil, err
		}
	}

	cw.Flush()
	return buf.Bytes(), cw.Error()
}
