// Package analysis computes the fixed set of aggregate statistics derived
// from a set of extracted visits.
package analysis

import (
	"math"
	"sort"

	"github.com/runnerr0/hindsight/internal/history"
)

// TopDomainLimit is how many domains the aggregate keeps, by visit count.
const TopDomainLimit = 20

// DomainCount pairs a domain with its visit count.
type DomainCount struct {
	Domain string `json:"domain"`
	Count  int    `json:"count"`
}

// Aggregates holds the summary statistics computed once per run. It is never
// mutated after Analyze returns it.
type Aggregates struct {
	HourlyCounts  map[int]int
	WeekdayCounts map[string]int
	TopDomains    []DomainCount
	AvgFirstHour  float64
	AvgLastHour   float64
}

// HasAverages reports whether the averaged browsing hours are defined.
// They are NaN when the input contained no visits.
func (a Aggregates) HasAverages() bool {
	return !math.IsNaN(a.AvgFirstHour) && !math.IsNaN(a.AvgLastHour)
}

// Analyze computes all aggregates from the given visits. Empty input yields
// empty count maps and NaN averages; it is not an error.
func Analyze(visits []history.Visit) Aggregates {
	agg := Aggregates{
		HourlyCounts:  make(map[int]int),
		WeekdayCounts: make(map[string]int),
		TopDomains:    []DomainCount{},
		AvgFirstHour:  math.NaN(),
		AvgLastHour:   math.NaN(),
	}

	domainCounts := make(map[string]int)

	// Per-date min/max visit timestamps for the first/last hour averages.
	type dateRange struct {
		first history.Visit
		last  history.Visit
	}
	dates := make(map[string]*dateRange)

	for _, v := range visits {
		agg.HourlyCounts[v.Hour]++
		agg.WeekdayCounts[v.Weekday]++
		domainCounts[v.Domain]++

		r, ok := dates[v.Date]
		if !ok {
			dates[v.Date] = &dateRange{first: v, last: v}
			continue
		}
		if v.Timestamp.Before(r.first.Timestamp) {
			r.first = v
		}
		if v.Timestamp.After(r.last.Timestamp) {
			r.last = v
		}
	}

	agg.TopDomains = topDomains(domainCounts, TopDomainLimit)

	if len(dates) > 0 {
		var firstSum, lastSum float64
		for _, r := range dates {
			firstSum += float64(r.first.Hour)
			lastSum += float64(r.last.Hour)
		}
		n := float64(len(dates))
		agg.AvgFirstHour = firstSum / n
		agg.AvgLastHour = lastSum / n
	}

	return agg
}

// topDomains sorts domains by count descending, ties broken by lexical
// domain order so repeated runs on identical input are stable, and keeps
// the first limit entries.
func topDomains(counts map[string]int, limit int) []DomainCount {
	out := make([]DomainCount, 0, len(counts))
	for d, c := range counts {
		out = append(out, DomainCount{Domain: d, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Domain < out[j].Domain
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// SortedHours returns the hours present in the hourly counts in ascending
// order, for deterministic rendering.
func (a Aggregates) SortedHours() []int {
	hours := make([]int, 0, len(a.HourlyCounts))
	for h := range a.HourlyCounts {
		hours = append(hours, h)
	}
	sort.Ints(hours)
	return hours
}

// TotalVisits returns the total visit count across all hours.
func (a Aggregates) TotalVisits() int {
	total := 0
	for _, c := range a.HourlyCounts {
		total += c
	}
	return total
}
