package history

import "time"

// Visit represents a single browsing event pulled from the Chrome history
// store, enriched with the derived time and domain fields used downstream.
type Visit struct {
	Timestamp time.Time
	URL       string
	Title     string
	Duration  int64 // seconds

	// Derived at extraction time, immutable afterwards.
	Hour    int    // 0-23, local time
	Date    string // local calendar date, 2006-01-02
	Weekday string // English weekday name
	Domain  string // host component of URL
}
