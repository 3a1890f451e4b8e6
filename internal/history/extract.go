package history

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"net/url"
	"os"
	"time"

	_ "github.com/mattn/go-sqlite3"
	log "github.com/sirupsen/logrus"
)

// Chrome stores timestamps as microseconds since 1601-01-01 UTC (the Windows
// FILETIME epoch). chromeEpochOffset is the gap between that epoch and the
// Unix epoch, in seconds.
const (
	chromeEpochOffset = 11644473600
	microsPerSecond   = 1_000_000
)

// visitQuery joins the visits and urls tables, bounded by a Chrome-epoch
// cutoff timestamp, newest first.
const visitQuery = `
	SELECT visits.visit_time, urls.url, urls.title, visits.visit_duration
	FROM visits JOIN urls ON visits.url = urls.id
	WHERE visits.visit_time > ?
	ORDER BY visits.visit_time DESC
`

// Extractor reads visits out of a Chrome History database. A running browser
// holds an exclusive lock on the file, so every extraction works against a
// temporary copy that is removed before Extract returns.
type Extractor struct {
	dbPath  string
	exclude map[string]struct{}

	// now is injectable for tests; defaults to time.Now.
	now func() time.Time
}

// NewExtractor creates an Extractor for the History database at dbPath.
// Visits whose domain appears in excludeDomains are dropped.
func NewExtractor(dbPath string, excludeDomains []string) *Extractor {
	exclude := make(map[string]struct{}, len(excludeDomains))
	for _, d := range excludeDomains {
		exclude[d] = struct{}{}
	}
	return &Extractor{
		dbPath:  dbPath,
		exclude: exclude,
		now:     time.Now,
	}
}

// Extract returns all visits within the lookback window of the given number
// of days, newest first, with derived fields populated. A missing source
// database or a failing query is a hard error; the caller is expected to
// abort the run.
func (e *Extractor) Extract(ctx context.Context, days int) ([]Visit, error) {
	if _, err := os.Stat(e.dbPath); err != nil {
		return nil, fmt.Errorf("chrome history database not found at %s (is Chrome installed?): %w", e.dbPath, err)
	}

	tmpPath, err := copyToTemp(e.dbPath)
	if err != nil {
		return nil, fmt.Errorf("copying history database: %w", err)
	}
	defer os.Remove(tmpPath)

	db, err := sql.Open("sqlite3", "file:"+tmpPath+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("opening history copy: %w", err)
	}
	defer db.Close()

	cutoff := toChromeMicros(e.now().AddDate(0, 0, -days))
	log.Debugf("querying visits newer than chrome timestamp %d", cutoff)

	rows, err := db.QueryContext(ctx, visitQuery, cutoff)
	if err != nil {
		return nil, fmt.Errorf("querying visits: %w", err)
	}
	defer rows.Close()

	visits := []Visit{}
	for rows.Next() {
		var visitTime, duration int64
		var rawURL string
		var title sql.NullString
		if err := rows.Scan(&visitTime, &rawURL, &title, &duration); err != nil {
			return nil, fmt.Errorf("scanning visit: %w", err)
		}

		v := Visit{
			Timestamp: fromChromeMicros(visitTime),
			URL:       rawURL,
			Title:     title.String,
			Duration:  duration / microsPerSecond,
		}
		v.Hour = v.Timestamp.Hour()
		v.Date = v.Timestamp.Format("2006-01-02")
		v.Weekday = v.Timestamp.Weekday().String()
		v.Domain = extractDomain(rawURL)

		if _, excluded := e.exclude[v.Domain]; excluded {
			continue
		}
		visits = append(visits, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading visits: %w", err)
	}

	return visits, nil
}

// toChromeMicros converts a time to Chrome's microseconds-since-1601 format.
func toChromeMicros(t time.Time) int64 {
	return (t.Unix() + chromeEpochOffset) * microsPerSecond
}

// fromChromeMicros converts a Chrome timestamp to a local time.Time.
func fromChromeMicros(micros int64) time.Time {
	secs := micros/microsPerSecond - chromeEpochOffset
	nanos := (micros % microsPerSecond) * 1000
	return time.Unix(secs, nanos).Local()
}

// extractDomain pulls the hostname from a URL string.
func extractDomain(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Hostname()
}

// copyToTemp copies the history database to a fresh temporary file and
// returns its path. The caller owns the file and must remove it.
func copyToTemp(src string) (string, error) {
	in, err := os.Open(src)
	if err != nil {
		return "", err
	}
	defer in.Close()

	out, err := os.CreateTemp("", "hindsight-history-*.db")
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(out.Name())
		return "", err
	}
	if err := out.Close(); err != nil {
		os.Remove(out.Name())
		return "", err
	}

	return out.Name(), nil
}
