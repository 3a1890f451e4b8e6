package cli

import (
	"bytes"
	"database/sql"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/runnerr0/hindsight/internal/config"
)

// captureOutput captures stdout during fn execution and returns it as a string.
func captureOutput(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

// intp returns a pointer to n, for optional flag values in command literals.
func intp(n int) *int { return &n }

// historyRow is one visit to seed into a Chrome-shaped History fixture.
type historyRow struct {
	ts    time.Time
	url   string
	title string
}

// chromeMicros converts a time into Chrome's microseconds-since-1601 format.
func chromeMicros(ts time.Time) int64 {
	return (ts.Unix() + 11644473600) * 1_000_000
}

// seedChromeHistory writes a Chrome-shaped History database with the given
// visits and returns its path.
func seedChromeHistory(t *testing.T, rows []historyRow) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "History")
	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`
		CREATE TABLE urls (
			id    INTEGER PRIMARY KEY AUTOINCREMENT,
			url   TEXT NOT NULL,
			title TEXT
		);
		CREATE TABLE visits (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			url            INTEGER NOT NULL,
			visit_time     INTEGER NOT NULL,
			visit_duration INTEGER NOT NULL DEFAULT 0
		);
	`)
	require.NoError(t, err)

	for _, row := range rows {
		res, err := db.Exec("INSERT INTO urls (url, title) VALUES (?, ?)", row.url, row.title)
		require.NoError(t, err)
		urlID, err := res.LastInsertId()
		require.NoError(t, err)

		_, err = db.Exec("INSERT INTO visits (url, visit_time, visit_duration) VALUES (?, ?, 0)",
			urlID, chromeMicros(row.ts))
		require.NoError(t, err)
	}

	return path
}

// testConfig builds a config pointing at the given history fixture with an
// isolated output directory.
func testConfig(t *testing.T, historyPath string) *config.Config {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.History.Path = historyPath
	cfg.Output.Dir = filepath.Join(t.TempDir(), "output")
	return cfg
}
