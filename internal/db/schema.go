package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const SchemaSQL = `
CREATE TABLE IF NOT EXISTS runs (
    id TEXT PRIMARY KEY,
    source TEXT,
    mode TEXT,
    passive_variant TEXT,
    created_at TEXT,
    paragraphs INTEGER,
    sentences INTEGER,
    words INTEGER,
    hard_sentences INTEGER,
    very_hard_sentences INTEGER,
    adverbs INTEGER,
    qualifiers INTEGER,
    passive_voice INTEGER,
    complex INTEGER,
    mode_score INTEGER,
    counters TEXT
);

CREATE TABLE IF NOT EXISTS issues (
    id INTEGER PRIMARY KEY,
    run_id TEXT REFERENCES runs(id),
    category TEXT,
    excerpt TEXT,
    suggestion TEXT,
    severity TEXT
);

CREATE INDEX IF NOT EXISTS idx_issues_run ON issues(run_id);
`

func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(SchemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return db, nil
}
