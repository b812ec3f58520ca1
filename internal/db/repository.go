package db

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"prosecoach/internal/feedback"
)

// Fixed width so created_at sorts as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

type RunRecord struct {
	ID             string
	Source         string
	Mode           feedback.Mode
	PassiveVariant feedback.PassiveVariant
	CreatedAt      time.Time
	Counters       feedback.Counters
	// ModeScore is the whole-document score of the mode, nil without one.
	ModeScore *int
}

type RunSummary struct {
	ID                string
	Source            string
	Mode              feedback.Mode
	CreatedAt         time.Time
	Sentences         int
	Words             int
	HardSentences     int
	VeryHardSentences int
	ModeScore         *int
	Issues            int
}

// SaveRun stores a run and its issues in one transaction.
func SaveRun(dbPath string, run RunRecord) error {
	conn, err := Open(dbPath)
	if err != nil {
		return err
	}
	defer conn.Close()

	tx, err := conn.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	counters, err := json.Marshal(run.Counters)
	if err != nil {
		return fmt.Errorf("encode counters: %w", err)
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}
	c := run.Counters
	var score sql.NullInt64
	if run.ModeScore != nil {
		score = sql.NullInt64{Int64: int64(*run.ModeScore), Valid: true}
	}

	if _, err := tx.Exec(
		`INSERT INTO runs(id, source, mode, passive_variant, created_at, paragraphs, sentences, words,
			hard_sentences, very_hard_sentences, adverbs, qualifiers, passive_voice, complex, mode_score, counters)
		VALUES(?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		run.ID,
		run.Source,
		string(run.Mode),
		string(run.PassiveVariant),
		run.CreatedAt.UTC().Format(timeLayout),
		c.Paragraphs,
		c.Sentences,
		c.Words,
		c.HardSentences,
		c.VeryHardSentences,
		c.Adverbs,
		c.Qualifiers,
		c.PassiveVoice,
		c.Complex,
		score,
		string(counters),
	); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	for _, issue := range c.Issues {
		if _, err := tx.Exec(
			`INSERT INTO issues(run_id, category, excerpt, suggestion, severity) VALUES(?,?,?,?,?)`,
			run.ID,
			issue.Category,
			issue.Excerpt,
			issue.Suggestion,
			string(issue.Severity),
		); err != nil {
			return fmt.Errorf("insert issue: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// ListRuns returns the most recent runs first. A limit of zero or less lists
// every run.
func ListRuns(dbPath string, limit int) ([]RunSummary, error) {
	conn, err := Open(dbPath)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	if limit <= 0 {
		limit = -1
	}
	rows, err := conn.Query(
		`SELECT r.id, r.source, r.mode, r.created_at, r.sentences, r.words, r.hard_sentences,
			r.very_hard_sentences, r.mode_score, COUNT(i.id)
		FROM runs r LEFT JOIN issues i ON i.run_id = r.id
		GROUP BY r.id
		ORDER BY r.created_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var out []RunSummary
	for rows.Next() {
		var (
			s       RunSummary
			mode    string
			created string
			score   sql.NullInt64
		)
		if err := rows.Scan(&s.ID, &s.Source, &mode, &created, &s.Sentences, &s.Words,
			&s.HardSentences, &s.VeryHardSentences, &score, &s.Issues); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		s.Mode = feedback.Mode(mode)
		if s.CreatedAt, err = time.Parse(timeLayout, created); err != nil {
			return nil, fmt.Errorf("parse created_at: %w", err)
		}
		if score.Valid {
			v := int(score.Int64)
			s.ModeScore = &v
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return out, nil
}

func CountRows(dbPath, table string) (int, error) {
	switch table {
	case "runs", "issues":
	default:
		return 0, fmt.Errorf("unknown table %q", table)
	}
	conn, err := Open(dbPath)
	if err != nil {
		return 0, err
	}
	defer conn.Close()
	return countRowsConn(conn, table)
}

func countRowsConn(conn *sql.DB, table string) (int, error) {
	row := conn.QueryRow(`SELECT COUNT(*) FROM ` + table)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("scan count: %w", err)
	}
	return count, nil
}
