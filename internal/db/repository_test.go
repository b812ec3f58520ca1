package db

import (
	"path/filepath"
	"testing"
	"time"

	"prosecoach/internal/feedback"
)

func TestSaveRunAndList(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "runs.db")
	score := 72
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	first := RunRecord{
		ID:             "run-1",
		Source:         "draft.md",
		Mode:           feedback.ModeNone,
		PassiveVariant: feedback.PassiveEnhanced,
		CreatedAt:      base,
		Counters: feedback.Counters{
			Sentences:     4,
			Words:         40,
			HardSentences: 1,
			Issues: []feedback.Issue{
				{Category: "hardSentence", Excerpt: "A long one.", Suggestion: "split it", Severity: feedback.SeverityMedium},
				{Category: "veryHardSentence", Excerpt: "A longer one.", Suggestion: "split it", Severity: feedback.SeverityHigh},
			},
		},
	}
	second := RunRecord{
		ID:        "run-2",
		Source:    "launch.html",
		Mode:      feedback.ModeMarketing,
		CreatedAt: base.Add(time.Hour),
		ModeScore: &score,
	}

	for _, r := range []RunRecord{first, second} {
		if err := SaveRun(dbPath, r); err != nil {
			t.Fatalf("save run %s: %v", r.ID, err)
		}
	}

	runs, err := CountRows(dbPath, "runs")
	if err != nil {
		t.Fatalf("count runs: %v", err)
	}
	if runs != 2 {
		t.Fatalf("expected 2 runs, got %d", runs)
	}
	issues, err := CountRows(dbPath, "issues")
	if err != nil {
		t.Fatalf("count issues: %v", err)
	}
	if issues != 2 {
		t.Fatalf("expected 2 issues, got %d", issues)
	}

	list, err := ListRuns(dbPath, 10)
	if err != nil {
		t.Fatalf("list runs: %v", err)
	}
	if len(list) != 2 || list[0].ID != "run-2" || list[1].ID != "run-1" {
		t.Fatalf("unexpected order: %+v", list)
	}
	if list[0].ModeScore == nil || *list[0].ModeScore != 72 {
		t.Fatalf("expected mode score 72, got %v", list[0].ModeScore)
	}
	if list[1].ModeScore != nil || list[1].Issues != 2 || list[1].HardSentences != 1 {
		t.Fatalf("unexpected first run summary: %+v", list[1])
	}
	if !list[1].CreatedAt.Equal(base) {
		t.Fatalf("created_at round trip: got %v", list[1].CreatedAt)
	}

	limited, err := ListRuns(dbPath, 1)
	if err != nil {
		t.Fatalf("list runs: %v", err)
	}
	if len(limited) != 1 {
		t.Fatalf("expected 1 run, got %d", len(limited))
	}
}

func TestSaveRunRejectsDuplicateID(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "runs.db")
	r := RunRecord{ID: "same"}
	if err := SaveRun(dbPath, r); err != nil {
		t.Fatalf("save run: %v", err)
	}
	if err := SaveRun(dbPath, r); err == nil {
		t.Fatal("expected duplicate id error")
	}
}

func TestCountRowsUnknownTable(t *testing.T) {
	if _, err := CountRows(filepath.Join(t.TempDir(), "x.db"), "runs; DROP TABLE runs"); err == nil {
		t.Fatal("expected error for unknown table")
	}
}
