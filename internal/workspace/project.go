package workspace

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"prosecoach/internal/document"
)

type Report struct {
	Title             string         `json:"title"`
	RunID             string         `json:"run_id"`
	Mode              string         `json:"mode"`
	WordCount         int            `json:"word_count"`
	Sentences         int            `json:"sentences"`
	HardSentences     int            `json:"hard_sentences"`
	VeryHardSentences int            `json:"very_hard_sentences"`
	ModeScore         *int           `json:"mode_score,omitempty"`
	Tips              []document.Tip `json:"tips"`
	Highlights        map[string]int `json:"highlights,omitempty"`
	HTML              string         `json:"html,omitempty"`
}

type ProjectInfo struct {
	ID         string
	Root       string
	SourcePath string
	ReportPath string
	HTMLPath   string
}

// CreateProject keeps one directory per document title holding a copy of the
// source and the latest report.
func CreateProject(workspaceRoot, title, sourceFileName string, source []byte) (*ProjectInfo, error) {
	id := titleHash(title)
	projectRoot := filepath.Join(workspaceRoot, "projects", id)
	if err := os.MkdirAll(projectRoot, 0o755); err != nil {
		return nil, fmt.Errorf("create project dir: %w", err)
	}

	sourcePath := filepath.Join(projectRoot, sanitizeSourceName(sourceFileName))
	if len(source) > 0 {
		if err := os.WriteFile(sourcePath, source, 0o644); err != nil {
			return nil, fmt.Errorf("write source file: %w", err)
		}
	}

	return &ProjectInfo{
		ID:         id,
		Root:       projectRoot,
		SourcePath: sourcePath,
		ReportPath: filepath.Join(projectRoot, "report.json"),
		HTMLPath:   filepath.Join(projectRoot, "annotated.html"),
	}, nil
}

// NewReport condenses an analysis result for the project directory.
func NewReport(title string, res *document.Result, highlights map[string]int) Report {
	c := res.Counters
	r := Report{
		Title:             strings.TrimSpace(title),
		RunID:             res.RunID,
		Mode:              string(res.Settings.Mode),
		WordCount:         c.Words,
		Sentences:         c.Sentences,
		HardSentences:     c.HardSentences,
		VeryHardSentences: c.VeryHardSentences,
		Tips:              res.Tips,
		Highlights:        highlights,
		HTML:              res.HTML,
	}
	if res.Mode != nil {
		score := res.Mode.Score
		r.ModeScore = &score
	}
	return r
}

// SaveReport writes report.json and, when the report carries markup, the
// annotated HTML beside it.
func SaveReport(p *ProjectInfo, report Report) error {
	html := report.HTML
	report.HTML = ""
	raw, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(p.ReportPath, raw, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	if html != "" {
		if err := os.WriteFile(p.HTMLPath, []byte(html), 0o644); err != nil {
			return fmt.Errorf("write html: %w", err)
		}
	}
	return nil
}

func titleHash(title string) string {
	trimmed := strings.TrimSpace(strings.ToLower(title))
	sum := sha256.Sum256([]byte(trimmed))
	return hex.EncodeToString(sum[:])[:12]
}

func sanitizeSourceName(name string) string {
	base := filepath.Base(strings.TrimSpace(name))
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "source.txt"
	}
	return strings.ReplaceAll(base, "..", "")
}
