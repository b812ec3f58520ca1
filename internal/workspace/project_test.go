package workspace

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"prosecoach/internal/config"
	"prosecoach/internal/document"
	"prosecoach/internal/feedback"
)

func TestEnsureAtWritesLoadableConfig(t *testing.T) {
	base := filepath.Join(t.TempDir(), BaseDirName)
	root, err := EnsureAt(base)
	if err != nil {
		t.Fatalf("ensure workspace: %v", err)
	}

	cfg, err := config.Load(ConfigPath(root))
	if err != nil {
		t.Fatalf("load generated config: %v", err)
	}
	if cfg.DBPath != DBPath(root) {
		t.Fatalf("expected db path %s, got %s", DBPath(root), cfg.DBPath)
	}
}

func TestCreateProjectAndSaveReport(t *testing.T) {
	root, err := EnsureAt(filepath.Join(t.TempDir(), BaseDirName))
	if err != nil {
		t.Fatalf("ensure workspace: %v", err)
	}

	project, err := CreateProject(root, "Launch Post", "../launch.md", []byte("We utilize tools."))
	if err != nil {
		t.Fatalf("create project: %v", err)
	}
	if filepath.Base(project.SourcePath) != "launch.md" {
		t.Fatalf("unexpected source path %s", project.SourcePath)
	}

	a := document.New(document.WithSettings(feedback.Settings{Mode: feedback.ModeBrevity}))
	res, err := a.Analyze(context.Background(), "We utilize tools.")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if err := SaveReport(project, NewReport("Launch Post", res, map[string]int{"complex": 1})); err != nil {
		t.Fatalf("save report: %v", err)
	}

	for _, p := range []string{project.SourcePath, project.ReportPath, project.HTMLPath} {
		if _, err := os.Stat(p); err != nil {
			t.Fatalf("expected path to exist %s: %v", p, err)
		}
	}

	raw, err := os.ReadFile(project.ReportPath)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	var got Report
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if got.RunID != res.RunID || got.ModeScore == nil || got.HTML != "" || got.Highlights["complex"] != 1 {
		t.Fatalf("unexpected report %+v", got)
	}
}
