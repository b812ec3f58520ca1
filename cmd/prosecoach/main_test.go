package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prosecoach/internal/document"
	"prosecoach/internal/modes"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeDoc(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestAnalyzeHTMLFromStdin(t *testing.T) {
	out, err := execute(t, "We utilize tools.", "analyze", "-")
	require.NoError(t, err)
	assert.Equal(t, `<p>We <span class="complex" data-suggestion="use">utilize</span> tools.</p>`+"\n", out)
}

func TestAnalyzeJSON(t *testing.T) {
	path := writeDoc(t, "post.md", "We met in order to plan.\nThe ball was kicked by John.")
	out, err := execute(t, "", "analyze", path, "--format", "json", "--mode", "brevity")
	require.NoError(t, err)

	var res document.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 2, res.Counters.Paragraphs)
	assert.Equal(t, 1, res.Counters.PassiveVoice)
	assert.Equal(t, 1, res.Counters.Brevity.WordyPhrases)
	require.NotNil(t, res.Mode)
}

func TestAnalyzeText(t *testing.T) {
	out, err := execute(t, "She quickly left.", "analyze", "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "You have used 1 adverb.")
	assert.Contains(t, out, "adverb")
}

func TestAnalyzeRejectsBadMode(t *testing.T) {
	_, err := execute(t, "Hello.", "analyze", "--mode", "shouty")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mode")
}

func TestMetricsRequiresMode(t *testing.T) {
	_, err := execute(t, "Hello.", "metrics")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required")
}

func TestMetricsJSON(t *testing.T) {
	out, err := execute(t, "Short one. Another short one.", "metrics", "--mode", "brevity", "--format", "json")
	require.NoError(t, err)
	var s modes.Summary
	require.NoError(t, json.Unmarshal([]byte(out), &s))
	assert.Equal(t, 100, s.Score)
}

func TestSaveThenHistoryAndBatch(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "runs.db")
	t.Setenv("HOME", t.TempDir())

	run := func(stdin string, args ...string) string {
		cmd := newRootCmd()
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetIn(strings.NewReader(stdin))
		cmd.SetArgs(append(args, "--db", dbPath))
		require.NoError(t, cmd.Execute())
		return out.String()
	}

	run("We utilize tools.", "analyze", "--save", "--format", "text")
	a := writeDoc(t, "a.txt", "The cat sat.")
	b := writeDoc(t, "b.txt", "The dog ran. It was fast.")
	batch := run("", "batch", a, b, "--save", "--workers", "2")
	assert.Contains(t, batch, "a.txt")
	assert.Contains(t, batch, "b.txt")

	history := run("", "history", "--limit", "10")
	lines := strings.Split(strings.TrimSpace(history), "\n")
	assert.Len(t, lines, 4)
	assert.Contains(t, history, "stdin.txt")
}

func TestBatchReportsUnsupportedFiles(t *testing.T) {
	good := writeDoc(t, "good.txt", "Fine text.")
	bad := writeDoc(t, "bad.rtf", "nope")
	out, err := execute(t, "", "batch", good, bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 documents failed")
	assert.Contains(t, out, "unsupported file type")
}
