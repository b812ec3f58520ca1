package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"prosecoach/internal/config"
	"prosecoach/internal/db"
	"prosecoach/internal/document"
	"prosecoach/internal/ingest"
	"prosecoach/internal/render"
	"prosecoach/internal/workspace"
)

type analyzeFlags struct {
	mode    string
	passive string
	format  string
	save    bool
}

func newAnalyzeCmd(root *rootFlags) *cobra.Command {
	flags := &analyzeFlags{}
	cmd := &cobra.Command{
		Use:   "analyze [file|-]",
		Short: "Annotate a document",
		Long:  "Annotates a .txt, .md, .html, .docx or .pdf document (or standard input) and prints the highlighted HTML, a JSON or YAML result, or a text summary.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := root.setup(cmd)
			if err != nil {
				return err
			}
			if err := flags.apply(cmd, env.cfg); err != nil {
				return err
			}
			return runAnalyze(cmd, env, flags, firstArg(args))
		},
	}
	cmd.Flags().StringVar(&flags.mode, "mode", "", "writing mode: none, brevity, conversational or marketing")
	cmd.Flags().StringVar(&flags.passive, "passive", "", "passive voice detector: enhanced or legacy")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "", "output format: html, json, yaml or text")
	cmd.Flags().BoolVar(&flags.save, "save", false, "record the run in the run store and workspace")
	return cmd
}

// apply overrides the loaded config with flags given on the command line.
func (f *analyzeFlags) apply(cmd *cobra.Command, cfg *config.Config) error {
	if cmd.Flags().Changed("mode") {
		cfg.Mode = strings.ToLower(f.mode)
	}
	if cmd.Flags().Changed("passive") {
		cfg.PassiveDetection = strings.ToLower(f.passive)
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = strings.ToLower(f.format)
	}
	return cfg.Validate()
}

func runAnalyze(cmd *cobra.Command, env *runtimeEnv, flags *analyzeFlags, input string) error {
	parsed, raw, err := readInput(cmd, input)
	if err != nil {
		return err
	}

	res, err := newDocumentAnalyzer(env).Analyze(cmd.Context(), parsed.Text)
	if err != nil {
		return err
	}
	highlights, err := render.Extract(res.HTML)
	if err != nil {
		return err
	}
	summary := render.Summarize(highlights)

	if flags.save {
		if err := saveRun(env, parsed, raw, res, summary); err != nil {
			return err
		}
	}
	return writeResult(cmd.OutOrStdout(), env.cfg.Format, parsed.Title, res, summary)
}

func newDocumentAnalyzer(env *runtimeEnv) *document.Analyzer {
	opts := []document.Option{
		document.WithLogger(env.log),
		document.WithSettings(env.cfg.Settings()),
	}
	if env.cfg.DetectLanguage {
		opts = append(opts, document.WithLanguageDetection())
	}
	return document.New(opts...)
}

func saveRun(env *runtimeEnv, parsed *ingest.Parsed, raw []byte, res *document.Result, summary map[string]int) error {
	dbPath, err := env.resolveDBPath()
	if err != nil {
		return err
	}
	rec := db.RunRecord{
		ID:             res.RunID,
		Source:         parsed.SourcePath,
		Mode:           res.Settings.Mode,
		PassiveVariant: res.Settings.PassiveVariant,
		Counters:       res.Counters,
	}
	if res.Mode != nil {
		score := res.Mode.Score
		rec.ModeScore = &score
	}
	if err := db.SaveRun(dbPath, rec); err != nil {
		return err
	}

	root, err := workspace.EnsureDefault()
	if err != nil {
		return err
	}
	project, err := workspace.CreateProject(root, parsed.Title, parsed.SourcePath, raw)
	if err != nil {
		return err
	}
	if err := workspace.SaveReport(project, workspace.NewReport(parsed.Title, res, summary)); err != nil {
		return err
	}
	env.log.Info().Str("run_id", res.RunID).Str("db", dbPath).Str("project", project.Root).Msg("run saved")
	return nil
}

func writeResult(w io.Writer, format, title string, res *document.Result, summary map[string]int) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case "yaml":
		return writeYAML(w, res)
	case "text":
		return writeText(w, title, res, summary)
	default:
		_, err := fmt.Fprintln(w, res.HTML)
		return err
	}
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

func writeText(w io.Writer, title string, res *document.Result, summary map[string]int) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", title)
	c := res.Counters
	fmt.Fprintf(&b, "paragraphs: %d  sentences: %d  words: %d\n", c.Paragraphs, c.Sentences, c.Words)
	for _, tip := range res.Tips {
		fmt.Fprintf(&b, "- %s\n", tip.Message)
	}
	if len(summary) > 0 {
		b.WriteString("highlights:\n")
		for _, class := range render.Classes(summary) {
			fmt.Fprintf(&b, "  %-36s %d\n", class, summary[class])
		}
	}
	if res.Mode != nil {
		fmt.Fprintf(&b, "%s score: %d/100\n", res.Mode.Mode, res.Mode.Score)
		for _, rec := range res.Mode.Recommendations {
			fmt.Fprintf(&b, "  * %s\n", rec)
		}
	}
	if res.Language != nil && !res.Language.English {
		fmt.Fprintf(&b, "warning: text looks like %q, not English\n", res.Language.Code)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
