package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"prosecoach/internal/feedback"
	"prosecoach/internal/modes"
)

func newMetricsCmd(root *rootFlags) *cobra.Command {
	var mode, format string
	cmd := &cobra.Command{
		Use:   "metrics [file|-]",
		Short: "Score a whole document for one writing mode",
		Long:  "Runs the whole-document brevity, conversational or marketing metrics without annotating sentences.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := root.setup(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("format") {
				env.cfg.Format = strings.ToLower(format)
				if err := env.cfg.Validate(); err != nil {
					return err
				}
			}
			m := feedback.ParseMode(mode)
			if m == feedback.ModeNone {
				return fmt.Errorf("--mode must be brevity, conversational or marketing, got %q", mode)
			}

			parsed, _, err := readInput(cmd, firstArg(args))
			if err != nil {
				return err
			}
			summary, _ := modes.Report(m, parsed.Text)
			env.log.Debug().Str("mode", string(m)).Int("score", summary.Score).Msg("metrics computed")
			return writeSummary(cmd.OutOrStdout(), env.cfg.Format, summary)
		},
	}
	cmd.Flags().StringVar(&mode, "mode", "", "brevity, conversational or marketing (required)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: json, yaml or text")
	if err := cmd.MarkFlagRequired("mode"); err != nil {
		panic(fmt.Sprintf("failed to mark mode flag as required: %v", err))
	}
	return cmd
}

func writeSummary(w io.Writer, format string, s modes.Summary) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	case "yaml":
		return writeYAML(w, s)
	default:
		var b strings.Builder
		fmt.Fprintf(&b, "%s score: %d/100\n", s.Mode, s.Score)
		for _, rec := range s.Recommendations {
			fmt.Fprintf(&b, "  * %s\n", rec)
		}
		_, err := io.WriteString(w, b.String())
		return err
	}
}
